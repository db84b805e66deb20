package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/maksimkurb/ioc-diff/src/internal/addrspace"
	apperrors "github.com/maksimkurb/ioc-diff/src/internal/errors"
	"github.com/maksimkurb/ioc-diff/src/internal/log"
)

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, apperrors.NewConfigError("failed to get absolute path", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, apperrors.NewConfigError(fmt.Sprintf("configuration file not found: %s", configFile), nil)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, apperrors.NewConfigError("failed to read config file", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			return nil, apperrors.NewConfigError(fmt.Sprintf("failed to parse config file at line %d, column %d", row, col), err)
		}
		return nil, apperrors.NewConfigError("failed to parse config file", err)
	}

	config._absConfigFilePath = configFile
	config.applyDefaults()

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Configured lists: %d", len(config.Lists))

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.General == nil {
		c.General = &GeneralConfig{}
	}
	if c.General.RangeStyle == "" {
		c.General.RangeStyle = string(addrspace.RangeStyleAuto)
	}
	if c.General.OutputFormat == "" {
		c.General.OutputFormat = OutputFormatJSON
	}
	if c.General.LineTemplate == "" {
		c.General.LineTemplate = DefaultLineTemplate
	}

	if c.Server == nil {
		c.Server = &ServerConfig{}
	}
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = DefaultListenAddr
	}
	if c.Server.MaxRequestBytes == 0 {
		c.Server.MaxRequestBytes = DefaultMaxRequestBytes
	}
	if c.Server.AllowedClients == nil {
		c.Server.AllowedClients = append([]string(nil), DefaultAllowedClients...)
	}
}

// GetRangeStyle returns the configured range style. Call ValidateConfig first.
func (c *Config) GetRangeStyle() addrspace.RangeStyle {
	style, err := addrspace.ParseRangeStyle(c.General.RangeStyle)
	if err != nil {
		return addrspace.RangeStyleAuto
	}
	return style
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}
