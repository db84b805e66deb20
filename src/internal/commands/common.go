package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/maksimkurb/ioc-diff/src/internal/api"
	"github.com/maksimkurb/ioc-diff/src/internal/config"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
	Version    api.VersionInfo
	// Stdout receives command results (default: os.Stdout).
	Stdout io.Writer
}

func (ctx *AppContext) stdout() io.Writer {
	if ctx.Stdout == nil {
		return os.Stdout
	}
	return ctx.Stdout
}

// loadAndValidateConfigOrFail loads the configuration file, or the defaults
// when no path is given, and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	var cfg *config.Config
	if configPath == "" {
		cfg = config.DefaultConfig()
	} else {
		var err error
		if cfg, err = config.LoadConfig(configPath); err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
