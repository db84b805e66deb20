package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maksimkurb/ioc-diff/src/internal/addrspace"
	"github.com/maksimkurb/ioc-diff/src/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "ioc-diff.toml")
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return configFile
}

func TestLoadConfig_NonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/file.toml")
	if err == nil {
		t.Fatal("Expected error for non-existent file")
	}
	if !errors.HasCode(err, errors.ErrCodeConfig) {
		t.Errorf("Expected CONFIG_ERROR, got %v", err)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	configFile := writeConfig(t, `[general
	range_style = "auto"`)

	_, err := LoadConfig(configFile)
	if err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	configFile := writeConfig(t, `[general]
range_style = "dash"
output_format = "text"

[[list]]
list_name = "feed_a"
file = "lists/a.txt"

[[list]]
list_name = "feed_b"
hosts = ["1.1.1.1", "example.com"]`)

	cfg, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Fatalf("Expected config to be valid: %v", err)
	}

	if cfg.GetRangeStyle() != addrspace.RangeStyleDash {
		t.Errorf("Expected range style dash, got %s", cfg.GetRangeStyle())
	}
	if cfg.General.OutputFormat != OutputFormatText {
		t.Errorf("Expected output format text, got %s", cfg.General.OutputFormat)
	}
	if cfg.General.LineTemplate != DefaultLineTemplate {
		t.Errorf("Expected default line template, got %q", cfg.General.LineTemplate)
	}
	if cfg.Server.ListenAddr != DefaultListenAddr {
		t.Errorf("Expected default listen address, got %s", cfg.Server.ListenAddr)
	}

	list := cfg.GetListByName("feed_a")
	if list == nil {
		t.Fatal("Expected list feed_a")
	}
	expectedPath := filepath.Join(filepath.Dir(configFile), "lists", "a.txt")
	if got := list.GetAbsolutePath(cfg); got != expectedPath {
		t.Errorf("GetAbsolutePath() = %s, want %s", got, expectedPath)
	}
	if cfg.GetListByName("missing") != nil {
		t.Error("Expected nil for unknown list")
	}
}

func TestLoadConfig_RelativePath(t *testing.T) {
	configFile := writeConfig(t, `[general]
range_style = "auto"`)

	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)

	os.Chdir(filepath.Dir(configFile))

	if _, err := LoadConfig(filepath.Base(configFile)); err != nil {
		t.Errorf("Expected no error for relative path: %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.ValidateConfig(); err != nil {
		t.Fatalf("Default config must be valid: %v", err)
	}
	if cfg.GetRangeStyle() != addrspace.RangeStyleAuto {
		t.Errorf("Expected auto range style, got %s", cfg.GetRangeStyle())
	}
	if cfg.Server.MaxRequestBytes != DefaultMaxRequestBytes {
		t.Errorf("Expected default request limit, got %d", cfg.Server.MaxRequestBytes)
	}
	if len(cfg.Server.AllowedClients) != len(DefaultAllowedClients) {
		t.Errorf("Expected default allowed clients, got %v", cfg.Server.AllowedClients)
	}
}

func TestSerializeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Lists = []*ListSource{{ListName: "feed_a", Hosts: []string{"1.1.1.1"}}}

	buf, err := cfg.SerializeConfig()
	if err != nil {
		t.Fatalf("Failed to serialize config: %v", err)
	}

	content := buf.String()
	if !strings.Contains(content, `range_style = 'auto'`) {
		t.Errorf("Expected range_style in output, got:\n%s", content)
	}
	if !strings.Contains(content, "feed_a") {
		t.Errorf("Expected list name in output, got:\n%s", content)
	}
}
