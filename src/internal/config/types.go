package config

import (
	"path/filepath"
	"strings"
)

const (
	OutputFormatJSON = "json"
	OutputFormatText = "text"
)

const (
	// TemplateTagSide expands to "1" or "2".
	TemplateTagSide = "side"
	// TemplateTagList expands to the list name (or "list1" / "list2" for unnamed lists).
	TemplateTagList = "list"
	// TemplateTagIndicator expands to the unique indicator.
	TemplateTagIndicator = "indicator"

	DefaultLineTemplate = "{{" + TemplateTagSide + "}}\t{{" + TemplateTagIndicator + "}}"
	DefaultListenAddr   = "127.0.0.1:12121"
	// DefaultMaxRequestBytes limits API request bodies (default: 32 MiB).
	DefaultMaxRequestBytes = 32 << 20
)

// DefaultAllowedClients are the loopback and private IPv4 networks.
var DefaultAllowedClients = []string{"127.0.0.0/8", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}

type Config struct {
	// General holds comparison and output settings.
	General *GeneralConfig `toml:"general" json:"general"`
	// Server holds HTTP API settings.
	Server *ServerConfig `toml:"server" json:"server"`
	// Lists contains named indicator lists. Set "list_name" and either "url", "file" or "hosts" for each list.
	Lists []*ListSource `toml:"list,omitempty" json:"list,omitempty"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// RangeStyle is how multi-address ranges are printed: auto (CIDR when aligned), dash (start-end) or cidr (default: auto).
	RangeStyle string `toml:"range_style" json:"range_style" validate:"range_style"`
	// OutputFormat is the CLI output format: json or text (default: json).
	OutputFormat string `toml:"output_format" json:"output_format" validate:"oneof=json text"`
	// LineTemplate formats one line of text output. Available variables: {{side}}, {{list}}, {{indicator}}.
	LineTemplate string `toml:"line_template" json:"line_template" validate:"line_template"`
	// LenientParsing turns tokens that look like addresses but cannot be parsed (e.g. "1.1.1.1:80") into plain indicators instead of failing (default: false).
	LenientParsing bool `toml:"lenient_parsing" json:"lenient_parsing"`
	// Summary adds per-list statistics to the output (default: false).
	Summary bool `toml:"summary" json:"summary"`
}

type ServerConfig struct {
	// ListenAddr is the HTTP API listen address (default: 127.0.0.1:12121).
	ListenAddr string `toml:"listen_addr" json:"listen_addr" validate:"hostport_or_empty"`
	// MaxRequestBytes limits the size of API request bodies (default: 32 MiB).
	MaxRequestBytes int64 `toml:"max_request_bytes" json:"max_request_bytes" validate:"min=0"`
	// AllowedClients are the IPv4 addresses, CIDRs or ranges allowed to call the API; IPv6 loopback is always allowed (default: loopback and RFC 1918 networks).
	AllowedClients []string `toml:"allowed_clients" json:"allowed_clients" validate:"dive,address_token"`
}

type ListSource struct {
	// ListName is the name of the list.
	ListName string `toml:"list_name" json:"list_name" validate:"required,list_name"`
	// URL is the URL of the list (optional).
	URL string `toml:"url,omitempty" json:"url,omitempty" validate:"omitempty,url"`
	// File is the local file path of the list, relative to the config file (optional).
	File string `toml:"file,omitempty" json:"file,omitempty"`
	// Hosts is a list of inline indicators (optional).
	Hosts []string `toml:"hosts,omitempty" json:"hosts,omitempty"`
}

func (c *Config) GetConfigDir() string {
	if c._absConfigFilePath == "" {
		return "."
	}
	return filepath.Dir(c._absConfigFilePath)
}

// GetListByName returns the list with the given name, or nil.
func (c *Config) GetListByName(name string) *ListSource {
	for _, l := range c.Lists {
		if l.ListName == name {
			return l
		}
	}
	return nil
}

func (lst *ListSource) Type() string {
	if lst.URL != "" {
		return "url"
	} else if lst.File != "" {
		return "file"
	} else {
		return "hosts"
	}
}

func (lst *ListSource) Name() string {
	return lst.ListName
}

// GetAbsolutePath resolves File relative to the configuration file directory.
func (lst *ListSource) GetAbsolutePath(cfg *Config) string {
	if filepath.IsAbs(lst.File) {
		return lst.File
	}
	return filepath.Clean(filepath.Join(cfg.GetConfigDir(), lst.File))
}

func (lst *ListSource) String() string {
	var sb strings.Builder
	sb.WriteString(lst.ListName)
	sb.WriteString(" (")
	sb.WriteString(lst.Type())
	sb.WriteString(")")
	return sb.String()
}
