package config

import (
	"time"

	"netbird-inventory/internal/grouping"
)

// Plugin discriminator values accepted in a source file.
const (
	PluginName     = "netbird"
	PluginLongName = "netbird_inventory"
)

const (
	// DefaultTimeoutSeconds is the request timeout when the source does not
	// set one.
	DefaultTimeoutSeconds = 30

	// DefaultBasePath is the API prefix when the source does not set one.
	DefaultBasePath = "/api"
)

// Config is one parsed inventory source file. A loaded Config is treated as
// read-only: optional fields are resolved through the Effective accessors,
// never by mutating the struct.
type Config struct {
	// Plugin names the inventory plugin this source belongs to.
	Plugin string `yaml:"plugin"`

	// Host is the management API host without a scheme, optionally with an
	// embedded ":port". Passed to the client verbatim.
	Host string `yaml:"host"`

	// APIToken is the personal access token for the management API. It is
	// secret and must never appear in logs or error messages.
	APIToken string `yaml:"api_token"`

	// ValidateCerts toggles TLS certificate verification. nil means on.
	ValidateCerts *bool `yaml:"validate_certs"`

	// Timeout is the request timeout in seconds. nil means
	// DefaultTimeoutSeconds.
	Timeout *int `yaml:"timeout"`

	// BasePath is the API prefix. Empty means DefaultBasePath.
	BasePath string `yaml:"base_path"`

	// CACert is a path to a PEM-encoded CA bundle used to verify the
	// server certificate.
	CACert string `yaml:"ca_cert,omitempty"`

	// Cache is accepted for compatibility with sources written for caching
	// inventory plugins. A build always fetches fresh regardless.
	Cache bool `yaml:"cache"`

	// KeyedGroups configures the grouping stage run after the build.
	KeyedGroups []grouping.Keyed `yaml:"keyed_groups,omitempty"`

	// Strict makes grouping fail when a host misses a keyed variable.
	Strict bool `yaml:"strict"`
}

// RecognizedPlugin reports whether name selects this plugin.
func RecognizedPlugin(name string) bool {
	return name == PluginName || name == PluginLongName
}

// EffectiveValidateCerts resolves the verification toggle (default on).
func (c *Config) EffectiveValidateCerts() bool {
	if c.ValidateCerts == nil {
		return true
	}
	return *c.ValidateCerts
}

// EffectiveTimeout resolves the request timeout.
func (c *Config) EffectiveTimeout() time.Duration {
	if c.Timeout == nil {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(*c.Timeout) * time.Second
}

// EffectiveBasePath resolves the API prefix.
func (c *Config) EffectiveBasePath() string {
	if c.BasePath == "" {
		return DefaultBasePath
	}
	return c.BasePath
}
