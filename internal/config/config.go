// Package config loads and validates inventory source files.
//
// A source file tells the inventory where the NetBird management API lives
// and how to talk to it. Sources are recognized by name: any file ending in
// netbird.yml or netbird.yaml. When no explicit path is given the search
// order is:
//  1. ./netbird.yml
//  2. ./netbird.yaml
//  3. ./inventory/netbird.yml
//  4. ./inventory/netbird.yaml
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Load reads, parses and validates the source file at path. Unknown keys in
// the file are ignored so sources written for newer plugin versions still
// load.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for completeness. Problems are
// collected and reported together so a broken source is fixed in one
// round trip, not one field per run.
func (c *Config) Validate() error {
	var result *multierror.Error

	switch {
	case c.Plugin == "":
		result = multierror.Append(result, errors.New("plugin is required"))
	case !RecognizedPlugin(c.Plugin):
		result = multierror.Append(result, fmt.Errorf("unknown plugin %q (want %q or %q)", c.Plugin, PluginName, PluginLongName))
	}

	if strings.TrimSpace(c.Host) == "" {
		result = multierror.Append(result, errors.New("host is required"))
	}
	if c.APIToken == "" {
		result = multierror.Append(result, errors.New("api_token is required"))
	}
	if c.Timeout != nil && *c.Timeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("timeout must be positive, got %d", *c.Timeout))
	}
	for i, entry := range c.KeyedGroups {
		if entry.Key == "" {
			result = multierror.Append(result, fmt.Errorf("keyed_groups[%d]: key is required", i))
		}
	}

	return result.ErrorOrNil()
}
