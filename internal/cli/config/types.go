// Package config provides configuration management for the leaptype CLI.
//
// This package extends the shared configuration types from internal/config
// with CLI-specific fields and the layered koanf loader. The shared types
// are re-exported here via type aliases for convenience.
package config

import (
	"fmt"
	"strings"

	sharedcfg "github.com/leapstack-labs/leaptype/internal/config"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// TargetConfig is an alias for the shared target configuration.
type TargetConfig = sharedcfg.TargetConfig

// OverrideConfig is an alias for the shared override configuration.
type OverrideConfig = sharedcfg.OverrideConfig

// Config holds all CLI configuration options.
type Config struct {
	// Dialect is the default target dialect (kind or alias)
	Dialect string `koanf:"dialect"`
	// DBVersion pins the database major version; 0 means unknown
	DBVersion int              `koanf:"db_version"`
	Output    string           `koanf:"output"`
	Verbose   bool             `koanf:"verbose"`
	CacheSize int              `koanf:"cache_size"`
	Target    *TargetConfig    `koanf:"target"`
	Overrides []OverrideConfig `koanf:"overrides"`
	// Scripts are Starlark rule files, relative to the config file
	Scripts []string `koanf:"scripts"`
}

// Default configuration values.
const (
	DefaultDialect   = "ansi"
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultCacheSize = 1024
)

// Output modes accepted by the output setting.
var OutputModes = []string{"auto", "text", "markdown", "json", "yaml"}

// outputAliases are shorthands the renderer also understands.
var outputAliases = []string{"table", "md", "yml"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dialect != "" {
		if _, ok := dialect.Lookup(c.Dialect); !ok {
			return fmt.Errorf("unknown dialect %q\nAvailable dialects: %v", c.Dialect, dialect.List())
		}
	}
	valid := false
	for _, m := range append(OutputModes, outputAliases...) {
		if strings.EqualFold(c.Output, m) {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid output format %q (expected one of %s)", c.Output, strings.Join(OutputModes, ", "))
	}
	if c.DBVersion < 0 {
		return fmt.Errorf("db_version must not be negative")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative")
	}
	if c.Target != nil && c.Target.Type != "" {
		if err := c.Target.Validate(); err != nil {
			return fmt.Errorf("invalid target configuration: %w", err)
		}
	}
	return nil
}
