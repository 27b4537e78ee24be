// Package config provides shared configuration types for leaptype.
// This package is decoupled from CLI concerns: it turns configured targets
// into adapter configs and configured overrides into type rules.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/leapstack-labs/leaptype/pkg/adapter"
	"github.com/leapstack-labs/leaptype/pkg/core"
)

// TargetConfig holds the database whose version is probed.
type TargetConfig struct {
	Type string `koanf:"type"` // duckdb, postgres, mysql, mssql, sqlite

	// DSN is used verbatim when set
	DSN string `koanf:"dsn"`

	// File-based databases (DuckDB, SQLite)
	Path string `koanf:"path"`

	// Network databases
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Database string `koanf:"database"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	// Additional driver-specific options
	Options map[string]string `koanf:"options"`
}

// defaultPorts are applied when a network target omits its port.
var defaultPorts = map[string]int{
	"postgres":  5432,
	"mysql":     3306,
	"mariadb":   3306,
	"mssql":     1433,
	"sqlserver": 1433,
}

// ApplyDefaults fills in type-specific defaults.
func (t *TargetConfig) ApplyDefaults() {
	if t == nil {
		return
	}
	t.Type = strings.ToLower(strings.TrimSpace(t.Type))
	if t.Port == 0 && t.DSN == "" {
		t.Port = defaultPorts[t.Type]
	}
}

// Validate checks if the target configuration is valid.
// It uses the adapter registry to determine which adapter types are available.
func (t *TargetConfig) Validate() error {
	if t.Type == "" {
		return fmt.Errorf("target type is required")
	}
	if !adapter.IsRegistered(t.Type) {
		return &adapter.UnknownAdapterError{
			Type:      t.Type,
			Available: adapter.ListAdapters(),
		}
	}
	return nil
}

// ExpandEnv expands ${VAR} references in credential and address fields.
func (t *TargetConfig) ExpandEnv() {
	if t == nil {
		return
	}
	t.DSN = expandEnvVars(t.DSN)
	t.Host = expandEnvVars(t.Host)
	t.Database = expandEnvVars(t.Database)
	t.User = expandEnvVars(t.User)
	t.Password = expandEnvVars(t.Password)
	t.Path = expandEnvVars(t.Path)
}

// AdapterConfig converts the target into the adapter's connection config.
func (t *TargetConfig) AdapterConfig() core.AdapterConfig {
	options := make(map[string]string, len(t.Options))
	for k, v := range t.Options {
		options[k] = v
	}
	return core.AdapterConfig{
		Type:     t.Type,
		DSN:      t.DSN,
		Path:     t.Path,
		Host:     t.Host,
		Port:     t.Port,
		Database: t.Database,
		Username: t.User,
		Password: t.Password,
		Options:  options,
	}
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
// Unset variables are left as written.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match
	})
}
