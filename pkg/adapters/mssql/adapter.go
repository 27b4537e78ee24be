// Package mssql provides a Microsoft SQL Server version probe adapter.
package mssql

import (
	"context"
	"log/slog"
	"net"
	"net/url"
	"strconv"

	_ "github.com/microsoft/go-mssqldb" // sqlserver driver

	"github.com/leapstack-labs/leaptype/pkg/adapter"
	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// VersionQuery reports the product version, e.g. "16.0.1000.6".
const VersionQuery = "SELECT CAST(SERVERPROPERTY('ProductVersion') AS VARCHAR(128))"

// Adapter implements the adapter.Adapter interface for SQL Server.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new SQL Server adapter instance.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger, VersionQuery: VersionQuery},
	}
}

// Kind returns the dialect for this adapter.
func (a *Adapter) Kind() core.DialectKind {
	return dialect.MSSQL
}

// Connect establishes a connection to SQL Server.
func (a *Adapter) Connect(ctx context.Context, cfg core.AdapterConfig) error {
	a.Logger.Debug("connecting to sqlserver", slog.String("host", cfg.Host), slog.String("database", cfg.Database))
	return a.Open(ctx, "sqlserver", buildMSSQLDSN(cfg))
}

// buildMSSQLDSN constructs a sqlserver:// URL.
func buildMSSQLDSN(cfg core.AdapterConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}

	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = 1433
	}

	query := url.Values{}
	if cfg.Database != "" {
		query.Set("database", cfg.Database)
	}
	for k, v := range cfg.Options {
		query.Set(k, v)
	}

	u := url.URL{
		Scheme:   "sqlserver",
		Host:     net.JoinHostPort(host, strconv.Itoa(port)),
		RawQuery: query.Encode(),
	}
	if cfg.Username != "" {
		u.User = url.UserPassword(cfg.Username, cfg.Password)
	}
	return u.String()
}
