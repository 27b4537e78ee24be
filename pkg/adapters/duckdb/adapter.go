// Package duckdb provides a DuckDB version probe adapter.
package duckdb

import (
	"context"
	"log/slog"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver

	"github.com/leapstack-labs/leaptype/pkg/adapter"
	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// VersionQuery reports the library version, e.g. "v1.1.3".
const VersionQuery = "SELECT version()"

// Adapter implements the adapter.Adapter interface for DuckDB.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new DuckDB adapter instance.
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
	return dialect.DuckDB
}

// Connect opens a DuckDB database.
// Use ":memory:" (the default) as the path for an in-memory database.
func (a *Adapter) Connect(ctx context.Context, cfg core.AdapterConfig) error {
	path := cfg.Path
	if cfg.DSN != "" {
		path = cfg.DSN
	}
	if path == "" {
		path = ":memory:"
	}
	a.Logger.Debug("opening duckdb", slog.String("path", path))
	return a.Open(ctx, "duckdb", path)
}
