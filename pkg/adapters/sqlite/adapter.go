// Package sqlite provides a SQLite version probe adapter backed by the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"log/slog"

	_ "modernc.org/sqlite" // sqlite driver

	"github.com/leapstack-labs/leaptype/pkg/adapter"
	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// VersionQuery reports the library version, e.g. "3.45.1".
const VersionQuery = "SELECT sqlite_version()"

// Adapter implements the adapter.Adapter interface for SQLite.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new SQLite adapter instance.
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
	return dialect.SQLite
}

// Connect opens a SQLite database file, or an in-memory database when no
// path is configured.
func (a *Adapter) Connect(ctx context.Context, cfg core.AdapterConfig) error {
	path := cfg.Path
	if cfg.DSN != "" {
		path = cfg.DSN
	}
	if path == "" {
		path = ":memory:"
	}
	a.Logger.Debug("opening sqlite", slog.String("path", path))
	return a.Open(ctx, "sqlite", path)
}
