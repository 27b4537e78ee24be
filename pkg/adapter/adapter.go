// Package adapter connects to live databases to discover their versions.
//
// The type resolver only needs a database's major version, and only for the
// few rules that depend on it. An Adapter opens a connection, runs the
// dialect's version query and reports the major version; it implements
// dialect.VersionProbe so it can back a dialect.Dialect directly.
//
// Concrete adapter implementations are in pkg/adapters/ subdirectories and
// register themselves in init().
package adapter

import (
	"context"

	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// Adapter defines the interface that all database adapters must implement.
type Adapter interface {
	dialect.VersionProbe

	// Connect establishes a connection to the database using the provided config.
	Connect(ctx context.Context, cfg core.AdapterConfig) error

	// Close closes the database connection and releases resources.
	Close() error

	// ServerVersion returns the full version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)

	// Kind returns the dialect this adapter talks to.
	Kind() core.DialectKind
}

// Dialect returns a dialect handle whose version is probed through a and
// cached after the first successful answer.
func Dialect(a Adapter) dialect.Dialect {
	return dialect.New(a.Kind(), dialect.Cached(a))
}
