// Package dialect provides database dialect identities and version probing.
//
// A Dialect is the handle callers pass to the type resolver: a kind compared
// by value plus a lazy VersionProbe. Concrete dialect metadata and type rules
// are registered from pkg/dialects/*/ packages.
package dialect

import (
	"context"
	"errors"

	"github.com/leapstack-labs/leaptype/pkg/core"
)

// Well-known dialect kinds. The set is open: a dialect package may introduce
// its own kind and register rules for it.
const (
	ANSI     core.DialectKind = "ansi"
	MSSQL    core.DialectKind = "mssql"
	Oracle   core.DialectKind = "oracle"
	Postgres core.DialectKind = "postgres"
	MySQL    core.DialectKind = "mysql"
	HSQL     core.DialectKind = "hsqldb"
	Derby    core.DialectKind = "derby"
	H2       core.DialectKind = "h2"
	SQLite   core.DialectKind = "sqlite"
	DuckDB   core.DialectKind = "duckdb"
)

// ErrDialectRequired is returned when a dialect is required but not provided.
var ErrDialectRequired = errors.New("dialect is required")

// Dialect identifies a target database and knows how to ask for its version.
type Dialect struct {
	Kind  core.DialectKind
	Probe VersionProbe
}

// New returns a dialect handle. A nil probe means the version is unknown.
func New(kind core.DialectKind, probe VersionProbe) Dialect {
	return Dialect{Kind: kind, Probe: probe}
}

// Versioned returns a dialect handle with a fixed major version.
func Versioned(kind core.DialectKind, major int) Dialect {
	return Dialect{Kind: kind, Probe: FixedVersion(major)}
}

// Version returns the database major version.
// Any failure is reported as a *core.ProbeError.
func (d Dialect) Version(ctx context.Context) (int, error) {
	if d.Probe == nil {
		return 0, &core.ProbeError{Dialect: d.Kind, Err: core.ErrNoProbe}
	}
	major, err := d.Probe.MajorVersion(ctx)
	if err != nil {
		var pe *core.ProbeError
		if errors.As(err, &pe) {
			return 0, err
		}
		return 0, &core.ProbeError{Dialect: d.Kind, Err: err}
	}
	return major, nil
}

// AtMost reports whether the database major version is <= major.
// An unknown version is assumed to be the newest, so AtMost is false.
func (d Dialect) AtMost(ctx context.Context, major int) bool {
	v, err := d.Version(ctx)
	if err != nil {
		return false
	}
	return v <= major
}

// AtLeast reports whether the database major version is >= major.
// An unknown version is assumed to be the newest, so AtLeast is true.
func (d Dialect) AtLeast(ctx context.Context, major int) bool {
	v, err := d.Version(ctx)
	if err != nil {
		return true
	}
	return v >= major
}

// String returns the dialect kind.
func (d Dialect) String() string {
	return string(d.Kind)
}
