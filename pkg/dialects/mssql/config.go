// Package mssql registers the Microsoft SQL Server dialect and its type rules.
// This package is pure Go with no database driver dependencies.
package mssql

import (
	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/datatype"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// Info is the SQL Server dialect metadata.
var Info = dialect.Info{
	Kind:    dialect.MSSQL,
	Name:    "Microsoft SQL Server",
	Aliases: []string{"sqlserver", "sql server", "mssqlserver"},
	Identifiers: dialect.IdentifierConfig{
		Quote:    "[",
		QuoteEnd: "]",
		Escape:   "]]",
	},
}

// Major versions that change type support.
const (
	// Version2000 is SQL Server 2000, the last release without (MAX) lengths.
	Version2000 = 8
	// Version2008 is SQL Server 2008, which introduced datetime2.
	Version2008 = 10
)

// Character length limits. Oversized lengths become MAX, or the limit
// itself on SQL Server 2000 and older.
var (
	NVarcharLimit = lengthLimit(4000)
	VarcharLimit  = lengthLimit(8000)
)

func lengthLimit(n int64) datatype.LengthLimit {
	return datatype.LengthLimit{
		Max:         n,
		LegacyMajor: Version2000,
		Legacy:      core.Int(n),
		Unbounded:   core.Unbounded(),
	}
}
