package duckdb

import (
	"github.com/leapstack-labs/leaptype/pkg/datatype"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

func init() {
	dialect.Register(Info)
	datatype.MustRegisterDialect(dialect.DuckDB, Rules...)
}

// Rules are the DuckDB type rules.
// DuckDB ignores VARCHAR lengths, so character types drop their parameters.
var Rules = []datatype.TypeRule{
	{Type: "char", Transform: datatype.Bare("VARCHAR")},
	{Type: "nchar", Transform: datatype.Bare("VARCHAR")},
	{Type: "varchar", Transform: datatype.Bare("VARCHAR")},
	{Type: "nvarchar", Transform: datatype.Bare("VARCHAR")},
	{Type: "clob", Transform: datatype.Bare("VARCHAR")},
	{Type: "boolean", Transform: datatype.Bare("BOOLEAN")},
	{Type: "int", Transform: datatype.Bare("INTEGER")},
	{Type: "bigint", Transform: datatype.Bare("BIGINT")},
	{Type: "decimal", Transform: datatype.Rename("DECIMAL")},
	{Type: "uuid", Transform: datatype.Bare("UUID")},
	{Type: "datetime", Transform: datatype.Bare("TIMESTAMP")},
}
