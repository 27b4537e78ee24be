package postgres

import (
	"github.com/leapstack-labs/leaptype/pkg/datatype"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

func init() {
	dialect.Register(Info)
	datatype.MustRegisterDialect(dialect.Postgres, Rules...)
}

// Rules are the PostgreSQL type rules.
// PostgreSQL text types are always Unicode, so the national variants collapse
// onto their plain counterparts.
var Rules = []datatype.TypeRule{
	{Type: "char", Transform: datatype.Rename("CHAR")},
	{Type: "nchar", Transform: datatype.Rename("CHAR")},
	{Type: "varchar", Transform: datatype.Rename("VARCHAR")},
	{Type: "nvarchar", Transform: datatype.Rename("VARCHAR")},
	{Type: "clob", Transform: datatype.Bare("TEXT")},
	{Type: "boolean", Transform: datatype.Bare("BOOLEAN")},
	{Type: "int", Transform: datatype.Bare("INTEGER")},
	{Type: "bigint", Transform: datatype.Bare("BIGINT")},
	{Type: "decimal", Transform: datatype.Rename("DECIMAL")},
	{Type: "uuid", Transform: datatype.Bare("UUID")},
	{Type: "datetime", Transform: datatype.Rename("TIMESTAMP")},
}
