package sqlite

import (
	"github.com/leapstack-labs/leaptype/pkg/datatype"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

func init() {
	dialect.Register(Info)
	datatype.MustRegisterDialect(dialect.SQLite, Rules...)
}

// Rules are the SQLite type rules. SQLite only enforces storage classes, so
// the rules pick names whose affinity matches the canonical type.
var Rules = []datatype.TypeRule{
	{Type: "char", Transform: datatype.Rename("CHAR")},
	{Type: "nchar", Transform: datatype.Rename("NCHAR")},
	{Type: "varchar", Transform: datatype.Rename("VARCHAR")},
	{Type: "nvarchar", Transform: datatype.Rename("VARCHAR")},
	{Type: "clob", Transform: datatype.Bare("TEXT")},
	{Type: "boolean", Transform: datatype.Bare("BOOLEAN")},
	{Type: "int", Transform: datatype.Bare("INTEGER")},
	{Type: "bigint", Transform: datatype.Bare("BIGINT")},
	{Type: "decimal", Transform: datatype.Rename("DECIMAL")},
	{Type: "uuid", Transform: datatype.Bare("TEXT")},
	{Type: "datetime", Transform: datatype.Bare("TEXT")},
}
