package hsqldb

import (
	"github.com/leapstack-labs/leaptype/pkg/datatype"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

func init() {
	dialect.Register(Info)
	datatype.MustRegisterDialect(dialect.HSQL, Rules...)
}

// Rules are the HyperSQL type rules.
var Rules = []datatype.TypeRule{
	{Type: "char", Transform: datatype.Rename("CHAR")},
	{Type: "nchar", Transform: datatype.Rename("CHAR")},
	{Type: "varchar", Transform: datatype.Rename("VARCHAR")},
	{Type: "nvarchar", Transform: datatype.Rename("VARCHAR")},
	{Type: "clob", Transform: datatype.Bare("CLOB")},
	{Type: "boolean", Transform: datatype.Bare("BOOLEAN")},
	{Type: "int", Transform: datatype.Bare("INT")},
	{Type: "bigint", Transform: datatype.Bare("BIGINT")},
	{Type: "decimal", Transform: datatype.Rename("DECIMAL")},
	{Type: "uuid", Transform: datatype.Bare("UUID")},
	{Type: "datetime", Transform: datatype.Rename("TIMESTAMP")},
}
