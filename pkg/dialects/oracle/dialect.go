package oracle

import (
	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/datatype"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

func init() {
	dialect.Register(Info)
	datatype.MustRegisterDialect(dialect.Oracle, Rules...)
}

// Rules are the Oracle type rules. Oracle has no boolean or uuid column
// types before 23c; NUMBER(1) and RAW(16) stand in for them.
var Rules = []datatype.TypeRule{
	{Type: "char", Transform: datatype.Rename("CHAR")},
	{Type: "nchar", Transform: datatype.Rename("NCHAR")},
	{Type: "varchar", Transform: datatype.Rename("VARCHAR2")},
	{Type: "nvarchar", Transform: datatype.Rename("NVARCHAR2")},
	{Type: "clob", Transform: datatype.Bare("CLOB")},
	{Type: "boolean", Transform: datatype.Fixed("NUMBER", core.Int(1))},
	{Type: "int", Transform: datatype.Bare("INTEGER")},
	{Type: "bigint", Transform: datatype.Fixed("NUMBER", core.Int(19))},
	{Type: "decimal", Transform: datatype.Rename("NUMBER")},
	{Type: "uuid", Transform: datatype.Fixed("RAW", core.Int(16))},
	{Type: "datetime", Transform: datatype.Rename("TIMESTAMP")},
}
