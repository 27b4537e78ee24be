package mssql

import (
	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/datatype"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

func init() {
	dialect.Register(Info)
	datatype.MustRegisterDialect(dialect.MSSQL, Rules...)
}

// Rules are the SQL Server type rules.
var Rules = []datatype.TypeRule{
	{Type: "char", Transform: datatype.Sized("char", 1)},
	{Type: "nchar", Transform: datatype.Sized("nchar", 1)},
	{Type: "varchar", Transform: datatype.BoundedLength("varchar", VarcharLimit, 1)},
	{Type: "nvarchar", Transform: datatype.BoundedLength("nvarchar", NVarcharLimit, 1)},
	{Type: "clob", Transform: datatype.Since(Version2000+1,
		datatype.Fixed("nvarchar", core.Unbounded()),
		datatype.Bare("text"))},
	{Type: "boolean", Transform: datatype.Bare("bit")},
	{Type: "int", Transform: datatype.Bare("int")},
	{Type: "bigint", Transform: datatype.Bare("bigint")},
	{Type: "decimal", Transform: datatype.Rename("decimal")},
	{Type: "uuid", Transform: datatype.Bare("uniqueidentifier")},
	{Type: "datetime", Transform: datatype.Since(Version2008,
		datatype.Rename("datetime2"),
		datatype.Bare("datetime"))},
}
