package mysql

import (
	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/datatype"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// Version8 is MySQL 8.0. Earlier releases need an explicit BIT length.
const Version8 = 8

func init() {
	dialect.Register(Info)
	datatype.MustRegisterDialect(dialect.MySQL, Rules...)
}

// Rules are the MySQL type rules.
var Rules = []datatype.TypeRule{
	{Type: "char", Transform: datatype.Sized("CHAR", 1)},
	{Type: "nchar", Transform: datatype.Sized("NCHAR", 1)},
	{Type: "varchar", Transform: datatype.Rename("VARCHAR")},
	{Type: "nvarchar", Transform: datatype.Rename("NVARCHAR")},
	{Type: "clob", Transform: datatype.Bare("LONGTEXT")},
	{Type: "boolean", Transform: datatype.Since(Version8,
		datatype.Bare("BOOLEAN"),
		datatype.Fixed("BIT", core.Int(1)))},
	{Type: "int", Transform: datatype.Bare("INT")},
	{Type: "bigint", Transform: datatype.Bare("BIGINT")},
	{Type: "decimal", Transform: datatype.Rename("DECIMAL")},
	{Type: "uuid", Transform: datatype.Fixed("CHAR", core.Int(36))},
	{Type: "datetime", Transform: datatype.Rename("DATETIME")},
}
