package derby

import (
	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/datatype"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

func init() {
	dialect.Register(Info)
	datatype.MustRegisterDialect(dialect.Derby, Rules...)
}

// Rules are the Derby type rules.
var Rules = []datatype.TypeRule{
	{Type: "char", Transform: datatype.Rename("CHAR")},
	{Type: "nchar", Transform: datatype.Rename("CHAR")},
	{Type: "varchar", Transform: datatype.Sized("VARCHAR", 255)},
	{Type: "nvarchar", Transform: datatype.Rename("VARCHAR")},
	{Type: "clob", Transform: datatype.Bare("CLOB")},
	{Type: "boolean", Transform: datatype.Bare("BOOLEAN")},
	{Type: "int", Transform: datatype.Bare("INTEGER")},
	{Type: "bigint", Transform: datatype.Bare("BIGINT")},
	{Type: "decimal", Transform: datatype.Rename("DECIMAL")},
	{Type: "uuid", Transform: datatype.Fixed("CHAR", core.Int(36))},
	{Type: "datetime", Transform: datatype.Bare("TIMESTAMP")},
}
