package all_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/datatype"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
	_ "github.com/leapstack-labs/leaptype/pkg/dialects/all"
)

func TestAllDialectsRegistered(t *testing.T) {
	kinds := dialect.List()
	for _, want := range []core.DialectKind{
		dialect.ANSI, dialect.MSSQL, dialect.Oracle, dialect.Postgres, dialect.MySQL,
		dialect.HSQL, dialect.Derby, dialect.H2, dialect.SQLite, dialect.DuckDB,
	} {
		assert.Contains(t, kinds, want)
		info, ok := dialect.Get(want)
		require.True(t, ok)
		assert.NotEmpty(t, info.Name)
	}
}

func TestNVarcharAcrossDialects(t *testing.T) {
	spec := core.NewTypeSpec("nvarchar", core.Params(255), "", "")

	tests := []struct {
		kind core.DialectKind
		want string
	}{
		{kind: dialect.ANSI, want: "nvarchar(255)"},
		{kind: dialect.MSSQL, want: "nvarchar(255)"},
		{kind: dialect.Oracle, want: "NVARCHAR2(255)"},
		{kind: dialect.Postgres, want: "VARCHAR(255)"},
		{kind: dialect.HSQL, want: "VARCHAR(255)"},
		{kind: dialect.Derby, want: "VARCHAR(255)"},
		{kind: dialect.MySQL, want: "NVARCHAR(255)"},
		{kind: dialect.H2, want: "VARCHAR(255)"},
		{kind: dialect.SQLite, want: "VARCHAR(255)"},
		{kind: dialect.DuckDB, want: "VARCHAR"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			out, err := datatype.Resolve(context.Background(), spec, dialect.New(tt.kind, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestCatalogueResolvesEverywhere(t *testing.T) {
	for _, kind := range dialect.List() {
		for _, def := range datatype.Builtins() {
			t.Run(string(kind)+"/"+def.Name, func(t *testing.T) {
				out, err := datatype.Resolve(context.Background(), core.NewTypeSpec(def.Name, nil, "", ""), dialect.New(kind, nil))
				require.NoError(t, err)
				assert.NotEmpty(t, out.Name)
			})
		}
	}
}

func TestSelectedTypes(t *testing.T) {
	tests := []struct {
		kind    core.DialectKind
		version int
		spec    string
		want    string
	}{
		{kind: dialect.Oracle, version: 19, spec: "boolean", want: "NUMBER(1)"},
		{kind: dialect.Oracle, version: 19, spec: "number(10,2)", want: "NUMBER(10, 2)"},
		{kind: dialect.Postgres, version: 16, spec: "uuid", want: "UUID"},
		{kind: dialect.Postgres, version: 16, spec: "text", want: "TEXT"},
		{kind: dialect.MySQL, version: 5, spec: "bool", want: "BIT(1)"},
		{kind: dialect.MySQL, version: 8, spec: "bool", want: "BOOLEAN"},
		{kind: dialect.MySQL, version: 8, spec: "char", want: "CHAR(1)"},
		{kind: dialect.Derby, version: 10, spec: "varchar", want: "VARCHAR(255)"},
		{kind: dialect.SQLite, version: 3, spec: "java.util.UUID", want: "TEXT"},
		{kind: dialect.DuckDB, version: 1, spec: "varchar(20) NOT NULL", want: "VARCHAR NOT NULL"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.spec, func(t *testing.T) {
			out, err := datatype.Resolve(context.Background(), datatype.Parse(tt.spec), dialect.Versioned(tt.kind, tt.version))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}
