package datatype

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

const testKind core.DialectKind = "testdb"

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, DefineBuiltins(r))
	return r
}

func named(name string) Rule {
	return Rule{Name: name, Transform: Rename(name)}
}

func TestRegistry_Define(t *testing.T) {
	tests := []struct {
		name    string
		defs    []TypeDef
		wantErr string
	}{
		{name: "simple", defs: []TypeDef{{Name: "money", MaxParams: 0}}},
		{name: "empty name", defs: []TypeDef{{Name: "  "}}, wantErr: "requires a name"},
		{name: "min above max", defs: []TypeDef{{Name: "x", MinParams: 2, MaxParams: 1}}, wantErr: "exceeds max params"},
		{name: "unlimited max", defs: []TypeDef{{Name: "x", MinParams: 2, MaxParams: Unlimited}}},
		{
			name:    "alias conflict",
			defs:    []TypeDef{{Name: "a", Aliases: []string{"shared"}}, {Name: "b", Aliases: []string{"Shared"}}},
			wantErr: `alias "Shared" already belongs to a`,
		},
		{
			name: "redefine keeps aliases",
			defs: []TypeDef{{Name: "a", Aliases: []string{"shared"}}, {Name: "A", Aliases: []string{"shared"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			var err error
			for _, def := range tt.defs {
				if err = r.Define(def); err != nil {
					break
				}
			}
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRegistry_LookupAliases(t *testing.T) {
	r := newTestRegistry(t)

	for _, name := range []string{"nvarchar", "NVARCHAR", " nvarchar2 ", "java.sql.Types.NVARCHAR", "National"} {
		def, chain, ok := r.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, "nvarchar", def.Name)
		assert.Equal(t, "nvarchar", chain.Type)
	}

	_, _, ok := r.Lookup("bogus_type")
	assert.False(t, ok)
	assert.True(t, r.Known("character varying"))
	assert.False(t, r.Known("national character varying"))
}

func TestRegistry_RegisterRequiresTransform(t *testing.T) {
	r := NewRegistry()
	err := r.Register("nvarchar", Rule{Name: "broken"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transform")

	err = r.Register(" ", named("x"))
	require.Error(t, err)
}

func TestRegistry_RegisterUndefinedType(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("Geometry", named("GEOMETRY")))

	def, chain, ok := r.Lookup("geometry")
	require.True(t, ok)
	assert.Equal(t, Unlimited, def.MaxParams)
	assert.Equal(t, 1, chain.Len())
}

func TestRegistry_Frozen(t *testing.T) {
	r := newTestRegistry(t)
	assert.False(t, r.Frozen())
	r.Freeze()
	r.Freeze()
	assert.True(t, r.Frozen())

	assert.ErrorIs(t, r.Register("nvarchar", named("late")), ErrRegistryFrozen)
	assert.ErrorIs(t, r.Define(TypeDef{Name: "late"}), ErrRegistryFrozen)

	def, chain, ok := r.Lookup("nvarchar2")
	require.True(t, ok)
	assert.Equal(t, "nvarchar", def.Name)
	assert.Equal(t, 1, chain.Len(), "inherited char default")
}

func TestRegistry_ConcurrentReadsAfterFreeze(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Register("nvarchar", Rule{
		Name:        "test.nvarchar",
		Dialects:    []core.DialectKind{testKind},
		Specificity: PriorityDatabase,
		Transform:   Rename("NV"),
	}))
	r.Freeze()
	res := NewResolver(r, nil)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := res.Resolve(context.Background(), core.NewTypeSpec("nvarchar", core.Params(10), "", ""), dialect.New(testKind, nil))
			assert.NoError(t, err)
			assert.Equal(t, "NV(10)", out.String())
		}()
	}
	wg.Wait()
}

func TestChain_Ordering(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Define(TypeDef{Name: "parent", MaxParams: Unlimited}))
	require.NoError(t, r.Define(TypeDef{Name: "child", Parent: "parent", MaxParams: Unlimited}))

	require.NoError(t, r.Register("parent", Rule{Name: "parent.db", Specificity: PriorityDatabase, Transform: Keep()}))
	require.NoError(t, r.Register("child", Rule{Name: "child.default", Specificity: PriorityDefault, Transform: Keep()}))
	require.NoError(t, r.Register("child", Rule{Name: "child.db.first", Specificity: PriorityDatabase, Transform: Keep()}))
	require.NoError(t, r.Register("child", Rule{Name: "child.db.second", Specificity: PriorityDatabase, Transform: Keep()}))
	require.NoError(t, r.Register("parent", Rule{Name: "parent.override", Specificity: PriorityOverride, Transform: Keep()}))

	_, chain, ok := r.Lookup("child")
	require.True(t, ok)

	var got []string
	for _, rule := range chain.Rules() {
		got = append(got, rule.Name)
	}
	assert.Equal(t, []string{
		"child.db.first",
		"child.db.second",
		"child.default",
		"parent.override",
		"parent.db",
	}, got)
}

func TestChain_OwnRuleBeatsInheritedOverride(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Register("nvarchar", Rule{
		Name:        "test.nvarchar",
		Dialects:    []core.DialectKind{testKind},
		Specificity: PriorityDatabase,
		Transform:   Rename("nvarchar"),
	}))
	require.NoError(t, r.Register("char", Rule{
		Name:        "config.char[test]",
		Dialects:    []core.DialectKind{testKind},
		Specificity: PriorityOverride,
		Transform:   Rename("NCHAR"),
	}))
	res := NewResolver(r, nil)
	d := dialect.New(testKind, nil)

	out, err := res.Resolve(context.Background(), core.NewTypeSpec("nvarchar", core.Params(50), "", ""), d)
	require.NoError(t, err)
	assert.Equal(t, "nvarchar(50)", out.String())

	out, err = res.Resolve(context.Background(), core.NewTypeSpec("varchar", core.Params(50), "", ""), d)
	require.NoError(t, err)
	assert.Equal(t, "NCHAR(50)", out.String(), "child without its own rule inherits the override")
}

func TestChain_ParentCycle(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Define(TypeDef{Name: "a", Parent: "b", MaxParams: Unlimited}))
	require.NoError(t, r.Define(TypeDef{Name: "b", Parent: "a", MaxParams: Unlimited}))
	require.NoError(t, r.Register("a", named("A")))
	require.NoError(t, r.Register("b", named("B")))

	_, chain, ok := r.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 2, chain.Len())
}

func TestRule_AppliesTo(t *testing.T) {
	anyDialect := Rule{}
	assert.True(t, anyDialect.AppliesTo(testKind))

	only := Rule{Dialects: []core.DialectKind{dialect.Oracle, testKind}}
	assert.True(t, only.AppliesTo(testKind))
	assert.False(t, only.AppliesTo(dialect.MSSQL))
}

func TestRegistry_Names(t *testing.T) {
	r := newTestRegistry(t)
	names := r.Names()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "nvarchar")
	assert.Len(t, names, len(Builtins()))
}

func TestRegistry_Clone(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Register("nvarchar", Rule{Name: "orig", Dialects: []core.DialectKind{testKind}, Specificity: PriorityDatabase, Transform: Rename("ORIG")}))
	r.Freeze()

	c := r.Clone()
	assert.False(t, c.Frozen(), "clone should be writable")
	require.NoError(t, c.Register("nvarchar", Rule{Name: "extra", Dialects: []core.DialectKind{testKind}, Specificity: PriorityOverride, Transform: Rename("EXTRA")}))
	require.NoError(t, c.Define(TypeDef{Name: "money"}))

	_, orig, ok := r.Lookup("nvarchar")
	require.True(t, ok)
	_, cloned, ok := c.Lookup("national")
	require.True(t, ok, "aliases should be copied")

	assert.Len(t, cloned.Rules(), len(orig.Rules())+1)
	assert.False(t, r.Known("money"), "clone must not leak into the original")
}
