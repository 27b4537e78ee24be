package datatype

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

func TestLengthLimit_Apply(t *testing.T) {
	limit := LengthLimit{Max: 4000, LegacyMajor: 8, Legacy: core.Int(4000), Unbounded: core.Unbounded()}
	failing := dialect.New(testKind, dialect.ProbeFunc(func(context.Context) (int, error) {
		return 0, errors.New("boom")
	}))

	tests := []struct {
		name         string
		param        core.Param
		d            dialect.Dialect
		want         string
		wantReplaced bool
	}{
		{name: "within limit", param: core.Int(255), d: dialect.Versioned(testKind, 15), want: "255"},
		{name: "at limit", param: core.Int(4000), d: dialect.Versioned(testKind, 15), want: "4000"},
		{name: "over limit modern", param: core.Int(5000), d: dialect.Versioned(testKind, 9), want: "MAX", wantReplaced: true},
		{name: "over limit legacy", param: core.Int(5000), d: dialect.Versioned(testKind, 8), want: "4000", wantReplaced: true},
		{name: "over limit probe failure", param: core.Int(5000), d: failing, want: "MAX", wantReplaced: true},
		{name: "non numeric", param: core.Text("abc"), d: dialect.Versioned(testKind, 15), want: "MAX", wantReplaced: true},
		{name: "explicit max", param: core.ParseParam("max"), d: dialect.Versioned(testKind, 15), want: "MAX", wantReplaced: true},
		{name: "overflowing digits", param: core.ParseParam("99999999999999999999"), d: dialect.Versioned(testKind, 8), want: "4000", wantReplaced: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, replaced := limit.Apply(context.Background(), "nvarchar", tt.param, tt.d)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.wantReplaced, replaced)
		})
	}
}

func TestLengthLimit_NoLegacy(t *testing.T) {
	limit := LengthLimit{Max: 10, Unbounded: core.Unbounded()}
	got, replaced := limit.Apply(context.Background(), "x", core.Int(11), dialect.Versioned(testKind, 1))
	assert.True(t, replaced)
	assert.True(t, got.IsUnbounded())
}

func TestNumericParam(t *testing.T) {
	n, err := NumericParam("nvarchar", 0, core.Int(42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	_, err = NumericParam("nvarchar", 1, core.Text("abc"))
	var pfe *core.ParameterFormatError
	require.ErrorAs(t, err, &pfe)
	assert.Equal(t, 1, pfe.Index)
	assert.Equal(t, "abc", pfe.Value)
}

func TestDefaultParams(t *testing.T) {
	assert.Equal(t, core.Params(1), DefaultParams(nil, core.Int(1)))
	assert.Equal(t, core.Params(7), DefaultParams(core.Params(7), core.Int(1)))
	assert.Nil(t, DefaultParams(nil))

	in := core.Params(7)
	out := DefaultParams(in, core.Int(1))
	out[0] = core.Int(8)
	assert.Equal(t, core.Params(7), in)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, core.Params(10), Truncate(core.Params(10, 20, 30), 1))
	assert.Equal(t, core.Params(10, 20), Truncate(core.Params(10, 20), 3))
	assert.Empty(t, Truncate(core.Params(10), -1))
}

func TestBoundedLength(t *testing.T) {
	transform := BoundedLength("nvarchar", LengthLimit{Max: 4000, LegacyMajor: 8, Legacy: core.Int(4000), Unbounded: core.Unbounded()}, 1)

	tests := []struct {
		name string
		spec core.TypeSpec
		d    dialect.Dialect
		want string
	}{
		{name: "default length", spec: core.NewTypeSpec("nvarchar", nil, "", ""), d: dialect.Versioned(testKind, 15), want: "nvarchar(1)"},
		{name: "truncated", spec: core.NewTypeSpec("nvarchar", core.Params(10, 20, 30), "", ""), d: dialect.Versioned(testKind, 15), want: "nvarchar(10)"},
		{name: "unbounded keeps modifiers", spec: core.NewTypeSpec("nvarchar", core.Params(5000), "COLLATE x", ""), d: dialect.Versioned(testKind, 15), want: "nvarchar(MAX) COLLATE x"},
		{name: "legacy", spec: core.NewTypeSpec("nvarchar", core.Params(5000), "", ""), d: dialect.Versioned(testKind, 8), want: "nvarchar(4000)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := transform(context.Background(), tt.spec, tt.d)
			assert.Equal(t, tt.want, out.String())
		})
	}
}
