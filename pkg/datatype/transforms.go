package datatype

import (
	"context"
	"strings"

	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// Keep passes the canonical spec through unchanged.
func Keep() TransformFunc {
	return func(_ context.Context, spec core.TypeSpec, _ dialect.Dialect) core.DialectType {
		return core.NewDialectType(spec.Name, spec.Params, spec.Modifiers)
	}
}

// Upper passes the spec through with its canonical name upper-cased.
// Rules registered on parent types use it so child types keep their names.
func Upper() TransformFunc {
	return func(_ context.Context, spec core.TypeSpec, _ dialect.Dialect) core.DialectType {
		return core.NewDialectType(strings.ToUpper(spec.Name), spec.Params, spec.Modifiers)
	}
}

// Rename keeps parameters and modifiers under a different name.
func Rename(name string) TransformFunc {
	return func(_ context.Context, spec core.TypeSpec, _ dialect.Dialect) core.DialectType {
		return core.NewDialectType(name, spec.Params, spec.Modifiers)
	}
}

// Bare renames the type and drops its parameters.
func Bare(name string) TransformFunc {
	return func(_ context.Context, spec core.TypeSpec, _ dialect.Dialect) core.DialectType {
		return core.NewDialectType(name, nil, spec.Modifiers)
	}
}

// Fixed renames the type and replaces its parameters.
func Fixed(name string, params ...core.Param) TransformFunc {
	return func(_ context.Context, spec core.TypeSpec, _ dialect.Dialect) core.DialectType {
		return core.NewDialectType(name, params, spec.Modifiers)
	}
}

// Since selects between two transforms by database major version.
// Versions >= major (and unknown versions) use newer.
func Since(major int, newer, older TransformFunc) TransformFunc {
	return func(ctx context.Context, spec core.TypeSpec, d dialect.Dialect) core.DialectType {
		if d.AtLeast(ctx, major) {
			return newer(ctx, spec, d)
		}
		return older(ctx, spec, d)
	}
}

// BoundedLength builds the transform used by character types whose single
// length parameter is capped by the dialect: oversized or non-numeric lengths
// become the limit's replacement, a missing length becomes defaultLength and
// extra parameters are dropped. The name is escaped for the dialect.
func BoundedLength(name string, limit LengthLimit, defaultLength int64) TransformFunc {
	return func(ctx context.Context, spec core.TypeSpec, d dialect.Dialect) core.DialectType {
		typeName := dialect.EscapeTypeName(d.Kind, name)
		params := spec.Params
		if len(params) > 0 {
			if p, replaced := limit.Apply(ctx, spec.Name, params[0], d); replaced {
				return core.NewDialectType(typeName, []core.Param{p}, spec.Modifiers)
			}
		}
		params = Truncate(DefaultParams(params, core.Int(defaultLength)), 1)
		return core.NewDialectType(typeName, params, spec.Modifiers)
	}
}

// Sized renames the type (escaped for the dialect) and keeps a single
// length parameter, defaulting it when absent.
func Sized(name string, defaultLength int64) TransformFunc {
	return func(_ context.Context, spec core.TypeSpec, d dialect.Dialect) core.DialectType {
		params := Truncate(DefaultParams(spec.Params, core.Int(defaultLength)), 1)
		return core.NewDialectType(dialect.EscapeTypeName(d.Kind, name), params, spec.Modifiers)
	}
}
