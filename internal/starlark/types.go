// Package starlark loads user-written type rules from Starlark scripts.
//
// A rule script calls the predeclared rule() builtin once per rule:
//
//	def oracle_nvarchar(spec, dialect):
//	    if dialect.at_most(11):
//	        return {"name": "NVARCHAR2", "params": [2000]}
//	    return "NVARCHAR2"
//
//	rule(type = "nvarchar", dialects = ["oracle"], transform = oracle_nvarchar)
//
// The transform receives the canonical spec and the target dialect as
// structs and returns either a type name (parameters and modifiers are kept),
// a dict with any of name, params and modifiers, or None for the canonical
// form.
package starlark

import (
	"context"
	"fmt"

	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// SpecToStarlark converts a spec to the struct passed to transforms:
// spec.name, spec.params, spec.modifiers, spec.raw.
func SpecToStarlark(spec core.TypeSpec) starlark.Value {
	params := make([]any, len(spec.Params))
	for i, p := range spec.Params {
		params[i] = paramToGo(p)
	}
	// params only holds strings and int64 values, conversion cannot fail
	list, _ := GoToStarlark(params)

	return starlarkstruct.FromStringDict(starlark.String("spec"), starlark.StringDict{
		"name":      starlark.String(spec.Name),
		"params":    list,
		"modifiers": starlark.String(spec.Modifiers),
		"raw":       starlark.String(spec.Raw),
	})
}

// paramToGo returns integer parameters as int64 and everything else
// (including MAX) as its spelling.
func paramToGo(p core.Param) any {
	if n, ok := p.Int64(); ok {
		return n
	}
	return p.String()
}

// DialectToStarlark converts a dialect to the struct passed to transforms.
// dialect.kind is the dialect name; dialect.version() returns the major
// version or None when the probe fails; dialect.at_most(n) and
// dialect.at_least(n) follow the fail-open rules of dialect.Dialect.
func DialectToStarlark(ctx context.Context, d dialect.Dialect) starlark.Value {
	version := starlark.NewBuiltin("version", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
			return nil, err
		}
		major, err := d.Version(ctx)
		if err != nil {
			return starlark.None, nil
		}
		return starlark.MakeInt(major), nil
	})

	compare := func(name string, cmp func(context.Context, int) bool) *starlark.Builtin {
		return starlark.NewBuiltin(name, func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var major int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &major); err != nil {
				return nil, err
			}
			return starlark.Bool(cmp(ctx, major)), nil
		})
	}

	return starlarkstruct.FromStringDict(starlark.String("dialect"), starlark.StringDict{
		"kind":     starlark.String(d.Kind),
		"version":  version,
		"at_most":  compare("at_most", d.AtMost),
		"at_least": compare("at_least", d.AtLeast),
	})
}

// GoToStarlark converts a Go value to a Starlark value.
// Supported types: string, int, int64, bool, []string, []any, map[string]any
func GoToStarlark(v any) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}

	switch val := v.(type) {
	case string:
		return starlark.String(val), nil

	case int:
		return starlark.MakeInt(val), nil

	case int64:
		return starlark.MakeInt64(val), nil

	case bool:
		return starlark.Bool(val), nil

	case []string:
		list := make([]starlark.Value, len(val))
		for i, s := range val {
			list[i] = starlark.String(s)
		}
		return starlark.NewList(list), nil

	case []any:
		list := make([]starlark.Value, len(val))
		for i, item := range val {
			sv, err := GoToStarlark(item)
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			list[i] = sv
		}
		return starlark.NewList(list), nil

	case map[string]any:
		dict := starlark.NewDict(len(val))
		for k, v := range val {
			sv, err := GoToStarlark(v)
			if err != nil {
				return nil, fmt.Errorf("dict key %q: %w", k, err)
			}
			if err := dict.SetKey(starlark.String(k), sv); err != nil {
				return nil, fmt.Errorf("dict setkey %q: %w", k, err)
			}
		}
		return dict, nil

	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

// ToGo converts a Starlark value back to a Go value.
// Returns: string, int64, bool, []any, map[string]any, or nil.
// Floats are rejected since no type parameter is fractional.
func ToGo(v starlark.Value) (any, error) {
	switch val := v.(type) {
	case starlark.NoneType:
		return nil, nil

	case starlark.String:
		return string(val), nil

	case starlark.Int:
		i64, ok := val.Int64()
		if !ok {
			return nil, fmt.Errorf("integer %s out of range", val.String())
		}
		return i64, nil

	case starlark.Bool:
		return bool(val), nil

	case *starlark.List:
		result := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			gv, err := ToGo(val.Index(i))
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			result[i] = gv
		}
		return result, nil

	case starlark.Tuple:
		result := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			gv, err := ToGo(val.Index(i))
			if err != nil {
				return nil, fmt.Errorf("tuple index %d: %w", i, err)
			}
			result[i] = gv
		}
		return result, nil

	case *starlark.Dict:
		result := make(map[string]any, val.Len())
		for _, item := range val.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				return nil, fmt.Errorf("dict key must be string, got %s", item[0].Type())
			}
			gv, err := ToGo(item[1])
			if err != nil {
				return nil, fmt.Errorf("dict key %q: %w", key, err)
			}
			result[string(key)] = gv
		}
		return result, nil

	default:
		return nil, fmt.Errorf("unsupported Starlark type %s", v.Type())
	}
}
