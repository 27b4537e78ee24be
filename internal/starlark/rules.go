package starlark

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/datatype"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"
)

// DefaultMaxSteps bounds the work a single transform call may do.
const DefaultMaxSteps = 1_000_000

const collectorKey = "leaptype.rules"

// LoadError describes a rule script that could not be loaded.
type LoadError struct {
	File    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// ScriptRule is a rule declared by a script, ready for registration.
type ScriptRule struct {
	// Type is the canonical type name or alias given to rule()
	Type string
	Rule datatype.Rule
}

// Loader executes rule scripts and turns their rule() calls into
// datatype rules backed by Starlark functions.
type Loader struct {
	pool     *ThreadPool
	logger   *slog.Logger
	maxSteps uint64
}

// NewLoader returns a loader. A nil logger discards output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		pool:     NewThreadPool(DefaultPoolSize, logger),
		logger:   logger,
		maxSteps: DefaultMaxSteps,
	}
}

// SetMaxSteps changes the per-call execution step limit.
func (l *Loader) SetMaxSteps(n uint64) {
	if n > 0 {
		l.maxSteps = n
	}
}

// LoadFile reads and executes a single .star file.
func (l *Loader) LoadFile(path string) ([]ScriptRule, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: script paths come from user configuration
	if err != nil {
		return nil, &LoadError{File: path, Message: fmt.Sprintf("failed to read file: %v", err)}
	}
	return l.Load(path, content)
}

// Load executes script source and returns the rules it declared, in
// declaration order.
func (l *Loader) Load(filename string, src []byte) ([]ScriptRule, error) {
	var rules []ScriptRule

	thread := &starlark.Thread{
		Name: "load:" + filepath.Base(filename),
		Print: func(_ *starlark.Thread, msg string) {
			l.logger.Debug("script print", slog.String("file", filename), slog.String("msg", msg))
		},
	}
	thread.SetLocal(collectorKey, &rules)

	if _, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, filename, src, l.predeclared(filename)); err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			return nil, &LoadError{File: filename, Message: evalErr.Backtrace()}
		}
		return nil, &LoadError{File: filename, Message: err.Error()}
	}

	l.logger.Debug("loaded rule script", slog.String("file", filename), slog.Int("rules", len(rules)))
	return rules, nil
}

// RegisterFiles loads every script and registers its rules on reg.
func (l *Loader) RegisterFiles(reg *datatype.Registry, paths ...string) error {
	for _, path := range paths {
		rules, err := l.LoadFile(path)
		if err != nil {
			return err
		}
		for _, sr := range rules {
			if err := reg.Register(sr.Type, sr.Rule); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	return nil
}

func (l *Loader) predeclared(filename string) starlark.StringDict {
	return starlark.StringDict{
		"rule":              starlark.NewBuiltin("rule", l.ruleBuiltin(filename)),
		"struct":            starlark.NewBuiltin("struct", starlarkstruct.Make),
		"MAX":               starlark.String(core.UnboundedToken),
		"PRIORITY_DEFAULT":  starlark.MakeInt(datatype.PriorityDefault),
		"PRIORITY_DATABASE": starlark.MakeInt(datatype.PriorityDatabase),
		"PRIORITY_OVERRIDE": starlark.MakeInt(datatype.PriorityOverride),
	}
}

// ruleBuiltin implements rule(type, transform, dialects=[], specificity=PRIORITY_OVERRIDE, name="").
func (l *Loader) ruleBuiltin(filename string) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		collector, ok := thread.Local(collectorKey).(*[]ScriptRule)
		if !ok {
			return nil, fmt.Errorf("%s: may only be called while loading a rule script", fn.Name())
		}

		var (
			typeName    string
			transform   starlark.Callable
			dialects    *starlark.List
			specificity = datatype.PriorityOverride
			name        string
		)
		if err := starlark.UnpackArgs(fn.Name(), args, kwargs,
			"type", &typeName,
			"transform", &transform,
			"dialects?", &dialects,
			"specificity?", &specificity,
			"name?", &name,
		); err != nil {
			return nil, err
		}
		if strings.TrimSpace(typeName) == "" {
			return nil, fmt.Errorf("%s: type must not be empty", fn.Name())
		}

		var kinds []core.DialectKind
		if dialects != nil {
			for i := 0; i < dialects.Len(); i++ {
				s, ok := starlark.AsString(dialects.Index(i))
				if !ok {
					return nil, fmt.Errorf("%s: dialects[%d] must be a string, got %s", fn.Name(), i, dialects.Index(i).Type())
				}
				kind, ok := dialect.Lookup(s)
				if !ok {
					return nil, fmt.Errorf("%s: unknown dialect %q (available: %v)", fn.Name(), s, dialect.List())
				}
				kinds = append(kinds, kind)
			}
		}

		if name == "" {
			name = fmt.Sprintf("script.%s:%s", strings.TrimSuffix(filepath.Base(filename), ".star"), strings.ToLower(typeName))
		}

		*collector = append(*collector, ScriptRule{
			Type: typeName,
			Rule: datatype.Rule{
				Name:        name,
				Dialects:    kinds,
				Specificity: specificity,
				Transform:   l.transform(name, transform),
			},
		})
		return starlark.None, nil
	}
}

// transform wraps a Starlark function as a datatype.TransformFunc.
// Script failures are logged and resolve to the canonical form, since a
// transform cannot report errors.
func (l *Loader) transform(ruleName string, fn starlark.Callable) datatype.TransformFunc {
	return func(ctx context.Context, spec core.TypeSpec, d dialect.Dialect) core.DialectType {
		canonical := core.NewDialectType(spec.Name, spec.Params, spec.Modifiers)
		if ctx.Err() != nil {
			return canonical
		}

		thread := l.pool.Get(ruleName)
		thread.SetMaxExecutionSteps(thread.ExecutionSteps() + l.maxSteps)
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})

		v, err := starlark.Call(thread, fn, starlark.Tuple{SpecToStarlark(spec), DialectToStarlark(ctx, d)}, nil)
		cancelled := !stop()
		if err != nil {
			// the thread may have been cancelled by the step limit or ctx
			l.logger.Warn("rule script failed, using canonical type",
				slog.String("rule", ruleName),
				slog.String("type", spec.Name),
				slog.String("error", err.Error()))
			return canonical
		}
		if !cancelled {
			l.pool.Put(thread)
		}

		result, err := decodeResult(spec, v)
		if err != nil {
			l.logger.Warn("rule script returned an invalid result, using canonical type",
				slog.String("rule", ruleName),
				slog.String("type", spec.Name),
				slog.String("error", err.Error()))
			return canonical
		}
		return result
	}
}

// scriptResult is the dict form of a transform result. Absent keys keep the
// corresponding part of the spec.
type scriptResult struct {
	Name      *string `mapstructure:"name"`
	Params    *[]any  `mapstructure:"params"`
	Modifiers *string `mapstructure:"modifiers"`
}

func decodeResult(spec core.TypeSpec, v starlark.Value) (core.DialectType, error) {
	if v == starlark.None {
		return core.NewDialectType(spec.Name, spec.Params, spec.Modifiers), nil
	}
	if s, ok := v.(starlark.String); ok {
		return core.NewDialectType(string(s), spec.Params, spec.Modifiers), nil
	}

	raw, err := ToGo(v)
	if err != nil {
		return core.DialectType{}, err
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return core.DialectType{}, fmt.Errorf("transform must return a string, dict or None, got %s", v.Type())
	}

	var res scriptResult
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &res,
		ErrorUnused: true,
	})
	if err != nil {
		return core.DialectType{}, err
	}
	if err := dec.Decode(m); err != nil {
		return core.DialectType{}, err
	}

	out := core.NewDialectType(spec.Name, spec.Params, spec.Modifiers)
	if res.Name != nil {
		if strings.TrimSpace(*res.Name) == "" {
			return core.DialectType{}, fmt.Errorf("name must not be empty")
		}
		out.Name = *res.Name
	}
	if res.Params != nil {
		params := make([]core.Param, 0, len(*res.Params))
		for i, p := range *res.Params {
			switch pv := p.(type) {
			case int64:
				params = append(params, core.Int(pv))
			case string:
				params = append(params, core.ParseParam(pv))
			default:
				return core.DialectType{}, fmt.Errorf("params[%d]: expected int or string, got %T", i, p)
			}
		}
		out.Params = params
	}
	if res.Modifiers != nil {
		out.Modifiers = *res.Modifiers
	}
	return out, nil
}
