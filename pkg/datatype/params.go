package datatype

import (
	"context"

	"github.com/leapstack-labs/leaptype/pkg/core"
	"github.com/leapstack-labs/leaptype/pkg/dialect"
)

// LengthLimit describes the largest length a dialect accepts for a single
// length parameter and what to write instead when it is exceeded.
type LengthLimit struct {
	// Max is the largest literal length accepted (e.g. 4000)
	Max int64
	// LegacyMajor is the newest major version that cannot express "no limit".
	// Zero means every version can.
	LegacyMajor int
	// Legacy replaces oversized lengths on legacy versions (e.g. 4000)
	Legacy core.Param
	// Unbounded replaces oversized lengths otherwise (e.g. MAX)
	Unbounded core.Param
}

// Apply returns the parameter to use in place of p.
// A non-numeric p is treated like one exceeding Max. The second result
// reports whether p was replaced.
func (l LengthLimit) Apply(ctx context.Context, typeName string, p core.Param, d dialect.Dialect) (core.Param, bool) {
	n, err := NumericParam(typeName, 0, p)
	if err == nil && n <= l.Max {
		return p, false
	}
	if l.LegacyMajor > 0 && d.AtMost(ctx, l.LegacyMajor) {
		return l.Legacy, true
	}
	return l.Unbounded, true
}

// NumericParam returns p as an integer or a *core.ParameterFormatError.
func NumericParam(typeName string, index int, p core.Param) (int64, error) {
	n, ok := p.Int64()
	if !ok {
		return 0, &core.ParameterFormatError{Type: typeName, Index: index, Value: p.String()}
	}
	return n, nil
}

// DefaultParams returns params, or defaults when params is empty.
func DefaultParams(params []core.Param, defaults ...core.Param) []core.Param {
	if len(params) == 0 {
		return core.CloneParams(defaults)
	}
	return core.CloneParams(params)
}

// Truncate keeps the leading n parameters.
func Truncate(params []core.Param, n int) []core.Param {
	if n < 0 {
		n = 0
	}
	if len(params) > n {
		params = params[:n]
	}
	return core.CloneParams(params)
}
