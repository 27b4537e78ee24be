package core

import (
	"strconv"
	"strings"
)

// ParamKind classifies a type parameter.
type ParamKind int

const (
	// ParamInt is an integer length, precision or scale.
	ParamInt ParamKind = iota
	// ParamUnbounded is the "no limit" sentinel (MAX).
	ParamUnbounded
	// ParamText is any other token, kept verbatim.
	ParamText
)

// UnboundedToken is the spelling used for ParamUnbounded when none was supplied.
const UnboundedToken = "MAX"

// Param is a single type parameter, e.g. the 255 in varchar(255).
// The zero value is the integer 0.
type Param struct {
	kind ParamKind
	n    int64
	text string
}

// Int returns an integer parameter.
func Int(n int64) Param {
	return Param{kind: ParamInt, n: n}
}

// Unbounded returns the "no limit" parameter.
func Unbounded() Param {
	return Param{kind: ParamUnbounded, text: UnboundedToken}
}

// Text returns a parameter that is kept exactly as written.
func Text(s string) Param {
	return Param{kind: ParamText, text: s}
}

// ParseParam classifies a raw parameter token.
// Digit-only tokens become ParamInt unless they overflow int64, "max" (any case)
// becomes ParamUnbounded and everything else is preserved as ParamText.
func ParseParam(s string) Param {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, UnboundedToken) {
		return Param{kind: ParamUnbounded, text: s}
	}
	if isDigits(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(n)
		}
	}
	return Text(s)
}

// Params builds a parameter list from integers.
func Params(ns ...int64) []Param {
	out := make([]Param, len(ns))
	for i, n := range ns {
		out[i] = Int(n)
	}
	return out
}

// Kind returns the parameter classification.
func (p Param) Kind() ParamKind {
	return p.kind
}

// Int64 returns the integer value and whether the parameter is numeric.
func (p Param) Int64() (int64, bool) {
	if p.kind != ParamInt {
		return 0, false
	}
	return p.n, true
}

// IsUnbounded reports whether the parameter is the MAX sentinel.
func (p Param) IsUnbounded() bool {
	return p.kind == ParamUnbounded
}

// Equal reports whether two parameters are identical, including spelling.
func (p Param) Equal(o Param) bool {
	return p == o
}

// String returns the parameter as it appears inside DDL parentheses.
func (p Param) String() string {
	if p.kind == ParamInt {
		return strconv.FormatInt(p.n, 10)
	}
	return p.text
}

// CloneParams returns a copy of ps that shares no backing array with it.
func CloneParams(ps []Param) []Param {
	if ps == nil {
		return nil
	}
	out := make([]Param, len(ps))
	copy(out, ps)
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
