package core

import (
	"errors"
	"fmt"
	"strings"
)

// DialectKind identifies a database dialect (e.g. "mssql", "postgres").
// Kinds are compared by value; new dialects simply introduce new kinds.
type DialectKind string

// String returns the kind as a string.
func (k DialectKind) String() string {
	return string(k)
}

// ErrNoProbe is the cause reported when a dialect has no version probe.
var ErrNoProbe = errors.New("no version probe configured")

// UnknownTypeError is returned when no rule chain is registered for a type.
type UnknownTypeError struct {
	Type    string
	Dialect DialectKind
	Known   []string
}

func (e *UnknownTypeError) Error() string {
	msg := fmt.Sprintf("unknown data type %q for dialect %q", e.Type, e.Dialect)
	if len(e.Known) > 0 {
		msg += fmt.Sprintf("\nKnown types: %s", strings.Join(e.Known, ", "))
	}
	return msg
}

// ProbeError is reported when a dialect's version cannot be determined.
// Resolution never fails because of it: an unknown version is treated as the newest.
type ProbeError struct {
	Dialect DialectKind
	Err     error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("version probe for %s failed: %v", e.Dialect, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// ParameterFormatError is reported when a parameter that must be numeric is not.
// Transforms treat it like a value that exceeds the dialect maximum.
type ParameterFormatError struct {
	Type  string
	Index int
	Value string
}

func (e *ParameterFormatError) Error() string {
	return fmt.Sprintf("parameter %d of %s is not numeric: %q", e.Index, e.Type, e.Value)
}
