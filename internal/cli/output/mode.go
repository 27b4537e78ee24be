// Package output renders command results for terminals, pipes and machines.
//
// The effective mode depends on the requested mode and on whether stdout is
// a terminal: auto renders styled text on a TTY and markdown otherwise.
package output

import "strings"

// OutputMode selects how results are written.
type OutputMode string //nolint:revive // output.OutputMode reads better than output.Output at call sites

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
	ModeYAML     OutputMode = "yaml"
)

// Modes lists every accepted mode.
var Modes = []OutputMode{ModeAuto, ModeText, ModeMarkdown, ModeJSON, ModeYAML}

// Mode parses a mode name. Unknown or empty names yield ModeAuto.
// "md" and "yml" are accepted as shorthands.
func Mode(s string) OutputMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "table":
		return ModeText
	case "markdown", "md":
		return ModeMarkdown
	case "json":
		return ModeJSON
	case "yaml", "yml":
		return ModeYAML
	default:
		return ModeAuto
	}
}

// Structured reports whether the mode is machine-readable.
func (m OutputMode) Structured() bool {
	return m == ModeJSON || m == ModeYAML
}
