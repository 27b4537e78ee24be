package datatype

// Unlimited marks a TypeDef without a parameter maximum.
const Unlimited = -1

// TypeDef describes a canonical type.
type TypeDef struct {
	// Name is the canonical name (lower case)
	Name string
	// Aliases are alternative names resolved to Name (e.g. "nvarchar2")
	Aliases []string
	// Synonyms are legacy phrases that, when present in a spec's raw text,
	// mean the spec's modifiers only restate the type and are dropped
	Synonyms []string
	// MinParams and MaxParams bound the parameter count; MaxParams may be Unlimited
	MinParams int
	MaxParams int
	// Parent names the type whose rules this type inherits
	Parent string
}

// ClampParams reports how many parameters a spec with n parameters keeps.
func (d TypeDef) ClampParams(n int) int {
	if d.MaxParams != Unlimited && n > d.MaxParams {
		return d.MaxParams
	}
	return n
}
