package datatype

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// ErrRegistryFrozen is returned when a registry is modified after Freeze.
var ErrRegistryFrozen = errors.New("type registry is frozen")

// Registry holds canonical type definitions and their rules.
//
// A registry is populated during initialization and then frozen. Before
// Freeze, reads take a read lock; afterwards they use an immutable snapshot.
type Registry struct {
	mu    sync.RWMutex
	defs  map[string]TypeDef // canonical name -> definition
	names map[string]string  // lower-cased name or alias -> canonical name
	rules map[string][]Rule  // canonical name -> own rules in registration order

	frozen atomic.Pointer[snapshot]
}

type snapshot struct {
	defs   map[string]TypeDef
	names  map[string]string
	chains map[string]*Chain
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs:  make(map[string]TypeDef),
		names: make(map[string]string),
		rules: make(map[string][]Rule),
	}
}

// Define adds or replaces a canonical type definition.
func (r *Registry) Define(def TypeDef) error {
	name := strings.ToLower(strings.TrimSpace(def.Name))
	if name == "" {
		return fmt.Errorf("type definition requires a name")
	}
	if def.MaxParams != Unlimited && def.MinParams > def.MaxParams {
		return fmt.Errorf("type %s: min params %d exceeds max params %d", name, def.MinParams, def.MaxParams)
	}
	def.Name = name

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen.Load() != nil {
		return ErrRegistryFrozen
	}
	for _, alias := range def.Aliases {
		key := strings.ToLower(strings.TrimSpace(alias))
		if owner, ok := r.names[key]; ok && owner != name {
			return fmt.Errorf("type %s: alias %q already belongs to %s", name, alias, owner)
		}
	}
	r.defs[name] = def
	r.names[name] = name
	for _, alias := range def.Aliases {
		r.names[strings.ToLower(strings.TrimSpace(alias))] = name
	}
	return nil
}

// Register appends a rule to a type's chain. typeName may be an alias.
// Registering for an undefined name defines it with no parameter limits.
func (r *Registry) Register(typeName string, rule Rule) error {
	if rule.Transform == nil {
		return fmt.Errorf("rule %q for type %s has no transform", rule.Name, typeName)
	}
	key := strings.ToLower(strings.TrimSpace(typeName))
	if key == "" {
		return fmt.Errorf("rule %q requires a type name", rule.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen.Load() != nil {
		return ErrRegistryFrozen
	}
	name, ok := r.names[key]
	if !ok {
		name = key
		r.defs[name] = TypeDef{Name: name, MaxParams: Unlimited}
		r.names[name] = name
	}
	r.rules[name] = append(r.rules[name], rule)
	return nil
}

// Freeze makes the registry read-only and publishes an immutable snapshot.
// Calling Freeze more than once is harmless.
func (r *Registry) Freeze() {
	if r.frozen.Load() != nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := &snapshot{
		defs:   make(map[string]TypeDef, len(r.defs)),
		names:  make(map[string]string, len(r.names)),
		chains: make(map[string]*Chain, len(r.defs)),
	}
	for name, def := range r.defs {
		snap.defs[name] = def
		snap.chains[name] = r.buildChainLocked(name)
	}
	for alias, name := range r.names {
		snap.names[alias] = name
	}
	r.frozen.Store(snap)
}

// Clone returns an unfrozen copy holding the same definitions and rules.
// Callers layer their own rules on the copy without touching r.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := NewRegistry()
	for name, def := range r.defs {
		c.defs[name] = def
	}
	for alias, name := range r.names {
		c.names[alias] = name
	}
	for name, rules := range r.rules {
		c.rules[name] = slices.Clone(rules)
	}
	return c
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen.Load() != nil
}

// Lookup resolves a name or alias to its definition and rule chain.
func (r *Registry) Lookup(name string) (TypeDef, *Chain, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if snap := r.frozen.Load(); snap != nil {
		canonical, ok := snap.names[key]
		if !ok {
			return TypeDef{}, nil, false
		}
		return snap.defs[canonical], snap.chains[canonical], true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	canonical, ok := r.names[key]
	if !ok {
		return TypeDef{}, nil, false
	}
	return r.defs[canonical], r.buildChainLocked(canonical), true
}

// Known reports whether name is a registered type name or alias.
func (r *Registry) Known(name string) bool {
	key := strings.ToLower(strings.TrimSpace(name))
	if snap := r.frozen.Load(); snap != nil {
		_, ok := snap.names[key]
		return ok
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.names[key]
	return ok
}

// Names returns all canonical type names (sorted).
func (r *Registry) Names() []string {
	defs := r.Types()
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	return names
}

// Types returns all type definitions sorted by name.
func (r *Registry) Types() []TypeDef {
	var defs []TypeDef
	if snap := r.frozen.Load(); snap != nil {
		defs = make([]TypeDef, 0, len(snap.defs))
		for _, d := range snap.defs {
			defs = append(defs, d)
		}
	} else {
		r.mu.RLock()
		defs = make([]TypeDef, 0, len(r.defs))
		for _, d := range r.defs {
			defs = append(defs, d)
		}
		r.mu.RUnlock()
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// buildChainLocked collects the own rules of name followed by its ancestors',
// one level at a time.
// Caller must hold r.mu.
func (r *Registry) buildChainLocked(name string) *Chain {
	var levels [][]Rule
	visited := make(map[string]bool)
	for cur := name; cur != "" && !visited[cur]; {
		visited[cur] = true
		levels = append(levels, r.rules[cur])
		def, ok := r.defs[cur]
		if !ok || def.Parent == "" {
			break
		}
		cur = r.names[strings.ToLower(def.Parent)]
	}
	return newChain(name, levels...)
}

// Default registry, populated by builtin definitions and dialect packages.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// DefineType adds a type definition to the default registry.
func DefineType(def TypeDef) error {
	return defaultRegistry.Define(def)
}

// MustDefineType is like DefineType but panics on error.
// Intended for init() functions.
func MustDefineType(def TypeDef) {
	if err := defaultRegistry.Define(def); err != nil {
		panic(err)
	}
}

// Register adds a rule to the default registry.
func Register(typeName string, rule Rule) error {
	return defaultRegistry.Register(typeName, rule)
}

// MustRegister is like Register but panics on error.
// Intended for init() functions.
func MustRegister(typeName string, rule Rule) {
	if err := defaultRegistry.Register(typeName, rule); err != nil {
		panic(err)
	}
}
