package dialect

import (
	"sort"
	"strings"
	"sync"

	"github.com/leapstack-labs/leaptype/pkg/core"
)

// Info describes a registered dialect.
type Info struct {
	Kind        core.DialectKind
	Name        string   // Display name, e.g. "Microsoft SQL Server"
	Aliases     []string // Alternative spellings accepted by Lookup, e.g. "sqlserver"
	Identifiers IdentifierConfig
}

// Dialect registry
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[core.DialectKind]Info)
	aliases    = make(map[string]core.DialectKind)
)

// Register registers a dialect in the global registry.
// Called by dialect implementations in their init() functions.
func Register(info Info) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	kind := core.DialectKind(strings.ToLower(string(info.Kind)))
	info.Kind = kind
	dialects[kind] = info
	aliases[string(kind)] = kind
	for _, a := range info.Aliases {
		aliases[strings.ToLower(a)] = kind
	}
}

// Get returns a dialect's metadata by kind.
func Get(kind core.DialectKind) (Info, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	info, ok := dialects[core.DialectKind(strings.ToLower(string(kind)))]
	return info, ok
}

// Lookup resolves a user-supplied name or alias to a registered kind.
func Lookup(name string) (core.DialectKind, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	kind, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	return kind, ok
}

// List returns all registered dialect kinds (sorted).
func List() []core.DialectKind {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	kinds := make([]core.DialectKind, 0, len(dialects))
	for kind := range dialects {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// EscapeTypeName quotes a type name for the given dialect when needed.
// Unregistered dialects get the name unchanged.
func EscapeTypeName(kind core.DialectKind, name string) string {
	info, ok := Get(kind)
	if !ok {
		return name
	}
	return info.Identifiers.EscapeTypeName(name)
}
