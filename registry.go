package rubriclist

import (
	"slices"
	"strings"
	"sync"
)

// ModuleType describes how to link to an activity of one module type.
type ModuleType struct {
	// Path is the activity view path, e.g. /mod/assign/view.php.
	Path string
	// ID returns the id parameter of the view link.
	ID func(Record) int64
	// Name returns the activity instance name.
	Name func(Record) string
}

// Registry maps module type identifiers to their [ModuleType].
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]ModuleType
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]ModuleType)}
}

// DefaultRegistry returns a registry with assign and forum registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("assign", ModuleType{
		Path: "/mod/assign/view.php",
		ID:   CMID,
		Name: func(rec Record) string { return rec.Assignment },
	})
	r.Register("forum", ModuleType{
		Path: "/mod/forum/view.php",
		ID:   CMID,
		Name: func(rec Record) string { return rec.Forum },
	})
	return r
}

// Register adds or replaces the module type for modtype.
func (r *Registry) Register(modtype string, mt ModuleType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[modtype] = mt
}

// Lookup returns the module type registered for modtype.
func (r *Registry) Lookup(modtype string) (ModuleType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	mt, ok := r.types[modtype]
	return mt, ok
}

// Types returns the registered module type identifiers, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.types))
	for k := range r.types {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// CMID returns the course module id of rec.
func CMID(rec Record) int64 { return rec.CMID }

// ExtraName reads the activity name from the extra column field. Scan keys
// Extra by lowercased column name, so field matches in any case.
func ExtraName(field string) func(Record) string {
	key := strings.ToLower(field)
	return func(rec Record) string { return rec.Extra[key] }
}
