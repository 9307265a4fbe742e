// Package builtins implements Mussel's standard-library surface (spec §4.4):
// the always-available println/input pair plus the five includable
// libraries (random, string, time, math, os). The name->Fn registry shape is
// carried over from CWBudde-go-dws's internal/interp/builtins/registry.go,
// generalized from DWScript's single always-open namespace (with
// category/description metadata for introspection) to Mussel's simpler
// include-gated one, where the library name a builtin arrived under is
// exactly the switch case in Include below and nothing further needs
// tracking; the mutex that package carries is also dropped, since the
// registry is mutated only from the evaluator's own call stack (spec §5).
package builtins

import "github.com/musselscript/mussel/internal/value"

// Fn is a native callable's signature: it receives already-evaluated
// arguments and returns a result or a diagnostic error.
type Fn func(args []value.Value) (value.Value, error)

// Registry is a name->Fn table seeded by Include evaluation (spec §4.2.1).
// Always-available functions are present from construction.
type Registry struct {
	functions map[string]Fn
}

// NewRegistry builds a registry preloaded with the always-available
// builtins, bound to the given I/O host.
func NewRegistry(io *IO) *Registry {
	r := &Registry{functions: make(map[string]Fn, 16)}
	for name, fn := range alwaysAvailable(io) {
		r.functions[name] = fn
	}
	return r
}

// Lookup returns the registered builtin for name, if any.
func (r *Registry) Lookup(name string) (Fn, bool) {
	fn, ok := r.functions[name]
	return fn, ok
}

// Include registers library's builtins. Returns false for an unknown
// library name (the caller raises ImportError).
func (r *Registry) Include(library string, rng *RNG) bool {
	var set map[string]Fn
	switch library {
	case "random":
		set = randomLibrary(rng)
	case "string":
		set = stringLibrary()
	case "time":
		set = timeLibrary()
	case "math":
		set = mathLibrary()
	case "os":
		set = osLibrary()
	default:
		return false
	}
	for name, fn := range set {
		r.functions[name] = fn
	}
	return true
}
