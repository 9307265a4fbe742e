package value

// Context is Mussel's lexically-scoped binding environment (spec §3.3),
// carried over directly from the teacher's Environment: a name->Value map
// plus a parent link. Lookups walk parents. A Function captures a *Context
// pointer (its Closure field), so once something may have captured a given
// frame, that frame's own map must never change what an existing name
// resolves to — only Rebind (not Define) is safe to call once a frame may
// have been captured; see Rebind for how a same-scope `let`/`fn` rebind
// stays snapshot-safe per spec §9.
type Context struct {
	parent *Context
	vars   map[string]Value
}

// NewContext creates a root or child Context. Pass nil for a root scope.
func NewContext(parent *Context) *Context {
	return &Context{parent: parent, vars: make(map[string]Value, 8)}
}

// Define binds name to value in this frame unconditionally, for callers
// that know the frame is fresh and nothing could have captured it yet —
// function-call argument binding and a for-loop's per-element frame, both
// of which hand out a brand new Context before anything runs in it. `let`
// and `fn` do not use Define; see Rebind.
func (c *Context) Define(name string, v Value) {
	c.vars[name] = v
}

// Rebind is what a `let` or `fn` statement actually calls to bind name to
// v in the scope currently executing. If name is not yet present in this
// exact frame, it's a first binding and is written in place, same as
// Define, and c itself is returned. If name already exists in this frame,
// c may already be some Function's captured Closure, so it is left
// untouched — frozen, from that closure's point of view — and v is
// written into a brand new child frame instead, which is returned as the
// frame the rest of the block should continue executing in. This is
// exactly spec §9's "shadowing creates new scope entries rather than
// overwriting captured ones": a Function formed before the rebind keeps
// resolving name in the old frame, and anything formed after the rebind
// (including later statements in the same block, via the returned
// Context) sees the new one.
func (c *Context) Rebind(name string, v Value) *Context {
	if _, exists := c.vars[name]; exists {
		next := NewContext(c)
		next.vars[name] = v
		return next
	}
	c.vars[name] = v
	return c
}

// Get resolves name by walking parent links, returning ok=false if unbound
// anywhere in the chain (spec §3.4: every Name must resolve or fail with
// NameError, raised by the caller).
func (c *Context) Get(name string) (Value, bool) {
	for ctx := c; ctx != nil; ctx = ctx.parent {
		if v, ok := ctx.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}
