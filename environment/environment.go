/*
File    : wisp/environment/environment.go
*/

// Package environment implements the lexical scope chain: each Environment
// is one frame, owning a name-to-value mapping and a reference to its
// enclosing frame. The global frame has no enclosing and lives for the
// whole interpretation; every other frame's lifetime equals the lifetime
// of the block that created it.
package environment

import "github.com/wisplang/wisp/value"

// Environment is one frame in the scope chain.
type Environment struct {
	values    map[string]value.Value
	enclosing *Environment
}

// New creates a frame whose enclosing scope is enclosing. Pass nil to
// create the global frame.
func New(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), enclosing: enclosing}
}

// Define binds name to v in this frame only. Redefining a name already
// bound in this frame overwrites it.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get walks the enclosing chain from this frame outward and returns the
// first binding found for name. The second result is false if no frame in
// the chain defines name.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, false
}

// Assign walks the enclosing chain and updates name in the first frame that
// already defines it. It never creates a new binding — assignment to an
// undeclared name fails (returns false) so the caller can raise the
// "Undefined variable" runtime error.
func (e *Environment) Assign(name string, v value.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}
	return false
}
