package eval

import "sort"

// Environment is one scope in a chain of scopes. Closures created in the
// same scope share it, and it lives as long as any of them does.
type Environment struct {
	store map[string]Value
	outer *Environment
}

// NewEnvironment returns an empty scope enclosed by outer, which is nil
// for the root scope of a session.
func NewEnvironment(outer *Environment) *Environment {
	return &Environment{
		store: map[string]Value{},
		outer: outer,
	}
}

// Outer returns the enclosing scope, or nil at the root.
func (e *Environment) Outer() *Environment { return e.outer }

// Get looks name up in this scope, then in each enclosing scope in turn.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.store[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Lookup is Get, failing with a NameError when name is unbound.
func (e *Environment) Lookup(name string) (Value, error) {
	if v, ok := e.Get(name); ok {
		return v, nil
	}
	return nil, nameError(name)
}

// Define binds name in this scope only, replacing any earlier binding
// here. Enclosing scopes are never touched.
func (e *Environment) Define(name string, value Value) {
	e.store[name] = value
}

// Names returns the names bound directly in this scope, sorted.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
