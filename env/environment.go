// Package env implements the runtime variable environment: a flat
// name-to-integer mapping with last-write-wins semantics, owned
// exclusively by one Interpret call. There are no functions, no
// closures, and no nested blocks that introduce their own bindings, so
// there is no parent scope to walk and nothing to shadow: every
// daca/cat-timp/pentru body reads and writes the same single
// Environment as the rest of the program.
package env

// Environment holds the current value of every variable that has been
// read into or assigned in a program. Variables are created lazily on
// first write; there is no way to remove one.
type Environment struct {
	values map[string]int32
}

// New creates an empty Environment ready for one Interpret call.
func New() *Environment {
	return &Environment{values: make(map[string]int32)}
}

// Get returns the current value of name and whether it has been bound
// yet. A false result means the caller should raise
// errs.VariableNotDefined.
func (e *Environment) Get(name string) (int32, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Set binds name to value, overwriting any previous binding.
func (e *Environment) Set(name string, value int32) {
	e.values[name] = value
}
