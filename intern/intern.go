// Package intern provides the pluggable capability behind grip's
// speculative intern operations: converting an ephemeral or owned value
// into a static/shared one by looking it up in (or admitting it to) some
// long-lived store.
//
// Interning is the only fallible conversion in the library. An interner
// signals declined admission by returning false; it never panics, and
// callers always keep a usable value on the failure path.
package intern

// Interner converts a view E into a retainable reference S, or declines.
type Interner[E, S any] interface {
	Intern(E) (S, bool)
}

// InternerFunc adapts a function to the Interner interface.
type InternerFunc[E, S any] func(E) (S, bool)

func (f InternerFunc[E, S]) Intern(v E) (S, bool) {
	return f(v)
}
