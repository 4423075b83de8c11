package grip

import "github.com/gripkit/grip/borrow"

// Caps bundles the data-level conversions between the three case types of
// one Val instantiation. Operations that change or view a case take a Caps;
// operations that only inspect or rearrange cases do not.
type Caps[E, S, O any] struct {
	// OwnEph clones the data an ephemeral view denotes into an owned value.
	OwnEph borrow.OwnFunc[E, O]
	// OwnShared clones the data a static reference denotes into an owned value.
	OwnShared borrow.OwnFunc[S, O]
	// Borrow produces an ephemeral view of a stored owned value.
	Borrow borrow.BorrowFunc[O, E]
	// Reborrow weakens a static reference into an ephemeral view.
	Reborrow borrow.ReborrowFunc[S, E]
}

// StringCaps are the conversions for Val[string, string, string]. Strings
// are immutable, so every conversion is the identity.
func StringCaps() Caps[string, string, string] {
	return Caps[string, string, string]{
		OwnEph:    borrow.Identity[string],
		OwnShared: borrow.Identity[string],
		Borrow:    borrow.Deref[string],
		Reborrow:  borrow.Identity[string],
	}
}

// SliceCaps are the conversions for Val[[]T, []T, []T]: views share backing
// storage, owning clones it.
func SliceCaps[T any]() Caps[[]T, []T, []T] {
	return Caps[[]T, []T, []T]{
		OwnEph:    borrow.CloneSlice[T],
		OwnShared: borrow.CloneSlice[T],
		Borrow:    borrow.SliceView[T],
		Reborrow:  borrow.Identity[[]T],
	}
}
