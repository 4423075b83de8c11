package grip

import (
	"github.com/gripkit/grip/debug"
	"github.com/gripkit/grip/intern"
)

// The intern operations attempt to move a value into the static case via a
// pluggable interner. They are speculative: when the interner declines, the
// caller gets the original value back unchanged, still fully usable.

// TryInternEphemeral attempts to intern an ephemeral view. A static value
// succeeds trivially; an owned value is left alone (use TryIntern to offer
// owned contents to the interner as well).
func TryInternEphemeral[E, S, O any](v Val[E, S, O], in intern.Interner[E, S]) (Val[E, S, O], bool) {
	switch v.cas {
	case StaticCase:
		return v, true
	case OwnedCase:
		return v, false
	}
	s, ok := in.Intern(v.eph)
	if debug.Intern() {
		debug.Logf("grip: intern ephemeral ok=%v", ok)
	}
	if !ok {
		return v, false
	}
	return FromStatic[E, O](s), true
}

// TryIntern attempts to intern any case: an ephemeral view directly, owned
// contents through a borrowed view. On success the result is in the static
// case; on failure it is the input, unchanged.
func TryIntern[E, S, O any](v Val[E, S, O], caps Caps[E, S, O], in intern.Interner[E, S]) (Val[E, S, O], bool) {
	if v.cas == StaticCase {
		return v, true
	}
	s, ok := in.Intern(v.Ref(caps))
	if debug.Intern() {
		debug.Logf("grip: intern %s ok=%v", v.cas, ok)
	}
	if !ok {
		return v, false
	}
	return FromStatic[E, O](s), true
}

// InternOrTake produces a retainable value no matter what the interner
// decides: interned contents land in the static case, declined contents
// are cloned (or passed through, when already owned) into the owned case.
func InternOrTake[E, S, O any](v Val[E, S, O], caps Caps[E, S, O], in intern.Interner[E, S]) Lasting[S, O] {
	if w, ok := TryIntern(v, caps, in); ok {
		s, _, _ := w.TryUnwrapStatic()
		return LastingShared[O](s)
	}
	return v.IntoStatic(caps)
}
