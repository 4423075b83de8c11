package grip

import "github.com/gripkit/grip/debug"

// Ref produces an ephemeral view of the contents regardless of case: an
// ephemeral view passes through, a static reference is reborrowed, an owned
// value is viewed through the borrow capability. The view is tied to v's
// scope.
func (v *Val[E, S, O]) Ref(caps Caps[E, S, O]) E {
	switch v.cas {
	case EphemeralCase:
		return v.eph
	case StaticCase:
		return caps.Reborrow(v.sta)
	default:
		return caps.Borrow(&v.own)
	}
}

// ViewAs produces a view of any target type T, given one conversion per
// case: reborrows for the reference cases, a borrow for the owned case.
func ViewAs[T, E, S, O any](v *Val[E, S, O], fromEph func(E) T, fromShared func(S) T, fromOwned func(*O) T) T {
	switch v.cas {
	case EphemeralCase:
		return fromEph(v.eph)
	case StaticCase:
		return fromShared(v.sta)
	default:
		return fromOwned(&v.own)
	}
}

// TryMut returns a pointer to the owned value if v is already in the owned
// case, without any conversion. For clone-on-write behavior use ToMut.
func (v *Val[E, S, O]) TryMut() (*O, bool) {
	if v.cas != OwnedCase {
		return nil, false
	}
	return &v.own, true
}

// ToMut returns a pointer to the owned value, cloning a referenced one into
// owned form first if necessary. Afterwards v is in the owned case.
func (v *Val[E, S, O]) ToMut(caps Caps[E, S, O]) *O {
	switch v.cas {
	case EphemeralCase:
		if debug.Cow() {
			debug.Logf("grip: clone-on-write Ephemeral -> Owned")
		}
		v.setOwned(caps.OwnEph(v.eph))
	case StaticCase:
		if debug.Cow() {
			debug.Logf("grip: clone-on-write Static -> Owned")
		}
		v.setOwned(caps.OwnShared(v.sta))
	}
	return &v.own
}

// Mutate applies f to the owned value, cloning a referenced one into owned
// form first. This is the library's sole mutation path; afterwards v is in
// the owned case.
func (v *Val[E, S, O]) Mutate(caps Caps[E, S, O], f func(*O)) {
	f(v.ToMut(caps))
}

func (v *Val[E, S, O]) setOwned(o O) {
	var ze E
	var zs S
	v.cas = OwnedCase
	v.eph = ze
	v.sta = zs
	v.own = o
}
