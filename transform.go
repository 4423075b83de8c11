package grip

// The widening conversions trade case flexibility for a narrower shape:
// the result types forbid the cases that were converted away.
//
// Into* variants pass an owned payload through and may leave the receiver's
// payload shared with the result; treat v as consumed. To* variants clone
// the owned case as well (by composing Borrow and OwnEph), so v stays fully
// independent of the result.

// IntoStatic converts away the ephemeral case: an ephemeral view is cloned
// into owned form, the other cases pass through.
func (v Val[E, S, O]) IntoStatic(caps Caps[E, S, O]) Lasting[S, O] {
	switch v.cas {
	case EphemeralCase:
		return LastingOwned[S](caps.OwnEph(v.eph))
	case StaticCase:
		return LastingShared[O](v.sta)
	default:
		return LastingOwned[S](v.own)
	}
}

// ToStatic is the cloning variant of IntoStatic.
func (v *Val[E, S, O]) ToStatic(caps Caps[E, S, O]) Lasting[S, O] {
	switch v.cas {
	case EphemeralCase:
		return LastingOwned[S](caps.OwnEph(v.eph))
	case StaticCase:
		return LastingShared[O](v.sta)
	default:
		return LastingOwned[S](caps.OwnEph(caps.Borrow(&v.own)))
	}
}

// IntoOwning converts every case to owned: the reference cases are cloned,
// an owned payload passes through.
func (v Val[E, S, O]) IntoOwning(caps Caps[E, S, O]) Own[O] {
	switch v.cas {
	case EphemeralCase:
		return OwnOf(caps.OwnEph(v.eph))
	case StaticCase:
		return OwnOf(caps.OwnShared(v.sta))
	default:
		return OwnOf(v.own)
	}
}

// ToOwning is the cloning variant of IntoOwning.
func (v *Val[E, S, O]) ToOwning(caps Caps[E, S, O]) Own[O] {
	switch v.cas {
	case EphemeralCase:
		return OwnOf(caps.OwnEph(v.eph))
	case StaticCase:
		return OwnOf(caps.OwnShared(v.sta))
	default:
		return OwnOf(caps.OwnEph(caps.Borrow(&v.own)))
	}
}

// Reference produces a not-owned shape: the reference cases pass through
// and an owned value is borrowed as an ephemeral view. The result is tied
// to v's scope when v was owned.
func (v *Val[E, S, O]) Reference(caps Caps[E, S, O]) Ref[E, S] {
	switch v.cas {
	case EphemeralCase:
		return RefOfEph[S](v.eph)
	case StaticCase:
		return RefOfShared[E](v.sta)
	default:
		return RefOfEph[S](caps.Borrow(&v.own))
	}
}

// EphemeralView produces the narrowest shape: an ephemeral view from any
// case. The static case is reborrowed, the owned case borrowed. The result
// is tied to v's scope.
func (v *Val[E, S, O]) EphemeralView(caps Caps[E, S, O]) Eph[E] {
	return EphOf(v.Ref(caps))
}
