package grip

import "github.com/gripkit/grip/debug"

// The TrySplit operations match one case and record the outcome in the
// result types. On a hit the single-case shape comes back populated; on a
// miss the complementary two-case shape does. Either way no data is moved
// or cloned - only the static knowledge changes.

// TrySplitEphemeral matches the ephemeral case.
func (v Val[E, S, O]) TrySplitEphemeral() (Eph[E], Lasting[S, O], bool) {
	if debug.Split() {
		debug.Logf("grip: split ephemeral on %s", v.cas)
	}
	switch v.cas {
	case EphemeralCase:
		return EphOf(v.eph), Lasting[S, O]{}, true
	case StaticCase:
		return Eph[E]{}, LastingShared[O](v.sta), false
	default:
		return Eph[E]{}, LastingOwned[S](v.own), false
	}
}

// TrySplitStatic matches the static/shared case.
func (v Val[E, S, O]) TrySplitStatic() (Shared[S], Unshared[E, O], bool) {
	if debug.Split() {
		debug.Logf("grip: split static on %s", v.cas)
	}
	switch v.cas {
	case StaticCase:
		return SharedOf(v.sta), Unshared[E, O]{}, true
	case EphemeralCase:
		return Shared[S]{}, UnsharedEph[O](v.eph), false
	default:
		return Shared[S]{}, UnsharedOwned[E](v.own), false
	}
}

// TrySplitOwned matches the owned case.
func (v Val[E, S, O]) TrySplitOwned() (Own[O], Ref[E, S], bool) {
	if debug.Split() {
		debug.Logf("grip: split owned on %s", v.cas)
	}
	switch v.cas {
	case OwnedCase:
		return OwnOf(v.own), Ref[E, S]{}, true
	case EphemeralCase:
		return Own[O]{}, RefOfEph[S](v.eph), false
	default:
		return Own[O]{}, RefOfShared[E](v.sta), false
	}
}

// TryUnwrapEphemeral is TrySplitEphemeral with the payload taken directly.
func (v Val[E, S, O]) TryUnwrapEphemeral() (E, Lasting[S, O], bool) {
	e, rest, ok := v.TrySplitEphemeral()
	return e.view, rest, ok
}

// TryUnwrapStatic is TrySplitStatic with the payload taken directly.
func (v Val[E, S, O]) TryUnwrapStatic() (S, Unshared[E, O], bool) {
	s, rest, ok := v.TrySplitStatic()
	return s.ref, rest, ok
}

// TryUnwrapOwned is TrySplitOwned with the payload taken directly.
func (v Val[E, S, O]) TryUnwrapOwned() (O, Ref[E, S], bool) {
	o, rest, ok := v.TrySplitOwned()
	return o.val, rest, ok
}
