package grip

import (
	"fmt"

	"github.com/gripkit/grip/debug"
	"github.com/gripkit/grip/maybe"
)

// Split decomposes v into one presence marker per case. The marker for the
// populated case is present; the other two are absent proof tokens.
func (v Val[E, S, O]) Split() (maybe.Maybe[E], maybe.Maybe[S], maybe.Maybe[O]) {
	switch v.cas {
	case EphemeralCase:
		return maybe.Of(v.eph), maybe.None[S](), maybe.None[O]()
	case StaticCase:
		return maybe.None[E](), maybe.Of(v.sta), maybe.None[O]()
	default:
		return maybe.None[E](), maybe.None[S](), maybe.Of(v.own)
	}
}

// Unsplit recombines per-case markers into a Val, following the
// unification rule: an absent marker yields to a present one. The
// exactly-one-present invariant is what the marker types prove in the
// split direction; here it is re-established with a runtime check, the
// one place this library checks at run time what it elsewhere proves.
func Unsplit[E, S, O any](me maybe.Maybe[E], ms maybe.Maybe[S], mo maybe.Maybe[O]) (Val[E, S, O], error) {
	n := 0
	for _, p := range []bool{me.IsPresent(), ms.IsPresent(), mo.IsPresent()} {
		if p {
			n++
		}
	}
	if debug.Unsplit() {
		debug.Logf("grip: unsplit with %d present markers", n)
	}
	switch n {
	case 0:
		return Val[E, S, O]{}, ErrNoCase
	case 1:
	default:
		return Val[E, S, O]{}, fmt.Errorf("%w: %d markers", ErrManyCases, n)
	}
	switch {
	case me.IsPresent():
		return FromEphemeral[S, O](me.Get()), nil
	case ms.IsPresent():
		return FromStatic[E, O](ms.Get()), nil
	default:
		return FromOwned[E, S](mo.Get()), nil
	}
}

// The Widen functions re-embed a narrowed shape into a full Val. They are
// the unification rules applied per case: the shape's populated case comes
// back present, the proven-absent cases unify away.

// WidenEph embeds an ephemeral-only shape.
func WidenEph[S, O, E any](e Eph[E]) Val[E, S, O] {
	return FromEphemeral[S, O](e.view)
}

// WidenShared embeds a static-only shape.
func WidenShared[E, O, S any](s Shared[S]) Val[E, S, O] {
	return FromStatic[E, O](s.ref)
}

// WidenOwn embeds an owned-only shape.
func WidenOwn[E, S, O any](o Own[O]) Val[E, S, O] {
	return FromOwned[E, S](o.val)
}

// WidenRef embeds a not-owned shape.
func WidenRef[O, E, S any](r Ref[E, S]) Val[E, S, O] {
	if r.static {
		return FromStatic[E, O](r.ref)
	}
	return FromEphemeral[S, O](r.view)
}

// WidenLasting embeds a not-ephemeral shape.
func WidenLasting[E, S, O any](l Lasting[S, O]) Val[E, S, O] {
	if l.owned {
		return FromOwned[E, S](l.val)
	}
	return FromStatic[E, O](l.ref)
}

// WidenUnshared embeds a not-static shape.
func WidenUnshared[S, E, O any](u Unshared[E, O]) Val[E, S, O] {
	if u.owned {
		return FromOwned[E, S](u.val)
	}
	return FromEphemeral[S, O](u.view)
}
