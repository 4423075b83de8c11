package grip

import (
	"fmt"

	"github.com/gripkit/grip/borrow"
)

// Case discriminates the three reference strengths of a Val.
type Case uint8

const (
	EphemeralCase Case = iota
	StaticCase
	OwnedCase
)

func (c Case) String() string {
	s, ok := map[Case]string{
		EphemeralCase: "Ephemeral",
		StaticCase:    "Static",
		OwnedCase:     "Owned",
	}[c]
	if ok {
		return s
	}
	return "<unknown case>"
}

func (c Case) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Case) UnmarshalText(d []byte) error {
	cc, ok := map[string]Case{
		"Ephemeral": EphemeralCase,
		"Static":    StaticCase,
		"Owned":     OwnedCase,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized case %q", d)
	}
	*c = cc
	return nil
}

func Cases() []Case {
	return []Case{
		EphemeralCase,
		StaticCase,
		OwnedCase,
	}
}

// Val holds a value at one of three reference strengths: an ephemeral view
// E, a static/shared reference S, or an owned value O. Exactly one case is
// populated; Case reports which.
//
// The zero Val is an ephemeral case holding E's zero value.
type Val[E, S, O any] struct {
	cas Case
	eph E
	sta S
	own O
}

// FromEphemeral wraps a view tied to the producing scope. The result must
// not outlive whatever the view borrows from.
func FromEphemeral[S, O, E any](e E) Val[E, S, O] {
	return Val[E, S, O]{cas: EphemeralCase, eph: e}
}

// FromStatic wraps a reference-like value the holder may keep indefinitely.
func FromStatic[E, O, S any](s S) Val[E, S, O] {
	return Val[E, S, O]{cas: StaticCase, sta: s}
}

// FromOwned wraps a value the holder exclusively controls.
func FromOwned[E, S, O any](o O) Val[E, S, O] {
	return Val[E, S, O]{cas: OwnedCase, own: o}
}

// FromCow converts a borrowed-or-owned union: the borrowed arm becomes the
// ephemeral case, the owned arm moves into the owned case. Nothing is
// cloned. If the Cow's view type differs from E, reinterpret it first with
// borrow.ReborrowCow.
func FromCow[S, E, O any](c borrow.Cow[E, O]) Val[E, S, O] {
	if o, ok := c.Owned(); ok {
		return FromOwned[E, S](o)
	}
	v, _ := c.View()
	return FromEphemeral[S, O](v)
}

// IntoCow collapses the three cases back to a borrowed-or-owned union.
// Ephemeral views pass through, static references are weakened to views
// through reborrow, and an owned payload moves into the owned arm.
func (v Val[E, S, O]) IntoCow(reborrow borrow.ReborrowFunc[S, E]) borrow.Cow[E, O] {
	switch v.cas {
	case EphemeralCase:
		return borrow.BorrowedCow[O](v.eph)
	case StaticCase:
		return borrow.BorrowedCow[O](reborrow(v.sta))
	default:
		return borrow.OwnedCow[E](v.own)
	}
}
