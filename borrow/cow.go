package borrow

// Cow is a two-arm union of a borrowed view R and an owned value O.
//
// It is the minimal copy-on-write carrier: reads come from whichever arm is
// populated, mutation forces the owned arm. The zero value is a borrowed
// zero view.
type Cow[R, O any] struct {
	owned bool
	view  R
	own   O
}

// BorrowedCow wraps a view in the borrowed arm.
func BorrowedCow[O, R any](v R) Cow[R, O] {
	return Cow[R, O]{view: v}
}

// OwnedCow wraps a value in the owned arm.
func OwnedCow[R, O any](o O) Cow[R, O] {
	return Cow[R, O]{owned: true, own: o}
}

// IsOwned reports whether the owned arm is populated.
func (c Cow[R, O]) IsOwned() bool { return c.owned }

// IsBorrowed reports whether the borrowed arm is populated.
func (c Cow[R, O]) IsBorrowed() bool { return !c.owned }

// View returns the borrowed view, if that arm is populated.
func (c Cow[R, O]) View() (R, bool) {
	return c.view, !c.owned
}

// Owned returns the owned value, if that arm is populated.
func (c Cow[R, O]) Owned() (O, bool) {
	return c.own, c.owned
}

// Value produces a view of the contents regardless of arm: the borrowed arm
// is returned as is, the owned arm is viewed through b.
func (c *Cow[R, O]) Value(b BorrowFunc[O, R]) R {
	if c.owned {
		return b(&c.own)
	}
	return c.view
}

// IntoOwned extracts an owned value, cloning the borrowed arm through own
// and passing the owned arm through untouched.
func (c Cow[R, O]) IntoOwned(own OwnFunc[R, O]) O {
	if c.owned {
		return c.own
	}
	return own(c.view)
}

// Mut returns a pointer to the owned value, cloning the borrowed arm first.
// Afterwards the Cow is in the owned arm.
func (c *Cow[R, O]) Mut(own OwnFunc[R, O]) *O {
	if !c.owned {
		c.own = own(c.view)
		c.owned = true
		var zero R
		c.view = zero
	}
	return &c.own
}

// ReborrowCow reinterprets the borrowed arm as another view type. The owned
// arm passes through untouched; no data is cloned either way.
func ReborrowCow[B, R, O any](c Cow[R, O], reb ReborrowFunc[R, B]) Cow[B, O] {
	if c.owned {
		return OwnedCow[B](c.own)
	}
	return BorrowedCow[O](reb(c.view))
}
