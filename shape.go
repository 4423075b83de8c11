package grip

// Shapes are statically narrowed forms of a Val. Holding one is a proof
// about which cases were possible when it was produced, so their accessors
// need no runtime checks beyond the two-case shapes' own discriminant.

// Eph is a Val narrowed to the ephemeral case.
type Eph[E any] struct {
	view E
}

// EphOf wraps a scope-restricted view.
func EphOf[E any](v E) Eph[E] {
	return Eph[E]{view: v}
}

// Unwrap moves the view out. There is no check and no failure path: the
// shape's existence proves the other cases were impossible.
func (e Eph[E]) Unwrap() E { return e.view }

// Shared is a Val narrowed to the static/shared case.
type Shared[S any] struct {
	ref S
}

// SharedOf wraps an indefinitely retainable reference.
func SharedOf[S any](s S) Shared[S] {
	return Shared[S]{ref: s}
}

func (s Shared[S]) Unwrap() S { return s.ref }

// Own is a Val narrowed to the owned case.
type Own[O any] struct {
	val O
}

// OwnOf wraps an exclusively held value.
func OwnOf[O any](o O) Own[O] {
	return Own[O]{val: o}
}

func (o Own[O]) Unwrap() O { return o.val }

// Ref returns a pointer to the held value for reading. The pointer is valid
// as long as the shape is.
func (o *Own[O]) Ref() *O { return &o.val }

// Mut returns a pointer to the held value for mutation. Since ownership is
// statically proven, no clone-on-write step is needed.
func (o *Own[O]) Mut() *O { return &o.val }

// Ref is a Val narrowed to the two reference cases: ephemeral or static,
// never owned.
type Ref[E, S any] struct {
	static bool
	view   E
	ref    S
}

// RefOfEph embeds an ephemeral view in the not-owned shape.
func RefOfEph[S, E any](v E) Ref[E, S] {
	return Ref[E, S]{view: v}
}

// RefOfShared embeds a static reference in the not-owned shape.
func RefOfShared[E, S any](s S) Ref[E, S] {
	return Ref[E, S]{static: true, ref: s}
}

func (r Ref[E, S]) IsEphemeral() bool { return !r.static }
func (r Ref[E, S]) IsStatic() bool    { return r.static }

// View returns the ephemeral view, if that is the populated case.
func (r Ref[E, S]) View() (E, bool) {
	return r.view, !r.static
}

// SharedRef returns the static reference, if that is the populated case.
func (r Ref[E, S]) SharedRef() (S, bool) {
	return r.ref, r.static
}

// TrySplitEphemeral narrows to one of the two remaining cases.
func (r Ref[E, S]) TrySplitEphemeral() (Eph[E], Shared[S], bool) {
	if r.static {
		return Eph[E]{}, SharedOf(r.ref), false
	}
	return EphOf(r.view), Shared[S]{}, true
}

// Lasting is a Val narrowed to the retainable cases: static or owned, never
// ephemeral. It is what the widening conversions produce.
type Lasting[S, O any] struct {
	owned bool
	ref   S
	val   O
}

// LastingShared embeds a static reference in the not-ephemeral shape.
func LastingShared[O, S any](s S) Lasting[S, O] {
	return Lasting[S, O]{ref: s}
}

// LastingOwned embeds an owned value in the not-ephemeral shape.
func LastingOwned[S, O any](o O) Lasting[S, O] {
	return Lasting[S, O]{owned: true, val: o}
}

func (l Lasting[S, O]) IsStatic() bool { return !l.owned }
func (l Lasting[S, O]) IsOwned() bool  { return l.owned }

func (l Lasting[S, O]) SharedRef() (S, bool) {
	return l.ref, !l.owned
}

func (l Lasting[S, O]) Owned() (O, bool) {
	return l.val, l.owned
}

// TrySplitOwned narrows to one of the two remaining cases.
func (l Lasting[S, O]) TrySplitOwned() (Own[O], Shared[S], bool) {
	if l.owned {
		return OwnOf(l.val), Shared[S]{}, true
	}
	return Own[O]{}, SharedOf(l.ref), false
}

// Unshared is a Val narrowed to the exclusive cases: ephemeral or owned,
// never static. Structurally it is a Cow with the proof attached.
type Unshared[E, O any] struct {
	owned bool
	view  E
	val   O
}

// UnsharedEph embeds an ephemeral view in the not-static shape.
func UnsharedEph[O, E any](v E) Unshared[E, O] {
	return Unshared[E, O]{view: v}
}

// UnsharedOwned embeds an owned value in the not-static shape.
func UnsharedOwned[E, O any](o O) Unshared[E, O] {
	return Unshared[E, O]{owned: true, val: o}
}

func (u Unshared[E, O]) IsEphemeral() bool { return !u.owned }
func (u Unshared[E, O]) IsOwned() bool     { return u.owned }

func (u Unshared[E, O]) View() (E, bool) {
	return u.view, !u.owned
}

func (u Unshared[E, O]) Owned() (O, bool) {
	return u.val, u.owned
}

// TrySplitOwned narrows to one of the two remaining cases.
func (u Unshared[E, O]) TrySplitOwned() (Own[O], Eph[E], bool) {
	if u.owned {
		return OwnOf(u.val), Eph[E]{}, true
	}
	return Own[O]{}, EphOf(u.view), false
}
