package grip

// Case reports which of the three cases is populated.
func (v Val[E, S, O]) Case() Case {
	return v.cas
}

// IsEphemeral reports whether v holds a scope-restricted view.
func (v Val[E, S, O]) IsEphemeral() bool {
	return v.cas == EphemeralCase
}

// IsStatic reports whether v holds a static/shared reference.
func (v Val[E, S, O]) IsStatic() bool {
	return v.cas == StaticCase
}

// IsOwned reports whether v holds an owned value.
func (v Val[E, S, O]) IsOwned() bool {
	return v.cas == OwnedCase
}

// IsReference reports whether v does not own its contents, i.e. it is in
// the ephemeral or static case.
func (v Val[E, S, O]) IsReference() bool {
	return v.cas != OwnedCase
}

// IsLasting reports whether v may be retained indefinitely, i.e. it is not
// in the ephemeral case.
func (v Val[E, S, O]) IsLasting() bool {
	return v.cas != EphemeralCase
}
