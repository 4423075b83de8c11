package grip

// MapEph transforms the ephemeral case, passing the others through. The
// function runs only if that case is populated.
func MapEph[T, E, S, O any](v Val[E, S, O], f func(E) T) Val[T, S, O] {
	switch v.cas {
	case EphemeralCase:
		return FromEphemeral[S, O](f(v.eph))
	case StaticCase:
		return FromStatic[T, O](v.sta)
	default:
		return FromOwned[T, S](v.own)
	}
}

// MapShared transforms the static case, passing the others through.
func MapShared[T, E, S, O any](v Val[E, S, O], f func(S) T) Val[E, T, O] {
	switch v.cas {
	case StaticCase:
		return FromStatic[E, O](f(v.sta))
	case EphemeralCase:
		return FromEphemeral[T, O](v.eph)
	default:
		return FromOwned[E, T](v.own)
	}
}

// MapOwned transforms the owned case, passing the others through.
func MapOwned[T, E, S, O any](v Val[E, S, O], f func(O) T) Val[E, S, T] {
	switch v.cas {
	case OwnedCase:
		return FromOwned[E, S](f(v.own))
	case EphemeralCase:
		return FromEphemeral[S, T](v.eph)
	default:
		return FromStatic[E, T](v.sta)
	}
}

// Map transforms all three cases at once, producing a Val with the same
// case populated but possibly new inner types. Exactly one of the
// functions runs.
func Map[E2, S2, O2, E, S, O any](v Val[E, S, O], fe func(E) E2, fs func(S) S2, fo func(O) O2) Val[E2, S2, O2] {
	switch v.cas {
	case EphemeralCase:
		return FromEphemeral[S2, O2](fe(v.eph))
	case StaticCase:
		return FromStatic[E2, O2](fs(v.sta))
	default:
		return FromOwned[E2, S2](fo(v.own))
	}
}

// MergeWith collapses the three cases to a single value of type T by
// running the function for the populated case.
func MergeWith[T, E, S, O any](v Val[E, S, O], fe func(E) T, fs func(S) T, fo func(O) T) T {
	switch v.cas {
	case EphemeralCase:
		return fe(v.eph)
	case StaticCase:
		return fs(v.sta)
	default:
		return fo(v.own)
	}
}

// Merge is the special case of MergeWith where all three cases already
// share an inner type: the populated payload comes out directly.
func Merge[T any](v Val[T, T, T]) T {
	switch v.cas {
	case EphemeralCase:
		return v.eph
	case StaticCase:
		return v.sta
	default:
		return v.own
	}
}

// FlatMap maps each case to a whole new Val, collapsing one level of
// nesting.
func FlatMap[E2, S2, O2, E, S, O any](v Val[E, S, O], fe func(E) Val[E2, S2, O2], fs func(S) Val[E2, S2, O2], fo func(O) Val[E2, S2, O2]) Val[E2, S2, O2] {
	return MergeWith(v, fe, fs, fo)
}
