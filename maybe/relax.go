package maybe

// The relaxation rules between markers:
//
//	| From       | To         | Allowed                                  |
//	|------------|------------|------------------------------------------|
//	| Present[T] | Present[T] | identity                                 |
//	| Absent[T]  | Absent[U]  | any U, no value transits                 |
//	| Absent[T]  | Present[U] | any U, call site unreachable             |
//	| Present[T] | Absent[U]  | no such function: compile error          |
//
// Present-to-Absent is deliberately missing. Providing it would let a live
// value vanish behind a marker that promises it cannot exist.

// Relax re-marks an absent T as an absent U.
func Relax[U, T any](Absent[T]) Absent[U] {
	return Absent[U]{}
}

// RelaxPresent casts an absent marker to a present marker over any type.
//
// The cast is sound at the type level because no Absent value is ever live:
// a call site of RelaxPresent can never actually run. Forcing it at run
// time panics, same as every other access to an Absent marker.
func RelaxPresent[U, T any](n Absent[T]) Present[U] {
	return Absurd[Present[U]](n)
}

// Unify merges two markers over the same inner type:
//
//	| a          | b          | result     |
//	|------------|------------|------------|
//	| Present    | Present    | a          |
//	| Present    | Absent     | a          |
//	| Absent     | Present    | b          |
//	| Absent     | Absent     | Absent     |
//
// An absent side always yields, because it never needs to produce a value.
// When both sides are present the left one is taken; the asymmetry is
// immaterial since callers only unify markers that prove the same case.
func Unify[T any](a, b Maybe[T]) Maybe[T] {
	if a.IsPresent() {
		return a
	}
	return b
}
