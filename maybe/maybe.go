package maybe

// Maybe is a presence marker for a value of type T.
//
// It is sealed: Present[T] and Absent[T] are the only implementations.
type Maybe[T any] interface {
	// IsPresent reports whether the marker carries a value.
	IsPresent() bool
	// Get returns the carried value. On an Absent marker this path is
	// unreachable by construction and panics if forced.
	Get() T

	sealedMaybe()
}

// Of wraps a value in a Present marker.
func Of[T any](v T) Present[T] {
	return Present[T]{val: v}
}

// None produces an Absent marker for T.
func None[T any]() Absent[T] {
	return Absent[T]{}
}

// Present is a value of type T that exists.
type Present[T any] struct {
	val T
}

func (p Present[T]) IsPresent() bool { return true }

func (p Present[T]) Get() T { return p.val }

// Ptr returns a pointer to the carried value for in-place mutation.
func (p *Present[T]) Ptr() *T { return &p.val }

// Set replaces the carried value.
func (p *Present[T]) Set(v T) { p.val = v }

// Unwrap recovers the carried value from the marker.
func (p Present[T]) Unwrap() T { return p.val }

func (Present[T]) sealedMaybe() {}

// Absent is a value of type T that cannot occur. It is zero-size; T lives
// only in the type parameter.
//
// An Absent marker is a proof token. The library never executes a path
// holding a live one, so its accessors exist solely to satisfy the Maybe
// contract and report implementation bugs by panicking.
type Absent[T any] struct{}

func (Absent[T]) IsPresent() bool { return false }

func (n Absent[T]) Get() T { return absurd[T]() }

func (Absent[T]) sealedMaybe() {}

// Absurd conjures a value of any type from an Absent marker.
//
// Since the calling convention guarantees no live Absent value exists, a
// call site of Absurd can never execute; it only has to typecheck. Reaching
// it at run time means the unreachability invariant was broken upstream.
func Absurd[R, T any](Absent[T]) R {
	return absurd[R]()
}

func absurd[R any]() R {
	panic("maybe: absent marker accessed (unreachable by construction)")
}

// Map transforms the carried value while keeping it marked. The function is
// never invoked for an Absent marker.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	switch v := m.(type) {
	case Present[T]:
		return Of(f(v.val))
	case Absent[T]:
		return None[U]()
	}
	// Maybe is sealed; no third implementation exists.
	panic("maybe: unknown Maybe implementation")
}

// MapPresent transforms a present value, keeping it present.
func MapPresent[T, U any](p Present[T], f func(T) U) Present[U] {
	return Of(f(p.val))
}

// MapAbsent re-marks an absent T as an absent U. The function is carried
// only for type inference at the call site and is never invoked.
func MapAbsent[T, U any](Absent[T], func(T) U) Absent[U] {
	return Absent[U]{}
}
