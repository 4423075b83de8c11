package borrow

import "slices"

// BorrowFunc produces a view of type R from an owned value of type O.
//
// It takes a pointer so the view can denote the stored value rather than a
// copy of it. The view must not be used to mutate the owned value.
type BorrowFunc[O, R any] func(*O) R

// OwnFunc clones the thing a view of type R denotes into a fresh owned
// value of type O. The source view stays valid and unmodified.
type OwnFunc[R, O any] func(R) O

// ReborrowFunc converts a view of type A into a view of type B without
// cloning the underlying data.
type ReborrowFunc[A, B any] func(A) B

// Identity is the reborrow between a view type and itself.
func Identity[T any](v T) T { return v }

// Deref views an owned value through a plain copy of it. Only appropriate
// for types whose copies share no mutable state (strings, numbers).
func Deref[T any](o *T) T { return *o }

// Ptr views an owned value as a pointer to it.
func Ptr[T any](o *T) *T { return o }

// FromPtr clones through a pointer view.
func FromPtr[T any](p *T) T { return *p }

// SliceView views an owned slice as a slice sharing its backing array.
func SliceView[T any](o *[]T) []T { return *o }

// CloneSlice clones a slice view into an owned slice with fresh backing.
func CloneSlice[T any](v []T) []T { return slices.Clone(v) }

// BytesOfString clones a string view into owned mutable bytes.
func BytesOfString(s string) []byte { return []byte(s) }

// StringOfBytes clones a byte view into an owned immutable string.
func StringOfBytes(b []byte) string { return string(b) }

// ViewBytes views owned bytes as an immutable string. The conversion copies
// because Go strings cannot alias mutable storage; it still satisfies the
// borrow contract, which constrains the view's meaning, not its layout.
func ViewBytes(o *[]byte) string { return string(*o) }
