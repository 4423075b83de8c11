// Package borrow abstracts the duality between owned values and the views
// borrowed from them.
//
// # Overview
//
// Three independent capabilities, all expressed as function types so a
// concrete pair of representations can be wired up at the call site:
//
//   - BorrowFunc[O, R]: produce a view R of an owned value O. Views need not
//     be references in any literal sense; a Cow counts as a view.
//   - OwnFunc[R, O]: clone the thing a view denotes into a fresh owned O.
//     Must not mutate or invalidate the source view.
//   - ReborrowFunc[A, B]: reinterpret one view as another view type without
//     touching the underlying data.
//
// None of these fail at run time. Fallible conversion (speculative
// interning) is layered separately in package intern.
//
// Standard instances for string/byte, slice and pointer pairs are
// provided, along with Cow, a two-arm borrowed-or-owned union.
package borrow
