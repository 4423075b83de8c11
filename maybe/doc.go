// Package maybe provides presence markers for values that are tracked
// statically rather than checked at run time.
//
// # Overview
//
// A Maybe describes whether a value of some type T is reachable at a given
// point in a program. There are exactly two implementations:
//
//   - Present[T] wraps one runtime value of T.
//   - Absent[T] is a zero-size marker stating that no value of T can occur
//     on this path. It carries T only in its type parameter.
//
// The Maybe interface is sealed: no type outside this package can implement
// it, so a Maybe[T] is always one of the two markers above.
//
// # Absent is a proof token, not a container
//
// Code that receives an Absent[T] may treat the surrounding path as
// unreachable. All of Absent's accessors funnel through one internal absurd
// call that panics with a fixed message. This is a deliberate, audited
// exception to the usual rule that accessors are total: the library only
// places Absent markers on paths its own construction discipline never
// executes, so the panic exists to surface implementation bugs, not as an
// error-handling channel. For the same reason an Absent[T] may be moved
// across goroutine boundaries regardless of what T is - there is no data to
// race on.
//
// # Relaxation
//
// Markers convert between each other under fixed rules:
//
//   - Present[T] -> Present[T]: identity, always allowed.
//   - Absent[T]  -> Absent[U]:  allowed for any U; no value transits.
//   - Absent[T]  -> Present[U]: allowed at the type level for any U; since no
//     Absent value is ever live, the conversion function can never run.
//   - Present[T] -> Absent[U]:  does not exist. There is no function in this
//     package with that shape, so attempting the conversion is a compile
//     error.
//
// # Unification
//
// Unify merges two markers over the same inner type: a present side wins and
// an absent side yields. Two absent sides unify to absent. This is the rule
// the grip package applies per case when recombining split values.
package maybe
