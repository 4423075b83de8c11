// Package grip represents a value held at one of three reference strengths,
// while tracking statically which strengths can actually occur.
//
// # Overview
//
// A Val[E, S, O] is a tagged union of three cases:
//
//   - Ephemeral: a view tied to a restricted scope. It must not be stored
//     past the scope that produced it.
//   - Static: a reference-like value the holder may retain indefinitely
//     (an interned string, a globally rooted object).
//   - Owned: a value the holder exclusively controls and may mutate.
//
// Exactly one case is populated at run time. The point of the type is to
// build Cow-like wrappers that avoid needless cloning of long-lived or
// shared data: reads work against whichever case is present, and mutation
// clones into the owned case only at the moment it is required.
//
// # Shapes carry the proofs
//
// Where a subset of the cases is statically impossible, that knowledge is
// carried by a narrower shape type instead of a marker-parameterized grid:
//
//   - Eph[E], Shared[S], Own[O]: exactly one case. Unwrap has no runtime
//     check and no failure path.
//   - Ref[E, S]: not owned. Lasting[S, O]: not ephemeral.
//     Unshared[E, O]: not static.
//
// The TrySplit operations narrow a Val into a shape without moving or
// cloning any data: on a hit you get the single-case shape, on a miss you
// get the complementary two-case shape - either way the result's type says
// what the match established. The Widen functions embed any shape back into
// a full Val, and Unsplit recombines the per-case markers produced by
// Split.
//
// # Capabilities
//
// Val is agnostic about what E, S and O concretely are. The data-level
// conversions between them are supplied per instantiation as a
// Caps[E, S, O] of borrow-package functions: how to clone a view into an
// owned value, how to view an owned value, how to weaken a static reference
// into an ephemeral one. Operations that need no conversion (queries,
// splits, maps) take no Caps.
//
// # Mutation
//
// The sole mutation path is clone-on-write: ToMut and Mutate convert a
// non-owned case to owned first, then expose the owned payload. Afterwards
// the Val is in the owned case. TryMut mutates only if already owned, and
// Own.Mut is the statically-proven variant that cannot miss.
//
// # Errors
//
// Almost everything either cannot fail or reports a miss through an ok
// bool. Runtime errors exist only where a run-time check stands in for a
// proof the type system cannot carry (Unsplit), and in the optional
// interning layer, which reports declined interning by returning the input
// unchanged.
package grip
