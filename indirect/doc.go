// Package indirect provides Value, a wrapper that owns a heap-allocated
// object and gives it value semantics: duplicating the wrapper deep-copies
// the owned object, moving it transfers ownership and empties the source,
// and resetting it disposes of the object through the wrapper's deleter.
//
// Value is built for hiding implementation details behind a stable exported
// type. A public struct keeps a single Value of an unexported implementation
// type; callers of the public type get full copy, move, and lifetime
// semantics without ever seeing the implementation's layout:
//
//	type Document struct {
//		state indirect.Value[documentState]
//	}
//
// Two wrappers never share an owned object. Every copy goes through the
// wrapper's copy policy, so mutating one wrapper's object is invisible
// through any other wrapper of the same type.
//
// # States
//
// A wrapper is either engaged (owns exactly one object) or empty (owns
// nothing). The zero Value is empty and ready to use. Emptiness is a
// deliberate state reached through Take, MoveFrom, Reset, or the zero
// value; test for it with Engaged or Empty before dereferencing. Get on an
// empty wrapper panics, the same contract as dereferencing a nil pointer.
//
// # Policies
//
// New and Adopt build wrappers with the default policies: copies are made
// with the Cloner hook when the owned type provides one, or member-wise
// otherwise, and disposal is left to the garbage collector. AdoptWithPolicies
// accepts a custom Copier and Deleter pair for objects whose duplication or
// teardown needs real work (reference-counted handles, objects owning OS
// resources, arena-allocated records). The pair is fixed when the object is
// adopted and travels with the object through moves, swaps, and copies.
//
// Wrappers with a custom deleter also get a garbage-collector backstop: if
// an engaged wrapper becomes unreachable without Reset having been called,
// the deleter still runs during a later collection, and the optional leak
// reporter (SetLeakReporter) is told about the missed Reset.
//
// # Copying wrappers
//
// Value intentionally does not support Go's built-in assignment copying.
// Assigning one wrapper to another would alias the owned object and break
// the one-owner guarantee, so Value embeds a guard that `go vet`'s copylocks
// check reports. Use Clone or CopyFrom to duplicate, Take or MoveFrom to
// transfer, and Swap to exchange.
package indirect
