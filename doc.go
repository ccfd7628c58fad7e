// Package gencache maps generators (value-comparable descriptions of deferred
// work) to the data they produce while reference-counting the consumers that
// currently need it. Its guarantee: a generator is never executed more than
// once while it has live consumers, and its cached result is dropped the
// instant the last consumer releases it.
//
// Components:
//   - Cache[G, D, C]: the generator-keyed cache. G is the generator handle
//     (must implement Generator[G]: value equality + clone), D the produced
//     data, C an opaque, comparable consumer identity.
//   - genkey: optional content-derived key encoders (CBOR, JSON, msgpack,
//     protobuf) that switch entry lookup from a linear Equal scan to a hashed
//     index without changing the value-equality semantics.
//   - runner: a reference execution loop that drains Pending() each cycle,
//     executes every generator once, and reports results via Assign.
//
// Flow:
//
//	created := cache.Request(gen, consumerID) // created => arrange execution
//	...
//	for _, g := range cache.Pending() { execute(g) } // execution side
//	cache.Assign(gen, data)                          // report result
//	d, ok := cache.Get(gen)                          // consumers read
//	cache.Release(gen, consumerID)                   // entry dropped with last release
//
// An Assign for a generator whose entry is already gone (last consumer
// released while the work was in flight) is a benign miss: the result is
// discarded with a diagnostic, never an error. All operations run under one
// lock and are linearizable with respect to each other; none of them blocks
// beyond that critical section.
package gencache
