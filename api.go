package gencache

// Generator constrains the key role of the cache: a value-comparable
// description of a unit of deferred work. Equal must compare content (two
// independently built handles describing the same work must compare equal),
// never handle identity. Clone must return a handle the cache can safely
// retain for the lifetime of an entry.
type Generator[G any] interface {
	Equal(G) bool
	Clone() G
}

// KeyFunc derives a stable string key from a generator's content. Equal
// generators must map to the same key; unequal generators may collide (the
// cache still confirms Equal behind the key). Errors are tolerated: entries
// the keyer cannot encode are tracked outside the index and found by the
// linear scan instead. See the genkey package.
type KeyFunc[G any] func(G) (string, error)

// Cache associates each generator with the data it produces and with the set
// of consumers currently depending on it. All methods are safe for concurrent
// use and atomic with respect to each other.
//
// An entry lives exactly as long as it has at least one consumer; the last
// Release removes it synchronously, discarding any cached or still-in-flight
// result. A later Request with an equal generator starts from scratch.
type Cache[G Generator[G], D any, C comparable] interface {
	// Request references the entry for generator by consumer, creating the
	// entry if no value-equal one exists. Returns true iff the entry was
	// created: the caller must then arrange for the generator to be executed
	// (see runner). Adding the same consumer twice has no further effect.
	Request(generator G, consumer C) bool

	// Release drops consumer's reference. When the last consumer goes, the
	// entry and its data are removed in the same critical section. Unknown
	// generators are a no-op.
	Release(generator G, consumer C)

	// Get returns the data produced for generator, or (zero, false) when the
	// entry does not exist or has not received data yet. Read-only.
	Get(generator G) (D, bool)

	// Pending returns every distinct generator whose entry has no data yet.
	// Order is unspecified.
	Pending() []G

	// Assign records the data produced by executing generator. If the entry
	// is gone (released while the work was in flight) the result is silently
	// discarded with a diagnostic; this is expected, not an error.
	Assign(generator G, data D)

	// Contains reports whether an entry for generator exists, with or
	// without data.
	Contains(generator G) bool

	// Len returns the number of live entries.
	Len() int
}

// Options tune the behavior of the cache. All fields are optional.
type Options[G Generator[G], D any, C comparable] struct {
	Name   string   // tag for log lines when multiple caches coexist; "" => "gencache"
	Logger Logger   // if nil, NopLogger is used
	Hooks  Hooks[G] // if nil, NopHooks is used

	// Keyer switches entry lookup from a linear Equal scan to a hashed index.
	// Must be derived from generator content (genkey.Keyer); purely a
	// performance option, semantics are unchanged.
	Keyer KeyFunc[G]
}

func New[G Generator[G], D any, C comparable](opts Options[G, D, C]) Cache[G, D, C] {
	return newCache(opts)
}
