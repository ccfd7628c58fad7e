package gencache

// Hooks lightweight callbacks for high-signal cache events.
// Implementations MUST be cheap and non-blocking; the cache calls them while
// holding its lock. Wrap with hooks/async to offload slow sinks.
type Hooks[G any] interface {
	// A new entry was created by Request (the caller was told to arrange
	// execution).
	EntryCreated(generator G)

	// The last consumer released the entry. discardedPending is true when no
	// data had arrived yet, i.e. an in-flight result (if any) will land as a
	// benign miss.
	EntryReleased(generator G, discardedPending bool)

	// Assign found no entry: the result was produced after the last consumer
	// released. The result was discarded.
	BenignMiss(generator G)

	// Assign hit an entry that already holds data; the new result was
	// ignored (data transitions absent -> present at most once).
	AssignIgnored(generator G)
}

// NopHooks is the default no-op
type NopHooks[G any] struct{}

func (NopHooks[G]) EntryCreated(G)        {}
func (NopHooks[G]) EntryReleased(G, bool) {}
func (NopHooks[G]) BenignMiss(G)          {}
func (NopHooks[G]) AssignIgnored(G)       {}
