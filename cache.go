package gencache

import (
	"sync"

	"github.com/unkn0wn-root/gencache/internal/cset"
)

type entry[G Generator[G], D any, C comparable] struct {
	generator G
	consumers cset.Set[C]
	data      D
	hasData   bool

	key   string // content key, only meaningful when keyed
	keyed bool
}

type cache[G Generator[G], D any, C comparable] struct {
	name  string
	log   Logger
	hooks Hooks[G]
	keyer KeyFunc[G]

	mu      sync.Mutex
	entries []*entry[G, D, C]
	index   map[string][]*entry[G, D, C] // nil unless keyer is set
	unkeyed int                          // entries the keyer failed to index
}

func newCache[G Generator[G], D any, C comparable](opts Options[G, D, C]) *cache[G, D, C] {
	c := &cache[G, D, C]{
		name:  coalesce(opts.Name, "gencache"),
		keyer: opts.Keyer,
	}
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks[G]](opts.Hooks, NopHooks[G]{})
	if c.keyer != nil {
		c.index = make(map[string][]*entry[G, D, C])
	}
	return c
}

func (c *cache[G, D, C]) Request(generator G, consumer C) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.find(generator)
	created := e == nil
	if created {
		e = c.create(generator)
	}
	e.consumers.Add(consumer)
	if created {
		c.log.Debug("entry created", Fields{"cache": c.name, "entries": len(c.entries)})
		c.hooks.EntryCreated(e.generator)
	}
	return created
}

func (c *cache[G, D, C]) Release(generator G, consumer C) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.find(generator)
	if e == nil {
		return
	}
	e.consumers.Remove(consumer)
	if e.consumers.Len() > 0 {
		return
	}
	// last reference gone; drop the entry and anything it holds
	c.remove(e)
	c.log.Debug("entry released", Fields{
		"cache":             c.name,
		"discarded_pending": !e.hasData,
		"entries":           len(c.entries),
	})
	c.hooks.EntryReleased(e.generator, !e.hasData)
}

func (c *cache[G, D, C]) Get(generator G) (D, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.find(generator)
	if e == nil || !e.hasData {
		var zero D
		return zero, false
	}
	return e.data, true
}

func (c *cache[G, D, C]) Pending() []G {
	c.mu.Lock()
	defer c.mu.Unlock()

	// one entry per distinct generator value, so no extra dedup needed
	var out []G
	for _, e := range c.entries {
		if !e.hasData {
			out = append(out, e.generator)
		}
	}
	return out
}

func (c *cache[G, D, C]) Assign(generator G, data D) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.find(generator)
	if e == nil {
		// released after dispatch, before completion; expected race
		c.log.Warn("assign for unknown generator; result discarded", Fields{"cache": c.name})
		c.hooks.BenignMiss(generator)
		return
	}
	if e.hasData {
		c.log.Warn("assign ignored: entry already has data", Fields{"cache": c.name})
		c.hooks.AssignIgnored(e.generator)
		return
	}
	e.data = data
	e.hasData = true
}

func (c *cache[G, D, C]) Contains(generator G) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.find(generator) != nil
}

func (c *cache[G, D, C]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// find returns the entry whose stored generator compares Equal to generator,
// or nil. Callers must hold c.mu.
func (c *cache[G, D, C]) find(generator G) *entry[G, D, C] {
	if c.keyer != nil {
		if key, err := c.keyer(generator); err == nil {
			// colliding keys land in the same bucket; Equal decides
			for _, e := range c.index[key] {
				if e.generator.Equal(generator) {
					return e
				}
			}
			if c.unkeyed == 0 {
				return nil
			}
			// some live entries never made it into the index (keyer error
			// at create time); only the scan can rule them out
		} else {
			c.log.Warn("keyer failed; falling back to scan", Fields{"cache": c.name})
		}
	}
	for _, e := range c.entries {
		if e.generator.Equal(generator) {
			return e
		}
	}
	return nil
}

func (c *cache[G, D, C]) create(generator G) *entry[G, D, C] {
	e := &entry[G, D, C]{
		generator: generator.Clone(),
		consumers: cset.New[C](),
	}
	if c.keyer != nil {
		if key, err := c.keyer(e.generator); err == nil {
			e.key, e.keyed = key, true
			c.index[key] = append(c.index[key], e)
		} else {
			c.unkeyed++
		}
	}
	c.entries = append(c.entries, e)
	return e
}

func (c *cache[G, D, C]) remove(target *entry[G, D, C]) {
	for i, e := range c.entries {
		if e == target {
			last := len(c.entries) - 1
			c.entries[i] = c.entries[last]
			c.entries[last] = nil
			c.entries = c.entries[:last]
			break
		}
	}
	if !target.keyed {
		if c.keyer != nil {
			c.unkeyed--
		}
		return
	}
	bucket := c.index[target.key]
	for i, e := range bucket {
		if e == target {
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			bucket = bucket[:last]
			break
		}
	}
	if len(bucket) == 0 {
		delete(c.index, target.key)
	} else {
		c.index[target.key] = bucket
	}
}
