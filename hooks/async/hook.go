// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/gencache"
//	"github.com/unkn0wn-root/gencache/hooks/async"
//	"github.com/unkn0wn-root/gencache/sloghooks"
//
// )
//
//	raw := sloghooks.New[TexGen](slog.Default(), sloghooks.Options[TexGen]{
//	    ReleasedEvery:   10, // sample logs: ~every 10th release
//	    BenignMissEvery: 1,  // log every benign miss
//	})
//
// hooks := asynchook.New[TexGen](raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	cache := gencache.New[TexGen, TexData, NodeID](gencache.Options[TexGen, TexData, NodeID]{
//	    Name:  "texture",
//	    Hooks: hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/gencache"
)

// Hooks decouples hook sinks from the cache's critical section. Events are
// queued and replayed on worker goroutines; when the queue is full, events
// are dropped rather than blocking the cache.
type Hooks[G any] struct {
	inner gencache.Hooks[G]
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ gencache.Hooks[int] = (*Hooks[int])(nil)

func New[G any](inner gencache.Hooks[G], workers, qlen int) *Hooks[G] {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks[G]{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks[G]) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks[G]) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks[G]) EntryCreated(g G)  { h.try(func() { h.inner.EntryCreated(g) }) }
func (h *Hooks[G]) BenignMiss(g G)    { h.try(func() { h.inner.BenignMiss(g) }) }
func (h *Hooks[G]) AssignIgnored(g G) { h.try(func() { h.inner.AssignIgnored(g) }) }
func (h *Hooks[G]) EntryReleased(g G, discardedPending bool) {
	h.try(func() { h.inner.EntryReleased(g, discardedPending) })
}
