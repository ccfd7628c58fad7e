package sloghooks

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/gencache"
)

type Options[G any] struct {
	// Sampling to avoid floods on hot release/assign cycles; 0/1 = log all.
	CreatedEvery    uint64
	ReleasedEvery   uint64
	BenignMissEvery uint64

	// Optional generator renderer for log lines. Defaults to fmt %v.
	Describe func(G) string
}

type Hooks[G any] struct {
	l    *slog.Logger
	opts Options[G]

	createdCtr  atomic.Uint64
	releasedCtr atomic.Uint64
	missCtr     atomic.Uint64
}

var _ gencache.Hooks[int] = (*Hooks[int])(nil)

func New[G any](l *slog.Logger, opts Options[G]) *Hooks[G] {
	return &Hooks[G]{l: l, opts: opts}
}

func (h *Hooks[G]) describe(g G) string {
	if h.opts.Describe != nil {
		return h.opts.Describe(g)
	}
	return fmt.Sprintf("%v", g)
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks[G]) EntryCreated(g G) {
	if h.l == nil || !sample(h.opts.CreatedEvery, &h.createdCtr) {
		return
	}
	h.l.Debug("gencache.entry_created",
		"generator", h.describe(g))
}

func (h *Hooks[G]) EntryReleased(g G, discardedPending bool) {
	if h.l == nil || !sample(h.opts.ReleasedEvery, &h.releasedCtr) {
		return
	}
	h.l.Debug("gencache.entry_released",
		"generator", h.describe(g),
		"discarded_pending", discardedPending)
}

func (h *Hooks[G]) BenignMiss(g G) {
	if h.l == nil || !sample(h.opts.BenignMissEvery, &h.missCtr) {
		return
	}
	h.l.Info("gencache.benign_miss",
		"generator", h.describe(g))
}

func (h *Hooks[G]) AssignIgnored(g G) {
	if h.l == nil {
		return
	}
	h.l.Warn("gencache.assign_ignored",
		"generator", h.describe(g))
}
