package store

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Registry maps session IDs to their Store.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
	ttl    time.Duration
	now    func() time.Time
}

func NewRegistry(idleTTL time.Duration) *Registry {
	return &Registry{
		stores: make(map[string]*Store),
		ttl:    idleTTL,
		now:    time.Now,
	}
}

// Get returns the session's store, creating it on first use.
func (r *Registry) Get(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stores[sessionID]
	if !ok {
		s = New()
		r.stores[sessionID] = s
	}
	s.touch(r.now())
	return s
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

// Sweep drops stores idle for longer than the TTL that no view is subscribed to.
// It returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	removed := 0
	for id, s := range r.stores {
		if s.idleSince(now) > r.ttl && !s.active() {
			delete(r.stores, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration, log logrus.FieldLogger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				log.WithFields(logrus.Fields{
					"component": "selection",
					"event":     "session_sweep",
					"removed":   n,
					"remaining": r.Len(),
				}).Debug("idle sessions removed")
			}
		}
	}
}
