// Package store holds the per-session UI selection: the organization,
// employee and date the user is looking at. Views subscribe to it and
// react to changes.
package store

import (
	"context"
	"sync"
)

// Subject holds the latest value of T and fans changes out to subscribers.
// A slow subscriber only ever sees the most recent value it missed.
type Subject[T any] struct {
	mu     sync.Mutex
	value  T
	set    bool
	nextID int
	subs   map[int]chan T
}

func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{subs: make(map[int]chan T)}
}

// Next stores v and notifies every subscriber.
func (s *Subject[T]) Next(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	s.set = true
	for _, ch := range s.subs {
		deliver(ch, v)
	}
}

// Value returns the current value and whether one was ever set.
func (s *Subject[T]) Value() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.set
}

// Subscribe returns a channel that first yields the current value, if any,
// and then every later value. The channel is closed once ctx is done, and
// nothing is sent on it after that.
func (s *Subject[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	if s.set {
		ch <- s.value
	}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		close(ch)
		s.mu.Unlock()
	}()
	return ch
}

// Subscribers reports how many subscriptions are live.
func (s *Subject[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// deliver replaces any undelivered value with v. Callers hold the subject lock,
// which is also the only place values are sent, so the buffer never refills
// between the drain and the send.
func deliver[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
