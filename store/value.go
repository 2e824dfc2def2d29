// Package store provides a minimal observable value for session-scoped UI
// state. Subscribers are notified synchronously, in subscription order.
package store

import "sync"

type subscriber[T any] struct {
	fn func(T)
}

// Value is a single mutable value with change notification. The zero Value
// is not usable; construct with New.
type Value[T any] struct {
	mu   sync.Mutex
	v    T
	subs []*subscriber[T]
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{v: initial}
}

func (s *Value[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v
}

// Set stores v and notifies every subscriber with the new value. Callbacks
// run on the calling goroutine, outside the internal lock.
func (s *Value[T]) Set(v T) {
	s.mu.Lock()
	s.v = v
	subs := make([]*subscriber[T], len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Subscribe registers fn for future sets and returns a cancel func. fn is
// not invoked with the current value.
func (s *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	sub := &subscriber[T]{fn: fn}
	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, cur := range s.subs {
			if cur == sub {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
