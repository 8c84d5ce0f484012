// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"sync"
)

// Store owns the current [State]. Dispatch is the only way to change it.
//
// Subscribers receive the latest snapshot after every dispatch. A slow
// subscriber only ever misses intermediate snapshots, never the newest one.
type Store struct {
	mu      sync.Mutex
	current State
	subs    map[int]chan State
	nextSub int
}

// NewStore returns a store holding the zero state.
func NewStore() *Store {
	return &Store{subs: make(map[int]chan State)}
}

// Dispatch applies events in order as one atomic step and returns the
// resulting state. Subscribers are notified once.
func (s *Store) Dispatch(events ...Event) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	for _, e := range events {
		next = Reduce(next, e)
	}
	s.current = next

	for _, ch := range s.subs {
		publish(ch, next)
	}

	return next
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// Subscribe returns a channel of post-dispatch snapshots and a function that
// ends the subscription and closes the channel.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++

	ch := make(chan State, 1)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			delete(s.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// publish replaces whatever is buffered in ch with st.
func publish(ch chan State, st State) {
	select {
	case <-ch:
	default:
	}
	ch <- st
}
