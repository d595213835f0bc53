package client

import (
	"context"
	"sync"
)

// State is where a Source is in its load cycle.
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Snapshot is a consistent view of a Source.
type Snapshot[T any] struct {
	State State
	Value T      // set when State == Loaded
	Err   string // set when State == Failed
}

// Source tracks one remote value through Idle -> Loading -> Loaded|Failed.
// Every Load takes a new token and cancels the previous request; a result
// whose token is no longer current is dropped, so the last request wins
// regardless of the order responses arrive in.
type Source[T any] struct {
	mu     sync.Mutex
	state  State
	value  T
	err    string
	seq    uint64
	cancel context.CancelFunc
}

// Load fetches a new value. describe turns a fetch error into the message
// kept in the Failed state. Load reports whether its result was applied.
func (s *Source[T]) Load(ctx context.Context, fetch func(context.Context) (T, error), describe func(error) string) bool {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.seq++
	token := s.seq
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	var zero T
	s.state, s.value, s.err = Loading, zero, ""
	s.mu.Unlock()

	v, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq {
		return false
	}
	s.cancel = nil
	if err != nil {
		s.state, s.err = Failed, describe(err)
		return true
	}
	s.state, s.value = Loaded, v
	return true
}

// Snapshot returns the current state.
func (s *Source[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot[T]{State: s.state, Value: s.value, Err: s.err}
}

// State returns the current state only.
func (s *Source[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
