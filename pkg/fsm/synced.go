package fsm

import "sync"

// Synced wraps a Machine with a sync.RWMutex for cross-goroutine sharing.
// The bare Machine carries no internal locking and assumes one logical owner
// at a time; Synced is the canned serialization for callers who would
// otherwise wrap the machine in their own mutex. Reads (Current, CanFire,
// Len, graph emission) take the read lock, mutations (Add, Dispatch) the
// write lock.
type Synced[S, E comparable, C any] struct {
	mu sync.RWMutex
	m  *Machine[S, E, C]
}

// NewSynced creates a mutex-guarded machine in the given initial state,
// accepting the same options as New.
func NewSynced[S, E comparable, C any](initial S, opts ...Option[S, E, C]) *Synced[S, E, C] {
	return &Synced[S, E, C]{m: New(initial, opts...)}
}

// Add inserts a transition under the write lock.
func (s *Synced[S, E, C]) Add(t Transition[S, E, C]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Add(t)
}

// Dispatch handles one event under the write lock, so concurrent dispatches
// serialize and each observes the state left by the previous one. Guards,
// actions, and observers run with the lock held and must not call back into
// the same Synced instance.
func (s *Synced[S, E, C]) Dispatch(event E, ctx *C) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Dispatch(event, ctx)
}

// CanFire evaluates the lookup and guard under the read lock. The guard must
// not call back into the same Synced instance.
func (s *Synced[S, E, C]) CanFire(event E, ctx *C) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.CanFire(event, ctx)
}

// Current returns the active state under the read lock.
func (s *Synced[S, E, C]) Current() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Current()
}

// CurrentLabel returns the active state through the state formatter under
// the read lock.
func (s *Synced[S, E, C]) CurrentLabel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.CurrentLabel()
}

// Len returns the number of table entries under the read lock.
func (s *Synced[S, E, C]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Len()
}

// DOT renders the transition table as a Graphviz digraph under the read lock.
func (s *Synced[S, E, C]) DOT() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.DOT()
}

// Mermaid renders the transition table as a Mermaid stateDiagram-v2 under
// the read lock.
func (s *Synced[S, E, C]) Mermaid() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Mermaid()
}
