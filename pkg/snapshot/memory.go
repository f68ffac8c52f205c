package snapshot

import (
	"container/list"
	"context"
	"sync"
)

var _ Store[string] = (*MemoryStore[string])(nil)

type memoryEntry[S comparable] struct {
	id   string
	snap Snapshot[S]
}

// MemoryStore keeps snapshots in process memory. The zero capacity store
// grows without bound; WithCapacity turns it into an LRU bound where the
// least recently saved or loaded entries are evicted first.
type MemoryStore[S comparable] struct {
	mu       sync.RWMutex
	capacity int
	items    map[string]*list.Element
	recency  *list.List
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*memoryConfig)

type memoryConfig struct {
	capacity int
}

// WithCapacity bounds the store to n entries. n must be positive,
// otherwise NewMemoryStore panics.
func WithCapacity(n int) MemoryOption {
	return func(cfg *memoryConfig) {
		if n <= 0 {
			panic("snapshot: memory store capacity must be positive")
		}
		cfg.capacity = n
	}
}

// NewMemoryStore creates an in-memory snapshot store.
func NewMemoryStore[S comparable](opts ...MemoryOption) *MemoryStore[S] {
	var cfg memoryConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &MemoryStore[S]{
		capacity: cfg.capacity,
		items:    make(map[string]*list.Element),
		recency:  list.New(),
	}
}

func (s *MemoryStore[S]) Save(_ context.Context, id string, snap Snapshot[S]) error {
	if id == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[id]; ok {
		s.recency.MoveToFront(elem)
		elem.Value.(*memoryEntry[S]).snap = snap
		return nil
	}

	s.items[id] = s.recency.PushFront(&memoryEntry[S]{id: id, snap: snap})
	if s.capacity > 0 && s.recency.Len() > s.capacity {
		oldest := s.recency.Back()
		s.recency.Remove(oldest)
		delete(s.items, oldest.Value.(*memoryEntry[S]).id)
	}
	return nil
}

func (s *MemoryStore[S]) Load(_ context.Context, id string) (Snapshot[S], error) {
	if id == "" {
		return Snapshot[S]{}, ErrEmptyID
	}

	// A bounded store promotes entries on read, which mutates the recency
	// list and needs the write lock.
	if s.capacity > 0 {
		s.mu.Lock()
		defer s.mu.Unlock()

		elem, ok := s.items[id]
		if !ok {
			return Snapshot[S]{}, ErrNotFound
		}
		s.recency.MoveToFront(elem)
		return elem.Value.(*memoryEntry[S]).snap, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	elem, ok := s.items[id]
	if !ok {
		return Snapshot[S]{}, ErrNotFound
	}
	return elem.Value.(*memoryEntry[S]).snap, nil
}

func (s *MemoryStore[S]) Delete(_ context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[id]; ok {
		s.recency.Remove(elem)
		delete(s.items, id)
	}
	return nil
}

// Len reports the number of stored snapshots.
func (s *MemoryStore[S]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Close drops all entries. The store remains usable afterwards.
func (s *MemoryStore[S]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*list.Element)
	s.recency.Init()
	return nil
}
