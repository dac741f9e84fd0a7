// Package cache holds a small TTL+LRU store used to memoize derived
// analytics views between order-store refreshes. Keys include every request
// parameter; invalidation is wholesale via Purge.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Store is an LRU cache with TTL and size-based eviction.
type Store[T any] struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	lru     *list.List
}

type entry[T any] struct {
	key       string
	data      T
	expiresAt time.Time
}

// New creates a Store holding at most maxSize entries, each valid for ttl.
func New[T any](maxSize int, ttl time.Duration) *Store[T] {
	return &Store[T]{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// Get retrieves a value, treating expired entries as absent.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	elem, exists := s.items[key]
	if !exists {
		return zero, false
	}

	item := elem.Value.(*entry[T])
	if time.Now().After(item.expiresAt) {
		s.removeElement(elem)
		return zero, false
	}

	s.lru.MoveToFront(elem)
	return item.data, true
}

// Set stores a value, evicting the least recently used entry when full.
func (s *Store[T]) Set(key string, data T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := &entry[T]{
		key:       key,
		data:      data,
		expiresAt: time.Now().Add(s.ttl),
	}

	if elem, exists := s.items[key]; exists {
		elem.Value = item
		s.lru.MoveToFront(elem)
		return
	}

	elem := s.lru.PushFront(item)
	s.items[key] = elem

	if s.lru.Len() > s.maxSize {
		if oldest := s.lru.Back(); oldest != nil {
			s.removeElement(oldest)
		}
	}
}

// Purge drops every entry. Called after the order store is refreshed so no
// view ever mixes two snapshots.
func (s *Store[T]) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*list.Element)
	s.lru.Init()
}

// Len returns the current number of entries.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lru.Len()
}

func (s *Store[T]) removeElement(elem *list.Element) {
	item := elem.Value.(*entry[T])
	delete(s.items, item.key)
	s.lru.Remove(elem)
}
