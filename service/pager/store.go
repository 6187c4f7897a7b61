package pager

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store holds one Collection per normalized query key. Collections are
// created lazily on first access and dropped after the staleness window,
// so the next access for that key refetches from page one. Distinct keys
// never share pages.
type Store[T any] struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *Collection[T]]
	fetch func(key string) FetchFunc[T]
}

// NewStore creates a keyed collection store. size bounds how many
// collections are kept; ttl is the staleness window.
func NewStore[T any](size int, ttl time.Duration, fetch func(key string) FetchFunc[T]) *Store[T] {
	if size <= 0 {
		size = 64
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Store[T]{
		cache: expirable.NewLRU[string, *Collection[T]](size, nil, ttl),
		fetch: fetch,
	}
}

// Get returns the collection for key, creating it on first access.
func (s *Store[T]) Get(key string) *Collection[T] {
	key = normalizeKey(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if coll, ok := s.cache.Get(key); ok {
		return coll
	}
	coll := NewCollection(s.fetch(key))
	s.cache.Add(key, coll)
	return coll
}

// Len returns the number of live collections.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}

func normalizeKey(key string) string {
	return strings.TrimSpace(key)
}
