// Package pager accumulates paged API results into growable, render-ready
// collections. Each collection only ever requests the page after its
// current maximum and refuses re-entrant fetches, so pages always arrive
// in increasing order.
package pager

import (
	"context"
	"sync"
)

// Page is one bounded batch of results plus the pagination metadata the
// upstream reported for it.
type Page[T any] struct {
	Items       []T
	Page        int
	PerPage     int
	TotalPages  int
	Total       int
	HasNextPage bool
}

// Empty returns the page used to short-circuit blank queries: no items,
// zero total pages, nothing more to fetch.
func Empty[T any](perPage int) Page[T] {
	return Page[T]{Items: []T{}, Page: 1, PerPage: perPage}
}

// FetchFunc fetches a single 1-indexed page for one fixed query.
type FetchFunc[T any] func(ctx context.Context, page int) (Page[T], error)

// Collection accumulates successive pages for one logical query. The
// zero-page collection reports HasNextPage true so the first access
// triggers a fetch.
type Collection[T any] struct {
	mu        sync.Mutex
	fetch     FetchFunc[T]
	pages     []Page[T]
	flattened []T
	fetching  bool
	exhausted bool
}

// NewCollection creates an empty collection backed by fetch.
func NewCollection[T any](fetch FetchFunc[T]) *Collection[T] {
	return &Collection[T]{fetch: fetch}
}

// FetchNext requests the page after the current maximum and appends it.
// It is a silent no-op while another fetch for this collection is in
// flight, and once the upstream has reported the final page. A failed
// fetch leaves the accumulated pages untouched.
func (c *Collection[T]) FetchNext(ctx context.Context) error {
	c.mu.Lock()
	if c.fetching || c.exhausted {
		c.mu.Unlock()
		return nil
	}
	next := 1
	if n := len(c.pages); n > 0 {
		next = c.pages[n-1].Page + 1
	}
	c.fetching = true
	c.mu.Unlock()

	page, err := c.fetch(ctx, next)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetching = false
	if err != nil {
		return err
	}

	c.pages = append(c.pages, page)
	if !page.HasNextPage {
		c.exhausted = true
	}

	// Recompute the flattened view only when the page list changes.
	items := make([]T, 0, len(c.flattened)+len(page.Items))
	items = append(items, c.flattened...)
	items = append(items, page.Items...)
	c.flattened = items

	return nil
}

// Items returns the concatenation of all fetched pages' items in fetch
// order. The returned slice must not be mutated.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.flattened == nil {
		return []T{}
	}
	return c.flattened
}

// HasNextPage reports whether another page can still be requested. Before
// the first fetch this is true.
func (c *Collection[T]) HasNextPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.exhausted
}

// IsFetching reports whether a fetch for this collection is in flight.
func (c *Collection[T]) IsFetching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetching
}

// PageCount returns the number of pages fetched so far.
func (c *Collection[T]) PageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pages)
}

// Total returns the total result count most recently reported by the
// upstream, or zero before the first fetch.
func (c *Collection[T]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n := len(c.pages); n > 0 {
		return c.pages[n-1].Total
	}
	return 0
}
