package pager

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeTarget records FetchNext calls without any real paging behavior.
type fakeTarget struct {
	mu       sync.Mutex
	hasNext  bool
	fetching bool
	calls    int
	err      error
}

func (f *fakeTarget) HasNextPage() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasNext
}

func (f *fakeTarget) IsFetching() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetching
}

func (f *fakeTarget) FetchNext(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func (f *fakeTarget) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func waitForCalls(t *testing.T, target *fakeTarget, want int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for target.callCount() < want {
		select {
		case <-deadline:
			t.Fatalf("calls = %d, want %d", target.callCount(), want)
		case <-time.After(time.Millisecond):
		}
	}
}

func TestPrefetcherLateZoneLoadsInline(t *testing.T) {
	target := &fakeTarget{hasNext: true}
	pf := NewPrefetcher(target, 600, 200)

	if err := pf.Observe(context.Background(), 150); err != nil {
		t.Fatalf("Observe() error: %v", err)
	}
	if got := target.callCount(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestPrefetcherLateZoneSurfacesError(t *testing.T) {
	wantErr := errors.New("boom")
	target := &fakeTarget{hasNext: true, err: wantErr}
	pf := NewPrefetcher(target, 600, 200)

	if err := pf.Observe(context.Background(), 0); !errors.Is(err, wantErr) {
		t.Errorf("Observe() error = %v, want %v", err, wantErr)
	}
}

func TestPrefetcherEarlyZoneFetchesInBackground(t *testing.T) {
	target := &fakeTarget{hasNext: true, err: errors.New("speculative failures are absorbed")}
	pf := NewPrefetcher(target, 600, 200)

	if err := pf.Observe(context.Background(), 400); err != nil {
		t.Fatalf("early-zone Observe() returned error: %v", err)
	}
	waitForCalls(t, target, 1)
}

func TestPrefetcherOutsideZonesDoesNothing(t *testing.T) {
	target := &fakeTarget{hasNext: true}
	pf := NewPrefetcher(target, 600, 200)

	if err := pf.Observe(context.Background(), 601); err != nil {
		t.Fatalf("Observe() error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if got := target.callCount(); got != 0 {
		t.Errorf("calls = %d, want 0", got)
	}
}

func TestPrefetcherGuards(t *testing.T) {
	tests := []struct {
		name   string
		target *fakeTarget
	}{
		{name: "no next page", target: &fakeTarget{hasNext: false}},
		{name: "fetch in flight", target: &fakeTarget{hasNext: true, fetching: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := NewPrefetcher(tt.target, 600, 200)
			for _, remaining := range []float64{0, 150, 400} {
				if err := pf.Observe(context.Background(), remaining); err != nil {
					t.Fatalf("Observe(%v) error: %v", remaining, err)
				}
			}
			time.Sleep(20 * time.Millisecond)
			if got := tt.target.callCount(); got != 0 {
				t.Errorf("calls = %d, want 0", got)
			}
		})
	}
}

func TestPrefetcherRapidRepeatedTriggersAreSafe(t *testing.T) {
	// The collection's own re-entrancy guard is the safety mechanism; the
	// prefetcher plus a real collection must not duplicate fetches under a
	// burst of early-zone triggers.
	block := make(chan struct{})
	fetch := &scriptedFetch{perPage: 2, total: 10, block: block}
	coll := NewCollection(fetch.fn())
	pf := NewPrefetcher(coll, 600, 200)

	for i := 0; i < 20; i++ {
		if err := pf.Observe(context.Background(), 400); err != nil {
			t.Fatalf("Observe() error: %v", err)
		}
	}

	// Let the background fetches race, then release the one that won.
	time.Sleep(20 * time.Millisecond)
	close(block)

	deadline := time.After(2 * time.Second)
	for coll.IsFetching() {
		select {
		case <-deadline:
			t.Fatal("fetch never settled")
		case <-time.After(time.Millisecond):
		}
	}

	// Racy triggers may slip past IsFetching before the first fetch takes
	// the guard, but the guard caps the damage to sequential pages, never
	// duplicates: every fetched page must be distinct and in order.
	if got := len(coll.Items()); got%2 != 0 {
		t.Errorf("items = %d, want a whole number of pages", got)
	}
	items := coll.Items()
	for i := 1; i < len(items); i++ {
		if items[i] != items[i-1]+1 {
			t.Fatalf("items out of order or duplicated: %v", items)
		}
	}
}

func TestNewPrefetcherDefaults(t *testing.T) {
	target := &fakeTarget{hasNext: true}
	pf := NewPrefetcher(target, 0, 0)

	if pf.earlyZone != DefaultEarlyZone || pf.lateZone != DefaultLateZone {
		t.Errorf("zones = %v/%v, want %v/%v", pf.earlyZone, pf.lateZone, DefaultEarlyZone, DefaultLateZone)
	}
}
