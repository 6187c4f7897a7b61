package pager

import "context"

const (
	// DefaultEarlyZone is the distance from the end of rendered content at
	// which the next page is fetched speculatively.
	DefaultEarlyZone = 600.0
	// DefaultLateZone is the distance at which the next page must load.
	DefaultLateZone = 200.0
)

// Target is the collection surface a Prefetcher drives. *Collection
// satisfies it.
type Target interface {
	HasNextPage() bool
	IsFetching() bool
	FetchNext(ctx context.Context) error
}

// Prefetcher starts fetching the next page before the consumer reaches the
// end of loaded content. It carries no lock of its own; the collection's
// re-entrancy guard makes repeated triggers safe.
type Prefetcher struct {
	target    Target
	earlyZone float64
	lateZone  float64
}

// NewPrefetcher wires a prefetcher to target. Non-positive zone values fall
// back to the defaults.
func NewPrefetcher(target Target, earlyZone, lateZone float64) *Prefetcher {
	if earlyZone <= 0 {
		earlyZone = DefaultEarlyZone
	}
	if lateZone <= 0 {
		lateZone = DefaultLateZone
	}
	return &Prefetcher{target: target, earlyZone: earlyZone, lateZone: lateZone}
}

// Observe reports how far the consumer currently is from the end of loaded
// content. Inside the late zone the next page loads inline and its error is
// returned; inside only the early zone a speculative fetch runs in the
// background and failures are absorbed, since the authoritative trigger
// will retry it.
func (p *Prefetcher) Observe(ctx context.Context, remaining float64) error {
	if !p.target.HasNextPage() || p.target.IsFetching() {
		return nil
	}

	switch {
	case remaining <= p.lateZone:
		return p.target.FetchNext(ctx)
	case remaining <= p.earlyZone:
		go func() {
			_ = p.target.FetchNext(ctx)
		}()
	}
	return nil
}
