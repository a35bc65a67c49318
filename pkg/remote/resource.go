// Package remote provides a reusable holder for remotely fetched state.
//
// Every dashboard surface previously re-implemented its own fetch/loading/
// error triple; Resource centralizes that bookkeeping. A refresh replaces
// the held snapshot wholesale and view-model outputs are re-derived from
// scratch, never incrementally patched, so the holder can never drift from
// what the platform last returned.
package remote

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State is the lifecycle of a held snapshot.
type State string

const (
	// StateIdle means no fetch has been attempted yet.
	StateIdle State = "idle"

	// StateLoading means a refresh is in flight and no usable value exists.
	StateLoading State = "loading"

	// StateReady means the snapshot is current within its TTL.
	StateReady State = "ready"

	// StateStale means the snapshot exceeded its TTL but is still served
	// as best-effort data until the next refresh.
	StateStale State = "stale"

	// StateFailed means the last refresh failed. A previously fetched
	// value, if any, remains available for degraded rendering.
	StateFailed State = "failed"
)

// ErrNilFetch is returned by New when no fetch function is supplied.
var ErrNilFetch = errors.New("fetch function is required")

// FetchFunc loads a fresh snapshot from the remote source.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Snapshot is a point-in-time view of a Resource.
type Snapshot[T any] struct {
	State     State
	Value     T
	Err       error
	FetchedAt time.Time
}

// Resource holds the latest snapshot of one remote collection or record.
// It is safe for concurrent use; serve mode refreshes in the background
// while handlers read.
type Resource[T any] struct {
	mu        sync.Mutex
	fetch     FetchFunc[T]
	ttl       time.Duration
	state     State
	value     T
	err       error
	fetchedAt time.Time
	hasValue  bool
	now       func() time.Time
}

// New creates a Resource around a fetch function. A zero ttl disables
// staleness tracking.
func New[T any](fetch FetchFunc[T], ttl time.Duration) (*Resource[T], error) {
	if fetch == nil {
		return nil, ErrNilFetch
	}
	return &Resource[T]{
		fetch: fetch,
		ttl:   ttl,
		state: StateIdle,
		now:   time.Now,
	}, nil
}

// Refresh fetches a fresh snapshot, replacing the held value wholesale on
// success. On failure the previous value (if any) is retained and the
// resource moves to StateFailed.
func (r *Resource[T]) Refresh(ctx context.Context) error {
	r.mu.Lock()
	if !r.hasValue {
		r.state = StateLoading
	}
	r.mu.Unlock()

	value, err := r.fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.state = StateFailed
		r.err = err
		return err
	}
	r.state = StateReady
	r.value = value
	r.err = nil
	r.hasValue = true
	r.fetchedAt = r.now()
	return nil
}

// Snapshot returns the current view. A ready value past its TTL reports
// StateStale.
func (r *Resource[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.state
	if state == StateReady && r.ttl > 0 && r.now().Sub(r.fetchedAt) > r.ttl {
		state = StateStale
	}
	return Snapshot[T]{
		State:     state,
		Value:     r.value,
		Err:       r.err,
		FetchedAt: r.fetchedAt,
	}
}

// Invalidate marks a ready snapshot stale immediately, e.g. right after a
// mutation succeeded and the local copy is known to be outdated.
func (r *Resource[T]) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hasValue {
		r.state = StateStale
	}
}
