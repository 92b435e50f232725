// Package idempotency de-duplicates retried requests that carry the same key.
package idempotency

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Result is the recorded outcome of a keyed execution.
type Result struct {
	Status      int
	ContentType string
	Body        []byte
}

// Successful reports whether the result has a 2xx status.
func (r Result) Successful() bool {
	return r.Status >= 200 && r.Status < 300
}

type entry struct {
	result    Result
	expiresAt time.Time
}

// Tracker remembers successful results per key for a TTL and makes
// concurrent executions with the same key share a single run.
type Tracker struct {
	mu        sync.Mutex
	processed map[string]entry
	inflight  singleflight.Group
	ttl       time.Duration
	now       func() time.Time
}

// NewTracker creates a tracker that keeps results for ttl.
func NewTracker(ttl time.Duration) *Tracker {
	return &Tracker{
		processed: make(map[string]entry),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Lookup returns the stored result for key if it has not expired.
func (t *Tracker) Lookup(key string) (Result, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.processed[key]
	if !ok {
		return Result{}, false
	}
	if !t.now().Before(e.expiresAt) {
		delete(t.processed, key)
		return Result{}, false
	}
	return e.result, true
}

// Store records a result for key.
func (t *Tracker) Store(key string, r Result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.processed[key] = entry{result: r, expiresAt: t.now().Add(t.ttl)}
}

// Delete removes a key from the tracker
func (t *Tracker) Delete(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.processed, key)
}

// Purge drops every expired entry and returns how many were removed.
func (t *Tracker) Purge() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	removed := 0
	for key, e := range t.processed {
		if !now.Before(e.expiresAt) {
			delete(t.processed, key)
			removed++
		}
	}
	return removed
}

// Do runs fn at most once per key while a successful result is remembered.
// Concurrent callers with the same key wait for the in-flight run and observe
// its outcome. Only 2xx results are stored, so a failed attempt can be retried.
//
// executed reports whether this caller's fn ran.
func (t *Tracker) Do(key string, fn func() (Result, error)) (res Result, executed bool, err error) {
	if r, ok := t.Lookup(key); ok {
		return r, false, nil
	}

	v, err, _ := t.inflight.Do(key, func() (any, error) {
		// Another goroutine may have completed successfully while we waited.
		if r, ok := t.Lookup(key); ok {
			return r, nil
		}
		executed = true
		r, err := fn()
		if err != nil {
			return Result{}, err
		}
		if r.Successful() {
			t.Store(key, r)
		}
		return r, nil
	})
	if err != nil {
		return Result{}, executed, err
	}
	return v.(Result), executed, nil
}
