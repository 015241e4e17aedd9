// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import "sync"

// State identifies the settlement state of a [Future].
type State uint8

const (
	// StatePending means the future has not settled yet.
	StatePending State = iota
	// StateFulfilled means the future settled with a value.
	StateFulfilled
	// StateRejected means the future settled with an error.
	StateRejected
)

// String returns the state name for diagnostics.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateFulfilled:
		return "fulfilled"
	case StateRejected:
		return "rejected"
	}
	return "invalid"
}

// Future is a single-assignment completion signal.
//
// A Future starts pending and transitions exactly once to fulfilled or
// rejected; later settlement attempts are intentionally ignored, not
// erroneous. The explicit three-state tag is guarded so only the first
// settlement wins.
//
// Future implements [Awaitable]: settlement callbacks attached with
// [Future.OnSettle] run exactly once, on the settling goroutine, or
// synchronously when attached after settlement.
type Future[A any] struct {
	mu    sync.Mutex
	state State
	value A
	err   error
	done  chan struct{}
	subs  []func(v any, err error)
}

// New creates a pending future.
func New[A any]() *Future[A] {
	return &Future[A]{done: make(chan struct{})}
}

// Resolved creates a future already fulfilled with v.
func Resolved[A any](v A) *Future[A] {
	f := New[A]()
	f.Fulfill(v)
	return f
}

// Rejected creates a future already rejected with err.
func Rejected[A any](err error) *Future[A] {
	f := New[A]()
	f.Reject(err)
	return f
}

// Fulfill settles the future with v.
// Reports whether this call won the settlement; a false return means the
// future had already settled and nothing changed.
func (f *Future[A]) Fulfill(v A) bool {
	f.mu.Lock()
	if f.state != StatePending {
		f.mu.Unlock()
		return false
	}
	f.state = StateFulfilled
	f.value = v
	subs := f.subs
	f.subs = nil
	close(f.done)
	f.mu.Unlock()
	for _, fn := range subs {
		fn(v, nil)
	}
	return true
}

// Reject settles the future with err.
// Reports whether this call won the settlement.
func (f *Future[A]) Reject(err error) bool {
	f.mu.Lock()
	if f.state != StatePending {
		f.mu.Unlock()
		return false
	}
	f.state = StateRejected
	f.err = err
	subs := f.subs
	f.subs = nil
	close(f.done)
	f.mu.Unlock()
	for _, fn := range subs {
		fn(nil, err)
	}
	return true
}

// State returns the current settlement state.
func (f *Future[A]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Done returns a channel closed on settlement.
// Callers needing timeouts or cancellation select on it together with
// their own timers or contexts; the future itself never times out.
func (f *Future[A]) Done() <-chan struct{} {
	return f.done
}

// Result blocks until settlement and returns the outcome.
// It blocks forever if the future never settles.
func (f *Future[A]) Result() (A, error) {
	<-f.done
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.err
}

// TryResult returns the outcome without blocking.
// The third return reports whether the future has settled.
func (f *Future[A]) TryResult() (A, error, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StatePending {
		var zero A
		return zero, nil, false
	}
	return f.value, f.err, true
}

// OnSettle attaches a settlement callback, implementing [Awaitable].
// On fulfillment the callback receives (value, nil); on rejection it
// receives (nil, err). If the future has already settled, the callback
// runs synchronously before OnSettle returns; otherwise it runs exactly
// once on the settling goroutine.
func (f *Future[A]) OnSettle(fn func(v any, err error)) {
	f.mu.Lock()
	switch f.state {
	case StatePending:
		f.subs = append(f.subs, fn)
		f.mu.Unlock()
	case StateFulfilled:
		v := f.value
		f.mu.Unlock()
		fn(v, nil)
	default:
		err := f.err
		f.mu.Unlock()
		fn(nil, err)
	}
}
