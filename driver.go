// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import "sync/atomic"

// driver drives one resumable computation instance to completion.
// Exactly one driver per instance; steps are strictly ordered and never
// overlap, because resumption only ever follows the previous suspend
// point's settlement.
type driver struct {
	r   Resumable
	fut *Future[any]
}

// DriveResumable drives r to completion and returns its result future.
//
// The first resumption happens before DriveResumable returns, so code up
// to the first suspend point runs eagerly on the caller's goroutine. A
// computation whose suspend points all settle synchronously completes
// without any wait: the returned future is already settled.
func DriveResumable(r Resumable) *Future[any] {
	d := &driver{r: r, fut: New[any]()}
	d.advance(nil, nil)
	return d.fut
}

// advance resumes the computation (or aborts it, when inject is non-nil)
// and loops while suspend points settle synchronously. The loop is a
// trampoline: a synchronously-settled step continues in place instead of
// recursing, and a pending step parks until its settlement re-enters
// advance on the settling goroutine.
func (d *driver) advance(v any, inject error) {
	for {
		var (
			step Step
			err  error
		)
		if inject != nil {
			step, err = d.r.Abort(inject)
		} else {
			step, err = d.r.Resume(v)
		}
		if err != nil {
			// Resume or abort terminated the computation abnormally.
			d.fut.Reject(err)
			return
		}
		aw := Normalize(step.Value)
		if step.Done {
			// Terminal value: awaited exactly like a per-step value.
			aw.OnSettle(d.finish)
			return
		}
		t := &turn{d: d}
		aw.OnSettle(t.settle)
		if t.tok.Add(1) != 2 {
			return
		}
		v, inject = t.v, t.err
	}
}

// finish settles the result future from the terminal step's settlement.
func (d *driver) finish(v any, err error) {
	if err != nil {
		d.fut.Reject(err)
		return
	}
	d.fut.Fulfill(v)
}

// turn carries one suspend point's settlement back into the drive loop.
//
// Both the loop and the settle callback Add(1) on the token; whichever
// observes 2 carries the drive forward. A callback firing inside OnSettle
// leaves the loop in charge (no recursion, no wait); a later asynchronous
// settlement re-enters advance. The token also makes resumption one-shot:
// further callback invocations observe a count above 2 and are dropped.
type turn struct {
	d   *driver
	tok atomic.Uintptr
	v   any
	err error
}

func (t *turn) settle(v any, err error) {
	t.v, t.err = v, err
	if t.tok.Add(1) != 2 {
		return
	}
	t.d.advance(t.v, t.err)
}
