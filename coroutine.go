// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

// Yield hands a value to the driver and suspends until resumption.
// It returns the resume value, or a non-nil error when the driver injected
// one at this suspend point. The body recovers by inspecting the error and
// continuing, or propagates by returning it.
type Yield func(v any) (any, error)

// Body is a resumable computation written as straight-line code.
// Each yield call is a suspend point; the returned value and error form
// the computation's terminal step.
type Body func(yield Yield) (any, error)

// injection is one resume or abort delivered to the coroutine goroutine.
type injection struct {
	value any
	err   error
	abort bool
}

// outcome is one step result delivered back to the driving side.
type outcome struct {
	step Step
	err  error
}

// Coroutine is a goroutine-backed resumable computation.
//
// Resume and Abort are synchronous rendezvous: the body runs until its
// next suspend point (or return) before either call returns, so invocation
// is eager and two steps of the same coroutine never overlap. A coroutine
// abandoned mid-suspension parks its goroutine forever; there is no
// cancellation, callers wrap the driver externally when they need one.
type Coroutine struct {
	in   chan injection
	out  chan outcome
	done bool
}

// NewCoroutine creates a resumable computation instance from body.
// The body does not start running until the first Resume.
func NewCoroutine(body Body) *Coroutine {
	c := &Coroutine{in: make(chan injection), out: make(chan outcome)}
	go c.run(body)
	return c
}

func (c *Coroutine) run(body Body) {
	first := <-c.in
	if first.abort {
		// Aborted before the first resume: the body never runs.
		c.out <- outcome{err: first.err}
		return
	}
	var (
		result any
		err    error
	)
	func() {
		defer func() {
			if p := recover(); p != nil {
				err = newPanicError(p)
			}
		}()
		result, err = body(c.yield)
	}()
	if err != nil {
		c.out <- outcome{err: err}
		return
	}
	c.out <- outcome{step: Step{Done: true, Value: result}}
}

// yield is the suspend-point function handed to the body.
func (c *Coroutine) yield(v any) (any, error) {
	c.out <- outcome{step: Step{Value: v}}
	inj := <-c.in
	if inj.abort {
		return nil, inj.err
	}
	return inj.value, nil
}

// Resume advances the coroutine with v and returns its next step.
// After completion it returns Step{Done: true} with a zero value.
func (c *Coroutine) Resume(v any) (Step, error) {
	if c.done {
		return Step{Done: true}, nil
	}
	c.in <- injection{value: v}
	return c.collect()
}

// Abort injects err at the current suspend point. The error is delivered
// as the yield call's error return; execution advances from there. An
// abort after completion returns the error unconsumed.
func (c *Coroutine) Abort(err error) (Step, error) {
	if c.done {
		return Step{}, err
	}
	c.in <- injection{err: err, abort: true}
	return c.collect()
}

func (c *Coroutine) collect() (Step, error) {
	o := <-c.out
	if o.err != nil {
		c.done = true
		return Step{}, o.err
	}
	if o.step.Done {
		c.done = true
	}
	return o.step, nil
}
