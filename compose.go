// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

// Future combinators. These are the chainable half of the awaitable
// contract: each derives a new single-assignment future from an existing
// one. Callbacks run synchronously when the source has settled, otherwise
// on the settling goroutine. A panic inside a callback rejects the derived
// future instead of unwinding the settling goroutine.

// as recovers the typed value from the type-erased settlement callback.
// The comma-ok form tolerates a nil fulfillment value for interface types.
func as[A any](v any) A {
	a, _ := v.(A)
	return a
}

// guard runs fn with panic capture, rejecting out on panic.
// Reports whether fn completed normally.
func guard(out interface{ Reject(error) bool }, fn func()) {
	defer func() {
		if p := recover(); p != nil {
			out.Reject(newPanicError(p))
		}
	}()
	fn()
}

// Then sequences fn after f (monadic bind). The derived future fulfills
// with fn's result, or rejects with f's error or fn's error, whichever
// comes first. Rejections fall through without invoking fn.
func Then[A, B any](f *Future[A], fn func(A) (B, error)) *Future[B] {
	out := New[B]()
	f.OnSettle(func(v any, err error) {
		if err != nil {
			out.Reject(err)
			return
		}
		guard(out, func() {
			b, ferr := fn(as[A](v))
			if ferr != nil {
				out.Reject(ferr)
				return
			}
			out.Fulfill(b)
		})
	})
	return out
}

// Map applies a pure transformation to f's fulfillment value.
// Equivalent to Then with an error-free fn, without the error plumbing.
func Map[A, B any](f *Future[A], fn func(A) B) *Future[B] {
	out := New[B]()
	f.OnSettle(func(v any, err error) {
		if err != nil {
			out.Reject(err)
			return
		}
		guard(out, func() {
			out.Fulfill(fn(as[A](v)))
		})
	})
	return out
}

// Recover handles f's rejection. Fulfillments fall through unchanged; on
// rejection fn either supplies a replacement value or a replacement error.
func Recover[A any](f *Future[A], fn func(error) (A, error)) *Future[A] {
	out := New[A]()
	f.OnSettle(func(v any, err error) {
		if err == nil {
			out.Fulfill(as[A](v))
			return
		}
		guard(out, func() {
			a, ferr := fn(err)
			if ferr != nil {
				out.Reject(ferr)
				return
			}
			out.Fulfill(a)
		})
	})
	return out
}

// Finally runs fn on settlement regardless of outcome, then propagates
// the original settlement unchanged. The cleanup cannot alter the result;
// a panic inside fn rejects the derived future instead.
func Finally[A any](f *Future[A], fn func()) *Future[A] {
	out := New[A]()
	f.OnSettle(func(v any, err error) {
		guard(out, func() {
			fn()
			if err != nil {
				out.Reject(err)
				return
			}
			out.Fulfill(as[A](v))
		})
	})
	return out
}
