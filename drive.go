// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

// Factory constructs a resumable computation instance bound to the
// invocation receiver and arguments. Driving a factory target invokes it
// once and drives the instance it returns.
//
// A Factory value that merely flows through a computation as data, yielded
// or returned, is never invoked by the driver.
type Factory func(self any, args ...any) Resumable

// Callable is an ordinary function target. It runs synchronously during
// dispatch; its return value, if awaitable, is chained, otherwise the
// result future fulfills with it immediately.
type Callable func(self any, args ...any) (any, error)

// targetKind tags the dispatcher's classification of a target.
type targetKind uint8

const (
	targetValue targetKind = iota
	targetCallable
	targetFactory
)

// invocation is a classified target, the explicit tagged union the
// dispatcher routes on.
type invocation struct {
	kind    targetKind
	factory Factory
	call    Callable
}

// classify inspects the target's shape. Named types and raw func values
// of the matching signature classify alike; everything else is a plain
// value.
func classify(target any) invocation {
	switch t := target.(type) {
	case Factory:
		return invocation{kind: targetFactory, factory: t}
	case func(self any, args ...any) Resumable:
		return invocation{kind: targetFactory, factory: t}
	case Callable:
		return invocation{kind: targetCallable, call: t}
	case func(self any, args ...any) (any, error):
		return invocation{kind: targetCallable, call: t}
	default:
		return invocation{kind: targetValue}
	}
}

// Drive converts target into a single asynchronous result.
//
// A [Factory] target is invoked with args and its instance driven to
// completion. A [Callable] target runs synchronously: an error or panic
// rejects the future with no step ever starting, a normal return resolves
// it (chaining awaitable returns). Any other target is treated as a plain
// value, which may itself be awaitable.
//
// Invocation is eager: code up to the first suspend point, or a callable's
// entire body, runs before the future is handed back.
func Drive(target any, args ...any) *Future[any] {
	return DriveWith(nil, target, args...)
}

// DriveWith is [Drive] with the invocation receiver bound: factories and
// callables receive self as their first parameter.
func DriveWith(self any, target any, args ...any) *Future[any] {
	switch t := classify(target); t.kind {
	case targetFactory:
		r, err := invokeFactory(t.factory, self, args)
		if err != nil {
			return Rejected[any](err)
		}
		return DriveResumable(r)
	case targetCallable:
		v, err := invokeCallable(t.call, self, args)
		if err != nil {
			return Rejected[any](err)
		}
		return futureOf(v)
	default:
		return futureOf(target)
	}
}

// futureOf resolves a plain value, which may itself be awaitable, to a
// result future. A *Future[any] passes through unchanged.
func futureOf(v any) *Future[any] {
	if f, ok := v.(*Future[any]); ok {
		return f
	}
	if a, ok := v.(Awaitable); ok {
		f := New[any]()
		a.OnSettle(func(v any, err error) {
			if err != nil {
				f.Reject(err)
				return
			}
			f.Fulfill(v)
		})
		return f
	}
	return Resolved[any](v)
}

func invokeCallable(fn Callable, self any, args []any) (v any, err error) {
	defer func() {
		if p := recover(); p != nil {
			v, err = nil, newPanicError(p)
		}
	}()
	return fn(self, args...)
}

func invokeFactory(fn Factory, self any, args []any) (r Resumable, err error) {
	defer func() {
		if p := recover(); p != nil {
			r, err = nil, newPanicError(p)
		}
	}()
	return fn(self, args...), nil
}
