// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package await drives resumable computations to a single asynchronous
// result.
//
// A resumable computation suspends at defined points, optionally handing
// out a value, and resumes later with a supplied value or an injected
// error. The driver loops over such a computation, normalizing each
// suspend-point value into an awaitable, feeding each settlement back in,
// until the computation returns or fails. Callers write straight-line code
// that awaits asynchronous values without chaining callbacks.
//
// # Entry Points
//
//   - [Drive]: classify a target and convert it into a [Future]
//   - [DriveWith]: [Drive] with the invocation receiver bound
//   - [DriveResumable]: drive an already-constructed instance
//
// Target shapes dispatch as an explicit tagged union:
//
//   - [Factory]: invoked with receiver and args, instance driven to completion
//   - [Callable]: runs synchronously; errors and panics reject immediately,
//     awaitable returns are chained
//   - plain value: resolved directly, awaitables included
//
// Invocation is eager: code up to the first suspend point, or a callable's
// entire body, runs before the future is handed back.
//
// # Result Future
//
// [Future] is a single-assignment completion signal with states
// pending, fulfilled, and rejected. Settlement happens exactly once;
// later attempts are no-ops. Observation: [Future.Result] (blocking),
// [Future.TryResult], [Future.Done], [Future.OnSettle]. Derivation:
// [Then], [Map], [Recover], [Finally].
//
// # Driving
//
// Each suspend-point value passes through [Normalize]: values exposing
// the [Awaitable] capability pass unchanged, anything else wraps in an
// immediately-fulfilled awaitable. On fulfillment the computation resumes
// with the value; on rejection the error is injected at the suspend point,
// letting the computation recover internally or let it bubble. A terminal
// value is awaited exactly like a per-step value. Synchronously-settled
// steps continue in place on a trampoline, so a computation whose suspend
// points all carry plain values completes before its future is returned.
//
// An awaitable that never settles leaves the future pending forever. The
// package provides no cancellation or timeouts; callers wrap the driver
// externally, typically by selecting on [Future.Done] alongside their own
// timer or context.
//
// # Host Primitive
//
// [Coroutine] implements the [Resumable] contract on a goroutine
// rendezvous: the body receives a [Yield] function, each call a suspend
// point returning the resume value or the injected error. Body panics are
// captured and surfaced as rejections carrying the recovery stack.
// External runtimes participate by implementing [Resumable] directly.
//
// # Composition
//
// Nesting is composition: a computation yields the future of driving an
// inner computation, and the inner settlement flows through the outer
// suspend point like any other awaitable. An uncaught inner rejection
// propagates upward identically at every nesting level. Exactly one
// future per invocation, exactly one driver per instance; driver state is
// never shared.
//
// # Example
//
//	double := await.Factory(func(self any, args ...any) await.Resumable {
//		return await.NewCoroutine(func(yield await.Yield) (any, error) {
//			v, err := yield(fetch(args[0]))
//			if err != nil {
//				return nil, err
//			}
//			return v.(int) * 2, nil
//		})
//	})
//
//	result, err := await.Drive(double, 21).Result()
//	// result == 42 when fetch's future fulfills with 21
package await
