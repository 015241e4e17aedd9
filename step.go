// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

// Step is the tagged result of one resumption of a resumable computation.
// Done false carries a suspend-point value; Done true carries the
// computation's return value. Ephemeral: produced and consumed within one
// step of the drive loop.
type Step struct {
	Done  bool
	Value any
}

// Resumable is the contract a resumable computation instance exposes to
// its driver: advance with a supplied value, or inject an error at the
// current suspend point.
//
// A non-nil error return means the computation terminated abnormally with
// that error; this is the Go rendition of resume/abort throwing synchronously.
// An injected error the computation recovers from internally surfaces as
// an ordinary next Step instead.
//
// An instance is exclusively owned and driven by one driver; calls are
// strictly ordered and never overlap. [Coroutine] is the package's own
// implementation; external runtimes satisfy the interface directly.
type Resumable interface {
	Resume(v any) (Step, error)
	Abort(err error) (Step, error)
}
