// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

import (
	"fmt"
	"runtime/debug"
)

// panicError carries a recovered panic value across the settlement
// boundary together with the stack captured at recovery time.
// User-code panics are surfaced as rejections, never re-raised outside
// the future mechanism.
type panicError struct {
	value any
	stack []byte
}

func newPanicError(v any) error {
	return &panicError{value: v, stack: debug.Stack()}
}

func (p *panicError) Error() string {
	return fmt.Sprintf("await: panic: %v", p.value)
}

// ErrorWithStack returns the panic message followed by the stack trace
// captured when the panic was recovered.
func (p *panicError) ErrorWithStack() string {
	return fmt.Sprintf("await: panic: %v\n\n%s", p.value, p.stack)
}

// Unwrap exposes the panic value when it was an error, so errors.Is and
// errors.As see through the wrapper.
func (p *panicError) Unwrap() error {
	err, ok := p.value.(error)
	if !ok {
		return nil
	}
	return err
}
