// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package await

// Awaitable is the minimal capability the driver requires of a value not
// yet known: attaching a settlement callback. The callback receives
// (value, nil) on fulfillment or (nil, err) on rejection, and must be
// invoked exactly once, synchronously when the awaitable has already
// settled.
//
// [Future] is the package's own Awaitable; any external type exposing
// OnSettle participates in driving without adaptation.
type Awaitable interface {
	OnSettle(fn func(v any, err error))
}

// Normalize converts v into a canonical awaitable.
//
// Values already implementing [Awaitable] are returned unchanged, so
// normalizing is idempotent and identity-preserving: never a
// wrapper-of-wrapper. Anything else is wrapped in an immediately-fulfilled
// awaitable carrying v. Pure mapping, no side effects.
func Normalize(v any) Awaitable {
	if a, ok := v.(Awaitable); ok {
		return a
	}
	return settled{v: v}
}

// settled is an immediately-fulfilled awaitable around a plain value.
// Cheaper than a full Future: no channel, no mutex, no subscriber list.
type settled struct{ v any }

// OnSettle invokes fn synchronously with the carried value.
func (s settled) OnSettle(fn func(v any, err error)) {
	fn(s.v, nil)
}
