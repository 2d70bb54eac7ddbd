// Package timestamp is the created_at field type: an unsigned 32-bit Unix
// time in seconds, decimal-coded on the wire via ints.T.
package timestamp

import (
	"embernote.dev/pkg/encoders/ints"
	"embernote.dev/pkg/interfaces/clock"
)

// T is a created_at value.
type T struct{ V uint32 }

// New wraps a raw unix-seconds value.
func New(v uint32) *T { return &T{V: v} }

// Now reads the current time from the injected clock.Clock.
func Now(c clock.Clock) *T { return &T{V: c.Now()} }

// I64 returns the value widened to int64, for callers that prefer signed
// arithmetic.
func (t *T) I64() int64 { return int64(t.V) }

// Marshal appends the decimal form to dst.
func (t *T) Marshal(dst []byte) []byte { return ints.New(uint64(t.V)).Marshal(dst) }

// Unmarshal reads a decimal value from the front of b.
func (t *T) Unmarshal(b []byte) (rem []byte, err error) {
	n := ints.New(0)
	if rem, err = n.Unmarshal(b); err != nil {
		return b, err
	}
	t.V = uint32(n.N)
	return rem, nil
}
