// Package ints is the decimal ASCII codec for unsigned integers that appear
// unquoted in the wire and canonical JSON (created_at, kind, since, until,
// limit, count). It never goes through strconv: the marshaled form is
// produced digit-by-digit into the caller's buffer, and unmarshal stops at
// the first non-digit byte rather than scanning a whole token first.
package ints

import "embernote.dev/pkg/errs"

// T is a decimal-coded unsigned integer field.
type T struct{ N uint64 }

// New wraps a value for marshaling.
func New(n uint64) *T { return &T{N: n} }

// Marshal appends the shortest decimal representation of n (no leading
// zeros, "0" for zero) to dst.
func (n *T) Marshal(dst []byte) []byte {
	if n.N == 0 {
		return append(dst, '0')
	}
	var buf [20]byte
	i := len(buf)
	v := n.N
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[i:]...)
}

// Unmarshal reads a run of decimal digits from the front of b, sets n.N,
// and returns the remainder after the last digit.
func (n *T) Unmarshal(b []byte) (rem []byte, err error) {
	i := 0
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}
	if i == 0 {
		return b, errs.Wrapf(errs.MalformedContent, "expected decimal digits, got '%s'", truncate(b))
	}
	var v uint64
	for _, c := range b[:i] {
		v = v*10 + uint64(c-'0')
	}
	n.N = v
	return b[i:], nil
}

func truncate(b []byte) []byte {
	if len(b) > 16 {
		return b[:16]
	}
	return b
}
