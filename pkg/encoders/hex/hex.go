// Package hex is the lowercase hex codec used throughout the wire and
// canonical encodings, a thin append-style wrapper over the SIMD codec
// github.com/templexxx/xhex. It is strict: decoding rejects odd
// lengths and non-hex bytes rather than silently truncating, since a
// mis-decoded id or signature must never be allowed to look valid.
package hex

import (
	"github.com/templexxx/xhex"

	"embernote.dev/pkg/errs"
)

// EncAppend appends the lowercase hex encoding of src to dst and returns the
// extended slice, avoiding an intermediate allocation on hot paths.
func EncAppend(dst, src []byte) []byte {
	if len(src) == 0 {
		return dst
	}
	l := len(dst)
	dst = append(dst, make([]byte, len(src)*2)...)
	xhex.Encode(dst[l:], src)
	return dst
}

// Enc returns the lowercase hex encoding of src as a freshly allocated
// slice.
func Enc(src []byte) []byte { return EncAppend(make([]byte, 0, len(src)*2), src) }

// EncString is Enc returning a string, for call sites that need one (e.g.
// map keys, log lines).
func EncString(src []byte) string { return string(Enc(src)) }

// DecAppend decodes src (must have even length and contain only hex digits)
// and appends the bytes to dst.
func DecAppend(dst, src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return dst, errs.Wrapf(errs.EncodeError, "odd-length hex string, %d bytes", len(src))
	}
	if len(src) == 0 {
		return dst, nil
	}
	l := len(dst)
	dst = append(dst, make([]byte, len(src)/2)...)
	if err := xhex.Decode(dst[l:], src); err != nil {
		return dst[:l], errs.Wrapf(errs.EncodeError, "%s", err)
	}
	return dst, nil
}

// Dec decodes src into a freshly allocated slice.
func Dec[V []byte | string](src V) ([]byte, error) {
	return DecAppend(make([]byte, 0, len(src)/2), []byte(src))
}

// DecLen decodes src and additionally requires the result be exactly
// wantLen bytes, validating a fixed-size hex value in one call.
func DecLen[V []byte | string](src V, wantLen int) ([]byte, error) {
	b, err := Dec(src)
	if err != nil {
		return nil, err
	}
	if len(b) != wantLen {
		return nil, errs.Wrapf(errs.EncodeError, "wrong length, want %d got %d", wantLen, len(b))
	}
	return b, nil
}
