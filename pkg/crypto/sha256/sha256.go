// Package sha256 wraps minio/sha256-simd so the rest of the module never
// imports crypto/sha256 directly, using the SIMD-accelerated
// implementation for the one hash on the hot path (every signed or
// verified event goes through it once).
package sha256

import "github.com/minio/sha256-simd"

// Size is the digest length in bytes.
const Size = sha256.Size

// Sum256 hashes in and returns a freshly allocated 32-byte slice, rather
// than the array sha256-simd.Sum256 returns, since every call site appends
// it into an id/sig buffer immediately.
func Sum256(in []byte) []byte {
	h := sha256.Sum256(in)
	return h[:]
}
