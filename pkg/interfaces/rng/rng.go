// Package rng is the injected randomness collaborator: callers
// supply aux_rand for Schnorr signing and IVs for NIP-04 encryption, since
// their quality requirements (uniqueness per operation, unpredictability)
// are the caller's to meet. The one exception is p256k.Signer.Sign, which
// draws its own aux_rand from crypto/rand; SignWithAux, which the builder
// uses, takes it from the caller.
package rng

import "crypto/rand"

// Source fills b with random bytes.
type Source interface {
	Read(b []byte) error
}

// System is backed by crypto/rand, the obvious real implementation for a
// host with an OS entropy source.
type System struct{}

// Read fills b from crypto/rand.Reader.
func (System) Read(b []byte) error {
	_, err := rand.Read(b)
	return err
}
