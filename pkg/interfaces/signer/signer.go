// Package signer declares the crypto contract: identity, Schnorr
// sign/verify, and ECDH, satisfied by pkg/crypto/p256k.Signer. The NIP-04
// codec depends only on this interface. The builder holds its signer
// through this interface, but its constructors (New, NewFromHex) always
// create a p256k.Signer, and event.E.Verify also uses p256k.Signer
// directly.
package signer

// I is the signer contract.
type I interface {
	// InitSec loads a 32-byte secret key.
	InitSec(sec []byte) error
	// InitPub loads a 32-byte x-only public key (verify-only).
	InitPub(pub []byte) error
	// Pub returns the 32-byte x-only public key.
	Pub() []byte
	// Sec returns the 32-byte secret key, or nil if this signer is
	// verify-only.
	Sec() []byte
	// Sign produces a BIP-340 Schnorr signature over hash using an
	// internally-selected auxiliary random value. Prefer SignWithAux when
	// the caller must control aux_rand directly.
	Sign(hash []byte) (sig []byte, err error)
	// SignWithAux produces a BIP-340 Schnorr signature over hash using the
	// caller-supplied aux_rand, which must be unique per signing operation.
	SignWithAux(hash, aux []byte) (sig []byte, err error)
	// Verify checks a BIP-340 Schnorr signature over hash.
	Verify(hash, sig []byte) (bool, error)
	// ECDH derives a shared secret with the given x-only public key, per
	// the NIP-04 quirk of prefixing 0x02 before deriving.
	ECDH(pubkey []byte) (secret []byte, err error)
	// Zero wipes the secret key bytes.
	Zero()
}
