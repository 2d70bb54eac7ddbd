// Package p256k is the crypto envelope: x-only pubkey derivation, BIP-340
// Schnorr sign/verify with explicit auxiliary randomness, and the ECDH
// primitive NIP-04 builds on, all against the real
// github.com/btcsuite/btcd/btcec/v2 (and its schnorr subpackage) rather
// than a vendored secp256k1 implementation.
package p256k

import (
	"crypto/rand"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"embernote.dev/pkg/errs"
	"embernote.dev/pkg/interfaces/signer"
)

// SecKeyBytesLen is the length of a raw secp256k1 secret key.
const SecKeyBytesLen = 32

// PubKeyBytesLen is the length of an x-only (BIP-340) public key.
const PubKeyBytesLen = schnorr.PubKeyBytesLen

// SignatureSize is the length of a BIP-340 Schnorr signature.
const SignatureSize = schnorr.SignatureSize

// Signer is the sole implementation of signer.I in this module.
type Signer struct {
	sec *btcec.PrivateKey
	pub *btcec.PublicKey
	skb []byte
	pkb []byte
}

var _ signer.I = (*Signer)(nil)

// InitSec loads a Signer from raw secret key bytes, able to both sign and
// verify.
func (s *Signer) InitSec(sec []byte) error {
	if len(sec) != SecKeyBytesLen {
		return errs.Wrapf(errs.InvalidPrivkey, "secret key must be %d bytes, got %d", SecKeyBytesLen, len(sec))
	}
	s.skb = append([]byte(nil), sec...)
	s.sec, s.pub = btcec.PrivKeyFromBytes(sec)
	s.pkb = schnorr.SerializePubKey(s.pub)
	return nil
}

// InitPub loads a verify-only Signer from a 32-byte x-only public key.
func (s *Signer) InitPub(pub []byte) error {
	p, err := schnorr.ParsePubKey(pub)
	if err != nil {
		return errs.Wrapf(errs.InvalidPubkey, "%s", err)
	}
	s.pub = p
	s.pkb = append([]byte(nil), pub...)
	return nil
}

// Pub returns the 32-byte x-only public key.
func (s *Signer) Pub() []byte {
	if s == nil {
		return nil
	}
	return s.pkb
}

// Sec returns the raw secret key bytes, or nil for a verify-only Signer.
func (s *Signer) Sec() []byte {
	if s == nil {
		return nil
	}
	return s.skb
}

// Sign produces a Schnorr signature using a fresh, crypto/rand-sourced
// auxiliary value. Prefer SignWithAux when the caller needs control over
// aux_rand.
func (s *Signer) Sign(hash []byte) (sig []byte, err error) {
	var aux [32]byte
	if _, err = rand.Read(aux[:]); err != nil {
		return nil, errs.Wrapf(errs.InternalSigningError, "%s", err)
	}
	return s.SignWithAux(hash, aux[:])
}

// SignWithAux produces a BIP-340 Schnorr signature over hash using the
// caller-supplied aux_rand. aux_rand MUST be unique per signing operation;
// this function does not and cannot enforce that.
func (s *Signer) SignWithAux(hash, aux []byte) (sig []byte, err error) {
	if s.sec == nil {
		return nil, errs.Wrap(errs.InvalidPrivkey, "signer has no secret key loaded")
	}
	if len(aux) != 32 {
		return nil, errs.Wrapf(errs.InternalSigningError, "aux_rand must be 32 bytes, got %d", len(aux))
	}
	var a [32]byte
	copy(a[:], aux)
	si, err := schnorr.Sign(s.sec, hash, schnorr.CustomNonce(a))
	if err != nil {
		return nil, errs.Wrapf(errs.Secp256k1Error, "%s", err)
	}
	return si.Serialize(), nil
}

// Verify checks a BIP-340 Schnorr signature over hash.
func (s *Signer) Verify(hash, sig []byte) (bool, error) {
	if s.pub == nil {
		return false, errs.Wrap(errs.InvalidPubkey, "signer has no public key loaded")
	}
	si, err := schnorr.ParseSignature(sig)
	if err != nil {
		return false, errs.Wrapf(errs.InvalidSignature, "%s", err)
	}
	if !si.Verify(hash, s.pub) {
		return false, errs.Wrap(errs.InvalidSignature, "signature does not verify")
	}
	return true, nil
}

// ECDH derives a shared secret with pubkeyBytes (a 32-byte x-only key),
// normalizing it to a compressed point by prefixing 0x02 per the documented
// NIP-04 quirk: the point's true parity is discarded, only the
// shared X coordinate is used as key material.
func (s *Signer) ECDH(pubkeyBytes []byte) (secret []byte, err error) {
	if s.sec == nil {
		return nil, errs.Wrap(errs.InvalidPrivkey, "signer has no secret key loaded")
	}
	if len(pubkeyBytes) != PubKeyBytesLen {
		return nil, errs.Wrapf(errs.InvalidPubkey, "pubkey must be %d bytes, got %d", PubKeyBytesLen, len(pubkeyBytes))
	}
	compressed := append([]byte{0x02}, pubkeyBytes...)
	pub, err := btcec.ParsePubKey(compressed)
	if err != nil {
		return nil, errs.Wrapf(errs.InvalidPubkey, "%s", err)
	}
	return btcec.GenerateSharedSecret(s.sec, pub), nil
}

// Zero wipes the secret key bytes in place.
func (s *Signer) Zero() {
	for i := range s.skb {
		s.skb[i] = 0
	}
}

// DerivePubkey is a free function for the common case of only needing the
// x-only public key for a secret key, without keeping a Signer around.
func DerivePubkey(seckey []byte) (pub []byte, err error) {
	s := &Signer{}
	if err = s.InitSec(seckey); err != nil {
		return nil, err
	}
	return s.Pub(), nil
}
