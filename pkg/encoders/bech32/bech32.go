// Package bech32 decodes and encodes the NIP-19 npub/nsec key formats
// relay operators and users type at a CLI, over github.com/btcsuite/btcd's
// bech32 subpackage, with a bech32-or-hex fallback so either form is
// accepted at the input boundary.
package bech32

import (
	"github.com/btcsuite/btcd/btcutil/bech32"

	"embernote.dev/pkg/encoders/hex"
	"embernote.dev/pkg/errs"
)

const (
	npubHRP = "npub"
	nsecHRP = "nsec"
)

// DecodeNpubOrHex accepts either a bech32 "npub1..." string or a 64-char
// hex string and returns the 32-byte x-only public key.
func DecodeNpubOrHex(v string) ([]byte, error) { return decodeOrHex(v, npubHRP) }

// DecodeNsecOrHex accepts either a bech32 "nsec1..." string or a 64-char
// hex string and returns the 32-byte secret key.
func DecodeNsecOrHex(v string) ([]byte, error) { return decodeOrHex(v, nsecHRP) }

func decodeOrHex(v, wantHRP string) ([]byte, error) {
	hrp, data, err := bech32.Decode(v)
	if err != nil {
		// Not bech32 at all; fall back to raw hex.
		return hex.DecLen([]byte(v), 32)
	}
	if hrp != wantHRP {
		return nil, errs.Wrapf(errs.InvalidPubkey, "wrong bech32 prefix: got %q, want %q", hrp, wantHRP)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, errs.Wrapf(errs.EncodeError, "bech32 bit conversion failed: %s", err)
	}
	if len(raw) != 32 {
		return nil, errs.Wrapf(errs.ContentOverflow, "decoded value is %d bytes, want 32", len(raw))
	}
	return raw, nil
}

// EncodeNpub encodes a 32-byte x-only public key as "npub1...".
func EncodeNpub(pub []byte) (string, error) { return encode(pub, npubHRP) }

// EncodeNsec encodes a 32-byte secret key as "nsec1...".
func EncodeNsec(sec []byte) (string, error) { return encode(sec, nsecHRP) }

func encode(raw []byte, hrp string) (string, error) {
	if len(raw) != 32 {
		return "", errs.Wrapf(errs.ContentOverflow, "value is %d bytes, want 32", len(raw))
	}
	data, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", errs.Wrapf(errs.EncodeError, "bech32 bit conversion failed: %s", err)
	}
	return bech32.Encode(hrp, data)
}
