package p256k

import (
	"embernote.dev/pkg/encoders/hex"
	"embernote.dev/pkg/errs"
	"embernote.dev/pkg/interfaces/signer"
)

// NewSecFromHex builds a signing-capable Signer from a hex-encoded secret
// key, the shape the builder and a demonstration CLI supply keys in. Hex
// that does not decode is InvalidPrivkey here, not EncodeError: at this
// boundary the string is key material, not wire bytes.
func NewSecFromHex[V []byte | string](skh V) (sign signer.I, err error) {
	var sk []byte
	if sk, err = hex.Dec([]byte(skh)); err != nil {
		return nil, errs.Wrapf(errs.InvalidPrivkey, "%s", err)
	}
	s := &Signer{}
	if err = s.InitSec(sk); err != nil {
		return nil, err
	}
	return s, nil
}

// NewPubFromHex builds a verify-only Signer from a hex-encoded x-only
// public key, validating that it names a real curve point.
func NewPubFromHex[V []byte | string](pkh V) (sign signer.I, err error) {
	var pk []byte
	if pk, err = hex.Dec([]byte(pkh)); err != nil {
		return nil, errs.Wrapf(errs.InvalidPubkey, "%s", err)
	}
	s := &Signer{}
	if err = s.InitPub(pk); err != nil {
		return nil, err
	}
	return s, nil
}
