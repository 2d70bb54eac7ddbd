// Package nip04 implements the NIP-04 encrypted direct-message codec:
// ECDH via the injected signer.I, AES-256-CBC with PKCS#7 padding as the
// block cipher primitive, and the relay wire format
// base64(ciphertext)+"?iv="+base64(iv). It leans on the standard library's
// crypto/aes and crypto/cipher for the cipher itself (documented in the
// grounding ledger); everything around it — the ECDH call, the padding
// scheme, the wire format, the lenient-padding decrypt quirk — is small,
// single-purpose functions operating on byte slices.
package nip04

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"strings"

	"embernote.dev/pkg/errs"
	"embernote.dev/pkg/interfaces/signer"
)

// IVSize is the AES block size and therefore the CBC initialization vector
// size.
const IVSize = aes.BlockSize

// ivSuffix separates the base64 ciphertext from the base64 IV on the wire.
const ivSuffix = "?iv="

// SharedKey derives the AES-256 key for a DM between self (holding the
// secret key) and peerPub (an x-only public key), via self's ECDH.
func SharedKey(self signer.I, peerPub []byte) (key []byte, err error) {
	secret, err := self.ECDH(peerPub)
	if err != nil {
		return nil, errs.Wrapf(errs.InternalError, "%s", err)
	}
	return secret, nil
}

// Encrypt pads plaintext with PKCS#7, encrypts it under key with AES-256-CBC
// using iv, and returns the wire string:
// base64(ciphertext)+"?iv="+base64(iv). The iv must be unpredictable and
// unique per message under a given key; reusing one leaks plaintext
// relationships under CBC.
func Encrypt(key, iv, plaintext []byte) (wire string, err error) {
	if len(iv) != IVSize {
		return "", errs.Wrapf(errs.MalformedContent, "iv must be %d bytes, got %d", IVSize, len(iv))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", errs.Wrapf(errs.InternalError, "%s", err)
	}
	padded := padPKCS7(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	return base64.StdEncoding.EncodeToString(ciphertext) + ivSuffix + base64.StdEncoding.EncodeToString(iv), nil
}

// Decrypt reverses Encrypt: splits the wire string on "?iv=", base64-decodes
// both halves, AES-256-CBC decrypts, and strips PKCS#7 padding.
//
// Padding removal is lenient: if the final byte is >= 17 it cannot be a
// valid PKCS#7 pad count for a 16-byte block cipher, so the plaintext is
// returned unmodified rather than rejected. A block-aligned plaintext that
// a sender encrypted without a padding block therefore comes back intact
// when its last byte is 17 or more. The ciphertext itself must still be a
// whole number of blocks.
func Decrypt(key []byte, wire string) (plaintext []byte, err error) {
	parts := strings.SplitN(wire, ivSuffix, 2)
	if len(parts) != 2 {
		return nil, errs.Wrap(errs.MalformedContent, "nip04 wire value missing ?iv= suffix")
	}
	ciphertext, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, errs.Wrapf(errs.MalformedContent, "bad base64 ciphertext: %s", err)
	}
	iv, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, errs.Wrapf(errs.MalformedContent, "bad base64 iv: %s", err)
	}
	if len(iv) != IVSize {
		return nil, errs.Wrapf(errs.MalformedContent, "iv must be %d bytes, got %d", IVSize, len(iv))
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, errs.Wrap(errs.MalformedContent, "ciphertext is not a whole number of blocks")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errs.Wrapf(errs.InternalError, "%s", err)
	}
	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)
	return unpadPKCS7Lenient(out), nil
}

// padPKCS7 appends the PKCS#7 pad: blockSize-(len%blockSize) bytes, each
// holding that count, always adding a full block when len is already a
// multiple of blockSize.
func padPKCS7(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// unpadPKCS7Lenient strips a trailing PKCS#7 pad by reading the final byte
// and trimming that many bytes. A final byte of 17 or more cannot be a pad
// count for a 16-byte block cipher, so the data is returned unmodified
// instead of rejected; the pad bytes themselves are not cross-checked, so
// some non-compliant senders decrypt cleanly where a strict unpad would
// fail them.
func unpadPKCS7Lenient(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	n := int(data[len(data)-1])
	if n > aes.BlockSize || n > len(data) {
		return data
	}
	return data[:len(data)-n]
}
