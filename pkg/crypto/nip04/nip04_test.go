package nip04

import (
	"testing"

	"embernote.dev/pkg/crypto/p256k"
	"embernote.dev/pkg/encoders/hex"
)

const fixedSeckeyHex = "a5084b35a58e3e1a26f5efb46cb9dbada73191526aa6d11bccb590cbeb2d8fa3"

// Test vector 4: decrypting a fixed ciphertext under the fixed
// private key against a known sender pubkey must yield the known
// plaintext.
func TestDecryptVector(t *testing.T) {
	sk, err := hex.Dec(fixedSeckeyHex)
	if err != nil {
		t.Fatalf("decode seckey: %v", err)
	}
	s := &p256k.Signer{}
	if err = s.InitSec(sk); err != nil {
		t.Fatalf("InitSec: %v", err)
	}
	senderPub, err := hex.Dec("ed984a5438492bdc75860aad15a59f8e2f858792824d615401fb49d79c2087b0")
	if err != nil {
		t.Fatalf("decode sender pubkey: %v", err)
	}

	key, err := SharedKey(s, senderPub)
	if err != nil {
		t.Fatalf("SharedKey: %v", err)
	}
	const wire = "sZhES/uuV1uMmt9neb6OQw6mykdLYerAnTN+LodleSI=?iv=eM0mGFqFhxmmMwE4YPsQMQ=="
	plaintext, err := Decrypt(key, wire)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	const want = "hello from the internet"
	if string(plaintext) != want {
		t.Fatalf("plaintext mismatch: got %q, want %q", plaintext, want)
	}
}

// NIP-04 round trip: encrypting under one party's key and
// decrypting under the other's must recover the original plaintext for any
// valid key pair, IV, and message up to 380 bytes.
func TestEncryptDecryptRoundTrip(t *testing.T) {
	skA := make([]byte, 32)
	skA[31] = 0x01
	skB := make([]byte, 32)
	skB[31] = 0x02

	a := &p256k.Signer{}
	if err := a.InitSec(skA); err != nil {
		t.Fatalf("InitSec A: %v", err)
	}
	b := &p256k.Signer{}
	if err := b.InitSec(skB); err != nil {
		t.Fatalf("InitSec B: %v", err)
	}

	keyA, err := SharedKey(a, b.Pub())
	if err != nil {
		t.Fatalf("SharedKey A->B: %v", err)
	}
	keyB, err := SharedKey(b, a.Pub())
	if err != nil {
		t.Fatalf("SharedKey B->A: %v", err)
	}

	iv := make([]byte, IVSize)
	for i := range iv {
		iv[i] = byte(i)
	}
	const plaintext = "the quick brown fox jumps over the lazy dog, repeatedly, to pad this message out a bit"
	wire, err := Encrypt(keyA, iv, []byte(plaintext))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	got, err := Decrypt(keyB, wire)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if string(got) != plaintext {
		t.Fatalf("round trip mismatch: got %q, want %q", got, plaintext)
	}
}

// A full 16-byte block of plaintext must still gain a whole extra padding
// block of 0x10 bytes.
func TestPadPKCS7FullBlock(t *testing.T) {
	in := make([]byte, 16)
	out := padPKCS7(in, 16)
	if len(out) != 32 {
		t.Fatalf("expected 32 bytes, got %d", len(out))
	}
	for _, b := range out[16:] {
		if b != 0x10 {
			t.Fatalf("expected all-0x10 pad block, got %x", out[16:])
		}
	}
}

// Decrypt must fail with MalformedContent when the wire value has no
// "?iv=" separator, rather than misinterpreting the whole string as
// ciphertext.
func TestDecryptMissingIVSeparator(t *testing.T) {
	if _, err := Decrypt(make([]byte, 32), "not-a-valid-wire-value"); err == nil {
		t.Fatal("expected error for missing ?iv= separator")
	}
}
