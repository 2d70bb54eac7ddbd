package p256k

import (
	"bytes"
	"testing"

	"lukechampine.com/frand"

	"embernote.dev/pkg/encoders/hex"
)

const (
	fixedSeckeyHex = "a5084b35a58e3e1a26f5efb46cb9dbada73191526aa6d11bccb590cbeb2d8fa3"
	fixedPubkeyHex = "098ef66bce60dd4cf10b4ae5949d1ec6dd777ddeb4bc49b47f97275a127a63cf"
)

func TestDerivePubkeyVector(t *testing.T) {
	sk, err := hex.Dec(fixedSeckeyHex)
	if err != nil {
		t.Fatalf("decode seckey: %v", err)
	}
	pub, err := DerivePubkey(sk)
	if err != nil {
		t.Fatalf("DerivePubkey: %v", err)
	}
	if got := hex.EncString(pub); got != fixedPubkeyHex {
		t.Fatalf("pubkey mismatch: got %s, want %s", got, fixedPubkeyHex)
	}
}

// Sign/verify round trip: for random hashes and random aux values, a
// signature by the secret key must verify under the derived pubkey, and
// flipping any signature byte must fail it.
func TestSignVerifyRoundTrip(t *testing.T) {
	sk := frand.Bytes(SecKeyBytesLen)
	s := &Signer{}
	if err := s.InitSec(sk); err != nil {
		t.Fatalf("InitSec: %v", err)
	}
	v := &Signer{}
	if err := v.InitPub(s.Pub()); err != nil {
		t.Fatalf("InitPub: %v", err)
	}
	for i := 0; i < 16; i++ {
		hash := frand.Bytes(32)
		aux := frand.Bytes(32)
		sig, err := s.SignWithAux(hash, aux)
		if err != nil {
			t.Fatalf("SignWithAux: %v", err)
		}
		if len(sig) != SignatureSize {
			t.Fatalf("sig is %d bytes, want %d", len(sig), SignatureSize)
		}
		valid, err := v.Verify(hash, sig)
		if err != nil || !valid {
			t.Fatalf("Verify: valid=%v err=%v", valid, err)
		}
		bad := bytes.Clone(sig)
		bad[frand.Intn(len(bad))] ^= 0xff
		if valid, _ = v.Verify(hash, bad); valid {
			t.Fatal("tampered signature verified")
		}
	}
}

func TestInitSecRejectsWrongLength(t *testing.T) {
	s := &Signer{}
	if err := s.InitSec(make([]byte, 31)); err == nil {
		t.Fatal("expected InvalidPrivkey for 31-byte key")
	}
}

// ECDH must be symmetric: A's secret against B's pubkey equals B's secret
// against A's pubkey, with only the X coordinate retained.
func TestECDHSymmetry(t *testing.T) {
	a := &Signer{}
	if err := a.InitSec(frand.Bytes(SecKeyBytesLen)); err != nil {
		t.Fatalf("InitSec A: %v", err)
	}
	b := &Signer{}
	if err := b.InitSec(frand.Bytes(SecKeyBytesLen)); err != nil {
		t.Fatalf("InitSec B: %v", err)
	}
	ab, err := a.ECDH(b.Pub())
	if err != nil {
		t.Fatalf("ECDH A->B: %v", err)
	}
	ba, err := b.ECDH(a.Pub())
	if err != nil {
		t.Fatalf("ECDH B->A: %v", err)
	}
	if !bytes.Equal(ab, ba) {
		t.Fatalf("shared secrets differ: %x vs %x", ab, ba)
	}
	if len(ab) != 32 {
		t.Fatalf("shared secret is %d bytes, want 32", len(ab))
	}
}

func TestZeroWipesSecret(t *testing.T) {
	s := &Signer{}
	if err := s.InitSec(frand.Bytes(SecKeyBytesLen)); err != nil {
		t.Fatalf("InitSec: %v", err)
	}
	s.Zero()
	for _, b := range s.Sec() {
		if b != 0 {
			t.Fatal("secret key not wiped")
		}
	}
}
