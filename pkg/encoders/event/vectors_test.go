package event

import (
	"bytes"
	"testing"

	"embernote.dev/pkg/crypto/p256k"
	"embernote.dev/pkg/encoders/hex"
	"embernote.dev/pkg/encoders/kind"
	"embernote.dev/pkg/encoders/tag"
	"embernote.dev/pkg/encoders/tags"
	"embernote.dev/pkg/encoders/timestamp"
)

const (
	fixedSeckeyHex = "a5084b35a58e3e1a26f5efb46cb9dbada73191526aa6d11bccb590cbeb2d8fa3"
	fixedPubkeyHex = "098ef66bce60dd4cf10b4ae5949d1ec6dd777ddeb4bc49b47f97275a127a63cf"
)

func fixedSigner(t *testing.T) *p256k.Signer {
	t.Helper()
	sk, err := hex.Dec(fixedSeckeyHex)
	if err != nil {
		t.Fatalf("decode seckey: %v", err)
	}
	s := &p256k.Signer{}
	if err = s.InitSec(sk); err != nil {
		t.Fatalf("InitSec: %v", err)
	}
	if hex.EncString(s.Pub()) != fixedPubkeyHex {
		t.Fatalf("derived pubkey mismatch: got %s, want %s", hex.EncString(s.Pub()), fixedPubkeyHex)
	}
	return s
}

// Test vector 1: a zero-tag ShortNote with content "esptest",
// created_at=1686880020, aux_rand all-zero, must reproduce the specified id
// and signed wire form.
func TestVectorShortNoteBasic(t *testing.T) {
	s := fixedSigner(t)
	ev := New()
	ev.Content = []byte("esptest")
	ev.CreatedAt = timestamp.New(1686880020)
	ev.Kind = kind.New(kind.ShortNoteNum)
	ev.Tags = tags.New()

	var auxRand [32]byte
	if err := ev.Sign(s, auxRand[:]); err != nil {
		t.Fatalf("Sign: %v", err)
	}

	const wantID = "b515da91ac5df638fae0a6e658e03acc1dda6152dd2107d02d5702ccfcf927e8"
	if got := ev.IDHex(); got != wantID {
		t.Fatalf("id mismatch: got %s, want %s", got, wantID)
	}
	const wantSig = "89a4f1ad4b65371e6c3167ea8cb13e73cf64dd5ee71224b1edd8c32ad817af2312202cadb2f22f35d599793e8b1c66b3979d4030f1e7a252098da4a4e0c48fab"
	if got := ev.SigHex(); got != wantSig {
		t.Fatalf("sig mismatch: got %s, want %s", got, wantSig)
	}

	wantWire := `{"content":"esptest","created_at":1686880020,"id":"` + wantID +
		`","kind":1,"pubkey":"` + fixedPubkeyHex + `","sig":"` + wantSig + `","tags":[]}`
	if got := string(ev.Marshal(nil)); got != wantWire {
		t.Fatalf("wire mismatch:\ngot  %s\nwant %s", got, wantWire)
	}

	valid, err := ev.Verify()
	if err != nil || !valid {
		t.Fatalf("Verify: valid=%v err=%v", valid, err)
	}

	parsed, _, err := Unmarshal([]byte(wantWire))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if string(parsed.Marshal(nil)) != wantWire {
		t.Fatalf("round trip mismatch: got %s", parsed.Marshal(nil))
	}
}

// Test vector 2: a single `l,bitcoin` tag changes the id.
func TestVectorShortNoteOneTag(t *testing.T) {
	s := fixedSigner(t)
	ev := New()
	ev.Content = []byte("esptest")
	ev.CreatedAt = timestamp.New(1686880020)
	ev.Kind = kind.New(kind.ShortNoteNum)
	ev.Tags = tags.New()
	tg, err := tag.New("l", "bitcoin")
	if err != nil {
		t.Fatalf("tag.New: %v", err)
	}
	if err = ev.Tags.Add(tg); err != nil {
		t.Fatalf("Add: %v", err)
	}

	var auxRand [32]byte
	if err = ev.Sign(s, auxRand[:]); err != nil {
		t.Fatalf("Sign: %v", err)
	}

	const wantID = "f5a693c9a4add3739a4186c0422f925981f75cb1f7a0adfc48852e54973415a6"
	if got := ev.IDHex(); got != wantID {
		t.Fatalf("id mismatch: got %s, want %s", got, wantID)
	}
	wantTags := `[["l","bitcoin"]]`
	if got := string(ev.Tags.Marshal(nil)); got != wantTags {
		t.Fatalf("tags wire mismatch: got %s, want %s", got, wantTags)
	}
}

// Test vector 7: altering any byte of a parsed event's id causes Verify to
// fail with InvalidSignature, never a silent pass.
func TestVectorSignatureTampering(t *testing.T) {
	s := fixedSigner(t)
	ev := New()
	ev.Content = []byte("esptest")
	ev.CreatedAt = timestamp.New(1686880020)
	ev.Kind = kind.New(kind.ShortNoteNum)
	ev.Tags = tags.New()
	var auxRand [32]byte
	if err := ev.Sign(s, auxRand[:]); err != nil {
		t.Fatalf("Sign: %v", err)
	}

	wire := ev.Marshal(nil)
	parsed, _, err := Unmarshal(wire)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	parsed.ID = bytes.Clone(parsed.ID)
	parsed.ID[0] ^= 0xff

	valid, err := parsed.Verify()
	if valid || err == nil {
		t.Fatalf("expected tampered id to fail verification, got valid=%v err=%v", valid, err)
	}
}
