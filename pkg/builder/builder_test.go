package builder

import (
	"testing"

	"embernote.dev/pkg/crypto/p256k"
	"embernote.dev/pkg/encoders/hex"
)

const (
	fixedSeckeyHex = "a5084b35a58e3e1a26f5efb46cb9dbada73191526aa6d11bccb590cbeb2d8fa3"
	fixedPubkeyHex = "098ef66bce60dd4cf10b4ae5949d1ec6dd777ddeb4bc49b47f97275a127a63cf"
)

// Test vector 3: an auth event with a fixed challenge and relay
// URL must reproduce the specified id, kind, and tag order.
func TestCreateAuth(t *testing.T) {
	b, err := NewFromHex(fixedSeckeyHex)
	if err != nil {
		t.Fatalf("NewFromHex: %v", err)
	}
	if got := hex.EncString(b.signer.Pub()); got != fixedPubkeyHex {
		t.Fatalf("derived pubkey mismatch: got %s, want %s", got, fixedPubkeyHex)
	}
	staged, err := b.CreateAuth("challenge_me", "wss://relay.damus.io")
	if err != nil {
		t.Fatalf("CreateAuth: %v", err)
	}
	var auxRand [32]byte
	ev, err := staged.Build(1691712199, auxRand[:])
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	const wantID = "762b497576a41636c41eb5c74c0eb80894ecb2444c3e5117da0d00d9870d914a"
	if got := ev.IDHex(); got != wantID {
		t.Fatalf("id mismatch: got %s, want %s", got, wantID)
	}
	if ev.Kind.Numeric() != 22242 {
		t.Fatalf("kind mismatch: got %d, want 22242", ev.Kind.Numeric())
	}
	wantTags := `[["challenge","challenge_me"],["relay","wss://relay.damus.io"]]`
	if got := string(ev.Tags.Marshal(nil)); got != wantTags {
		t.Fatalf("tags mismatch: got %s, want %s", got, wantTags)
	}

	valid, err := ev.Verify()
	if err != nil || !valid {
		t.Fatalf("Verify: valid=%v err=%v", valid, err)
	}
}

// Invalid key material must fail at identity time, before any tag or
// content can be staged.
func TestNewRejectsBadSeckey(t *testing.T) {
	if _, err := New([]byte{0x01, 0x02}); err == nil {
		t.Fatal("expected error for short secret key")
	}
}

// Building up through all five tag stages must succeed; B5 exposes no
// AddTag method at all (a sixth tag is a compile error, not a runtime
// check — see stages.go), which this test cannot exercise directly but
// documents by construction.
func TestFiveTagCap(t *testing.T) {
	b, err := NewFromHex(fixedSeckeyHex)
	if err != nil {
		t.Fatalf("NewFromHex: %v", err)
	}
	b1, err := b.AddTag("t", "one")
	if err != nil {
		t.Fatalf("AddTag 1: %v", err)
	}
	b2, err := b1.AddTag("t", "two")
	if err != nil {
		t.Fatalf("AddTag 2: %v", err)
	}
	b3, err := b2.AddTag("t", "three")
	if err != nil {
		t.Fatalf("AddTag 3: %v", err)
	}
	b4, err := b3.AddTag("t", "four")
	if err != nil {
		t.Fatalf("AddTag 4: %v", err)
	}
	b5, err := b4.AddTag("t", "five")
	if err != nil {
		t.Fatalf("AddTag 5: %v", err)
	}
	if b5.tagCount() != 5 {
		t.Fatalf("tag count mismatch: got %d, want 5", b5.tagCount())
	}
	var auxRand [32]byte
	if _, err = b5.Build(1700000000, auxRand[:]); err != nil {
		t.Fatalf("Build at FiveTags: %v", err)
	}
}

// Staging content over NOTE_SIZE must be rejected at Build, not silently
// truncated.
func TestContentOverflow(t *testing.T) {
	b, err := NewFromHex(fixedSeckeyHex)
	if err != nil {
		t.Fatalf("NewFromHex: %v", err)
	}
	oversized := make([]byte, 401)
	for i := range oversized {
		oversized[i] = 'a'
	}
	staged := b.Content(string(oversized))
	var auxRand [32]byte
	if _, err = staged.Build(1700000000, auxRand[:]); err == nil {
		t.Fatal("expected ContentOverflow for 401-byte content")
	}
}

// A DM built via CreateDM must be readable back through event.E.ReadDM by
// the recipient.
func TestCreateDMRoundTrip(t *testing.T) {
	senderSk, err := hex.Dec(fixedSeckeyHex)
	if err != nil {
		t.Fatalf("decode sender seckey: %v", err)
	}
	const recipientSkHex = "0000000000000000000000000000000000000000000000000000000000000001"
	recipientSk, err := hex.Dec(recipientSkHex)
	if err != nil {
		t.Fatalf("decode recipient seckey: %v", err)
	}
	recipient := &p256k.Signer{}
	if err = recipient.InitSec(recipientSk); err != nil {
		t.Fatalf("recipient InitSec: %v", err)
	}

	b, err := New(senderSk)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var iv [16]byte
	staged, err := b.CreateDM("hello from the builder", hex.EncString(recipient.Pub()), iv[:])
	if err != nil {
		t.Fatalf("CreateDM: %v", err)
	}
	var auxRand [32]byte
	ev, err := staged.Build(1700000000, auxRand[:])
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if ev.Kind.Numeric() != 4 {
		t.Fatalf("kind mismatch: got %d, want 4", ev.Kind.Numeric())
	}

	plaintext, err := ev.ReadDM(recipient)
	if err != nil {
		t.Fatalf("ReadDM: %v", err)
	}
	if string(plaintext) != "hello from the builder" {
		t.Fatalf("plaintext mismatch: got %q", string(plaintext))
	}
}
