package builder

import (
	"embernote.dev/pkg/crypto/p256k"
	"embernote.dev/pkg/encoders/event"
	"embernote.dev/pkg/encoders/kind"
)

// B0 through B5 are the six tag-count stages (ZeroTags .. FiveTags). Each
// wraps the same *core; the only difference between stage types is which
// methods they expose. B5 has no AddTag — it is the terminal tag-count
// state — so attempting a sixth tag on a B5 value is a compile error, not
// a runtime one.
type (
	B0 struct{ *core }
	B1 struct{ *core }
	B2 struct{ *core }
	B3 struct{ *core }
	B4 struct{ *core }
	B5 struct{ *core }
)

// Content sets the content slot. Present on every stage.
func (b B0) Content(text string) B0 { b.setContent(text); return b }
func (b B1) Content(text string) B1 { b.setContent(text); return b }
func (b B2) Content(text string) B2 { b.setContent(text); return b }
func (b B3) Content(text string) B3 { b.setContent(text); return b }
func (b B4) Content(text string) B4 { b.setContent(text); return b }
func (b B5) Content(text string) B5 { b.setContent(text); return b }

// SetKind overrides the default ShortNote kind. Present on every stage.
func (b B0) SetKind(k *kind.T) B0 { b.setKind(k); return b }
func (b B1) SetKind(k *kind.T) B1 { b.setKind(k); return b }
func (b B2) SetKind(k *kind.T) B2 { b.setKind(k); return b }
func (b B3) SetKind(k *kind.T) B3 { b.setKind(k); return b }
func (b B4) SetKind(k *kind.T) B4 { b.setKind(k); return b }
func (b B5) SetKind(k *kind.T) B5 { b.setKind(k); return b }

// Build is the terminal operation. Present on every stage: a note may
// carry anywhere from zero to five tags.
func (b B0) Build(createdAt uint32, auxRand []byte) (*event.E, error) { return b.build(createdAt, auxRand) }
func (b B1) Build(createdAt uint32, auxRand []byte) (*event.E, error) { return b.build(createdAt, auxRand) }
func (b B2) Build(createdAt uint32, auxRand []byte) (*event.E, error) { return b.build(createdAt, auxRand) }
func (b B3) Build(createdAt uint32, auxRand []byte) (*event.E, error) { return b.build(createdAt, auxRand) }
func (b B4) Build(createdAt uint32, auxRand []byte) (*event.E, error) { return b.build(createdAt, auxRand) }
func (b B5) Build(createdAt uint32, auxRand []byte) (*event.E, error) { return b.build(createdAt, auxRand) }

// AddTag appends a tag and advances to the next cardinality stage.
// Elements are passed separately and comma-joined by tag.New.
func (b B0) AddTag(elements ...string) (B1, error) {
	if err := b.addTag(elements...); err != nil {
		return B1{}, err
	}
	return B1{b.core}, nil
}
func (b B1) AddTag(elements ...string) (B2, error) {
	if err := b.addTag(elements...); err != nil {
		return B2{}, err
	}
	return B2{b.core}, nil
}
func (b B2) AddTag(elements ...string) (B3, error) {
	if err := b.addTag(elements...); err != nil {
		return B3{}, err
	}
	return B3{b.core}, nil
}
func (b B3) AddTag(elements ...string) (B4, error) {
	if err := b.addTag(elements...); err != nil {
		return B4{}, err
	}
	return B4{b.core}, nil
}
func (b B4) AddTag(elements ...string) (B5, error) {
	if err := b.addTag(elements...); err != nil {
		return B5{}, err
	}
	return B5{b.core}, nil
}

// B5 has no AddTag method: a sixth tag is rejected at compile time.

// CreateAuth seeds the challenge/relay tags and sets kind Auth. Callable
// only from the zero-tag stage, enforced by only existing on the B0 type.
// It consumes both tag slots at once, landing on B2.
func (b B0) CreateAuth(challenge, relayURL string) (B2, error) {
	if err := b.createAuth(challenge, relayURL); err != nil {
		return B2{}, err
	}
	return B2{b.core}, nil
}

// CreateDM encrypts plaintext for recipientXOnlyHex via NIP-04, sets
// content to the wire form, and appends the "p" tag, landing on B1. iv
// must be the caller-sourced, unique-per-message 16-byte initialization
// vector.
func (b B0) CreateDM(plaintext, recipientXOnlyHex string, iv []byte) (B1, error) {
	recipient, err := p256k.NewPubFromHex(recipientXOnlyHex)
	if err != nil {
		return B1{}, err
	}
	if err = b.createDM(plaintext, recipient.Pub(), iv); err != nil {
		return B1{}, err
	}
	return B1{b.core}, nil
}
