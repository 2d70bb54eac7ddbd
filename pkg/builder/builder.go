// Package builder is the staged Note builder: the only supported way to
// construct a signed event from scratch. Tag cardinality is enforced at
// the type level — distinct builder types per tag count — rather than a
// runtime counter: B0 through B4 expose AddTag, returning the next stage;
// B5 (FiveTags) has no AddTag method at all, so a sixth tag is a compile
// error, not a runtime one. core holds the state every stage shares; the
// stage types (stages.go) are thin, differently-shaped views over the
// same *core.
package builder

import (
	"embernote.dev/pkg/crypto/nip04"
	"embernote.dev/pkg/crypto/p256k"
	"embernote.dev/pkg/encoders/event"
	"embernote.dev/pkg/encoders/hex"
	"embernote.dev/pkg/encoders/kind"
	"embernote.dev/pkg/encoders/tag"
	"embernote.dev/pkg/encoders/timestamp"
	"embernote.dev/pkg/errs"
	"embernote.dev/pkg/interfaces/signer"
)

// core is the shared state behind every stage. It is never exported:
// callers only ever hold one of the B0..B5 stage values.
type core struct {
	signer signer.I
	ev     *event.E
}

// New starts a builder from a raw 32-byte secret key. Identity comes
// first: a bad key fails here, before any tag or content can
// be staged, with InvalidPrivkey.
func New(seckey []byte) (B0, error) {
	s := &p256k.Signer{}
	if err := s.InitSec(seckey); err != nil {
		return B0{}, err
	}
	return B0{&core{signer: s, ev: event.New()}}, nil
}

// NewFromHex is New with the secret key given as hex, the shape a
// demonstration CLI or test vector most often supplies one in.
func NewFromHex(seckeyHex string) (B0, error) {
	s, err := p256k.NewSecFromHex(seckeyHex)
	if err != nil {
		return B0{}, err
	}
	return B0{&core{signer: s, ev: event.New()}}, nil
}

func (c *core) setContent(text string) {
	c.ev.Content = []byte(text)
}

func (c *core) setKind(k *kind.T) {
	c.ev.Kind = k
}

func (c *core) addTag(elements ...string) error {
	tg, err := tag.New(elements...)
	if err != nil {
		return err
	}
	return c.ev.Tags.Add(tg)
}

// createAuth seeds the two NIP-42 tags and sets kind Auth. Callable only
// from the ZeroTags state: it assumes (and does not check)
// that no tag has been added yet, since the only exported entry point is
// B0.CreateAuth.
func (c *core) createAuth(challenge, relayURL string) error {
	if err := c.addTag("challenge", challenge); err != nil {
		return err
	}
	if err := c.addTag("relay", relayURL); err != nil {
		return err
	}
	c.setKind(kind.New(kind.AuthNum))
	return nil
}

// createDM encrypts plaintext for recipientPub via NIP-04, sets content to
// the wire form, appends the "p" tag, and sets kind DM.
func (c *core) createDM(plaintext string, recipientPub []byte, iv []byte) error {
	key, err := nip04.SharedKey(c.signer, recipientPub)
	if err != nil {
		return err
	}
	wire, err := nip04.Encrypt(key, iv, []byte(plaintext))
	if err != nil {
		return err
	}
	if len(wire) > event.ContentMaxBytes {
		return errs.Wrapf(errs.ContentOverflow, "dm content is %d bytes, max %d", len(wire), event.ContentMaxBytes)
	}
	c.setContent(wire)
	if err = c.addTag("p", hex.EncString(recipientPub)); err != nil {
		return err
	}
	c.setKind(kind.New(kind.DMNum))
	return nil
}

// build is the terminal operation: sets pubkey,
// canonicalizes, hashes, and signs, in that order (event.E.Sign does all
// four), then returns the immutable Note.
func (c *core) build(createdAt uint32, auxRand []byte) (*event.E, error) {
	if len(c.ev.Content) > event.ContentMaxBytes {
		return nil, errs.Wrapf(errs.ContentOverflow, "content is %d bytes, max %d", len(c.ev.Content), event.ContentMaxBytes)
	}
	c.ev.CreatedAt = timestamp.New(createdAt)
	if err := c.ev.Sign(c.signer, auxRand); err != nil {
		return nil, err
	}
	return c.ev, nil
}

// tagCount reports how many tags have been staged so far, for tests that
// want to assert a stage transition happened without inspecting the event.
func (c *core) tagCount() int { return c.ev.Tags.Len() }
