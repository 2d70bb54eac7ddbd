package event

import (
	"embernote.dev/pkg/crypto/nip04"
	"embernote.dev/pkg/errs"
	"embernote.dev/pkg/interfaces/signer"
)

// ReadDM decrypts a DM note's content for self, the recipient's
// signer. The shared secret is derived from self's
// ECDH against the event's own pubkey field (the sender) — the "p" tag
// names the recipient, not the peer to ECDH with, but its presence is
// still required: a DM note with no "p" tag was never addressed to
// anyone and fails MalformedContent rather than being decrypted anyway.
// A note of any other kind fails TypeNotAccepted before any key material
// is touched.
func (ev *E) ReadDM(self signer.I) (plaintext []byte, err error) {
	if !ev.Kind.IsDM() {
		return nil, errs.Wrapf(errs.TypeNotAccepted, "kind %d is not a direct message", ev.Kind.Numeric())
	}
	if ev.Tags.First("p") == nil {
		return nil, errs.Wrap(errs.MalformedContent, "dm note has no p tag")
	}
	key, err := nip04.SharedKey(self, ev.Pubkey)
	if err != nil {
		return nil, err
	}
	return nip04.Decrypt(key, string(ev.Content))
}
