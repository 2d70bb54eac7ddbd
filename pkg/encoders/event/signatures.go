package event

import (
	"bytes"

	"embernote.dev/pkg/crypto/p256k"
	"embernote.dev/pkg/errs"
	"embernote.dev/pkg/interfaces/signer"
)

// Sign populates Pubkey, ID and Sig from keys. The caller must set
// CreatedAt first; Sign does not touch it.
func (ev *E) Sign(keys signer.I, auxRand []byte) (err error) {
	ev.Pubkey = keys.Pub()
	ev.ID = ev.GetIDBytes()
	if ev.Sig, err = keys.SignWithAux(ev.ID, auxRand); err != nil {
		return err
	}
	return nil
}

// Verify checks that Sig is a valid signature by Pubkey over the canonical
// hash, recomputing ID from the event's fields first and comparing it
// against the stored ID so a tampered ID can never mask an otherwise valid
// signature.
func (ev *E) Verify() (valid bool, err error) {
	id := ev.GetIDBytes()
	if !bytes.Equal(id, ev.ID) {
		return false, errs.Wrap(errs.InvalidSignature, "event id does not match its canonical hash")
	}
	keys := &p256k.Signer{}
	if err = keys.InitPub(ev.Pubkey); err != nil {
		return false, err
	}
	return keys.Verify(ev.ID, ev.Sig)
}
