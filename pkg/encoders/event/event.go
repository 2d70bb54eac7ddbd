// Package event is the Note model: a typed, bounded event with
// its canonical preimage (canonical.go), wire JSON codec (writer.go,
// reader.go), and signing/verification (signatures.go), narrowed to the
// seven fields and fixed key order this module's wire contract requires.
package event

import (
	"embernote.dev/pkg/encoders/hex"
	"embernote.dev/pkg/encoders/kind"
	"embernote.dev/pkg/encoders/tags"
	"embernote.dev/pkg/encoders/timestamp"
	"embernote.dev/pkg/errs"
)

// IDSize, PubkeySize and SigSize are the fixed binary field lengths:
// 32, 32, and 64 bytes respectively.
const (
	IDSize     = 32
	PubkeySize = 32
	SigSize    = 64
)

// ContentMaxBytes is NOTE_SIZE.
const ContentMaxBytes = 400

// E is a Note. Values are built exclusively by the staged builder
// (pkg/builder) or by Unmarshal followed by a mandatory Verify. The fields
// are exported and nothing stops a caller from changing one afterwards;
// Verify recomputes the id from the fields, so such a change makes a later
// Verify fail.
type E struct {
	ID        []byte
	Pubkey    []byte
	CreatedAt *timestamp.T
	Kind      *kind.T
	Tags      *tags.T
	Content   []byte
	Sig       []byte
}

// New returns an empty E, for use by the builder and the reader only.
func New() *E {
	return &E{Tags: tags.New(), Kind: kind.New(kind.ShortNoteNum)}
}

// IDHex returns the 64-character lowercase hex id.
func (ev *E) IDHex() string { return hex.EncString(ev.ID) }

// PubkeyHex returns the 64-character lowercase hex pubkey.
func (ev *E) PubkeyHex() string { return hex.EncString(ev.Pubkey) }

// SigHex returns the 128-character lowercase hex signature.
func (ev *E) SigHex() string { return hex.EncString(ev.Sig) }

// ContentString returns the content field decoded as a UTF-8 string.
func (ev *E) ContentString() string { return string(ev.Content) }

// checkContentSize validates the content bound the reader and builder both
// enforce before accepting a value.
func checkContentSize(content []byte) error {
	if len(content) > ContentMaxBytes {
		return errs.Wrapf(errs.ContentOverflow, "content is %d bytes, max %d", len(content), ContentMaxBytes)
	}
	return nil
}
