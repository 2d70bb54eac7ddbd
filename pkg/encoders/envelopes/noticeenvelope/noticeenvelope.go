// Package noticeenvelope codecs the inbound NOTICE frame: a
// free-text, human-readable message from a relay.
package noticeenvelope

import (
	envs "embernote.dev/pkg/encoders/envelopes"
	"embernote.dev/pkg/encoders/text"
	"embernote.dev/pkg/errs"
	"embernote.dev/pkg/interfaces/codec"
)

// L is this envelope's frame label.
const L = "NOTICE"

// MessageMaxBytes bounds the relay-supplied message string.
const MessageMaxBytes = 180

// T is the `["NOTICE","<message>"]` frame.
type T struct {
	Message []byte
}

var _ codec.Envelope = (*T)(nil)

// New returns an empty NOTICE envelope, for Unmarshal to populate.
func New() *T { return &T{} }

// NewFrom wraps msg as a NOTICE envelope.
func NewFrom(msg []byte) *T { return &T{Message: msg} }

// Label returns "NOTICE".
func (en *T) Label() string { return L }

// Marshal appends `["NOTICE","<message>"]` to dst.
func (en *T) Marshal(dst []byte) []byte {
	return envs.Marshal(dst, L, func(b []byte) []byte {
		return text.AppendQuote(b, en.Message, text.NostrEscape)
	})
}

// Unmarshal reads the quoted message string, enforcing the size bound, and
// skips past the closing ']'.
func (en *T) Unmarshal(b []byte) (rem []byte, err error) {
	if en.Message, rem, err = text.UnmarshalQuoted(b); err != nil {
		return b, err
	}
	if len(en.Message) > MessageMaxBytes {
		return b, errs.Wrapf(errs.ContentOverflow, "notice is %d bytes, max %d", len(en.Message), MessageMaxBytes)
	}
	return envs.SkipToTheEnd(rem)
}

// Parse parses a T from its full wire bytes (the body after `["NOTICE",`
// and up to the final `]`).
func Parse(b []byte) (t *T, rem []byte, err error) {
	t = New()
	rem, err = t.Unmarshal(b)
	return
}
