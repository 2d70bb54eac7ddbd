// Package okenvelope codecs the OK frame: a relay's
// acknowledgement of an EVENT Submission, carrying the event id, an
// accept/reject bool, and a human-readable reason.
package okenvelope

import (
	envs "embernote.dev/pkg/encoders/envelopes"
	"embernote.dev/pkg/encoders/event"
	"embernote.dev/pkg/encoders/hex"
	"embernote.dev/pkg/encoders/text"
	"embernote.dev/pkg/errs"
	"embernote.dev/pkg/interfaces/codec"
)

// L is this envelope's frame label.
const L = "OK"

// ReasonMaxBytes bounds the relay-supplied reason string.
const ReasonMaxBytes = 180

// T is an OK envelope: `["OK","<event_id>",<true|false>,"<info>"]`.
type T struct {
	EventID []byte
	OK      bool
	Reason  []byte
}

var _ codec.Envelope = (*T)(nil)

// New returns an empty OK envelope, for Unmarshal to populate.
func New() *T { return &T{} }

// NewFrom builds an OK envelope from a 32-byte event id, an accept/reject
// bool, and an optional reason.
func NewFrom(eventID []byte, ok bool, reason ...[]byte) (*T, error) {
	if len(eventID) != event.IDSize {
		return nil, errs.Wrapf(errs.ContentOverflow, "event id is %d bytes, want %d", len(eventID), event.IDSize)
	}
	var r []byte
	if len(reason) > 0 {
		r = reason[0]
	}
	return &T{EventID: eventID, OK: ok, Reason: r}, nil
}

// Label returns "OK".
func (en *T) Label() string { return L }

// ReasonString returns the Reason as a string.
func (en *T) ReasonString() string { return string(en.Reason) }

// Marshal appends `["OK","<event_id>",<true|false>,"<info>"]` to dst.
func (en *T) Marshal(dst []byte) []byte {
	return envs.Marshal(dst, L, func(b []byte) []byte {
		b = text.AppendQuote(b, en.EventID, hex.EncAppend)
		b = append(b, ',')
		b = text.MarshalBool(b, en.OK)
		b = append(b, ',')
		b = text.AppendQuote(b, en.Reason, text.NostrEscape)
		return b
	})
}

// Unmarshal reads the event id, bool, and reason, and skips past the
// closing ']'.
func (en *T) Unmarshal(b []byte) (rem []byte, err error) {
	rem = b
	if en.EventID, rem, err = text.UnmarshalHex(rem); err != nil {
		return b, err
	}
	if len(en.EventID) != event.IDSize {
		return b, errs.Wrapf(errs.ContentOverflow, "event id is %d bytes, want %d", len(en.EventID), event.IDSize)
	}
	if rem, err = text.Comma(rem); err != nil {
		return b, err
	}
	if rem, en.OK, err = text.UnmarshalBool(rem); err != nil {
		return b, err
	}
	if rem, err = text.Comma(rem); err != nil {
		return b, err
	}
	if en.Reason, rem, err = text.UnmarshalQuoted(rem); err != nil {
		return b, err
	}
	if len(en.Reason) > ReasonMaxBytes {
		return b, errs.Wrapf(errs.ContentOverflow, "reason is %d bytes, max %d", len(en.Reason), ReasonMaxBytes)
	}
	return envs.SkipToTheEnd(rem)
}

// Parse parses a T from its full wire bytes (the body after `["OK",` and up
// to the final `]`).
func Parse(b []byte) (t *T, rem []byte, err error) {
	t = New()
	rem, err = t.Unmarshal(b)
	return
}
