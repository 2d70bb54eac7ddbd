// Package authenvelope is the NIP-42 AUTH envelope: the relay's inbound
// Challenge and the client's outbound Response carrying a signed auth
// event.
package authenvelope

import (
	envs "embernote.dev/pkg/encoders/envelopes"
	"embernote.dev/pkg/encoders/event"
	"embernote.dev/pkg/encoders/text"
	"embernote.dev/pkg/errs"
	"embernote.dev/pkg/interfaces/codec"
)

// L is this envelope's frame label.
const L = "AUTH"

// ChallengeMaxBytes bounds the relay-supplied challenge string.
const ChallengeMaxBytes = 64

// Challenge is the inbound `["AUTH","<challenge>"]` frame.
type Challenge struct {
	Challenge []byte
}

var _ codec.Envelope = (*Challenge)(nil)

// NewChallenge returns an empty Challenge, for Unmarshal to populate.
func NewChallenge() *Challenge { return &Challenge{} }

// Label returns "AUTH".
func (en *Challenge) Label() string { return L }

// Marshal appends `["AUTH","<challenge>"]` to dst.
func (en *Challenge) Marshal(dst []byte) []byte {
	return envs.Marshal(dst, L, func(b []byte) []byte {
		return text.AppendQuote(b, en.Challenge, text.NostrEscape)
	})
}

// Unmarshal reads the quoted challenge string from b (the bytes after
// `["AUTH",`), enforcing the size bound, and skips past the closing ']'.
func (en *Challenge) Unmarshal(b []byte) (rem []byte, err error) {
	if en.Challenge, rem, err = text.UnmarshalQuoted(b); err != nil {
		return b, err
	}
	if len(en.Challenge) > ChallengeMaxBytes {
		return b, errs.Wrapf(errs.ContentOverflow, "challenge is %d bytes, max %d", len(en.Challenge), ChallengeMaxBytes)
	}
	return envs.SkipToTheEnd(rem)
}

// ParseChallenge parses a Challenge from its full wire bytes (the body
// after `["AUTH",` and up to the final `]`).
func ParseChallenge(b []byte) (c *Challenge, rem []byte, err error) {
	c = NewChallenge()
	rem, err = c.Unmarshal(b)
	return
}

// Response is the outbound `["AUTH",<event-json>]` frame: the same event
// shape as EVENT, with kind fixed to Auth by the builder's create_auth.
type Response struct {
	Event *event.E
}

var _ codec.Envelope = (*Response)(nil)

// NewResponseWith wraps ev as an AUTH response.
func NewResponseWith(ev *event.E) *Response { return &Response{Event: ev} }

// Label returns "AUTH".
func (en *Response) Label() string { return L }

// ID returns the wrapped event's id.
func (en *Response) ID() []byte { return en.Event.ID }

// Marshal appends `["AUTH",<event-json>]` to dst.
func (en *Response) Marshal(dst []byte) []byte {
	if en.Event == nil {
		return dst
	}
	return envs.Marshal(dst, L, en.Event.Marshal)
}

// Unmarshal parses the embedded event and verifies it, per the inbound
// EVENT contract: a Response is never observable unsigned.
func (en *Response) Unmarshal(b []byte) (rem []byte, err error) {
	if en.Event, rem, err = event.Unmarshal(b); err != nil {
		return b, err
	}
	var valid bool
	if valid, err = en.Event.Verify(); err != nil || !valid {
		return b, errs.Wrap(errs.InvalidSignature, "auth response event failed signature verification")
	}
	return envs.SkipToTheEnd(rem)
}

// ParseResponse parses a Response from its full wire bytes (the body after
// `["AUTH",` and up to the final `]`).
func ParseResponse(b []byte) (r *Response, rem []byte, err error) {
	r = &Response{}
	rem, err = r.Unmarshal(b)
	return
}
