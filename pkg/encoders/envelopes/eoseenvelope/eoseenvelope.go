// Package eoseenvelope codecs the inbound EOSE frame: the
// end-of-stored-events marker a relay sends exactly once per subscription,
// delimiting the stored backlog from live events.
package eoseenvelope

import (
	envs "embernote.dev/pkg/encoders/envelopes"
	"embernote.dev/pkg/encoders/subscription"
	"embernote.dev/pkg/interfaces/codec"
)

// L is this envelope's frame label.
const L = "EOSE"

// T is the `["EOSE","<sub_id>"]` frame.
type T struct {
	Subscription *subscription.Id
}

var _ codec.Envelope = (*T)(nil)

// NewFrom wraps id as an EOSE envelope.
func NewFrom(id *subscription.Id) *T { return &T{Subscription: id} }

// Label returns "EOSE".
func (en *T) Label() string { return L }

// Marshal appends `["EOSE","<sub_id>"]` to dst.
func (en *T) Marshal(dst []byte) []byte {
	return envs.Marshal(dst, L, en.Subscription.Marshal)
}

// Unmarshal reads the subscription id and skips past the closing ']'.
func (en *T) Unmarshal(b []byte) (rem []byte, err error) {
	en.Subscription = &subscription.Id{}
	if rem, err = en.Subscription.Unmarshal(b); err != nil {
		return b, err
	}
	return envs.SkipToTheEnd(rem)
}

// Parse parses a T from its full wire bytes (the body after `["EOSE",` and
// up to the final `]`).
func Parse(b []byte) (t *T, rem []byte, err error) {
	t = &T{}
	rem, err = t.Unmarshal(b)
	return
}
