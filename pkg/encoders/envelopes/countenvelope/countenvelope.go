// Package countenvelope codecs the inbound COUNT frame: a
// relay's reply to a count query, carrying the matching-event total rather
// than the events themselves.
package countenvelope

import (
	envs "embernote.dev/pkg/encoders/envelopes"
	"embernote.dev/pkg/encoders/ints"
	"embernote.dev/pkg/encoders/subscription"
	"embernote.dev/pkg/encoders/text"
	"embernote.dev/pkg/errs"
	"embernote.dev/pkg/interfaces/codec"
)

// L is this envelope's frame label.
const L = "COUNT"

var keyCount = []byte("count")

// T is the `["COUNT","<sub_id>",{"count":<u16>}]` frame.
type T struct {
	Subscription *subscription.Id
	Count        uint16
}

var _ codec.Envelope = (*T)(nil)

// NewFrom wraps id and count as a COUNT envelope.
func NewFrom(id *subscription.Id, count uint16) *T {
	return &T{Subscription: id, Count: count}
}

// Label returns "COUNT".
func (en *T) Label() string { return L }

// Marshal appends `["COUNT","<sub_id>",{"count":<u16>}]` to dst.
func (en *T) Marshal(dst []byte) []byte {
	return envs.Marshal(dst, L, func(b []byte) []byte {
		b = en.Subscription.Marshal(b)
		b = append(b, ',', '{')
		b = text.JSONKey(b, keyCount)
		b = ints.New(uint64(en.Count)).Marshal(b)
		b = append(b, '}')
		return b
	})
}

// Unmarshal reads the subscription id and the `{"count":<u16>}` object,
// and skips past the closing ']'.
func (en *T) Unmarshal(b []byte) (rem []byte, err error) {
	en.Subscription = &subscription.Id{}
	if rem, err = en.Subscription.Unmarshal(b); err != nil {
		return b, err
	}
	if rem, err = text.Comma(rem); err != nil {
		return b, err
	}
	if len(rem) == 0 || rem[0] != '{' {
		return b, errs.Wrap(errs.MalformedContent, "expected '{' in count object")
	}
	rem = rem[1:]
	countKey := []byte(`"count":`)
	if len(rem) < len(countKey) || string(rem[:len(countKey)]) != string(countKey) {
		return b, errs.Wrap(errs.MalformedContent, "expected \"count\" key")
	}
	rem = rem[len(countKey):]
	n := &ints.T{}
	if rem, err = n.Unmarshal(rem); err != nil {
		return b, err
	}
	en.Count = uint16(n.N)
	if len(rem) == 0 || rem[0] != '}' {
		return b, errs.Wrap(errs.MalformedContent, "expected '}' closing count object")
	}
	rem = rem[1:]
	return envs.SkipToTheEnd(rem)
}

// Parse parses a T from its full wire bytes (the body after `["COUNT",`
// and up to the final `]`).
func Parse(b []byte) (t *T, rem []byte, err error) {
	t = &T{}
	rem, err = t.Unmarshal(b)
	return
}
