// Package reqenvelope codecs the outbound REQ frame:
// a client's single-filter subscription request.
package reqenvelope

import (
	envs "embernote.dev/pkg/encoders/envelopes"
	"embernote.dev/pkg/encoders/filter"
	"embernote.dev/pkg/encoders/subscription"
	"embernote.dev/pkg/encoders/text"
	"embernote.dev/pkg/interfaces/codec"
)

// L is this envelope's frame label.
const L = "REQ"

// T is the `["REQ","<sub_id>",<filter-json>]` frame. Exactly one filter
// object per subscription; multiple filters on a single REQ are not
// supported.
type T struct {
	Subscription *subscription.Id
	Filter       *filter.T
}

var _ codec.Envelope = (*T)(nil)

// NewFrom wraps id and f as a REQ envelope.
func NewFrom(id *subscription.Id, f *filter.T) *T {
	return &T{Subscription: id, Filter: f}
}

// Label returns "REQ".
func (en *T) Label() string { return L }

// Marshal appends `["REQ","<sub_id>",<filter-json>]` to dst.
func (en *T) Marshal(dst []byte) []byte {
	return envs.Marshal(dst, L, func(b []byte) []byte {
		b = en.Subscription.Marshal(b)
		b = append(b, ',')
		b = en.Filter.Marshal(b)
		return b
	})
}

// Unmarshal reads the subscription id and filter object, and skips past
// the closing ']'. Provided for symmetry and testing; a client never
// receives REQ back.
func (en *T) Unmarshal(b []byte) (rem []byte, err error) {
	en.Subscription = &subscription.Id{}
	if rem, err = en.Subscription.Unmarshal(b); err != nil {
		return b, err
	}
	if rem, err = text.Comma(rem); err != nil {
		return b, err
	}
	if en.Filter, rem, err = filter.Unmarshal(rem); err != nil {
		return b, err
	}
	return envs.SkipToTheEnd(rem)
}

// Parse parses a T from its full wire bytes (the body after `["REQ",` and
// up to the final `]`).
func Parse(b []byte) (t *T, rem []byte, err error) {
	t = &T{}
	rem, err = t.Unmarshal(b)
	return
}
