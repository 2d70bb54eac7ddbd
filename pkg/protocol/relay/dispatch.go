// Package relay is the top-level inbound/outbound frame dispatch:
// discriminating which of the six inbound relay-message kinds a byte slice
// holds, parsing it through the matching envelope package, and framing the
// four outbound kinds into a fixed-size wire buffer. A message's leading
// literal identifies its type, dispatched to a matching per-type parser
// the way a relay's own message handler switches on the same literal; this
// package plays the client side of that dispatch, against the client's six
// inbound kinds (a client never sends EOSE/NOTICE/OK/COUNT itself).
package relay

import (
	"bytes"

	"embernote.dev/pkg/encoders/envelopes/authenvelope"
	"embernote.dev/pkg/encoders/envelopes/closeenvelope"
	"embernote.dev/pkg/encoders/envelopes/countenvelope"
	"embernote.dev/pkg/encoders/envelopes/eoseenvelope"
	"embernote.dev/pkg/encoders/envelopes/eventenvelope"
	"embernote.dev/pkg/encoders/envelopes/noticeenvelope"
	"embernote.dev/pkg/encoders/envelopes/okenvelope"
	"embernote.dev/pkg/encoders/envelopes/reqenvelope"
	"embernote.dev/pkg/encoders/event"
	"embernote.dev/pkg/encoders/filter"
	"embernote.dev/pkg/encoders/subscription"
	"embernote.dev/pkg/errs"
)

// OutboundBufSize is the fixed outbound framing buffer floor.
const OutboundBufSize = 1000

// prefix literals each inbound frame is discriminated by. Each
// includes the opening bracket, quoted label, and trailing comma, so a
// single bytes.HasPrefix check both identifies the type and locates where
// its body begins.
var (
	prefixAuth   = []byte(`["AUTH",`)
	prefixCount  = []byte(`["COUNT",`)
	prefixEose   = []byte(`["EOSE",`)
	prefixEvent  = []byte(`["EVENT",`)
	prefixNotice = []byte(`["NOTICE",`)
	prefixOK     = []byte(`["OK",`)
)

// Inbound is the discriminated result of parsing one relay message. Only
// the field matching Label is non-nil.
type Inbound struct {
	Label  string
	Auth   *authenvelope.Challenge
	Count  *countenvelope.T
	Eose   *eoseenvelope.T
	Event  *eventenvelope.Result
	Notice *noticeenvelope.T
	OK     *okenvelope.T
}

// ParseInbound identifies b's frame kind by its leading literal and parses
// it through the matching envelope package. An unrecognized prefix fails
// with InvalidType.
func ParseInbound(b []byte) (in *Inbound, err error) {
	switch {
	case bytes.HasPrefix(b, prefixAuth):
		c, _, perr := authenvelope.ParseChallenge(b[len(prefixAuth):])
		if perr != nil {
			return nil, perr
		}
		return &Inbound{Label: authenvelope.L, Auth: c}, nil
	case bytes.HasPrefix(b, prefixCount):
		c, _, perr := countenvelope.Parse(b[len(prefixCount):])
		if perr != nil {
			return nil, perr
		}
		return &Inbound{Label: countenvelope.L, Count: c}, nil
	case bytes.HasPrefix(b, prefixEose):
		e, _, perr := eoseenvelope.Parse(b[len(prefixEose):])
		if perr != nil {
			return nil, perr
		}
		return &Inbound{Label: eoseenvelope.L, Eose: e}, nil
	case bytes.HasPrefix(b, prefixEvent):
		e, _, perr := eventenvelope.ParseResult(b[len(prefixEvent):])
		if perr != nil {
			return nil, perr
		}
		return &Inbound{Label: eventenvelope.L, Event: e}, nil
	case bytes.HasPrefix(b, prefixNotice):
		n, _, perr := noticeenvelope.Parse(b[len(prefixNotice):])
		if perr != nil {
			return nil, perr
		}
		return &Inbound{Label: noticeenvelope.L, Notice: n}, nil
	case bytes.HasPrefix(b, prefixOK):
		o, _, perr := okenvelope.Parse(b[len(prefixOK):])
		if perr != nil {
			return nil, perr
		}
		return &Inbound{Label: okenvelope.L, OK: o}, nil
	default:
		return nil, errs.Wrapf(errs.InvalidType, "unrecognized relay message prefix: %s", clip(b))
	}
}

func clip(b []byte) []byte {
	if len(b) > 24 {
		return b[:24]
	}
	return b
}

// EventFrame frames an outbound `["EVENT",<event-json>]` submission, the
// client asking a relay to store ev.
func EventFrame(ev *event.E) []byte {
	return eventenvelope.NewSubmissionWith(ev).Marshal(make([]byte, 0, OutboundBufSize))
}

// AuthFrame frames an outbound `["AUTH",<event-json>]` response to a
// relay's AUTH challenge (ev's kind must be Auth; the builder's CreateAuth
// is what produces such an event).
func AuthFrame(ev *event.E) []byte {
	return authenvelope.NewResponseWith(ev).Marshal(make([]byte, 0, OutboundBufSize))
}

// ReqFrame frames an outbound `["REQ","<sub_id>",<filter-json>]`
// subscription request.
func ReqFrame(subID *subscription.Id, f *filter.T) []byte {
	return reqenvelope.NewFrom(subID, f).Marshal(make([]byte, 0, OutboundBufSize))
}

// CloseFrame frames an outbound `["CLOSE","<sub_id>"]`, ending a
// subscription.
func CloseFrame(subID *subscription.Id) []byte {
	return closeenvelope.NewFrom(subID).Marshal(make([]byte, 0, OutboundBufSize))
}
