// Package eventenvelope codecs the EVENT frame in both directions: a
// client's Submission of a signed note, and a relay's Result delivering a
// matched event for a subscription.
package eventenvelope

import (
	envs "embernote.dev/pkg/encoders/envelopes"
	"embernote.dev/pkg/encoders/event"
	"embernote.dev/pkg/encoders/subscription"
	"embernote.dev/pkg/encoders/text"
	"embernote.dev/pkg/errs"
	"embernote.dev/pkg/interfaces/codec"
)

// L is this envelope's frame label.
const L = "EVENT"

// Submission is the outbound `["EVENT",<event-json>]` frame a client sends
// to ask a relay to store a signed event.
type Submission struct {
	Event *event.E
}

var _ codec.Envelope = (*Submission)(nil)

// NewSubmissionWith wraps ev as a Submission.
func NewSubmissionWith(ev *event.E) *Submission { return &Submission{Event: ev} }

// Label returns "EVENT".
func (en *Submission) Label() string { return L }

// ID returns the wrapped event's id.
func (en *Submission) ID() []byte { return en.Event.ID }

// Marshal appends `["EVENT",<event-json>]` to dst.
func (en *Submission) Marshal(dst []byte) []byte {
	return envs.Marshal(dst, L, en.Event.Marshal)
}

// Unmarshal parses the embedded event, leaving verification to the caller
// (a Submission the caller intends to forward or countersign may not yet be
// fully formed).
func (en *Submission) Unmarshal(b []byte) (rem []byte, err error) {
	if en.Event, rem, err = event.Unmarshal(b); err != nil {
		return b, err
	}
	return envs.SkipToTheEnd(rem)
}

// ParseSubmission parses a Submission from its full wire bytes (the body
// after `["EVENT",` and up to the final `]`).
func ParseSubmission(b []byte) (t *Submission, rem []byte, err error) {
	t = &Submission{}
	rem, err = t.Unmarshal(b)
	return
}

// Result is the inbound `["EVENT","<sub_id>",<event-json>]` frame: an event
// matching some open REQ's filter, tagged with the subscription it matched.
type Result struct {
	Subscription *subscription.Id
	Event        *event.E
}

var _ codec.Envelope = (*Result)(nil)

// NewResultWith pairs subID with ev as a Result.
func NewResultWith[V string | []byte](subID V, ev *event.E) (*Result, error) {
	id, err := subscription.NewId(subID)
	if err != nil {
		return nil, err
	}
	return &Result{Subscription: id, Event: ev}, nil
}

// Label returns "EVENT".
func (en *Result) Label() string { return L }

// ID returns the wrapped event's id.
func (en *Result) ID() []byte { return en.Event.ID }

// Marshal appends `["EVENT","<sub_id>",<event-json>]` to dst.
func (en *Result) Marshal(dst []byte) []byte {
	return envs.Marshal(dst, L, func(b []byte) []byte {
		b = en.Subscription.Marshal(b)
		b = append(b, ',')
		b = en.Event.Marshal(b)
		return b
	})
}

// Unmarshal parses the subscription id then the embedded event, verifying
// the event's signature (a Result is only ever observed on the wire, never
// built locally unsigned).
func (en *Result) Unmarshal(b []byte) (rem []byte, err error) {
	en.Subscription = &subscription.Id{}
	if rem, err = en.Subscription.Unmarshal(b); err != nil {
		return b, err
	}
	if rem, err = text.Comma(rem); err != nil {
		return b, err
	}
	if en.Event, rem, err = event.Unmarshal(rem); err != nil {
		return b, err
	}
	var valid bool
	if valid, err = en.Event.Verify(); err != nil || !valid {
		return b, errs.Wrap(errs.InvalidSignature, "event result failed signature verification")
	}
	return envs.SkipToTheEnd(rem)
}

// ParseResult parses a Result from its full wire bytes (the body after
// `["EVENT",` and up to the final `]`).
func ParseResult(b []byte) (t *Result, rem []byte, err error) {
	t = &Result{}
	rem, err = t.Unmarshal(b)
	return
}
