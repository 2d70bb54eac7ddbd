// Package subscription is the bounded subscription identifier carried by
// REQ, CLOSE, EVENT (result), EOSE, and COUNT frames: a
// client-assigned string up to SubIDMax bytes, opaque to the wire codec.
package subscription

import (
	"embernote.dev/pkg/encoders/text"
	"embernote.dev/pkg/errs"
)

// SubIDMax is the maximum length, in bytes, of a subscription id.
const SubIDMax = 64

// Id is a validated subscription identifier.
type Id struct {
	id string
}

// NewId validates s and wraps it as an Id. s must be 1..SubIDMax bytes.
func NewId[V string | []byte](s V) (id *Id, err error) {
	b := []byte(s)
	if len(b) == 0 || len(b) > SubIDMax {
		return nil, errs.Wrapf(errs.ContentOverflow, "subscription id is %d bytes, want 1..%d", len(b), SubIDMax)
	}
	return &Id{id: string(b)}, nil
}

// MustNew is NewId, panicking on error. For call sites constructing an id
// from a value already known to be valid (e.g. a label the caller controls).
func MustNew[V string | []byte](s V) *Id {
	id, err := NewId(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the subscription id as a string.
func (id *Id) String() string {
	if id == nil {
		return ""
	}
	return id.id
}

// Bytes returns the subscription id as bytes.
func (id *Id) Bytes() []byte { return []byte(id.id) }

// Marshal appends the id as a quoted JSON string to dst.
func (id *Id) Marshal(dst []byte) []byte {
	return text.AppendQuote(dst, id.Bytes(), text.NostrEscape)
}

// Unmarshal reads a quoted subscription id from the front of b.
func (id *Id) Unmarshal(b []byte) (rem []byte, err error) {
	var v []byte
	if v, rem, err = text.UnmarshalQuoted(b); err != nil {
		return b, err
	}
	if len(v) == 0 || len(v) > SubIDMax {
		return b, errs.Wrapf(errs.ContentOverflow, "subscription id is %d bytes, want 1..%d", len(v), SubIDMax)
	}
	id.id = string(v)
	return rem, nil
}
