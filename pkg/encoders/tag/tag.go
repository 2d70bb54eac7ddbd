// Package tag is a single Note tag: an ordered sequence of short
// ASCII elements, stored internally as one comma-joined string (no comma is
// permitted inside an element) so the whole tag lives in one bounded-length
// buffer rather than a slice of slices.
package tag

import (
	"strings"

	"embernote.dev/pkg/encoders/text"
	"embernote.dev/pkg/errs"
)

// MaxBytes is TAG_SIZE: the maximum length of the stored,
// comma-joined tag string, separators included.
const MaxBytes = 150

// T is a tag: elements joined by ','.
type T struct {
	raw string
}

// New joins elements with ',' and validates the result against MaxBytes and
// the no-embedded-comma rule.
func New(elements ...string) (*T, error) {
	for _, e := range elements {
		if strings.ContainsRune(e, ',') {
			return nil, errs.Wrapf(errs.MalformedContent, "tag element %q contains ','", e)
		}
	}
	raw := strings.Join(elements, ",")
	if len(raw) > MaxBytes {
		return nil, errs.Wrapf(errs.TagNameTooLong, "tag is %d bytes, max %d", len(raw), MaxBytes)
	}
	return &T{raw: raw}, nil
}

// NewRaw wraps an already comma-joined string, as produced by the reader's
// phase-3 value slicing, validating only the size bound.
func NewRaw(raw string) (*T, error) {
	if len(raw) > MaxBytes {
		return nil, errs.Wrapf(errs.TagNameTooLong, "tag is %d bytes, max %d", len(raw), MaxBytes)
	}
	return &T{raw: raw}, nil
}

// Elements splits the stored string back into its ordered elements.
func (t *T) Elements() []string {
	if t == nil || t.raw == "" {
		return nil
	}
	return strings.Split(t.raw, ",")
}

// Raw returns the comma-joined storage form.
func (t *T) Raw() string { return t.raw }

// Marshal appends this tag's `[e1,e2,…]` form (each element JSON-quoted) to
// dst, identically whether used inside the hash preimage or the wire JSON.
func (t *T) Marshal(dst []byte) []byte {
	dst = append(dst, '[')
	for i, e := range t.Elements() {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = text.AppendQuote(dst, []byte(e), text.NostrEscape)
	}
	dst = append(dst, ']')
	return dst
}
