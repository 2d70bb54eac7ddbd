// Package tags is the bounded tag list: up to MaxTags tag.T
// values, in order. The cardinality cap is enforced at Add time, which is
// what the builder's staged ZeroTags→…→FiveTags state machine calls on
// every add_tag.
package tags

import (
	"embernote.dev/pkg/encoders/tag"
	"embernote.dev/pkg/encoders/text"
	"embernote.dev/pkg/errs"
)

// MaxTags is MAX_TAGS.
const MaxTags = 5

// T is an ordered, bounded list of tags.
type T struct {
	list []*tag.T
}

// New returns an empty tag list.
func New() *T { return &T{} }

// Add appends tg, failing with TooManyTags once MaxTags is reached — the
// runtime counterpart of the builder's compile-time FiveTags terminal
// state.
func (t *T) Add(tg *tag.T) error {
	if len(t.list) >= MaxTags {
		return errs.Wrapf(errs.TooManyTags, "tags capped at %d", MaxTags)
	}
	t.list = append(t.list, tg)
	return nil
}

// Len returns the number of tags currently held.
func (t *T) Len() int { return len(t.list) }

// List returns the tags in order. The returned slice must not be mutated.
func (t *T) List() []*tag.T { return t.list }

// First returns the first tag whose first element equals name, or nil.
func (t *T) First(name string) *tag.T {
	for _, tg := range t.list {
		if els := tg.Elements(); len(els) > 0 && els[0] == name {
			return tg
		}
	}
	return nil
}

// Marshal appends the `[[…],[…],…]` form, or `[]` when empty, identically
// for the hash preimage and the wire JSON.
func (t *T) Marshal(dst []byte) []byte {
	dst = append(dst, '[')
	for i, tg := range t.list {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = tg.Marshal(dst)
	}
	dst = append(dst, ']')
	return dst
}

// Unmarshal reads a `[[…],…]` tags array from the front of b. Each
// sub-array's elements are read with text.UnmarshalStringArray (reversing
// NostrEscape per element) and re-joined into a single tag.T via
// tag.NewRaw. A sixth tag fails with TooManyTags.
func Unmarshal(b []byte) (t *T, rem []byte, err error) {
	if len(b) == 0 || b[0] != '[' {
		return nil, b, errs.Wrapf(errs.MalformedContent, "expected '[', got '%s'", clip(b))
	}
	r := b[1:]
	t = New()
	if len(r) > 0 && r[0] == ']' {
		return t, r[1:], nil
	}
	for {
		var elems [][]byte
		if elems, r, err = text.UnmarshalStringArray(r); err != nil {
			return nil, b, err
		}
		raw := ""
		for i, e := range elems {
			if i > 0 {
				raw += ","
			}
			raw += string(e)
		}
		tg, terr := tag.NewRaw(raw)
		if terr != nil {
			return nil, b, terr
		}
		if err = t.Add(tg); err != nil {
			return nil, b, err
		}
		if len(r) == 0 {
			return nil, b, errs.Wrap(errs.MalformedContent, "unterminated tags array")
		}
		switch r[0] {
		case ',':
			r = r[1:]
		case ']':
			return t, r[1:], nil
		default:
			return nil, b, errs.Wrapf(errs.MalformedContent, "expected ',' or ']', got '%s'", clip(r))
		}
	}
}

func clip(b []byte) []byte {
	if len(b) > 24 {
		return b[:24]
	}
	return b
}
