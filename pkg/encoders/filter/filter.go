// Package filter is the query builder: five optional bounded lists (ids,
// authors, kinds, ref_events, ref_pks) plus since/until/limit, serialized
// in a fixed key order for the REQ frame.
package filter

import (
	"embernote.dev/pkg/encoders/event"
	"embernote.dev/pkg/encoders/ints"
	"embernote.dev/pkg/encoders/kind"
	"embernote.dev/pkg/encoders/text"
	"embernote.dev/pkg/encoders/timestamp"
	"embernote.dev/pkg/errs"
	"embernote.dev/pkg/interfaces/signer"
)

// MaxItems bounds every list slot.
const MaxItems = 5

// T is a subscription query. The zero value (via New) has every slot
// empty; Marshal omits empty slots entirely.
type T struct {
	Ids       [][]byte // event ids, 32 bytes each
	Authors   [][]byte // pubkeys, 32 bytes each
	RefPks    [][]byte // "#p" tag values, 32 bytes each
	RefEvents [][]byte // "#e" tag values, 32 bytes each
	Kinds     []*kind.T
	Since     *timestamp.T
	Until     *timestamp.T
	Limit     *uint32
}

// New returns an empty query.
func New() *T { return &T{} }

func addBounded(list [][]byte, v []byte, wantLen int) ([][]byte, error) {
	if len(list) >= MaxItems {
		return list, errs.Wrapf(errs.QueryBuilderOverflow, "list already holds %d items, max %d", len(list), MaxItems)
	}
	if len(v) != wantLen {
		return list, errs.Wrapf(errs.ContentOverflow, "value is %d bytes, want %d", len(v), wantLen)
	}
	return append(list, v), nil
}

// AddID appends a 32-byte event id to the ids slot.
func (f *T) AddID(id []byte) (err error) {
	f.Ids, err = addBounded(f.Ids, id, event.IDSize)
	return
}

// AddAuthor appends a 32-byte pubkey to the authors slot.
func (f *T) AddAuthor(pubkey []byte) (err error) {
	f.Authors, err = addBounded(f.Authors, pubkey, event.PubkeySize)
	return
}

// AddRefPk appends a 32-byte pubkey to the "#p" slot.
func (f *T) AddRefPk(pubkey []byte) (err error) {
	f.RefPks, err = addBounded(f.RefPks, pubkey, event.PubkeySize)
	return
}

// AddRefEvent appends a 32-byte event id to the "#e" slot.
func (f *T) AddRefEvent(id []byte) (err error) {
	f.RefEvents, err = addBounded(f.RefEvents, id, event.IDSize)
	return
}

// AddKind appends a kind to the kinds slot.
func (f *T) AddKind(k *kind.T) error {
	if len(f.Kinds) >= MaxItems {
		return errs.Wrapf(errs.QueryBuilderOverflow, "kinds already holds %d items, max %d", len(f.Kinds), MaxItems)
	}
	f.Kinds = append(f.Kinds, k)
	return nil
}

// SetSince sets the since bound.
func (f *T) SetSince(t *timestamp.T) { f.Since = t }

// SetUntil sets the until bound.
func (f *T) SetUntil(t *timestamp.T) { f.Until = t }

// SetLimit sets the result-count bound.
func (f *T) SetLimit(n uint32) { f.Limit = &n }

// GetMyDMs derives the caller's x-only pubkey from self and pushes it to
// ref_pks, and pushes DM to kinds, so the resulting query matches direct
// messages addressed to self.
func (f *T) GetMyDMs(self signer.I) error {
	if err := f.AddRefPk(self.Pub()); err != nil {
		return err
	}
	return f.AddKind(kind.New(kind.DMNum))
}

var (
	keyID      = []byte("id")
	keyAuthors = []byte("authors")
	keyRefPks  = []byte("#p")
	keyRefEvts = []byte("#e")
	keyKinds   = []byte("kinds")
	keySince   = []byte("since")
	keyUntil   = []byte("until")
	keyLimit   = []byte("limit")
)

// Marshal appends the filter object to dst, in the fixed key order the
// wire contract requires: id, authors, #p, #e, kinds, since,
// until, limit. Empty lists are omitted.
func (f *T) Marshal(dst []byte) []byte {
	dst = append(dst, '{')
	first := true
	comma := func(b []byte) []byte {
		if !first {
			b = append(b, ',')
		}
		first = false
		return b
	}
	if len(f.Ids) > 0 {
		dst = comma(dst)
		dst = text.JSONKey(dst, keyID)
		dst = text.MarshalHexArray(dst, f.Ids)
	}
	if len(f.Authors) > 0 {
		dst = comma(dst)
		dst = text.JSONKey(dst, keyAuthors)
		dst = text.MarshalHexArray(dst, f.Authors)
	}
	if len(f.RefPks) > 0 {
		dst = comma(dst)
		dst = text.JSONKey(dst, keyRefPks)
		dst = text.MarshalHexArray(dst, f.RefPks)
	}
	if len(f.RefEvents) > 0 {
		dst = comma(dst)
		dst = text.JSONKey(dst, keyRefEvts)
		dst = text.MarshalHexArray(dst, f.RefEvents)
	}
	if len(f.Kinds) > 0 {
		dst = comma(dst)
		dst = text.JSONKey(dst, keyKinds)
		dst = append(dst, '[')
		for i, k := range f.Kinds {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = k.Marshal(dst)
		}
		dst = append(dst, ']')
	}
	if f.Since != nil {
		dst = comma(dst)
		dst = text.JSONKey(dst, keySince)
		dst = f.Since.Marshal(dst)
	}
	if f.Until != nil {
		dst = comma(dst)
		dst = text.JSONKey(dst, keyUntil)
		dst = f.Until.Marshal(dst)
	}
	if f.Limit != nil {
		dst = comma(dst)
		dst = text.JSONKey(dst, keyLimit)
		dst = ints.New(uint64(*f.Limit)).Marshal(dst)
	}
	dst = append(dst, '}')
	return dst
}

// Unmarshal reads a minified filter object from the front of b. Unlike
// event.Unmarshal, this does not track a remainder against the original
// (unstripped) buffer: a query is only ever built and sent by this client,
// never received framed inside a larger inbound message, so round-tripping
// minified bytes is the only contract Unmarshal needs to honor.
func Unmarshal(b []byte) (f *T, rem []byte, err error) {
	r := text.StripWhitespace(b)
	if len(r) == 0 || r[0] != '{' {
		return nil, b, errs.Wrap(errs.MalformedContent, "expected '{'")
	}
	r = r[1:]
	f = New()
	if len(r) > 0 && r[0] == '}' {
		return f, r[1:], nil
	}
	for {
		var key []byte
		if key, r, err = text.UnmarshalQuoted(r); err != nil {
			return nil, b, err
		}
		if len(r) == 0 || r[0] != ':' {
			return nil, b, errs.Wrap(errs.MalformedContent, "expected ':' after filter key")
		}
		r = r[1:]
		if err = f.parseField(key, &r); err != nil {
			return nil, b, err
		}
		if len(r) == 0 {
			return nil, b, errs.Wrap(errs.MalformedContent, "unterminated filter object")
		}
		switch r[0] {
		case ',':
			r = r[1:]
			continue
		case '}':
			return f, r[1:], nil
		default:
			return nil, b, errs.Wrap(errs.MalformedContent, "expected ',' or '}'")
		}
	}
}

func (f *T) parseField(key []byte, r *[]byte) (err error) {
	switch string(key) {
	case "id":
		var vals [][]byte
		if vals, *r, err = text.UnmarshalHexArray(*r, event.IDSize); err != nil {
			return err
		}
		for _, v := range vals {
			if err = f.AddID(v); err != nil {
				return err
			}
		}
	case "authors":
		var vals [][]byte
		if vals, *r, err = text.UnmarshalHexArray(*r, event.PubkeySize); err != nil {
			return err
		}
		for _, v := range vals {
			if err = f.AddAuthor(v); err != nil {
				return err
			}
		}
	case "#p":
		var vals [][]byte
		if vals, *r, err = text.UnmarshalHexArray(*r, event.PubkeySize); err != nil {
			return err
		}
		for _, v := range vals {
			if err = f.AddRefPk(v); err != nil {
				return err
			}
		}
	case "#e":
		var vals [][]byte
		if vals, *r, err = text.UnmarshalHexArray(*r, event.IDSize); err != nil {
			return err
		}
		for _, v := range vals {
			if err = f.AddRefEvent(v); err != nil {
				return err
			}
		}
	case "kinds":
		b := *r
		if len(b) == 0 || b[0] != '[' {
			return errs.Wrap(errs.MalformedContent, "expected '[' in kinds array")
		}
		b = b[1:]
		for {
			if len(b) > 0 && b[0] == ']' {
				b = b[1:]
				break
			}
			var k *kind.T
			if k, b, err = kind.Unmarshal(b); err != nil {
				return err
			}
			if err = f.AddKind(k); err != nil {
				return err
			}
			if len(b) > 0 && b[0] == ',' {
				b = b[1:]
				continue
			}
			if len(b) > 0 && b[0] == ']' {
				b = b[1:]
				break
			}
			return errs.Wrap(errs.MalformedContent, "expected ',' or ']' in kinds array")
		}
		*r = b
	case "since":
		ts := &timestamp.T{}
		if *r, err = ts.Unmarshal(*r); err != nil {
			return err
		}
		f.Since = ts
	case "until":
		ts := &timestamp.T{}
		if *r, err = ts.Unmarshal(*r); err != nil {
			return err
		}
		f.Until = ts
	case "limit":
		n := &ints.T{}
		if *r, err = n.Unmarshal(*r); err != nil {
			return err
		}
		lim := uint32(n.N)
		f.Limit = &lim
	default:
		return errs.Wrapf(errs.MalformedContent, "unknown filter key %q", key)
	}
	return nil
}
