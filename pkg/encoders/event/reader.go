package event

import (
	"bytes"

	"embernote.dev/pkg/encoders/kind"
	"embernote.dev/pkg/encoders/tags"
	"embernote.dev/pkg/encoders/text"
	"embernote.dev/pkg/encoders/timestamp"
	"embernote.dev/pkg/errs"
)

var (
	keyContent   = []byte(`"content":`)
	keyCreatedAt = []byte(`"created_at":`)
	keyID        = []byte(`"id":`)
	keyKind      = []byte(`"kind":`)
	keyPubkey    = []byte(`"pubkey":`)
	keySig       = []byte(`"sig":`)
	keyTags      = []byte(`"tags":`)
)

// Unmarshal parses the wire JSON object for an event in three
// phases: strip whitespace outside string literals, locate each of the
// seven known keys, then slice each value. Because every field's value type
// is fixed and self-delimiting (a quoted string, a decimal run, or a
// bracketed array), each value is parsed by its own typed reader once its
// key is located, rather than by slicing between successive key offsets —
// equivalent output, and indifferent to the order the keys appear in.
//
// rem is the remainder of b after the event object's closing '}', so
// callers embedding an event inside a larger frame (EVENT, AUTH) can
// continue parsing from there.
//
// The returned E has NOT had its signature verified; callers MUST call
// Verify before treating it as trustworthy.
func Unmarshal(b []byte) (ev *E, rem []byte, err error) {
	var obj []byte
	if obj, rem, err = sliceObject(b); err != nil {
		return nil, b, err
	}

	norm := text.StripWhitespace(obj)
	if len(norm) == 0 || norm[0] != '{' {
		return nil, b, errs.Wrap(errs.MalformedContent, "expected '{'")
	}

	contentAt := bytes.Index(norm, keyContent)
	createdAtAt := bytes.Index(norm, keyCreatedAt)
	idAt := bytes.Index(norm, keyID)
	kindAt := bytes.Index(norm, keyKind)
	pubkeyAt := bytes.Index(norm, keyPubkey)
	sigAt := bytes.Index(norm, keySig)
	tagsAt := bytes.Index(norm, keyTags)

	if contentAt < 0 || createdAtAt < 0 || idAt < 0 || kindAt < 0 || pubkeyAt < 0 || sigAt < 0 || tagsAt < 0 {
		return nil, b, errs.Wrap(errs.EventMissingField, "event JSON missing a required key")
	}

	ev = New()

	if ev.Content, _, err = text.UnmarshalQuoted(norm[contentAt+len(keyContent):]); err != nil {
		return nil, b, err
	}
	if err = checkContentSize(ev.Content); err != nil {
		return nil, b, err
	}

	ev.CreatedAt = &timestamp.T{}
	if _, err = ev.CreatedAt.Unmarshal(norm[createdAtAt+len(keyCreatedAt):]); err != nil {
		return nil, b, err
	}

	if ev.ID, _, err = text.UnmarshalHex(norm[idAt+len(keyID):]); err != nil {
		return nil, b, err
	}
	if len(ev.ID) != IDSize {
		return nil, b, errs.Wrapf(errs.ContentOverflow, "id is %d bytes, want %d", len(ev.ID), IDSize)
	}

	if ev.Kind, _, err = kind.Unmarshal(norm[kindAt+len(keyKind):]); err != nil {
		return nil, b, err
	}

	if ev.Pubkey, _, err = text.UnmarshalHex(norm[pubkeyAt+len(keyPubkey):]); err != nil {
		return nil, b, err
	}
	if len(ev.Pubkey) != PubkeySize {
		return nil, b, errs.Wrapf(errs.ContentOverflow, "pubkey is %d bytes, want %d", len(ev.Pubkey), PubkeySize)
	}

	if ev.Sig, _, err = text.UnmarshalHex(norm[sigAt+len(keySig):]); err != nil {
		return nil, b, err
	}
	if len(ev.Sig) != SigSize {
		return nil, b, errs.Wrapf(errs.ContentOverflow, "sig is %d bytes, want %d", len(ev.Sig), SigSize)
	}

	var tg *tags.T
	if tg, _, err = tags.Unmarshal(norm[tagsAt+len(keyTags):]); err != nil {
		return nil, b, err
	}
	ev.Tags = tg

	return ev, rem, nil
}

// sliceObject finds the extent of the first top-level `{...}` object in b,
// honoring quoted strings and backslash escapes so a brace or quote inside
// content or a tag element never confuses the boundary, and returns it
// along with the remainder of b after the closing '}'.
func sliceObject(b []byte) (obj, rem []byte, err error) {
	i := 0
	for i < len(b) {
		switch b[i] {
		case ' ', '\t', '\n', '\r':
			i++
			continue
		}
		break
	}
	if i >= len(b) || b[i] != '{' {
		return nil, b, errs.Wrap(errs.MalformedContent, "expected '{'")
	}
	start := i
	depth := 0
	inQuotes := false
	escaped := false
	for ; i < len(b); i++ {
		c := b[i]
		if inQuotes {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inQuotes = false
			}
			continue
		}
		switch c {
		case '"':
			inQuotes = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[start : i+1], b[i+1:], nil
			}
		}
	}
	return nil, b, errs.Wrap(errs.MalformedContent, "unterminated event object")
}
