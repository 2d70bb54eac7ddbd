// Package text holds the JSON primitives shared by the canonical writer,
// the wire writer, and the whitespace-tolerant reader: quoting,
// key emission, escaping, and value slicing. None of it is a general JSON
// encoder/decoder — each function handles exactly the shapes this module's
// seven-field event and six relay-message frames use.
package text

import (
	"embernote.dev/pkg/encoders/hex"
	"embernote.dev/pkg/errs"
)

// JSONKey appends `"key":` to dst.
func JSONKey(dst, key []byte) []byte {
	dst = append(dst, '"')
	dst = append(dst, key...)
	dst = append(dst, '"', ':')
	return dst
}

// AppendQuote appends `"` + enc(raw) + `"` to dst. enc is typically
// hex.EncAppend for binary fields or NostrEscape for free text.
func AppendQuote(dst, raw []byte, enc func(dst, src []byte) []byte) []byte {
	dst = append(dst, '"')
	dst = enc(dst, raw)
	dst = append(dst, '"')
	return dst
}

// NostrEscape appends src to dst with the minimal JSON string escaping
// needed for embedding inside a quoted value: backslash, double quote, and
// control bytes below 0x20. It is called identically from the canonical
// preimage writer and the wire writer so escaping can never diverge between
// the two (the byte sequence that gets hashed is the byte sequence that
// gets sent).
func NostrEscape(dst, src []byte) []byte {
	for _, b := range src {
		switch b {
		case '\\':
			dst = append(dst, '\\', '\\')
		case '"':
			dst = append(dst, '\\', '"')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if b < 0x20 {
				const hexd = "0123456789abcdef"
				dst = append(dst, '\\', 'u', '0', '0', hexd[b>>4], hexd[b&0x0f])
			} else {
				dst = append(dst, b)
			}
		}
	}
	return dst
}

// MarshalBool appends "true" or "false" to dst.
func MarshalBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, "true"...)
	}
	return append(dst, "false"...)
}

// UnmarshalBool reads the literal "true" or "false" from the front of b.
func UnmarshalBool(b []byte) (rem []byte, v bool, err error) {
	switch {
	case len(b) >= 4 && string(b[:4]) == "true":
		return b[4:], true, nil
	case len(b) >= 5 && string(b[:5]) == "false":
		return b[5:], false, nil
	default:
		return b, false, errs.Wrapf(errs.MalformedContent, "expected true/false, got '%s'", clip(b))
	}
}

// Comma requires and consumes a single leading ',' byte.
func Comma(b []byte) (rem []byte, err error) {
	if len(b) == 0 || b[0] != ',' {
		return b, errs.Wrapf(errs.MalformedContent, "expected ',', got '%s'", clip(b))
	}
	return b[1:], nil
}

// UnmarshalQuoted reads a JSON-quoted string from the front of b (b[0] must
// be '"'), reversing NostrEscape, and returns the unescaped bytes plus the
// remainder after the closing quote.
func UnmarshalQuoted(b []byte) (value, rem []byte, err error) {
	if len(b) == 0 || b[0] != '"' {
		return nil, b, errs.Wrapf(errs.MalformedContent, "expected '\"', got '%s'", clip(b))
	}
	r := b[1:]
	var out []byte
	for len(r) > 0 {
		c := r[0]
		if c == '"' {
			return out, r[1:], nil
		}
		if c == '\\' && len(r) > 1 {
			switch r[1] {
			case '\\':
				out = append(out, '\\')
			case '"':
				out = append(out, '"')
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case 'u':
				if len(r) < 6 {
					return nil, r, errs.Wrap(errs.MalformedContent, "truncated \\u escape")
				}
				v, uerr := hex4(r[2:6])
				if uerr != nil {
					return nil, r, uerr
				}
				out = append(out, byte(v))
				r = r[4:]
			default:
				out = append(out, r[1])
			}
			r = r[2:]
			continue
		}
		out = append(out, c)
		r = r[1:]
	}
	return nil, r, errs.Wrap(errs.MalformedContent, "unterminated quoted string")
}

func hex4(b []byte) (int, error) {
	v := 0
	for _, c := range b {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= int(c - '0')
		case c >= 'a' && c <= 'f':
			v |= int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= int(c-'A') + 10
		default:
			return 0, errs.Wrap(errs.MalformedContent, "invalid \\u escape digit")
		}
	}
	return v, nil
}

// UnmarshalHex reads a JSON-quoted hex string and decodes it.
func UnmarshalHex(b []byte) (value, rem []byte, err error) {
	q, r, err := UnmarshalQuoted(b)
	if err != nil {
		return nil, b, err
	}
	var out []byte
	out, err = hex.DecAppend(out, q)
	if err != nil {
		return nil, b, err
	}
	return out, r, nil
}

// UnmarshalHexArray reads a JSON array of quoted hex strings, each required
// to decode to exactly elemLen bytes.
func UnmarshalHexArray(b []byte, elemLen int) (vals [][]byte, rem []byte, err error) {
	if len(b) == 0 || b[0] != '[' {
		return nil, b, errs.Wrapf(errs.MalformedContent, "expected '[', got '%s'", clip(b))
	}
	r := b[1:]
	for {
		r = skipLeading(r, ' ')
		if len(r) > 0 && r[0] == ']' {
			return vals, r[1:], nil
		}
		var v []byte
		if v, r, err = UnmarshalHex(r); err != nil {
			return nil, b, err
		}
		if elemLen > 0 && len(v) != elemLen {
			return nil, b, errs.Wrapf(errs.ContentOverflow, "array element wrong length, want %d got %d", elemLen, len(v))
		}
		vals = append(vals, v)
		r = skipLeading(r, ' ')
		if len(r) == 0 {
			return nil, b, errs.Wrap(errs.MalformedContent, "unterminated array")
		}
		switch r[0] {
		case ',':
			r = r[1:]
		case ']':
			return vals, r[1:], nil
		default:
			return nil, b, errs.Wrapf(errs.MalformedContent, "expected ',' or ']', got '%s'", clip(r))
		}
	}
}

// UnmarshalStringArray reads a JSON array of quoted strings.
func UnmarshalStringArray(b []byte) (vals [][]byte, rem []byte, err error) {
	if len(b) == 0 || b[0] != '[' {
		return nil, b, errs.Wrapf(errs.MalformedContent, "expected '[', got '%s'", clip(b))
	}
	r := b[1:]
	for {
		r = skipLeading(r, ' ')
		if len(r) > 0 && r[0] == ']' {
			return vals, r[1:], nil
		}
		var v []byte
		if v, r, err = UnmarshalQuoted(r); err != nil {
			return nil, b, err
		}
		vals = append(vals, v)
		r = skipLeading(r, ' ')
		if len(r) == 0 {
			return nil, b, errs.Wrap(errs.MalformedContent, "unterminated array")
		}
		switch r[0] {
		case ',':
			r = r[1:]
		case ']':
			return vals, r[1:], nil
		default:
			return nil, b, errs.Wrapf(errs.MalformedContent, "expected ',' or ']', got '%s'", clip(r))
		}
	}
}

// MarshalHexArray appends a JSON array of hex-quoted values to dst.
func MarshalHexArray(dst []byte, vals [][]byte) []byte {
	dst = append(dst, '[')
	for i, v := range vals {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = AppendQuote(dst, v, hex.EncAppend)
	}
	dst = append(dst, ']')
	return dst
}

// StripWhitespace performs the reader's first pass: a single linear scan that
// drops ASCII whitespace occurring outside string literals, toggling an
// inside-quotes flag on unescaped '"'. The result is safe to index/slice
// with fixed byte offsets during phase 2/3 without re-checking for stray
// spaces.
func StripWhitespace(b []byte) []byte {
	out := make([]byte, 0, len(b))
	inQuotes := false
	escaped := false
	for _, c := range b {
		if inQuotes {
			out = append(out, c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inQuotes = false
			}
			continue
		}
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '"':
			inQuotes = true
			out = append(out, c)
		default:
			out = append(out, c)
		}
	}
	return out
}

func skipLeading(b []byte, c byte) []byte {
	i := 0
	for i < len(b) && b[i] == c {
		i++
	}
	return b[i:]
}

func clip(b []byte) []byte {
	if len(b) > 24 {
		return b[:24]
	}
	return b
}
