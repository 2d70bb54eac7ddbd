// Package envelopes holds the shared framing helpers every relay-message
// codec builds on: wrapping a body in `["LABEL",...]` and skipping past an
// envelope's closing bracket once its known fields are consumed.
package envelopes

import "embernote.dev/pkg/errs"

// Marshal appends `["<label>",` + body(dst) + `]` to dst. Every outbound
// frame (EVENT, AUTH, REQ, CLOSE) and every inbound envelope's re-encoding
// goes through this one function, so the label/body/bracket shape can never
// drift between frame kinds.
func Marshal(dst []byte, label string, body func(dst []byte) []byte) []byte {
	dst = append(dst, '[', '"')
	dst = append(dst, label...)
	dst = append(dst, '"', ',')
	dst = body(dst)
	dst = append(dst, ']')
	return dst
}

// SkipToTheEnd consumes the envelope's closing ']' (after any trailing
// whitespace), once every field an Unmarshal implementation cares about has
// already been read off the front of b.
func SkipToTheEnd(b []byte) (rem []byte, err error) {
	r := b
	for len(r) > 0 {
		switch r[0] {
		case ' ', '\t', '\n', '\r':
			r = r[1:]
			continue
		}
		break
	}
	if len(r) == 0 || r[0] != ']' {
		return b, errs.Wrapf(errs.MalformedContent, "expected envelope closing ']', got '%s'", clip(r))
	}
	return r[1:], nil
}

func clip(b []byte) []byte {
	if len(b) > 24 {
		return b[:24]
	}
	return b
}
