// Package codec declares the shape every relay-message envelope conforms
// to, so the discriminator in pkg/protocol/relay can hold them behind one
// interface.
package codec

// Envelope is a relay wire-protocol frame: `["LABEL",...]`.
type Envelope interface {
	// Label is the frame's type literal, e.g. "EVENT", "AUTH", "OK".
	Label() string
	// Marshal appends the frame's minified JSON encoding to dst.
	Marshal(dst []byte) []byte
	// Unmarshal parses the frame's body (after the leading `["LABEL",`)
	// from b, returning the remainder after the frame's closing `]`.
	Unmarshal(b []byte) (rem []byte, err error)
}
