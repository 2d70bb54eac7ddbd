// Package kind is the discriminated event-kind type: a 16-bit
// integer classified into named singles, range variants, and a Custom
// catch-all, with a total conversion in both directions. It follows the
// small value-type shape of pkg/encoders/ints and pkg/encoders/timestamp:
// a thin struct wrapping the wire representation plus Marshal/Unmarshal.
package kind

import "embernote.dev/pkg/encoders/ints"

// Variant names the discriminated classification of a kind value.
type Variant int

const (
	ShortNote Variant = iota
	DM
	IOT
	Auth
	Regular
	Replaceable
	Ephemeral
	ParameterizedReplaceable
	Custom
)

// Numeric values for the four named singles.
const (
	ShortNoteNum uint16 = 1
	DMNum        uint16 = 4
	IOTNum       uint16 = 5732
	AuthNum      uint16 = 22242
)

// Range bounds, half-open [lo, hi).
const (
	regularLo     uint16 = 1000
	regularHi     uint16 = 10000
	replaceableHi uint16 = 20000
	ephemeralHi   uint16 = 30000
	paramReplHi   uint16 = 40000
)

// T is a kind value. The zero T classifies as Custom(0).
type T struct {
	N uint16
}

// New wraps a raw 16-bit kind value. Conversion is total: every uint16 is
// accepted.
func New(n uint16) *T { return &T{N: n} }

// Variant classifies the kind value.
func (t *T) Variant() Variant {
	switch {
	case t.N == ShortNoteNum:
		return ShortNote
	case t.N == DMNum:
		return DM
	case t.N == IOTNum:
		return IOT
	case t.N == AuthNum:
		return Auth
	case t.N >= regularLo && t.N < regularHi:
		return Regular
	case t.N >= regularHi && t.N < replaceableHi:
		return Replaceable
	case t.N >= replaceableHi && t.N < ephemeralHi:
		return Ephemeral
	case t.N >= ephemeralHi && t.N < paramReplHi:
		return ParameterizedReplaceable
	default:
		return Custom
	}
}

// Numeric returns the raw 16-bit value; Variant and Numeric together
// round-trip: New(n).Numeric() == n for all n.
func (t *T) Numeric() uint16 { return t.N }

// IsDM reports whether this kind is the encrypted direct-message kind,
// the one case the DM read path needs to special-case.
func (t *T) IsDM() bool { return t.N == DMNum }

// Marshal appends the decimal ASCII form of the kind, as used unquoted in
// both the hash preimage and the wire JSON.
func (t *T) Marshal(dst []byte) []byte {
	return ints.New(uint64(t.N)).Marshal(dst)
}

// Unmarshal reads a decimal kind value from the head of b, returning the
// remainder.
func Unmarshal(b []byte) (t *T, rem []byte, err error) {
	i := &ints.T{}
	rem, err = i.Unmarshal(b)
	if err != nil {
		return nil, b, err
	}
	return New(uint16(i.N)), rem, nil
}
