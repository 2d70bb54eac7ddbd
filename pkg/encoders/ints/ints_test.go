package ints

import (
	"strconv"
	"testing"

	"lukechampine.com/frand"
)

// Marshal must agree with the standard formatter and Unmarshal must invert
// it, across random values and the edge values.
func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	vals := []uint64{0, 1, 9, 10, 99, 100, 4294967295, 18446744073709551615}
	for i := 0; i < 64; i++ {
		vals = append(vals, frand.Uint64n(1<<63))
	}
	for _, v := range vals {
		wire := New(v).Marshal(nil)
		if string(wire) != strconv.FormatUint(v, 10) {
			t.Fatalf("marshal mismatch for %d: got %s", v, wire)
		}
		n := &T{}
		rem, err := n.Unmarshal(wire)
		if err != nil {
			t.Fatalf("Unmarshal %s: %v", wire, err)
		}
		if n.N != v || len(rem) != 0 {
			t.Fatalf("round trip failed for %d: got %d, rem %q", v, n.N, rem)
		}
	}
}

func TestUnmarshalStopsAtNonDigit(t *testing.T) {
	n := &T{}
	rem, err := n.Unmarshal([]byte("1686880020,4"))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if n.N != 1686880020 || string(rem) != ",4" {
		t.Fatalf("got %d, rem %q", n.N, rem)
	}
}

func TestUnmarshalRejectsNonNumeric(t *testing.T) {
	n := &T{}
	if _, err := n.Unmarshal([]byte("abc")); err == nil {
		t.Fatal("expected MalformedContent for non-numeric input")
	}
}
