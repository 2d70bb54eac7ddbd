package relay

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"embernote.dev/pkg/builder"
	"embernote.dev/pkg/encoders/filter"
	"embernote.dev/pkg/encoders/hex"
	"embernote.dev/pkg/encoders/kind"
	"embernote.dev/pkg/encoders/subscription"
	"embernote.dev/pkg/encoders/timestamp"
)

const fixedSeckeyHex = "a5084b35a58e3e1a26f5efb46cb9dbada73191526aa6d11bccb590cbeb2d8fa3"

// Test vector 1, framed: the zero-tag "esptest" note submitted as an EVENT
// frame must match the expected wire bytes exactly, signature included.
func TestEventFrameVector(t *testing.T) {
	b, err := builder.NewFromHex(fixedSeckeyHex)
	require.NoError(t, err)
	var auxRand [32]byte
	ev, err := b.Content("esptest").Build(1686880020, auxRand[:])
	require.NoError(t, err)

	want := `["EVENT",{"content":"esptest","created_at":1686880020,"id":"b515da91ac5df638fae0a6e658e03acc1dda6152dd2107d02d5702ccfcf927e8","kind":1,"pubkey":"098ef66bce60dd4cf10b4ae5949d1ec6dd777ddeb4bc49b47f97275a127a63cf","sig":"89a4f1ad4b65371e6c3167ea8cb13e73cf64dd5ee71224b1edd8c32ad817af2312202cadb2f22f35d599793e8b1c66b3979d4030f1e7a252098da4a4e0c48fab","tags":[]}]`
	require.Equal(t, want, string(EventFrame(ev)))
}

// An inbound EVENT result carries a verified note; parsing one framed from
// a locally signed event must round trip through the full dispatch path.
func TestParseInboundEvent(t *testing.T) {
	b, err := builder.NewFromHex(fixedSeckeyHex)
	require.NoError(t, err)
	var auxRand [32]byte
	ev, err := b.Content("esptest").Build(1686880020, auxRand[:])
	require.NoError(t, err)

	frame := `["EVENT","sub_1",` + string(ev.Marshal(nil)) + `]`
	in, err := ParseInbound([]byte(frame))
	require.NoError(t, err)
	if in.Label != "EVENT" || in.Event == nil {
		t.Fatalf("expected EVENT result, got %s", spew.Sdump(in))
	}
	require.Equal(t, "sub_1", in.Event.Subscription.String())
	require.Equal(t, ev.IDHex(), in.Event.Event.IDHex())
}

// A tampered signature inside an inbound EVENT frame must surface
// InvalidSignature from the dispatch path, not a silently unverified note.
func TestParseInboundEventBadSig(t *testing.T) {
	b, err := builder.NewFromHex(fixedSeckeyHex)
	require.NoError(t, err)
	var auxRand [32]byte
	ev, err := b.Content("esptest").Build(1686880020, auxRand[:])
	require.NoError(t, err)
	ev.Sig[0] ^= 0xff

	frame := `["EVENT","sub_1",` + string(ev.Marshal(nil)) + `]`
	if _, err = ParseInbound([]byte(frame)); err == nil {
		t.Fatal("expected InvalidSignature for tampered sig")
	}
}

// Test vector 5, framed: a query with two ref_pks, two kinds, and all
// three range bounds must produce the full REQ frame byte-for-byte.
func TestReqFrameVector(t *testing.T) {
	f := filter.New()
	pkA, err := hex.Dec("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	require.NoError(t, err)
	pkB, err := hex.Dec("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	require.NoError(t, err)
	require.NoError(t, f.AddRefPk(pkA))
	require.NoError(t, f.AddRefPk(pkB))
	require.NoError(t, f.AddKind(kind.New(kind.IOTNum)))
	require.NoError(t, f.AddKind(kind.New(1005)))
	f.SetSince(timestamp.New(10000))
	f.SetUntil(timestamp.New(10001))
	f.SetLimit(10)

	id := subscription.MustNew("subscription_1")
	want := `["REQ","subscription_1",{"#p":["aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa","bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"],"kinds":[5732,1005],"since":10000,"until":10001,"limit":10}]`
	require.Equal(t, want, string(ReqFrame(id, f)))
}

// Test vector 6: CLOSE("sub_1") must frame exactly
// ["CLOSE","sub_1"].
func TestCloseFrameVector(t *testing.T) {
	id := subscription.MustNew("sub_1")
	want := `["CLOSE","sub_1"]`
	if got := string(CloseFrame(id)); got != want {
		t.Fatalf("frame mismatch: got %s, want %s", got, want)
	}
}

func TestParseInboundAuth(t *testing.T) {
	in, err := ParseInbound([]byte(`["AUTH","challenge_me"]`))
	if err != nil {
		t.Fatalf("ParseInbound: %v", err)
	}
	if in.Label != "AUTH" || in.Auth == nil {
		t.Fatalf("expected AUTH with Challenge set, got %+v", in)
	}
	if string(in.Auth.Challenge) != "challenge_me" {
		t.Fatalf("challenge mismatch: got %s", in.Auth.Challenge)
	}
}

func TestParseInboundEose(t *testing.T) {
	in, err := ParseInbound([]byte(`["EOSE","sub_1"]`))
	if err != nil {
		t.Fatalf("ParseInbound: %v", err)
	}
	if in.Label != "EOSE" || in.Eose == nil {
		t.Fatalf("expected EOSE, got %+v", in)
	}
	if in.Eose.Subscription.String() != "sub_1" {
		t.Fatalf("sub id mismatch: got %s", in.Eose.Subscription.String())
	}
}

func TestParseInboundNotice(t *testing.T) {
	in, err := ParseInbound([]byte(`["NOTICE","rate limited"]`))
	if err != nil {
		t.Fatalf("ParseInbound: %v", err)
	}
	if in.Label != "NOTICE" || string(in.Notice.Message) != "rate limited" {
		t.Fatalf("unexpected NOTICE result: %+v", in)
	}
}

func TestParseInboundCount(t *testing.T) {
	in, err := ParseInbound([]byte(`["COUNT","sub_1",{"count":42}]`))
	if err != nil {
		t.Fatalf("ParseInbound: %v", err)
	}
	if in.Label != "COUNT" || in.Count.Count != 42 {
		t.Fatalf("unexpected COUNT result: %+v", in)
	}
}

func TestParseInboundOK(t *testing.T) {
	const id64 = "0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20"
	in, err := ParseInbound([]byte(`["OK","` + id64 + `",true,"stored"]`))
	if err != nil {
		t.Fatalf("ParseInbound: %v", err)
	}
	if in.Label != "OK" || !in.OK.OK || in.OK.ReasonString() != "stored" {
		t.Fatalf("unexpected OK result: %+v", in)
	}
}

// An unrecognized leading literal must fail with InvalidType, never be
// silently ignored or misparsed as some other frame kind.
func TestParseInboundUnknownPrefix(t *testing.T) {
	if _, err := ParseInbound([]byte(`["PING","hello"]`)); err == nil {
		t.Fatal("expected InvalidType for unrecognized prefix")
	}
}
