package event

import (
	"embernote.dev/pkg/encoders/hex"
	"embernote.dev/pkg/encoders/text"
)

var (
	jContent   = []byte("content")
	jCreatedAt = []byte("created_at")
	jID        = []byte("id")
	jKind      = []byte("kind")
	jPubkey    = []byte("pubkey")
	jSig       = []byte("sig")
	jTags      = []byte("tags")
)

// Marshal appends the wire JSON object to dst, in the fixed key
// order the contract requires: content, created_at, id, kind, pubkey, sig,
// tags. This order differs from the canonical preimage's positional array —
// both must be byte-exact, but they are not the same bytes.
func (ev *E) Marshal(dst []byte) []byte {
	dst = append(dst, '{')
	dst = text.JSONKey(dst, jContent)
	dst = text.AppendQuote(dst, ev.Content, text.NostrEscape)
	dst = append(dst, ',')
	dst = text.JSONKey(dst, jCreatedAt)
	dst = ev.CreatedAt.Marshal(dst)
	dst = append(dst, ',')
	dst = text.JSONKey(dst, jID)
	dst = text.AppendQuote(dst, ev.ID, hex.EncAppend)
	dst = append(dst, ',')
	dst = text.JSONKey(dst, jKind)
	dst = ev.Kind.Marshal(dst)
	dst = append(dst, ',')
	dst = text.JSONKey(dst, jPubkey)
	dst = text.AppendQuote(dst, ev.Pubkey, hex.EncAppend)
	dst = append(dst, ',')
	dst = text.JSONKey(dst, jSig)
	dst = text.AppendQuote(dst, ev.Sig, hex.EncAppend)
	dst = append(dst, ',')
	dst = text.JSONKey(dst, jTags)
	dst = ev.Tags.Marshal(dst)
	dst = append(dst, '}')
	return dst
}
