package event

import (
	"embernote.dev/pkg/crypto/sha256"
	"embernote.dev/pkg/encoders/hex"
	"embernote.dev/pkg/encoders/text"
)

// ToCanonical appends the hash preimage to dst: the six-element
// JSON array `[0,"<pubkey>",<created_at>,<kind>,<tags>,"<content>"]` with no
// insignificant whitespace. This is the one format that must never be
// produced by a general-purpose JSON encoder — it is defined here, byte for
// byte, independently of the wire JSON writer in writer.go.
func (ev *E) ToCanonical(dst []byte) []byte {
	dst = append(dst, "[0,\""...)
	dst = hex.EncAppend(dst, ev.Pubkey)
	dst = append(dst, "\","...)
	dst = ev.CreatedAt.Marshal(dst)
	dst = append(dst, ',')
	dst = ev.Kind.Marshal(dst)
	dst = append(dst, ',')
	dst = ev.Tags.Marshal(dst)
	dst = append(dst, ',')
	dst = text.AppendQuote(dst, ev.Content, text.NostrEscape)
	dst = append(dst, ']')
	return dst
}

// GetIDBytes returns SHA-256 of the canonical preimage — the bytes that
// become ev.ID once hex-encoded.
func (ev *E) GetIDBytes() []byte {
	return sha256.Sum256(ev.ToCanonical(nil))
}
