// Command embernote is a thin demonstration CLI wiring together the
// builder, the NIP-04 codec, and the relay-message framer: build and sign
// a note, frame an AUTH response or a DM, or emit a REQ/CLOSE frame, then
// print the result. It is not part of the client library itself — it
// exists to show the pieces assembled the way a caller actually would,
// using go-arg for flag parsing.
package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"

	"embernote.dev/pkg/app/config"
	"embernote.dev/pkg/builder"
	"embernote.dev/pkg/encoders/bech32"
	"embernote.dev/pkg/encoders/filter"
	"embernote.dev/pkg/encoders/hex"
	"embernote.dev/pkg/encoders/kind"
	"embernote.dev/pkg/encoders/subscription"
	"embernote.dev/pkg/encoders/timestamp"
	"embernote.dev/pkg/interfaces/clock"
	"embernote.dev/pkg/interfaces/rng"
	"embernote.dev/pkg/protocol/relay"
	"embernote.dev/pkg/utils/chk"
	"embernote.dev/pkg/utils/log"
)

var args struct {
	Mode      string `arg:"positional,required" help:"note|auth|dm|req|close|env"`
	Seckey    string `help:"hex or bech32 (nsec) secret key" arg:"-k,--seckey"`
	Content   string `help:"note or DM content (mode=note|dm)"`
	Challenge string `help:"AUTH challenge string (mode=auth)"`
	Relay     string `help:"relay URL (mode=auth)"`
	To        string `help:"recipient pubkey, hex or bech32 npub (mode=dm)"`
	CreatedAt uint32 `help:"override created_at instead of reading the system clock"`
	SubID     string `help:"subscription id (mode=req|close)"`
	Since     uint32 `help:"filter since (mode=req)"`
	Until     uint32 `help:"filter until (mode=req)"`
	Limit     uint32 `help:"filter limit (mode=req)"`
	Kind      uint16 `help:"filter kind (mode=req)"`
	LogLevel  string `help:"trace|debug|info|warn|error"`
}

var cfg *config.C

// fallback applies the environment-configured value wherever the matching
// flag was not given.
func fallback(flag, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}

func main() {
	arg.MustParse(&args)
	var err error
	if cfg, err = config.New(); chk.E(err) {
		os.Exit(1)
	}
	log.SetLevelByName(fallback(args.LogLevel, cfg.LogLevel))

	switch args.Mode {
	case "note":
		runNote()
	case "auth":
		runAuth()
	case "dm":
		runDM()
	case "req":
		runReq()
	case "close":
		runClose()
	case "env":
		config.PrintEnv(cfg, os.Stdout)
	default:
		log.F.F("unknown mode %q (want note|auth|dm|req|close|env)", args.Mode)
	}
}

func seckey() []byte {
	sk, err := bech32.DecodeNsecOrHex(fallback(args.Seckey, cfg.Seckey))
	if chk.E(err) {
		os.Exit(1)
	}
	return sk
}

func createdAt() uint32 {
	if args.CreatedAt != 0 {
		return args.CreatedAt
	}
	return clock.System{}.Now()
}

func auxRand() []byte {
	b := make([]byte, 32)
	if chk.E(rng.System{}.Read(b)) {
		os.Exit(1)
	}
	return b
}

func runNote() {
	b, err := builder.New(seckey())
	if chk.E(err) {
		os.Exit(1)
	}
	ev, err := b.Content(args.Content).Build(createdAt(), auxRand())
	if chk.E(err) {
		os.Exit(1)
	}
	fmt.Println(string(relay.EventFrame(ev)))
}

func runAuth() {
	b, err := builder.New(seckey())
	if chk.E(err) {
		os.Exit(1)
	}
	staged, err := b.CreateAuth(args.Challenge, fallback(args.Relay, cfg.Relay))
	if chk.E(err) {
		os.Exit(1)
	}
	ev, err := staged.Build(createdAt(), auxRand())
	if chk.E(err) {
		os.Exit(1)
	}
	fmt.Println(string(relay.AuthFrame(ev)))
}

func runDM() {
	recipient, err := bech32.DecodeNpubOrHex(args.To)
	if chk.E(err) {
		os.Exit(1)
	}
	b, err := builder.New(seckey())
	if chk.E(err) {
		os.Exit(1)
	}
	iv := make([]byte, 16)
	if chk.E(rng.System{}.Read(iv)) {
		os.Exit(1)
	}
	staged, err := b.CreateDM(args.Content, hex.EncString(recipient), iv)
	if chk.E(err) {
		os.Exit(1)
	}
	ev, err := staged.Build(createdAt(), auxRand())
	if chk.E(err) {
		os.Exit(1)
	}
	fmt.Println(string(relay.EventFrame(ev)))
}

func runReq() {
	f := filter.New()
	if args.Kind != 0 {
		if err := f.AddKind(kind.New(args.Kind)); chk.E(err) {
			os.Exit(1)
		}
	}
	if args.Since != 0 {
		f.SetSince(timestamp.New(args.Since))
	}
	if args.Until != 0 {
		f.SetUntil(timestamp.New(args.Until))
	}
	if args.Limit != 0 {
		f.SetLimit(args.Limit)
	}
	id, err := subscription.NewId(fallback(args.SubID, cfg.SubID))
	if chk.E(err) {
		os.Exit(1)
	}
	fmt.Println(string(relay.ReqFrame(id, f)))
}

func runClose() {
	id, err := subscription.NewId(fallback(args.SubID, cfg.SubID))
	if chk.E(err) {
		os.Exit(1)
	}
	fmt.Println(string(relay.CloseFrame(id)))
}
