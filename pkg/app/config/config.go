// Package config provides the go-simpler.org/env configuration table for
// the embernote command: a struct of environment-variable-backed settings
// with defaults, loaded once at startup. Command-line flags override
// anything loaded here.
package config

import (
	"io"

	"go-simpler.org/env"
)

// C holds the settings loaded from environment variables and default
// values: identity material, logging, and the defaults applied to frames
// when the matching flag is not given.
type C struct {
	AppName  string `env:"EMBERNOTE_APP_NAME" default:"embernote"`
	LogLevel string `env:"EMBERNOTE_LOG_LEVEL" default:"info" usage:"debug level: fatal error warn info debug trace"`
	Seckey   string `env:"EMBERNOTE_SECKEY" usage:"hex or bech32 (nsec) secret key, so it need not be passed on the command line"`
	Relay    string `env:"EMBERNOTE_RELAY" default:"wss://relay.damus.io" usage:"relay URL used in AUTH responses when --relay is not given"`
	SubID    string `env:"EMBERNOTE_SUB_ID" default:"sub_1" usage:"subscription id used for REQ and CLOSE frames when --subid is not given"`
}

// New loads the configuration from the environment, filling defaults for
// anything unset.
func New() (cfg *C, err error) {
	cfg = &C{}
	if err = env.Load(cfg, &env.Options{SliceSep: ","}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PrintEnv writes the environment variable table, with usage and defaults,
// to w.
func PrintEnv(cfg *C, w io.Writer) {
	env.Usage(cfg, w, &env.Options{SliceSep: ","})
}
