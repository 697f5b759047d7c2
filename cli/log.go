package cli

import (
	"log/slog"
	"os"

	"github.com/webzeppelin/rusty-sharutils/log"
)

// Logger configuration comes from the environment rather than the option
// catalogs: the tools' option sets are fixed by tradition, and logging is
// an operator concern, not part of the tools' interfaces.
//
//	SHARUTILS_LOG         minimum level (debug, info, warn, error)
//	SHARUTILS_LOG_FORMAT  output format (text, json)
//	SHARUTILS_LOG_PRETTY  colorized text output (1, true)
//	SHARUTILS_LOG_CALLER  include caller info (1, true)
func configureLog() {
	opts := []log.Option{}

	if v, ok := os.LookupEnv("SHARUTILS_LOG"); ok {
		opts = append(opts, log.WithLevel(log.ParseLevel(v)))
	}

	if v, ok := os.LookupEnv("SHARUTILS_LOG_FORMAT"); ok {
		opts = append(opts, log.WithFormat(log.ParseFormat(v)))
	}

	if isEnvSet("SHARUTILS_LOG_PRETTY") {
		opts = append(opts, log.WithPretty(true))
	}

	if isEnvSet("SHARUTILS_LOG_CALLER") {
		opts = append(opts, log.WithCaller(true))
	}

	if len(opts) > 0 {
		log.Config(opts...)
	}
}

func isEnvSet(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes", "on":
		return true
	}

	return false
}

// errAttr wraps an error for structured logging.
func errAttr(err error) slog.Attr {
	return slog.Any("error", err)
}
