package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns the Courtside logger for the given environment. Development
// gets a human-friendly console writer at debug level; everything else logs
// JSON to stdout at info level. All entries carry a "service" field so that
// aggregated logs from the api, seed, and courtctl binaries stay attributable.
func New(appEnv string) zerolog.Logger {
	env := strings.ToLower(strings.TrimSpace(appEnv))
	level := zerolog.InfoLevel
	var out io.Writer = os.Stdout
	if env == "development" || env == "dev" {
		level = zerolog.DebugLevel
		out = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stdout
			w.TimeFormat = "2006-01-02 15:04:05"
		})
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("service", "courtside").Logger()
}

// Nop returns a disabled logger, useful for tests.
func Nop() zerolog.Logger {
	return zerolog.New(io.Discard)
}
