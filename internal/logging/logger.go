package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/rwx-research/fm-cli/internal/errors"
)

type Logger = zerolog.Logger

// DefaultLevel keeps diagnostics out of the way of the interactive session.
const DefaultLevel = zerolog.WarnLevel

// ParseLevel accepts zerolog level names ("debug", "info", "warn", ...).
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return DefaultLevel, nil
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "invalid log level %q", level)
	}

	return parsed, nil
}

// Initialize sets up the global logger to write human-readable lines to out.
func Initialize(out io.Writer, level zerolog.Level) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(level)

	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: !isTerminal(out)}

	ctx := zerolog.New(output).With().Timestamp()
	if level <= zerolog.TraceLevel {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()
	log.Debug().Str("level", level.String()).Msg("Logger initialized")
}

// Get returns a logger tagged with the component it belongs to.
func Get(component string) Logger {
	return log.With().Str("component", component).Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
