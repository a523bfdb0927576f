package cliconfig

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger builds the CLI logger: console output on stderr, colored only when
// stderr is a terminal, filtered to the given level. An unknown level falls
// back to info so a typo never silences the run.
func Logger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
