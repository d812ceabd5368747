package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var (
	log = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// Log returns the process logger
func Log() *zerolog.Logger {
	return &log
}

// SetConsoleWriter switches to human readable output on stderr
func SetConsoleWriter() {
	log = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = "15:04:05.000"
	})).With().Timestamp().Logger()
}

// SetJsonWriter switches to JSON lines on stderr
func SetJsonWriter() {
	SetWriter(os.Stderr)
}

func SetWriter(w io.Writer) {
	log = zerolog.New(w).With().Timestamp().Logger()
}

// SetLevel parses level names like "debug" or "warn"; empty keeps the current level
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	log = log.Level(l)
	return nil
}
