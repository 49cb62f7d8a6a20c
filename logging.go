package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// logger is the application-wide logger. Defaults to a no-op so tests
// stay quiet; main replaces it via initLogger.
var logger = zerolog.Nop()

func initLogger(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	console := zerolog.NewConsoleWriter()
	console.Out = os.Stdout
	console.TimeFormat = time.RFC3339

	logger = zerolog.New(console).Level(parsed).With().Timestamp().Logger()
}
