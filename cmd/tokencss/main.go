// Package main provides the tokencss CLI for generating CSS custom properties
// from design tokens and linting their use.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !getBoolWithFallback("quiet", "quiet", false) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// newLogger builds the CLI logger: warnings by default, debug with
// --verbose, nothing with --quiet.
func newLogger(w io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case getBoolWithFallback("quiet", "quiet", false):
		level = zerolog.Disabled
	case getBoolWithFallback("verbose", "verbose", false):
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !getBoolWithFallback("color", "color", false) && os.Getenv("FORCE_COLOR") == "",
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// withLogger attaches the CLI logger to ctx for the library calls.
func withLogger(ctx context.Context) context.Context {
	logger := newLogger(os.Stderr)
	return logger.WithContext(ctx)
}
