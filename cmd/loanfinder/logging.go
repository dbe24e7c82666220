// SPDX-License-Identifier: MIT
// Package: lvloan/cmd/loanfinder

package main

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger builds the driver logger and sets the global level to match.
// Unknown levels fall back to info.
func newLogger(cfg LoggingConfig, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	out := w
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: w}
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
