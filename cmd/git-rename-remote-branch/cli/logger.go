// Copyright 2026 The git-rename-remote-branch Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates the structured logger for one invocation.
// Verbosity maps to levels: negative shows errors only, 0 warnings,
// 1 info, 2 and up debug. When stderr is a terminal the output is
// human-readable text; when piped or redirected (scripts, CI) it is
// machine-parseable JSON.
func NewLogger(verbosity int) *slog.Logger {
	var level slog.Level
	switch {
	case verbosity < 0:
		level = slog.LevelError
	case verbosity == 0:
		level = slog.LevelWarn
	case verbosity == 1:
		level = slog.LevelInfo
	default:
		level = slog.LevelDebug
	}

	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
