// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/logging/logging.go
// Summary: zerolog construction and per-component loggers.
// Notes: The TUI owns stdout, so the default sink discards until Setup
// points it at a file or another writer.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the process logger.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	// File, when set and Writer is nil, appends to this path.
	File string
}

var (
	mu   sync.RWMutex
	base = zerolog.New(io.Discard)
)

// New builds a logger from opts. The returned closer releases any file
// opened for it and is never nil.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	var closer io.Closer = nopCloser{}
	writer := opts.Writer
	if writer == nil && opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("open log file: %w", err)
		}
		writer, closer = f, f
	}
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			closer.Close()
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	out := writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		console.NoColor = true
		out = console
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), closer, nil
}

// Setup installs opts as the process logger.
func Setup(opts Options) (io.Closer, error) {
	l, closer, err := New(opts)
	if err != nil {
		return closer, err
	}
	Set(l)
	return closer, nil
}

// Set replaces the process logger.
func Set(l zerolog.Logger) {
	mu.Lock()
	base = l
	mu.Unlock()
}

// L returns the process logger.
func L() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Component returns the process logger tagged with a component field.
func Component(name string) *zerolog.Logger {
	l := L().With().Str("component", name).Logger()
	return &l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
