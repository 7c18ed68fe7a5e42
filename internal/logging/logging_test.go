// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestComponentAddsField(t *testing.T) {
	var buf bytes.Buffer
	l, _, err := New(Options{Writer: &buf, Level: "debug"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	prev := L()
	Set(l)
	defer Set(prev)

	Component("config").Info().Str("path", "/tmp/x").Msg("loaded")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if entry["component"] != "config" || entry["message"] != "loaded" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, _, err := New(Options{Writer: &bytes.Buffer{}, Level: "loud"}); err == nil {
		t.Fatalf("expected error for bad level")
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "widgets.log")
	l, closer, err := New(Options{File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Warn().Msg("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Contains(data, []byte("hello")) {
		t.Fatalf("log file missing entry: %q", data)
	}
}
