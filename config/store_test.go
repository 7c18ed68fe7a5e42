// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func resetStore() {
	once = sync.Once{}
	system = nil
	apps = nil
	loadErr = nil
}

func TestSystemDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := System()
	if cfg.GetString("", "activeTheme", "") == "" {
		t.Fatalf("expected activeTheme to be set")
	}
	if got := cfg.GetInt("animation", "duration_ms", -1); got != 120 {
		t.Fatalf("expected default duration 120, got %d", got)
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}
	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if disk.Section("animation") == nil {
		t.Fatalf("expected animation section to be present")
	}
}

func TestExistingSystemConfigKeepsValues(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()

	path := filepath.Join(root, "texelwidgets", systemConfigName)
	if err := writeConfig(path, Config{
		"activeTheme": "latte",
		"animation":   map[string]interface{}{"duration_ms": 0},
	}); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := System()
	if got := cfg.GetString("", "activeTheme", ""); got != "latte" {
		t.Fatalf("expected latte, got %q", got)
	}
	if got := cfg.GetInt("animation", "duration_ms", -1); got != 0 {
		t.Fatalf("expected duration 0, got %d", got)
	}
	if got := cfg.GetString("animation", "easing", ""); got != "smoothstep" {
		t.Fatalf("expected easing default to be filled, got %q", got)
	}
}

func TestBrokenSystemConfigReportsError(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()

	path := filepath.Join(root, "texelwidgets", systemConfigName)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := System()
	if Err() == nil {
		t.Fatalf("expected load error")
	}
	if cfg.GetString("", "activeTheme", "") != "mocha" {
		t.Fatalf("expected defaults despite broken file")
	}
}

func TestSaveSystemWritesUpdates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	SetSystem(Config{"activeTheme": "monokai"})
	if err := SaveSystem(); err != nil {
		t.Fatalf("SaveSystem: %v", err)
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}
	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if got := disk.GetString("", "activeTheme", ""); got != "monokai" {
		t.Fatalf("expected activeTheme monokai, got %q", got)
	}
}

func TestAppDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := App("gallery")
	if got := cfg.GetString("breadcrumb", "policy", ""); got != "keep_tail" {
		t.Fatalf("expected keep_tail policy, got %q", got)
	}

	path, err := appConfigPath("gallery")
	if err != nil {
		t.Fatalf("appConfigPath: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected app config to be written: %v", err)
	}
}

func TestSaveAppWritesUpdates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	SetApp("gallery", Config{
		"breadcrumb": map[string]interface{}{"policy": "keep_head"},
	})
	if err := SaveApp("gallery"); err != nil {
		t.Fatalf("SaveApp: %v", err)
	}

	path, err := appConfigPath("gallery")
	if err != nil {
		t.Fatalf("appConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read app config: %v", err)
	}
	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal app config: %v", err)
	}
	if got := disk.GetString("breadcrumb", "policy", ""); got != "keep_head" {
		t.Fatalf("expected keep_head, got %q", got)
	}
}

func TestTypedGettersCoerce(t *testing.T) {
	cfg := Config{"s": map[string]interface{}{
		"i":  "42",
		"f":  3,
		"b":  "true",
		"n":  json.Number("7"),
		"bs": 0.0,
	}}
	if got := cfg.GetInt("s", "i", 0); got != 42 {
		t.Fatalf("GetInt string: %d", got)
	}
	if got := cfg.GetFloat("s", "f", 0); got != 3 {
		t.Fatalf("GetFloat int: %v", got)
	}
	if !cfg.GetBool("s", "b", false) {
		t.Fatalf("GetBool string")
	}
	if got := cfg.GetInt("s", "n", 0); got != 7 {
		t.Fatalf("GetInt json.Number: %d", got)
	}
	if cfg.GetBool("s", "bs", true) {
		t.Fatalf("GetBool float zero should be false")
	}
	if got := cfg.GetString("missing", "k", "dflt"); got != "dflt" {
		t.Fatalf("expected default for missing section, got %q", got)
	}
}

func TestEmbeddedDefaultsAreCachedAndCloned(t *testing.T) {
	reads := 0
	read := func() ([]byte, error) {
		reads++
		return []byte(`{"s":{"k":1}}`), nil
	}
	a, err := loadEmbedded("test/cached", false, read)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	b, _ := loadEmbedded("test/cached", false, read)
	if reads != 1 || a.GetInt("s", "k", 0) != 1 || b.GetInt("s", "k", 0) != 1 {
		t.Fatalf("expected a single cached read, got %d", reads)
	}

	missing := func() ([]byte, error) { return nil, os.ErrNotExist }
	if cfg, err := loadEmbedded("test/optional", true, missing); cfg != nil || err != nil {
		t.Fatalf("optional missing doc should be nil, nil; got %v %v", cfg, err)
	}
	if _, err := loadEmbedded("test/required", false, missing); err == nil {
		t.Fatalf("required missing doc should fail")
	}
	bad := func() ([]byte, error) { return []byte("{"), nil }
	if _, err := loadEmbedded("test/bad", false, bad); err == nil {
		t.Fatalf("malformed doc should fail")
	}

	if defaultAppConfig("no-such-app") != nil {
		t.Fatalf("apps without defaults get nil")
	}
	g := defaultAppConfig("gallery")
	if g == nil {
		t.Fatalf("gallery ships defaults")
	}
	g.Section("gallery")["history_limit"] = 999
	if defaultAppConfig("gallery").GetInt("gallery", "history_limit", 0) == 999 {
		t.Fatalf("defaults must be handed out as copies")
	}
}
