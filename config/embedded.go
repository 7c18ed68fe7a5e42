// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Parsed view of the JSON defaults compiled into the binary.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/framegrace/texelwidgets/defaults"
)

// embeddedDoc is one parsed defaults file. A missing file is remembered as
// a nil Config so it is looked up only once.
type embeddedDoc struct {
	cfg Config
	err error
}

var (
	embeddedMu   sync.Mutex
	embeddedDocs = make(map[string]embeddedDoc)
)

// loadEmbedded parses the defaults file behind key once and caches it.
// Optional documents that do not exist yield nil, nil.
func loadEmbedded(key string, optional bool, read func() ([]byte, error)) (Config, error) {
	embeddedMu.Lock()
	defer embeddedMu.Unlock()
	if doc, ok := embeddedDocs[key]; ok {
		return doc.cfg, doc.err
	}

	var doc embeddedDoc
	data, err := read()
	switch {
	case err != nil && optional && errors.Is(err, fs.ErrNotExist):
	case err != nil:
		doc.err = fmt.Errorf("embedded %s: %w", key, err)
	default:
		if err := json.Unmarshal(data, &doc.cfg); err != nil {
			doc.err = fmt.Errorf("embedded %s: %w", key, err)
		}
	}
	embeddedDocs[key] = doc
	return doc.cfg, doc.err
}

// defaultSystemConfig returns a private copy of the embedded system
// defaults, or nil when they cannot be read.
func defaultSystemConfig() Config {
	cfg, err := loadEmbedded("system", false, defaults.SystemConfig)
	if err != nil {
		log().Warn().Err(err).Msg("embedded system defaults unusable")
		return nil
	}
	return Clone(cfg)
}

// defaultAppConfig is defaultSystemConfig for an app; apps without
// embedded defaults get nil.
func defaultAppConfig(app string) Config {
	cfg, err := loadEmbedded("apps/"+app, true, func() ([]byte, error) {
		return defaults.AppConfig(app)
	})
	if err != nil {
		log().Warn().Err(err).Str("app", app).Msg("embedded app defaults unusable")
		return nil
	}
	return Clone(cfg)
}
