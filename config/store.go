// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load logic for the config store: disk, embedded defaults, fallbacks.

package config

import (
	"github.com/rs/zerolog"

	"github.com/framegrace/texelwidgets/internal/logging"
)

func log() *zerolog.Logger { return logging.Component("config") }

// loadSystemLocked reads texelwidgets.json, seeding it from the embedded
// defaults on first run. Missing keys are always filled in memory.
func loadSystemLocked() error {
	path, err := systemConfigPath()
	if err != nil {
		log().Error().Err(err).Msg("resolve system config path")
		system = make(Config)
		applySystemDefaults(system)
		return err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log().Error().Err(readErr).Str("path", path).Msg("read system config")
		cfg = make(Config)
	}

	if !exists || (readErr == nil && len(cfg) == 0) {
		if def := defaultSystemConfig(); def != nil {
			cfg = def
		} else {
			cfg = make(Config)
		}
		applySystemDefaults(cfg)
		if err := writeConfig(path, cfg); err != nil {
			log().Error().Err(err).Str("path", path).Msg("write default system config")
			if readErr == nil {
				readErr = err
			}
		}
	} else {
		applySystemDefaults(cfg)
	}

	system = cfg
	if readErr == nil && exists {
		log().Debug().Str("path", path).Msg("loaded system config")
	}
	return readErr
}

func loadAppLocked(name string) (Config, error) {
	path, err := appConfigPath(name)
	if err != nil {
		return nil, err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log().Error().Err(readErr).Str("path", path).Msg("read app config")
		cfg = make(Config)
	}

	if !exists || (readErr == nil && len(cfg) == 0) {
		if def := defaultAppConfig(name); def != nil {
			cfg = def
		} else {
			cfg = make(Config)
		}
		applyAppDefaults(name, cfg)
		if err := writeConfig(path, cfg); err != nil {
			log().Error().Err(err).Str("path", path).Msg("write default app config")
			if readErr == nil {
				readErr = err
			}
		}
	} else {
		applyAppDefaults(name, cfg)
	}

	if readErr == nil && exists {
		log().Debug().Str("app", name).Str("path", path).Msg("loaded app config")
	}
	return cfg, readErr
}
