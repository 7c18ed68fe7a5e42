// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for system and app configuration files.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"activeTheme": "mocha",
	})
	cfg.RegisterDefaults("animation", Section{
		"enabled":     true,
		"duration_ms": 120,
		"easing":      "smoothstep",
	})
	cfg.RegisterDefaults("icons", Section{
		"ascii": false,
	})
	cfg.RegisterDefaults("logging", Section{
		"level": "info",
		"file":  "",
	})
}

func applyAppDefaults(app string, cfg Config) {
	if cfg == nil {
		return
	}
	switch app {
	case "gallery":
		cfg.RegisterDefaults("breadcrumb", Section{
			"policy":    "keep_tail",
			"separator": "›",
			"show_home": true,
		})
		cfg.RegisterDefaults("gallery", Section{
			"history_enabled": true,
			"history_limit":   20,
			"show_hidden":     false,
		})
	}
}
