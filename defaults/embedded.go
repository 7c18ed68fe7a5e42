// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default configuration files.

package defaults

import (
	"embed"
	"fmt"
)

//go:embed texelwidgets.json apps/*/config.json themes/*.yaml
var fs embed.FS

// SystemConfig returns the embedded system config JSON.
func SystemConfig() ([]byte, error) {
	return fs.ReadFile("texelwidgets.json")
}

// AppConfig returns the embedded config JSON for the named app.
func AppConfig(app string) ([]byte, error) {
	if app == "" {
		return nil, fmt.Errorf("app name is required")
	}
	return fs.ReadFile(fmt.Sprintf("apps/%s/config.json", app))
}

// ThemeOverrides returns an embedded theme override document by name.
func ThemeOverrides(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("theme name is required")
	}
	return fs.ReadFile(fmt.Sprintf("themes/%s.yaml", name))
}
