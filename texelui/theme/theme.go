// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/theme/theme.go
// Summary: Semantic colour palettes and the process-wide active theme.

// Package theme maps semantic colour keys to terminal colours and resolves
// per-widget style configurations against them.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/framegrace/texelwidgets/config"
	"github.com/framegrace/texelwidgets/internal/logging"
)

// Semantic colour keys.
const (
	BgBase        = "bg.base"
	BgSurface     = "bg.surface"
	BgHover       = "bg.hover"
	BgFocus       = "bg.focus"
	BgSelection   = "bg.selection"
	TextPrimary   = "text.primary"
	TextMuted     = "text.muted"
	Accent        = "accent"
	BorderDefault = "border.default"
	BorderFocus   = "border.focus"
	Error         = "error"
)

// Keys lists every semantic key a palette must define.
var Keys = []string{
	BgBase, BgSurface, BgHover, BgFocus, BgSelection,
	TextPrimary, TextMuted, Accent, BorderDefault, BorderFocus, Error,
}

// ErrUnknownPalette is returned for palette names that are neither built in
// nor a known chroma style.
var ErrUnknownPalette = errors.New("unknown palette")

// Theme is a named set of semantic colours.
type Theme struct {
	Name   string
	colors map[string]tcell.Color
}

var builtins = map[string]map[string]string{
	"mocha": {
		BgBase:        "#1e1e2e",
		BgSurface:     "#313244",
		BgHover:       "#45475a",
		BgFocus:       "#585b70",
		BgSelection:   "#89b4fa",
		TextPrimary:   "#cdd6f4",
		TextMuted:     "#a6adc8",
		Accent:        "#f5c2e7",
		BorderDefault: "#6c7086",
		BorderFocus:   "#b4befe",
		Error:         "#f38ba8",
	},
	"latte": {
		BgBase:        "#eff1f5",
		BgSurface:     "#e6e9ef",
		BgHover:       "#ccd0da",
		BgFocus:       "#bcc0cc",
		BgSelection:   "#1e66f5",
		TextPrimary:   "#4c4f69",
		TextMuted:     "#6c6f85",
		Accent:        "#ea76cb",
		BorderDefault: "#9ca0b0",
		BorderFocus:   "#7287fd",
		Error:         "#d20f39",
	},
}

// FromHex builds a theme from hex strings. Every key in Keys must be set.
func FromHex(name string, hex map[string]string) (Theme, error) {
	t := Theme{Name: name, colors: make(map[string]tcell.Color, len(hex))}
	for key, value := range hex {
		c, err := ParseColor(value)
		if err != nil {
			return Theme{}, fmt.Errorf("palette %s key %s: %w", name, key, err)
		}
		t.colors[key] = c
	}
	for _, key := range Keys {
		if _, ok := t.colors[key]; !ok {
			return Theme{}, fmt.Errorf("palette %s: missing key %s", name, key)
		}
	}
	return t, nil
}

// ParseColor parses a #rrggbb string.
func ParseColor(hex string) (tcell.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return tcell.ColorDefault, err
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// Palette returns a built-in palette or one derived from a chroma style.
func Palette(name string) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if hex, ok := builtins[key]; ok {
		return FromHex(key, hex)
	}
	if t, ok := fromChroma(key); ok {
		return t, nil
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
}

// Names returns the built-in palette names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Color returns the colour for key, or tcell.ColorDefault.
func (t Theme) Color(key string) tcell.Color {
	if c, ok := t.colors[key]; ok {
		return c
	}
	return tcell.ColorDefault
}

// Hex returns the #rrggbb form of key, or "" when unset.
func (t Theme) Hex(key string) string {
	c, ok := t.colors[key]
	if !ok || c.Hex() < 0 {
		return ""
	}
	return fmt.Sprintf("#%06x", c.Hex())
}

// With returns a copy of t with overrides applied.
func (t Theme) With(overrides map[string]tcell.Color) Theme {
	out := Theme{Name: t.Name, colors: make(map[string]tcell.Color, len(t.colors)+len(overrides))}
	for k, v := range t.colors {
		out.colors[k] = v
	}
	for k, v := range overrides {
		out.colors[k] = v
	}
	return out
}

var (
	activeMu sync.RWMutex
	active   *Theme
)

// Get returns the active theme. The first call resolves the system config
// "activeTheme" palette, falling back to mocha.
func Get() Theme {
	activeMu.RLock()
	t := active
	activeMu.RUnlock()
	if t != nil {
		return *t
	}

	activeMu.Lock()
	defer activeMu.Unlock()
	if active != nil {
		return *active
	}
	name := config.System().GetString("", "activeTheme", "mocha")
	loaded, err := Palette(name)
	if err != nil {
		logging.Component("theme").Warn().Err(err).Str("palette", name).Msg("using mocha")
		loaded, _ = Palette("mocha")
	}
	active = &loaded
	return loaded
}

// Set replaces the active theme.
func Set(t Theme) {
	activeMu.Lock()
	active = &t
	activeMu.Unlock()
}
