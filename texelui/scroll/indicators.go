// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/indicators.go
// Summary: Overflow markers drawn at the edge of a scrolled viewport.

package scroll

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelwidgets/texelui/core"
	"github.com/framegrace/texelwidgets/texelui/icons"
)

// IndicatorPosition specifies where scroll indicators are rendered.
type IndicatorPosition int

const (
	IndicatorRight IndicatorPosition = iota
	IndicatorLeft
)

const (
	DefaultUpGlyph   = '▲'
	DefaultDownGlyph = '▼'
)

// IndicatorConfig configures the appearance of scroll indicators.
type IndicatorConfig struct {
	Position  IndicatorPosition
	Style     tcell.Style
	UpGlyph   rune
	DownGlyph rune
}

// DefaultIndicatorConfig returns triangle glyphs, or ^ and v when the icon
// set is ASCII only.
func DefaultIndicatorConfig(style tcell.Style) IndicatorConfig {
	cfg := IndicatorConfig{
		Position:  IndicatorRight,
		Style:     style,
		UpGlyph:   DefaultUpGlyph,
		DownGlyph: DefaultDownGlyph,
	}
	if icons.ASCII() {
		cfg.UpGlyph, cfg.DownGlyph = '^', 'v'
	}
	return cfg
}

// DrawIndicators marks the top row when content is hidden above and the
// bottom row when content is hidden below.
func DrawIndicators(painter *core.Painter, rect core.Rect, state State, cfg IndicatorConfig) {
	if rect.Empty() {
		return
	}
	x := rect.X + rect.W - 1
	if cfg.Position == IndicatorLeft {
		x = rect.X
	}
	if state.CanScrollUp() {
		painter.SetCell(x, rect.Y, orDefault(cfg.UpGlyph, DefaultUpGlyph), cfg.Style)
	}
	if state.CanScrollDown() {
		painter.SetCell(x, rect.Y+rect.H-1, orDefault(cfg.DownGlyph, DefaultDownGlyph), cfg.Style)
	}
}

func orDefault(r, def rune) rune {
	if r == 0 {
		return def
	}
	return r
}
