// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/theme/style.go
// Summary: Per-widget style configuration and its pure resolution.

package theme

import (
	"github.com/gdamore/tcell/v2"
)

// StyleConfig names the semantic colours a widget uses in each visual
// state. Empty fields fall back to the defaults in Resolve.
type StyleConfig struct {
	Fg         string
	Bg         string
	HoverBg    string
	FocusBg    string
	SelectedFg string
	SelectedBg string
	Bold       bool
	// BoldSelected adds bold to the selected look only.
	BoldSelected bool
}

// Resolved holds concrete colours for every state of one widget.
type Resolved struct {
	Fg, Bg                 tcell.Color
	HoverBg, FocusBg       tcell.Color
	SelectedFg, SelectedBg tcell.Color
	Bold, BoldSelected     bool
}

// Resolve maps cfg onto th. It has no side effects.
func Resolve(cfg StyleConfig, th Theme) Resolved {
	pick := func(key, fallback string) tcell.Color {
		if key == "" {
			key = fallback
		}
		return th.Color(key)
	}
	return Resolved{
		Fg:           pick(cfg.Fg, TextPrimary),
		Bg:           pick(cfg.Bg, BgSurface),
		HoverBg:      pick(cfg.HoverBg, BgHover),
		FocusBg:      pick(cfg.FocusBg, BgFocus),
		SelectedFg:   pick(cfg.SelectedFg, BgBase),
		SelectedBg:   pick(cfg.SelectedBg, BgSelection),
		Bold:         cfg.Bold,
		BoldSelected: cfg.BoldSelected,
	}
}

// Base returns the resting style.
func (r Resolved) Base() tcell.Style {
	return tcell.StyleDefault.Foreground(r.Fg).Background(r.Bg).Bold(r.Bold)
}

// At returns the style for the given animation amounts. Selected wins over
// hover and focus; otherwise the background blends from Bg towards HoverBg
// by hover and then towards FocusBg by focus.
func (r Resolved) At(hover, focus float32, selected bool) tcell.Style {
	if selected {
		return tcell.StyleDefault.
			Foreground(r.SelectedFg).
			Background(r.SelectedBg).
			Bold(r.Bold || r.BoldSelected)
	}
	bg := Blend(r.Bg, r.HoverBg, hover)
	bg = Blend(bg, r.FocusBg, focus)
	return tcell.StyleDefault.Foreground(r.Fg).Background(bg).Bold(r.Bold)
}

// Muted returns the resting style with fg replaced by muted text.
func (r Resolved) Muted(th Theme) tcell.Style {
	return r.Base().Foreground(th.Color(TextMuted))
}

// Blend mixes a towards b by t in Lab space. Non-RGB colours snap at 0.5.
func Blend(a, b tcell.Color, t float32) tcell.Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	ca, okA := fromTcell(a)
	cb, okB := fromTcell(b)
	if !okA || !okB {
		if t < 0.5 {
			return a
		}
		return b
	}
	return toTcell(ca.BlendLab(cb, float64(t)))
}
