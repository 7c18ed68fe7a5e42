// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/theme/chroma.go
// Summary: Derives semantic palettes from chroma syntax-highlighting styles.

package theme

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ChromaNames lists the chroma styles usable as palettes.
func ChromaNames() []string { return styles.Names() }

func fromChroma(name string) (Theme, bool) {
	style, ok := styles.Registry[name]
	if !ok || style == nil {
		return Theme{}, false
	}

	bg := chromaColour(style.Get(chroma.Background).Background, colorful.Color{R: 0.1, G: 0.1, B: 0.1})
	fg := chromaColour(style.Get(chroma.Text).Colour, colorful.Color{R: 0.85, G: 0.85, B: 0.85})
	if !style.Get(chroma.Text).Colour.IsSet() {
		fg = chromaColour(style.Get(chroma.Background).Colour, fg)
	}
	accent := chromaColour(style.Get(chroma.Keyword).Colour, fg)
	focus := chromaColour(style.Get(chroma.NameFunction).Colour, accent)
	muted := chromaColour(style.Get(chroma.Comment).Colour, fg.BlendLab(bg, 0.4))
	errc := chromaColour(style.Get(chroma.GenericError).Colour, colorful.Color{R: 0.9, G: 0.3, B: 0.3})
	sel := chromaColour(style.Get(chroma.LiteralString).Colour, accent)

	t := Theme{Name: name, colors: map[string]tcell.Color{
		BgBase:        toTcell(bg),
		BgSurface:     toTcell(bg.BlendLab(fg, 0.08)),
		BgHover:       toTcell(bg.BlendLab(fg, 0.18)),
		BgFocus:       toTcell(bg.BlendLab(focus, 0.35)),
		BgSelection:   toTcell(bg.BlendLab(sel, 0.55)),
		TextPrimary:   toTcell(fg),
		TextMuted:     toTcell(muted),
		Accent:        toTcell(accent),
		BorderDefault: toTcell(fg.BlendLab(bg, 0.6)),
		BorderFocus:   toTcell(focus),
		Error:         toTcell(errc),
	}}
	return t, true
}

func chromaColour(c chroma.Colour, fallback colorful.Color) colorful.Color {
	if !c.IsSet() {
		return fallback
	}
	return colorful.Color{
		R: float64(c.Red()) / 255,
		G: float64(c.Green()) / 255,
		B: float64(c.Blue()) / 255,
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func fromTcell(c tcell.Color) (colorful.Color, bool) {
	if !c.Valid() {
		return colorful.Color{}, false
	}
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}
