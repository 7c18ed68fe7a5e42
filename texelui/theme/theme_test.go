// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPalettesDefineEveryKey(t *testing.T) {
	for _, name := range Names() {
		th, err := Palette(name)
		require.NoError(t, err, name)
		for _, key := range Keys {
			require.NotEqual(t, tcell.ColorDefault, th.Color(key), "%s/%s", name, key)
		}
	}
}

func TestPaletteFromChromaStyle(t *testing.T) {
	th, err := Palette("monokai")
	require.NoError(t, err)
	require.Equal(t, "monokai", th.Name)
	for _, key := range Keys {
		require.NotEqual(t, tcell.ColorDefault, th.Color(key), key)
	}
}

func TestUnknownPalette(t *testing.T) {
	_, err := Palette("no-such-palette")
	require.True(t, errors.Is(err, ErrUnknownPalette))
}

func TestResolveIsPure(t *testing.T) {
	th, err := Palette("mocha")
	require.NoError(t, err)
	cfg := StyleConfig{Fg: Accent, Bold: true}

	a := Resolve(cfg, th)
	b := Resolve(cfg, th)
	require.Equal(t, a, b)
	require.Equal(t, th.Color(Accent), a.Fg)
	require.Equal(t, th.Color(BgSurface), a.Bg)
	require.Equal(t, th.Color(BgSelection), a.SelectedBg)
}

func TestStyleAtBlendsAndSelectedWins(t *testing.T) {
	th, err := Palette("mocha")
	require.NoError(t, err)
	r := Resolve(StyleConfig{}, th)

	_, bg, _ := r.At(0, 0, false).Decompose()
	require.Equal(t, r.Bg, bg)

	_, bg, _ = r.At(1, 0, false).Decompose()
	require.Equal(t, r.HoverBg, bg)

	_, bg, _ = r.At(0, 1, false).Decompose()
	require.Equal(t, r.FocusBg, bg)

	_, mid, _ := r.At(0.5, 0, false).Decompose()
	require.NotEqual(t, r.Bg, mid)
	require.NotEqual(t, r.HoverBg, mid)

	fg, bg, _ := r.At(1, 1, true).Decompose()
	require.Equal(t, r.SelectedFg, fg)
	require.Equal(t, r.SelectedBg, bg)
}

func TestOverridesParseAndApply(t *testing.T) {
	o, err := ParseOverrides([]byte("palette: latte\ncolors:\n  accent: \"#ff0000\"\n"))
	require.NoError(t, err)

	base, err := Palette("mocha")
	require.NoError(t, err)
	th, err := o.Apply(base)
	require.NoError(t, err)
	require.Equal(t, "latte", th.Name)
	require.Equal(t, "#ff0000", th.Hex(Accent))

	latte, err := Palette("latte")
	require.NoError(t, err)
	require.Equal(t, latte.Color(BgBase), th.Color(BgBase))
}

func TestOverridesRejectBadInput(t *testing.T) {
	cases := map[string]string{
		"bad hex":     "colors:\n  accent: \"red\"\n",
		"unknown key": "colors:\n  sparkle: \"#ffffff\"\n",
		"bad palette": "palette: nope-nope\n",
		"bad yaml":    "colors: [\n",
		"alpha short": "colors:\n  accent: \"#fff8\"\n",
		"alpha long":  "colors:\n  accent: \"#ff000080\"\n",
	}
	for name, doc := range cases {
		_, err := ParseOverrides([]byte(doc))
		require.Error(t, err, name)
	}
}

// Whatever passes validation must also apply.
func TestValidOverridesAlwaysApply(t *testing.T) {
	for _, hex := range []string{"#ffd700", "#FFD700", "#fd0"} {
		o, err := ParseOverrides([]byte("colors:\n  accent: \"" + hex + "\"\n"))
		require.NoError(t, err, hex)
		_, err = o.Apply(Theme{})
		require.NoError(t, err, hex)
	}
}

func TestLoadBuiltinOverrides(t *testing.T) {
	o, err := LoadOverrides("builtin:high-contrast")
	require.NoError(t, err)
	require.Equal(t, "mocha", o.Palette)
	require.Equal(t, "#ffd700", o.Colors[Accent])
}
