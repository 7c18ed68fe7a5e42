// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package icons

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/texelwidgets/texelui/core"
)

func TestEveryKindHasNameAndGlyphs(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range All() {
		name := k.String()
		require.NotEmpty(t, name)
		require.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
		require.NotEmpty(t, k.Glyph(false), name)
		require.NotEmpty(t, k.Glyph(true), name)
		for _, r := range k.Glyph(true) {
			require.Less(t, r, rune(128), "%s ascii glyph is not ascii", name)
		}

		parsed, err := ParseKind(name)
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}
	require.Len(t, Names(), len(All()))
}

func TestParseKindNormalisesAndRejects(t *testing.T) {
	k, err := ParseKind(" Chevron_Right ")
	require.NoError(t, err)
	require.Equal(t, ChevronRight, k)

	_, err = ParseKind("unicorn")
	require.True(t, errors.Is(err, ErrUnknownIcon))
}

func TestForPath(t *testing.T) {
	cases := map[string]Kind{
		"main.go":        FileCode,
		"script.py":      FileCode,
		"settings.yaml":  Config,
		"package.json":   Config,
		"README.md":      FileText,
		"blob.zzunknown": File,
	}
	for name, want := range cases {
		require.Equal(t, want, ForPath(name, false), name)
	}
	require.Equal(t, Folder, ForPath("src", true))
}

func TestIconFixedSize(t *testing.T) {
	ic := NewIcon(0, 0, Ellipsis, tcell.StyleDefault)
	ic.ASCII = true

	require.True(t, errors.Is(ic.SetFixedSize(2, 1), ErrFixedDimension))
	require.NoError(t, ic.SetFixedSize(5, 1))

	w, h := ic.Size()
	require.Equal(t, 5, w)
	require.Equal(t, 1, h)

	ic.Resize(9, 3)
	w, h = ic.Size()
	require.Equal(t, 5, w)
	require.Equal(t, 1, h)

	require.True(t, errors.Is(ic.SetSize(6, 1), ErrFixedDimension))
	require.NoError(t, ic.SetSize(5, 1))
}

func TestIconDraws(t *testing.T) {
	buf := make([][]core.Cell, 1)
	buf[0] = make([]core.Cell, 4)
	ic := NewIcon(1, 0, Plus, tcell.StyleDefault)
	ic.ASCII = true
	ic.Resize(ic.NaturalWidth(), 1)
	ic.Draw(core.NewPainter(buf, core.Rect{X: 0, Y: 0, W: 4, H: 1}))
	require.Equal(t, '+', buf[0][1].Ch)
}
