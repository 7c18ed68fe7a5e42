// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package snapshot

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/texelwidgets/texelui/core"
)

func row(s string, st tcell.Style) []core.Cell {
	out := make([]core.Cell, 0, len(s))
	for _, r := range s {
		out = append(out, core.Cell{Ch: r, Style: st})
	}
	return out
}

func TestTextTrimsAndSkipsContinuationCells(t *testing.T) {
	wide := []core.Cell{{Ch: '界'}, {Ch: 0}, {Ch: 'x'}, {Ch: ' '}, {Ch: ' '}}
	buf := [][]core.Cell{row("ab  ", tcell.StyleDefault), wide}
	require.Equal(t, "ab\n界x", Text(buf))
}

func TestStyledRunsKeepText(t *testing.T) {
	red := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0)).Bold(true)
	line := append(row("hi", red), row(" there", tcell.StyleDefault)...)
	out := Render([][]core.Cell{line}, Options{})
	require.Contains(t, out, "hi")
	require.Contains(t, out, " there")
	require.Equal(t, "hi there", Render([][]core.Cell{line}, Options{Plain: true}))
}

func TestColourMapping(t *testing.T) {
	c, ok := colour(tcell.NewRGBColor(0x12, 0x34, 0x56))
	require.True(t, ok)
	require.Equal(t, "#123456", strings.ToLower(string(c)))
	_, ok = colour(tcell.ColorDefault)
	require.False(t, ok)
}
