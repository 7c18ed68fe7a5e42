// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/snapshot/snapshot.go
// Summary: Renders a UIManager cell buffer to printable text.
// Usage: `texelwidgets snapshot` prints a frame without taking over the
// terminal; tests use Plain output to compare rows.

package snapshot

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelwidgets/texelui/core"
)

// Options controls rendering.
type Options struct {
	// Plain drops all styling.
	Plain bool
	// TrimRight strips trailing blanks from each row.
	TrimRight bool
	// Renderer overrides the lipgloss renderer (and so the colour profile).
	Renderer *lipgloss.Renderer
}

// Render joins buf into newline separated rows. Adjacent cells that share
// a style are emitted as one styled run. Zero cells are continuation
// columns of wide runes and are skipped.
func Render(buf [][]core.Cell, opts Options) string {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	rows := make([]string, 0, len(buf))
	for _, line := range buf {
		var (
			sb    strings.Builder
			run   strings.Builder
			style tcell.Style
			open  bool
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if opts.Plain {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(toLipgloss(r, style).Render(run.String()))
			}
			run.Reset()
		}
		for _, c := range line {
			if c.Ch == 0 {
				continue
			}
			if open && c.Style != style {
				flush()
			}
			style, open = c.Style, true
			run.WriteRune(c.Ch)
		}
		flush()
		row := sb.String()
		if opts.TrimRight {
			row = strings.TrimRight(row, " ")
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

// Text is Render with Plain and TrimRight set.
func Text(buf [][]core.Cell) string {
	return Render(buf, Options{Plain: true, TrimRight: true})
}

func toLipgloss(r *lipgloss.Renderer, st tcell.Style) lipgloss.Style {
	fg, bg, attr := st.Decompose()
	ls := r.NewStyle()
	if c, ok := colour(fg); ok {
		ls = ls.Foreground(c)
	}
	if c, ok := colour(bg); ok {
		ls = ls.Background(c)
	}
	return ls.
		Bold(attr&tcell.AttrBold != 0).
		Italic(attr&tcell.AttrItalic != 0).
		Underline(attr&tcell.AttrUnderline != 0).
		Reverse(attr&tcell.AttrReverse != 0).
		Faint(attr&tcell.AttrDim != 0)
}

func colour(c tcell.Color) (lipgloss.Color, bool) {
	if c == tcell.ColorDefault {
		return "", false
	}
	hex := c.Hex()
	if hex < 0 {
		return "", false
	}
	return lipgloss.Color(fmt.Sprintf("#%06x", hex)), true
}
