// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/label.go
// Summary: Static single-line text.

package widgets

import (
	"github.com/framegrace/texelwidgets/texelui/core"
	"github.com/framegrace/texelwidgets/texelui/theme"
)

// Align controls horizontal placement of label text.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Label draws one line of text, clipped to its width.
type Label struct {
	core.BaseWidget
	Style theme.StyleConfig
	Align Align
	Muted bool
	text  string
}

func NewLabel(x, y, w int, text string) *Label {
	l := &Label{Style: theme.StyleConfig{Bg: theme.BgBase}, text: text}
	l.SetPosition(x, y)
	l.Resize(w, 1)
	return l
}

func (l *Label) Text() string { return l.text }

func (l *Label) SetText(s string) {
	if l.text == s {
		return
	}
	l.text = s
	l.Invalidate()
}

func (l *Label) Draw(p *core.Painter) {
	r := l.Rect
	if r.Empty() {
		return
	}
	th := theme.Get()
	res := theme.Resolve(l.Style, th)
	st := res.Base()
	if l.Muted {
		st = res.Muted(th)
	}
	p.Fill(r, ' ', st)
	x := r.X
	switch tw := core.TextWidth(l.text); l.Align {
	case AlignCenter:
		x += max(0, (r.W-tw)/2)
	case AlignRight:
		x += max(0, r.W-tw)
	}
	p.DrawTextClipped(x, r.Y+r.H/2, r.X+r.W-x, l.text, st)
}
