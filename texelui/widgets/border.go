// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/border.go
// Summary: Box border with an optional title and a single child.

package widgets

import (
	"github.com/framegrace/texelwidgets/texelui/core"
	"github.com/framegrace/texelwidgets/texelui/theme"
)

// Border draws a border around its Rect and can optionally have a child rendered inside.
type Border struct {
	core.BaseWidget
	Title   string
	Charset [6]rune // h, v, tl, tr, bl, br
	Child   core.Widget
}

func NewBorder(x, y, w, h int) *Border {
	b := &Border{}
	// default rounded charset
	b.Charset = [6]rune{'─', '│', '╭', '╮', '╰', '╯'}
	b.SetPosition(x, y)
	b.Resize(w, h)
	return b
}

func (b *Border) ClientRect() core.Rect {
	r := b.Rect
	if r.W < 2 || r.H < 2 {
		return core.Rect{X: r.X, Y: r.Y, W: 0, H: 0}
	}
	return core.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
}

func (b *Border) SetChild(w core.Widget) {
	b.Child = w
	b.layout()
	if ha, ok := w.(core.HostAware); ok && b.Host() != nil {
		ha.SetHost(b.Host())
	}
}

func (b *Border) SetHost(h core.Host) {
	b.BaseWidget.SetHost(h)
	if ha, ok := b.Child.(core.HostAware); ok {
		ha.SetHost(h)
	}
}

func (b *Border) SetPosition(x, y int) {
	b.BaseWidget.SetPosition(x, y)
	b.layout()
}

func (b *Border) Resize(w, h int) {
	b.BaseWidget.Resize(w, h)
	b.layout()
}

func (b *Border) layout() {
	if b.Child == nil {
		return
	}
	cr := b.ClientRect()
	b.Child.SetPosition(cr.X, cr.Y)
	b.Child.Resize(cr.W, cr.H)
}

// focusWithin reports whether the child subtree holds key focus.
func (b *Border) focusWithin() bool {
	type focusReporter interface{ IsFocused() bool }
	found := false
	var walk func(w core.Widget)
	walk = func(w core.Widget) {
		if found || w == nil {
			return
		}
		if fr, ok := w.(focusReporter); ok && fr.IsFocused() {
			found = true
			return
		}
		if cc, ok := w.(core.ChildContainer); ok {
			cc.VisitChildren(walk)
		}
	}
	walk(b.Child)
	return found
}

func (b *Border) Draw(p *core.Painter) {
	th := theme.Get()
	key := theme.BorderDefault
	if b.focusWithin() {
		key = theme.BorderFocus
	}
	style := theme.Resolve(theme.StyleConfig{Fg: key, Bg: theme.BgBase}, th).Base()
	p.DrawBorder(b.Rect, style, b.Charset)
	if b.Title != "" && b.Rect.W > 4 {
		p.DrawTextClipped(b.Rect.X+2, b.Rect.Y, b.Rect.W-4, " "+b.Title+" ", style)
	}
	if b.Child != nil {
		b.Child.Draw(p.WithClip(b.ClientRect()))
	}
}

func (b *Border) VisitChildren(f func(core.Widget)) {
	if b.Child != nil {
		f(b.Child)
	}
}

func (b *Border) WidgetAt(x, y int) core.Widget {
	if b.Child == nil || !b.ClientRect().Contains(x, y) {
		return nil
	}
	return core.DeepHit(b.Child, x, y)
}
