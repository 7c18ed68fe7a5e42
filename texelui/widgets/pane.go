// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/pane.go
// Summary: Filled background region hosting child widgets.

package widgets

import (
	"github.com/framegrace/texelwidgets/texelui/core"
	"github.com/framegrace/texelwidgets/texelui/theme"
)

// Pane fills its rect with a themed background and draws its children on
// top in insertion order.
type Pane struct {
	core.BaseWidget
	Bg       string // semantic background key
	children []core.Widget
}

func NewPane(x, y, w, h int) *Pane {
	p := &Pane{Bg: theme.BgBase}
	p.SetPosition(x, y)
	p.Resize(w, h)
	return p
}

// Add appends a child. Children keep their own absolute positions.
func (p *Pane) Add(w core.Widget) {
	p.children = append(p.children, w)
	if ha, ok := w.(core.HostAware); ok && p.Host() != nil {
		ha.SetHost(p.Host())
	}
	p.Invalidate()
}

func (p *Pane) SetHost(h core.Host) {
	p.BaseWidget.SetHost(h)
	for _, c := range p.children {
		if ha, ok := c.(core.HostAware); ok {
			ha.SetHost(h)
		}
	}
}

func (p *Pane) Draw(painter *core.Painter) {
	style := theme.Resolve(theme.StyleConfig{Bg: p.Bg}, theme.Get()).Base()
	painter.Fill(p.Rect, ' ', p.EffectiveStyle(style))
	cp := painter.WithClip(p.Rect)
	for _, c := range p.children {
		c.Draw(cp)
	}
}

func (p *Pane) VisitChildren(f func(core.Widget)) {
	for _, c := range p.children {
		f(c)
	}
}

func (p *Pane) WidgetAt(x, y int) core.Widget {
	if !p.Rect.Contains(x, y) {
		return nil
	}
	for i := len(p.children) - 1; i >= 0; i-- {
		if w := core.DeepHit(p.children[i], x, y); w != nil {
			return w
		}
	}
	return nil
}
