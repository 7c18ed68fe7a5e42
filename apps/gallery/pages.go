// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/gallery/pages.go
// Summary: Page containers used by the gallery: a tab deck, a vertical
// stack of collapsible sections and the icon listing.

package gallery

import (
	"github.com/framegrace/texelwidgets/texelui/core"
	"github.com/framegrace/texelwidgets/texelui/icons"
	"github.com/framegrace/texelwidgets/texelui/theme"
	"github.com/framegrace/texelwidgets/texelui/widgets"
)

// deck shows one of several pages, all sharing its rect.
type deck struct {
	core.BaseWidget
	pages  []core.Widget
	active int
}

func newDeck(pages ...core.Widget) *deck {
	return &deck{pages: pages}
}

func (d *deck) SetHost(h core.Host) {
	d.BaseWidget.SetHost(h)
	for _, p := range d.pages {
		if ha, ok := p.(core.HostAware); ok {
			ha.SetHost(h)
		}
	}
}

func (d *deck) SetPosition(x, y int) {
	d.BaseWidget.SetPosition(x, y)
	for _, p := range d.pages {
		p.SetPosition(x, y)
	}
}

func (d *deck) Resize(w, h int) {
	d.BaseWidget.Resize(w, h)
	for _, p := range d.pages {
		p.Resize(w, h)
	}
}

func (d *deck) current() core.Widget {
	if d.active < 0 || d.active >= len(d.pages) {
		return nil
	}
	return d.pages[d.active]
}

func (d *deck) show(i int) {
	if i < 0 || i >= len(d.pages) || i == d.active {
		return
	}
	d.active = i
	d.Invalidate()
}

func (d *deck) Draw(p *core.Painter) {
	if w := d.current(); w != nil {
		w.Draw(p.WithClip(d.Rect))
	}
}

func (d *deck) VisitChildren(f func(core.Widget)) {
	if w := d.current(); w != nil {
		f(w)
	}
}

func (d *deck) WidgetAt(x, y int) core.Widget {
	if !d.Rect.Contains(x, y) {
		return nil
	}
	return core.DeepHit(d.current(), x, y)
}

func (d *deck) Animating() bool {
	a, ok := d.current().(core.Animator)
	return ok && a.Animating()
}

// stack places collapsible sections top to bottom. Positions follow each
// section's current height, so an opening section pushes the ones below
// it down frame by frame.
type stack struct {
	core.BaseWidget
	sections []*widgets.Collapse
	rows     []int
}

func (s *stack) add(c *widgets.Collapse, bodyRows int) {
	s.sections = append(s.sections, c)
	s.rows = append(s.rows, bodyRows)
	if h := s.Host(); h != nil {
		c.SetHost(h)
	}
}

func (s *stack) SetHost(h core.Host) {
	s.BaseWidget.SetHost(h)
	for _, c := range s.sections {
		c.SetHost(h)
	}
}

func (s *stack) layout() {
	y := s.Rect.Y
	for i, c := range s.sections {
		c.Resize(s.Rect.W, 1+s.rows[i])
		c.SetPosition(s.Rect.X, y)
		y += c.CurrentHeight()
	}
}

// ContentHeight is the rows the sections occupy right now.
func (s *stack) ContentHeight() int {
	h := 0
	for _, c := range s.sections {
		h += c.CurrentHeight()
	}
	return h
}

func (s *stack) Draw(p *core.Painter) {
	s.layout()
	p = p.WithClip(s.Rect)
	p.Fill(s.Rect, ' ', theme.Resolve(theme.StyleConfig{Bg: theme.BgBase}, theme.Get()).Base())
	for _, c := range s.sections {
		c.Draw(p)
	}
}

func (s *stack) WidgetAt(x, y int) core.Widget {
	if !s.Rect.Contains(x, y) {
		return nil
	}
	s.layout()
	for _, c := range s.sections {
		if w := core.DeepHit(c, x, y); w != nil {
			return w
		}
	}
	return nil
}

func (s *stack) VisitChildren(f func(core.Widget)) {
	for _, c := range s.sections {
		f(c)
	}
}

func (s *stack) Animating() bool {
	for _, c := range s.sections {
		if c.Animating() {
			return true
		}
	}
	return false
}

// iconList is a collapse body: one icon and its name per row.
type iconList struct {
	core.BaseWidget
	cells []*icons.Icon
}

// glyphColumn fits the widest ASCII fallback.
const glyphColumn = 3

func newIconList(kinds []icons.Kind) *iconList {
	l := &iconList{}
	st := theme.Resolve(theme.StyleConfig{Fg: theme.Accent, Bg: theme.BgBase}, theme.Get()).Base()
	for _, k := range kinds {
		ic := icons.NewIcon(0, 0, k, st)
		if err := ic.SetFixedSize(max(glyphColumn, ic.NaturalWidth()), 1); err != nil {
			continue
		}
		l.cells = append(l.cells, ic)
	}
	return l
}

func (l *iconList) Draw(p *core.Painter) {
	th := theme.Get()
	res := theme.Resolve(theme.StyleConfig{Fg: theme.TextPrimary, Bg: theme.BgBase}, th)
	for row, ic := range l.cells {
		y := l.Rect.Y + row
		ic.SetPosition(l.Rect.X+2, y)
		ic.Draw(p)
		w, _ := ic.FixedSize()
		name := ic.Kind.String()
		p.DrawTextClipped(l.Rect.X+3+w, y, l.Rect.W-3-w, name, res.Base())
	}
}

// iconGroups is the Icons page layout.
var iconGroups = []struct {
	title string
	kinds []icons.Kind
}{
	{"Navigation", []icons.Kind{icons.Home, icons.ChevronRight, icons.ChevronDown, icons.ArrowLeft, icons.ArrowRight}},
	{"Files", []icons.Kind{icons.Folder, icons.File, icons.FileCode, icons.FileText, icons.Config}},
	{"Actions", []icons.Kind{icons.Close, icons.Plus, icons.Minus, icons.Search, icons.Refresh, icons.Settings, icons.Check, icons.Trash}},
	{"Marks", []icons.Kind{icons.Dot, icons.Ellipsis, icons.Star}},
}
