// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/collapse.go
// Summary: Collapsible section with an animated body reveal.

package widgets

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelwidgets/texelui/animation"
	"github.com/framegrace/texelwidgets/texelui/core"
	"github.com/framegrace/texelwidgets/texelui/icons"
	"github.com/framegrace/texelwidgets/texelui/interaction"
	"github.com/framegrace/texelwidgets/texelui/theme"
)

// CollapseHeader is the clickable title row of a Collapse.
type CollapseHeader struct {
	item
}

// Collapse shows a header row and, when opened, its body below it. The body
// rows are revealed progressively while the open track tweens. Toggling
// emits Changed with Index 1 when opened and 0 when closed.
type Collapse struct {
	core.BaseWidget
	OnEvent interaction.Listener

	header *CollapseHeader
	body   core.Widget
	opened bool
	ascii  bool
	// bodyH is the body height when fully open.
	bodyH int
}

var collapseStyle = theme.StyleConfig{
	Fg:      theme.TextPrimary,
	Bg:      theme.BgSurface,
	HoverBg: theme.BgHover,
	FocusBg: theme.BgFocus,
	Bold:    true,
}

// NewCollapse creates a closed section of width w whose body is bodyH rows.
func NewCollapse(x, y, w, bodyH int, title string, body core.Widget) *Collapse {
	c := &Collapse{bodyH: bodyH, ascii: icons.ASCII()}
	c.header = &CollapseHeader{item: newItem(collapseStyle, 0)}
	c.header.SetID("header")
	c.header.text = title
	c.header.prefix = icons.ChevronRight.Glyph(c.ascii)
	c.header.report = c.handleOutcome
	c.header.ptr.machine.CaptureKeyFocus = true
	c.SetFocusable(true)
	c.body = body
	c.SetPosition(x, y)
	c.Resize(w, 1+bodyH)
	return c
}

func (c *Collapse) SetHost(h core.Host) {
	c.BaseWidget.SetHost(h)
	c.header.SetHost(h)
	if ha, ok := c.body.(core.HostAware); ok {
		ha.SetHost(h)
	}
}

func (c *Collapse) SetPosition(x, y int) {
	c.BaseWidget.SetPosition(x, y)
	c.layout()
}

func (c *Collapse) Resize(w, h int) {
	if h < 1 {
		h = 1
	}
	c.bodyH = h - 1
	c.BaseWidget.Resize(w, h)
	c.layout()
}

func (c *Collapse) layout() {
	if c.header == nil {
		return
	}
	c.header.SetPosition(c.Rect.X, c.Rect.Y)
	c.header.Resize(c.Rect.W, 1)
	if c.body != nil {
		c.body.SetPosition(c.Rect.X, c.Rect.Y+1)
		c.body.Resize(c.Rect.W, c.bodyH)
	}
}

// Header returns the title row.
func (c *Collapse) Header() *CollapseHeader { return c.header }

// Body returns the body widget.
func (c *Collapse) Body() core.Widget { return c.body }

// Opened reports whether the body is (or is becoming) visible.
func (c *Collapse) Opened() bool { return c.opened }

// SetOpened opens or closes the body without emitting a notification.
func (c *Collapse) SetOpened(open bool) {
	if c.opened == open {
		return
	}
	c.opened = open
	target := float32(0)
	glyph := icons.ChevronRight
	if open {
		target = 1
		glyph = icons.ChevronDown
	}
	c.header.prefix = glyph.Glyph(c.ascii)
	c.header.ptr.tracks.Timeline().AnimateTo(animation.TrackOpen, target, animation.DefaultOptions())
	c.Invalidate()
}

// Toggle flips the body and emits Changed.
func (c *Collapse) Toggle(ev *tcell.EventMouse) {
	c.SetOpened(!c.opened)
	idx := 0
	if c.opened {
		idx = 1
	}
	c.emit(interaction.Notification{Kind: interaction.NoteChanged, Index: idx, Text: c.header.text, Mouse: ev})
}

// Reveal returns the fraction of the body currently shown.
func (c *Collapse) Reveal() float32 {
	return c.header.ptr.tracks.Timeline().Get(animation.TrackOpen)
}

// RevealedRows returns how many body rows are drawn at this instant.
func (c *Collapse) RevealedRows() int {
	return int(math.Ceil(float64(c.Reveal()) * float64(c.bodyH)))
}

// CurrentHeight returns the rows occupied right now: the header plus the
// revealed part of the body.
func (c *Collapse) CurrentHeight() int { return 1 + c.RevealedRows() }

func (c *Collapse) handleOutcome(out interaction.Outcome, ev *tcell.EventMouse) {
	applyOutcome(&c.BaseWidget, c, out, tcell.CursorStyleDefault)
	if n, ok := c.header.note(out, ev); ok {
		c.emit(n)
	}
	if out.Note == interaction.NoteClicked {
		c.Toggle(ev)
	}
}

func (c *Collapse) emit(n interaction.Notification) {
	if c.OnEvent != nil {
		c.OnEvent(n.Within(c.ID()))
	}
}

func (c *Collapse) HandleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEnter, ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
		c.Toggle(nil)
		return true
	case ev.Key() == tcell.KeyRight && !c.opened, ev.Key() == tcell.KeyLeft && c.opened:
		c.Toggle(nil)
		return true
	}
	return false
}

func (c *Collapse) Draw(p *core.Painter) {
	p = p.WithClip(c.Rect)
	c.header.marked = c.IsFocused()
	c.header.Draw(p)
	rows := c.RevealedRows()
	if rows <= 0 || c.body == nil {
		return
	}
	bp := p.WithClip(core.Rect{X: c.Rect.X, Y: c.Rect.Y + 1, W: c.Rect.W, H: rows})
	bp.Fill(bp.Clip(), ' ', theme.Resolve(theme.StyleConfig{Bg: theme.BgBase}, theme.Get()).Base())
	c.body.Draw(bp)
}

// HitTest covers the header and the revealed body rows.
func (c *Collapse) HitTest(x, y int) bool {
	r := c.Rect
	r.H = 1 + c.RevealedRows()
	return r.Contains(x, y)
}

func (c *Collapse) WidgetAt(x, y int) core.Widget {
	if c.header.HitTest(x, y) {
		return c.header
	}
	if c.opened && c.body != nil && c.HitTest(x, y) {
		if w := core.DeepHit(c.body, x, y); w != nil {
			return w
		}
	}
	return nil
}

// VisitChildren skips the body while it is closed so hidden widgets never
// take key focus.
func (c *Collapse) VisitChildren(f func(core.Widget)) {
	f(c.header)
	if c.opened && c.body != nil {
		f(c.body)
	}
}

// Animating implements core.Animator; it covers the reveal and the header
// hover/focus tracks, which share a timeline.
func (c *Collapse) Animating() bool { return c.header.Animating() }

func (c *Collapse) Focus() {
	c.BaseWidget.Focus()
	c.Invalidate()
}

func (c *Collapse) Blur() {
	c.BaseWidget.Blur()
	c.Invalidate()
}
