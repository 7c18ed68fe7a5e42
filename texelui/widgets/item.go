// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/item.go
// Summary: Shared clickable label used by breadcrumb, tab, select and tool widgets.
// Usage: Containers embed item in their slot types and receive classified
// outcomes through the report hook.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelwidgets/texelui/animation"
	"github.com/framegrace/texelwidgets/texelui/core"
	"github.com/framegrace/texelwidgets/texelui/interaction"
	"github.com/framegrace/texelwidgets/texelui/theme"
)

// pointer bundles the state machine with the tracker feeding it and the
// tracks it animates.
type pointer struct {
	machine *interaction.Machine
	tracker interaction.Tracker
	tracks  *animation.Tracks
}

func newPointer() pointer {
	tracks := animation.NewTracks(animation.DefaultOptions())
	return pointer{machine: interaction.NewMachine(tracks), tracks: tracks}
}

// feed classifies ev and, when it maps to an interaction event, applies it.
func (p *pointer) feed(ev *tcell.EventMouse, over bool) (interaction.Outcome, bool) {
	cev, ok := p.tracker.Classify(ev, over)
	if !ok {
		return interaction.Outcome{}, false
	}
	return p.machine.Handle(cev), true
}

// reset drops all pointer and animation state without animating.
func (p *pointer) reset() {
	p.machine.Reset()
	p.tracker.Reset()
	p.tracks.Clear()
}

// reportFunc receives every outcome an item produces, together with the
// mouse event behind it.
type reportFunc func(out interaction.Outcome, ev *tcell.EventMouse)

type item struct {
	core.BaseWidget
	text     string
	prefix   string // icon glyph drawn before the text
	index    int
	part     interaction.Part
	inert    bool
	selected bool
	marked   bool // keyboard cursor
	padding  int
	style    theme.StyleConfig

	ptr     pointer
	report  reportFunc
	onWheel func(ev *tcell.EventMouse) bool
}

func newItem(style theme.StyleConfig, padding int) item {
	return item{style: style, padding: padding, ptr: newPointer()}
}

// Text returns the displayed label.
func (it *item) Text() string { return it.text }

// Index returns the logical index the item currently displays.
func (it *item) Index() int { return it.index }

// Inert reports whether the item ignores the pointer.
func (it *item) Inert() bool { return it.inert }

// Selected reports the persistent selection flag.
func (it *item) Selected() bool { return it.selected }

// State returns the interaction state.
func (it *item) State() interaction.State { return it.ptr.machine.State() }

// Amounts returns the current hover and focus animation values.
func (it *item) Amounts() (hover, focus float32) {
	return it.ptr.tracks.Hover(), it.ptr.tracks.Focus()
}

// Width returns the cells needed to show the label with padding.
func (it *item) Width() int {
	w := core.TextWidth(it.text) + 2*it.padding
	if it.prefix != "" {
		w += core.TextWidth(it.prefix)
		if it.text != "" {
			w++
		}
	}
	return w
}

func (it *item) setText(s string) {
	if it.text == s {
		return
	}
	it.text = s
	it.Invalidate()
}

func (it *item) setInert(inert bool) {
	if it.inert == inert {
		return
	}
	it.inert = inert
	if inert {
		it.ptr.reset()
	}
	it.Invalidate()
}

func (it *item) setSelected(sel bool) {
	if it.selected == sel {
		return
	}
	it.selected = sel
	it.ptr.machine.Selected = sel
	if sel {
		it.ptr.tracks.Clear()
	}
	it.Invalidate()
}

func (it *item) HitTest(x, y int) bool {
	return !it.inert && it.Rect.Contains(x, y)
}

func (it *item) Focusable() bool { return false }

func (it *item) HandleMouse(ev *tcell.EventMouse) bool {
	if it.inert {
		return false
	}
	if ev.Buttons()&(tcell.WheelUp|tcell.WheelDown) != 0 {
		if it.onWheel != nil {
			return it.onWheel(ev)
		}
		return false
	}
	x, y := ev.Position()
	out, ok := it.ptr.feed(ev, it.Rect.Contains(x, y))
	if !ok {
		return false
	}
	if it.report != nil {
		it.report(out, ev)
	}
	it.Invalidate()
	return true
}

// Animating implements core.Animator.
func (it *item) Animating() bool { return it.ptr.tracks.Animating() }

func (it *item) currentStyle() tcell.Style {
	th := theme.Get()
	r := theme.Resolve(it.style, th)
	if it.inert {
		return r.Muted(th)
	}
	st := r.At(it.ptr.tracks.Hover(), it.ptr.tracks.Focus(), it.selected)
	if it.marked {
		st = st.Underline(true)
	}
	return st
}

func (it *item) Draw(p *core.Painter) {
	r := it.Rect
	if r.Empty() {
		return
	}
	st := it.currentStyle()
	p.Fill(r, ' ', st)
	x := r.X + it.padding
	limit := r.X + r.W
	if it.prefix != "" && x < limit {
		x += p.DrawTextClipped(x, r.Y, limit-x, it.prefix, st)
		x++
	}
	if x < limit {
		p.DrawTextClipped(x, r.Y, limit-x, it.text, st)
	}
}

// note builds the notification for out, or reports false when out carries
// none.
func (it *item) note(out interaction.Outcome, ev *tcell.EventMouse) (interaction.Notification, bool) {
	if out.Note == interaction.NoteNone {
		return interaction.Notification{}, false
	}
	n := interaction.Notification{
		Kind:  out.Note,
		Index: it.index,
		Text:  it.text,
		Part:  it.part,
		Mouse: ev,
	}
	return n.Within(it.ID()), true
}

// applyOutcome performs the host side effects an outcome asks for.
func applyOutcome(w *core.BaseWidget, target core.Widget, out interaction.Outcome, cursor tcell.CursorStyle) {
	if out.CaptureFocus {
		w.RequestFocus(target)
	}
	if out.ApplyCursor {
		w.SetCursorStyle(cursor)
	}
	if out.RestoreCursor {
		w.SetCursorStyle(tcell.CursorStyleDefault)
	}
}
