// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/checkbox.go
// Summary: Two-state toggle drawn as [x] Label or [ ] Label.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelwidgets/texelui/core"
	"github.com/framegrace/texelwidgets/texelui/interaction"
	"github.com/framegrace/texelwidgets/texelui/theme"
)

// Checkbox flips its state on a completed click, or on Space/Enter while
// focused, and reports Changed with Index 1 when checked and 0 otherwise.
// Hover notes are forwarded unchanged.
type Checkbox struct {
	item
	OnEvent interaction.Listener

	checked bool
}

var checkStyle = theme.StyleConfig{
	Fg:      theme.TextPrimary,
	Bg:      theme.BgSurface,
	HoverBg: theme.BgHover,
	FocusBg: theme.BgFocus,
}

// NewCheckbox creates an unchecked box sized to its label.
func NewCheckbox(x, y int, label string) *Checkbox {
	c := &Checkbox{item: newItem(checkStyle, 0)}
	c.text = label
	c.prefix = boxGlyph(false)
	c.SetPosition(x, y)
	c.Resize(c.Width(), 1)
	c.SetFocusable(true)
	c.ptr.machine.CaptureKeyFocus = true
	c.report = c.handleOutcome
	return c
}

func boxGlyph(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// Checked reports the current state.
func (c *Checkbox) Checked() bool { return c.checked }

// SetChecked changes the state without notifying.
func (c *Checkbox) SetChecked(on bool) {
	if c.checked == on {
		return
	}
	c.checked = on
	c.index = 0
	if on {
		c.index = 1
	}
	c.prefix = boxGlyph(on)
	c.Invalidate()
}

// Toggle flips the state and emits Changed as if from the keyboard.
func (c *Checkbox) Toggle() { c.toggle(nil) }

func (c *Checkbox) toggle(ev *tcell.EventMouse) {
	c.SetChecked(!c.checked)
	n := interaction.Notification{Kind: interaction.NoteChanged, Index: c.index, Text: c.text, Mouse: ev}
	c.emit(n.Within(c.ID()))
}

func (c *Checkbox) Focusable() bool { return c.BaseWidget.Focusable() }

func (c *Checkbox) Focus() {
	c.BaseWidget.Focus()
	c.marked = c.IsFocused()
	c.Invalidate()
}

func (c *Checkbox) Blur() {
	c.BaseWidget.Blur()
	c.marked = false
	c.Invalidate()
}

func (c *Checkbox) handleOutcome(out interaction.Outcome, ev *tcell.EventMouse) {
	applyOutcome(&c.BaseWidget, c, out, 0)
	if out.Note == interaction.NoteClicked {
		c.toggle(ev)
		return
	}
	if n, ok := c.note(out, ev); ok {
		c.emit(n)
	}
}

func (c *Checkbox) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
		c.Toggle()
		return true
	}
	return false
}

func (c *Checkbox) emit(n interaction.Notification) {
	if c.OnEvent != nil {
		c.OnEvent(n)
	}
}

var _ core.Widget = (*Checkbox)(nil)
