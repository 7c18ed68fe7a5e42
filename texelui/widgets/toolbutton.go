// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/toolbutton.go
// Summary: Icon button with an optional label.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelwidgets/texelui/core"
	"github.com/framegrace/texelwidgets/texelui/icons"
	"github.com/framegrace/texelwidgets/texelui/interaction"
	"github.com/framegrace/texelwidgets/texelui/theme"
)

// ToolButton emits Clicked on pointer release over it, or on Enter/Space
// while focused. Pressing it takes key focus.
type ToolButton struct {
	item
	OnEvent interaction.Listener
	// Cursor is requested from the host while the pointer hovers the button.
	Cursor tcell.CursorStyle

	icon  icons.Kind
	ascii bool
}

var toolStyle = theme.StyleConfig{
	Fg:      theme.Accent,
	Bg:      theme.BgSurface,
	HoverBg: theme.BgHover,
	FocusBg: theme.BgFocus,
}

// NewToolButton creates a button sized to its icon and label.
func NewToolButton(x, y int, icon icons.Kind, label string) *ToolButton {
	tb := &ToolButton{item: newItem(toolStyle, 1), ascii: icons.ASCII()}
	tb.text = label
	tb.SetIcon(icon)
	tb.SetPosition(x, y)
	tb.Resize(tb.Width(), 1)
	tb.SetFocusable(true)
	tb.index = -1
	tb.ptr.machine.CaptureKeyFocus = true
	tb.report = tb.handleOutcome
	return tb
}

// SetIcon swaps the glyph shown before the label.
func (tb *ToolButton) SetIcon(k icons.Kind) {
	tb.icon = k
	tb.prefix = k.Glyph(tb.ascii)
	tb.Invalidate()
}

// Icon returns the icon kind.
func (tb *ToolButton) Icon() icons.Kind { return tb.icon }

// SetLabel changes the label text.
func (tb *ToolButton) SetLabel(s string) { tb.setText(s) }

// EnableCursor makes hovering request cs from the host.
func (tb *ToolButton) EnableCursor(cs tcell.CursorStyle) {
	tb.Cursor = cs
	tb.ptr.machine.Cursor = true
}

func (tb *ToolButton) Focusable() bool { return tb.BaseWidget.Focusable() }

func (tb *ToolButton) Focus() {
	tb.BaseWidget.Focus()
	tb.marked = tb.IsFocused()
	tb.Invalidate()
}

func (tb *ToolButton) Blur() {
	tb.BaseWidget.Blur()
	tb.marked = false
	tb.Invalidate()
}

func (tb *ToolButton) handleOutcome(out interaction.Outcome, ev *tcell.EventMouse) {
	applyOutcome(&tb.BaseWidget, tb, out, tb.Cursor)
	if n, ok := tb.note(out, ev); ok {
		tb.emit(n)
	}
}

func (tb *ToolButton) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
		tb.Click()
		return true
	}
	return false
}

// Click emits Clicked as if activated from the keyboard.
func (tb *ToolButton) Click() {
	n := interaction.Notification{Kind: interaction.NoteClicked, Index: -1, Text: tb.text}
	tb.emit(n.Within(tb.ID()))
}

func (tb *ToolButton) emit(n interaction.Notification) {
	if tb.OnEvent != nil {
		tb.OnEvent(n)
	}
}

var _ core.Widget = (*ToolButton)(nil)
