// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/select.go
// Summary: Vertical single-selection list backed by pooled rows.

package widgets

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelwidgets/texelui/core"
	"github.com/framegrace/texelwidgets/texelui/crumbs"
	"github.com/framegrace/texelwidgets/texelui/icons"
	"github.com/framegrace/texelwidgets/texelui/interaction"
	"github.com/framegrace/texelwidgets/texelui/theme"
)

// Option is one entry of a Select.
type Option struct {
	Text string
	Icon icons.Kind
	// NoIcon hides the icon column for this option.
	NoIcon bool
}

// SelectItem is a visible row. Rows are reused as the list scrolls.
type SelectItem struct {
	item
	ascii bool
}

func (si *SelectItem) bind(opt Option, index int, selected bool) {
	if si.index != index || si.text != opt.Text {
		si.ptr.reset()
	}
	si.index = index
	if opt.NoIcon {
		si.prefix = ""
	} else {
		si.prefix = opt.Icon.Glyph(si.ascii)
	}
	si.setText(opt.Text)
	si.setSelected(selected)
}

// Select shows options one per row. At most one option is selected; a click
// on an unselected row selects it and emits Changed. Enter on the selected
// row emits Clicked.
type Select struct {
	core.BaseWidget
	OnEvent interaction.Listener
	Style   theme.StyleConfig

	options  []Option
	selected int
	offset   int
	pool     *crumbs.Pool[*SelectItem]
	rows     []*SelectItem
}

var selectStyle = theme.StyleConfig{
	Fg:         theme.TextPrimary,
	Bg:         theme.BgBase,
	HoverBg:    theme.BgHover,
	FocusBg:    theme.BgFocus,
	SelectedFg: theme.TextPrimary,
	SelectedBg: theme.BgSelection,
}

func NewSelect(x, y, w, h int) *Select {
	s := &Select{Style: selectStyle, selected: -1}
	s.SetPosition(x, y)
	s.SetFocusable(true)
	ascii := icons.ASCII()
	s.pool = crumbs.NewPool(func(i int) *SelectItem {
		si := &SelectItem{item: newItem(s.Style, 1), ascii: ascii}
		si.SetID(fmt.Sprintf("row-%d", i))
		si.SetHost(s.Host())
		si.report = s.reporter(si)
		si.onWheel = s.wheel
		si.ptr.machine.CaptureKeyFocus = true
		return si
	})
	s.Resize(w, h)
	return s
}

func (s *Select) SetHost(h core.Host) {
	s.BaseWidget.SetHost(h)
	for _, si := range s.pool.All() {
		si.SetHost(h)
	}
}

func (s *Select) Resize(w, h int) {
	s.BaseWidget.Resize(w, h)
	s.sync()
}

func (s *Select) SetPosition(x, y int) {
	s.BaseWidget.SetPosition(x, y)
	if s.pool != nil {
		s.sync()
	}
}

// SetItems replaces the options and clears the selection.
func (s *Select) SetItems(opts []Option) {
	s.options = append([]Option(nil), opts...)
	s.selected = -1
	s.offset = 0
	s.sync()
	s.Invalidate()
}

// Items returns a copy of the options.
func (s *Select) Items() []Option { return append([]Option(nil), s.options...) }

// Rows returns the visible rows.
func (s *Select) Rows() []*SelectItem { return s.rows }

// Selected returns the selected option index or -1.
func (s *Select) Selected() int { return s.selected }

// SelectedOption returns the selected option.
func (s *Select) SelectedOption() (Option, bool) {
	if s.selected < 0 || s.selected >= len(s.options) {
		return Option{}, false
	}
	return s.options[s.selected], true
}

// SetSelected selects option i (-1 clears) without emitting a notification.
func (s *Select) SetSelected(i int) {
	if i < -1 || i >= len(s.options) {
		return
	}
	s.selected = i
	s.scrollTo(i)
	s.sync()
	s.Invalidate()
}

func (s *Select) scrollTo(i int) {
	_, h := s.Size()
	if i < 0 || h <= 0 {
		return
	}
	if i < s.offset {
		s.offset = i
	}
	if i >= s.offset+h {
		s.offset = i - h + 1
	}
}

func (s *Select) clampOffset() {
	_, h := s.Size()
	maxOff := len(s.options) - h
	if maxOff < 0 {
		maxOff = 0
	}
	s.offset = min(max(s.offset, 0), maxOff)
}

// sync binds the pooled rows to the options in view.
func (s *Select) sync() {
	s.clampOffset()
	w, h := s.Size()
	n := min(h, len(s.options)-s.offset)
	if n < 0 {
		n = 0
	}
	s.rows = s.pool.Sync(n)
	for row, si := range s.rows {
		idx := s.offset + row
		si.bind(s.options[idx], idx, idx == s.selected)
		si.SetPosition(s.Rect.X, s.Rect.Y+row)
		si.Resize(w, 1)
	}
}

func (s *Select) change(i int, ev *tcell.EventMouse) {
	if i == s.selected || i < 0 || i >= len(s.options) {
		return
	}
	s.SetSelected(i)
	s.emit(interaction.Notification{
		Kind:  interaction.NoteChanged,
		Index: i,
		Text:  s.options[i].Text,
		Mouse: ev,
	})
}

func (s *Select) reporter(si *SelectItem) reportFunc {
	return func(out interaction.Outcome, ev *tcell.EventMouse) {
		applyOutcome(&s.BaseWidget, s, out, tcell.CursorStyleDefault)
		if n, ok := si.note(out, ev); ok {
			s.emit(n)
		}
		if out.Note == interaction.NoteClicked {
			s.change(si.index, ev)
		}
	}
}

func (s *Select) wheel(ev *tcell.EventMouse) bool {
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		s.offset--
	case ev.Buttons()&tcell.WheelDown != 0:
		s.offset++
	default:
		return false
	}
	s.sync()
	s.Invalidate()
	return true
}

func (s *Select) HandleMouse(ev *tcell.EventMouse) bool {
	return s.wheel(ev)
}

func (s *Select) HandleKey(ev *tcell.EventKey) bool {
	if len(s.options) == 0 {
		return false
	}
	_, h := s.Size()
	switch ev.Key() {
	case tcell.KeyUp:
		s.change(max(s.selected-1, 0), nil)
	case tcell.KeyDown:
		s.change(min(s.selected+1, len(s.options)-1), nil)
	case tcell.KeyPgUp:
		s.change(max(s.selected-h, 0), nil)
	case tcell.KeyPgDn:
		s.change(min(s.selected+h, len(s.options)-1), nil)
	case tcell.KeyHome:
		s.change(0, nil)
	case tcell.KeyEnd:
		s.change(len(s.options)-1, nil)
	case tcell.KeyEnter:
		opt, ok := s.SelectedOption()
		if !ok {
			return false
		}
		s.emit(interaction.Notification{Kind: interaction.NoteClicked, Index: s.selected, Text: opt.Text})
	default:
		return false
	}
	return true
}

func (s *Select) emit(n interaction.Notification) {
	if s.OnEvent != nil {
		s.OnEvent(n.Within(s.ID()))
	}
}

func (s *Select) Draw(p *core.Painter) {
	p = p.WithClip(s.Rect)
	p.Fill(s.Rect, ' ', theme.Resolve(s.Style, theme.Get()).Base())
	focused := s.IsFocused()
	for _, si := range s.rows {
		si.marked = focused && si.index == s.selected
		si.Draw(p)
	}
}

func (s *Select) WidgetAt(x, y int) core.Widget {
	if !s.Rect.Contains(x, y) {
		return nil
	}
	for _, si := range s.rows {
		if si.HitTest(x, y) {
			return si
		}
	}
	return nil
}

func (s *Select) VisitChildren(f func(core.Widget)) {
	for _, si := range s.rows {
		f(si)
	}
}

func (s *Select) Animating() bool {
	for _, si := range s.rows {
		if si.Animating() {
			return true
		}
	}
	return false
}

func (s *Select) Focus() {
	s.BaseWidget.Focus()
	if s.selected < 0 && len(s.options) > 0 {
		s.SetSelected(0)
	}
	s.Invalidate()
}

func (s *Select) Blur() {
	s.BaseWidget.Blur()
	s.Invalidate()
}
