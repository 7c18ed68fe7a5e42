// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/tabbar.go
// Summary: Horizontal tab strip with a single persistent selection.

package widgets

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelwidgets/texelui/core"
	"github.com/framegrace/texelwidgets/texelui/crumbs"
	"github.com/framegrace/texelwidgets/texelui/interaction"
	"github.com/framegrace/texelwidgets/texelui/theme"
)

// TabItem is one tab. While selected it ignores hover and press.
type TabItem struct {
	item
}

func (ti *TabItem) Bind(e crumbs.Entry) {
	if ti.text != e.Text {
		ti.ptr.reset()
	}
	ti.index = e.Index
	ti.setText(e.Text)
}

// TabBar lays tabs out left to right. Clicking an unselected tab selects it
// and emits Changed.
type TabBar struct {
	core.BaseWidget
	OnEvent interaction.Listener
	Style   theme.StyleConfig

	labels   []string
	dirty    bool
	pool     *crumbs.Pool[*TabItem]
	tabs     []*TabItem
	selected int
}

var tabStyle = theme.StyleConfig{
	Fg:           theme.TextMuted,
	Bg:           theme.BgSurface,
	HoverBg:      theme.BgHover,
	FocusBg:      theme.BgFocus,
	SelectedFg:   theme.BgBase,
	SelectedBg:   theme.Accent,
	BoldSelected: true,
}

func NewTabBar(x, y, w int, labels []string) *TabBar {
	tb := &TabBar{Style: tabStyle}
	tb.SetPosition(x, y)
	tb.Resize(w, 1)
	tb.SetFocusable(true)
	tb.pool = crumbs.NewPool(func(i int) *TabItem {
		ti := &TabItem{item: newItem(tb.Style, 1)}
		ti.SetID(fmt.Sprintf("tab-%d", i))
		ti.SetHost(tb.Host())
		ti.report = tb.reporter(ti)
		ti.ptr.machine.CaptureKeyFocus = true
		return ti
	})
	tb.SetTabs(labels)
	return tb
}

func (tb *TabBar) SetHost(h core.Host) {
	tb.BaseWidget.SetHost(h)
	for _, ti := range tb.pool.All() {
		ti.SetHost(h)
	}
}

// SetTabs replaces the tab labels. The selection is clamped.
func (tb *TabBar) SetTabs(labels []string) {
	tb.labels = append([]string(nil), labels...)
	tb.dirty = true
	tb.reconcile()
	tb.Invalidate()
}

// Tabs returns the visible tab slots.
func (tb *TabBar) Tabs() []*TabItem {
	tb.reconcile()
	return tb.tabs
}

func (tb *TabBar) reconcile() {
	if !tb.dirty {
		return
	}
	tb.dirty = false
	tb.tabs, _ = crumbs.Apply(tb.pool, tb.labels, crumbs.PolicyNone)
	if tb.selected >= len(tb.tabs) {
		tb.selected = len(tb.tabs) - 1
	}
	if tb.selected < 0 && len(tb.tabs) > 0 {
		tb.selected = 0
	}
	for i, ti := range tb.tabs {
		ti.setSelected(i == tb.selected)
	}
	tb.layout()
}

func (tb *TabBar) layout() {
	x := tb.Rect.X
	for _, ti := range tb.tabs {
		ti.SetPosition(x, tb.Rect.Y)
		ti.Resize(ti.Width(), 1)
		x += ti.Width() + 1
	}
}

// Selected returns the selected tab index, -1 when there are no tabs.
func (tb *TabBar) Selected() int { return tb.selected }

// SetSelected selects index i without emitting a notification.
func (tb *TabBar) SetSelected(i int) {
	tb.reconcile()
	if i < 0 || i >= len(tb.tabs) || i == tb.selected {
		return
	}
	tb.selected = i
	for j, ti := range tb.tabs {
		ti.setSelected(j == i)
	}
	tb.Invalidate()
}

func (tb *TabBar) change(i int, ev *tcell.EventMouse) {
	if i == tb.selected {
		return
	}
	tb.SetSelected(i)
	n := interaction.Notification{
		Kind:  interaction.NoteChanged,
		Index: i,
		Text:  tb.labels[i],
		Mouse: ev,
	}
	tb.emit(n)
}

func (tb *TabBar) reporter(ti *TabItem) reportFunc {
	return func(out interaction.Outcome, ev *tcell.EventMouse) {
		applyOutcome(&tb.BaseWidget, tb, out, tcell.CursorStyleDefault)
		if n, ok := ti.note(out, ev); ok {
			tb.emit(n)
		}
		if out.Note == interaction.NoteClicked {
			tb.change(ti.index, ev)
		}
	}
}

func (tb *TabBar) emit(n interaction.Notification) {
	if tb.OnEvent != nil {
		tb.OnEvent(n.Within(tb.ID()))
	}
}

func (tb *TabBar) Draw(p *core.Painter) {
	tb.reconcile()
	tb.layout()
	p = p.WithClip(tb.Rect)
	p.Fill(tb.Rect, ' ', theme.Resolve(tb.Style, theme.Get()).Base())
	focused := tb.IsFocused()
	for i, ti := range tb.tabs {
		ti.marked = focused && i == tb.selected
		ti.Draw(p)
	}
}

func (tb *TabBar) HandleKey(ev *tcell.EventKey) bool {
	tb.reconcile()
	n := len(tb.tabs)
	if n == 0 {
		return false
	}
	switch ev.Key() {
	case tcell.KeyLeft:
		tb.change((tb.selected-1+n)%n, nil)
	case tcell.KeyRight:
		tb.change((tb.selected+1)%n, nil)
	default:
		return false
	}
	return true
}

func (tb *TabBar) WidgetAt(x, y int) core.Widget {
	if !tb.Rect.Contains(x, y) {
		return nil
	}
	tb.reconcile()
	for _, ti := range tb.tabs {
		if ti.HitTest(x, y) {
			return ti
		}
	}
	return nil
}

func (tb *TabBar) VisitChildren(f func(core.Widget)) {
	tb.reconcile()
	for _, ti := range tb.tabs {
		f(ti)
	}
}

func (tb *TabBar) Animating() bool {
	for _, ti := range tb.tabs {
		if ti.Animating() {
			return true
		}
	}
	return false
}

func (tb *TabBar) Focus() {
	tb.BaseWidget.Focus()
	tb.Invalidate()
}

func (tb *TabBar) Blur() {
	tb.BaseWidget.Blur()
	tb.Invalidate()
}
