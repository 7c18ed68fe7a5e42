// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelwidgets/texelui/core"
)

type miniWidget struct {
	core.BaseWidget
	toggled bool
	mouse   []*tcell.EventMouse
	keys    int
	grab    core.Widget
	anim    bool
}

func newMini(x, y, w, h int, focusable bool) *miniWidget {
	m := &miniWidget{}
	m.SetPosition(x, y)
	m.Resize(w, h)
	m.SetFocusable(focusable)
	return m
}

func (m *miniWidget) Draw(p *core.Painter) {
	ch := 'X'
	if m.toggled {
		ch = 'Y'
	}
	p.Fill(m.Rect, ch, tcell.StyleDefault)
}

func (m *miniWidget) HandleMouse(ev *tcell.EventMouse) bool {
	m.mouse = append(m.mouse, ev)
	if m.grab != nil && ev.Buttons()&tcell.Button1 != 0 {
		m.RequestFocus(m.grab)
	}
	return true
}

func (m *miniWidget) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return false
	}
	m.keys++
	return true
}

func (m *miniWidget) Animating() bool { return m.anim }

type box struct {
	core.BaseWidget
	kids []core.Widget
}

func (b *box) Draw(p *core.Painter) {
	for _, k := range b.kids {
		k.Draw(p)
	}
}

func (b *box) VisitChildren(f func(core.Widget)) {
	for _, k := range b.kids {
		f(k)
	}
}

func (b *box) WidgetAt(x, y int) core.Widget {
	for _, k := range b.kids {
		if w := core.DeepHit(k, x, y); w != nil {
			return w
		}
	}
	return nil
}

func TestUIManagerRendersBuffer(t *testing.T) {
	ui := core.NewUIManager()
	ui.Resize(20, 5)
	ui.AddWidget(newMini(2, 1, 3, 2, false))

	buf := ui.Render()
	if len(buf) != 5 || len(buf[0]) != 20 {
		t.Fatalf("unexpected buffer size %dx%d", len(buf[0]), len(buf))
	}
	if buf[1][2].Ch != 'X' || buf[2][4].Ch != 'X' || buf[0][0].Ch != ' ' {
		t.Fatalf("widget not composed where expected")
	}
}

// Only invalidated clips are redrawn.
func TestUIManagerDirtyClipsRestrictDraw(t *testing.T) {
	ui := core.NewUIManager()
	ui.Resize(10, 4)
	a := newMini(0, 0, 2, 1, false)
	b := newMini(5, 0, 2, 1, false)
	ui.AddWidget(a)
	ui.AddWidget(b)
	ui.Render()

	a.toggled, b.toggled = true, true
	ui.Invalidate(a.Rect)
	buf := ui.Render()
	if buf[0][0].Ch != 'Y' {
		t.Fatalf("expected dirty widget redrawn, got %q", string(buf[0][0].Ch))
	}
	if buf[0][5].Ch != 'X' {
		t.Fatalf("expected clean widget untouched, got %q", string(buf[0][5].Ch))
	}
}

// If a widget consumes keys but doesn't invalidate, UIManager falls back to full redraw.
func TestUIManagerKeyFallbackRedraw(t *testing.T) {
	ui := core.NewUIManager()
	ui.Resize(6, 3)
	mw := newMini(1, 1, 1, 1, true)
	ui.AddWidget(mw)

	buf := ui.Render()
	if got := buf[1][1].Ch; got != 'X' {
		t.Fatalf("expected 'X', got %q", string(got))
	}

	ui.Focus(mw)
	mw.toggled = true
	ui.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'z', 0))
	buf = ui.Render()
	if got := buf[1][1].Ch; got != 'Y' {
		t.Fatalf("expected 'Y' after fallback redraw, got %q", string(got))
	}
	if mw.keys != 1 {
		t.Fatalf("expected key delivered once, got %d", mw.keys)
	}
}

func TestClickFocusesDeepestFocusable(t *testing.T) {
	ui := core.NewUIManager()
	ui.Resize(10, 4)
	inner := newMini(1, 1, 3, 1, true)
	outer := &box{kids: []core.Widget{inner}}
	outer.Resize(10, 4)
	ui.AddWidget(outer)

	ui.HandleMouse(tcell.NewEventMouse(2, 1, tcell.Button1, 0))
	if ui.Focused() != inner {
		t.Fatalf("expected inner widget focused")
	}
	ui.HandleMouse(tcell.NewEventMouse(2, 1, tcell.ButtonNone, 0))
	if len(inner.mouse) != 2 {
		t.Fatalf("expected press and release delivered, got %d", len(inner.mouse))
	}
}

func TestHoverLeaveIsDelivered(t *testing.T) {
	ui := core.NewUIManager()
	ui.Resize(10, 1)
	a := newMini(0, 0, 3, 1, false)
	b := newMini(5, 0, 3, 1, false)
	ui.AddWidget(a)
	ui.AddWidget(b)

	ui.HandleMouse(tcell.NewEventMouse(1, 0, tcell.ButtonNone, 0))
	ui.HandleMouse(tcell.NewEventMouse(6, 0, tcell.ButtonNone, 0))
	if len(a.mouse) != 2 {
		t.Fatalf("expected enter and leave motion on a, got %d", len(a.mouse))
	}
	if x, _ := a.mouse[1].Position(); x != 6 {
		t.Fatalf("leave event should carry the new position, got x=%d", x)
	}
	if len(b.mouse) != 1 {
		t.Fatalf("expected one motion on b, got %d", len(b.mouse))
	}
}

func TestRequestFocusAppliesAfterDispatch(t *testing.T) {
	ui := core.NewUIManager()
	ui.Resize(10, 2)
	target := newMini(0, 1, 3, 1, true)
	clicker := newMini(0, 0, 3, 1, false)
	clicker.grab = target
	ui.AddWidget(target)
	ui.AddWidget(clicker)

	ui.HandleMouse(tcell.NewEventMouse(1, 0, tcell.Button1, 0))
	if ui.Focused() != target {
		t.Fatalf("expected requested focus to be applied")
	}
}

func TestTabCyclesNestedFocusables(t *testing.T) {
	ui := core.NewUIManager()
	ui.Resize(10, 3)
	a := newMini(0, 0, 1, 1, true)
	b := newMini(0, 1, 1, 1, true)
	ui.AddWidget(&box{kids: []core.Widget{a, b}})

	tab := tcell.NewEventKey(tcell.KeyTab, 0, 0)
	ui.HandleKey(tab)
	if ui.Focused() != a {
		t.Fatalf("first tab should focus a")
	}
	ui.HandleKey(tcell.NewEventKey(tcell.KeyBacktab, 0, 0))
	if ui.Focused() != b {
		t.Fatalf("backtab should wrap to b")
	}
}

func TestAnimatingAndCursor(t *testing.T) {
	ui := core.NewUIManager()
	ui.Resize(4, 1)
	m := newMini(0, 0, 1, 1, false)
	ui.AddWidget(&box{kids: []core.Widget{m}})
	if ui.Animating() {
		t.Fatalf("nothing should be animating")
	}
	m.anim = true
	if !ui.Animating() {
		t.Fatalf("nested animator not detected")
	}

	m.SetCursorStyle(tcell.CursorStyleSteadyBar)
	if ui.CursorStyle() != tcell.CursorStyleSteadyBar {
		t.Fatalf("cursor request not recorded")
	}
}

type wheelBox struct {
	box
	wheels int
}

func (w *wheelBox) HandleMouse(ev *tcell.EventMouse) bool {
	if ev.Buttons()&(tcell.WheelUp|tcell.WheelDown) == 0 {
		return false
	}
	w.wheels++
	return true
}

type deaf struct{ core.BaseWidget }

func (deaf) Draw(*core.Painter) {}

// Wheel events nobody under the pointer consumes reach the enclosing container.
func TestWheelBubblesToContainer(t *testing.T) {
	ui := core.NewUIManager()
	ui.Resize(10, 4)
	leaf := &deaf{}
	leaf.SetPosition(1, 1)
	leaf.Resize(3, 1)
	outer := &wheelBox{box: box{kids: []core.Widget{leaf}}}
	outer.Resize(10, 4)
	ui.AddWidget(outer)

	if !ui.HandleMouse(tcell.NewEventMouse(2, 1, tcell.WheelDown, 0)) {
		t.Fatalf("wheel should be consumed")
	}
	if outer.wheels != 1 {
		t.Fatalf("expected container to get the wheel, got %d", outer.wheels)
	}

	mini := newMini(5, 2, 2, 1, false)
	outer.kids = append(outer.kids, mini)
	ui.HandleMouse(tcell.NewEventMouse(5, 2, tcell.WheelUp, 0))
	if len(mini.mouse) != 1 || outer.wheels != 1 {
		t.Fatalf("consuming leaf should stop bubbling")
	}
}
