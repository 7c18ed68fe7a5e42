// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/scrollpane.go
// Summary: Vertical viewport over a child taller than the space it gets.

package scroll

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelwidgets/texelui/core"
	"github.com/framegrace/texelwidgets/texelui/theme"
)

// WheelStep is the number of rows one wheel notch scrolls.
const WheelStep = 3

// ContentHeighter reports the rows a child currently needs. Children whose
// height changes over time (an animated reveal, say) implement it; others
// are measured by Size.
type ContentHeighter interface {
	ContentHeight() int
}

// ScrollPane shows a window onto its child. The child keeps the pane's
// width and is moved up by the scroll offset on every draw.
type ScrollPane struct {
	core.BaseWidget
	Bg string // semantic background key

	child          core.Widget
	state          State
	showIndicators bool
	indicators     IndicatorConfig
	lastFocused    core.Widget
}

// NewScrollPane creates an empty pane.
func NewScrollPane(x, y, w, h int) *ScrollPane {
	sp := &ScrollPane{Bg: theme.BgBase, showIndicators: true}
	sp.SetPosition(x, y)
	sp.Resize(w, h)
	th := theme.Get()
	muted := theme.Resolve(theme.StyleConfig{Fg: theme.TextMuted, Bg: sp.Bg}, th).Base()
	sp.indicators = DefaultIndicatorConfig(muted)
	return sp
}

// SetChild replaces the scrolled widget and scrolls to the top.
func (sp *ScrollPane) SetChild(child core.Widget) {
	sp.child = child
	sp.state = NewState(0, sp.Rect.H)
	sp.lastFocused = nil
	if child != nil {
		if ha, ok := child.(core.HostAware); ok && sp.Host() != nil {
			ha.SetHost(sp.Host())
		}
		sp.sync()
	}
	sp.Invalidate()
}

func (sp *ScrollPane) Child() core.Widget { return sp.child }

func (sp *ScrollPane) SetHost(h core.Host) {
	sp.BaseWidget.SetHost(h)
	if ha, ok := sp.child.(core.HostAware); ok {
		ha.SetHost(h)
	}
}

// ContentHeight returns the child height last measured.
func (sp *ScrollPane) ContentHeight() int { return sp.state.Content }

// ScrollOffset returns the first visible content row.
func (sp *ScrollPane) ScrollOffset() int { return sp.state.Offset }

func (sp *ScrollPane) State() State { return sp.state }

func (sp *ScrollPane) ShowIndicators(show bool) { sp.showIndicators = show }

func (sp *ScrollPane) SetIndicatorConfig(cfg IndicatorConfig) { sp.indicators = cfg }

// sync measures the child and places it at the current offset.
func (sp *ScrollPane) sync() {
	if sp.child == nil {
		sp.state = sp.state.WithContentHeight(0)
		return
	}
	var h int
	if ch, ok := sp.child.(ContentHeighter); ok {
		h = ch.ContentHeight()
	} else {
		_, h = sp.child.Size()
	}
	sp.state = sp.state.WithViewportHeight(sp.Rect.H).WithContentHeight(h)
	sp.child.Resize(sp.Rect.W, max(h, sp.Rect.H))
	sp.child.SetPosition(sp.Rect.X, sp.Rect.Y-sp.state.Offset)
}

func (sp *ScrollPane) Resize(w, h int) {
	sp.BaseWidget.Resize(w, h)
	sp.state = sp.state.WithViewportHeight(h)
	sp.sync()
}

func (sp *ScrollPane) SetPosition(x, y int) {
	sp.BaseWidget.SetPosition(x, y)
	sp.sync()
}

func (sp *ScrollPane) Draw(p *core.Painter) {
	st := theme.Resolve(theme.StyleConfig{Bg: sp.Bg}, theme.Get()).Base()
	p.Fill(sp.Rect, ' ', st)
	if sp.child == nil {
		return
	}
	// Follow focus only when it moves, so wheel scrolling is not undone.
	if f := focusedIn(sp.child); f != sp.lastFocused {
		sp.lastFocused = f
		if f != nil {
			sp.EnsureVisible(f)
		}
	}
	sp.sync()
	sp.child.Draw(p.WithClip(sp.Rect))
	if sp.showIndicators {
		DrawIndicators(p, sp.Rect, sp.state, sp.indicators)
	}
}

func (sp *ScrollPane) move(next State) {
	if next == sp.state {
		return
	}
	sp.state = next
	sp.sync()
	sp.Invalidate()
}

// ScrollBy scrolls by delta rows; positive is down.
func (sp *ScrollPane) ScrollBy(delta int) { sp.move(sp.state.ScrollBy(delta)) }

// ScrollTo scrolls the least distance that shows content row.
func (sp *ScrollPane) ScrollTo(row int) { sp.move(sp.state.ScrollTo(row)) }

func (sp *ScrollPane) ScrollToTop()    { sp.move(sp.state.ScrollToTop()) }
func (sp *ScrollPane) ScrollToBottom() { sp.move(sp.state.ScrollToBottom()) }

// EnsureVisible scrolls so that w, a descendant, is in view, preferring
// its top row.
func (sp *ScrollPane) EnsureVisible(w core.Widget) {
	_, wy := w.Position()
	_, wh := w.Size()
	top := wy - sp.Rect.Y + sp.state.Offset
	if sp.state.IsRowVisible(top) && sp.state.IsRowVisible(top+max(wh, 1)-1) {
		return
	}
	sp.ScrollTo(top + max(wh, 1) - 1)
	sp.ScrollTo(top)
}

type focusReporter interface{ IsFocused() bool }

func focusedIn(w core.Widget) core.Widget {
	if fr, ok := w.(focusReporter); ok && fr.IsFocused() {
		return w
	}
	var found core.Widget
	if cc, ok := w.(core.ChildContainer); ok {
		cc.VisitChildren(func(c core.Widget) {
			if found == nil {
				found = focusedIn(c)
			}
		})
	}
	return found
}

func (sp *ScrollPane) CanScroll() bool     { return sp.state.CanScroll() }
func (sp *ScrollPane) CanScrollUp() bool   { return sp.state.CanScrollUp() }
func (sp *ScrollPane) CanScrollDown() bool { return sp.state.CanScrollDown() }

// HandleKey scrolls by pages, or to the ends with Ctrl-Home/Ctrl-End. It
// only sees keys while the pane itself holds focus.
func (sp *ScrollPane) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyPgUp:
		sp.ScrollBy(-sp.Rect.H)
		return true
	case tcell.KeyPgDn:
		sp.ScrollBy(sp.Rect.H)
		return true
	case tcell.KeyHome:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			sp.ScrollToTop()
			return true
		}
	case tcell.KeyEnd:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			sp.ScrollToBottom()
			return true
		}
	}
	return false
}

// HandleMouse consumes wheel events while there is something to scroll;
// otherwise they keep bubbling outwards.
func (sp *ScrollPane) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if !sp.HitTest(x, y) || !sp.state.CanScroll() {
		return false
	}
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		sp.ScrollBy(-WheelStep)
		return true
	case ev.Buttons()&tcell.WheelDown != 0:
		sp.ScrollBy(WheelStep)
		return true
	}
	return false
}

func (sp *ScrollPane) VisitChildren(f func(core.Widget)) {
	if sp.child != nil {
		f(sp.child)
	}
}

// WidgetAt only hits the child inside the viewport.
func (sp *ScrollPane) WidgetAt(x, y int) core.Widget {
	if !sp.Rect.Contains(x, y) {
		return nil
	}
	return core.DeepHit(sp.child, x, y)
}

func (sp *ScrollPane) Animating() bool {
	a, ok := sp.child.(core.Animator)
	return ok && a.Animating()
}
