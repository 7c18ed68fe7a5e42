// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/uimanager.go
// Summary: Widget tree host: event routing, hover tracking, focus and composition.

package core

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelwidgets/texelui/theme"
)

// FrameInterval is the refresh period used while any widget is animating.
const FrameInterval = 16 * time.Millisecond

// UIManager owns a small widget tree (floating) and composes to a buffer.
type UIManager struct {
	mu       sync.Mutex // protects widgets, focus, capture, hover, buffer
	dirtyMu  sync.Mutex // protects dirty list and notifier
	reqMu    sync.Mutex // protects pending focus and cursor requests
	W, H     int
	widgets  []Widget // z-ordered: later entries draw on top
	bgStyle  tcell.Style
	notifier chan<- bool
	focused  Widget
	buf      [][]Cell
	dirty    []Rect
	capture  Widget
	hovered  Widget

	pendingFocus Widget
	cursor       tcell.CursorStyle
	frameQueued  atomic.Bool
}

func NewUIManager() *UIManager {
	tm := theme.Get()
	return &UIManager{
		bgStyle: tcell.StyleDefault.
			Background(tm.Color(theme.BgBase)).
			Foreground(tm.Color(theme.TextPrimary)),
	}
}

func (u *UIManager) SetRefreshNotifier(ch chan<- bool) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.notifier = ch
}

func (u *UIManager) RequestRefresh() {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.requestRefreshLocked()
}

func (u *UIManager) Resize(w, h int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()

	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	u.W, u.H = w, h
	u.buf = nil
	u.invalidateAllLocked()
}

// Size returns the surface size.
func (u *UIManager) Size() (int, int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.W, u.H
}

func (u *UIManager) AddWidget(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.widgets = append(u.widgets, w)
	u.propagateHost(w)
	u.dirtyMu.Lock()
	u.invalidateAllLocked()
	u.dirtyMu.Unlock()
}

func (u *UIManager) propagateHost(w Widget) {
	if ha, ok := w.(HostAware); ok {
		ha.SetHost(u)
	}
	if cc, ok := w.(ChildContainer); ok {
		cc.VisitChildren(func(child Widget) { u.propagateHost(child) })
	}
}

func (u *UIManager) Focus(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.focusLocked(w)
}

// Focused returns the widget holding key focus.
func (u *UIManager) Focused() Widget {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.focused
}

func (u *UIManager) focusLocked(w Widget) {
	if w == nil || !w.Focusable() {
		return
	}
	if u.focused == w {
		return
	}
	if u.focused != nil {
		u.focused.Blur()
	}
	u.focused = w
	u.focused.Focus()
}

// RequestFocus queues a focus change; it is applied once the event being
// dispatched returns. Part of Host.
func (u *UIManager) RequestFocus(w Widget) {
	u.reqMu.Lock()
	u.pendingFocus = w
	u.reqMu.Unlock()
}

// SetCursorStyle records the cursor shape requested by a widget. Part of Host.
func (u *UIManager) SetCursorStyle(cs tcell.CursorStyle) {
	u.reqMu.Lock()
	u.cursor = cs
	u.reqMu.Unlock()
}

// CursorStyle returns the most recently requested cursor shape.
func (u *UIManager) CursorStyle() tcell.CursorStyle {
	u.reqMu.Lock()
	defer u.reqMu.Unlock()
	return u.cursor
}

func (u *UIManager) applyPendingLocked() {
	u.reqMu.Lock()
	w := u.pendingFocus
	u.pendingFocus = nil
	u.reqMu.Unlock()
	if w != nil {
		u.focusLocked(w)
	}
}

func (u *UIManager) HandleKey(ev *tcell.EventKey) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	defer u.applyPendingLocked()

	if u.focused != nil && u.focused.HandleKey(ev) {
		u.dirtyMu.Lock()
		if len(u.dirty) == 0 {
			u.invalidateAllLocked()
		} else {
			u.requestRefreshLocked()
		}
		u.dirtyMu.Unlock()
		return true
	}

	if ev.Key() == tcell.KeyTab || ev.Key() == tcell.KeyBacktab {
		forward := ev.Key() == tcell.KeyTab && ev.Modifiers()&tcell.ModShift == 0
		if u.cycleRootWidgetsLocked(forward) {
			u.dirtyMu.Lock()
			u.invalidateAllLocked()
			u.dirtyMu.Unlock()
			return true
		}
	}
	return false
}

func (u *UIManager) containsWidgetLocked(w, target Widget) bool {
	if w == target {
		return true
	}
	if cc, ok := w.(ChildContainer); ok {
		found := false
		cc.VisitChildren(func(child Widget) {
			if found {
				return
			}
			if u.containsWidgetLocked(child, target) {
				found = true
			}
		})
		return found
	}
	return false
}

// cycleRootWidgetsLocked cycles focus among focusable widgets in tree order.
func (u *UIManager) cycleRootWidgetsLocked(forward bool) bool {
	var order []Widget
	var walk func(w Widget)
	walk = func(w Widget) {
		if w.Focusable() {
			order = append(order, w)
		}
		if cc, ok := w.(ChildContainer); ok {
			cc.VisitChildren(walk)
		}
	}
	for _, w := range u.widgets {
		walk(w)
	}
	n := len(order)
	if n == 0 {
		return false
	}
	current := -1
	for i, w := range order {
		if w == u.focused {
			current = i
			break
		}
	}
	var idx int
	switch {
	case current < 0:
		idx = 0
	case forward:
		idx = (current + 1) % n
	default:
		idx = (current - 1 + n) % n
	}
	u.focusLocked(order[idx])
	return true
}

// HandleMouse routes mouse events: click-to-focus, capture drags and hover
// enter/leave delivery.
func (u *UIManager) HandleMouse(ev *tcell.EventMouse) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	defer u.applyPendingLocked()

	x, y := ev.Position()
	buttons := ev.Buttons()
	prevIsDown := u.capture != nil
	nowDown := buttons&tcell.Button1 != 0

	// Start capture on press over a widget
	if !prevIsDown && nowDown {
		w := u.topmostAtLocked(x, y)
		u.updateHoverLocked(w, ev)
		if w != nil {
			u.focusLocked(w)
			u.capture = w
			if mw, ok := w.(MouseAware); ok {
				_ = mw.HandleMouse(ev)
			}
			u.dirtyMu.Lock()
			u.invalidateAllLocked()
			u.dirtyMu.Unlock()
			return true
		}
		return false
	}

	// While captured, forward all mouse events
	if u.capture != nil {
		if mw, ok := u.capture.(MouseAware); ok {
			_ = mw.HandleMouse(ev)
		}
		if prevIsDown && !nowDown {
			u.capture = nil
			u.hovered = u.topmostAtLocked(x, y)
		}
		u.dirtyMu.Lock()
		u.invalidateAllLocked()
		u.dirtyMu.Unlock()
		return true
	}

	if buttons&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 {
		if u.wheelLocked(x, y, ev) {
			u.dirtyMu.Lock()
			u.invalidateAllLocked()
			u.dirtyMu.Unlock()
			return true
		}
		return false
	}

	// Motion with no buttons: hover tracking
	if buttons == tcell.ButtonNone {
		w := u.topmostAtLocked(x, y)
		changed := u.updateHoverLocked(w, ev)
		handled := false
		if w != nil {
			if mw, ok := w.(MouseAware); ok {
				handled = mw.HandleMouse(ev)
			}
		}
		if handled || changed {
			u.dirtyMu.Lock()
			u.requestRefreshLocked()
			u.dirtyMu.Unlock()
			return true
		}
	}
	return false
}

// updateHoverLocked hands ev to the previously hovered widget when the
// pointer moved off it, so it can observe the leave. Returns true on change.
func (u *UIManager) updateHoverLocked(w Widget, ev *tcell.EventMouse) bool {
	if u.hovered == w {
		return false
	}
	prev := u.hovered
	u.hovered = w
	if prev != nil {
		if mw, ok := prev.(MouseAware); ok {
			x, y := ev.Position()
			_ = mw.HandleMouse(tcell.NewEventMouse(x, y, tcell.ButtonNone, ev.Modifiers()))
		}
	}
	return true
}

// wheelLocked offers a wheel event to the widget under the pointer, then
// to each enclosing container outwards until one consumes it.
func (u *UIManager) wheelLocked(x, y int, ev *tcell.EventMouse) bool {
	sorted := u.sortedWidgetsLocked()
	for i := len(sorted) - 1; i >= 0; i-- {
		deep := DeepHit(sorted[i], x, y)
		if deep == nil {
			continue
		}
		chain := appendEnclosing(nil, sorted[i], x, y)
		if len(chain) == 0 || chain[len(chain)-1] != deep {
			chain = append(chain, deep)
		}
		for j := len(chain) - 1; j >= 0; j-- {
			if mw, ok := chain[j].(MouseAware); ok && mw.HandleMouse(ev) {
				return true
			}
		}
		return false
	}
	return false
}

// appendEnclosing appends w and its descendants whose rect holds (x, y),
// outermost first.
func appendEnclosing(out []Widget, w Widget, x, y int) []Widget {
	wx, wy := w.Position()
	ww, wh := w.Size()
	if !(Rect{X: wx, Y: wy, W: ww, H: wh}).Contains(x, y) {
		return out
	}
	out = append(out, w)
	if cc, ok := w.(ChildContainer); ok {
		found := false
		cc.VisitChildren(func(c Widget) {
			if !found {
				before := len(out)
				out = appendEnclosing(out, c, x, y)
				found = len(out) > before
			}
		})
	}
	return out
}

func (u *UIManager) topmostAtLocked(x, y int) Widget {
	sorted := u.sortedWidgetsLocked()
	for i := len(sorted) - 1; i >= 0; i-- {
		if w := DeepHit(sorted[i], x, y); w != nil {
			return w
		}
	}
	return nil
}

// Invalidate marks a region for redraw. Part of Host.
func (u *UIManager) Invalidate(r Rect) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()

	if r.W <= 0 || r.H <= 0 {
		return
	}
	u.dirty = append(u.dirty, r)
	u.requestRefreshLocked()
}

// InvalidateAll marks the whole surface for redraw.
func (u *UIManager) InvalidateAll() {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.invalidateAllLocked()
}

// assumes dirtyMu is held
func (u *UIManager) invalidateAllLocked() {
	u.dirty = append(u.dirty, Rect{X: 0, Y: 0, W: u.W, H: u.H})
	u.requestRefreshLocked()
}

// assumes dirtyMu is held
func (u *UIManager) requestRefreshLocked() {
	if u.notifier == nil {
		return
	}
	select {
	case u.notifier <- true:
	default:
	}
}

func (u *UIManager) ensureBufferLocked() {
	h, w := u.H, u.W
	if u.buf != nil && len(u.buf) == h && (h == 0 || len(u.buf[0]) == w) {
		return
	}
	u.buf = make([][]Cell, h)
	for y := 0; y < h; y++ {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: u.bgStyle}
		}
		u.buf[y] = row
	}
}

func getZIndex(w Widget) int {
	if zi, ok := w.(ZIndexer); ok {
		return zi.ZIndex()
	}
	return 0
}

// sortedWidgetsLocked returns a copy of widgets sorted by z-index (stable sort).
func (u *UIManager) sortedWidgetsLocked() []Widget {
	sorted := make([]Widget, len(u.widgets))
	copy(sorted, u.widgets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return getZIndex(sorted[i]) < getZIndex(sorted[j])
	})
	return sorted
}

// Render updates dirty regions and returns the framebuffer.
func (u *UIManager) Render() [][]Cell {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.ensureBufferLocked()

	u.dirtyMu.Lock()
	dirtyCopy := u.dirty
	u.dirty = nil
	u.dirtyMu.Unlock()

	sorted := u.sortedWidgetsLocked()
	defer u.scheduleFrameLocked(sorted)

	if len(dirtyCopy) == 0 {
		// No specific dirty regions requested: compose full frame.
		full := Rect{X: 0, Y: 0, W: u.W, H: u.H}
		p := NewPainter(u.buf, full)
		p.Fill(full, ' ', u.bgStyle)
		for _, w := range sorted {
			w.Draw(p)
		}
		return u.buf
	}

	surface := Rect{X: 0, Y: 0, W: u.W, H: u.H}
	for _, clip := range mergeRects(dirtyCopy) {
		clip = clip.Intersect(surface)
		if clip.Empty() {
			continue
		}
		p := NewPainter(u.buf, clip)
		p.Fill(clip, ' ', u.bgStyle)
		for _, w := range sorted {
			wx, wy := w.Position()
			ww, wh := w.Size()
			if rectsOverlap(Rect{X: wx, Y: wy, W: ww, H: wh}, clip) {
				w.Draw(p)
			}
		}
	}
	return u.buf
}

// Animating reports whether any widget in the tree has a running tween.
func (u *UIManager) Animating() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return anyAnimating(u.widgets)
}

func anyAnimating(ws []Widget) bool {
	found := false
	var walk func(w Widget)
	walk = func(w Widget) {
		if found {
			return
		}
		if a, ok := w.(Animator); ok && a.Animating() {
			found = true
			return
		}
		if cc, ok := w.(ChildContainer); ok {
			cc.VisitChildren(walk)
		}
	}
	for _, w := range ws {
		walk(w)
	}
	return found
}

// scheduleFrameLocked queues one refresh tick while tweens are running.
func (u *UIManager) scheduleFrameLocked(sorted []Widget) {
	if !anyAnimating(sorted) {
		return
	}
	if !u.frameQueued.CompareAndSwap(false, true) {
		return
	}
	time.AfterFunc(FrameInterval, func() {
		u.frameQueued.Store(false)
		u.RequestRefresh()
	})
}

func rectsOverlap(a, b Rect) bool {
	if a.W <= 0 || a.H <= 0 || b.W <= 0 || b.H <= 0 {
		return false
	}
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// mergeRects unions overlapping or edge-adjacent rectangles into a compact set.
func mergeRects(in []Rect) []Rect {
	out := make([]Rect, 0, len(in))
	for _, r := range in {
		if r.W <= 0 || r.H <= 0 {
			continue
		}
		out = append(out, r)
	}
	changed := true
	for changed {
		changed = false
		for i := 0; i < len(out) && !changed; i++ {
			for j := i + 1; j < len(out) && !changed; j++ {
				if rectsTouchOrOverlap(out[i], out[j]) {
					out[i] = union(out[i], out[j])
					out = append(out[:j], out[j+1:]...)
					changed = true
				}
			}
		}
	}
	return out
}

func rectsTouchOrOverlap(a, b Rect) bool {
	if rectsOverlap(a, b) {
		return true
	}
	ax1, ay1 := a.X+a.W, a.Y+a.H
	bx1, by1 := b.X+b.W, b.Y+b.H
	horizontallyAdjacent := (ax1 == b.X || bx1 == a.X) && !(a.Y >= by1 || ay1 <= b.Y)
	verticallyAdjacent := (ay1 == b.Y || by1 == a.Y) && !(a.X >= bx1 || ax1 <= b.X)
	cornerAdjacent := (ax1 == b.X || bx1 == a.X) && (ay1 == b.Y || by1 == a.Y)
	return horizontallyAdjacent || verticallyAdjacent || cornerAdjacent
}

func union(a, b Rect) Rect {
	x0 := min(a.X, b.X)
	y0 := min(a.Y, b.Y)
	x1 := max(a.X+a.W, b.X+b.W)
	y1 := max(a.Y+a.H, b.Y+b.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
