// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/widget.go
// Summary: Widget contract, shared base behaviour and optional capabilities.

package core

import "github.com/gdamore/tcell/v2"

// Widget is the minimal contract for drawable UI elements.
type Widget interface {
	SetPosition(x, y int)
	Position() (int, int)
	Resize(w, h int)
	Size() (int, int)
	Draw(p *Painter)
	Focusable() bool
	Focus()
	Blur()
	HandleKey(ev *tcell.EventKey) bool
	HitTest(x, y int) bool
}

// Host is the part of the runtime a widget may call back into.
// Calls are safe from inside event and draw callbacks.
type Host interface {
	Invalidate(r Rect)
	RequestFocus(w Widget)
	SetCursorStyle(cs tcell.CursorStyle)
}

// BaseWidget provides common fields/behaviour for widgets.
type BaseWidget struct {
	Rect      Rect
	id        string
	focused   bool
	focusable bool
	host      Host

	focusStyle    tcell.Style
	hasFocusStyle bool
}

func (b *BaseWidget) SetPosition(x, y int) { b.Rect.X, b.Rect.Y = x, y }
func (b *BaseWidget) Position() (int, int) { return b.Rect.X, b.Rect.Y }
func (b *BaseWidget) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.Rect.W, b.Rect.H = w, h
}
func (b *BaseWidget) Size() (int, int)    { return b.Rect.W, b.Rect.H }
func (b *BaseWidget) Focusable() bool     { return b.focusable }
func (b *BaseWidget) SetFocusable(f bool) { b.focusable = f }
func (b *BaseWidget) Focus() {
	if b.focusable {
		b.focused = true
	}
}
func (b *BaseWidget) Blur()                             { b.focused = false }
func (b *BaseWidget) IsFocused() bool                   { return b.focused }
func (b *BaseWidget) HitTest(x, y int) bool             { return b.Rect.Contains(x, y) }
func (b *BaseWidget) HandleKey(ev *tcell.EventKey) bool { return false }

// ID returns the widget identifier used in notification scopes.
func (b *BaseWidget) ID() string     { return b.id }
func (b *BaseWidget) SetID(id string) { b.id = id }

// SetHost wires the runtime callbacks. Containers forward it to children.
func (b *BaseWidget) SetHost(h Host) { b.host = h }

// Host returns the attached runtime, or nil before the widget is added.
func (b *BaseWidget) Host() Host { return b.host }

// Invalidate marks the widget rect dirty.
func (b *BaseWidget) Invalidate() {
	if b.host != nil {
		b.host.Invalidate(b.Rect)
	}
}

// RequestFocus asks the runtime to move key focus to w once the current
// event has been dispatched.
func (b *BaseWidget) RequestFocus(w Widget) {
	if b.host != nil && w != nil {
		b.host.RequestFocus(w)
	}
}

// SetCursorStyle forwards a cursor shape request to the runtime.
func (b *BaseWidget) SetCursorStyle(cs tcell.CursorStyle) {
	if b.host != nil {
		b.host.SetCursorStyle(cs)
	}
}

// SetFocusedStyle sets the style EffectiveStyle returns while focused.
func (b *BaseWidget) SetFocusedStyle(st tcell.Style, enabled bool) {
	b.focusStyle = st
	b.hasFocusStyle = enabled
}

// EffectiveStyle returns base, or the focused style when focused.
func (b *BaseWidget) EffectiveStyle(base tcell.Style) tcell.Style {
	if b.focused && b.hasFocusStyle {
		return b.focusStyle
	}
	return base
}

// MouseAware widgets can consume mouse events directly.
type MouseAware interface {
	HandleMouse(ev *tcell.EventMouse) bool
}

// HostAware widgets accept the runtime callbacks.
type HostAware interface {
	SetHost(h Host)
}

// ChildContainer allows recursive operations over widget trees without
// depending on concrete widget packages.
type ChildContainer interface {
	VisitChildren(func(Widget))
}

// HitTester allows a container to return the deepest widget under a point.
type HitTester interface {
	WidgetAt(x, y int) Widget
}

// ZIndexer widgets draw above widgets with a lower index.
type ZIndexer interface {
	ZIndex() int
}

// Animator widgets report whether a tween is still running so the runtime
// keeps scheduling frames.
type Animator interface {
	Animating() bool
}

// DeepHit returns the deepest widget under (x, y) starting at w, or nil.
func DeepHit(w Widget, x, y int) Widget {
	if w == nil {
		return nil
	}
	if ht, ok := w.(HitTester); ok {
		if dw := ht.WidgetAt(x, y); dw != nil {
			return dw
		}
	}
	if w.HitTest(x, y) {
		return w
	}
	if cc, ok := w.(ChildContainer); ok {
		var res Widget
		cc.VisitChildren(func(child Widget) {
			if res != nil {
				return
			}
			if dw := DeepHit(child, x, y); dw != nil {
				res = dw
			}
		})
		return res
	}
	return nil
}
