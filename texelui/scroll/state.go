// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/state.go
// Summary: Immutable vertical scroll state shared by scrollable widgets.

package scroll

// State is a vertical scroll position over Content rows seen through a
// Viewport rows high. Methods return a new, clamped State.
type State struct {
	Offset   int
	Content  int
	Viewport int
}

func NewState(content, viewport int) State {
	return State{Content: max(content, 0), Viewport: max(viewport, 0)}
}

func (s State) maxOffset() int { return max(s.Content-s.Viewport, 0) }

func (s State) clamp() State {
	s.Offset = min(max(s.Offset, 0), s.maxOffset())
	return s
}

func (s State) WithContentHeight(h int) State {
	s.Content = max(h, 0)
	return s.clamp()
}

func (s State) WithViewportHeight(h int) State {
	s.Viewport = max(h, 0)
	return s.clamp()
}

func (s State) ScrollBy(delta int) State {
	s.Offset += delta
	return s.clamp()
}

// ScrollTo moves the least distance that makes row visible.
func (s State) ScrollTo(row int) State {
	switch {
	case row < s.Offset:
		s.Offset = row
	case row >= s.Offset+s.Viewport:
		s.Offset = row - s.Viewport + 1
	}
	return s.clamp()
}

func (s State) ScrollToTop() State { s.Offset = 0; return s }

func (s State) ScrollToBottom() State {
	s.Offset = s.maxOffset()
	return s
}

func (s State) CanScroll() bool     { return s.Content > s.Viewport }
func (s State) CanScrollUp() bool   { return s.Offset > 0 }
func (s State) CanScrollDown() bool { return s.Offset < s.maxOffset() }

// IsRowVisible reports whether content row lies inside the viewport.
func (s State) IsRowVisible(row int) bool {
	return row >= s.Offset && row < s.Offset+s.Viewport
}
