// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/icons/icon.go
// Summary: Icon widget with optional fixed dimensions.

package icons

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelwidgets/texelui/core"
)

// ErrFixedDimension is returned when a size request conflicts with a fixed
// dimension or the glyph does not fit the requested fixed size.
var ErrFixedDimension = errors.New("icons: conflicting fixed dimension")

// Icon draws one glyph, centred vertically and left aligned.
type Icon struct {
	core.BaseWidget
	Kind  Kind
	Style tcell.Style
	ASCII bool

	fixedW, fixedH int // 0 means flexible
}

// NewIcon creates an icon sized to its glyph.
func NewIcon(x, y int, kind Kind, style tcell.Style) *Icon {
	ic := &Icon{Kind: kind, Style: style, ASCII: ASCII()}
	ic.SetPosition(x, y)
	ic.BaseWidget.Resize(ic.NaturalWidth(), 1)
	return ic
}

// NaturalWidth returns the glyph width in cells.
func (ic *Icon) NaturalWidth() int {
	return core.TextWidth(ic.Kind.Glyph(ic.ASCII))
}

// SetKind swaps the glyph.
func (ic *Icon) SetKind(k Kind) {
	if ic.Kind == k {
		return
	}
	ic.Kind = k
	if ic.fixedW == 0 {
		_, h := ic.Size()
		ic.BaseWidget.Resize(ic.NaturalWidth(), h)
	}
	ic.Invalidate()
}

// SetFixedSize pins the icon to w x h cells. A zero dimension stays
// flexible. The glyph must fit.
func (ic *Icon) SetFixedSize(w, h int) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrFixedDimension, w, h)
	}
	if w > 0 && w < ic.NaturalWidth() {
		return fmt.Errorf("%w: %s needs %d cells, fixed width is %d", ErrFixedDimension, ic.Kind, ic.NaturalWidth(), w)
	}
	ic.fixedW, ic.fixedH = w, h
	cw, ch := ic.Size()
	if w > 0 {
		cw = w
	}
	if h > 0 {
		ch = h
	}
	ic.BaseWidget.Resize(cw, ch)
	return nil
}

// FixedSize returns the pinned dimensions (0 when flexible).
func (ic *Icon) FixedSize() (int, int) { return ic.fixedW, ic.fixedH }

// SetSize resizes the icon, failing when a fixed dimension would change.
func (ic *Icon) SetSize(w, h int) error {
	if (ic.fixedW > 0 && w != ic.fixedW) || (ic.fixedH > 0 && h != ic.fixedH) {
		return fmt.Errorf("%w: %dx%d requested, fixed %dx%d", ErrFixedDimension, w, h, ic.fixedW, ic.fixedH)
	}
	ic.BaseWidget.Resize(w, h)
	return nil
}

// Resize implements core.Widget; fixed dimensions win over the request.
func (ic *Icon) Resize(w, h int) {
	if ic.fixedW > 0 {
		w = ic.fixedW
	}
	if ic.fixedH > 0 {
		h = ic.fixedH
	}
	ic.BaseWidget.Resize(w, h)
}

func (ic *Icon) Draw(p *core.Painter) {
	r := ic.Rect
	if r.Empty() {
		return
	}
	p.Fill(r, ' ', ic.Style)
	p.DrawTextClipped(r.X, r.Y+r.H/2, r.W, ic.Kind.Glyph(ic.ASCII), ic.Style)
}

func (ic *Icon) Focusable() bool { return false }
