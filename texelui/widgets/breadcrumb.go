// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/breadcrumb.go
// Summary: Single-row path breadcrumb with truncation and pooled items.

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

// BreadcrumbItem is one pooled path segment. The ellipsis slot is inert.
type BreadcrumbItem struct {
	item
}

// Bind shows e in the slot. A slot whose content changes forgets its
// pointer state.
func (bi *BreadcrumbItem) Bind(e crumbs.Entry) {
	if bi.text != e.Text || bi.index != e.Index {
		bi.ptr.reset()
	}
	bi.index = e.Index
	bi.setText(e.Text)
	bi.setInert(e.Ellipsis())
}

// Breadcrumb renders a path as clickable segments:
//
//	⌂ › home › … › src › widgets
//
// Clicks produce Clicked notifications carrying the logical segment index.
// The home icon reports Part == PartIcon and Index -1.
type Breadcrumb struct {
	core.BaseWidget
	OnEvent   interaction.Listener
	Separator string
	ShowHome  bool
	Style     theme.StyleConfig

	policy  crumbs.Policy
	path    []string
	dirty   bool
	pool    *crumbs.Pool[*BreadcrumbItem]
	visible []*BreadcrumbItem
	home    *BreadcrumbItem
	// cursor is the keyboard position in visible; -1 selects the home icon.
	cursor int
}

var breadcrumbStyle = theme.StyleConfig{
	Fg:      theme.TextPrimary,
	Bg:      theme.BgBase,
	HoverBg: theme.BgHover,
	FocusBg: theme.BgFocus,
}

// NewBreadcrumb creates a one-row breadcrumb of width w.
func NewBreadcrumb(x, y, w int) *Breadcrumb {
	b := &Breadcrumb{
		Separator: "›",
		ShowHome:  true,
		Style:     breadcrumbStyle,
		policy:    crumbs.PolicyKeepTail,
	}
	b.SetPosition(x, y)
	b.Resize(w, 1)
	b.SetFocusable(true)
	b.pool = crumbs.NewPool(b.newItem)

	b.home = &BreadcrumbItem{item: newItem(b.Style, 1)}
	b.home.SetID("home")
	b.home.part = interaction.PartIcon
	b.home.index = -1
	b.home.text = icons.Home.Glyph(icons.ASCII())
	b.home.report = b.reporter(b.home)
	b.home.ptr.machine.CaptureKeyFocus = true
	return b
}

func (b *Breadcrumb) newItem(i int) *BreadcrumbItem {
	bi := &BreadcrumbItem{item: newItem(b.Style, 1)}
	bi.SetID(fmt.Sprintf("item-%d", i))
	bi.SetHost(b.Host())
	bi.report = b.reporter(bi)
	bi.ptr.machine.CaptureKeyFocus = true
	return bi
}

// SetHost forwards the runtime to every slot, dormant ones included.
func (b *Breadcrumb) SetHost(h core.Host) {
	b.BaseWidget.SetHost(h)
	b.home.SetHost(h)
	for _, bi := range b.pool.All() {
		bi.SetHost(h)
	}
}

// SetPath replaces the logical path. Slots are reconciled on the next draw
// or hit test.
func (b *Breadcrumb) SetPath(labels []string) {
	b.path = append(b.path[:0:0], labels...)
	b.dirty = true
	b.Invalidate()
}

// Path returns a copy of the logical path.
func (b *Breadcrumb) Path() []string { return append([]string(nil), b.path...) }

// SetPolicy changes the truncation policy.
func (b *Breadcrumb) SetPolicy(p crumbs.Policy) {
	if b.policy == p {
		return
	}
	b.policy = p
	b.dirty = true
	b.Invalidate()
}

// Policy returns the truncation policy.
func (b *Breadcrumb) Policy() crumbs.Policy { return b.policy }

// Items returns the slots currently shown, in order.
func (b *Breadcrumb) Items() []*BreadcrumbItem {
	b.reconcile()
	return b.visible
}

// Slots returns how many slots have been allocated.
func (b *Breadcrumb) Slots() int { return b.pool.Len() }

// Home returns the home icon slot.
func (b *Breadcrumb) Home() *BreadcrumbItem { return b.home }

func (b *Breadcrumb) reconcile() {
	if !b.dirty {
		return
	}
	b.dirty = false
	b.visible, _ = crumbs.Apply(b.pool, b.path, b.policy)
	b.clampCursor()
	b.layout()
}

// clampCursor keeps the cursor on a visible, non-inert slot. A cursor left
// on the ellipsis after re-truncation moves right, or left when nothing
// follows it.
func (b *Breadcrumb) clampCursor() {
	if b.cursor >= len(b.visible) {
		b.cursor = len(b.visible) - 1
	}
	if b.cursor < 0 || !b.visible[b.cursor].inert {
		return
	}
	at := b.cursor
	b.moveCursor(1)
	if b.cursor == at {
		b.moveCursor(-1)
	}
}

func (b *Breadcrumb) sepWidth() int { return core.TextWidth(b.Separator) }

func (b *Breadcrumb) layout() {
	x, y := b.Rect.X, b.Rect.Y
	first := true
	if b.ShowHome {
		b.home.SetPosition(x, y)
		b.home.Resize(b.home.Width(), 1)
		x += b.home.Width()
		first = false
	}
	for _, bi := range b.visible {
		if !first {
			x += b.sepWidth()
		}
		first = false
		bi.SetPosition(x, y)
		bi.Resize(bi.Width(), 1)
		x += bi.Width()
	}
}

func (b *Breadcrumb) SetPosition(x, y int) {
	b.BaseWidget.SetPosition(x, y)
	if b.home != nil {
		b.layout()
	}
}

func (b *Breadcrumb) Draw(p *core.Painter) {
	b.reconcile()
	b.layout()
	p = p.WithClip(b.Rect)
	th := theme.Get()
	base := theme.Resolve(b.Style, th)
	p.Fill(b.Rect, ' ', base.Base())
	sep := base.Muted(th)

	focused := b.IsFocused()
	drawn := 0
	if b.ShowHome {
		b.home.marked = focused && b.cursor < 0
		b.home.Draw(p)
		drawn++
	}
	for i, bi := range b.visible {
		if drawn > 0 {
			p.DrawText(bi.Rect.X-b.sepWidth(), b.Rect.Y, b.Separator, sep)
		}
		bi.marked = focused && b.cursor == i
		bi.Draw(p)
		drawn++
	}
}

// WidgetAt returns the segment under (x, y); separators and the ellipsis
// fall through to the breadcrumb itself.
func (b *Breadcrumb) WidgetAt(x, y int) core.Widget {
	if !b.Rect.Contains(x, y) {
		return nil
	}
	b.reconcile()
	if b.ShowHome && b.home.HitTest(x, y) {
		return b.home
	}
	for _, bi := range b.visible {
		if bi.HitTest(x, y) {
			return bi
		}
	}
	return nil
}

func (b *Breadcrumb) VisitChildren(f func(core.Widget)) {
	b.reconcile()
	if b.ShowHome {
		f(b.home)
	}
	for _, bi := range b.visible {
		f(bi)
	}
}

// Animating implements core.Animator.
func (b *Breadcrumb) Animating() bool {
	if b.home.Animating() {
		return true
	}
	for _, bi := range b.visible {
		if bi.Animating() {
			return true
		}
	}
	return false
}

func (b *Breadcrumb) Focus() {
	b.BaseWidget.Focus()
	b.reconcile()
	b.clampCursor()
	b.Invalidate()
}

func (b *Breadcrumb) Blur() {
	b.BaseWidget.Blur()
	b.Invalidate()
}

func (b *Breadcrumb) minCursor() int {
	if b.ShowHome {
		return -1
	}
	return 0
}

// Cursor returns the keyboard position: an index into Items, or -1 for home.
func (b *Breadcrumb) Cursor() int { return b.cursor }

func (b *Breadcrumb) HandleKey(ev *tcell.EventKey) bool {
	b.reconcile()
	switch ev.Key() {
	case tcell.KeyLeft:
		b.moveCursor(-1)
	case tcell.KeyRight:
		b.moveCursor(1)
	case tcell.KeyHome:
		b.cursor = b.minCursor()
	case tcell.KeyEnd:
		b.cursor = len(b.visible) - 1
	case tcell.KeyEnter:
		b.activate()
	default:
		return false
	}
	b.Invalidate()
	return true
}

// moveCursor steps over inert slots.
func (b *Breadcrumb) moveCursor(dir int) {
	for c := b.cursor + dir; c >= b.minCursor() && c < len(b.visible); c += dir {
		if c < 0 || !b.visible[c].inert {
			b.cursor = c
			return
		}
	}
}

func (b *Breadcrumb) activate() {
	target := b.home
	if b.cursor >= 0 {
		if b.cursor >= len(b.visible) {
			return
		}
		target = b.visible[b.cursor]
	} else if !b.ShowHome {
		return
	}
	if target.inert {
		return
	}
	n := interaction.Notification{
		Kind:  interaction.NoteClicked,
		Index: target.index,
		Text:  target.text,
		Part:  target.part,
	}
	b.emit(n.Within(target.ID()))
}

func (b *Breadcrumb) reporter(bi *BreadcrumbItem) reportFunc {
	return func(out interaction.Outcome, ev *tcell.EventMouse) {
		applyOutcome(&b.BaseWidget, b, out, tcell.CursorStyleDefault)
		if out.Note == interaction.NoteClicked {
			b.cursor = b.positionOf(bi)
		}
		if n, ok := bi.note(out, ev); ok {
			b.emit(n)
		}
	}
}

func (b *Breadcrumb) positionOf(bi *BreadcrumbItem) int {
	for i, v := range b.visible {
		if v == bi {
			return i
		}
	}
	return -1
}

func (b *Breadcrumb) emit(n interaction.Notification) {
	if b.OnEvent != nil {
		b.OnEvent(n.Within(b.ID()))
	}
}
