// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/interaction/event.go
// Summary: Classified pointer events, notifications and the tcell classifier.

package interaction

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// EventKind classifies a low-level pointer event.
type EventKind uint8

const (
	EventHoverIn EventKind = iota + 1
	EventHoverOut
	EventPressDown
	EventPressUp
)

// Event is one classified pointer event. Over and HasHover only matter for
// EventPressUp.
type Event struct {
	Kind     EventKind
	Over     bool
	HasHover bool
}

func HoverInEvent() Event   { return Event{Kind: EventHoverIn} }
func HoverOutEvent() Event  { return Event{Kind: EventHoverOut} }
func PressDownEvent() Event { return Event{Kind: EventPressDown} }

// PressUpEvent builds a release; over is whether the pointer is still on
// the target and hasHover whether the pointer can hover at all.
func PressUpEvent(over, hasHover bool) Event {
	return Event{Kind: EventPressUp, Over: over, HasHover: hasHover}
}

// NoteKind is the kind of notification a widget emits to the application.
type NoteKind uint8

const (
	NoteNone NoteKind = iota
	NoteHoverIn
	NoteHoverOut
	NoteFocus
	NoteFocusLost
	NoteClicked
	NoteChanged
)

func (k NoteKind) String() string {
	switch k {
	case NoteHoverIn:
		return "hover-in"
	case NoteHoverOut:
		return "hover-out"
	case NoteFocus:
		return "focus"
	case NoteFocusLost:
		return "focus-lost"
	case NoteClicked:
		return "clicked"
	case NoteChanged:
		return "changed"
	default:
		return "none"
	}
}

// Part tells whether a notification came from an item or its icon.
type Part uint8

const (
	PartItem Part = iota
	PartIcon
)

// Notification is delivered to application listeners.
type Notification struct {
	Kind  NoteKind
	Scope string // slash-joined widget ids, outermost first
	Index int    // item index, -1 when not applicable
	Text  string
	Part  Part
	Mouse *tcell.EventMouse // nil for keyboard-originated notes
}

// Within prefixes the scope with id.
func (n Notification) Within(id string) Notification {
	if id == "" {
		return n
	}
	if n.Scope == "" {
		n.Scope = id
		return n
	}
	n.Scope = strings.Join([]string{id, n.Scope}, "/")
	return n
}

// Listener receives notifications.
type Listener func(Notification)

// Tracker turns raw tcell mouse events into at most one Event each. It
// remembers whether the pointer is inside, whether Button1 is held and
// whether the pointer has ever reported plain motion (hover capability).
type Tracker struct {
	inside   bool
	pressed  bool
	hasHover bool
}

// HasHover reports whether the pointer has shown hover capability.
func (t *Tracker) HasHover() bool { return t.hasHover }

// Pressed reports whether a press started on the target is in progress.
func (t *Tracker) Pressed() bool { return t.pressed }

// Classify maps ev to an Event given whether it lies over the target.
func (t *Tracker) Classify(ev *tcell.EventMouse, over bool) (Event, bool) {
	buttons := ev.Buttons()
	if buttons&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 {
		return Event{}, false
	}
	down := buttons&tcell.Button1 != 0

	switch {
	case down && !t.pressed:
		if !over {
			return Event{}, false
		}
		t.pressed = true
		t.inside = true
		return PressDownEvent(), true

	case down && t.pressed:
		// drag; the release decides
		t.inside = over
		return Event{}, false

	case !down && t.pressed:
		t.pressed = false
		t.inside = over && t.hasHover
		return PressUpEvent(over, t.hasHover), true
	}

	if buttons != tcell.ButtonNone {
		return Event{}, false
	}
	t.hasHover = true
	if over == t.inside {
		return Event{}, false
	}
	t.inside = over
	if over {
		return HoverInEvent(), true
	}
	return HoverOutEvent(), true
}

// Reset forgets pointer state, e.g. when a slot is reused for new content.
func (t *Tracker) Reset() {
	t.inside = false
	t.pressed = false
}
