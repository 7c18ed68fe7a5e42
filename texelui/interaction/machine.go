// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/interaction/machine.go
// Summary: Hover/focus/selected state machine shared by interactive widgets.
// Usage: Widgets feed classified pointer events to Machine.Handle and react
// to the returned Outcome; animation goes straight to the Player.

// Package interaction implements the pointer interaction state machine used
// by every clickable widget: it maps enter/leave/press/release events onto a
// canonical visual state and emits at most one animation instruction and one
// notification per event.
package interaction

// State is the visual interaction state of a widget.
type State uint8

const (
	Off State = iota
	Hover
	Focus
)

func (s State) String() string {
	switch s {
	case Off:
		return "off"
	case Hover:
		return "hover"
	case Focus:
		return "focus"
	default:
		return "unknown"
	}
}

// Transition names an animation the Player should run.
type Transition uint8

const (
	TransitionNone Transition = iota
	HoverOn
	HoverOff
	FocusOn
)

func (t Transition) String() string {
	switch t {
	case HoverOn:
		return "hover-on"
	case HoverOff:
		return "hover-off"
	case FocusOn:
		return "focus"
	default:
		return "none"
	}
}

// Player runs animation transitions. Implementations must clear the
// competing track before driving the target one.
type Player interface {
	Play(t Transition)
}

// Outcome describes what a single Handle call did.
type Outcome struct {
	State      State
	Transition Transition // TransitionNone when nothing was played
	Note       NoteKind   // NoteNone when nothing should be emitted
	// CaptureFocus asks the widget to take key focus.
	CaptureFocus bool
	// ApplyCursor asks the widget to apply its configured cursor.
	ApplyCursor bool
	// RestoreCursor asks the widget to hand the default cursor back once
	// the pointer is no longer over it.
	RestoreCursor bool
}

// Changed reports whether the event produced any effect.
func (o Outcome) Changed() bool {
	return o.Transition != TransitionNone || o.Note != NoteNone
}

// Machine is the per-widget interaction state. The zero value is usable and
// starts in Off; a nil Player discards animations.
type Machine struct {
	state  State
	player Player

	// Selected gates hover and focus: while set, animations are suppressed
	// and presses are ignored so the selected look is never overridden.
	Selected bool
	// CaptureKeyFocus makes PressDown request key focus.
	CaptureKeyFocus bool
	// Cursor makes HoverIn request the widget's cursor.
	Cursor bool
}

// NewMachine returns a machine driving p.
func NewMachine(p Player) *Machine {
	return &Machine{player: p}
}

// SetPlayer replaces the animation target.
func (m *Machine) SetPlayer(p Player) { m.player = p }

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Reset returns to Off without animating.
func (m *Machine) Reset() { m.state = Off }

// Handle applies ev and returns the resulting outcome. It never fails:
// events that make no sense in the current state are ignored.
func (m *Machine) Handle(ev Event) Outcome {
	out := Outcome{State: m.state}
	switch ev.Kind {
	case EventHoverIn:
		m.state = Hover
		out = Outcome{State: Hover, Note: NoteHoverIn, ApplyCursor: m.Cursor}
		out.Transition = m.play(HoverOn)

	case EventHoverOut:
		if m.state != Hover {
			return out
		}
		m.state = Off
		out = Outcome{State: Off, Note: NoteHoverOut, RestoreCursor: m.Cursor}
		out.Transition = m.play(HoverOff)

	case EventPressDown:
		if m.Selected {
			return out
		}
		m.state = Focus
		out = Outcome{State: Focus, Note: NoteFocus, CaptureFocus: m.CaptureKeyFocus}
		out.Transition = m.play(FocusOn)

	case EventPressUp:
		if !ev.Over {
			m.state = Off
			out = Outcome{State: Off, Note: NoteFocusLost, RestoreCursor: m.Cursor}
			out.Transition = m.play(HoverOff)
			return out
		}
		if m.state != Focus {
			return out
		}
		if ev.HasHover {
			m.state = Hover
			out = Outcome{State: Hover, Note: NoteClicked}
			out.Transition = m.play(HoverOn)
		} else {
			m.state = Off
			out = Outcome{State: Off, Note: NoteClicked, RestoreCursor: m.Cursor}
			out.Transition = m.play(HoverOff)
		}
	}
	return out
}

func (m *Machine) play(t Transition) Transition {
	if m.Selected {
		return TransitionNone
	}
	if m.player != nil {
		m.player.Play(t)
	}
	return t
}
