// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/animation/tracks.go
// Summary: Hover/focus track pair driven by interaction transitions.

package animation

import (
	"sync"
	"time"

	"github.com/framegrace/texelwidgets/config"
	"github.com/framegrace/texelwidgets/internal/logging"
	"github.com/framegrace/texelwidgets/texelui/interaction"
)

// Track names a tweened drawable property.
type Track uint8

const (
	TrackHover Track = iota
	TrackFocus
	TrackOpen
)

const defaultDurationMS = 120

var (
	defaultsOnce sync.Once
	defaults     AnimateOptions
)

// DefaultOptions returns the tween options from the "animation" section of
// the system config (duration_ms, easing, enabled).
func DefaultOptions() AnimateOptions {
	defaultsOnce.Do(func() {
		cfg := config.System()
		defaults = AnimateOptions{Easing: EaseSmoothstep}
		if !cfg.GetBool("animation", "enabled", true) {
			return
		}
		ms := cfg.GetInt("animation", "duration_ms", defaultDurationMS)
		if ms < 0 {
			ms = 0
		}
		defaults.Duration = time.Duration(ms) * time.Millisecond
		name := cfg.GetString("animation", "easing", "smoothstep")
		easing, err := ParseEasing(name)
		if err != nil {
			logging.Component("animation").Warn().Err(err).Msg("falling back to smoothstep")
			return
		}
		defaults.Easing = easing
	})
	return defaults
}

// Tracks is the hover/focus pair every interactive widget animates. It
// implements interaction.Player.
type Tracks struct {
	tl   *Timeline
	opts AnimateOptions
}

// NewTracks returns tracks using opts for every transition.
func NewTracks(opts AnimateOptions) *Tracks {
	return &Tracks{tl: NewTimeline(0), opts: opts}
}

// Timeline exposes the underlying timeline (clock injection, extra keys).
func (t *Tracks) Timeline() *Timeline { return t.tl }

// Play clears the competing track instantly, then tweens the target track.
func (t *Tracks) Play(tr interaction.Transition) {
	switch tr {
	case interaction.HoverOn:
		t.tl.Set(TrackFocus, 0)
		t.tl.AnimateTo(TrackHover, 1, t.opts)
	case interaction.FocusOn:
		t.tl.Set(TrackHover, 0)
		t.tl.AnimateTo(TrackFocus, 1, t.opts)
	case interaction.HoverOff:
		t.tl.Set(TrackFocus, 0)
		t.tl.AnimateTo(TrackHover, 0, t.opts)
	}
}

// Hover returns the current hover amount in [0,1].
func (t *Tracks) Hover() float32 { return t.tl.Get(TrackHover) }

// Focus returns the current focus amount in [0,1].
func (t *Tracks) Focus() float32 { return t.tl.Get(TrackFocus) }

// Targets returns the values both tracks are heading to.
func (t *Tracks) Targets() (hover, focus float32) {
	return t.tl.Target(TrackHover), t.tl.Target(TrackFocus)
}

// Animating reports whether either track is mid-tween.
func (t *Tracks) Animating() bool { return t.tl.HasActiveAnimations() }

// Clear drops both tracks to 0 without tweening.
func (t *Tracks) Clear() {
	t.tl.Set(TrackHover, 0)
	t.tl.Set(TrackFocus, 0)
}
