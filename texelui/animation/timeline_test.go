// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package animation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/framegrace/texelwidgets/texelui/interaction"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *fakeClock { return &fakeClock{now: time.Unix(1700000000, 0)} }

func TestTimelineTweensToTarget(t *testing.T) {
	clk := newClock()
	tl := NewTimeline(0)
	tl.SetClock(clk.Now)

	opts := AnimateOptions{Duration: 100 * time.Millisecond, Easing: EaseLinear}
	if v := tl.AnimateTo("k", 1, opts); v != 0 {
		t.Fatalf("expected start value 0, got %v", v)
	}
	clk.Advance(50 * time.Millisecond)
	if v := tl.Get("k"); v < 0.49 || v > 0.51 {
		t.Fatalf("expected ~0.5 halfway, got %v", v)
	}
	if !tl.IsAnimating("k") || !tl.HasActiveAnimations() {
		t.Fatalf("expected key to be animating")
	}
	clk.Advance(60 * time.Millisecond)
	if v := tl.Get("k"); v != 1 {
		t.Fatalf("expected 1 after duration, got %v", v)
	}
	if tl.HasActiveAnimations() {
		t.Fatalf("expected animation finished")
	}
}

func TestTimelineRetargetStartsFromCurrent(t *testing.T) {
	clk := newClock()
	tl := NewTimeline(0)
	tl.SetClock(clk.Now)
	opts := AnimateOptions{Duration: 100 * time.Millisecond, Easing: EaseLinear}

	tl.AnimateTo("k", 1, opts)
	clk.Advance(50 * time.Millisecond)
	start := tl.AnimateTo("k", 0, opts)
	if start < 0.49 || start > 0.51 {
		t.Fatalf("retarget should start from current value, got %v", start)
	}
	if tl.Target("k") != 0 {
		t.Fatalf("unexpected target %v", tl.Target("k"))
	}
}

func TestTimelineInstantAndDefaults(t *testing.T) {
	tl := NewTimeline(0.25)
	if tl.Get("missing") != 0.25 {
		t.Fatalf("expected default initial")
	}
	tl.Set("k", 0.75)
	if tl.Get("k") != 0.75 || tl.IsAnimating("k") {
		t.Fatalf("set should be instant")
	}
	tl.Reset("k")
	if tl.Get("k") != 0.25 {
		t.Fatalf("reset should revert to initial")
	}
}

func TestParseEasing(t *testing.T) {
	for _, name := range []string{"linear", "Smoothstep", " ease_out_quad ", "smootherstep", "ease_in_out_cubic"} {
		fn, err := ParseEasing(name)
		if err != nil {
			t.Fatalf("ParseEasing(%q): %v", name, err)
		}
		if fn(0) != 0 || fn(1) != 1 {
			t.Fatalf("%s: endpoints not fixed", name)
		}
	}
	if _, err := ParseEasing("bounce"); err == nil {
		t.Fatalf("expected error for unknown easing")
	}
}

func TestTracksNeverTargetBoth(t *testing.T) {
	clk := newClock()
	tracks := NewTracks(AnimateOptions{Duration: 80 * time.Millisecond, Easing: EaseLinear})
	tracks.Timeline().SetClock(clk.Now)

	m := interaction.NewMachine(tracks)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		var ev interaction.Event
		switch rng.Intn(4) {
		case 0:
			ev = interaction.HoverInEvent()
		case 1:
			ev = interaction.HoverOutEvent()
		case 2:
			ev = interaction.PressDownEvent()
		default:
			ev = interaction.PressUpEvent(rng.Intn(2) == 0, rng.Intn(2) == 0)
		}
		m.Handle(ev)
		clk.Advance(time.Duration(rng.Intn(40)) * time.Millisecond)

		hover, focus := tracks.Targets()
		if hover == 1 && focus == 1 {
			t.Fatalf("step %d: both tracks target 1", i)
		}
	}
}

func TestTracksClearCompetingTrackInstantly(t *testing.T) {
	clk := newClock()
	tracks := NewTracks(AnimateOptions{Duration: 100 * time.Millisecond})
	tracks.Timeline().SetClock(clk.Now)

	tracks.Play(interaction.HoverOn)
	clk.Advance(200 * time.Millisecond)
	if tracks.Hover() != 1 {
		t.Fatalf("expected hover settled at 1, got %v", tracks.Hover())
	}
	tracks.Play(interaction.FocusOn)
	if tracks.Hover() != 0 {
		t.Fatalf("focus should clear hover immediately, got %v", tracks.Hover())
	}
	if !tracks.Animating() {
		t.Fatalf("focus should be tweening")
	}
	clk.Advance(200 * time.Millisecond)
	if tracks.Focus() != 1 {
		t.Fatalf("expected focus settled at 1, got %v", tracks.Focus())
	}
	tracks.Play(interaction.HoverOff)
	if tracks.Focus() != 0 {
		t.Fatalf("hover-off should clear focus, got %v", tracks.Focus())
	}
	tracks.Clear()
	if tracks.Hover() != 0 || tracks.Focus() != 0 {
		t.Fatalf("clear should zero both tracks")
	}
}
