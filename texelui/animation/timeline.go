// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/animation/timeline.go
// Summary: Thread-safe per-key tween timeline with configurable easing.
// Notes: The clock is injectable so tests can step time deterministically.

package animation

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// EasingFunc maps progress [0,1] to eased progress [0,1].
type EasingFunc func(progress float32) float32

var (
	EaseLinear EasingFunc = func(t float32) float32 { return t }

	// EaseSmoothstep accelerates at start and decelerates at end.
	EaseSmoothstep EasingFunc = func(t float32) float32 {
		return t * t * (3.0 - 2.0*t)
	}

	// EaseSmootherstep has zero first and second derivatives at 0 and 1.
	EaseSmootherstep EasingFunc = func(t float32) float32 {
		return t * t * t * (t*(t*6.0-15.0) + 10.0)
	}

	EaseOutQuad EasingFunc = func(t float32) float32 {
		return t * (2.0 - t)
	}

	EaseInOutCubic EasingFunc = func(t float32) float32 {
		if t < 0.5 {
			return 4.0 * t * t * t
		}
		t1 := 2.0*t - 2.0
		return 1.0 + t1*t1*t1*0.5
	}
)

var easings = map[string]EasingFunc{
	"linear":            EaseLinear,
	"smoothstep":        EaseSmoothstep,
	"smootherstep":      EaseSmootherstep,
	"ease_out_quad":     EaseOutQuad,
	"ease_in_out_cubic": EaseInOutCubic,
}

// ParseEasing resolves an easing name as used in configuration files.
func ParseEasing(name string) (EasingFunc, error) {
	if fn, ok := easings[strings.ToLower(strings.TrimSpace(name))]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("unknown easing %q", name)
}

// AnimateOptions configures one transition.
type AnimateOptions struct {
	Duration time.Duration // 0 = instant
	Easing   EasingFunc    // nil = timeline default
}

type keyState struct {
	current   float32
	start     float32
	target    float32
	startTime time.Time
	duration  time.Duration
	easing    EasingFunc
}

// Timeline keeps one tween per key.
type Timeline struct {
	mu             sync.RWMutex
	states         map[any]*keyState
	defaultEasing  EasingFunc
	defaultInitial float32
	now            func() time.Time
}

// NewTimeline creates a timeline whose keys start at defaultInitial.
func NewTimeline(defaultInitial float32) *Timeline {
	return &Timeline{
		states:         make(map[any]*keyState),
		defaultEasing:  EaseSmoothstep,
		defaultInitial: defaultInitial,
		now:            time.Now,
	}
}

// SetClock replaces the time source. nil restores time.Now.
func (tl *Timeline) SetClock(now func() time.Time) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	if now == nil {
		now = time.Now
	}
	tl.now = now
}

// AnimateTo starts or retargets a tween for key and returns the value at
// this instant.
func (tl *Timeline) AnimateTo(key any, target float32, opts AnimateOptions) float32 {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	now := tl.now()
	state := tl.states[key]
	if state == nil {
		state = &keyState{
			current: tl.defaultInitial,
			start:   tl.defaultInitial,
			target:  tl.defaultInitial,
		}
		tl.states[key] = state
	}

	current := tl.computeValue(state, now)
	state.current = current
	state.start = current
	state.target = target
	state.startTime = now
	state.duration = opts.Duration
	if opts.Easing != nil {
		state.easing = opts.Easing
	}

	if opts.Duration <= 0 || current == target {
		state.current = target
		state.duration = 0
		return target
	}
	return current
}

// Set jumps key to value with no tween.
func (tl *Timeline) Set(key any, value float32) {
	tl.AnimateTo(key, value, AnimateOptions{})
}

// Get returns the current value for key.
func (tl *Timeline) Get(key any) float32 {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	state := tl.states[key]
	if state == nil {
		return tl.defaultInitial
	}
	state.current = tl.computeValue(state, tl.now())
	return state.current
}

// Target returns the value key is heading to.
func (tl *Timeline) Target(key any) float32 {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	if state := tl.states[key]; state != nil {
		return state.target
	}
	return tl.defaultInitial
}

// IsAnimating reports whether key is mid-tween.
func (tl *Timeline) IsAnimating(key any) bool {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	state := tl.states[key]
	return state != nil && tl.runningLocked(state)
}

// HasActiveAnimations reports whether any key is mid-tween.
func (tl *Timeline) HasActiveAnimations() bool {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	for _, state := range tl.states {
		if tl.runningLocked(state) {
			return true
		}
	}
	return false
}

func (tl *Timeline) runningLocked(state *keyState) bool {
	if state.duration <= 0 || state.start == state.target {
		return false
	}
	return tl.now().Sub(state.startTime) < state.duration
}

// Reset removes key; it reverts to the default initial value.
func (tl *Timeline) Reset(key any) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	delete(tl.states, key)
}

// Clear removes all keys.
func (tl *Timeline) Clear() {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.states = make(map[any]*keyState)
}

// must be called with lock held
func (tl *Timeline) computeValue(state *keyState, now time.Time) float32 {
	if state.duration <= 0 {
		return state.target
	}
	if now.Before(state.startTime) {
		return state.start
	}
	elapsed := now.Sub(state.startTime)
	if elapsed >= state.duration {
		return state.target
	}
	progress := float32(elapsed) / float32(state.duration)
	easing := state.easing
	if easing == nil {
		easing = tl.defaultEasing
	}
	return state.start + (state.target-state.start)*easing(progress)
}
