// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/crumbs/crumbs.go
// Summary: Truncated path reconciliation and the reusable child slot pool.

// Package crumbs maps a logical label list onto a bounded number of visible
// entries and keeps a pool of reusable child slots in step with them.
package crumbs

import (
	"fmt"
	"strings"
)

// Ellipsis is the placeholder shown in place of elided labels.
const Ellipsis = "…"

const (
	// MaxVisible is the number of entries a truncated list renders.
	MaxVisible = 4
	// truncateAbove is the longest list rendered verbatim.
	truncateAbove = 3
)

// Policy selects which labels survive truncation.
type Policy uint8

const (
	// PolicyNone renders every label.
	PolicyNone Policy = iota
	// PolicyKeepTail keeps the first and the last two labels:
	// [l0, …, l[n-2], l[n-1]].
	PolicyKeepTail
	// PolicyKeepHead keeps the first two labels and the last one:
	// [l0, l1, …, l[n-1]].
	PolicyKeepHead
)

func (p Policy) String() string {
	switch p {
	case PolicyKeepTail:
		return "keep_tail"
	case PolicyKeepHead:
		return "keep_head"
	default:
		return "none"
	}
}

// ParsePolicy accepts the names produced by String.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return PolicyNone, nil
	case "keep_tail", "tail":
		return PolicyKeepTail, nil
	case "keep_head", "head", "omit":
		return PolicyKeepHead, nil
	}
	return PolicyNone, fmt.Errorf("unknown truncation policy %q", s)
}

// Entry is one rendered position.
type Entry struct {
	Text string
	// Index is the logical label index, -1 for the ellipsis.
	Index int
}

// Ellipsis reports whether e is the inert placeholder.
func (e Entry) Ellipsis() bool { return e.Index < 0 }

// Reconcile returns the entries to render for labels under p. Labels are
// copied verbatim; only the ellipsis is synthesised.
func Reconcile(labels []string, p Policy) []Entry {
	n := len(labels)
	if n <= truncateAbove || p == PolicyNone {
		out := make([]Entry, n)
		for i, l := range labels {
			out[i] = Entry{Text: l, Index: i}
		}
		return out
	}
	gap := Entry{Text: Ellipsis, Index: -1}
	switch p {
	case PolicyKeepHead:
		return []Entry{
			{Text: labels[0], Index: 0},
			{Text: labels[1], Index: 1},
			gap,
			{Text: labels[n-1], Index: n - 1},
		}
	default:
		return []Entry{
			{Text: labels[0], Index: 0},
			gap,
			{Text: labels[n-2], Index: n - 2},
			{Text: labels[n-1], Index: n - 1},
		}
	}
}

// Texts returns the display strings of entries.
func Texts(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text
	}
	return out
}

// Pool is a growable, order-stable set of child slots keyed by position.
// Slots are created on first use and never removed.
type Pool[T any] struct {
	slots []T
	newFn func(i int) T
}

// NewPool returns an empty pool that builds slot i with newFn.
func NewPool[T any](newFn func(i int) T) *Pool[T] {
	return &Pool[T]{newFn: newFn}
}

// Sync makes sure slots 0..n-1 exist and returns them. Slots past n stay
// allocated but are not returned.
func (p *Pool[T]) Sync(n int) []T {
	for i := len(p.slots); i < n; i++ {
		p.slots = append(p.slots, p.newFn(i))
	}
	if n < 0 {
		n = 0
	}
	return p.slots[:n]
}

// Len returns the number of allocated slots.
func (p *Pool[T]) Len() int { return len(p.slots) }

// At returns slot i; it panics when i is out of range like a slice index.
func (p *Pool[T]) At(i int) T { return p.slots[i] }

// All returns every allocated slot, including dormant ones.
func (p *Pool[T]) All() []T { return p.slots }

// Binder is implemented by slots that display an entry.
type Binder interface {
	Bind(e Entry)
}

// Apply reconciles labels under policy into pool, binding each visible
// slot, and returns the visible slots with their entries.
func Apply[T Binder](pool *Pool[T], labels []string, policy Policy) ([]T, []Entry) {
	entries := Reconcile(labels, policy)
	slots := pool.Sync(len(entries))
	for i, e := range entries {
		slots[i].Bind(e)
	}
	return slots, entries
}
