// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package crumbs

import (
	"fmt"
	"reflect"
	"testing"
)

type slot struct {
	id    string
	entry Entry
	binds int
}

func (s *slot) Bind(e Entry) {
	s.entry = e
	s.binds++
}

func newTestPool(created *int) *Pool[*slot] {
	return NewPool(func(i int) *slot {
		*created++
		return &slot{id: fmt.Sprintf("slot-%d", i)}
	})
}

func TestReconcileScenarios(t *testing.T) {
	cases := []struct {
		labels []string
		policy Policy
		want   []string
	}{
		{nil, PolicyKeepTail, []string{}},
		{[]string{"a"}, PolicyKeepTail, []string{"a"}},
		{[]string{"a", "b", "c"}, PolicyKeepTail, []string{"a", "b", "c"}},
		{[]string{"a", "b", "c"}, PolicyKeepHead, []string{"a", "b", "c"}},
		{[]string{"a", "b", "c", "d"}, PolicyKeepTail, []string{"a", "…", "c", "d"}},
		{[]string{"a", "b", "c", "d", "e"}, PolicyKeepHead, []string{"a", "b", "…", "e"}},
		{[]string{"a", "b", "c", "d", "e"}, PolicyKeepTail, []string{"a", "…", "d", "e"}},
		{[]string{"a", "b", "c", "d", "e"}, PolicyNone, []string{"a", "b", "c", "d", "e"}},
	}
	for _, tc := range cases {
		got := Texts(Reconcile(tc.labels, tc.policy))
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Reconcile(%v, %s) = %v, want %v", tc.labels, tc.policy, got, tc.want)
		}
	}
}

func TestReconcileLengthAndEndpoints(t *testing.T) {
	for _, policy := range []Policy{PolicyKeepTail, PolicyKeepHead} {
		for n := 0; n <= 12; n++ {
			labels := make([]string, n)
			for i := range labels {
				labels[i] = fmt.Sprintf("l%d", i)
			}
			entries := Reconcile(labels, policy)
			want := n
			if n > 3 {
				want = MaxVisible
			}
			if len(entries) != want {
				t.Fatalf("%s n=%d: got %d entries, want %d", policy, n, len(entries), want)
			}
			if n == 0 {
				continue
			}
			if entries[0].Text != labels[0] || entries[len(entries)-1].Text != labels[n-1] {
				t.Fatalf("%s n=%d: endpoints not preserved: %v", policy, n, Texts(entries))
			}
			gaps := 0
			for _, e := range entries {
				if e.Ellipsis() {
					gaps++
					continue
				}
				if labels[e.Index] != e.Text {
					t.Fatalf("%s n=%d: entry %v does not match label", policy, n, e)
				}
			}
			if (n > 3) != (gaps == 1) || gaps > 1 {
				t.Fatalf("%s n=%d: unexpected ellipsis count %d", policy, n, gaps)
			}
		}
	}
}

func TestApplyAllocatesLazilyAndIsIdempotent(t *testing.T) {
	created := 0
	pool := newTestPool(&created)

	slots, _ := Apply(pool, []string{"a"}, PolicyKeepTail)
	if created != 1 || len(slots) != 1 {
		t.Fatalf("expected 1 slot, created=%d visible=%d", created, len(slots))
	}

	slots, _ = Apply(pool, []string{"a", "b", "c"}, PolicyKeepTail)
	if created != 3 || len(slots) != 3 {
		t.Fatalf("expected 3 slots, created=%d visible=%d", created, len(slots))
	}
	first := slots[0]

	labels := []string{"a", "b", "c", "d"}
	slots, _ = Apply(pool, labels, PolicyKeepTail)
	before := created
	again, _ := Apply(pool, labels, PolicyKeepTail)
	if created != before {
		t.Fatalf("second pass allocated %d extra slots", created-before)
	}
	if !reflect.DeepEqual(slotTexts(slots), slotTexts(again)) {
		t.Fatalf("texts changed between passes: %v vs %v", slotTexts(slots), slotTexts(again))
	}
	if got := slotTexts(again); !reflect.DeepEqual(got, []string{"a", "…", "c", "d"}) {
		t.Fatalf("unexpected texts %v", got)
	}
	if again[0] != first {
		t.Fatalf("slot 0 was replaced")
	}
}

func TestShrinkLeavesSlotsDormant(t *testing.T) {
	created := 0
	pool := newTestPool(&created)

	Apply(pool, []string{"a", "b", "c"}, PolicyNone)
	visible, _ := Apply(pool, []string{"x"}, PolicyNone)
	if len(visible) != 1 || pool.Len() != 3 || created != 3 {
		t.Fatalf("visible=%d allocated=%d created=%d", len(visible), pool.Len(), created)
	}
	if pool.At(0).entry.Text != "x" {
		t.Fatalf("slot 0 not rebound: %q", pool.At(0).entry.Text)
	}
	if pool.At(2).entry.Text != "c" {
		t.Fatalf("dormant slot should keep its last text, got %q", pool.At(2).entry.Text)
	}
	if pool.At(1).id != "slot-1" {
		t.Fatalf("slot identity should derive from index, got %q", pool.At(1).id)
	}
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]Policy{
		"keep_tail": PolicyKeepTail,
		"HEAD":      PolicyKeepHead,
		"omit":      PolicyKeepHead,
		"":          PolicyNone,
	} {
		got, err := ParsePolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParsePolicy(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePolicy("middle"); err == nil {
		t.Fatalf("expected error")
	}
}

func slotTexts(slots []*slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.entry.Text
	}
	return out
}
