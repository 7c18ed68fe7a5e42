// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	base := time.Unix(1700000000, 0)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return s
}

func TestRecordAndRecentOrder(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	require.NoError(t, s.Record(ctx, "/a"))
	require.NoError(t, s.Record(ctx, "/b"))
	require.NoError(t, s.Record(ctx, "/a"))

	visits, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	require.Equal(t, "/a", visits[0].Path)
	require.Equal(t, 2, visits[0].Count)
	require.Equal(t, "/b", visits[1].Path)
	require.True(t, visits[0].VisitedAt.After(visits[1].VisitedAt))

	limited, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestRejectsEmptyPath(t *testing.T) {
	s := openTest(t)
	err := s.Record(context.Background(), "  ")
	require.True(t, errors.Is(err, ErrEmptyPath))
}

func TestForgetAndPrune(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)
	for _, p := range []string{"/1", "/2", "/3", "/4"} {
		require.NoError(t, s.Record(ctx, p))
	}
	require.NoError(t, s.Forget(ctx, "/4"))

	removed, err := s.Prune(ctx, 2)
	require.NoError(t, err)
	require.EqualValues(t, 1, removed)

	visits, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	require.Equal(t, "/3", visits[0].Path)
	require.Equal(t, "/2", visits[1].Path)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "h.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, "/keep"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	visits, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	require.Equal(t, "/keep", visits[0].Path)
}
