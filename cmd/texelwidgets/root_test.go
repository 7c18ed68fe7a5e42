// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/framegrace/texelwidgets/internal/history"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "texelwidgets-cli")
	if err != nil {
		panic(err)
	}
	os.Setenv("XDG_CONFIG_HOME", dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestIconsListsEveryKind(t *testing.T) {
	out, err := execute(t, "icons")
	require.NoError(t, err)
	require.Contains(t, out, "NAME")
	require.Contains(t, out, "folder")
	require.Contains(t, out, "[+]")
	require.Contains(t, out, "chevron-down")
}

func TestIconsForPaths(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(src, []byte("package main"), 0o644))

	out, err := execute(t, "icons", "--ascii", src, dir)
	require.NoError(t, err)
	require.Contains(t, out, "file-code")
	require.Contains(t, out, "folder")
}

func TestSnapshotPlain(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), nil, 0o644))

	out, err := execute(t, "snapshot", "--plain", "--dir", dir, "--width", "100", "--height", "10")
	require.NoError(t, err)
	require.Contains(t, out, "Files")
	require.Contains(t, out, "Recent")
	require.Contains(t, out, "sub"+string(filepath.Separator))
	require.Contains(t, out, "main.go")
	require.Contains(t, out, "2 entries")
	require.Contains(t, out, filepath.Base(dir))
}

func TestSnapshotIconsTab(t *testing.T) {
	out, err := execute(t, "snapshot", "--plain", "--dir", t.TempDir(), "--tab", "icons")
	require.NoError(t, err)
	require.Contains(t, out, "Navigation")
	require.Contains(t, out, "Marks")
}

func TestSnapshotRejectsBadInput(t *testing.T) {
	_, err := execute(t, "snapshot", "--tab", "nope")
	require.Error(t, err)
	_, err = execute(t, "snapshot", "--width", "0")
	require.Error(t, err)
	_, err = execute(t, "snapshot", "--dir", t.TempDir(), "--policy", "sideways")
	require.Error(t, err)
}

func TestHistoryCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "h.db")
	s, err := history.Open(db)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, s.Record(ctx, "/srv/one"))
	require.NoError(t, s.Record(ctx, "/srv/two"))
	require.NoError(t, s.Close())

	out, err := execute(t, "history", "--db", db)
	require.NoError(t, err)
	require.Contains(t, out, "/srv/one")
	require.Contains(t, out, "/srv/two")

	_, err = execute(t, "history", "forget", "--db", db, "/srv/one")
	require.NoError(t, err)
	out, err = execute(t, "history", "--db", db)
	require.NoError(t, err)
	require.NotContains(t, out, "/srv/one")

	out, err = execute(t, "history", "prune", "--db", db, "--keep", "0")
	require.NoError(t, err)
	require.Contains(t, out, "removed 1")
}

func TestThemeFlags(t *testing.T) {
	_, err := execute(t, "--theme", "no-such-palette", "icons")
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("colors:\n  nonsense: \"#fff\"\n"), 0o644))
	_, err = execute(t, "--overrides", bad, "icons")
	require.Error(t, err)

	good := filepath.Join(t.TempDir(), "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("palette: mocha\ncolors:\n  accent: \"#ffd700\"\n"), 0o644))
	out, err := execute(t, "--overrides", good, "themes")
	require.NoError(t, err)
	require.Contains(t, out, "mocha")
}

func TestRunRequiresTerminal(t *testing.T) {
	_, err := execute(t, "run")
	require.ErrorIs(t, err, errNotTerminal)
}
