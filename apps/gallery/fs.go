// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/gallery/fs.go
// Summary: Directory listing and path/segment conversion for the browser.

package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/framegrace/texelwidgets/texelui/icons"
	"github.com/framegrace/texelwidgets/texelui/widgets"
)

// entry is one row of the Files page.
type entry struct {
	Name  string
	IsDir bool
}

func (e entry) option() widgets.Option {
	text := e.Name
	if e.IsDir {
		text += string(filepath.Separator)
	}
	return widgets.Option{Text: text, Icon: icons.ForPath(e.Name, e.IsDir)}
}

// listDir returns dir's entries, directories first, each group sorted
// case-insensitively.
func listDir(dir string, showHidden bool) ([]entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	out := make([]entry, 0, len(des))
	for _, de := range des {
		name := de.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		isDir := de.IsDir()
		if de.Type()&os.ModeSymlink != 0 {
			if fi, err := os.Stat(filepath.Join(dir, name)); err == nil {
				isDir = fi.IsDir()
			}
		}
		out = append(out, entry{Name: name, IsDir: isDir})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsDir != out[j].IsDir {
			return out[i].IsDir
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

// segments splits an absolute path into breadcrumb labels. The first
// label is the root ("/" or a volume root).
func segments(path string) []string {
	path = filepath.Clean(path)
	vol := filepath.VolumeName(path)
	root := vol + string(filepath.Separator)
	rest := strings.TrimPrefix(strings.TrimPrefix(path, vol), string(filepath.Separator))
	out := []string{root}
	if rest == "" {
		return out
	}
	return append(out, strings.Split(rest, string(filepath.Separator))...)
}

// pathAt rebuilds the path of segment i.
func pathAt(segs []string, i int) string {
	if i < 0 || i >= len(segs) {
		return ""
	}
	return filepath.Join(segs[:i+1]...)
}
