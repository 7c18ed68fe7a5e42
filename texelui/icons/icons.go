// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/icons/icons.go
// Summary: Icon kinds, glyphs, name coercion and file-type selection.

// Package icons provides the small glyph library used by the widgets.
package icons

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/framegrace/texelwidgets/config"
)

// ErrUnknownIcon is returned when a name does not map to a Kind.
var ErrUnknownIcon = errors.New("icons: unknown icon")

// Kind identifies an icon.
type Kind uint8

const (
	Home Kind = iota
	Folder
	File
	FileCode
	FileText
	Config
	ChevronRight
	ChevronDown
	Close
	Plus
	Minus
	Search
	Refresh
	Settings
	Check
	Dot
	Ellipsis
	ArrowLeft
	ArrowRight
	Star
	Trash
	kindCount
)

type glyph struct {
	name  string
	rich  string
	ascii string
}

var glyphs = [kindCount]glyph{
	Home:         {"home", "⌂", "~"},
	Folder:       {"folder", "▪", "[+]"},
	File:         {"file", "▫", "-"},
	FileCode:     {"file-code", "⟨⟩", "<>"},
	FileText:     {"file-text", "≡", "="},
	Config:       {"config", "⚙", "*"},
	ChevronRight: {"chevron-right", "›", ">"},
	ChevronDown:  {"chevron-down", "⌄", "v"},
	Close:        {"close", "✕", "x"},
	Plus:         {"plus", "＋", "+"},
	Minus:        {"minus", "－", "-"},
	Search:       {"search", "⌕", "?"},
	Refresh:      {"refresh", "⟳", "@"},
	Settings:     {"settings", "☰", "#"},
	Check:        {"check", "✓", "v"},
	Dot:          {"dot", "•", "o"},
	Ellipsis:     {"ellipsis", "…", "..."},
	ArrowLeft:    {"arrow-left", "←", "<"},
	ArrowRight:   {"arrow-right", "→", ">"},
	Star:         {"star", "★", "*"},
	Trash:        {"trash", "⌫", "del"},
}

func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return glyphs[k].name
}

// Glyph returns the rendering of k, using the ASCII fallback when ascii is
// set. Unknown kinds render as "?".
func (k Kind) Glyph(ascii bool) string {
	if k >= kindCount {
		return "?"
	}
	if ascii {
		return glyphs[k].ascii
	}
	return glyphs[k].rich
}

// ParseKind coerces a name such as "chevron-right" into a Kind.
func ParseKind(name string) (Kind, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for k := Kind(0); k < kindCount; k++ {
		if glyphs[k].name == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
}

// Names returns every icon name in sorted order.
func Names() []string {
	out := make([]string, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, glyphs[k].name)
	}
	sort.Strings(out)
	return out
}

// All returns every Kind in declaration order.
func All() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ASCII reports whether the system config asks for ASCII glyphs.
func ASCII() bool {
	return config.System().GetBool("icons", "ascii", false)
}

// ForPath picks an icon for a directory entry from its name.
func ForPath(name string, isDir bool) Kind {
	if isDir {
		return Folder
	}
	base := filepath.Base(name)
	if enry.IsConfiguration(base) {
		return Config
	}
	if enry.IsDocumentation(base) {
		return FileText
	}
	lang, _ := enry.GetLanguageByExtension(base)
	if lang == "" {
		lang, _ = enry.GetLanguageByFilename(base)
	}
	if lang == "" {
		return File
	}
	switch enry.GetLanguageType(lang) {
	case enry.Programming:
		return FileCode
	case enry.Data:
		return Config
	case enry.Prose, enry.Markup:
		return FileText
	}
	return File
}
