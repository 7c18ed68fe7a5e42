// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/gallery/register.go
// Summary: Registers the gallery with the devshell runner.

package gallery

import "github.com/framegrace/texelwidgets/internal/devshell"

func init() {
	devshell.Register("gallery", func(args []string) (devshell.App, error) {
		var opts Options
		if len(args) > 0 {
			opts.Dir = args[0]
		}
		return New(opts)
	})
}
