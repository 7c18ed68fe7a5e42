// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelwidgets/texelui/icons"
)

func newIconsCmd() *cobra.Command {
	var ascii bool
	cmd := &cobra.Command{
		Use:   "icons [path...]",
		Short: "List icon glyphs, or show the icon chosen for each path",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
			if len(args) == 0 {
				fmt.Fprintln(tw, "NAME\tGLYPH\tASCII")
				for _, k := range icons.All() {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", k, k.Glyph(false), k.Glyph(true))
				}
				return tw.Flush()
			}
			for _, p := range args {
				fi, err := os.Stat(p)
				isDir := err == nil && fi.IsDir()
				k := icons.ForPath(filepath.Base(p), isDir)
				fmt.Fprintf(tw, "%s\t%s\t%s\n", k.Glyph(ascii), k, p)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&ascii, "ascii", icons.ASCII(), "use ASCII glyphs for path output")
	return cmd
}
