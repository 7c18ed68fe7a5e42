// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/framegrace/texelwidgets/texelui/theme"
)

func newThemesCmd() *cobra.Command {
	var withChroma bool
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List palettes with an accent swatch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := theme.Names()
			if withChroma {
				names = append(names, theme.ChromaNames()...)
			}
			r := lipgloss.NewRenderer(cmd.OutOrStdout())
			for _, n := range names {
				t, err := theme.Palette(n)
				if err != nil {
					continue
				}
				swatch := r.NewStyle().
					Background(lipgloss.Color(t.Hex(theme.BgBase))).
					Foreground(lipgloss.Color(t.Hex(theme.Accent))).
					Render(" Aa ")
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", swatch, n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withChroma, "chroma", false, "include chroma styles")
	return cmd
}
