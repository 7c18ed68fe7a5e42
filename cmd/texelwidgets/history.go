// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelwidgets/internal/history"
)

type historyFlags struct {
	db string
}

func (f *historyFlags) open() (*history.Store, error) {
	path := f.db
	if path == "" {
		var err error
		if path, err = history.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return history.Open(path)
}

func newHistoryCmd() *cobra.Command {
	flags := &historyFlags{}
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show directories visited in the gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open()
			if err != nil {
				return err
			}
			defer s.Close()
			visits, err := s.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
			fmt.Fprintln(tw, "VISITED\tCOUNT\tPATH")
			for _, v := range visits {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", v.VisitedAt.Format(time.DateTime), v.Count, v.Path)
			}
			return tw.Flush()
		},
	}
	cmd.PersistentFlags().StringVar(&flags.db, "db", "", "history database (default under the config state dir)")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show (0 for all)")

	cmd.AddCommand(&cobra.Command{
		Use:   "forget PATH",
		Short: "Remove a path from the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open()
			if err != nil {
				return err
			}
			defer s.Close()
			return s.Forget(cmd.Context(), args[0])
		},
	})

	var keep int
	prune := &cobra.Command{
		Use:   "prune",
		Short: "Keep only the most recent entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open()
			if err != nil {
				return err
			}
			defer s.Close()
			n, err := s.Prune(cmd.Context(), keep)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d\n", n)
			return nil
		},
	}
	prune.Flags().IntVar(&keep, "keep", 100, "entries to keep")
	cmd.AddCommand(prune)
	return cmd
}
