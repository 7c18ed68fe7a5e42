// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelwidgets/apps/gallery"
	"github.com/framegrace/texelwidgets/internal/snapshot"
)

type snapshotOptions struct {
	run    runOptions
	width  int
	height int
	tab    string
	plain  bool
}

func newSnapshotCmd() *cobra.Command {
	opts := &snapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print one gallery frame to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := renderSnapshot(opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.run.dir, "dir", "", "directory to show")
	f.StringVar(&opts.run.policy, "policy", "", "breadcrumb policy: keep_tail, keep_head or none")
	f.IntVar(&opts.width, "width", 80, "frame width")
	f.IntVar(&opts.height, "height", 24, "frame height")
	f.StringVar(&opts.tab, "tab", "files", "tab to show: files, recent or icons")
	f.BoolVar(&opts.plain, "plain", false, "omit colours and attributes")
	return cmd
}

func renderSnapshot(opts *snapshotOptions) (string, error) {
	if opts.width <= 0 || opts.height <= 0 {
		return "", fmt.Errorf("invalid size %dx%d", opts.width, opts.height)
	}
	tab, err := gallery.ParseTab(opts.tab)
	if err != nil {
		return "", err
	}
	gopts := opts.run.galleryOptions()
	gopts.NoHistory = true
	g, err := gallery.New(gopts)
	if err != nil {
		return "", err
	}
	defer g.Close()
	g.Resize(opts.width, opts.height)
	g.ShowTab(tab)
	return snapshot.Render(g.Render(), snapshot.Options{Plain: opts.plain, TrimRight: true}), nil
}
