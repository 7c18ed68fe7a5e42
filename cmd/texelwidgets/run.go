// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/framegrace/texelwidgets/apps/gallery"
	"github.com/framegrace/texelwidgets/internal/devshell"
)

var errNotTerminal = errors.New("run needs an interactive terminal; try `texelwidgets snapshot`")

type runOptions struct {
	dir       string
	policy    string
	noHistory bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [app] [args...]",
		Short: "Run a widget app in the terminal (default: gallery)",
		Long:  "Run a widget app in the terminal. Registered apps: " + strings.Join(devshell.Apps(), ", "),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
				return errNotTerminal
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runApp(ctx, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.dir, "dir", "", "starting directory for the gallery")
	cmd.Flags().StringVar(&opts.policy, "policy", "", "breadcrumb policy: keep_tail, keep_head or none")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "do not record visited directories")
	return cmd
}

func runApp(ctx context.Context, opts *runOptions, args []string) error {
	name := "gallery"
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}
	if name != "gallery" {
		return devshell.RunApp(ctx, name, args)
	}
	return devshell.Run(ctx, func([]string) (devshell.App, error) {
		return gallery.New(opts.galleryOptions())
	}, args)
}

func (o *runOptions) galleryOptions() gallery.Options {
	return gallery.Options{Dir: o.dir, Policy: o.policy, NoHistory: o.noHistory}
}
