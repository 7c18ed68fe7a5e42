// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelwidgets/root.go
// Summary: Root command, logging setup and theme selection shared by all
// subcommands.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelwidgets/config"
	"github.com/framegrace/texelwidgets/internal/logging"
	"github.com/framegrace/texelwidgets/texelui/theme"
)

const logFileName = "texelwidgets.log"

type rootFlags struct {
	theme     string
	overrides string
	logFile   string
	logLevel  string

	logCloser io.Closer
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "texelwidgets",
		Short:         "Terminal widget toolkit with animated interaction states",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.setupLogging(cmd); err != nil {
				return err
			}
			return flags.applyTheme()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if flags.logCloser != nil {
				return flags.logCloser.Close()
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.theme, "theme", "", "palette name (built-in or chroma style)")
	pf.StringVar(&flags.overrides, "overrides", "", "YAML theme override file, or builtin:<name>")
	pf.StringVar(&flags.logFile, "log-file", "", "write logs to this file")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newSnapshotCmd())
	cmd.AddCommand(newIconsCmd())
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newHistoryCmd())
	return cmd
}

// setupLogging points the process logger at a file. The interactive run
// command owns the terminal, so it always logs to a file; the other
// commands log to stderr unless a file is configured.
func (f *rootFlags) setupLogging(cmd *cobra.Command) error {
	sys := config.System()
	opts := logging.Options{
		Level:         f.logLevel,
		File:          f.logFile,
		HumanReadable: true,
	}
	if opts.Level == "" {
		opts.Level = sys.GetString("logging", "level", "info")
	}
	if opts.File == "" {
		opts.File = sys.GetString("logging", "file", "")
	}
	if opts.File == "" {
		if cmd.Name() == "run" {
			path, err := config.StatePath(logFileName)
			if err != nil {
				return fmt.Errorf("log path: %w", err)
			}
			opts.File = path
		} else {
			opts.Writer = cmd.ErrOrStderr()
			opts.Level = "warn"
			if f.logLevel != "" {
				opts.Level = f.logLevel
			}
		}
	}
	closer, err := logging.Setup(opts)
	if err != nil {
		return err
	}
	f.logCloser = closer
	if err := config.Err(); err != nil {
		logging.Component("config").Warn().Err(err).Msg("using default configuration")
	}
	return nil
}

func (f *rootFlags) applyTheme() error {
	if f.theme != "" {
		t, err := theme.Palette(f.theme)
		if err != nil {
			return err
		}
		theme.Set(t)
	}
	if f.overrides != "" {
		o, err := theme.LoadOverrides(f.overrides)
		if err != nil {
			return err
		}
		t, err := o.Apply(theme.Get())
		if err != nil {
			return fmt.Errorf("apply theme overrides: %w", err)
		}
		theme.Set(t)
	}
	return nil
}
