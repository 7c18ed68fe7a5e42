// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Hosts a widget app in a local tcell screen.
// Usage: `texelwidgets run <app>` and the gallery use Run/RunApp; tests
// swap the screen for a simulation screen.

package devshell

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelwidgets/internal/logging"
	"github.com/framegrace/texelwidgets/texelui/core"
)

// App is what Run drives. *core.UIManager satisfies it.
type App interface {
	Resize(w, h int)
	Render() [][]core.Cell
	HandleKey(ev *tcell.EventKey) bool
	HandleMouse(ev *tcell.EventMouse) bool
	SetRefreshNotifier(ch chan<- bool)
	CursorStyle() tcell.CursorStyle
}

// Builder constructs an App, optionally using CLI args.
type Builder func(args []string) (App, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Builder{}
)

// Register makes a builder available to RunApp under name.
func Register(name string, b Builder) {
	registryMu.Lock()
	registry[name] = b
	registryMu.Unlock()
}

// Apps lists the registered app names.
func Apps() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run builds the app and runs it until Ctrl-C or ctx is cancelled. Apps
// that implement io.Closer are closed on the way out.
func Run(ctx context.Context, builder Builder, args []string) error {
	app, err := builder(args)
	if err != nil {
		return err
	}
	if c, ok := app.(interface{ Close() error }); ok {
		defer c.Close()
	}
	log := logging.Component("devshell")

	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.Clear()
	screen.EnableMouse()
	defer screen.DisableMouse()

	width, height := screen.Size()
	app.Resize(width, height)
	refreshCh := make(chan bool, 1)
	app.SetRefreshNotifier(refreshCh)

	var lastCursor tcell.CursorStyle = -1
	draw := func() {
		buffer := app.Render()
		for y, row := range buffer {
			for x, cell := range row {
				if cell.Ch == 0 {
					continue
				}
				screen.SetContent(x, y, cell.Ch, nil, cell.Style)
			}
		}
		if cs := app.CursorStyle(); cs != lastCursor {
			screen.SetCursorStyle(cs)
			lastCursor = cs
		}
		screen.Show()
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-refreshCh:
				screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-ctx.Done():
				screen.PostEvent(tcell.NewEventInterrupt(ctx))
				return
			case <-done:
				return
			}
		}
	}()

	draw()
	log.Debug().Int("w", width).Int("h", height).Msg("started")

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			log.Debug().Err(err).Msg("context done")
			return nil
		}
		switch tev := ev.(type) {
		case *tcell.EventInterrupt:
			draw()
		case *tcell.EventResize:
			w, h := tev.Size()
			app.Resize(w, h)
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC {
				return nil
			}
			app.HandleKey(tev)
			draw()
		case *tcell.EventMouse:
			app.HandleMouse(tev)
			draw()
		}
	}
}

// RunApp finds a registered builder by name and runs it.
func RunApp(ctx context.Context, name string, args []string) error {
	registryMu.RLock()
	buildApp, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown app %q", name)
	}
	return Run(ctx, buildApp, args)
}
