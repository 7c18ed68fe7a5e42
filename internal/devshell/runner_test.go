// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner_test.go
// Summary: Exercises the runner against a simulation screen.

package devshell_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelwidgets/internal/devshell"
	"github.com/framegrace/texelwidgets/texelui/core"
)

type stubApp struct {
	mu          sync.Mutex
	renderCount int
	resizes     [][2]int
	keys        []*tcell.EventKey
	mice        int
	refresh     chan<- bool
	closed      bool
}

func (a *stubApp) Resize(cols, rows int) {
	a.mu.Lock()
	a.resizes = append(a.resizes, [2]int{cols, rows})
	a.mu.Unlock()
}

func (a *stubApp) Render() [][]core.Cell {
	a.mu.Lock()
	a.renderCount++
	a.mu.Unlock()
	return [][]core.Cell{{{Ch: 'X'}}}
}

func (a *stubApp) HandleKey(ev *tcell.EventKey) bool {
	a.mu.Lock()
	a.keys = append(a.keys, ev)
	a.mu.Unlock()
	return true
}

func (a *stubApp) HandleMouse(ev *tcell.EventMouse) bool {
	a.mu.Lock()
	a.mice++
	a.mu.Unlock()
	return true
}

func (a *stubApp) SetRefreshNotifier(ch chan<- bool) {
	a.mu.Lock()
	a.refresh = ch
	a.mu.Unlock()
}

func (a *stubApp) notifier() chan<- bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.refresh
}
func (a *stubApp) CursorStyle() tcell.CursorStyle  { return tcell.CursorStyleDefault }

func (a *stubApp) Close() error {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
	return nil
}

func (a *stubApp) renderCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.renderCount
}

func (a *stubApp) lastResize() (int, int, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.resizes) == 0 {
		return 0, 0, false
	}
	last := a.resizes[len(a.resizes)-1]
	return last[0], last[1], true
}

func (a *stubApp) recordedKeys() []*tcell.EventKey {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]*tcell.EventKey(nil), a.keys...)
}

func (a *stubApp) isClosed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closed
}

func simulate(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	devshell.SetScreenFactory(func() (tcell.Screen, error) { return screen, nil })
	t.Cleanup(func() { devshell.SetScreenFactory(nil) })
	return screen
}

func TestRunHandlesInputRefreshAndShutdown(t *testing.T) {
	screen := simulate(t)
	app := &stubApp{}
	builder := func(args []string) (devshell.App, error) {
		if len(args) != 1 || args[0] != "demo" {
			return nil, errors.New("unexpected args")
		}
		return app, nil
	}

	errCh := make(chan error, 1)
	go func() { errCh <- devshell.Run(context.Background(), builder, []string{"demo"}) }()

	waitFor(func() bool { return app.renderCalls() > 0 }, time.Second, t, "initial render")
	first := app.renderCalls()

	waitFor(func() bool { return app.notifier() != nil }, time.Second, t, "refresh notifier")
	app.notifier() <- true
	waitFor(func() bool { return app.renderCalls() > first }, time.Second, t, "render after refresh")

	screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'x', 0))
	waitFor(func() bool {
		keys := app.recordedKeys()
		return len(keys) > 0 && keys[0].Rune() == 'x'
	}, time.Second, t, "key press to be handled")

	screen.PostEvent(tcell.NewEventResize(50, 12))
	waitFor(func() bool {
		w, h, ok := app.lastResize()
		return ok && w == 50 && h == 12
	}, time.Second, t, "resize event to be handled")

	screen.PostEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, 0))
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run did not exit after Ctrl-C")
	}
	if !app.isClosed() {
		t.Fatal("app was not closed")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	simulate(t)
	app := &stubApp{}
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- devshell.Run(ctx, func([]string) (devshell.App, error) { return app, nil }, nil)
	}()
	waitFor(func() bool { return app.renderCalls() > 0 }, time.Second, t, "initial render")
	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run did not exit after cancel")
	}
}

func TestRunDrivesUIManager(t *testing.T) {
	screen := simulate(t)
	ui := core.NewUIManager()
	devshell.Register("ui-test", func([]string) (devshell.App, error) { return ui, nil })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- devshell.RunApp(ctx, "ui-test", nil) }()

	waitFor(func() bool {
		w, _ := ui.Size()
		return w > 0
	}, time.Second, t, "ui resized to the screen")
	screen.PostEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, 0))
	if err := <-errCh; err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	found := false
	for _, n := range devshell.Apps() {
		found = found || n == "ui-test"
	}
	if !found {
		t.Fatal("registered app not listed")
	}
}

func TestRunAppUnknownReturnsError(t *testing.T) {
	if err := devshell.RunApp(context.Background(), "does-not-exist", nil); err == nil {
		t.Fatal("expected error for unknown app")
	}
}

func waitFor(cond func() bool, timeout time.Duration, t *testing.T, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for %s", msg)
}
