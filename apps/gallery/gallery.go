// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/gallery/gallery.go
// Summary: Widget gallery: a small file browser built from every widget.
// Usage: `texelwidgets run gallery [dir]` or devshell.RunApp("gallery").
// Notes: Layout is
//
//	row 0      tool buttons, breadcrumb of the current directory
//	row 1      tabs: Files / Recent / Icons
//	rows 2..   bordered page area
//	last row   status line

package gallery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/framegrace/texelwidgets/config"
	"github.com/framegrace/texelwidgets/internal/history"
	"github.com/framegrace/texelwidgets/internal/logging"
	"github.com/framegrace/texelwidgets/texelui/core"
	"github.com/framegrace/texelwidgets/texelui/crumbs"
	"github.com/framegrace/texelwidgets/texelui/icons"
	"github.com/framegrace/texelwidgets/texelui/interaction"
	"github.com/framegrace/texelwidgets/texelui/scroll"
	"github.com/framegrace/texelwidgets/texelui/theme"
	"github.com/framegrace/texelwidgets/texelui/widgets"
)

const (
	tabFiles = iota
	tabRecent
	tabIcons
)

var tabLabels = []string{"Files", "Recent", "Icons"}

// ParseTab returns the index of the tab called name, ignoring case.
func ParseTab(name string) (int, error) {
	for i, l := range tabLabels {
		if strings.EqualFold(l, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("unknown tab %q (want files, recent or icons)", name)
}

// Options configures a gallery. Zero values fall back to the "gallery" app
// config.
type Options struct {
	// Dir is the starting directory; the working directory when empty.
	Dir string
	// Policy overrides breadcrumb.policy when set.
	Policy string
	// History is used instead of opening the default store. The gallery
	// does not close a store it was given.
	History *history.Store
	// NoHistory disables visit recording.
	NoHistory bool
}

// Gallery hosts the widgets in a UIManager. It satisfies devshell.App.
type Gallery struct {
	ui   *core.UIManager
	log  *zerolog.Logger
	w, h int

	hist       *history.Store
	ownsHist   bool
	histLimit  int
	showHidden bool

	dir     string
	segs    []string
	entries []entry
	visits  []history.Visit

	bar      *widgets.Pane
	crumbs   *widgets.Breadcrumb
	tabs     *widgets.TabBar
	up       *widgets.ToolButton
	reload   *widgets.ToolButton
	open     *widgets.ToolButton
	policy   *widgets.ToolButton
	hidden   *widgets.Checkbox
	frame    *widgets.Border
	pages    *deck
	files    *widgets.Select
	recent   *widgets.Select
	sections *stack
	iconPane *scroll.ScrollPane
	status   *widgets.Label
}

// New builds the gallery and lists the starting directory.
func New(opts Options) (*Gallery, error) {
	cfg := config.App("gallery")
	g := &Gallery{
		ui:         core.NewUIManager(),
		log:        logging.Component("gallery"),
		histLimit:  cfg.GetInt("gallery", "history_limit", 20),
		showHidden: cfg.GetBool("gallery", "show_hidden", false),
	}

	policyName := opts.Policy
	if policyName == "" {
		policyName = cfg.GetString("breadcrumb", "policy", "keep_tail")
	}
	policy, err := crumbs.ParsePolicy(policyName)
	if err != nil {
		if opts.Policy != "" {
			return nil, err
		}
		g.log.Warn().Err(err).Msg("bad breadcrumb policy in config, using keep_tail")
		policy = crumbs.PolicyKeepTail
	}

	switch {
	case opts.History != nil:
		g.hist = opts.History
	case !opts.NoHistory && cfg.GetBool("gallery", "history_enabled", true):
		if err := g.openHistory(); err != nil {
			g.log.Warn().Err(err).Msg("history disabled")
		}
	}

	g.build(cfg, policy)

	dir := opts.Dir
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			g.Close()
			return nil, fmt.Errorf("working directory: %w", err)
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	if err := g.Navigate(dir); err != nil {
		g.Close()
		return nil, err
	}
	g.Resize(80, 24)
	return g, nil
}

func (g *Gallery) openHistory() error {
	path, err := history.DefaultPath()
	if err != nil {
		return err
	}
	s, err := history.Open(path)
	if err != nil {
		return err
	}
	g.hist, g.ownsHist = s, true
	return nil
}

func (g *Gallery) build(cfg config.Config, policy crumbs.Policy) {
	g.up = g.tool("up", icons.ArrowLeft, "Up")
	g.reload = g.tool("refresh", icons.Refresh, "")
	g.open = g.tool("open", icons.Check, "Open")
	g.policy = g.tool("policy", icons.Settings, policy.String())
	g.policy.EnableCursor(tcell.CursorStyleBlinkingBlock)

	g.hidden = widgets.NewCheckbox(0, 0, "Hidden")
	g.hidden.SetID("hidden")
	g.hidden.SetChecked(g.showHidden)
	g.hidden.OnEvent = g.onHidden

	g.crumbs = widgets.NewBreadcrumb(0, 0, 0)
	g.crumbs.SetID("crumbs")
	g.crumbs.Separator = cfg.GetString("breadcrumb", "separator", "›")
	g.crumbs.ShowHome = cfg.GetBool("breadcrumb", "show_home", true)
	g.crumbs.SetPolicy(policy)
	g.crumbs.OnEvent = g.onCrumb

	g.tabs = widgets.NewTabBar(0, 1, 0, tabLabels)
	g.tabs.SetID("tabs")
	g.tabs.OnEvent = g.onTab

	g.files = widgets.NewSelect(0, 0, 0, 0)
	g.files.SetID("files")
	g.files.OnEvent = g.onFile

	g.recent = widgets.NewSelect(0, 0, 0, 0)
	g.recent.SetID("recent")
	g.recent.OnEvent = g.onRecent

	g.sections = &stack{}
	for i, grp := range iconGroups {
		c := widgets.NewCollapse(0, 0, 0, len(grp.kinds), grp.title, newIconList(grp.kinds))
		c.SetID(fmt.Sprintf("section-%d", i))
		c.OnEvent = g.onSection
		g.sections.add(c, len(grp.kinds))
	}

	g.iconPane = scroll.NewScrollPane(0, 0, 0, 0)
	g.iconPane.SetChild(g.sections)
	g.pages = newDeck(g.files, g.recent, g.iconPane)
	g.frame = widgets.NewBorder(0, 2, 0, 0)
	g.frame.Title = tabLabels[tabFiles]
	g.frame.SetChild(g.pages)

	g.status = widgets.NewLabel(0, 0, 0, "")
	g.status.Muted = true

	g.bar = widgets.NewPane(0, 0, 0, 1)
	g.bar.Bg = theme.BgSurface
	for _, w := range []core.Widget{g.up, g.reload, g.open, g.policy, g.hidden, g.crumbs} {
		g.bar.Add(w)
	}
	for _, w := range []core.Widget{g.bar, g.tabs, g.frame, g.status} {
		g.ui.AddWidget(w)
	}
	g.ui.Focus(g.files)
}

func (g *Gallery) tool(id string, k icons.Kind, label string) *widgets.ToolButton {
	tb := widgets.NewToolButton(0, 0, k, label)
	tb.SetID(id)
	tb.OnEvent = g.onTool
	return tb
}

func (g *Gallery) layout(w, h int) {
	x := 0
	for _, tb := range []*widgets.ToolButton{g.up, g.reload, g.open, g.policy} {
		tb.SetPosition(x, 0)
		tb.Resize(tb.Width(), 1)
		x += tb.Width() + 1
	}
	g.hidden.SetPosition(x, 0)
	g.hidden.Resize(g.hidden.Width(), 1)
	x += g.hidden.Width() + 1
	g.bar.Resize(w, 1)
	g.crumbs.SetPosition(x, 0)
	g.crumbs.Resize(max(w-x, 0), 1)
	g.tabs.SetPosition(0, 1)
	g.tabs.Resize(w, 1)
	g.frame.SetPosition(0, 2)
	g.frame.Resize(w, max(h-3, 0))
	g.status.SetPosition(0, max(h-1, 0))
	g.status.Resize(w, 1)
}

// Dir returns the directory being shown.
func (g *Gallery) Dir() string { return g.dir }

// UI returns the hosting manager.
func (g *Gallery) UI() *core.UIManager { return g.ui }

// Status returns the status line text.
func (g *Gallery) Status() string { return g.status.Text() }

// Navigate lists dir and makes it current. On error the current directory
// stays and the status line shows the failure.
func (g *Gallery) Navigate(dir string) error {
	entries, err := listDir(dir, g.showHidden)
	if err != nil {
		g.log.Warn().Err(err).Str("dir", dir).Msg("navigate failed")
		g.status.SetText(err.Error())
		return err
	}
	g.dir = filepath.Clean(dir)
	g.segs = segments(g.dir)
	g.entries = entries
	g.crumbs.SetPath(g.segs)

	opts := make([]widgets.Option, len(entries))
	for i, e := range entries {
		opts[i] = e.option()
	}
	g.files.SetItems(opts)
	g.status.SetText(fmt.Sprintf("%d entries", len(entries)))
	g.record(g.dir)
	g.log.Debug().Str("dir", g.dir).Int("entries", len(entries)).Msg("navigated")
	return nil
}

func (g *Gallery) record(dir string) {
	if g.hist == nil {
		return
	}
	if err := g.hist.Record(context.Background(), dir); err != nil {
		g.log.Warn().Err(err).Msg("record visit")
	}
}

func (g *Gallery) loadRecent() {
	g.visits = nil
	if g.hist != nil {
		v, err := g.hist.Recent(context.Background(), g.histLimit)
		if err != nil {
			g.log.Warn().Err(err).Msg("load history")
		}
		g.visits = v
	}
	opts := make([]widgets.Option, len(g.visits))
	for i, v := range g.visits {
		opts[i] = widgets.Option{Text: v.Path, Icon: icons.Folder}
	}
	g.recent.SetItems(opts)
}

// ShowTab switches the page area to tab i.
func (g *Gallery) ShowTab(i int) {
	if i < 0 || i >= len(tabLabels) {
		return
	}
	g.tabs.SetSelected(i)
	if i == tabRecent {
		g.loadRecent()
	}
	g.pages.show(i)
	g.frame.Title = tabLabels[i]
	g.frame.Invalidate()
}

// OpenSelected opens the highlighted entry of the current page.
func (g *Gallery) OpenSelected() {
	switch g.tabs.Selected() {
	case tabFiles:
		g.openEntry(g.files.Selected())
	case tabRecent:
		g.openVisit(g.recent.Selected())
	}
}

func (g *Gallery) openEntry(i int) {
	if i < 0 || i >= len(g.entries) {
		return
	}
	e := g.entries[i]
	if e.IsDir {
		g.Navigate(filepath.Join(g.dir, e.Name))
		return
	}
	g.status.SetText(fmt.Sprintf("%s (%s)", e.Name, icons.ForPath(e.Name, false)))
}

func (g *Gallery) openVisit(i int) {
	if i < 0 || i >= len(g.visits) {
		return
	}
	if g.Navigate(g.visits[i].Path) == nil {
		g.ShowTab(tabFiles)
	}
}

// CyclePolicy steps the breadcrumb through keep_tail, keep_head and none.
func (g *Gallery) CyclePolicy() {
	next := map[crumbs.Policy]crumbs.Policy{
		crumbs.PolicyKeepTail: crumbs.PolicyKeepHead,
		crumbs.PolicyKeepHead: crumbs.PolicyNone,
		crumbs.PolicyNone:     crumbs.PolicyKeepTail,
	}[g.crumbs.Policy()]
	g.crumbs.SetPolicy(next)
	g.policy.SetLabel(next.String())
	// Runs inside event dispatch, so the manager's size is not queried here.
	g.layout(g.w, g.h)
	g.ui.InvalidateAll()
}

func (g *Gallery) onCrumb(n interaction.Notification) {
	switch n.Kind {
	case interaction.NoteClicked:
		if n.Part == interaction.PartIcon {
			home, err := os.UserHomeDir()
			if err != nil {
				g.status.SetText(err.Error())
				return
			}
			g.Navigate(home)
			return
		}
		if p := pathAt(g.segs, n.Index); p != "" {
			g.Navigate(p)
		}
	case interaction.NoteHoverIn:
		if n.Part == interaction.PartIcon {
			g.status.SetText("go home")
		} else if p := pathAt(g.segs, n.Index); p != "" {
			g.status.SetText("go to " + p)
		}
	}
}

func (g *Gallery) onTab(n interaction.Notification) {
	if n.Kind == interaction.NoteChanged {
		g.ShowTab(n.Index)
	}
}

func (g *Gallery) onTool(n interaction.Notification) {
	if n.Kind != interaction.NoteClicked {
		return
	}
	switch n.Scope {
	case "up":
		if parent := filepath.Dir(g.dir); parent != g.dir {
			g.Navigate(parent)
		}
	case "refresh":
		g.Navigate(g.dir)
	case "open":
		g.OpenSelected()
	case "policy":
		g.CyclePolicy()
	}
}

func (g *Gallery) onHidden(n interaction.Notification) {
	if n.Kind != interaction.NoteChanged {
		return
	}
	g.showHidden = n.Index == 1
	g.Navigate(g.dir)
}

// Selected rows ignore the pointer, so a mouse selection opens the row
// right away. From the keyboard, arrows only select and Enter opens.
func (g *Gallery) onFile(n interaction.Notification) {
	switch {
	case n.Kind == interaction.NoteClicked && n.Mouse == nil:
		g.openEntry(n.Index)
	case n.Kind == interaction.NoteChanged:
		g.status.SetText(n.Text)
		if n.Mouse != nil {
			g.openEntry(n.Index)
		}
	}
}

func (g *Gallery) onRecent(n interaction.Notification) {
	switch {
	case n.Kind == interaction.NoteClicked && n.Mouse == nil,
		n.Kind == interaction.NoteChanged && n.Mouse != nil:
		g.openVisit(n.Index)
	}
}

func (g *Gallery) onSection(n interaction.Notification) {
	if n.Kind != interaction.NoteChanged {
		return
	}
	state := "closed"
	if n.Index == 1 {
		state = "opened"
	}
	g.status.SetText(n.Text + " " + state)
}

// Resize lays the widgets out for a w x h terminal.
func (g *Gallery) Resize(w, h int) {
	g.w, g.h = w, h
	g.ui.Resize(w, h)
	g.layout(w, h)
}

func (g *Gallery) Render() [][]core.Cell { return g.ui.Render() }

// HandleKey routes to the focused widget. Backspace goes up a directory
// when nothing consumed it.
func (g *Gallery) HandleKey(ev *tcell.EventKey) bool {
	if g.ui.HandleKey(ev) {
		return true
	}
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		g.onTool(interaction.Notification{Kind: interaction.NoteClicked, Scope: "up"})
		return true
	}
	return false
}

func (g *Gallery) HandleMouse(ev *tcell.EventMouse) bool { return g.ui.HandleMouse(ev) }

func (g *Gallery) SetRefreshNotifier(ch chan<- bool) { g.ui.SetRefreshNotifier(ch) }

func (g *Gallery) CursorStyle() tcell.CursorStyle { return g.ui.CursorStyle() }

// Close releases the history store when the gallery opened it.
func (g *Gallery) Close() error {
	if g.ownsHist && g.hist != nil {
		err := g.hist.Close()
		g.hist = nil
		return err
	}
	return nil
}
