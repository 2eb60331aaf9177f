// Package tui provides the terminal user interface for lineup's watch
// mode: a live report view that re-validates the placement file on
// every change.
package tui

import (
	"bytes"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lineup/internal/engine"
	"lineup/internal/ingest"
	"lineup/internal/render"
)

// linesMsg carries a fresh line set from the watcher.
type linesMsg []string

// watchErrMsg carries a watcher or read error.
type watchErrMsg struct{ err error }

// WatchApp is the bubbletea model for watch mode.
type WatchApp struct {
	source  string
	engine  *engine.Engine
	watcher *ingest.Watcher

	viewport viewport.Model
	ready    bool

	runs    int
	lastRun time.Time
	err     error

	headerStyle lipgloss.Style
	statusStyle lipgloss.Style
	errStyle    lipgloss.Style
	hintStyle   lipgloss.Style
}

// NewWatchApp creates a watch-mode app over an engine and a running
// watcher. The app owns neither; the caller closes the watcher after
// the program exits.
func NewWatchApp(source string, eng *engine.Engine, w *ingest.Watcher) *WatchApp {
	return &WatchApp{
		source:  source,
		engine:  eng,
		watcher: w,

		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("45")).
			Bold(true),

		statusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),

		errStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),

		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// Init starts listening for line sets.
func (a *WatchApp) Init() tea.Cmd {
	return a.waitForChange()
}

// waitForChange blocks on the watcher until the file changes.
func (a *WatchApp) waitForChange() tea.Cmd {
	return func() tea.Msg {
		select {
		case lines, ok := <-a.watcher.Lines():
			if !ok {
				return tea.Quit()
			}
			return linesMsg(lines)
		case err, ok := <-a.watcher.Errors():
			if !ok {
				return tea.Quit()
			}
			return watchErrMsg{err: err}
		}
	}
}

// Update handles messages.
func (a *WatchApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := 1
		footerHeight := 1
		if !a.ready {
			a.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			a.ready = true
		} else {
			a.viewport.Width = msg.Width
			a.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		return a, nil

	case linesMsg:
		res := a.engine.Validate(msg)
		a.runs++
		a.lastRun = time.Now()
		a.err = nil

		var buf bytes.Buffer
		if err := render.Text(&buf, res, false); err != nil {
			a.err = err
		} else {
			a.viewport.SetContent(buf.String())
		}
		return a, a.waitForChange()

	case watchErrMsg:
		a.err = msg.err
		return a, a.waitForChange()
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// View renders the watch screen.
func (a *WatchApp) View() string {
	if !a.ready {
		return "loading..."
	}

	header := a.headerStyle.Render(fmt.Sprintf("lineup watch · %s", a.source))

	status := ""
	if a.err != nil {
		status = a.errStyle.Render(fmt.Sprintf("error: %v", a.err))
	} else if a.runs > 0 {
		status = a.statusStyle.Render(fmt.Sprintf("run %d at %s", a.runs, a.lastRun.Format("15:04:05")))
	}
	hints := a.hintStyle.Render("  ↑/↓ scroll · q quit")

	return header + "\n" + a.viewport.View() + "\n" + status + hints
}
