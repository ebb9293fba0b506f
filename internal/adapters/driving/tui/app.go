package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/markpad-labs/markpad-cli/internal/adapters/driving/tui/components/status"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driving/tui/keymap"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driving/tui/messages"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driving/tui/styles"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driving/tui/views/editor"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driving/tui/views/palette"
	"github.com/markpad-labs/markpad-cli/internal/adapters/driving/tui/views/sidebar"
	"github.com/markpad-labs/markpad-cli/internal/core/ports/driving"
)

// sidebarWidth is the fixed width of the document list pane.
const sidebarWidth = 30

// statusMessageTTL is how long transient save/export feedback stays in
// the status bar.
const statusMessageTTL = 3 * time.Second

// focusTarget identifies which pane receives key input.
type focusTarget int

const (
	focusEditor focusTarget = iota
	focusSidebar
	focusPalette
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	editorView  *editor.View
	sidebarView *sidebar.View
	paletteView *palette.View
	statusBar   *status.Bar

	focus focusTarget
	err   error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		editorView:  editor.NewView(s, ports.Session),
		sidebarView: sidebar.NewView(s, ports.Session),
		paletteView: palette.NewView(s, ports.Palette),
		statusBar:   status.NewBar(s, km),
		focus:       focusEditor,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It starts the session and begins listening for its events.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("markpad"),
		a.startSession(),
		a.editorView.Init(),
	)
}

// startSession resolves the initial document off the update loop.
func (a *App) startSession() tea.Cmd {
	return func() tea.Msg {
		err := a.ports.Session.Start(a.ctx)
		return messages.SessionStarted{Err: err}
	}
}

// waitForSessionEvent blocks on the session's event channel.
func (a *App) waitForSessionEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-a.ports.Session.Events()
		if !ok {
			return nil
		}
		return messages.SessionNotification{Event: ev}
	}
}

// expireStatus clears transient feedback after a short delay.
func expireStatus() tea.Cmd {
	return tea.Tick(statusMessageTTL, func(time.Time) tea.Msg {
		return messages.StatusExpired{}
	})
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout()
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case messages.SessionStarted:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.sidebarView.Refresh()
		a.editorView.Rebind()
		a.syncStatusTitle()
		if a.ports.Session.ConsumeFocusRequest() {
			a.focus = focusEditor
			cmd = a.editorView.Focus()
		}
		return a, tea.Batch(cmd, a.waitForSessionEvent())

	case messages.SessionNotification:
		return a.updateSessionEvent(msg.Event)

	case messages.DocumentSelected:
		if msg.Err != nil {
			return a, a.reportError(msg.Err)
		}
		a.closePalette()
		a.editorView.Rebind()
		a.sidebarView.Refresh()
		a.syncStatusTitle()
		a.focus = focusEditor
		a.statusBar.SetSidebarFocus(false)
		return a, a.editorView.Focus()

	case messages.DocumentCreated:
		if msg.Err != nil {
			return a, a.reportError(msg.Err)
		}
		return a, nil

	case messages.DocumentRenamed:
		if msg.Err != nil {
			return a, a.reportError(msg.Err)
		}
		a.sidebarView.Refresh()
		a.syncStatusTitle()
		return a, nil

	case messages.DocumentDeleted:
		if msg.Err != nil {
			return a, a.reportError(msg.Err)
		}
		a.sidebarView.Refresh()
		a.editorView.Rebind()
		a.syncStatusTitle()
		return a, nil

	case messages.SaveCompleted:
		if msg.Err != nil {
			return a, a.reportError(msg.Err)
		}
		a.statusBar.SetState(status.StateSaved)
		a.statusBar.SetMessage("Saved")
		return a, expireStatus()

	case messages.ExportCompleted:
		if msg.Err != nil {
			return a, a.reportError(msg.Err)
		}
		a.statusBar.SetState(status.StateSaved)
		a.statusBar.SetMessage("Exported to " + msg.Path)
		return a, expireStatus()

	case messages.TitleCopied:
		if msg.Err != nil {
			return a, a.reportError(msg.Err)
		}
		a.statusBar.SetState(status.StateSaved)
		a.statusBar.SetMessage("Title copied")
		return a, expireStatus()

	case messages.PaletteClosed:
		a.closePalette()
		// A palette command may have switched or created the current
		// document; Rebind is a no-op when it has not.
		a.editorView.Rebind()
		a.sidebarView.Refresh()
		a.syncStatusTitle()
		a.focus = focusEditor
		a.statusBar.SetSidebarFocus(false)
		return a, a.editorView.Focus()

	case messages.ErrorOccurred:
		return a, a.reportError(msg.Err)

	case messages.StatusExpired:
		a.statusBar.Clear()
		a.syncStatusTitle()
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// updateKey routes key input to the focused pane after the global
// bindings.
func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if keymap.Matches(keyStr, a.keymap.Quit) {
		_ = a.ports.Session.Close(a.ctx)
		return a, tea.Quit
	}

	// Palette captures all input while open.
	if a.focus == focusPalette {
		var cmd tea.Cmd
		a.paletteView, cmd = a.paletteView.Update(msg)
		return a, cmd
	}

	switch {
	case keymap.Matches(keyStr, a.keymap.Palette):
		a.focus = focusPalette
		a.editorView.Blur()
		return a, a.paletteView.Open()

	case keymap.Matches(keyStr, a.keymap.Save):
		return a, func() tea.Msg {
			return messages.SaveCompleted{Err: a.ports.Session.SaveNow(a.ctx)}
		}

	case keymap.Matches(keyStr, a.keymap.New):
		return a, func() tea.Msg {
			if _, err := a.ports.Session.CreateDocument(a.ctx); err != nil {
				return messages.DocumentCreated{Err: err}
			}
			return messages.DocumentSelected{}
		}

	case keymap.Matches(keyStr, a.keymap.Export):
		return a, func() tea.Msg {
			path, err := a.ports.Actions.ExportCurrent(a.ctx)
			return messages.ExportCompleted{Path: path, Err: err}
		}

	case keymap.Matches(keyStr, a.keymap.ToggleSidebar):
		if a.focus == focusSidebar {
			a.focus = focusEditor
			a.statusBar.SetSidebarFocus(false)
			return a, a.editorView.Focus()
		}
		a.focus = focusSidebar
		a.editorView.Blur()
		a.statusBar.SetSidebarFocus(true)
		return a, nil
	}

	var cmd tea.Cmd
	switch a.focus {
	case focusSidebar:
		a.sidebarView, cmd = a.sidebarView.Update(msg)
	case focusEditor:
		wasEditing := a.statusBar.State() == status.StateEditing
		a.editorView, cmd = a.editorView.Update(msg)
		if !wasEditing {
			a.statusBar.SetState(status.StateEditing)
		}
	case focusPalette:
		// Handled above.
	}
	return a, cmd
}

// updateSessionEvent applies a session notification and resumes
// listening.
func (a *App) updateSessionEvent(ev driving.SessionEvent) (tea.Model, tea.Cmd) {
	switch ev.Kind {
	case driving.EventDocumentsChanged:
		a.sidebarView.Refresh()
		a.syncStatusTitle()
	case driving.EventDocumentSaved:
		if a.statusBar.State() == status.StateEditing {
			a.statusBar.SetState(status.StateReady)
		}
		a.syncStatusTitle()
	case driving.EventSaveFailed:
		return a, tea.Batch(a.reportError(ev.Err), a.waitForSessionEvent())
	}
	return a, a.waitForSessionEvent()
}

// View implements tea.Model.
// It renders the sidebar, editor, and status bar, with the palette
// overlay replacing the panes while open.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	if a.ports.Session.IsLoading() {
		return a.styles.Muted.Render("Loading documents...")
	}

	if a.focus == focusPalette {
		overlay := a.paletteView.View()
		return lipgloss.Place(
			a.width, a.height-1, lipgloss.Center, lipgloss.Center, overlay,
		) + "\n" + a.statusBar.View()
	}

	side := a.styles.Sidebar
	if a.focus == focusSidebar {
		side = a.styles.SidebarFocused
	}

	paneHeight := a.height - 3
	sidebarPane := side.Width(sidebarWidth).Height(paneHeight).Render(a.sidebarView.View())
	editorPane := a.styles.Editor.
		Width(a.width - sidebarWidth - 4).
		Height(paneHeight).
		Render(a.editorView.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebarPane, editorPane)
	return body + "\n" + a.statusBar.View()
}

// layout propagates the terminal size to the panes.
func (a *App) layout() {
	paneHeight := a.height - 3
	a.sidebarView.SetDimensions(sidebarWidth, paneHeight)
	a.editorView.SetDimensions(a.width-sidebarWidth-6, paneHeight-1)
	a.paletteView.SetDimensions(min(a.width-8, 80), a.height)
	a.statusBar.SetWidth(a.width)
}

// closePalette returns focus to the editor pane.
func (a *App) closePalette() {
	if a.focus == focusPalette {
		a.focus = focusEditor
	}
}

// reportError surfaces an error in the status bar.
func (a *App) reportError(err error) tea.Cmd {
	a.err = err
	a.statusBar.SetState(status.StateError)
	if err != nil {
		a.statusBar.SetMessage(err.Error())
	}
	return expireStatus()
}

// syncStatusTitle mirrors the current document title into the status
// bar.
func (a *App) syncStatusTitle() {
	if doc, ok := a.ports.Session.Current(); ok {
		a.statusBar.SetTitle(doc.Title)
	} else {
		a.statusBar.SetTitle("")
	}
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Focus returns which pane currently receives input. Exposed for
// tests.
func (a *App) Focus() int {
	return int(a.focus)
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.layout()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
