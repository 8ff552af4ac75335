// Package ui is the Bubble Tea program that browses a chat transcript.
package ui

import (
	"log/slog"

	"chatentry/pkg/transcript"
	"chatentry/pkg/ui/components/chatlist"
	"chatentry/pkg/ui/components/statusbar"

	tea "charm.land/bubbletea/v2"
)

// Model represents the Bubble Tea application state
type Model struct {
	list      *chatlist.List
	statusBar *statusbar.StatusBarView
	logger    *slog.Logger

	width  int
	height int
	ready  bool
}

// Options configure NewModel.
type Options struct {
	List   chatlist.Options
	Source string
	Locale string
	Logger *slog.Logger
}

// NewModel creates a model showing items.
func NewModel(items []transcript.Item, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	list := chatlist.NewList(opts.List)
	list.SetItems(items)

	bar := statusbar.NewStatusBarView()
	bar.SetSource(opts.Source)
	bar.SetLocale(opts.Locale)
	bar.SetCount(len(items))
	bar.SetTouch(list.IsTouch())

	return Model{
		list:      list,
		statusBar: bar,
		logger:    logger,
	}
}

// Init initializes the model (Bubble Tea lifecycle method)
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates model state (Bubble Tea lifecycle method)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Leave room for the status bar
		m.list.SetSize(msg.Width, msg.Height-1)
		m.statusBar.SetWidth(msg.Width)
		m.logger.Debug("resize", slog.Int("width", msg.Width), slog.Int("height", msg.Height))
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "y":
			m.statusBar.SetMessage("Copied message")
		default:
			m.statusBar.SetMessage("")
		}
		cmd := m.list.Update(msg)
		m.statusBar.SetTouch(m.list.IsTouch())
		if item, ok := m.list.Selected(); ok {
			m.logger.Debug("hover", slog.String("id", item.ID))
		}
		return m, cmd

	case tea.MouseWheelMsg:
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			m.list.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyUp}))
		case tea.MouseWheelDown:
			m.list.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyDown}))
		}
		return m, nil
	}

	return m, nil
}

// View renders the UI (Bubble Tea lifecycle method)
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m Model) render() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.list.View() + "\n" + m.statusBar.Render()
}
