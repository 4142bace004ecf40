package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pattarin/rianthai/internal/events"
	"github.com/pattarin/rianthai/internal/router"
	"github.com/pattarin/rianthai/internal/screens"
	"github.com/pattarin/rianthai/internal/screens/home"
	"github.com/pattarin/rianthai/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   screens.Deps
	router *router.Router
	width  int
	height int
}

func newAppModel(deps screens.Deps) AppModel {
	return AppModel{
		deps:   deps,
		router: router.New(home.New(deps)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		hints = active.KeyHints()
	}

	completed := 0
	for _, courseID := range m.deps.Nav.OrderedCourses() {
		c, _ := m.deps.Tracker.HeaderCounts(courseID, 0)
		completed += c
	}

	header := layout.RenderHeader(title, fmt.Sprintf("✓ %d lessons", completed), m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and pumps the tracker's coalesced
// invalidation signal onto the UI loop, so every screen re-renders
// against fresh aggregates.
func Run(deps screens.Deps) error {
	p := tea.NewProgram(newAppModel(deps))

	deps.Bus.Subscribe(events.TopicProgressInvalidated, func(evt events.Event) {
		p.Send(evt)
	})
	deps.Bus.Subscribe(events.TopicFavoritesChanged, func(evt events.Event) {
		p.Send(evt)
	})

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
