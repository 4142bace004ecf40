package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/pattarin/rianthai/internal/router"
	"github.com/pattarin/rianthai/internal/screens"
	"github.com/pattarin/rianthai/internal/screens/lessons"
	"github.com/pattarin/rianthai/internal/ui/components"
	"github.com/pattarin/rianthai/internal/ui/layout"
	"github.com/pattarin/rianthai/internal/ui/theme"
)

// HomeScreen lists the courses with their aggregate progress.
type HomeScreen struct {
	deps    screens.Deps
	courses []string
	cursor  int
}

var _ router.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps screens.Deps) *HomeScreen {
	return &HomeScreen{
		deps:    deps,
		courses: deps.Nav.OrderedCourses(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if h.cursor > 0 {
				h.cursor--
			}
		case "down", "j":
			if h.cursor < len(h.courses)-1 {
				h.cursor++
			}
		case "enter":
			if len(h.courses) == 0 {
				return h, nil
			}
			courseID := h.courses[h.cursor]
			return h, func() tea.Msg {
				return router.PushMsg{Screen: lessons.New(h.deps, courseID)}
			}
		case "q":
			return h, tea.Quit
		}
	}
	// events.ProgressInvalidated needs no handling here: all rows are
	// recomputed from the tracker on the next View.
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	if len(h.courses) == 0 {
		return theme.Hint.Render("No courses installed.")
	}

	var lines []string
	lines = append(lines, "")
	for i, courseID := range h.courses {
		lines = append(lines, h.renderCourseRow(courseID, i == h.cursor, width))
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (h *HomeScreen) renderCourseRow(courseID string, selected bool, width int) string {
	lessonIDs := h.deps.Nav.OrderedLessons(courseID)
	completed, total := h.deps.Tracker.HeaderCounts(courseID, len(lessonIDs))
	status := h.deps.Tracker.CourseStatus(courseID)

	marker := "  "
	titleStyle := theme.Unselected
	if selected {
		marker = theme.Selected.Render("❯ ")
		titleStyle = theme.Selected
	}

	title := titleStyle.Render(h.deps.Nav.CourseTitle(courseID))
	counts := theme.Hint.Render(fmt.Sprintf("%d/%d lessons", completed, total))
	favs := ""
	if n := h.deps.Favorites.Count(courseID); n > 0 {
		favs = theme.Hint.Render(fmt.Sprintf("   ★ %d", n))
	}

	barWidth := width / 2
	if barWidth < 20 {
		barWidth = 20
	}
	bar := components.ProgressBar{
		Percent:     h.deps.Tracker.CoursePercent(courseID),
		ShowPercent: true,
		Width:       barWidth,
	}

	head := fmt.Sprintf("%s%s %s   %s%s", marker, components.StatusGlyph(status), title, counts, favs)
	return head + "\n    " + bar.View()
}

func (h *HomeScreen) Title() string {
	return "Courses"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open course"},
		{Key: "Q", Description: "Quit"},
	}
}
