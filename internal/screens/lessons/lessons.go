package lessons

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/pattarin/rianthai/internal/router"
	"github.com/pattarin/rianthai/internal/screens"
	"github.com/pattarin/rianthai/internal/screens/session"
	"github.com/pattarin/rianthai/internal/ui/components"
	"github.com/pattarin/rianthai/internal/ui/layout"
	"github.com/pattarin/rianthai/internal/ui/theme"
)

// LessonsScreen lists a course's lessons with per-lesson progress.
type LessonsScreen struct {
	deps     screens.Deps
	courseID string
	lessons  []string
	cursor   int
}

var _ router.Screen = (*LessonsScreen)(nil)

// New creates a lesson list for the given course.
func New(deps screens.Deps, courseID string) *LessonsScreen {
	return &LessonsScreen{
		deps:     deps,
		courseID: courseID,
		lessons:  deps.Nav.OrderedLessons(courseID),
	}
}

func (s *LessonsScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.lessons)-1 {
				s.cursor++
			}
		case "enter":
			if len(s.lessons) == 0 {
				return s, nil
			}
			lessonID := s.lessons[s.cursor]
			return s, func() tea.Msg {
				return router.PushMsg{Screen: session.New(s.deps, s.courseID, lessonID)}
			}
		case "f":
			if len(s.lessons) > 0 {
				s.deps.Favorites.Toggle(s.courseID, s.lessons[s.cursor])
			}
		case "r":
			if len(s.lessons) > 0 {
				s.deps.Tracker.ResetLesson(s.courseID, s.lessons[s.cursor])
			}
		case "R":
			s.deps.Tracker.ResetCourse(s.courseID)
		case "q":
			return s, func() tea.Msg { return router.PopMsg{} }
		}
	}
	return s, nil
}

func (s *LessonsScreen) View(width, height int) string {
	if len(s.lessons) == 0 {
		return theme.Hint.Render("This course has no lessons.")
	}

	completed, total := s.deps.Tracker.HeaderCounts(s.courseID, len(s.lessons))
	strip := components.SlotStrip{Slots: s.deps.Tracker.Slots(s.courseID, s.lessons)}

	var lines []string
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  %s   %s",
		strip.View(),
		theme.Hint.Render(fmt.Sprintf("%d/%d done", completed, total))))
	lines = append(lines, "")

	for i, lessonID := range s.lessons {
		lines = append(lines, s.renderLessonRow(lessonID, i == s.cursor, width))
	}
	return strings.Join(lines, "\n")
}

func (s *LessonsScreen) renderLessonRow(lessonID string, selected bool, width int) string {
	marker := "  "
	titleStyle := theme.Unselected
	if selected {
		marker = theme.Selected.Render("❯ ")
		titleStyle = theme.Selected
	}

	var status string
	if p, ok := s.deps.Tracker.Lesson(s.courseID, lessonID); ok {
		status = components.StatusGlyph(p.Status)
	} else {
		status = components.StatusGlyph("")
	}

	star := " "
	if s.deps.Favorites.IsFavorite(s.courseID, lessonID) {
		star = theme.Title.Render("★")
	}

	pct := s.deps.Tracker.Percent(s.courseID, lessonID)
	pctText := theme.Hint.Render(fmt.Sprintf("%3d%%", int(pct*100)))

	title := titleStyle.Render(s.deps.Nav.LessonTitle(s.courseID, lessonID))
	return fmt.Sprintf("%s%s %s %s  %s", marker, status, star, pctText, title)
}

func (s *LessonsScreen) Title() string {
	return s.deps.Nav.CourseTitle(s.courseID)
}

func (s *LessonsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start lesson"},
		{Key: "F", Description: "Favorite"},
		{Key: "R", Description: "Reset"},
		{Key: "Esc", Description: "Back"},
	}
}
