package session

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/pattarin/rianthai/internal/catalog"
	"github.com/pattarin/rianthai/internal/events"
	"github.com/pattarin/rianthai/internal/nav"
	"github.com/pattarin/rianthai/internal/router"
	"github.com/pattarin/rianthai/internal/screens"
	"github.com/pattarin/rianthai/internal/ui/layout"
	"github.com/pattarin/rianthai/internal/ui/theme"
)

// SessionScreen steps through a lesson's cards. It never touches the
// tracker directly: opening the lesson and learning cards are reported
// on the bus, the same way any card runtime would.
type SessionScreen struct {
	deps      screens.Deps
	courseID  string
	lessonID  string
	sessionID uuid.UUID

	cards    []catalog.Card
	idx      int
	revealed bool
	learned  map[int]struct{}
	done     bool
}

var _ router.Screen = (*SessionScreen)(nil)

// New creates a card session for one lesson.
func New(deps screens.Deps, courseID, lessonID string) *SessionScreen {
	var cards []catalog.Card
	if l, ok := deps.Catalog.Lesson(courseID, lessonID); ok {
		cards = l.Cards
	}
	return &SessionScreen{
		deps:      deps,
		courseID:  courseID,
		lessonID:  lessonID,
		sessionID: uuid.New(),
		cards:     cards,
		learned:   make(map[int]struct{}),
		done:      len(cards) == 0,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	hint := 0
	for _, c := range s.cards {
		if !c.Lifehack {
			hint++
		}
	}
	s.deps.Bus.Publish(events.LessonSessionStarted{
		SessionID: s.sessionID,
		CourseID:  s.courseID,
		LessonID:  s.lessonID,
		TotalHint: hint,
	})
	return nil
}

func (s *SessionScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.done {
		switch key.String() {
		case "enter":
			step := s.deps.Nav.Advance(s.courseID, s.lessonID)
			if step.Kind == nav.StepEnd {
				return s, func() tea.Msg { return router.PopMsg{} }
			}
			next := New(s.deps, step.CourseID, step.LessonID)
			return next, next.Init()
		case "q":
			return s, func() tea.Msg { return router.PopMsg{} }
		}
		return s, nil
	}

	switch key.String() {
	case "enter", "space":
		s.revealed = true
	case "y":
		if s.revealed {
			s.learned[s.idx] = struct{}{}
			s.publishProgress()
			s.nextCard()
		}
	case "n":
		if s.revealed {
			s.nextCard()
		}
	case "q":
		return s, func() tea.Msg { return router.PopMsg{} }
	}
	return s, nil
}

func (s *SessionScreen) nextCard() {
	s.revealed = false
	s.idx++
	if s.idx >= len(s.cards) {
		s.done = true
	}
}

// publishProgress reports the raw index sets; the tracker owns all of
// the lifehack-exclusion and status math.
func (s *SessionScreen) publishProgress() {
	all := make([]int, len(s.cards))
	var lifehacks []int
	for i, c := range s.cards {
		all[i] = i
		if c.Lifehack {
			lifehacks = append(lifehacks, i)
		}
	}
	learned := make([]int, 0, len(s.learned))
	for i := range s.learned {
		learned = append(learned, i)
	}
	s.deps.Bus.Publish(events.LessonProgressIndexed{
		CourseID:  s.courseID,
		LessonID:  s.lessonID,
		Learned:   learned,
		All:       all,
		Lifehacks: lifehacks,
	})
}

func (s *SessionScreen) View(width, height int) string {
	if s.done {
		return s.viewDone()
	}

	card := s.cards[s.idx]
	var lines []string
	lines = append(lines, "")
	lines = append(lines, theme.Hint.Render(fmt.Sprintf("  Card %d of %d", s.idx+1, len(s.cards))))
	if card.Lifehack {
		lines = append(lines, theme.Hint.Render("  lifehack — doesn't count toward completion"))
	}
	lines = append(lines, "")
	lines = append(lines, "  "+theme.Title.Render(card.Thai))
	lines = append(lines, "  "+theme.Body.Render(card.Roman))
	lines = append(lines, "")
	if s.revealed {
		lines = append(lines, "  "+theme.Done.Render(card.English))
		lines = append(lines, "")
		lines = append(lines, theme.Hint.Render("  Y got it   N not yet"))
	} else {
		lines = append(lines, theme.Hint.Render("  Enter to reveal"))
	}
	return strings.Join(lines, "\n")
}

func (s *SessionScreen) viewDone() string {
	var lines []string
	lines = append(lines, "")
	lines = append(lines, "  "+theme.Title.Render("Lesson finished"))
	lines = append(lines, "")
	lines = append(lines, theme.Body.Render(
		fmt.Sprintf("  %d of %d cards learned", len(s.learned), len(s.cards))))
	lines = append(lines, "")

	step := s.deps.Nav.Advance(s.courseID, s.lessonID)
	switch step.Kind {
	case nav.StepNextLesson:
		lines = append(lines, theme.Hint.Render(
			fmt.Sprintf("  Enter: next lesson — %s", s.deps.Nav.LessonTitle(step.CourseID, step.LessonID))))
	case nav.StepNextCourse:
		lines = append(lines, theme.Hint.Render(
			fmt.Sprintf("  Enter: next course — %s", s.deps.Nav.CourseTitle(step.CourseID))))
	default:
		lines = append(lines, theme.Hint.Render("  You've reached the end. เก่งมาก!"))
	}
	return strings.Join(lines, "\n")
}

func (s *SessionScreen) Title() string {
	return s.deps.Nav.LessonTitle(s.courseID, s.lessonID)
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.done {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Reveal"},
		{Key: "Y/N", Description: "Got it / Not yet"},
		{Key: "Esc", Description: "Back"},
	}
}
