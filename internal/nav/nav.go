// Package nav answers "what's next" over the course catalog. It is
// stateless: every operation degrades to a deterministic fallback
// (empty list, End, or an identifier-derived title) instead of failing.
package nav

import (
	"fmt"
	"strings"

	"github.com/pattarin/rianthai/internal/catalog"
)

// maxLessonProbe bounds the legacy id-convention probe.
const maxLessonProbe = 64

// StepKind classifies the result of Advance.
type StepKind int

const (
	// StepNextLesson: another lesson follows in the same course.
	StepNextLesson StepKind = iota
	// StepNextCourse: the course is exhausted; Step points at the first
	// lesson of a later course.
	StepNextCourse
	// StepEnd: nothing follows. The only absorbing state.
	StepEnd
)

// Step is the outcome of one Advance transition.
type Step struct {
	Kind     StepKind
	CourseID string
	LessonID string
}

// Navigator traverses courses and lessons.
type Navigator struct {
	cat catalog.Catalog
}

// New creates a Navigator over the given catalog.
func New(cat catalog.Catalog) *Navigator {
	return &Navigator{cat: cat}
}

// OrderedCourses returns all course IDs in catalog order.
func (n *Navigator) OrderedCourses() []string {
	courses := n.cat.Courses()
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

// OrderedLessons returns the course's lesson IDs in order. Courses the
// catalog knows are answered from their explicit lesson list; unknown
// course IDs fall back to probing the "<course>_l<n>" convention.
func (n *Navigator) OrderedLessons(courseID string) []string {
	if c, ok := n.cat.Course(courseID); ok {
		ids := make([]string, 0, len(c.Lessons))
		for _, l := range c.Lessons {
			ids = append(ids, l.ID)
		}
		return ids
	}
	return n.probeLessons(courseID)
}

// probeLessons walks sequential "<course>_l<n>" identifiers and stops
// at the first missing one. A course whose _l1 is absent therefore
// resolves to no lessons at all, even if later numbers exist; the
// explicit-list path above exists precisely to avoid relying on this.
func (n *Navigator) probeLessons(courseID string) []string {
	var ids []string
	for i := 1; i <= maxLessonProbe; i++ {
		id := fmt.Sprintf("%s_l%d", courseID, i)
		if !n.cat.HasLesson(courseID, id) {
			break
		}
		ids = append(ids, id)
	}
	return ids
}

// FirstLesson returns the first lesson of a course, if any.
func (n *Navigator) FirstLesson(courseID string) (string, bool) {
	lessons := n.OrderedLessons(courseID)
	if len(lessons) == 0 {
		return "", false
	}
	return lessons[0], true
}

// Advance computes the step after finishing the given lesson: the next
// lesson in the same course, else the first lesson of the next course
// that has one, else End. The transition is total and never revisits
// earlier courses.
func (n *Navigator) Advance(courseID, lessonID string) Step {
	lessons := n.OrderedLessons(courseID)
	for i, id := range lessons {
		if id != lessonID {
			continue
		}
		if i+1 < len(lessons) {
			return Step{Kind: StepNextLesson, CourseID: courseID, LessonID: lessons[i+1]}
		}
		break
	}

	courses := n.OrderedCourses()
	idx := -1
	for i, id := range courses {
		if id == courseID {
			idx = i
			break
		}
	}
	if idx == -1 {
		// Unknown position: terminating beats restarting at course one.
		return Step{Kind: StepEnd}
	}
	for i := idx + 1; i < len(courses); i++ {
		if first, ok := n.FirstLesson(courses[i]); ok {
			return Step{Kind: StepNextCourse, CourseID: courses[i], LessonID: first}
		}
	}
	return Step{Kind: StepEnd}
}

// CourseTitle resolves a course title, falling back to a readable form
// of the identifier.
func (n *Navigator) CourseTitle(courseID string) string {
	if c, ok := n.cat.Course(courseID); ok && c.Title != "" {
		return c.Title
	}
	return humanizeID(courseID)
}

// LessonTitle resolves a lesson title, falling back to a readable form
// of the identifier.
func (n *Navigator) LessonTitle(courseID, lessonID string) string {
	if l, ok := n.cat.Lesson(courseID, lessonID); ok && l.Title != "" {
		return l.Title
	}
	return humanizeID(lessonID)
}

// humanizeID turns an identifier into display text: separators become
// spaces. Never empty for a non-empty identifier.
func humanizeID(id string) string {
	s := strings.NewReplacer("_", " ", "-", " ").Replace(id)
	s = strings.TrimSpace(s)
	if s == "" {
		return id
	}
	return s
}
