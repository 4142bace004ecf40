// Package catalog exposes the course content the app ships with.
// Progress and navigation code only see the Catalog interface; the
// built-in seed is one implementation of it.
package catalog

// Card is a single content item inside a lesson. Lifehack cards are
// supplementary tips that never count toward lesson completion.
type Card struct {
	Thai     string
	Roman    string
	English  string
	Lifehack bool
}

// Lesson is an ordered set of cards.
type Lesson struct {
	ID    string
	Title string
	Cards []Card
}

// CardCount returns the raw number of cards, lifehacks included.
func (l Lesson) CardCount() int {
	return len(l.Cards)
}

// LifehackCount returns the number of lifehack cards.
func (l Lesson) LifehackCount() int {
	n := 0
	for _, c := range l.Cards {
		if c.Lifehack {
			n++
		}
	}
	return n
}

// Course is an ordered set of lessons.
type Course struct {
	ID      string
	Title   string
	Lessons []Lesson
}

// Catalog answers content lookups. Implementations must keep Courses
// in presentation order; that order is the app's course order.
type Catalog interface {
	// Courses returns all courses in their natural order.
	Courses() []Course

	// Course returns a course by ID.
	Course(id string) (Course, bool)

	// Lesson returns a lesson by course and lesson ID.
	Lesson(courseID, lessonID string) (Lesson, bool)

	// HasLesson reports whether content exists for the lesson ID.
	HasLesson(courseID, lessonID string) bool
}

// Static is an immutable in-memory Catalog.
type Static struct {
	courses []Course
	byID    map[string]int
}

var _ Catalog = (*Static)(nil)

// NewStatic builds a Static catalog from courses in presentation order.
func NewStatic(courses []Course) *Static {
	s := &Static{
		courses: courses,
		byID:    make(map[string]int, len(courses)),
	}
	for i, c := range courses {
		s.byID[c.ID] = i
	}
	return s
}

func (s *Static) Courses() []Course {
	out := make([]Course, len(s.courses))
	copy(out, s.courses)
	return out
}

func (s *Static) Course(id string) (Course, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Course{}, false
	}
	return s.courses[i], true
}

func (s *Static) Lesson(courseID, lessonID string) (Lesson, bool) {
	c, ok := s.Course(courseID)
	if !ok {
		return Lesson{}, false
	}
	for _, l := range c.Lessons {
		if l.ID == lessonID {
			return l, true
		}
	}
	return Lesson{}, false
}

func (s *Static) HasLesson(courseID, lessonID string) bool {
	_, ok := s.Lesson(courseID, lessonID)
	return ok
}
