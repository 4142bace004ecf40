package nav

import (
	"reflect"
	"testing"

	"github.com/pattarin/rianthai/internal/catalog"
)

// probeOnly is a catalog with no course metadata, only lesson content
// keyed by ID. It forces the Navigator onto the legacy probe path.
type probeOnly struct {
	lessons map[string]bool
}

func (p probeOnly) Courses() []catalog.Course { return nil }

func (p probeOnly) Course(id string) (catalog.Course, bool) { return catalog.Course{}, false }

func (p probeOnly) Lesson(courseID, lessonID string) (catalog.Lesson, bool) {
	if p.lessons[lessonID] {
		return catalog.Lesson{ID: lessonID}, true
	}
	return catalog.Lesson{}, false
}

func (p probeOnly) HasLesson(courseID, lessonID string) bool { return p.lessons[lessonID] }

func TestOrderedLessons_ExplicitList(t *testing.T) {
	n := New(catalog.Builtin())

	got := n.OrderedLessons("greetings")
	want := []string{"greetings_l1", "greetings_l2", "greetings_l3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OrderedLessons = %v, want %v", got, want)
	}
}

func TestOrderedLessons_ProbeStopsAtGap(t *testing.T) {
	n := New(probeOnly{lessons: map[string]bool{
		"c1_l1": true,
		"c1_l2": true,
		"c1_l4": true, // gap at l3: l4 is unreachable
	}})

	got := n.OrderedLessons("c1")
	want := []string{"c1_l1", "c1_l2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OrderedLessons = %v, want %v", got, want)
	}
}

func TestOrderedLessons_ProbeMissingFirstYieldsEmpty(t *testing.T) {
	// Legacy behavior, kept on the probe path on purpose: when _l1 is
	// absent the whole course resolves to no lessons, even though
	// _l2.._l3 exist. The explicit-list path is how courses avoid this.
	n := New(probeOnly{lessons: map[string]bool{
		"c1_l2": true,
		"c1_l3": true,
	}})

	if got := n.OrderedLessons("c1"); len(got) != 0 {
		t.Errorf("OrderedLessons = %v, want empty", got)
	}
	if _, ok := n.FirstLesson("c1"); ok {
		t.Error("FirstLesson should not resolve for a gapped course")
	}
}

func TestAdvance_WithinCourse(t *testing.T) {
	n := New(catalog.Builtin())

	step := n.Advance("greetings", "greetings_l1")
	if step.Kind != StepNextLesson || step.LessonID != "greetings_l2" {
		t.Errorf("Advance = %+v, want next lesson greetings_l2", step)
	}
}

func TestAdvance_AcrossCourses(t *testing.T) {
	n := New(catalog.Builtin())

	step := n.Advance("greetings", "greetings_l3")
	if step.Kind != StepNextCourse {
		t.Fatalf("Advance kind = %v, want StepNextCourse", step.Kind)
	}
	if step.CourseID != "numbers" || step.LessonID != "numbers_l1" {
		t.Errorf("Advance = %+v, want numbers/numbers_l1", step)
	}
}

func TestAdvance_TerminalState(t *testing.T) {
	n := New(catalog.Builtin())

	courses := n.OrderedCourses()
	last := courses[len(courses)-1]
	lessons := n.OrderedLessons(last)

	step := n.Advance(last, lessons[len(lessons)-1])
	if step.Kind != StepEnd {
		t.Errorf("Advance from last lesson = %+v, want End", step)
	}
	if step.CourseID != "" || step.LessonID != "" {
		t.Errorf("End step carries IDs: %+v", step)
	}
}

func TestAdvance_UnknownCourseEnds(t *testing.T) {
	n := New(catalog.Builtin())

	// The transition function is total: garbage in, End out. An
	// unknown course must end rather than restart at course one.
	if step := n.Advance("nope", "nope_l1"); step.Kind != StepEnd {
		t.Errorf("Advance unknown course = %+v, want End", step)
	}
}

func TestTitles_Fallback(t *testing.T) {
	n := New(catalog.Builtin())

	if got := n.CourseTitle("greetings"); got != "Greetings & Politeness" {
		t.Errorf("CourseTitle = %q", got)
	}
	if got := n.CourseTitle("street_food"); got != "street food" {
		t.Errorf("CourseTitle fallback = %q, want %q", got, "street food")
	}
	if got := n.LessonTitle("greetings", "greetings_l9"); got != "greetings l9" {
		t.Errorf("LessonTitle fallback = %q, want %q", got, "greetings l9")
	}
	if got := n.LessonTitle("x", "_"); got == "" {
		t.Error("LessonTitle must never be empty for a non-empty identifier")
	}
}

func TestOrderedCourses_CatalogOrder(t *testing.T) {
	n := New(catalog.Builtin())

	got := n.OrderedCourses()
	want := []string{"greetings", "numbers", "food"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OrderedCourses = %v, want %v", got, want)
	}
}
