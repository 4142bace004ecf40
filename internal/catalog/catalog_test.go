package catalog

import (
	"fmt"
	"testing"
)

func TestBuiltin_LessonIDsFollowConvention(t *testing.T) {
	cat := Builtin()

	for _, c := range cat.Courses() {
		for i, l := range c.Lessons {
			want := fmt.Sprintf("%s_l%d", c.ID, i+1)
			if l.ID != want {
				t.Errorf("course %s lesson %d: ID = %q, want %q", c.ID, i, l.ID, want)
			}
		}
	}
}

func TestBuiltin_EveryLessonHasCards(t *testing.T) {
	cat := Builtin()

	for _, c := range cat.Courses() {
		if len(c.Lessons) == 0 {
			t.Errorf("course %s has no lessons", c.ID)
		}
		for _, l := range c.Lessons {
			if l.CardCount() == 0 {
				t.Errorf("lesson %s has no cards", l.ID)
			}
			if l.CardCount()-l.LifehackCount() <= 0 {
				t.Errorf("lesson %s has no countable cards", l.ID)
			}
		}
	}
}

func TestStatic_Lookups(t *testing.T) {
	cat := Builtin()

	if _, ok := cat.Course("greetings"); !ok {
		t.Error("Course(greetings) not found")
	}
	if _, ok := cat.Course("nope"); ok {
		t.Error("Course(nope) should not resolve")
	}

	l, ok := cat.Lesson("numbers", "numbers_l1")
	if !ok {
		t.Fatal("Lesson(numbers, numbers_l1) not found")
	}
	if l.Title == "" {
		t.Error("lesson title empty")
	}

	if cat.HasLesson("numbers", "greetings_l1") {
		t.Error("HasLesson must scope by course")
	}
}

func TestLesson_LifehackCount(t *testing.T) {
	l := Lesson{Cards: []Card{
		{Thai: "ก"},
		{Thai: "ข", Lifehack: true},
		{Thai: "ค"},
	}}
	if got := l.LifehackCount(); got != 1 {
		t.Errorf("LifehackCount = %d, want 1", got)
	}
	if got := l.CardCount(); got != 3 {
		t.Errorf("CardCount = %d, want 3", got)
	}
}
