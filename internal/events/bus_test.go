package events

import "testing"

func TestBus_TopicIsolation(t *testing.T) {
	b := NewBus(nil)

	var progress, resets int
	b.Subscribe(TopicLessonProgress, func(Event) { progress++ })
	b.Subscribe(TopicProgressReset, func(Event) { resets++ })

	b.Publish(LessonProgressCounted{CourseID: "c1", LessonID: "c1_l1"})
	b.Publish(LessonProgressIndexed{CourseID: "c1", LessonID: "c1_l2"})
	b.Publish(ProgressResetRequested{})

	if progress != 2 {
		t.Errorf("progress handler calls = %d, want 2", progress)
	}
	if resets != 1 {
		t.Errorf("reset handler calls = %d, want 1", resets)
	}
}

func TestBus_MultipleHandlersInOrder(t *testing.T) {
	b := NewBus(nil)

	var order []int
	b.Subscribe(TopicAllCleared, func(Event) { order = append(order, 1) })
	b.Subscribe(TopicAllCleared, func(Event) { order = append(order, 2) })

	b.Publish(AllProgressCleared{})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("delivery order = %v, want [1 2]", order)
	}
}

func TestBus_PayloadReachesHandler(t *testing.T) {
	b := NewBus(nil)

	var got CourseProgressCleared
	b.Subscribe(TopicCourseCleared, func(evt Event) {
		got = evt.(CourseProgressCleared)
	})

	b.Publish(CourseProgressCleared{CourseID: "food"})

	if got.CourseID != "food" {
		t.Errorf("CourseID = %q, want food", got.CourseID)
	}
}

func TestBus_Close(t *testing.T) {
	b := NewBus(nil)

	calls := 0
	b.Subscribe(TopicFavoritesChanged, func(Event) { calls++ })
	b.Close()
	b.Publish(FavoritesChanged{})
	b.Subscribe(TopicFavoritesChanged, func(Event) { calls++ })
	b.Publish(FavoritesChanged{})

	if calls != 0 {
		t.Errorf("handler calls after Close = %d, want 0", calls)
	}
}

func TestBus_NilSafe(t *testing.T) {
	b := NewBus(nil)
	b.Subscribe(TopicLessonProgress, nil)
	b.Publish(nil)
	// No panic is the assertion.
}
