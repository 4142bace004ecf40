package progress

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pattarin/rianthai/internal/events"
	"github.com/pattarin/rianthai/internal/store"
)

// fakeRepo records saves and serves a canned snapshot.
type fakeRepo struct {
	mu       sync.Mutex
	saves    int
	last     *store.ProgressSnapshot
	loadSnap *store.ProgressSnapshot
	loadErr  error
}

func (r *fakeRepo) Load(ctx context.Context) (*store.ProgressSnapshot, error) {
	return r.loadSnap, r.loadErr
}

func (r *fakeRepo) Save(ctx context.Context, snap *store.ProgressSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	r.last = snap
	return nil
}

func (r *fakeRepo) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

// notifyCounter counts coalesced invalidation signals.
type notifyCounter struct {
	mu sync.Mutex
	n  int
}

func (c *notifyCounter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func newTestTracker(t *testing.T) (*Tracker, *fakeRepo, *events.Bus, *notifyCounter) {
	t.Helper()
	repo := &fakeRepo{}
	bus := events.NewBus(nil)
	tr := NewTracker(repo, nil,
		WithPersistDelay(10*time.Millisecond),
		WithNotifyDelay(5*time.Millisecond),
	)
	tr.Attach(bus)

	nc := &notifyCounter{}
	bus.Subscribe(events.TopicProgressInvalidated, func(events.Event) {
		nc.mu.Lock()
		nc.n++
		nc.mu.Unlock()
	})
	return tr, repo, bus, nc
}

// settle waits out both the notify and persist windows.
func settle() {
	time.Sleep(80 * time.Millisecond)
}

func TestUpdate_Idempotent(t *testing.T) {
	tr, repo, _, nc := newTestTracker(t)

	tr.Update("c1", "c1_l1", 2, 5, 0)
	tr.Update("c1", "c1_l1", 2, 5, 0) // identical: complete no-op
	settle()

	if got := repo.saveCount(); got != 1 {
		t.Errorf("saves = %d, want 1", got)
	}
	if got := nc.count(); got != 1 {
		t.Errorf("notifications = %d, want 1", got)
	}

	// A third identical call after the windows closed must stay silent.
	tr.Update("c1", "c1_l1", 2, 5, 0)
	settle()
	if got := repo.saveCount(); got != 1 {
		t.Errorf("saves after replay = %d, want 1", got)
	}
	if got := nc.count(); got != 1 {
		t.Errorf("notifications after replay = %d, want 1", got)
	}
}

func TestUpdate_CoalescesBursts(t *testing.T) {
	tr, repo, _, nc := newTestTracker(t)

	for i := 0; i < 10; i++ {
		tr.Update("c1", "c1_l1", i, 20, 0)
	}
	settle()

	if got := nc.count(); got != 1 {
		t.Errorf("notifications = %d, want 1 for a burst", got)
	}
	if got := repo.saveCount(); got != 1 {
		t.Errorf("saves = %d, want 1 for a burst", got)
	}

	// The last mutation in the burst is the one persisted.
	repo.mu.Lock()
	last := repo.last.Lessons["c1"]["c1_l1"]
	repo.mu.Unlock()
	if last.Learned != 9 {
		t.Errorf("persisted learned = %d, want 9", last.Learned)
	}
}

func TestUpdate_LifehackExclusion(t *testing.T) {
	tr, _, _, _ := newTestTracker(t)

	tr.Update("c1", "c1_l1", 3, 4, 1)

	p, ok := tr.Lesson("c1", "c1_l1")
	if !ok {
		t.Fatal("expected a recorded lesson")
	}
	if p.Total != 3 {
		t.Errorf("Total = %d, want 3", p.Total)
	}
	if p.Status != StatusCompleted {
		t.Errorf("Status = %s, want completed", p.Status)
	}
}

func TestUpdateSets_IntersectionSemantics(t *testing.T) {
	tr, _, _, _ := newTestTracker(t)

	// Index 3 is a lifehack: excluded from both sides. Index 9 is
	// stray: ignored via intersection.
	tr.UpdateSets("c1", "c1_l1", []int{0, 1, 2, 3, 9}, []int{0, 1, 2, 3}, []int{3})

	p, ok := tr.Lesson("c1", "c1_l1")
	if !ok {
		t.Fatal("expected a recorded lesson")
	}
	if p.Learned != 3 || p.Total != 3 {
		t.Errorf("got learned=%d total=%d, want 3/3", p.Learned, p.Total)
	}
	if p.Status != StatusCompleted {
		t.Errorf("Status = %s, want completed", p.Status)
	}
}

func TestCoursePercent_WeightedBySize(t *testing.T) {
	tr, _, _, _ := newTestTracker(t)

	tr.Update("c1", "c1_l1", 1, 1, 0)
	tr.Update("c1", "c1_l2", 1, 9, 0)

	// 2 learned over 10 cards, not the mean of 1.0 and 0.111.
	if got := tr.CoursePercent("c1"); got != 0.2 {
		t.Errorf("CoursePercent = %v, want 0.2", got)
	}
}

func TestCourseStatus_RecordedLessonsOnly(t *testing.T) {
	tr, _, _, _ := newTestTracker(t)

	// c1 has a second lesson the tracker never heard about; it does
	// not block completion.
	tr.Update("c1", "c1_l1", 3, 3, 0)

	if got := tr.CourseStatus("c1"); got != StatusCompleted {
		t.Errorf("CourseStatus = %s, want completed", got)
	}
}

func TestMarkStarted_CourseReadsInProgressImmediately(t *testing.T) {
	tr, _, _, _ := newTestTracker(t)

	tr.MarkStarted("c1", "c1_l1", 5)

	if got := tr.CourseStatus("c1"); got != StatusInProgress {
		t.Errorf("CourseStatus = %s, want inProgress", got)
	}
	p, ok := tr.Lesson("c1", "c1_l1")
	if !ok {
		t.Fatal("expected a synthesized lesson record")
	}
	if p.Learned != 0 || p.Total != 5 || p.Status != StatusInProgress {
		t.Errorf("synthesized record = %+v, want {0 5 inProgress}", p)
	}
}

func TestMarkStarted_RepeatIsNoop(t *testing.T) {
	tr, repo, _, nc := newTestTracker(t)

	tr.MarkStarted("c1", "c1_l1", 5)
	settle()
	tr.MarkStarted("c1", "c1_l1", 5)
	settle()

	if got := repo.saveCount(); got != 1 {
		t.Errorf("saves = %d, want 1", got)
	}
	if got := nc.count(); got != 1 {
		t.Errorf("notifications = %d, want 1", got)
	}
}

func TestMarkStarted_KeepsExistingRecord(t *testing.T) {
	tr, _, _, _ := newTestTracker(t)

	tr.Update("c1", "c1_l1", 2, 4, 0)
	tr.MarkStarted("c1", "c1_l1", 99)

	p, _ := tr.Lesson("c1", "c1_l1")
	if p.Total != 4 {
		t.Errorf("Total = %d, want 4 (hint must not clobber real data)", p.Total)
	}
}

func TestResetLesson_NotifiesEvenWhenAbsent(t *testing.T) {
	tr, repo, _, nc := newTestTracker(t)

	tr.ResetLesson("c1", "nonexistent")
	settle()

	if got := nc.count(); got != 1 {
		t.Errorf("notifications = %d, want 1 (reset must unblock a stuck render)", got)
	}
	if got := repo.saveCount(); got != 1 {
		t.Errorf("saves = %d, want 1", got)
	}
}

func TestResetCourse_FansOut(t *testing.T) {
	tr, _, bus, _ := newTestTracker(t)

	var cleared []string
	var mu sync.Mutex
	bus.Subscribe(events.TopicCourseCleared, func(evt events.Event) {
		if e, ok := evt.(events.CourseProgressCleared); ok {
			mu.Lock()
			cleared = append(cleared, e.CourseID)
			mu.Unlock()
		}
	})

	tr.Update("c1", "c1_l1", 1, 3, 0)
	tr.MarkStarted("c1", "c1_l2", 0)
	tr.ResetCourse("c1")

	if got := tr.CourseStatus("c1"); got != StatusLocked {
		t.Errorf("CourseStatus after reset = %s, want locked", got)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(cleared) != 1 || cleared[0] != "c1" {
		t.Errorf("fan-out = %v, want [c1]", cleared)
	}
}

func TestResetAll_FansOut(t *testing.T) {
	tr, _, bus, _ := newTestTracker(t)

	allCleared := false
	bus.Subscribe(events.TopicAllCleared, func(events.Event) {
		allCleared = true
	})

	tr.Update("c1", "c1_l1", 1, 3, 0)
	tr.Update("c2", "c2_l1", 2, 2, 0)
	tr.ResetAll()

	if got := tr.CourseStatus("c2"); got != StatusLocked {
		t.Errorf("CourseStatus after reset = %s, want locked", got)
	}
	if !allCleared {
		t.Error("expected allProgress.reset fan-out")
	}
}

func TestSlots_CallerOrder(t *testing.T) {
	tr, _, _, _ := newTestTracker(t)

	tr.Update("c1", "c1_l2", 1, 2, 0)
	tr.Update("c1", "c1_l3", 2, 2, 0)

	got := tr.Slots("c1", []string{"c1_l1", "c1_l2", "c1_l3"})
	want := []float64{0, 0.5, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHeaderCounts(t *testing.T) {
	tr, _, _, _ := newTestTracker(t)

	tr.Update("c1", "c1_l1", 3, 3, 0)
	tr.Update("c1", "c1_l2", 1, 3, 0)

	completed, total := tr.HeaderCounts("c1", 5)
	if completed != 1 || total != 5 {
		t.Errorf("HeaderCounts = (%d, %d), want (1, 5)", completed, total)
	}
}

func TestVersion_ChangesAcrossNotifications(t *testing.T) {
	tr, _, _, _ := newTestTracker(t)

	v0 := tr.Version()
	tr.Update("c1", "c1_l1", 1, 3, 0)
	settle()
	v1 := tr.Version()
	if v1 == v0 {
		t.Errorf("version unchanged (%d) after a notification", v1)
	}
}

func TestBusRouting_CountedAndIndexed(t *testing.T) {
	tr, _, bus, _ := newTestTracker(t)

	bus.Publish(events.LessonProgressCounted{
		CourseID: "c1", LessonID: "c1_l1", Learned: 2, Total: 5, Lifehacks: 1,
	})
	bus.Publish(events.LessonProgressIndexed{
		CourseID: "c1", LessonID: "c1_l2",
		Learned: []int{0, 1}, All: []int{0, 1, 2}, Lifehacks: nil,
	})
	bus.Publish(events.LessonSessionStarted{CourseID: "c1", LessonID: "c1_l3", TotalHint: 4})

	if p, _ := tr.Lesson("c1", "c1_l1"); p.Total != 4 || p.Learned != 2 {
		t.Errorf("counted route = %+v, want learned=2 total=4", p)
	}
	if p, _ := tr.Lesson("c1", "c1_l2"); p.Total != 3 || p.Learned != 2 {
		t.Errorf("indexed route = %+v, want learned=2 total=3", p)
	}
	if p, _ := tr.Lesson("c1", "c1_l3"); p.Status != StatusInProgress {
		t.Errorf("session route = %+v, want inProgress", p)
	}
}

func TestBusRouting_MalformedForcesRefresh(t *testing.T) {
	tr, repo, bus, nc := newTestTracker(t)

	bus.Publish(events.LessonProgressCounted{Learned: 2, Total: 5}) // missing IDs
	settle()

	if got := nc.count(); got != 1 {
		t.Errorf("notifications = %d, want 1 (safe fallback)", got)
	}
	if got := repo.saveCount(); got != 0 {
		t.Errorf("saves = %d, want 0 (no mutation happened)", got)
	}
	if _, ok := tr.Lesson("", ""); ok {
		t.Error("malformed event must not create a record")
	}
}

func TestResetRequestEvent_RepublishesWithoutMutation(t *testing.T) {
	tr, repo, bus, nc := newTestTracker(t)

	tr.Update("c1", "c1_l1", 1, 3, 0)
	settle()
	saves, notifies := repo.saveCount(), nc.count()

	bus.Publish(events.ProgressResetRequested{CourseID: "c1", LessonID: "c1_l1"})
	settle()

	if got := nc.count(); got != notifies+1 {
		t.Errorf("notifications = %d, want %d", got, notifies+1)
	}
	if got := repo.saveCount(); got != saves {
		t.Errorf("saves = %d, want %d (no mutation)", got, saves)
	}
	if p, _ := tr.Lesson("c1", "c1_l1"); p.Learned != 1 {
		t.Errorf("record mutated by reset request: %+v", p)
	}
}

func TestFavoritesChangedEvent_ForcesRefresh(t *testing.T) {
	_, _, bus, nc := newTestTracker(t)

	bus.Publish(events.FavoritesChanged{})
	settle()

	if got := nc.count(); got != 1 {
		t.Errorf("notifications = %d, want 1", got)
	}
}

func TestNewTracker_LoadsSnapshot(t *testing.T) {
	repo := &fakeRepo{loadSnap: &store.ProgressSnapshot{
		Lessons: map[string]map[string]store.LessonProgressData{
			"c1": {
				"c1_l1": {Learned: 2, Total: 4, Status: "inProgress"},
				// Started-lesson override: inProgress despite learned == 0.
				"c1_l2": {Learned: 0, Total: 5, Status: "inProgress"},
			},
		},
		Started: map[string][]string{"c1": {"c1_l2"}},
		Version: 17,
	}}

	tr := NewTracker(repo, nil)

	if p, _ := tr.Lesson("c1", "c1_l2"); p.Status != StatusInProgress {
		t.Errorf("override status lost on load: %+v", p)
	}
	if got := tr.Version(); got != 17 {
		t.Errorf("Version = %d, want 17", got)
	}

	// Repeated MarkStarted after a reload stays a no-op.
	tr.MarkStarted("c1", "c1_l2", 0)
	if p, _ := tr.Lesson("c1", "c1_l2"); p.Total != 5 {
		t.Errorf("reloaded started set ignored: %+v", p)
	}
}

func TestNewTracker_UnreadableSnapshotStartsEmpty(t *testing.T) {
	repo := &fakeRepo{loadErr: context.DeadlineExceeded}

	tr := NewTracker(repo, nil)

	if got := tr.CourseStatus("c1"); got != StatusLocked {
		t.Errorf("CourseStatus = %s, want locked on empty start", got)
	}
}

func TestFlush_PersistsPendingState(t *testing.T) {
	repo := &fakeRepo{}
	tr := NewTracker(repo, nil, WithPersistDelay(time.Hour))

	tr.Update("c1", "c1_l1", 1, 3, 0)
	tr.Flush()

	if got := repo.saveCount(); got != 1 {
		t.Errorf("saves = %d, want 1 after Flush", got)
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.last.Lessons["c1"]["c1_l1"].Learned != 1 {
		t.Errorf("flushed snapshot = %+v", repo.last.Lessons)
	}
}
