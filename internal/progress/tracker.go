// Package progress owns the authoritative per-lesson progress state:
// how much of each lesson the learner has completed, derived lesson and
// course statuses, durable persistence, and the coalesced change
// notifications every screen re-renders from.
package progress

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pattarin/rianthai/internal/events"
	"github.com/pattarin/rianthai/internal/store"
)

// DefaultPersistDelay is the debounce window for disk writes. Rapid
// mutations collapse into one write; the timer re-arms on every
// mutation, so a sustained stream persists only once it pauses. A crash
// mid-burst can lose the last window; the design trades durability of
// the newest writes for responsiveness.
const DefaultPersistDelay = 250 * time.Millisecond

// DefaultNotifyDelay is the coalescing window for change notifications.
// A burst of N mutations inside one window emits at most one signal.
const DefaultNotifyDelay = 10 * time.Millisecond

// Tracker is the single source of truth for lesson and course progress.
// All state is guarded by one mutex; persistence and notification are
// deferred, never awaited, so every mutation returns immediately.
type Tracker struct {
	mu      sync.Mutex
	lessons map[string]map[string]LessonProgress
	started map[string]map[string]struct{}
	version uint64

	repo store.ProgressRepo
	bus  *events.Bus
	log  *slog.Logger

	persistDelay  time.Duration
	notifyDelay   time.Duration
	persistTimer  *time.Timer
	notifyPending bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithPersistDelay overrides the persistence debounce window.
func WithPersistDelay(d time.Duration) Option {
	return func(t *Tracker) { t.persistDelay = d }
}

// WithNotifyDelay overrides the notification coalescing window.
func WithNotifyDelay(d time.Duration) Option {
	return func(t *Tracker) { t.notifyDelay = d }
}

// NewTracker loads persisted state and returns a ready tracker. A
// missing or unreadable snapshot is treated as empty, never as fatal;
// repo may be nil for a purely in-memory tracker.
func NewTracker(repo store.ProgressRepo, log *slog.Logger, opts ...Option) *Tracker {
	if log == nil {
		log = slog.Default()
	}
	t := &Tracker{
		lessons:      make(map[string]map[string]LessonProgress),
		started:      make(map[string]map[string]struct{}),
		repo:         repo,
		log:          log,
		persistDelay: DefaultPersistDelay,
		notifyDelay:  DefaultNotifyDelay,
	}
	for _, opt := range opts {
		opt(t)
	}

	if repo != nil {
		snap, err := repo.Load(context.Background())
		if err != nil {
			log.Warn("progress snapshot unreadable, starting empty", "error", err)
		} else if snap != nil {
			t.loadSnapshot(snap)
		}
	}
	return t
}

// Attach wires the tracker to the bus: inbound content and session
// events route into the write API, and the tracker publishes its
// outbound signals there. Call once during startup.
func (t *Tracker) Attach(bus *events.Bus) {
	t.mu.Lock()
	t.bus = bus
	t.mu.Unlock()

	bus.Subscribe(events.TopicLessonProgress, func(evt events.Event) {
		switch e := evt.(type) {
		case events.LessonProgressCounted:
			if e.CourseID == "" || e.LessonID == "" {
				t.Refresh()
				return
			}
			t.Update(e.CourseID, e.LessonID, e.Learned, e.Total, e.Lifehacks)
		case events.LessonProgressIndexed:
			if e.CourseID == "" || e.LessonID == "" {
				t.Refresh()
				return
			}
			t.UpdateSets(e.CourseID, e.LessonID, e.Learned, e.All, e.Lifehacks)
		default:
			// Unrecognized payload: something changed, force a re-read.
			t.Refresh()
		}
	})
	bus.Subscribe(events.TopicSessionStarted, func(evt events.Event) {
		e, ok := evt.(events.LessonSessionStarted)
		if !ok || e.CourseID == "" || e.LessonID == "" {
			t.Refresh()
			return
		}
		t.MarkStarted(e.CourseID, e.LessonID, e.TotalHint)
	})
	bus.Subscribe(events.TopicProgressReset, func(events.Event) {
		// Forced re-publish only; actual resets go through the write API.
		t.Refresh()
	})
	bus.Subscribe(events.TopicFavoritesChanged, func(events.Event) {
		// Favorite counts feed derived counters in course headers.
		t.Refresh()
	})
}

// Lesson returns the recorded progress for a lesson, if any.
func (t *Tracker) Lesson(courseID, lessonID string) (LessonProgress, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.lessons[courseID][lessonID]
	return p, ok
}

// Percent returns the lesson's completion in [0,1], 0 when unrecorded.
func (t *Tracker) Percent(courseID, lessonID string) float64 {
	p, ok := t.Lesson(courseID, lessonID)
	if !ok {
		return 0
	}
	return p.Percent()
}

// CourseStatus aggregates a course: completed when every recorded
// lesson is completed and at least one exists (unrecorded lessons do
// not block completion); inProgress when any lesson is in progress or
// the learner has opened any lesson; locked otherwise.
func (t *Tracker) CourseStatus(courseID string) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	recorded := t.lessons[courseID]
	if len(recorded) > 0 {
		all := true
		for _, p := range recorded {
			if p.Status != StatusCompleted {
				all = false
				break
			}
		}
		if all {
			return StatusCompleted
		}
	}
	for _, p := range recorded {
		if p.Status == StatusInProgress {
			return StatusInProgress
		}
	}
	if len(t.started[courseID]) > 0 {
		return StatusInProgress
	}
	return StatusLocked
}

// CoursePercent returns the course's completion weighted by lesson
// size: sum of learned over sum of totals, across lessons with a
// non-zero total. Lessons with more cards weigh more.
func (t *Tracker) CoursePercent(courseID string) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	var learned, total int
	for _, p := range t.lessons[courseID] {
		if p.Total <= 0 {
			continue
		}
		learned += p.Learned
		total += p.Total
	}
	if total == 0 {
		return 0
	}
	pct := float64(learned) / float64(total)
	if pct > 1 {
		return 1
	}
	return pct
}

// HeaderCounts returns (completed lessons, lessonsTotal) for a course
// header. lessonsTotal comes from the caller; the tracker has no
// independent notion of how many lessons a course has.
func (t *Tracker) HeaderCounts(courseID string, lessonsTotal int) (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	completed := 0
	for _, p := range t.lessons[courseID] {
		if p.Status == StatusCompleted {
			completed++
		}
	}
	return completed, lessonsTotal
}

// Slots returns per-lesson percentages in the caller's order, 0 for
// unrecorded lessons. Callers supply the canonical order from the
// navigation graph.
func (t *Tracker) Slots(courseID string, lessonIDs []string) []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	slots := make([]float64, len(lessonIDs))
	for i, id := range lessonIDs {
		if p, ok := t.lessons[courseID][id]; ok {
			slots[i] = p.Percent()
		}
	}
	return slots
}

// Version returns the last published notification version. Only
// inequality against a previous value is meaningful.
func (t *Tracker) Version() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.version
}

// Update records learning counts for a lesson. Lifehacks are excluded
// from the effective total and learned is clamped to >= 0. When the
// resulting value equals the stored one the call is a complete no-op:
// no persist, no notification. That guard keeps upstream replays of
// unchanged state from triggering UI invalidation storms.
func (t *Tracker) Update(courseID, lessonID string, learned, total, lifehacks int) {
	effTotal := total - lifehacks
	if effTotal < 0 {
		effTotal = 0
	}
	if learned < 0 {
		learned = 0
	}
	next := LessonProgress{
		Learned: learned,
		Total:   effTotal,
		Status:  StatusFor(learned, effTotal),
	}

	t.mu.Lock()
	if cur, ok := t.lessons[courseID][lessonID]; ok && cur == next {
		t.mu.Unlock()
		return
	}
	if t.lessons[courseID] == nil {
		t.lessons[courseID] = make(map[string]LessonProgress)
	}
	t.lessons[courseID][lessonID] = next
	t.schedulePersistLocked()
	t.scheduleNotifyLocked()
	t.mu.Unlock()
}

// UpdateSets records learning state from raw card index sets: learned
// counts the indices present in all minus lifehacks, so stray indices
// are ignored rather than inflating progress.
func (t *Tracker) UpdateSets(courseID, lessonID string, learned, all, lifehacks []int) {
	valid := make(map[int]struct{}, len(all))
	for _, i := range all {
		valid[i] = struct{}{}
	}
	for _, i := range lifehacks {
		delete(valid, i)
	}

	count := 0
	seen := make(map[int]struct{}, len(learned))
	for _, i := range learned {
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		if _, ok := valid[i]; ok {
			count++
		}
	}
	t.Update(courseID, lessonID, count, len(all), len(lifehacks))
}

// MarkStarted records that the learner opened a lesson. Idempotent:
// repeat calls are complete no-ops. On first insertion, a lesson with
// no progress record gets a synthesized inProgress one so the course
// reads as started immediately, before any card is learned — a
// deliberate override of the usual status derivation.
func (t *Tracker) MarkStarted(courseID, lessonID string, hintTotal int) {
	t.mu.Lock()
	if _, ok := t.started[courseID][lessonID]; ok {
		t.mu.Unlock()
		return
	}
	if t.started[courseID] == nil {
		t.started[courseID] = make(map[string]struct{})
	}
	t.started[courseID][lessonID] = struct{}{}

	if _, ok := t.lessons[courseID][lessonID]; !ok {
		if t.lessons[courseID] == nil {
			t.lessons[courseID] = make(map[string]LessonProgress)
		}
		t.lessons[courseID][lessonID] = LessonProgress{
			Learned: 0,
			Total:   hintTotal,
			Status:  StatusInProgress,
		}
	}
	t.schedulePersistLocked()
	t.scheduleNotifyLocked()
	t.mu.Unlock()
}

// ResetLesson removes a single lesson's record. Even when the lesson
// was never recorded it persists and notifies, so a stuck render can
// always be unblocked by a reset.
func (t *Tracker) ResetLesson(courseID, lessonID string) {
	t.mu.Lock()
	delete(t.lessons[courseID], lessonID)
	if len(t.lessons[courseID]) == 0 {
		delete(t.lessons, courseID)
	}
	delete(t.started[courseID], lessonID)
	if len(t.started[courseID]) == 0 {
		delete(t.started, courseID)
	}
	t.scheduleNotifyLocked()
	t.mu.Unlock()

	t.persistNow()
}

// ResetCourse clears every lesson of a course and fans the reset out to
// collaborators holding course-scoped state.
func (t *Tracker) ResetCourse(courseID string) {
	t.mu.Lock()
	delete(t.lessons, courseID)
	delete(t.started, courseID)
	bus := t.bus
	t.scheduleNotifyLocked()
	t.mu.Unlock()

	t.persistNow()
	if bus != nil {
		bus.Publish(events.CourseProgressCleared{CourseID: courseID})
	}
}

// ResetAll clears the entire progress table and fans the reset out.
func (t *Tracker) ResetAll() {
	t.mu.Lock()
	t.lessons = make(map[string]map[string]LessonProgress)
	t.started = make(map[string]map[string]struct{})
	bus := t.bus
	t.scheduleNotifyLocked()
	t.mu.Unlock()

	t.persistNow()
	if bus != nil {
		bus.Publish(events.AllProgressCleared{})
	}
}

// Refresh schedules a coalesced notification without mutating state.
// Used when an event could not be parsed precisely: some state likely
// changed, so forcing a re-read is the safe fallback.
func (t *Tracker) Refresh() {
	t.mu.Lock()
	t.scheduleNotifyLocked()
	t.mu.Unlock()
}

// Flush cancels any pending debounce and persists synchronously. The
// CLI calls it on shutdown; failures are logged like any other persist.
func (t *Tracker) Flush() {
	t.mu.Lock()
	if t.persistTimer != nil {
		t.persistTimer.Stop()
		t.persistTimer = nil
	}
	t.mu.Unlock()
	t.persistNow()
}

// schedulePersistLocked re-arms the debounce timer. Cancel-and-
// reschedule: the timer restarts on every mutation, so only the last
// state before the stream pauses reaches disk.
func (t *Tracker) schedulePersistLocked() {
	if t.repo == nil {
		return
	}
	if t.persistTimer != nil {
		t.persistTimer.Stop()
	}
	t.persistTimer = time.AfterFunc(t.persistDelay, t.persistNow)
}

// persistNow snapshots under the lock and writes outside it. A failed
// write never blocks or reverts in-memory state; the next successful
// mutation re-persists the latest state anyway.
func (t *Tracker) persistNow() {
	if t.repo == nil {
		return
	}
	t.mu.Lock()
	snap := t.exportSnapshotLocked()
	t.persistTimer = nil
	t.mu.Unlock()

	if err := t.repo.Save(context.Background(), snap); err != nil {
		t.log.Warn("persist progress failed", "error", err)
	}
}

// scheduleNotifyLocked arms the coalesced notification. The pending
// flag drops every further request inside the window; it clears when
// the scheduled emit fires.
func (t *Tracker) scheduleNotifyLocked() {
	if t.notifyPending {
		return
	}
	t.notifyPending = true
	time.AfterFunc(t.notifyDelay, t.emitNotify)
}

func (t *Tracker) emitNotify() {
	t.mu.Lock()
	t.notifyPending = false
	t.version++ // wraps on overflow; only inequality matters
	v := t.version
	bus := t.bus
	t.mu.Unlock()

	if bus != nil {
		bus.Publish(events.ProgressInvalidated{Version: v})
	}
}
