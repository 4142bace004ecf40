package progress

import (
	"sort"

	"github.com/pattarin/rianthai/internal/store"
)

// loadSnapshot imports persisted state. Unknown status strings are
// re-derived from the counts, so a snapshot written by a newer build
// degrades instead of poisoning the table.
func (t *Tracker) loadSnapshot(snap *store.ProgressSnapshot) {
	for courseID, lessons := range snap.Lessons {
		for lessonID, d := range lessons {
			if t.lessons[courseID] == nil {
				t.lessons[courseID] = make(map[string]LessonProgress)
			}
			t.lessons[courseID][lessonID] = LessonProgress{
				Learned: d.Learned,
				Total:   d.Total,
				Status:  parseStatus(d.Status, d.Learned, d.Total),
			}
		}
	}
	for courseID, lessonIDs := range snap.Started {
		for _, lessonID := range lessonIDs {
			if t.started[courseID] == nil {
				t.started[courseID] = make(map[string]struct{})
			}
			t.started[courseID][lessonID] = struct{}{}
		}
	}
	t.version = snap.Version
}

// exportSnapshotLocked builds the durable form of the current state.
// Caller holds t.mu.
func (t *Tracker) exportSnapshotLocked() *store.ProgressSnapshot {
	snap := &store.ProgressSnapshot{
		Lessons: make(map[string]map[string]store.LessonProgressData, len(t.lessons)),
		Started: make(map[string][]string, len(t.started)),
		Version: t.version,
	}
	for courseID, lessons := range t.lessons {
		out := make(map[string]store.LessonProgressData, len(lessons))
		for lessonID, p := range lessons {
			out[lessonID] = store.LessonProgressData{
				Learned: p.Learned,
				Total:   p.Total,
				Status:  string(p.Status),
			}
		}
		snap.Lessons[courseID] = out
	}
	for courseID, set := range t.started {
		ids := make([]string, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		snap.Started[courseID] = ids
	}
	return snap
}

// parseStatus accepts a stored status verbatim when recognized. The
// started-lesson override (inProgress with learned == 0) must survive
// a round trip, so stored values win over re-derivation.
func parseStatus(s string, learned, total int) Status {
	switch Status(s) {
	case StatusLocked, StatusInProgress, StatusCompleted:
		return Status(s)
	default:
		return StatusFor(learned, total)
	}
}
