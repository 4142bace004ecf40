package progress

// Status is a lesson's derived completion state.
type Status string

const (
	StatusLocked     Status = "locked"
	StatusInProgress Status = "inProgress"
	StatusCompleted  Status = "completed"
)

// StatusFor derives a status purely from counts. Status is never
// transitioned through a table; it is recomputed from scratch on every
// update, which makes the tracker idempotent under replayed events.
func StatusFor(learned, total int) Status {
	switch {
	case total > 0 && learned >= total:
		return StatusCompleted
	case learned > 0:
		return StatusInProgress
	default:
		return StatusLocked
	}
}

// LessonProgress is the tracked state of one lesson. Total is the
// effective card count, lifehacks already excluded.
type LessonProgress struct {
	Learned int
	Total   int
	Status  Status
}

// Percent returns learned/total clamped to [0,1], 0 when total is 0.
func (p LessonProgress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	pct := float64(p.Learned) / float64(p.Total)
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
