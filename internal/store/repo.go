package store

import "context"

// Well-known blob keys. The progress state is split the same way the
// tracker owns it: the lesson table and the started set are separate
// documents, and the notification version counter is its own key so a
// restart can continue the sequence.
const (
	KeyProgressLessons = "progress.lessons"
	KeyProgressStarted = "progress.started"
	KeyProgressVersion = "progress.version"
	KeyFavorites       = "favorites.lessons"
)

// LessonProgressData is the serialized form of one lesson's progress.
type LessonProgressData struct {
	Learned int    `json:"learned"`
	Total   int    `json:"total"`
	Status  string `json:"status"`
}

// ProgressSnapshot is the full durable state of the progress tracker:
// courseID -> lessonID -> progress, courseID -> started lesson IDs,
// and the last published change-notification version.
type ProgressSnapshot struct {
	Lessons map[string]map[string]LessonProgressData `json:"lessons"`
	Started map[string][]string                      `json:"started"`
	Version uint64                                   `json:"version"`
}

// ProgressRepo persists the tracker state.
type ProgressRepo interface {
	// Load returns the persisted snapshot, or nil if nothing was ever saved.
	Load(ctx context.Context) (*ProgressSnapshot, error)

	// Save overwrites the persisted snapshot.
	Save(ctx context.Context, snap *ProgressSnapshot) error
}

// FavoritesRepo persists the favorite-lesson set, courseID -> lesson IDs.
type FavoritesRepo interface {
	Load(ctx context.Context) (map[string][]string, error)
	Save(ctx context.Context, favs map[string][]string) error
}
