// Package events carries the typed publish/subscribe protocol between
// the progress tracker and the rest of the app. Each topic has exactly
// one event struct, so subscribers never guess at payload shapes.
package events

import "github.com/google/uuid"

// Topic names an event stream on the bus.
type Topic string

const (
	// Inbound to the progress tracker.
	TopicLessonProgress   Topic = "content.progressChanged"
	TopicProgressReset    Topic = "content.progressReset"
	TopicSessionStarted   Topic = "lesson.sessionStarted"
	TopicFavoritesChanged Topic = "favorites.changed"

	// Outbound from the progress tracker.
	TopicProgressInvalidated Topic = "progress.invalidated"
	TopicCourseCleared       Topic = "course.progressReset"
	TopicAllCleared          Topic = "allProgress.reset"
)

// Event is implemented by every payload struct in this package.
type Event interface {
	EventTopic() Topic
}

// LessonProgressCounted reports pre-aggregated learning counts for one
// lesson. Lifehacks is subtracted from Total by the tracker.
type LessonProgressCounted struct {
	CourseID  string
	LessonID  string
	Learned   int
	Total     int
	Lifehacks int
}

func (LessonProgressCounted) EventTopic() Topic { return TopicLessonProgress }

// LessonProgressIndexed reports raw card index sets for one lesson.
// Learned indices outside All are ignored; Lifehacks never count.
type LessonProgressIndexed struct {
	CourseID  string
	LessonID  string
	Learned   []int
	All       []int
	Lifehacks []int
}

func (LessonProgressIndexed) EventTopic() Topic { return TopicLessonProgress }

// ProgressResetRequested asks consumers to re-read progress state.
// It does not mutate anything; empty IDs mean "everything".
type ProgressResetRequested struct {
	CourseID string
	LessonID string
}

func (ProgressResetRequested) EventTopic() Topic { return TopicProgressReset }

// LessonSessionStarted signals that the learner opened a lesson.
// TotalHint, when known, seeds the synthesized progress record.
type LessonSessionStarted struct {
	SessionID uuid.UUID
	CourseID  string
	LessonID  string
	TotalHint int
}

func (LessonSessionStarted) EventTopic() Topic { return TopicSessionStarted }

// FavoritesChanged signals that the favorite set was mutated. Carries
// no detail; derived counters must be re-read.
type FavoritesChanged struct{}

func (FavoritesChanged) EventTopic() Topic { return TopicFavoritesChanged }

// ProgressInvalidated is the coalesced "state changed, re-read your
// aggregates" signal. Version is only meaningful under inequality.
type ProgressInvalidated struct {
	Version uint64
}

func (ProgressInvalidated) EventTopic() Topic { return TopicProgressInvalidated }

// CourseProgressCleared fans a course-wide reset out to collaborators
// holding course-scoped state (favorites, card-level stores).
type CourseProgressCleared struct {
	CourseID string
}

func (CourseProgressCleared) EventTopic() Topic { return TopicCourseCleared }

// AllProgressCleared fans a full reset out to all collaborators.
type AllProgressCleared struct{}

func (AllProgressCleared) EventTopic() Topic { return TopicAllCleared }
