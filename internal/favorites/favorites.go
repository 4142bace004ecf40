// Package favorites keeps the learner's starred lessons. It reacts to
// the tracker's reset fan-out by clearing its own course-scoped state.
package favorites

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/pattarin/rianthai/internal/events"
	"github.com/pattarin/rianthai/internal/store"
)

// Set holds favorite lessons keyed by course. Writes persist
// immediately; favorite toggles are rare enough that debouncing would
// buy nothing.
type Set struct {
	mu    sync.Mutex
	items map[string]map[string]struct{}

	repo store.FavoritesRepo
	bus  *events.Bus
	log  *slog.Logger
}

// New loads favorites from the repo; a missing or unreadable blob
// starts empty. repo may be nil for in-memory use.
func New(repo store.FavoritesRepo, log *slog.Logger) *Set {
	if log == nil {
		log = slog.Default()
	}
	s := &Set{
		items: make(map[string]map[string]struct{}),
		repo:  repo,
		log:   log,
	}
	if repo != nil {
		favs, err := repo.Load(context.Background())
		if err != nil {
			log.Warn("favorites unreadable, starting empty", "error", err)
		}
		for courseID, lessonIDs := range favs {
			for _, id := range lessonIDs {
				if s.items[courseID] == nil {
					s.items[courseID] = make(map[string]struct{})
				}
				s.items[courseID][id] = struct{}{}
			}
		}
	}
	return s
}

// Attach wires the set to the bus: reset fan-out clears scoped state,
// and every local mutation announces itself as favorites.changed.
func (s *Set) Attach(bus *events.Bus) {
	s.mu.Lock()
	s.bus = bus
	s.mu.Unlock()

	bus.Subscribe(events.TopicCourseCleared, func(evt events.Event) {
		if e, ok := evt.(events.CourseProgressCleared); ok {
			s.ClearCourse(e.CourseID)
		}
	})
	bus.Subscribe(events.TopicAllCleared, func(events.Event) {
		s.ClearAll()
	})
}

// IsFavorite reports whether a lesson is starred.
func (s *Set) IsFavorite(courseID, lessonID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.items[courseID][lessonID]
	return ok
}

// Count returns the number of starred lessons in a course.
func (s *Set) Count(courseID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items[courseID])
}

// Toggle flips a lesson's starred state and returns the new state.
func (s *Set) Toggle(courseID, lessonID string) bool {
	s.mu.Lock()
	var starred bool
	if _, ok := s.items[courseID][lessonID]; ok {
		delete(s.items[courseID], lessonID)
		if len(s.items[courseID]) == 0 {
			delete(s.items, courseID)
		}
	} else {
		if s.items[courseID] == nil {
			s.items[courseID] = make(map[string]struct{})
		}
		s.items[courseID][lessonID] = struct{}{}
		starred = true
	}
	bus := s.bus
	s.mu.Unlock()

	s.persist()
	if bus != nil {
		bus.Publish(events.FavoritesChanged{})
	}
	return starred
}

// ClearCourse removes every favorite in a course. No-op stays silent.
func (s *Set) ClearCourse(courseID string) {
	s.mu.Lock()
	_, had := s.items[courseID]
	delete(s.items, courseID)
	bus := s.bus
	s.mu.Unlock()

	if !had {
		return
	}
	s.persist()
	if bus != nil {
		bus.Publish(events.FavoritesChanged{})
	}
}

// ClearAll removes every favorite.
func (s *Set) ClearAll() {
	s.mu.Lock()
	had := len(s.items) > 0
	s.items = make(map[string]map[string]struct{})
	bus := s.bus
	s.mu.Unlock()

	if !had {
		return
	}
	s.persist()
	if bus != nil {
		bus.Publish(events.FavoritesChanged{})
	}
}

func (s *Set) persist() {
	if s.repo == nil {
		return
	}
	s.mu.Lock()
	out := make(map[string][]string, len(s.items))
	for courseID, set := range s.items {
		ids := make([]string, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		out[courseID] = ids
	}
	s.mu.Unlock()

	if err := s.repo.Save(context.Background(), out); err != nil {
		s.log.Warn("persist favorites failed", "error", err)
	}
}
