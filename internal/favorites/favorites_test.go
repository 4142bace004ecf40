package favorites

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pattarin/rianthai/internal/events"
)

type memRepo struct {
	mu    sync.Mutex
	saves int
	data  map[string][]string
}

func (r *memRepo) Load(ctx context.Context) (map[string][]string, error) {
	return r.data, nil
}

func (r *memRepo) Save(ctx context.Context, favs map[string][]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	r.data = favs
	return nil
}

func TestToggle(t *testing.T) {
	s := New(nil, nil)

	assert.True(t, s.Toggle("greetings", "greetings_l1"))
	assert.True(t, s.IsFavorite("greetings", "greetings_l1"))
	assert.Equal(t, 1, s.Count("greetings"))

	assert.False(t, s.Toggle("greetings", "greetings_l1"))
	assert.False(t, s.IsFavorite("greetings", "greetings_l1"))
	assert.Equal(t, 0, s.Count("greetings"))
}

func TestToggle_PublishesAndPersists(t *testing.T) {
	repo := &memRepo{}
	bus := events.NewBus(nil)
	s := New(repo, nil)
	s.Attach(bus)

	changed := 0
	bus.Subscribe(events.TopicFavoritesChanged, func(events.Event) { changed++ })

	s.Toggle("food", "food_l1")

	assert.Equal(t, 1, changed)
	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, []string{"food_l1"}, repo.data["food"])
}

func TestLoadOnStartup(t *testing.T) {
	repo := &memRepo{data: map[string][]string{"numbers": {"numbers_l1", "numbers_l2"}}}
	s := New(repo, nil)

	assert.True(t, s.IsFavorite("numbers", "numbers_l1"))
	assert.Equal(t, 2, s.Count("numbers"))
}

func TestResetFanOut_ClearsScopedState(t *testing.T) {
	bus := events.NewBus(nil)
	s := New(nil, nil)
	s.Attach(bus)

	s.Toggle("greetings", "greetings_l1")
	s.Toggle("food", "food_l1")

	bus.Publish(events.CourseProgressCleared{CourseID: "greetings"})
	require.False(t, s.IsFavorite("greetings", "greetings_l1"))
	require.True(t, s.IsFavorite("food", "food_l1"))

	bus.Publish(events.AllProgressCleared{})
	require.False(t, s.IsFavorite("food", "food_l1"))
}

func TestClear_SilentWhenEmpty(t *testing.T) {
	bus := events.NewBus(nil)
	s := New(nil, nil)
	s.Attach(bus)

	changed := 0
	bus.Subscribe(events.TopicFavoritesChanged, func(events.Event) { changed++ })

	s.ClearCourse("never_favorited")
	s.ClearAll()

	assert.Equal(t, 0, changed)
}
