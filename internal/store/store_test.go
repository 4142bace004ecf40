package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressRepo_LoadEmpty(t *testing.T) {
	s := openTestStore(t)

	snap, err := s.ProgressRepo().Load(context.Background())
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when nothing was saved")
	}
}

func TestProgressRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	in := &ProgressSnapshot{
		Lessons: map[string]map[string]LessonProgressData{
			"greetings": {
				"greetings_l1": {Learned: 3, Total: 3, Status: "completed"},
				"greetings_l2": {Learned: 0, Total: 4, Status: "inProgress"},
			},
		},
		Started: map[string][]string{"greetings": {"greetings_l2"}},
		Version: 9,
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if out.Version != 9 {
		t.Errorf("version = %d, want 9", out.Version)
	}
	got := out.Lessons["greetings"]["greetings_l1"]
	if got.Learned != 3 || got.Total != 3 || got.Status != "completed" {
		t.Errorf("lesson data = %+v", got)
	}
	if len(out.Started["greetings"]) != 1 || out.Started["greetings"][0] != "greetings_l2" {
		t.Errorf("started = %v", out.Started)
	}
}

func TestProgressRepo_SaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	first := &ProgressSnapshot{
		Lessons: map[string]map[string]LessonProgressData{
			"numbers": {"numbers_l1": {Learned: 1, Total: 10, Status: "inProgress"}},
		},
		Started: map[string][]string{},
		Version: 1,
	}
	second := &ProgressSnapshot{
		Lessons: map[string]map[string]LessonProgressData{
			"numbers": {"numbers_l1": {Learned: 10, Total: 10, Status: "completed"}},
		},
		Started: map[string][]string{},
		Version: 2,
	}

	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Lessons["numbers"]["numbers_l1"].Learned != 10 {
		t.Errorf("learned = %d, want 10 (last write wins)",
			out.Lessons["numbers"]["numbers_l1"].Learned)
	}
	if out.Version != 2 {
		t.Errorf("version = %d, want 2", out.Version)
	}
}

func TestFavoritesRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.FavoritesRepo()
	ctx := context.Background()

	empty, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if empty != nil {
		t.Fatal("expected nil favorites when nothing was saved")
	}

	in := map[string][]string{"food": {"food_l1", "food_l2"}}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out["food"]) != 2 {
		t.Errorf("favorites = %v", out)
	}
}
