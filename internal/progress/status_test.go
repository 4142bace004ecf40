package progress

import "testing"

func TestStatusFor_Grid(t *testing.T) {
	tests := []struct {
		learned, total int
		want           Status
	}{
		{0, 0, StatusLocked},
		{0, 5, StatusLocked},
		{1, 5, StatusInProgress},
		{4, 5, StatusInProgress},
		{5, 5, StatusCompleted},
		{7, 5, StatusCompleted}, // over-report still completes
		{3, 0, StatusInProgress},
		{1, 1, StatusCompleted},
		{0, 1, StatusLocked},
	}
	for _, tt := range tests {
		got := StatusFor(tt.learned, tt.total)
		if got != tt.want {
			t.Errorf("StatusFor(%d, %d) = %s, want %s", tt.learned, tt.total, got, tt.want)
		}
	}
}

func TestStatusFor_CompletedNeedsContent(t *testing.T) {
	// total == 0 can never read as completed, whatever learned says.
	if got := StatusFor(0, 0); got == StatusCompleted {
		t.Errorf("StatusFor(0, 0) = %s, want not completed", got)
	}
}

func TestLessonProgress_Percent(t *testing.T) {
	tests := []struct {
		name string
		p    LessonProgress
		want float64
	}{
		{"zero total", LessonProgress{Learned: 3, Total: 0}, 0},
		{"half", LessonProgress{Learned: 2, Total: 4}, 0.5},
		{"full", LessonProgress{Learned: 4, Total: 4}, 1},
		{"clamped above one", LessonProgress{Learned: 9, Total: 4}, 1},
		{"empty", LessonProgress{}, 0},
	}
	for _, tt := range tests {
		if got := tt.p.Percent(); got != tt.want {
			t.Errorf("%s: Percent() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
