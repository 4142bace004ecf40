package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pattarin/rianthai/internal/progress"
	"github.com/pattarin/rianthai/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - lipgloss.Width(result) - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// SlotStrip renders one cell per lesson: full, partial or empty,
// driven by the percentages the tracker's Slots query returns.
type SlotStrip struct {
	Slots []float64
}

// View renders the strip.
func (s SlotStrip) View() string {
	var b strings.Builder
	for i, pct := range s.Slots {
		if i > 0 {
			b.WriteString(" ")
		}
		switch {
		case pct >= 1:
			b.WriteString(theme.Done.Render("◆"))
		case pct > 0:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("◈"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("◇"))
		}
	}
	return b.String()
}

// StatusGlyph renders a lesson or course status as a single glyph.
func StatusGlyph(st progress.Status) string {
	switch st {
	case progress.StatusCompleted:
		return theme.Done.Render("✓")
	case progress.StatusInProgress:
		return lipgloss.NewStyle().Foreground(theme.Primary).Render("›")
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("·")
	}
}
