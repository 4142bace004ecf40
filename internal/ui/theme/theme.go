package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — warm, temple-gold against deep night
var (
	Primary   = lipgloss.Color("#F59E0B") // Temple Gold
	Secondary = lipgloss.Color("#10B981") // Emerald
	Accent    = lipgloss.Color("#E11D48") // Garuda Red
	Success   = lipgloss.Color("#22C55E") // Green
	Text      = lipgloss.Color("#FAFAF9") // Warm White
	TextDim   = lipgloss.Color("#A8A29E") // Stone
	BgCard    = lipgloss.Color("#1C1917") // Charcoal
	Border    = lipgloss.Color("#44403C") // Warm Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
