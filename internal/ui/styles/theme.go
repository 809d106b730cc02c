package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/qwikish/taskboard/internal/models"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name string

	// Base colors
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// UI element colors
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
}

// TokyoNight is the default color theme
var TokyoNight = Theme{
	Name: "Tokyo Night",

	Background:    lipgloss.Color("#1a1b26"),
	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#bb9af7"),
	Accent:    lipgloss.Color("#7dcfff"),

	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),
	Info:    lipgloss.Color("#7aa2f7"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7aa2f7"),
	Selection:   lipgloss.Color("#33467c"),
}

// Current holds the active theme
var Current = TokyoNight

// Styles holds the pre-computed styles shared across pages
type Styles struct {
	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	// Kanban board
	Column         lipgloss.Style
	ColumnFocused  lipgloss.Style
	ColumnHeader   lipgloss.Style
	WIPBadge       lipgloss.Style
	WIPBadgeOver   lipgloss.Style
	Card           lipgloss.Style
	CardSelected   lipgloss.Style
	CardPriorityHi lipgloss.Style

	// Timer
	TimerDisplay lipgloss.Style
	TimerPhase   lipgloss.Style
	ProgressDone lipgloss.Style
	ProgressRest lipgloss.Style

	// Calendar
	CalendarCell  lipgloss.Style
	CalendarToday lipgloss.Style
	CalendarBusy  lipgloss.Style

	// Lists and stats
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	StatBox      lipgloss.Style
	StatValue    lipgloss.Style
	StatLabel    lipgloss.Style

	// Inputs
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Chrome
	Tag       lipgloss.Style
	Help      lipgloss.Style
	HelpKey   lipgloss.Style
	StatusBar lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles creates styles based on the current theme
func NewStyles() *Styles {
	t := Current

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		ColumnFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),

		WIPBadge: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		WIPBadgeOver: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		Card: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 1).
			Bold(true),

		CardPriorityHi: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		TimerDisplay: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.Border),

		TimerPhase: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		ProgressDone: lipgloss.NewStyle().
			Foreground(t.Warning),

		ProgressRest: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		CalendarCell: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Width(4).
			Align(lipgloss.Right),

		CalendarToday: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Width(4).
			Align(lipgloss.Right).
			Bold(true),

		CalendarBusy: lipgloss.NewStyle().
			Foreground(t.Warning).
			Width(4).
			Align(lipgloss.Right).
			Bold(true),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 2),

		ListSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 2).
			Bold(true),

		StatBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2).
			MarginRight(1),

		StatValue: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		StatLabel: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		Tag: lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(0, 1),

		Error: lipgloss.NewStyle().
			Foreground(t.Error),
	}
}

// PriorityColor maps a task priority to its display color.
func PriorityColor(p models.Priority) lipgloss.Color {
	switch p {
	case models.PriorityHigh:
		return Current.Error
	case models.PriorityMedium:
		return Current.Warning
	default:
		return Current.Success
	}
}

// MaxWidth is the maximum content width for the app (classic terminal width)
const MaxWidth = 120

// ContentWidth returns the actual content width to use (min of terminal width and MaxWidth)
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView wraps content and centers it horizontally if terminal is wider than MaxWidth
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}
