package pages

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qwikish/taskboard/internal/models"
	"github.com/qwikish/taskboard/internal/store"
	"github.com/qwikish/taskboard/internal/ui/styles"
	"github.com/qwikish/taskboard/internal/views"
)

// AnalyticsPage is a read-only dashboard of the task and pomodoro
// aggregates.
type AnalyticsPage struct {
	store  *store.Store
	styles *styles.Styles

	tasks    views.TaskStats
	sessions views.PomodoroStats
}

// NewAnalyticsPage creates the dashboard page.
func NewAnalyticsPage(s *store.Store) *AnalyticsPage {
	return &AnalyticsPage{store: s, styles: styles.NewStyles()}
}

func (p *AnalyticsPage) Init() tea.Cmd {
	p.tasks = views.Analyze(p.store.Tasks())
	p.sessions = views.AnalyzeSessions(p.store.PomodoroSessions())
	return nil
}

func (p *AnalyticsPage) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "r" {
		return p.Init()
	}
	return nil
}

func (p *AnalyticsPage) statBox(value, label string) string {
	return p.styles.StatBox.Render(
		p.styles.StatValue.Render(value) + "\n" + p.styles.StatLabel.Render(label))
}

// bar renders a simple horizontal count bar.
func (p *AnalyticsPage) bar(count, max int) string {
	if max == 0 {
		return ""
	}
	width := count * 20 / max
	return p.styles.ProgressDone.Render(strings.Repeat("▇", width))
}

func (p *AnalyticsPage) View() string {
	var b strings.Builder

	b.WriteString(p.styles.Title.Render("Analytics Dashboard"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		p.statBox(fmt.Sprintf("%d", p.tasks.Total), "Total Tasks"),
		p.statBox(fmt.Sprintf("%d", p.tasks.ByStatus[models.StatusCompleted]), "Completed"),
		p.statBox(fmt.Sprintf("%d%%", p.tasks.CompletionRate), "Completion Rate"),
		p.statBox(fmt.Sprintf("%dh", p.sessions.TotalFocusMinutes/60), "Focus Time"),
	))
	b.WriteString("\n\n")

	max := 0
	for _, status := range models.AllStatuses {
		if n := p.tasks.ByStatus[status]; n > max {
			max = n
		}
	}
	b.WriteString(p.styles.Title.Render("Status Distribution"))
	b.WriteString("\n")
	for _, status := range models.AllStatuses {
		n := p.tasks.ByStatus[status]
		b.WriteString(fmt.Sprintf("  %-12s %3d %s\n", status.Title(), n, p.bar(n, max)))
	}
	b.WriteString("\n")

	b.WriteString(p.styles.Title.Render("Priority Breakdown"))
	b.WriteString("\n")
	for _, priority := range models.AllPriorities {
		n := p.tasks.ByPriority[priority]
		b.WriteString(fmt.Sprintf("  %-12s %3d\n", priority, n))
	}
	b.WriteString("\n")

	b.WriteString(p.styles.Title.Render("Pomodoro Statistics"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  total sessions      %d\n", p.sessions.TotalSessions))
	b.WriteString(fmt.Sprintf("  completed sessions  %d\n", p.sessions.CompletedSessions))
	b.WriteString(fmt.Sprintf("  total focus time    %dm\n", p.sessions.TotalFocusMinutes))

	b.WriteString(p.styles.Help.Render(p.styles.HelpKey.Render("r") + " refresh"))
	return b.String()
}
