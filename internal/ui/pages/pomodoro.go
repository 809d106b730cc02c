package pages

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/qwikish/taskboard/internal/models"
	"github.com/qwikish/taskboard/internal/pomodoro"
	"github.com/qwikish/taskboard/internal/store"
	"github.com/qwikish/taskboard/internal/ui/styles"
	"github.com/qwikish/taskboard/internal/views"
)

// tickMsg carries its scheduling generation so ticks armed before a
// pause, stop, reset or phase switch are dropped instead of mutating a
// countdown the user no longer expects to be running.
type tickMsg struct {
	gen int
}

// SettingsChanged is broadcast when the settings page saves new phase
// durations.
type SettingsChanged struct {
	Settings pomodoro.Settings
}

// PomodoroPage drives the timer state machine with one-second ticks.
type PomodoroPage struct {
	store  *store.Store
	styles *styles.Styles
	timer  *pomodoro.Timer

	gen     int // current tick generation; bumping it cancels pending ticks
	picking bool
	tasks   []models.Task
	cursor  int

	err string
}

// NewPomodoroPage creates the timer page. Completed sessions are recorded
// into the store.
func NewPomodoroPage(s *store.Store, settings pomodoro.Settings) *PomodoroPage {
	p := &PomodoroPage{
		store:  s,
		styles: styles.NewStyles(),
	}
	p.timer = pomodoro.New(func(sess models.PomodoroSession) {
		s.AddPomodoroSession(sess)
	}, pomodoro.WithSettings(settings))
	return p
}

func (p *PomodoroPage) Init() tea.Cmd {
	p.tasks = views.ActiveTasks(p.store.Tasks())
	if p.timer.Running() {
		// Returning to a live countdown: Teardown cancelled its ticks,
		// so a new schedule has to be armed here.
		p.cancelTicks()
		return p.tickCmd()
	}
	return nil
}

// cancelTicks invalidates every pending tick.
func (p *PomodoroPage) cancelTicks() {
	p.gen++
}

func (p *PomodoroPage) tickCmd() tea.Cmd {
	gen := p.gen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Teardown cancels pending ticks when the page is left.
func (p *PomodoroPage) Teardown() {
	p.cancelTicks()
}

func (p *PomodoroPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != p.gen {
			return nil // stale tick from a cancelled schedule
		}
		p.timer.Tick()
		if p.timer.Running() {
			return p.tickCmd()
		}
		return nil

	case SettingsChanged:
		p.timer.SetSettings(msg.Settings)
		return nil

	case tea.KeyMsg:
		if p.picking {
			return p.updatePicker(msg)
		}
		return p.updateKeys(msg)
	}
	return nil
}

func (p *PomodoroPage) updateKeys(msg tea.KeyMsg) tea.Cmd {
	p.err = ""
	switch msg.String() {
	case "s", " ":
		if p.timer.Running() {
			p.timer.Pause()
			p.cancelTicks()
			return nil
		}
		if err := p.timer.Start(); err != nil {
			p.err = "select a task first (press t)"
			return nil
		}
		p.cancelTicks()
		return p.tickCmd()
	case "x":
		p.timer.Stop()
		p.cancelTicks()
	case "r":
		p.timer.Reset()
		p.cancelTicks()
	case "tab":
		p.cancelTicks()
		switch p.timer.Phase() {
		case models.SessionFocus:
			p.timer.SwitchPhase(models.SessionShortBreak)
		case models.SessionShortBreak:
			p.timer.SwitchPhase(models.SessionLongBreak)
		default:
			p.timer.SwitchPhase(models.SessionFocus)
		}
	case "t":
		p.tasks = views.ActiveTasks(p.store.Tasks())
		if len(p.tasks) > 0 {
			p.picking = true
			p.cursor = 0
		}
	}
	return nil
}

func (p *PomodoroPage) updatePicker(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.tasks)-1 {
			p.cursor++
		}
	case "enter":
		p.timer.SelectTask(p.tasks[p.cursor].ID)
		p.picking = false
	case "esc":
		p.picking = false
	}
	return nil
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func (p *PomodoroPage) progressBar(width int) string {
	done := int(p.timer.Progress() * float64(width))
	return p.styles.ProgressDone.Render(strings.Repeat("█", done)) +
		p.styles.ProgressRest.Render(strings.Repeat("░", width-done))
}

func phaseLabel(t models.SessionType) string {
	switch t {
	case models.SessionShortBreak:
		return "Short Break"
	case models.SessionLongBreak:
		return "Long Break"
	default:
		return "Focus"
	}
}

func (p *PomodoroPage) View() string {
	var b strings.Builder

	b.WriteString(p.styles.TimerPhase.Render(phaseLabel(p.timer.Phase())))
	state := "paused"
	if p.timer.Running() {
		state = "running"
	}
	b.WriteString(p.styles.TitleMuted.Render("  (" + state + ")"))
	b.WriteString("\n\n")
	b.WriteString(p.styles.TimerDisplay.Render(formatClock(p.timer.Remaining())))
	b.WriteString("\n")
	b.WriteString(p.progressBar(30))
	b.WriteString("\n\n")

	if p.timer.Phase() == models.SessionFocus {
		taskLine := "no task selected"
		if task, ok := p.store.Task(p.timer.TaskID()); ok {
			taskLine = "focusing on: " + task.Title
		}
		b.WriteString(p.styles.TitleMuted.Render(taskLine))
		b.WriteString("\n")
	}
	b.WriteString(p.styles.TitleMuted.Render(
		fmt.Sprintf("sessions completed: %d", p.timer.SessionCount())))
	b.WriteString("\n")

	if p.err != "" {
		b.WriteString(p.styles.Error.Render(p.err))
		b.WriteString("\n")
	}

	if p.picking {
		b.WriteString("\n")
		for i, task := range p.tasks {
			if i == p.cursor {
				b.WriteString(p.styles.ListSelected.Render(task.Title))
			} else {
				b.WriteString(p.styles.ListItem.Render(task.Title))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(p.styles.Help.Render(
		p.styles.HelpKey.Render("s")+" start/pause  "+
			p.styles.HelpKey.Render("x")+" stop  "+
			p.styles.HelpKey.Render("r")+" reset  "+
			p.styles.HelpKey.Render("tab")+" phase  "+
			p.styles.HelpKey.Render("t")+" task"))
	return b.String()
}
