package pages

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/qwikish/taskboard/internal/models"
	"github.com/qwikish/taskboard/internal/store"
	"github.com/qwikish/taskboard/internal/ui/styles"
	"github.com/qwikish/taskboard/internal/views"
)

type plannerFocus int

const (
	focusSlots plannerFocus = iota
	focusGoals
)

// PlannerPage is the daily planner: hourly slots plus the goal list.
// The plan is transient page state; the tasks it snapshots come from the
// store.
type PlannerPage struct {
	store  *store.Store
	styles *styles.Styles

	plan   *views.DayPlan
	focus  plannerFocus
	cursor int

	picking   bool
	tasks     []models.Task
	pickIdx   int
	adding    bool
	goalInput textinput.Model
}

// NewPlannerPage creates the planner page with an empty plan.
func NewPlannerPage(s *store.Store) *PlannerPage {
	input := textinput.New()
	input.Placeholder = "New goal"
	input.CharLimit = 120

	return &PlannerPage{
		store:     s,
		styles:    styles.NewStyles(),
		plan:      views.NewDayPlan(),
		goalInput: input,
	}
}

func (p *PlannerPage) Init() tea.Cmd {
	return nil
}

func (p *PlannerPage) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if p.adding {
		return p.updateGoalInput(key)
	}
	if p.picking {
		return p.updatePicker(key)
	}

	switch key.String() {
	case "tab":
		if p.focus == focusSlots {
			p.focus = focusGoals
		} else {
			p.focus = focusSlots
		}
		p.cursor = 0
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		max := len(p.plan.Slots) - 1
		if p.focus == focusGoals {
			max = len(p.plan.Goals) - 1
		}
		if p.cursor < max {
			p.cursor++
		}
	case "enter", " ":
		if p.focus == focusGoals {
			p.plan.ToggleGoal(p.cursor)
		} else {
			p.tasks = views.ActiveTasks(p.store.Tasks())
			if len(p.tasks) > 0 {
				p.picking = true
				p.pickIdx = 0
			}
		}
	case "c":
		if p.focus == focusSlots {
			p.plan.Clear(p.plan.Slots[p.cursor].Hour)
		}
	case "g":
		p.adding = true
		p.goalInput.SetValue("")
		return p.goalInput.Focus()
	}
	return nil
}

// CapturingInput reports whether the page owns raw key input.
func (p *PlannerPage) CapturingInput() bool { return p.adding }

func (p *PlannerPage) updatePicker(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "up", "k":
		if p.pickIdx > 0 {
			p.pickIdx--
		}
	case "down", "j":
		if p.pickIdx < len(p.tasks)-1 {
			p.pickIdx++
		}
	case "enter":
		p.plan.Assign(p.plan.Slots[p.cursor].Hour, p.tasks[p.pickIdx])
		p.picking = false
	case "esc":
		p.picking = false
	}
	return nil
}

func (p *PlannerPage) updateGoalInput(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "enter":
		if title := strings.TrimSpace(p.goalInput.Value()); title != "" {
			p.plan.AddGoal(title)
		}
		p.adding = false
		p.goalInput.Blur()
		return nil
	case "esc":
		p.adding = false
		p.goalInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	p.goalInput, cmd = p.goalInput.Update(key)
	return cmd
}

func (p *PlannerPage) View() string {
	var b strings.Builder

	b.WriteString(p.styles.Title.Render("Daily Planner"))
	b.WriteString("  ")
	b.WriteString(p.styles.TitleMuted.Render(fmt.Sprintf(
		"goals %d/%d · planned %dm · actual %dm",
		p.plan.DoneGoals(), len(p.plan.Goals),
		p.plan.PlannedMinutes(), p.plan.ActualMinutes())))
	b.WriteString("\n\n")

	for i, slot := range p.plan.Slots {
		line := slot.Label() + "  "
		if slot.Task != nil {
			check := " "
			if slot.Task.Completed {
				check = "✓"
			}
			line += fmt.Sprintf("[%s] %s (%dm)", check, slot.Task.Title, slot.Task.EstimatedTime)
		} else {
			line += "—"
		}
		if p.focus == focusSlots && i == p.cursor && !p.adding {
			b.WriteString(p.styles.ListSelected.Render(line))
		} else {
			b.WriteString(p.styles.ListItem.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.styles.Title.Render("Goals"))
	b.WriteString("\n")
	if len(p.plan.Goals) == 0 {
		b.WriteString(p.styles.TitleMuted.Render("  no goals yet (press g)"))
		b.WriteString("\n")
	}
	for i, goal := range p.plan.Goals {
		check := "[ ]"
		if goal.Done {
			check = "[x]"
		}
		line := check + " " + goal.Title
		if p.focus == focusGoals && i == p.cursor && !p.adding {
			b.WriteString(p.styles.ListSelected.Render(line))
		} else {
			b.WriteString(p.styles.ListItem.Render(line))
		}
		b.WriteString("\n")
	}

	if p.adding {
		b.WriteString(p.styles.InputFocused.Render(p.goalInput.View()))
		b.WriteString("\n")
	}
	if p.picking {
		b.WriteString("\n")
		for i, task := range p.tasks {
			if i == p.pickIdx {
				b.WriteString(p.styles.ListSelected.Render(task.Title))
			} else {
				b.WriteString(p.styles.ListItem.Render(task.Title))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(p.styles.Help.Render(
		p.styles.HelpKey.Render("enter")+" assign/toggle  "+
			p.styles.HelpKey.Render("c")+" clear slot  "+
			p.styles.HelpKey.Render("g")+" goal  "+
			p.styles.HelpKey.Render("tab")+" focus"))
	return b.String()
}
