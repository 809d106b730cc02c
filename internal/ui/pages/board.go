// Package pages contains the bubbletea models for each application page.
// Pages render derived views of the store and translate key presses into
// store intents; they hold no authoritative state.
package pages

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/qwikish/taskboard/internal/models"
	"github.com/qwikish/taskboard/internal/store"
	"github.com/qwikish/taskboard/internal/ui/styles"
	"github.com/qwikish/taskboard/internal/views"
)

// BoardPage is the kanban board: five status columns with WIP badges.
type BoardPage struct {
	store  *store.Store
	styles *styles.Styles

	columns []views.Column
	col     int
	row     int

	creating   bool
	titleInput textinput.Model

	width  int
	height int
}

// NewBoardPage creates the kanban board page.
func NewBoardPage(s *store.Store) *BoardPage {
	input := textinput.New()
	input.Placeholder = "Task title"
	input.CharLimit = 200

	return &BoardPage{
		store:      s,
		styles:     styles.NewStyles(),
		titleInput: input,
	}
}

func (p *BoardPage) Init() tea.Cmd {
	p.reload()
	return nil
}

// reload recomputes the kanban projection from the store snapshot.
func (p *BoardPage) reload() {
	p.columns = views.Kanban(p.store.Tasks())
	if p.col >= len(p.columns) {
		p.col = len(p.columns) - 1
	}
	p.clampRow()
}

func (p *BoardPage) clampRow() {
	if len(p.columns) == 0 {
		return
	}
	max := len(p.columns[p.col].Tasks) - 1
	if p.row > max {
		p.row = max
	}
	if p.row < 0 {
		p.row = 0
	}
}

func (p *BoardPage) selected() *models.Task {
	if p.col >= len(p.columns) || p.row >= len(p.columns[p.col].Tasks) {
		return nil
	}
	return &p.columns[p.col].Tasks[p.row]
}

func (p *BoardPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return nil

	case tea.KeyMsg:
		if p.creating {
			return p.updateCreate(msg)
		}
		switch msg.String() {
		case "left", "h":
			if p.col > 0 {
				p.col--
				p.clampRow()
			}
		case "right", "l":
			if p.col < len(p.columns)-1 {
				p.col++
				p.clampRow()
			}
		case "up", "k":
			if p.row > 0 {
				p.row--
			}
		case "down", "j":
			if p.row < len(p.columns[p.col].Tasks)-1 {
				p.row++
			}
		case "[", "shift+left":
			// Move intent: drag one column to the left.
			if task := p.selected(); task != nil && p.col > 0 {
				p.store.MoveTask(task.ID, p.columns[p.col-1].Status)
				p.reload()
			}
		case "]", "shift+right":
			if task := p.selected(); task != nil && p.col < len(p.columns)-1 {
				p.store.MoveTask(task.ID, p.columns[p.col+1].Status)
				p.reload()
			}
		case "n":
			p.creating = true
			p.titleInput.SetValue("")
			return p.titleInput.Focus()
		case "d":
			if task := p.selected(); task != nil {
				p.store.DeleteTask(task.ID)
				p.reload()
			}
		}
	}
	return nil
}

// CapturingInput reports whether the page owns raw key input.
func (p *BoardPage) CapturingInput() bool { return p.creating }

func (p *BoardPage) updateCreate(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(p.titleInput.Value())
		if title != "" {
			p.store.AddTask(models.Task{
				Title:    title,
				Status:   p.columns[p.col].Status,
				Priority: models.PriorityMedium,
			})
			p.reload()
		}
		p.creating = false
		p.titleInput.Blur()
		return nil
	case "esc":
		p.creating = false
		p.titleInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	p.titleInput, cmd = p.titleInput.Update(msg)
	return cmd
}

func (p *BoardPage) View() string {
	tags := p.store.Tags()

	rendered := make([]string, 0, len(p.columns))
	colWidth := 22
	if p.width > 0 {
		if w := styles.ContentWidth(p.width)/len(p.columns) - 2; w > 14 {
			colWidth = w
		}
	}

	for i, col := range p.columns {
		header := p.styles.ColumnHeader.Render(col.Title)
		badge := ""
		if col.WIPLimit > 0 {
			badge = fmt.Sprintf(" %d/%d", len(col.Tasks), col.WIPLimit)
			if col.OverLimit {
				badge = p.styles.WIPBadgeOver.Render(badge + " WIP!")
			} else {
				badge = p.styles.WIPBadge.Render(badge)
			}
		} else {
			badge = p.styles.WIPBadge.Render(fmt.Sprintf(" %d", len(col.Tasks)))
		}

		lines := []string{header + badge}
		for j, task := range col.Tasks {
			marker := lipgloss.NewStyle().
				Foreground(styles.PriorityColor(task.Priority)).
				Render("•")
			title := ansi.Truncate(task.Title, colWidth-4, "…")
			line := marker + " " + title
			for _, tag := range views.TagsOf(task, tags) {
				line += " " + p.styles.Tag.
					Foreground(lipgloss.Color(tag.Color)).
					Render(tag.Name)
			}
			if i == p.col && j == p.row && !p.creating {
				lines = append(lines, p.styles.CardSelected.Width(colWidth).Render(line))
			} else {
				lines = append(lines, p.styles.Card.Width(colWidth).Render(line))
			}
		}

		body := strings.Join(lines, "\n")
		if i == p.col {
			rendered = append(rendered, p.styles.ColumnFocused.Width(colWidth+2).Render(body))
		} else {
			rendered = append(rendered, p.styles.Column.Width(colWidth+2).Render(body))
		}
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if p.creating {
		view += "\n" + p.styles.InputFocused.Render(p.titleInput.View())
	}
	view += "\n" + p.styles.Help.Render(
		p.styles.HelpKey.Render("[/]")+" move task  "+
			p.styles.HelpKey.Render("n")+" new  "+
			p.styles.HelpKey.Render("d")+" delete")
	return view
}
