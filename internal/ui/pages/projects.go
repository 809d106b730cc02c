package pages

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qwikish/taskboard/internal/models"
	"github.com/qwikish/taskboard/internal/store"
	"github.com/qwikish/taskboard/internal/ui/styles"
)

// defaultProjectColors cycles for newly created projects.
var defaultProjectColors = []string{"#7aa2f7", "#9ece6a", "#e0af68", "#bb9af7", "#7dcfff"}

// ProjectsPage lists projects with their task counts.
type ProjectsPage struct {
	store  *store.Store
	styles *styles.Styles

	projects []models.Project
	cursor   int

	creating  bool
	nameInput textinput.Model

	confirming bool
	deleteID   string
}

// NewProjectsPage creates the projects page.
func NewProjectsPage(s *store.Store) *ProjectsPage {
	input := textinput.New()
	input.Placeholder = "Project name"
	input.CharLimit = 100

	return &ProjectsPage{store: s, styles: styles.NewStyles(), nameInput: input}
}

func (p *ProjectsPage) Init() tea.Cmd {
	p.reload()
	return nil
}

func (p *ProjectsPage) reload() {
	p.projects = p.store.Projects()
	if p.cursor >= len(p.projects) && p.cursor > 0 {
		p.cursor = len(p.projects) - 1
	}
}

// taskCount counts tasks assigned to the project.
func (p *ProjectsPage) taskCount(projectID string) int {
	n := 0
	for _, t := range p.store.Tasks() {
		if t.ProjectID == projectID {
			n++
		}
	}
	return n
}

func (p *ProjectsPage) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if p.creating {
		return p.updateCreate(key)
	}
	if p.confirming {
		switch key.String() {
		case "y":
			// Tasks keep their project reference; they become unassigned.
			p.store.DeleteProject(p.deleteID)
			p.confirming = false
			p.reload()
		case "n", "esc":
			p.confirming = false
		}
		return nil
	}

	switch key.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.projects)-1 {
			p.cursor++
		}
	case "n":
		p.creating = true
		p.nameInput.SetValue("")
		return p.nameInput.Focus()
	case "d":
		if p.cursor < len(p.projects) {
			p.confirming = true
			p.deleteID = p.projects[p.cursor].ID
		}
	}
	return nil
}

// CapturingInput reports whether the page owns raw key input.
func (p *ProjectsPage) CapturingInput() bool { return p.creating }

func (p *ProjectsPage) updateCreate(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "enter":
		if name := strings.TrimSpace(p.nameInput.Value()); name != "" {
			p.store.AddProject(models.Project{
				Name:  name,
				Color: defaultProjectColors[len(p.projects)%len(defaultProjectColors)],
			})
			p.reload()
		}
		p.creating = false
		p.nameInput.Blur()
		return nil
	case "esc":
		p.creating = false
		p.nameInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	p.nameInput, cmd = p.nameInput.Update(key)
	return cmd
}

func (p *ProjectsPage) View() string {
	var b strings.Builder

	b.WriteString(p.styles.Title.Render("Projects"))
	b.WriteString("\n\n")

	if len(p.projects) == 0 {
		b.WriteString(p.styles.TitleMuted.Render("  no projects yet (press n)"))
		b.WriteString("\n")
	}
	for i, project := range p.projects {
		dot := lipgloss.NewStyle().
			Foreground(lipgloss.Color(project.Color)).
			Render("●")
		line := fmt.Sprintf("%s %s (%d tasks)", dot, project.Name, p.taskCount(project.ID))
		if i == p.cursor && !p.creating {
			b.WriteString(p.styles.ListSelected.Render(line))
		} else {
			b.WriteString(p.styles.ListItem.Render(line))
		}
		b.WriteString("\n")
	}

	if p.creating {
		b.WriteString(p.styles.InputFocused.Render(p.nameInput.View()))
		b.WriteString("\n")
	}
	if p.confirming {
		b.WriteString(p.styles.Error.Render("delete project? tasks keep running unassigned (y/n)"))
		b.WriteString("\n")
	}

	b.WriteString(p.styles.Help.Render(
		p.styles.HelpKey.Render("n") + " new  " +
			p.styles.HelpKey.Render("d") + " delete"))
	return b.String()
}
