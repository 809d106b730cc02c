package ui

import (
	"log/slog"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qwikish/taskboard/internal/store"
	"github.com/qwikish/taskboard/internal/ui/pages"
	"github.com/qwikish/taskboard/internal/ui/styles"
)

// Page identifies the currently active page.
type Page int

const (
	PageBoard Page = iota
	PagePomodoro
	PageCalendar
	PageAnalytics
	PagePlanner
	PageProjects
	PageSettings
)

var pageNames = []string{
	"Board", "Pomodoro", "Calendar", "Analytics", "Planner", "Projects", "Settings",
}

// Storage is the persistence surface the app needs beyond the store
// itself: UI preferences and the reset interface.
type Storage interface {
	store.Adapter
	pages.Preferences
	pages.Resetter
}

// pageModel is what every page provides to the root model.
type pageModel interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
}

// App is the root model: it owns the store and dispatches to the active
// page.
type App struct {
	store   *store.Store
	storage Storage
	styles  *styles.Styles
	log     *slog.Logger

	current  Page
	board    *pages.BoardPage
	pomodoro *pages.PomodoroPage
	calendar *pages.CalendarPage
	stats    *pages.AnalyticsPage
	planner  *pages.PlannerPage
	projects *pages.ProjectsPage
	settings *pages.SettingsPage

	width  int
	height int
}

// NewApp creates the application root model. The logger must be the one
// the store was built with; a data reset rebuilds the store with it.
func NewApp(s *store.Store, storage Storage, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	a := &App{
		store:   s,
		storage: storage,
		styles:  styles.NewStyles(),
		log:     log,
	}
	a.buildPages()

	// Restore the last opened page.
	if v, err := storage.GetSetting("last_page"); err == nil && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n < len(pageNames) {
			a.current = Page(n)
		}
	}
	return a
}

func (a *App) buildPages() {
	a.board = pages.NewBoardPage(a.store)
	a.pomodoro = pages.NewPomodoroPage(a.store, pages.LoadTimerSettings(a.storage))
	a.calendar = pages.NewCalendarPage(a.store)
	a.stats = pages.NewAnalyticsPage(a.store)
	a.planner = pages.NewPlannerPage(a.store)
	a.projects = pages.NewProjectsPage(a.store)
	a.settings = pages.NewSettingsPage(a.store, a.storage, a.storage)
}

func (a *App) page(p Page) pageModel {
	switch p {
	case PagePomodoro:
		return a.pomodoro
	case PageCalendar:
		return a.calendar
	case PageAnalytics:
		return a.stats
	case PagePlanner:
		return a.planner
	case PageProjects:
		return a.projects
	case PageSettings:
		return a.settings
	default:
		return a.board
	}
}

func (a *App) Init() tea.Cmd {
	return a.page(a.current).Init()
}

func (a *App) switchPage(p Page) tea.Cmd {
	if p == a.current {
		return nil
	}
	if a.current == PagePomodoro {
		// Leaving the timer page tears down its tick schedule.
		a.pomodoro.Teardown()
	}
	a.current = p
	a.storage.SetSetting("last_page", strconv.Itoa(int(p)))
	return a.page(p).Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Every page tracks its own size.
		for p := PageBoard; p <= PageSettings; p++ {
			a.page(p).Update(msg)
		}
		return a, nil

	case pages.SettingsChanged:
		return a, a.pomodoro.Update(msg)

	case pages.DataReset:
		// Rebuild everything from the now-empty slot.
		a.store = store.New(a.storage, store.WithLogger(a.log))
		a.buildPages()
		return a, a.page(a.current).Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if !a.capturingInput() {
				return a, tea.Quit
			}
		case "1", "2", "3", "4", "5", "6", "7":
			if !a.capturingInput() {
				n, _ := strconv.Atoi(msg.String())
				return a, a.switchPage(Page(n - 1))
			}
		}
	}

	return a, a.page(a.current).Update(msg)
}

// capturingInput reports whether the active page owns raw key input, so
// global shortcuts must stand down.
func (a *App) capturingInput() bool {
	type capturer interface{ CapturingInput() bool }
	if c, ok := a.page(a.current).(capturer); ok {
		return c.CapturingInput()
	}
	return false
}

func (a *App) View() string {
	tabs := make([]string, 0, len(pageNames))
	for i, name := range pageNames {
		label := strconv.Itoa(i+1) + " " + name
		if Page(i) == a.current {
			tabs = append(tabs, a.styles.Title.Render(label))
		} else {
			tabs = append(tabs, a.styles.TitleMuted.Render(label))
		}
	}
	header := a.styles.StatusBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, interleave(tabs, "  ")...))

	content := header + "\n\n" + a.page(a.current).View()
	return styles.CenterView(content, a.width, a.height)
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}
