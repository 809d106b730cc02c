package pages

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/qwikish/taskboard/internal/store"
	"github.com/qwikish/taskboard/internal/ui/styles"
	"github.com/qwikish/taskboard/internal/views"
)

// CalendarPage shows a month grid with due-task markers and the selected
// day's tasks.
type CalendarPage struct {
	store  *store.Store
	styles *styles.Styles

	year    int
	month   time.Month
	day     int // selected day, 1-based
	buckets []views.DayBucket
}

// NewCalendarPage creates the calendar page opened on the current month.
func NewCalendarPage(s *store.Store) *CalendarPage {
	now := time.Now()
	return &CalendarPage{
		store:  s,
		styles: styles.NewStyles(),
		year:   now.Year(),
		month:  now.Month(),
		day:    now.Day(),
	}
}

func (p *CalendarPage) Init() tea.Cmd {
	p.reload()
	return nil
}

func (p *CalendarPage) reload() {
	p.buckets = views.MonthBuckets(p.year, p.month, p.store.Tasks())
	if p.day > len(p.buckets) {
		p.day = len(p.buckets)
	}
}

func (p *CalendarPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if p.day > 1 {
				p.day--
			}
		case "right", "l":
			if p.day < len(p.buckets) {
				p.day++
			}
		case "up", "k":
			if p.day > 7 {
				p.day -= 7
			}
		case "down", "j":
			if p.day+7 <= len(p.buckets) {
				p.day += 7
			}
		case "p":
			p.month--
			if p.month < time.January {
				p.month = time.December
				p.year--
			}
			p.day = 1
			p.reload()
		case "n":
			p.month++
			if p.month > time.December {
				p.month = time.January
				p.year++
			}
			p.day = 1
			p.reload()
		}
	}
	return nil
}

func (p *CalendarPage) View() string {
	var b strings.Builder

	b.WriteString(p.styles.Title.Render(fmt.Sprintf("%s %d", p.month, p.year)))
	b.WriteString("\n\n")
	b.WriteString(p.styles.TitleMuted.Render(" Mo  Tu  We  Th  Fr  Sa  Su"))
	b.WriteString("\n")

	if len(p.buckets) == 0 {
		return b.String()
	}

	// Monday-first offset for the 1st of the month.
	offset := (int(p.buckets[0].Date.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("    ", offset))

	col := offset
	for _, bucket := range p.buckets {
		day := bucket.Date.Day()
		cell := fmt.Sprintf("%d", day)
		style := p.styles.CalendarCell
		switch {
		case day == p.day:
			style = p.styles.CalendarToday
		case len(bucket.Tasks) > 0:
			style = p.styles.CalendarBusy
		}
		b.WriteString(style.Render(cell))
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")

	selected := p.buckets[p.day-1]
	b.WriteString(p.styles.Title.Render(selected.Date.Format("Monday, January 2")))
	b.WriteString("\n")
	if len(selected.Tasks) == 0 {
		b.WriteString(p.styles.TitleMuted.Render("  nothing due"))
		b.WriteString("\n")
	}
	for _, task := range selected.Tasks {
		b.WriteString(p.styles.ListItem.Render(
			fmt.Sprintf("%s (%s)", task.Title, task.Status.Title())))
		b.WriteString("\n")
	}

	b.WriteString(p.styles.Help.Render(
		p.styles.HelpKey.Render("p/n") + " month  " +
			p.styles.HelpKey.Render("arrows") + " day"))
	return b.String()
}
