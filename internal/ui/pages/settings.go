package pages

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/qwikish/taskboard/internal/pomodoro"
	"github.com/qwikish/taskboard/internal/store"
	"github.com/qwikish/taskboard/internal/ui/styles"
)

// Preferences persists small UI settings outside the storage slot.
type Preferences interface {
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
}

// Resetter clears the durable storage slot.
type Resetter interface {
	Reset() error
}

// DataReset is broadcast after the storage slot has been cleared so the
// rest of the app reloads from seed state.
type DataReset struct{}

// Preference keys for the pomodoro durations.
const (
	PrefFocusMinutes      = "focus_minutes"
	PrefShortBreakMinutes = "short_break_minutes"
	PrefLongBreakMinutes  = "long_break_minutes"
)

// LoadTimerSettings reads the stored phase durations, falling back to
// defaults for missing or unparsable values.
func LoadTimerSettings(prefs Preferences) pomodoro.Settings {
	settings := pomodoro.DefaultSettings()
	read := func(key string, dst *int) {
		v, err := prefs.GetSetting(key)
		if err != nil || v == "" {
			return
		}
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
	read(PrefFocusMinutes, &settings.Focus)
	read(PrefShortBreakMinutes, &settings.ShortBreak)
	read(PrefLongBreakMinutes, &settings.LongBreak)
	return settings
}

// SettingsPage edits timer durations and hosts the export and reset
// actions.
type SettingsPage struct {
	store  *store.Store
	prefs  Preferences
	reset  Resetter
	styles *styles.Styles

	inputs  []textinput.Model
	labels  []string
	focused int
	editing bool

	confirming bool
	status     string
}

// NewSettingsPage creates the settings page seeded from stored preferences.
func NewSettingsPage(s *store.Store, prefs Preferences, reset Resetter) *SettingsPage {
	settings := LoadTimerSettings(prefs)
	values := []int{settings.Focus, settings.ShortBreak, settings.LongBreak}
	labels := []string{"Focus (minutes)", "Short break (minutes)", "Long break (minutes)"}

	inputs := make([]textinput.Model, len(values))
	for i, v := range values {
		in := textinput.New()
		in.SetValue(strconv.Itoa(v))
		in.CharLimit = 3
		in.Width = 4
		inputs[i] = in
	}

	return &SettingsPage{
		store:  s,
		prefs:  prefs,
		reset:  reset,
		styles: styles.NewStyles(),
		inputs: inputs,
		labels: labels,
	}
}

func (p *SettingsPage) Init() tea.Cmd {
	return nil
}

// CapturingInput reports whether the page owns raw key input.
func (p *SettingsPage) CapturingInput() bool { return p.editing }

// settings parses the current input values, keeping defaults on bad input.
func (p *SettingsPage) settings() pomodoro.Settings {
	out := pomodoro.DefaultSettings()
	if n, err := strconv.Atoi(p.inputs[0].Value()); err == nil && n > 0 {
		out.Focus = n
	}
	if n, err := strconv.Atoi(p.inputs[1].Value()); err == nil && n > 0 {
		out.ShortBreak = n
	}
	if n, err := strconv.Atoi(p.inputs[2].Value()); err == nil && n > 0 {
		out.LongBreak = n
	}
	return out
}

func (p *SettingsPage) save() tea.Cmd {
	settings := p.settings()
	p.prefs.SetSetting(PrefFocusMinutes, strconv.Itoa(settings.Focus))
	p.prefs.SetSetting(PrefShortBreakMinutes, strconv.Itoa(settings.ShortBreak))
	p.prefs.SetSetting(PrefLongBreakMinutes, strconv.Itoa(settings.LongBreak))
	p.status = "saved"
	return func() tea.Msg {
		return SettingsChanged{Settings: settings}
	}
}

func (p *SettingsPage) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if p.confirming {
		switch key.String() {
		case "y":
			p.confirming = false
			if err := p.reset.Reset(); err != nil {
				p.status = "reset failed: " + err.Error()
				return nil
			}
			p.status = "all data cleared"
			return func() tea.Msg { return DataReset{} }
		case "n", "esc":
			p.confirming = false
		}
		return nil
	}

	if p.editing {
		switch key.String() {
		case "enter", "esc":
			p.editing = false
			p.inputs[p.focused].Blur()
			return p.save()
		}
		var cmd tea.Cmd
		p.inputs[p.focused], cmd = p.inputs[p.focused].Update(key)
		return cmd
	}

	switch key.String() {
	case "up", "k":
		if p.focused > 0 {
			p.focused--
		}
	case "down", "j":
		if p.focused < len(p.inputs)-1 {
			p.focused++
		}
	case "enter":
		p.editing = true
		return p.inputs[p.focused].Focus()
	case "e":
		name := fmt.Sprintf("qwikish-tasks-export-%s.json", time.Now().Format("2006-01-02"))
		if err := p.store.WriteExport(name); err != nil {
			p.status = "export failed: " + err.Error()
		} else {
			p.status = "exported to " + name
		}
	case "R":
		p.confirming = true
	}
	return nil
}

func (p *SettingsPage) View() string {
	var b strings.Builder

	b.WriteString(p.styles.Title.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(p.styles.TitleMuted.Render("Pomodoro durations"))
	b.WriteString("\n")

	for i, in := range p.inputs {
		line := fmt.Sprintf("%-22s %s", p.labels[i], in.View())
		if i == p.focused {
			b.WriteString(p.styles.ListSelected.Render(line))
		} else {
			b.WriteString(p.styles.ListItem.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.styles.TitleMuted.Render("Data"))
	b.WriteString("\n")
	b.WriteString(p.styles.ListItem.Render("e  export tasks, projects and tags as JSON"))
	b.WriteString("\n")
	b.WriteString(p.styles.ListItem.Render("R  reset all data"))
	b.WriteString("\n")

	if p.confirming {
		b.WriteString(p.styles.Error.Render("reset all data? this cannot be undone (y/n)"))
		b.WriteString("\n")
	}
	if p.status != "" {
		b.WriteString(p.styles.TitleMuted.Render(p.status))
		b.WriteString("\n")
	}

	b.WriteString(p.styles.Help.Render(
		p.styles.HelpKey.Render("enter") + " edit  " +
			p.styles.HelpKey.Render("e") + " export  " +
			p.styles.HelpKey.Render("R") + " reset"))
	return b.String()
}
