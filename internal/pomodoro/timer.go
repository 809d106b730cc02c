// Package pomodoro implements the timer state machine. The machine never
// touches platform timers: the caller feeds it one Tick per elapsed second
// and owns scheduling and cancellation of the tick source.
package pomodoro

import (
	"errors"
	"log/slog"
	"time"

	"github.com/qwikish/taskboard/internal/models"
)

// ErrNoTaskSelected is returned when a focus phase is started without a
// selected task. The UI normally prevents this by disabling the control.
var ErrNoTaskSelected = errors.New("pomodoro: focus phase requires a selected task")

// Settings holds the per-phase durations in minutes.
type Settings struct {
	Focus      int
	ShortBreak int
	LongBreak  int
}

// DefaultSettings are the classic pomodoro durations.
func DefaultSettings() Settings {
	return Settings{Focus: 25, ShortBreak: 5, LongBreak: 15}
}

// Recorder receives the session emitted on natural phase completion.
type Recorder func(models.PomodoroSession)

// Timer is the pomodoro state machine: a phase type, an idle/running flag
// and a remaining-seconds counter.
type Timer struct {
	settings  Settings
	phase     models.SessionType
	remaining int // seconds
	running   bool
	count     int // completed focus sessions
	taskID    string
	startTime *time.Time

	record Recorder
	now    func() time.Time
	log    *slog.Logger
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock overrides the wall clock used for session timestamps.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) { t.now = now }
}

// WithSettings overrides the default phase durations.
func WithSettings(s Settings) Option {
	return func(t *Timer) { t.settings = s }
}

// WithLogger sets the diagnostic logger.
func WithLogger(log *slog.Logger) Option {
	return func(t *Timer) { t.log = log }
}

// New creates an idle focus-phase timer. record receives completed
// sessions and may be nil.
func New(record Recorder, opts ...Option) *Timer {
	t := &Timer{
		settings: DefaultSettings(),
		phase:    models.SessionFocus,
		record:   record,
		now:      time.Now,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.remaining = t.DurationMinutes(t.phase) * 60
	return t
}

// DurationMinutes returns the configured duration for a phase.
func (t *Timer) DurationMinutes(phase models.SessionType) int {
	switch phase {
	case models.SessionShortBreak:
		return t.settings.ShortBreak
	case models.SessionLongBreak:
		return t.settings.LongBreak
	default:
		return t.settings.Focus
	}
}

// Phase returns the current phase type.
func (t *Timer) Phase() models.SessionType { return t.phase }

// Running reports whether the countdown is active.
func (t *Timer) Running() bool { return t.running }

// Remaining returns the seconds left in the current phase.
func (t *Timer) Remaining() int { return t.remaining }

// SessionCount returns the number of naturally completed focus phases
// since the last Reset.
func (t *Timer) SessionCount() int { return t.count }

// TaskID returns the selected task id.
func (t *Timer) TaskID() string { return t.taskID }

// Progress reports phase completion in [0, 1].
func (t *Timer) Progress() float64 {
	total := t.DurationMinutes(t.phase) * 60
	if total == 0 {
		return 0
	}
	return float64(total-t.remaining) / float64(total)
}

// SelectTask sets the task a focus session is attributed to.
func (t *Timer) SelectTask(id string) { t.taskID = id }

// SetSettings replaces the phase durations. While idle the countdown is
// reset to the current phase's new full duration.
func (t *Timer) SetSettings(s Settings) {
	t.settings = s
	if !t.running {
		t.remaining = t.DurationMinutes(t.phase) * 60
	}
}

// Settings returns the configured phase durations.
func (t *Timer) Settings() Settings { return t.settings }

// SwitchPhase changes the phase type, stopping any countdown and resetting
// remaining time to the new phase's full duration. No session is recorded.
func (t *Timer) SwitchPhase(phase models.SessionType) {
	t.running = false
	t.phase = phase
	t.remaining = t.DurationMinutes(phase) * 60
}

// Start begins (or resumes) the countdown. The start timestamp is recorded
// only on the idle-to-running transition; calling Start while already
// running does not overwrite it. A focus phase requires a selected task.
func (t *Timer) Start() error {
	if t.phase == models.SessionFocus && t.taskID == "" {
		return ErrNoTaskSelected
	}
	if !t.running {
		now := t.now()
		t.startTime = &now
	}
	t.running = true
	return nil
}

// Pause halts the countdown, preserving remaining time.
func (t *Timer) Pause() { t.running = false }

// Stop halts the countdown, resets remaining time to the phase's full
// duration and discards the start timestamp. No session is recorded.
func (t *Timer) Stop() {
	t.running = false
	t.remaining = t.DurationMinutes(t.phase) * 60
	t.startTime = nil
}

// Reset is Stop plus zeroing the completed-session counter.
func (t *Timer) Reset() {
	t.Stop()
	t.count = 0
}

// Tick advances the countdown by one second. Ticks while idle are ignored,
// so a stale tick arriving after pause or stop is harmless. Reaching zero
// completes the phase.
func (t *Timer) Tick() {
	if !t.running {
		return
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		t.complete()
	}
}

// complete emits exactly one session record and applies the auto-advance
// policy. The next phase is armed but not started.
func (t *Timer) complete() {
	t.running = false

	if t.startTime == nil {
		// Shouldn't happen: running implies a recorded start.
		t.log.Warn("phase completed without a recorded start, skipping session record",
			"phase", string(t.phase))
	} else if t.record != nil {
		end := t.now()
		t.record(models.PomodoroSession{
			TaskID:    t.taskID,
			StartTime: *t.startTime,
			EndTime:   &end,
			Duration:  t.DurationMinutes(t.phase),
			Type:      t.phase,
			Completed: true,
		})
	}
	t.startTime = nil

	if t.phase == models.SessionFocus {
		t.count++
		if t.count%4 == 0 {
			t.SwitchPhase(models.SessionLongBreak)
		} else {
			t.SwitchPhase(models.SessionShortBreak)
		}
	} else {
		t.SwitchPhase(models.SessionFocus)
	}
}
