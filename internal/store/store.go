package store

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/qwikish/taskboard/internal/models"
)

// State is the full collection set owned by the store. It is also the
// JSON shape written to the durable storage slot.
type State struct {
	Tasks            []models.Task            `json:"tasks"`
	Projects         []models.Project         `json:"projects"`
	Tags             []models.Tag             `json:"tags"`
	Users            []models.User            `json:"users"`
	PomodoroSessions []models.PomodoroSession `json:"pomodoroSessions"`
	CurrentUser      *models.User             `json:"currentUser"`
}

// Adapter persists the full state to a durable slot. Load returns (nil, nil)
// when the slot does not exist; a corrupt slot is reported as an error and
// the store falls back to seed state.
type Adapter interface {
	Load() (*State, error)
	Save(*State) error
}

// Store is the sole mutator and source of truth for all entity collections.
// Every mutation persists the full state through the adapter; save failures
// are logged, never surfaced.
type Store struct {
	state   *State
	adapter Adapter
	now     func() time.Time
	newID   func() string
	log     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides identifier generation.
func WithIDFunc(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithLogger sets the diagnostic logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New creates a store rehydrated from the adapter. A missing or corrupt
// slot yields the default seed state.
func New(adapter Adapter, opts ...Option) *Store {
	s := &Store{
		adapter: adapter,
		now:     time.Now,
		newID:   uuid.NewString,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	state, err := adapter.Load()
	if err != nil {
		s.log.Warn("stored state unreadable, starting fresh", "error", err)
		state = nil
	}
	if state == nil {
		state = SeedState()
	}
	s.state = state
	return s
}

// save serializes the full state to the slot. Fire-and-forget per the
// store's mutation contract.
func (s *Store) save() {
	if err := s.adapter.Save(s.state); err != nil {
		s.log.Error("persist state", "error", err)
	}
}

// Tasks returns a copy of the task collection.
func (s *Store) Tasks() []models.Task {
	out := make([]models.Task, len(s.state.Tasks))
	copy(out, s.state.Tasks)
	return out
}

// Projects returns a copy of the project collection.
func (s *Store) Projects() []models.Project {
	out := make([]models.Project, len(s.state.Projects))
	copy(out, s.state.Projects)
	return out
}

// Tags returns a copy of the tag collection.
func (s *Store) Tags() []models.Tag {
	out := make([]models.Tag, len(s.state.Tags))
	copy(out, s.state.Tags)
	return out
}

// Users returns a copy of the user collection.
func (s *Store) Users() []models.User {
	out := make([]models.User, len(s.state.Users))
	copy(out, s.state.Users)
	return out
}

// PomodoroSessions returns a copy of the session collection.
func (s *Store) PomodoroSessions() []models.PomodoroSession {
	out := make([]models.PomodoroSession, len(s.state.PomodoroSessions))
	copy(out, s.state.PomodoroSessions)
	return out
}

// CurrentUser returns the active user, or nil when none is set.
func (s *Store) CurrentUser() *models.User {
	if s.state.CurrentUser == nil {
		return nil
	}
	u := *s.state.CurrentUser
	return &u
}

// Task looks up a task by id.
func (s *Store) Task(id string) (models.Task, bool) {
	for _, t := range s.state.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// Project looks up a project by id.
func (s *Store) Project(id string) (models.Project, bool) {
	for _, p := range s.state.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// Tag looks up a tag by id.
func (s *Store) Tag(id string) (models.Tag, bool) {
	for _, t := range s.state.Tags {
		if t.ID == id {
			return t, true
		}
	}
	return models.Tag{}, false
}
