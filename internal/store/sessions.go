package store

import (
	"time"

	"github.com/qwikish/taskboard/internal/models"
)

// SessionPatch is a shallow-merge update for a pomodoro session.
type SessionPatch struct {
	EndTime   *time.Time
	Duration  *int
	Completed *bool
}

// AddPomodoroSession assigns a fresh id and appends the session. Sessions
// are append-only; there is no delete.
func (s *Store) AddPomodoroSession(sess models.PomodoroSession) models.PomodoroSession {
	sess.ID = s.newID()
	s.state.PomodoroSessions = append(s.state.PomodoroSessions, sess)
	s.save()
	return sess
}

// UpdatePomodoroSession shallow-merges the patch over the session with the
// given id. An unknown id is a silent no-op.
func (s *Store) UpdatePomodoroSession(id string, patch SessionPatch) {
	for i := range s.state.PomodoroSessions {
		if s.state.PomodoroSessions[i].ID != id {
			continue
		}
		sess := &s.state.PomodoroSessions[i]
		if patch.EndTime != nil {
			end := *patch.EndTime
			sess.EndTime = &end
		}
		if patch.Duration != nil {
			sess.Duration = *patch.Duration
		}
		if patch.Completed != nil {
			sess.Completed = *patch.Completed
		}
		s.save()
		return
	}
}
