package store

import (
	"github.com/qwikish/taskboard/internal/models"
)

// SeedState returns the default state used when the storage slot is missing
// or unreadable: empty collections plus two seed users, the first of which
// is the current user.
func SeedState() *State {
	users := []models.User{
		{
			ID:     "1",
			Name:   "John Doe",
			Avatar: "/placeholder.svg?height=32&width=32",
			Email:  "john@qwikish.com",
		},
		{
			ID:     "2",
			Name:   "Jane Smith",
			Avatar: "/placeholder.svg?height=32&width=32",
			Email:  "jane@qwikish.com",
		},
	}
	current := users[0]
	return &State{
		Tasks:            []models.Task{},
		Projects:         []models.Project{},
		Tags:             []models.Tag{},
		Users:            users,
		PomodoroSessions: []models.PomodoroSession{},
		CurrentUser:      &current,
	}
}
