package views

import (
	"github.com/qwikish/taskboard/internal/models"
)

// TagsOf resolves a task's tag references against the tag collection.
// Dangling references resolve to nothing.
func TagsOf(task models.Task, tags []models.Tag) []models.Tag {
	byID := make(map[string]models.Tag, len(tags))
	for _, t := range tags {
		byID[t.ID] = t
	}
	var out []models.Tag
	for _, id := range task.TagIDs {
		if t, ok := byID[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// AssigneesOf resolves a task's assignee references against the user set.
func AssigneesOf(task models.Task, users []models.User) []models.User {
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	var out []models.User
	for _, id := range task.AssigneeIDs {
		if u, ok := byID[id]; ok {
			out = append(out, u)
		}
	}
	return out
}

// ActiveTasks filters to tasks a pomodoro or planner session can target:
// todo and in-progress.
func ActiveTasks(tasks []models.Task) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if t.Status == models.StatusTodo || t.Status == models.StatusInProgress {
			out = append(out, t)
		}
	}
	return out
}
