package views

import (
	"testing"

	"github.com/qwikish/taskboard/internal/models"
)

func TestTagsOfSkipsDanglingReferences(t *testing.T) {
	tags := []models.Tag{
		{ID: "g1", Name: "work", Color: "#7aa2f7"},
		{ID: "g2", Name: "home", Color: "#9ece6a"},
	}
	task := models.Task{TagIDs: []string{"g2", "deleted", "g1"}}

	got := TagsOf(task, tags)
	if len(got) != 2 {
		t.Fatalf("expected 2 resolved tags, got %d", len(got))
	}
	if got[0].ID != "g2" || got[1].ID != "g1" {
		t.Errorf("reference order not preserved: %+v", got)
	}
}

func TestAssigneesOf(t *testing.T) {
	users := []models.User{{ID: "1", Name: "John Doe"}, {ID: "2", Name: "Jane Smith"}}
	task := models.Task{AssigneeIDs: []string{"2", "gone"}}

	got := AssigneesOf(task, users)
	if len(got) != 1 || got[0].Name != "Jane Smith" {
		t.Errorf("unexpected assignees: %+v", got)
	}
}

func TestActiveTasks(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", Status: models.StatusBacklog},
		{ID: "b", Status: models.StatusTodo},
		{ID: "c", Status: models.StatusInProgress},
		{ID: "d", Status: models.StatusReview},
		{ID: "e", Status: models.StatusCompleted},
	}

	got := ActiveTasks(tasks)
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "c" {
		t.Errorf("active tasks = %+v", got)
	}
}
