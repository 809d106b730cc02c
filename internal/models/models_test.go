package models

import "testing"

func TestTaskStatusValid(t *testing.T) {
	for _, status := range AllStatuses {
		if !status.Valid() {
			t.Errorf("status %q reported invalid", status)
		}
	}
	for _, bad := range []TaskStatus{"", "done", "archived", "In-Progress"} {
		if bad.Valid() {
			t.Errorf("status %q reported valid", bad)
		}
	}
}

func TestTaskStatusIsClosedSet(t *testing.T) {
	if len(AllStatuses) != 5 {
		t.Fatalf("expected exactly 5 statuses, got %d", len(AllStatuses))
	}
	seen := make(map[TaskStatus]bool)
	for _, status := range AllStatuses {
		if seen[status] {
			t.Errorf("status %q listed twice", status)
		}
		seen[status] = true
	}
}

func TestPriorityValid(t *testing.T) {
	for _, priority := range AllPriorities {
		if !priority.Valid() {
			t.Errorf("priority %q reported invalid", priority)
		}
	}
	if Priority("urgent").Valid() {
		t.Error("unknown priority reported valid")
	}
}

func TestStatusTitles(t *testing.T) {
	tests := []struct {
		status TaskStatus
		want   string
	}{
		{StatusBacklog, "Backlog"},
		{StatusTodo, "To Do"},
		{StatusInProgress, "In Progress"},
		{StatusReview, "Review"},
		{StatusCompleted, "Completed"},
	}
	for _, tt := range tests {
		if got := tt.status.Title(); got != tt.want {
			t.Errorf("%q title = %q, want %q", tt.status, got, tt.want)
		}
	}
}
