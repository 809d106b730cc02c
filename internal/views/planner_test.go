package views

import (
	"testing"

	"github.com/qwikish/taskboard/internal/models"
)

func TestNewDayPlanHasTenFixedSlots(t *testing.T) {
	plan := NewDayPlan()

	if len(plan.Slots) != 10 {
		t.Fatalf("expected 10 slots, got %d", len(plan.Slots))
	}
	if plan.Slots[0].Hour != 9 || plan.Slots[9].Hour != 18 {
		t.Errorf("slot range %d-%d, want 9-18", plan.Slots[0].Hour, plan.Slots[9].Hour)
	}
	if got := plan.Slots[0].Label(); got != "09:00" {
		t.Errorf("label = %q, want 09:00", got)
	}
}

func TestAssignSnapshotsAtAssignmentTime(t *testing.T) {
	plan := NewDayPlan()
	task := models.Task{
		ID:            "t1",
		Title:         "write report",
		Status:        models.StatusInProgress,
		Priority:      models.PriorityHigh,
		EstimatedTime: 90,
	}

	plan.Assign(10, task)

	slot := plan.Slots[1]
	if slot.Task == nil {
		t.Fatal("slot not assigned")
	}
	if slot.Task.Completed {
		t.Error("in-progress task snapshotted as completed")
	}
	if slot.Task.EstimatedTime != 90 {
		t.Errorf("estimate = %d, want 90", slot.Task.EstimatedTime)
	}

	// Mutating the source task afterwards must not touch the placed copy.
	task.Status = models.StatusCompleted
	task.Title = "renamed"
	if plan.Slots[1].Task.Completed || plan.Slots[1].Task.Title != "write report" {
		t.Error("slot copy is live-linked to the source task")
	}
}

func TestAssignReplacesAndClearKeepsSlot(t *testing.T) {
	plan := NewDayPlan()
	a := models.Task{ID: "a", Title: "a", Status: models.StatusTodo, Priority: models.PriorityLow}
	b := models.Task{ID: "b", Title: "b", Status: models.StatusTodo, Priority: models.PriorityLow}

	plan.Assign(9, a)
	plan.Assign(9, b)
	if plan.Slots[0].Task == nil || plan.Slots[0].Task.ID != "b" {
		t.Fatalf("reassign did not replace occupant: %+v", plan.Slots[0].Task)
	}

	plan.Clear(9)
	if plan.Slots[0].Task != nil {
		t.Error("clear left a task in the slot")
	}
	if len(plan.Slots) != 10 {
		t.Error("clear removed the slot itself")
	}

	// Unknown hours are ignored.
	plan.Assign(7, a)
	plan.Clear(23)
}

func TestEstimateDefaultsToAnHour(t *testing.T) {
	plan := NewDayPlan()
	plan.Assign(9, models.Task{ID: "t", Title: "t", Status: models.StatusTodo, Priority: models.PriorityLow})

	if got := plan.Slots[0].Task.EstimatedTime; got != 60 {
		t.Errorf("default estimate = %d, want 60", got)
	}
}

func TestGoalToggle(t *testing.T) {
	plan := NewDayPlan()
	plan.AddGoal("complete project review")
	plan.AddGoal("finish design mockups")

	plan.ToggleGoal(1)
	if plan.Goals[0].Done || !plan.Goals[1].Done {
		t.Errorf("toggle hit wrong goal: %+v", plan.Goals)
	}
	plan.ToggleGoal(1)
	if plan.Goals[1].Done {
		t.Error("second toggle did not flip back")
	}
	if plan.DoneGoals() != 0 {
		t.Errorf("done goals = %d, want 0", plan.DoneGoals())
	}

	// Out-of-range toggles are ignored.
	plan.ToggleGoal(-1)
	plan.ToggleGoal(5)
}

func TestTimeSummaries(t *testing.T) {
	plan := NewDayPlan()
	plan.Assign(9, models.Task{ID: "a", Title: "a", Status: models.StatusTodo, Priority: models.PriorityLow, EstimatedTime: 60})
	plan.Assign(10, models.Task{ID: "b", Title: "b", Status: models.StatusTodo, Priority: models.PriorityLow, EstimatedTime: 30})

	if got := plan.PlannedMinutes(); got != 90 {
		t.Errorf("planned = %d, want 90", got)
	}
	// Actual falls back to the estimate until recorded.
	if got := plan.ActualMinutes(); got != 90 {
		t.Errorf("actual (no records) = %d, want 90", got)
	}

	plan.SetActual(9, 75)
	if got := plan.ActualMinutes(); got != 105 {
		t.Errorf("actual = %d, want 105", got)
	}

	// SetActual on an empty slot is a no-op.
	plan.SetActual(11, 10)
	if got := plan.ActualMinutes(); got != 105 {
		t.Errorf("actual after empty-slot set = %d, want 105", got)
	}
}
