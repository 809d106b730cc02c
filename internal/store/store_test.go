package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/qwikish/taskboard/internal/models"
)

// memAdapter keeps the persisted state in memory and counts saves.
type memAdapter struct {
	state *State
	saves int
	err   error
}

func (a *memAdapter) Load() (*State, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.state, nil
}

func (a *memAdapter) Save(state *State) error {
	a.saves++
	a.state = state
	return nil
}

// newTestStore returns a store with a deterministic clock (each call
// advances one second) and sequential ids.
func newTestStore(t *testing.T) (*Store, *memAdapter) {
	t.Helper()
	adapter := &memAdapter{}
	tick := 0
	seq := 0
	s := New(adapter,
		WithClock(func() time.Time {
			tick++
			return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(tick) * time.Second)
		}),
		WithIDFunc(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
	return s, adapter
}

func TestNewSeedsWhenSlotMissing(t *testing.T) {
	s, _ := newTestStore(t)

	if got := len(s.Tasks()); got != 0 {
		t.Fatalf("expected no tasks, got %d", got)
	}
	if got := len(s.Users()); got != 2 {
		t.Fatalf("expected 2 seed users, got %d", got)
	}
	cu := s.CurrentUser()
	if cu == nil || cu.ID != "1" {
		t.Fatalf("expected current user to be seed user 1, got %+v", cu)
	}
}

func TestNewSeedsWhenSlotCorrupt(t *testing.T) {
	adapter := &memAdapter{err: fmt.Errorf("decode slot: unexpected end of JSON input")}
	s := New(adapter)

	if got := len(s.Users()); got != 2 {
		t.Fatalf("expected seed state on corrupt slot, got %d users", got)
	}
}

func TestAddTaskAssignsUniqueIDsAndTimestamps(t *testing.T) {
	s, adapter := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		task := s.AddTask(models.Task{
			Title:    fmt.Sprintf("task %d", i),
			Status:   models.StatusTodo,
			Priority: models.PriorityMedium,
		})
		if task.ID == "" {
			t.Fatal("task id not assigned")
		}
		if seen[task.ID] {
			t.Fatalf("duplicate task id %q", task.ID)
		}
		seen[task.ID] = true
		if !task.CreatedAt.Equal(task.UpdatedAt) {
			t.Errorf("createdAt %v != updatedAt %v at creation", task.CreatedAt, task.UpdatedAt)
		}
	}

	if got := len(s.Tasks()); got != 10 {
		t.Fatalf("expected 10 tasks, got %d", got)
	}
	if adapter.saves != 10 {
		t.Errorf("expected one save per mutation, got %d", adapter.saves)
	}
}

func TestUpdateTaskMergesPatchesInOrder(t *testing.T) {
	s, _ := newTestStore(t)

	task := s.AddTask(models.Task{Title: "orig", Description: "d", Status: models.StatusBacklog, Priority: models.PriorityLow})
	afterCreate, _ := s.Task(task.ID)

	title1 := "first"
	est := 30
	s.UpdateTask(task.ID, TaskPatch{Title: &title1, EstimatedTime: &est})
	afterFirst, _ := s.Task(task.ID)

	title2 := "second"
	high := models.PriorityHigh
	s.UpdateTask(task.ID, TaskPatch{Title: &title2, Priority: &high})
	got, _ := s.Task(task.ID)

	if got.Title != "second" {
		t.Errorf("overlapping key: want %q, got %q", "second", got.Title)
	}
	if got.EstimatedTime != 30 {
		t.Errorf("non-overlapping key lost: want 30, got %d", got.EstimatedTime)
	}
	if got.Priority != models.PriorityHigh {
		t.Errorf("want priority high, got %q", got.Priority)
	}
	if got.Description != "d" {
		t.Errorf("untouched field changed: %q", got.Description)
	}
	if !afterFirst.UpdatedAt.After(afterCreate.UpdatedAt) || !got.UpdatedAt.After(afterFirst.UpdatedAt) {
		t.Errorf("updatedAt not strictly increasing: %v, %v, %v",
			afterCreate.UpdatedAt, afterFirst.UpdatedAt, got.UpdatedAt)
	}
}

func TestUpdateTaskUnknownIDIsNoOp(t *testing.T) {
	s, adapter := newTestStore(t)
	saves := adapter.saves

	title := "ghost"
	s.UpdateTask("missing", TaskPatch{Title: &title})

	if adapter.saves != saves {
		t.Error("no-op update should not persist")
	}
}

func TestMoveTaskEqualsStatusUpdate(t *testing.T) {
	s, _ := newTestStore(t)

	a := s.AddTask(models.Task{Title: "a", Status: models.StatusBacklog, Priority: models.PriorityLow})
	b := s.AddTask(models.Task{Title: "b", Status: models.StatusBacklog, Priority: models.PriorityLow})

	s.MoveTask(a.ID, models.StatusReview)
	review := models.StatusReview
	s.UpdateTask(b.ID, TaskPatch{Status: &review})

	gotA, _ := s.Task(a.ID)
	gotB, _ := s.Task(b.ID)
	if gotA.Status != gotB.Status || gotA.Status != models.StatusReview {
		t.Errorf("moveTask and status update diverge: %q vs %q", gotA.Status, gotB.Status)
	}
}

func TestDeleteTask(t *testing.T) {
	s, _ := newTestStore(t)

	task := s.AddTask(models.Task{Title: "gone", Status: models.StatusTodo, Priority: models.PriorityLow})
	s.DeleteTask(task.ID)
	if _, ok := s.Task(task.ID); ok {
		t.Fatal("task still present after delete")
	}

	// Absent id is a silent no-op.
	s.DeleteTask(task.ID)
	s.DeleteTask("never-existed")
}

func TestUpdateProjectMergesPatch(t *testing.T) {
	s, adapter := newTestStore(t)

	project := s.AddProject(models.Project{Name: "web", Description: "site", Color: "#7aa2f7"})

	name := "website"
	color := "#9ece6a"
	s.UpdateProject(project.ID, ProjectPatch{Name: &name, Color: &color})

	got, ok := s.Project(project.ID)
	if !ok {
		t.Fatal("project vanished after update")
	}
	if got.Name != "website" || got.Color != "#9ece6a" {
		t.Errorf("patched fields not applied: %q %q", got.Name, got.Color)
	}
	if got.Description != "site" {
		t.Errorf("untouched field changed: %q", got.Description)
	}
	if !got.CreatedAt.Equal(project.CreatedAt) {
		t.Errorf("createdAt changed: %v vs %v", got.CreatedAt, project.CreatedAt)
	}

	saves := adapter.saves
	s.UpdateProject("missing", ProjectPatch{Name: &name})
	if adapter.saves != saves {
		t.Error("no-op update should not persist")
	}
}

func TestDeleteProjectLeavesTasksDangling(t *testing.T) {
	s, _ := newTestStore(t)

	project := s.AddProject(models.Project{Name: "web", Color: "#7aa2f7"})
	task := s.AddTask(models.Task{
		Title:     "landing page",
		Status:    models.StatusTodo,
		Priority:  models.PriorityHigh,
		ProjectID: project.ID,
	})

	s.DeleteProject(project.ID)

	if _, ok := s.Project(project.ID); ok {
		t.Fatal("project still present after delete")
	}
	got, ok := s.Task(task.ID)
	if !ok {
		t.Fatal("task removed by project delete")
	}
	if got.ProjectID != project.ID {
		t.Errorf("projectId changed: want %q, got %q", project.ID, got.ProjectID)
	}
}

func TestTagEditPropagatesViaReferences(t *testing.T) {
	s, _ := newTestStore(t)

	tag := s.AddTag(models.Tag{Name: "urgent", Color: "#f7768e"})
	task := s.AddTask(models.Task{
		Title:    "t",
		Status:   models.StatusTodo,
		Priority: models.PriorityLow,
		TagIDs:   []string{tag.ID},
	})

	name := "asap"
	s.UpdateTag(tag.ID, TagPatch{Name: &name})

	got, _ := s.Tag(tag.ID)
	if got.Name != "asap" {
		t.Fatalf("tag not updated: %q", got.Name)
	}
	// The task still references by id, so the rename is visible at read time.
	stored, _ := s.Task(task.ID)
	if len(stored.TagIDs) != 1 || stored.TagIDs[0] != tag.ID {
		t.Errorf("task tag reference changed: %v", stored.TagIDs)
	}
}

func TestSubtaskAndCommentHelpers(t *testing.T) {
	s, _ := newTestStore(t)

	task := s.AddTask(models.Task{Title: "t", Status: models.StatusTodo, Priority: models.PriorityLow})
	s.AddSubtask(task.ID, "step one")
	s.AddSubtask(task.ID, "step two")

	got, _ := s.Task(task.ID)
	if len(got.Subtasks) != 2 {
		t.Fatalf("expected 2 subtasks, got %d", len(got.Subtasks))
	}
	s.ToggleSubtask(task.ID, got.Subtasks[0].ID)
	got, _ = s.Task(task.ID)
	if !got.Subtasks[0].Completed || got.Subtasks[1].Completed {
		t.Errorf("toggle hit wrong subtask: %+v", got.Subtasks)
	}

	s.AddComment(task.ID, "1", "looks good")
	got, _ = s.Task(task.ID)
	if len(got.Comments) != 1 || got.Comments[0].UserID != "1" {
		t.Fatalf("comment not recorded: %+v", got.Comments)
	}
	if got.Comments[0].CreatedAt.IsZero() {
		t.Error("comment createdAt not stamped")
	}
}

func TestPomodoroSessionsAppendAndPatch(t *testing.T) {
	s, _ := newTestStore(t)

	sess := s.AddPomodoroSession(models.PomodoroSession{
		TaskID:    "t1",
		StartTime: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Duration:  25,
		Type:      models.SessionFocus,
	})
	if sess.ID == "" {
		t.Fatal("session id not assigned")
	}

	done := true
	end := time.Date(2024, 3, 1, 9, 25, 0, 0, time.UTC)
	s.UpdatePomodoroSession(sess.ID, SessionPatch{Completed: &done, EndTime: &end})

	sessions := s.PomodoroSessions()
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if !sessions[0].Completed || sessions[0].EndTime == nil || !sessions[0].EndTime.Equal(end) {
		t.Errorf("patch not applied: %+v", sessions[0])
	}
}
