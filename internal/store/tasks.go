package store

import (
	"time"

	"github.com/qwikish/taskboard/internal/models"
)

// TaskPatch is a shallow-merge update for a task. Nil fields leave the
// existing value untouched.
type TaskPatch struct {
	Title         *string
	Description   *string
	Status        *models.TaskStatus
	Priority      *models.Priority
	TagIDs        *[]string
	AssigneeIDs   *[]string
	DueDate       *time.Time
	ClearDueDate  bool
	Subtasks      *[]models.Subtask
	Comments      *[]models.Comment
	EstimatedTime *int
	ActualTime    *int
	ProjectID     *string
	Attachments   *[]string
}

// AddTask assigns a fresh id, stamps createdAt/updatedAt and appends the
// task. Duplicate titles are allowed.
func (s *Store) AddTask(t models.Task) models.Task {
	now := s.now()
	t.ID = s.newID()
	t.CreatedAt = now
	t.UpdatedAt = now
	s.state.Tasks = append(s.state.Tasks, t)
	s.save()
	return t
}

// UpdateTask shallow-merges the patch over the task with the given id and
// refreshes updatedAt. An unknown id is a silent no-op.
func (s *Store) UpdateTask(id string, patch TaskPatch) {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID != id {
			continue
		}
		t := &s.state.Tasks[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.TagIDs != nil {
			t.TagIDs = *patch.TagIDs
		}
		if patch.AssigneeIDs != nil {
			t.AssigneeIDs = *patch.AssigneeIDs
		}
		if patch.DueDate != nil {
			due := *patch.DueDate
			t.DueDate = &due
		}
		if patch.ClearDueDate {
			t.DueDate = nil
		}
		if patch.Subtasks != nil {
			t.Subtasks = *patch.Subtasks
		}
		if patch.Comments != nil {
			t.Comments = *patch.Comments
		}
		if patch.EstimatedTime != nil {
			t.EstimatedTime = *patch.EstimatedTime
		}
		if patch.ActualTime != nil {
			t.ActualTime = *patch.ActualTime
		}
		if patch.ProjectID != nil {
			t.ProjectID = *patch.ProjectID
		}
		if patch.Attachments != nil {
			t.Attachments = *patch.Attachments
		}
		t.UpdatedAt = s.now()
		s.save()
		return
	}
}

// DeleteTask removes the task with the given id. An unknown id is a
// silent no-op.
func (s *Store) DeleteTask(id string) {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == id {
			s.state.Tasks = append(s.state.Tasks[:i], s.state.Tasks[i+1:]...)
			s.save()
			return
		}
	}
}

// MoveTask changes a task's status. Any status may move to any other;
// this is the drag-and-drop intent from the board.
func (s *Store) MoveTask(id string, status models.TaskStatus) {
	s.UpdateTask(id, TaskPatch{Status: &status})
}

// AddSubtask appends a checklist item to the task.
func (s *Store) AddSubtask(taskID, title string) {
	t, ok := s.Task(taskID)
	if !ok {
		return
	}
	subtasks := append(t.Subtasks, models.Subtask{
		ID:    s.newID(),
		Title: title,
	})
	s.UpdateTask(taskID, TaskPatch{Subtasks: &subtasks})
}

// ToggleSubtask flips a checklist item's completed flag.
func (s *Store) ToggleSubtask(taskID, subtaskID string) {
	t, ok := s.Task(taskID)
	if !ok {
		return
	}
	subtasks := make([]models.Subtask, len(t.Subtasks))
	copy(subtasks, t.Subtasks)
	for i := range subtasks {
		if subtasks[i].ID == subtaskID {
			subtasks[i].Completed = !subtasks[i].Completed
		}
	}
	s.UpdateTask(taskID, TaskPatch{Subtasks: &subtasks})
}

// AddComment appends a comment to the task attributed to the given user.
func (s *Store) AddComment(taskID, userID, content string) {
	t, ok := s.Task(taskID)
	if !ok {
		return
	}
	comments := append(t.Comments, models.Comment{
		ID:        s.newID(),
		UserID:    userID,
		Content:   content,
		CreatedAt: s.now(),
	})
	s.UpdateTask(taskID, TaskPatch{Comments: &comments})
}
