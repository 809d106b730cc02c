package models

import "time"

// TaskStatus is one of the five fixed kanban workflow states.
type TaskStatus string

const (
	StatusBacklog    TaskStatus = "backlog"
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusReview     TaskStatus = "review"
	StatusCompleted  TaskStatus = "completed"
)

// AllStatuses lists every status in workflow order.
var AllStatuses = []TaskStatus{
	StatusBacklog,
	StatusTodo,
	StatusInProgress,
	StatusReview,
	StatusCompleted,
}

// Valid reports whether s is one of the five known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusReview, StatusCompleted:
		return true
	}
	return false
}

// Title returns the human-readable column title for a status.
func (s TaskStatus) Title() string {
	switch s {
	case StatusBacklog:
		return "Backlog"
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusReview:
		return "Review"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// Priority is a task's urgency level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// AllPriorities lists every priority from least to most urgent.
var AllPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// SessionType is a pomodoro timer phase.
type SessionType string

const (
	SessionFocus      SessionType = "focus"
	SessionShortBreak SessionType = "short-break"
	SessionLongBreak  SessionType = "long-break"
)

// User represents a person who can be assigned to tasks
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}

// Tag is a label that can be applied to tasks
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Subtask is a checklist item owned by a single task
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Comment is a note left on a task; UserID is a lookup-only reference
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Project groups tasks; deleting a project never touches its tasks
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Task is the central entity. TagIDs and AssigneeIDs are weak references
// resolved at read time; a dangling ProjectID means the task is unassigned.
type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        TaskStatus `json:"status"`
	Priority      Priority   `json:"priority"`
	TagIDs        []string   `json:"tagIds"`
	AssigneeIDs   []string   `json:"assigneeIds"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	Subtasks      []Subtask  `json:"subtasks"`
	Comments      []Comment  `json:"comments"`
	EstimatedTime int        `json:"estimatedTime,omitempty"` // minutes
	ActualTime    int        `json:"actualTime,omitempty"`    // minutes
	ProjectID     string     `json:"projectId,omitempty"`
	Attachments   []string   `json:"attachments"`
}

// PomodoroSession records one finished or in-flight timer phase.
// TaskID is required for focus sessions and stored verbatim for breaks.
type PomodoroSession struct {
	ID        string      `json:"id"`
	TaskID    string      `json:"taskId"`
	StartTime time.Time   `json:"startTime"`
	EndTime   *time.Time  `json:"endTime,omitempty"`
	Duration  int         `json:"duration"` // minutes
	Type      SessionType `json:"type"`
	Completed bool        `json:"completed"`
}
