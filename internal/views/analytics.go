package views

import (
	"math"

	"github.com/qwikish/taskboard/internal/models"
)

// TaskStats aggregates the full task collection for the dashboard.
type TaskStats struct {
	Total          int
	ByStatus       map[models.TaskStatus]int
	ByPriority     map[models.Priority]int
	CompletionRate int // rounded percent; 0 when there are no tasks
}

// PomodoroStats aggregates the session collection.
type PomodoroStats struct {
	TotalSessions     int
	CompletedSessions int
	TotalFocusMinutes int // completed focus sessions only
}

// Analyze computes the task aggregates.
func Analyze(tasks []models.Task) TaskStats {
	stats := TaskStats{
		Total:      len(tasks),
		ByStatus:   make(map[models.TaskStatus]int, len(models.AllStatuses)),
		ByPriority: make(map[models.Priority]int, len(models.AllPriorities)),
	}
	for _, status := range models.AllStatuses {
		stats.ByStatus[status] = 0
	}
	for _, priority := range models.AllPriorities {
		stats.ByPriority[priority] = 0
	}
	for _, t := range tasks {
		stats.ByStatus[t.Status]++
		stats.ByPriority[t.Priority]++
	}
	if stats.Total > 0 {
		completed := stats.ByStatus[models.StatusCompleted]
		stats.CompletionRate = int(math.Round(float64(completed) / float64(stats.Total) * 100))
	}
	return stats
}

// AnalyzeSessions computes the pomodoro aggregates.
func AnalyzeSessions(sessions []models.PomodoroSession) PomodoroStats {
	stats := PomodoroStats{TotalSessions: len(sessions)}
	for _, sess := range sessions {
		if sess.Completed {
			stats.CompletedSessions++
			if sess.Type == models.SessionFocus {
				stats.TotalFocusMinutes += sess.Duration
			}
		}
	}
	return stats
}
