// Package views holds the pure projections computed from store state for
// each page. Nothing here mutates the store or holds authoritative state.
package views

import (
	"github.com/qwikish/taskboard/internal/models"
)

// WIPLimits is the static per-column work-in-progress configuration.
// Backlog and completed are unlimited.
var WIPLimits = map[models.TaskStatus]int{
	models.StatusTodo:       5,
	models.StatusInProgress: 3,
	models.StatusReview:     2,
}

// Column is one kanban column: a status bucket with its WIP evaluation.
type Column struct {
	Status    models.TaskStatus
	Title     string
	Tasks     []models.Task
	WIPLimit  int  // 0 means unlimited
	OverLimit bool // count >= limit, inclusive
}

// Kanban partitions tasks into the five fixed columns in workflow order.
// Every task lands in exactly one column.
func Kanban(tasks []models.Task) []Column {
	columns := make([]Column, 0, len(models.AllStatuses))
	for _, status := range models.AllStatuses {
		col := Column{
			Status:   status,
			Title:    status.Title(),
			WIPLimit: WIPLimits[status],
		}
		for _, t := range tasks {
			if t.Status == status {
				col.Tasks = append(col.Tasks, t)
			}
		}
		if col.WIPLimit > 0 && len(col.Tasks) >= col.WIPLimit {
			col.OverLimit = true
		}
		columns = append(columns, col)
	}
	return columns
}
