package views

import (
	"testing"
	"time"

	"github.com/qwikish/taskboard/internal/models"
)

func dueTask(id string, due time.Time) models.Task {
	return models.Task{
		ID:       id,
		Title:    id,
		Status:   models.StatusTodo,
		Priority: models.PriorityLow,
		DueDate:  &due,
	}
}

func TestMonthBucketsEnumeratesEveryDay(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		days  int
	}{
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		buckets := MonthBuckets(tt.year, tt.month, nil)
		if len(buckets) != tt.days {
			t.Errorf("%v %d: got %d days, want %d", tt.month, tt.year, len(buckets), tt.days)
			continue
		}
		for i, b := range buckets {
			if b.Date.Day() != i+1 {
				t.Errorf("bucket %d has date %v", i, b.Date)
			}
			if b.Tasks != nil && len(b.Tasks) != 0 {
				t.Errorf("empty month produced tasks on day %d", i+1)
			}
		}
	}
}

func TestMonthBucketsMatchesByCalendarDay(t *testing.T) {
	tasks := []models.Task{
		dueTask("morning", time.Date(2024, 3, 15, 8, 0, 0, 0, time.Local)),
		dueTask("evening", time.Date(2024, 3, 15, 23, 45, 0, 0, time.Local)),
		dueTask("next-day", time.Date(2024, 3, 16, 0, 0, 0, 0, time.Local)),
		dueTask("other-month", time.Date(2024, 4, 15, 12, 0, 0, 0, time.Local)),
		{ID: "no-due", Title: "no-due", Status: models.StatusTodo, Priority: models.PriorityLow},
	}

	buckets := MonthBuckets(2024, time.March, tasks)

	day15 := buckets[14]
	if len(day15.Tasks) != 2 {
		t.Fatalf("day 15: got %d tasks, want 2 (time of day ignored)", len(day15.Tasks))
	}
	day16 := buckets[15]
	if len(day16.Tasks) != 1 || day16.Tasks[0].ID != "next-day" {
		t.Errorf("day 16: %+v", day16.Tasks)
	}
	for i, b := range buckets {
		for _, task := range b.Tasks {
			if task.ID == "other-month" || task.ID == "no-due" {
				t.Errorf("task %s bucketed on day %d", task.ID, i+1)
			}
		}
	}
}
