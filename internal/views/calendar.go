package views

import (
	"time"

	"github.com/qwikish/taskboard/internal/models"
)

// DayBucket is one calendar day and the tasks due on it. Days with no
// due tasks still get a bucket.
type DayBucket struct {
	Date  time.Time
	Tasks []models.Task
}

// MonthBuckets enumerates every day of the given month and maps each to
// the tasks whose due date falls on that exact calendar day. Time of day
// is ignored; comparison is by date identity only.
func MonthBuckets(year int, month time.Month, tasks []models.Task) []DayBucket {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	days := first.AddDate(0, 1, -1).Day()

	buckets := make([]DayBucket, 0, days)
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		bucket := DayBucket{Date: date}
		for _, t := range tasks {
			if t.DueDate != nil && sameDay(*t.DueDate, date) {
				bucket.Tasks = append(bucket.Tasks, t)
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// sameDay reports whether two instants fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
