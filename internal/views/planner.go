package views

import (
	"fmt"

	"github.com/qwikish/taskboard/internal/models"
)

// Planner slot hours, 09:00 through 18:00 inclusive.
const (
	plannerFirstHour = 9
	plannerLastHour  = 18
)

// SlotTask is the snapshot placed into a time slot at assignment time.
// It is not live-linked: later changes to the source task do not touch
// an already-placed copy.
type SlotTask struct {
	ID            string
	Title         string
	EstimatedTime int
	ActualTime    int
	Completed     bool
}

// TimeSlot is one hour of the daily plan, holding at most one task.
type TimeSlot struct {
	Hour int
	Task *SlotTask
}

// Label formats the slot's hour as "HH:00".
func (s TimeSlot) Label() string {
	return fmt.Sprintf("%02d:00", s.Hour)
}

// Goal is a daily goal with real completion state.
type Goal struct {
	Title string
	Done  bool
}

// DayPlan is the daily planner: the fixed hourly slots plus the goal list.
type DayPlan struct {
	Slots []TimeSlot
	Goals []Goal
}

// NewDayPlan creates an empty plan with the ten fixed slots.
func NewDayPlan() *DayPlan {
	slots := make([]TimeSlot, 0, plannerLastHour-plannerFirstHour+1)
	for hour := plannerFirstHour; hour <= plannerLastHour; hour++ {
		slots = append(slots, TimeSlot{Hour: hour})
	}
	return &DayPlan{Slots: slots}
}

// Assign snapshots the task into the slot for the given hour, replacing
// any prior occupant. The completed flag is derived from the task's status
// at assignment time. Unknown hours are ignored.
func (p *DayPlan) Assign(hour int, task models.Task) {
	for i := range p.Slots {
		if p.Slots[i].Hour != hour {
			continue
		}
		estimated := task.EstimatedTime
		if estimated == 0 {
			estimated = 60
		}
		p.Slots[i].Task = &SlotTask{
			ID:            task.ID,
			Title:         task.Title,
			EstimatedTime: estimated,
			ActualTime:    task.ActualTime,
			Completed:     task.Status == models.StatusCompleted,
		}
		return
	}
}

// Clear empties the slot for the given hour; the slot itself remains.
func (p *DayPlan) Clear(hour int) {
	for i := range p.Slots {
		if p.Slots[i].Hour == hour {
			p.Slots[i].Task = nil
			return
		}
	}
}

// SetActual records actual minutes spent on the slot's task.
func (p *DayPlan) SetActual(hour, minutes int) {
	for i := range p.Slots {
		if p.Slots[i].Hour == hour && p.Slots[i].Task != nil {
			p.Slots[i].Task.ActualTime = minutes
			return
		}
	}
}

// AddGoal appends a daily goal.
func (p *DayPlan) AddGoal(title string) {
	p.Goals = append(p.Goals, Goal{Title: title})
}

// ToggleGoal flips a goal's completion. Out-of-range indices are ignored.
func (p *DayPlan) ToggleGoal(i int) {
	if i < 0 || i >= len(p.Goals) {
		return
	}
	p.Goals[i].Done = !p.Goals[i].Done
}

// DoneGoals counts completed goals.
func (p *DayPlan) DoneGoals() int {
	n := 0
	for _, g := range p.Goals {
		if g.Done {
			n++
		}
	}
	return n
}

// PlannedMinutes sums estimated time over assigned slots.
func (p *DayPlan) PlannedMinutes() int {
	total := 0
	for _, s := range p.Slots {
		if s.Task != nil {
			total += s.Task.EstimatedTime
		}
	}
	return total
}

// ActualMinutes sums actual time over assigned slots, falling back to the
// estimate where no actual time has been recorded.
func (p *DayPlan) ActualMinutes() int {
	total := 0
	for _, s := range p.Slots {
		if s.Task == nil {
			continue
		}
		if s.Task.ActualTime > 0 {
			total += s.Task.ActualTime
		} else {
			total += s.Task.EstimatedTime
		}
	}
	return total
}
