// Package reminder defines the task-style reminder record.
package reminder

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/agenda/pkg/recurrence"
	"tableflip.dev/agenda/pkg/temporal"
)

// Priority levels mirror the usual task-app scale.
const (
	PriorityNone   = ""
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ParsePriority validates a priority flag value.
func ParsePriority(text string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "none":
		return PriorityNone, nil
	case "low", "l":
		return PriorityLow, nil
	case "medium", "med", "m":
		return PriorityMedium, nil
	case "high", "h":
		return PriorityHigh, nil
	}
	return "", fmt.Errorf("unknown priority %q", text)
}

// Reminder is one task as persisted. StartDate and DueDate are both
// optional; a reminder with neither is "unscheduled" and still shows up in
// agenda views.
type Reminder struct {
	ID    string `json:"id"`
	List  string `json:"list"`
	Title string `json:"title"`
	Notes string `json:"notes,omitempty"`

	StartDate *temporal.Timestamp `json:"startDate,omitempty"`
	DueDate   *temporal.Timestamp `json:"dueDate,omitempty"`

	Completed   bool                `json:"completed,omitempty"`
	CompletedAt *temporal.Timestamp `json:"completedAt,omitempty"`

	Priority string `json:"priority,omitempty"`

	Alarms     []temporal.AlarmTrigger `json:"alarms,omitempty"`
	Recurrence *recurrence.Rule        `json:"recurrence,omitempty"`

	Created temporal.Timestamp `json:"created"`
}

func New(list, title string) *Reminder {
	return &Reminder{
		List:    list,
		Title:   title,
		Created: temporal.Timestamp{Time: time.Now()},
	}
}

// When returns the instant the reminder is scheduled for: the due date,
// else the start date, else false for unscheduled.
func (r *Reminder) When() (time.Time, bool) {
	if r.DueDate != nil && !r.DueDate.IsZero() {
		return r.DueDate.Time, true
	}
	if r.StartDate != nil && !r.StartDate.IsZero() {
		return r.StartDate.Time, true
	}
	return time.Time{}, false
}

func (r *Reminder) String() string {
	if at, ok := r.When(); ok {
		return fmt.Sprintf("%s (due %s)", r.Title, at.Format("2006-01-02 15:04"))
	}
	return r.Title
}
