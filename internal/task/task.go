// Package task holds the todo collection and its filtered views.
package task

import (
	"strings"
	"time"
)

// Priority represents how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority normalizes s to a known priority. Unknown values map to
// medium so that corrupt stored data never produces an invalid task.
func ParsePriority(s string) Priority {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow
	case PriorityHigh:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// Filter selects which tasks are visible.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ParseFilter normalizes s to a known filter, defaulting to all.
func ParseFilter(s string) Filter {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterActive:
		return FilterActive
	case FilterCompleted:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Task is a single todo entry. IDs are unique within a collection and
// never reassigned; CreatedAt is display-only.
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Priority  Priority  `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
}

// Matches reports whether the task is visible under the filter.
func (t Task) Matches(f Filter) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}
