package task

import "time"

// Task represents a single to-do item.
type Task struct {
	// ID is a positive integer, unique within a List and never reused.
	ID int `json:"id"`

	// Title is the short summary of the task.
	Title string `json:"title"`

	// Status is the current state of the task.
	Status Status `json:"status"`

	// Priority is the importance level.
	Priority Priority `json:"priority"`

	// Tags is a normalized tag set (lowercase, trimmed, deduplicated,
	// insertion order preserved).
	Tags []string `json:"tags"`

	// Project is an optional project or group name.
	Project string `json:"project,omitempty"`

	// CreatedAt is when the task was created. Set once, never mutated.
	CreatedAt time.Time `json:"created_at"`

	// DueDate is when the task is due (nil when unscheduled).
	DueDate *time.Time `json:"due_date,omitempty"`
}

// HasTag reports whether the task carries the given tag.
func (t Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// IsOverdue reports whether the task's due date is strictly before now.
// Tasks without a due date are never overdue.
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(now)
}

// Clone returns a deep copy of the task. The copy shares no state with
// the original, so undo snapshots stay stable after further edits.
func (t Task) Clone() Task {
	clone := t
	clone.Tags = append([]string(nil), t.Tags...)
	if t.DueDate != nil {
		due := *t.DueDate
		clone.DueDate = &due
	}
	return clone
}
