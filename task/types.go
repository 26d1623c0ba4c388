// Package task implements the in-memory task model for the todo CLI.
//
// A List owns a collection of tasks and the identifier counter. Ids are
// assigned monotonically and never recycled, even after deletion. The
// public API mirrors the CLI commands:
//   - Add, Update, Delete, MarkCompleted, MarkPending for task lifecycle
//   - GetByID, Filter, Sort, Count for querying
//
// The package never touches the filesystem; persistence is the caller's
// responsibility via the store package.
package task

import "strings"

// Status represents the state of a task.
type Status string

const (
	// StatusPending indicates the task has not been completed yet.
	StatusPending Status = "pending"

	// StatusCompleted indicates the task is done.
	StatusCompleted Status = "completed"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusCompleted}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// ParseStatus parses raw text into a Status.
// Unrecognized input fails with ErrInvalidStatus.
func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if !status.IsValid() {
		return "", invalidStatusError(value)
	}
	return status, nil
}

// Priority represents the importance level of a task.
type Priority string

const (
	// PriorityLow is the least important level.
	PriorityLow Priority = "low"

	// PriorityMedium is the default level.
	PriorityMedium Priority = "medium"

	// PriorityHigh is the most important level.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// ParsePriority parses raw text into a Priority.
// Unrecognized input fails with ErrInvalidPriority.
func ParsePriority(value string) (Priority, error) {
	priority := Priority(strings.ToLower(strings.TrimSpace(value)))
	if !priority.IsValid() {
		return "", invalidPriorityError(value)
	}
	return priority, nil
}

// PriorityRank returns the sort rank for a priority (low=1, high=3).
func PriorityRank(p Priority) int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	default:
		return 0
	}
}
