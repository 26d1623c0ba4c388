package task

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidValue is the base error for unrecognized enum input.
	// ErrInvalidStatus and ErrInvalidPriority both match it.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = fmt.Errorf("%w: invalid status", ErrInvalidValue)

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = fmt.Errorf("%w: invalid priority", ErrInvalidValue)

	// ErrInvalidSortKey is returned when an invalid sort key is provided.
	ErrInvalidSortKey = fmt.Errorf("%w: invalid sort key", ErrInvalidValue)

	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")
)

func invalidStatusError(value string) error {
	return fmt.Errorf("%w %q (valid: pending, completed)", ErrInvalidStatus, value)
}

func invalidPriorityError(value string) error {
	return fmt.Errorf("%w %q (valid: low, medium, high)", ErrInvalidPriority, value)
}

func invalidSortKeyError(value string) error {
	return fmt.Errorf("%w %q (valid: priority, due_date, created_at, title)", ErrInvalidSortKey, value)
}

// ValidateTitle checks that the title is non-empty after trimming.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// NormalizeTags lowercases and trims tags, drops empties, and removes
// duplicates while preserving first-seen order.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}

// NormalizeProject trims the project name. Whitespace-only input
// normalizes to the empty string (no project).
func NormalizeProject(project string) string {
	return strings.TrimSpace(project)
}
