package task

import (
	"sort"
	"strings"
	"time"
)

// List manages an ordered collection of tasks and the id counter.
// Insertion order is creation order; deletion keeps the rest in place.
type List struct {
	Tasks  []Task `json:"tasks"`
	NextID int    `json:"next_id"`
}

// NewList returns an empty list with the id counter at 1.
func NewList() *List {
	return &List{NextID: 1}
}

// AddOptions configures a new task. The zero value applies defaults.
type AddOptions struct {
	// Priority is the importance level. Defaults to PriorityMedium.
	Priority Priority

	// Tags is normalized before assignment.
	Tags []string

	// Project is an optional project name, trimmed before assignment.
	Project string

	// DueDate is when the task is due.
	DueDate *time.Time
}

// Add creates a task with the next id and appends it to the list.
// Inputs are assumed pre-validated by the caller; Add never fails.
func (l *List) Add(title string, opts AddOptions) Task {
	if l.NextID < 1 {
		l.NextID = 1
	}
	if opts.Priority == "" {
		opts.Priority = PriorityMedium
	}

	created := Task{
		ID:        l.NextID,
		Title:     title,
		Status:    StatusPending,
		Priority:  opts.Priority,
		Tags:      NormalizeTags(opts.Tags),
		Project:   NormalizeProject(opts.Project),
		CreatedAt: time.Now(),
	}
	if opts.DueDate != nil {
		due := *opts.DueDate
		created.DueDate = &due
	}

	l.Tasks = append(l.Tasks, created)
	l.NextID++
	return created.Clone()
}

// GetByID returns a snapshot of the task with the given id, or nil if
// no such task exists.
func (l *List) GetByID(id int) *Task {
	for i := range l.Tasks {
		if l.Tasks[i].ID == id {
			found := l.Tasks[i].Clone()
			return &found
		}
	}
	return nil
}

// UpdateOptions configures fields to update on a task.
// Nil pointers mean "don't update this field".
type UpdateOptions struct {
	Title    *string
	Status   *Status
	Priority *Priority
	Tags     *[]string
	Project  *string
	DueDate  *time.Time
}

// Update applies the supplied fields to the task with the given id and
// returns a snapshot of the result. A nil task with a nil error means
// the id was absent. Invalid status or priority values fail with an
// error matching ErrInvalidValue before anything is assigned.
func (l *List) Update(id int, opts UpdateOptions) (*Task, error) {
	if opts.Title != nil {
		if err := ValidateTitle(*opts.Title); err != nil {
			return nil, err
		}
	}
	if opts.Status != nil && !opts.Status.IsValid() {
		return nil, invalidStatusError(string(*opts.Status))
	}
	if opts.Priority != nil && !opts.Priority.IsValid() {
		return nil, invalidPriorityError(string(*opts.Priority))
	}

	for i := range l.Tasks {
		if l.Tasks[i].ID != id {
			continue
		}

		if opts.Title != nil {
			l.Tasks[i].Title = *opts.Title
		}
		if opts.Status != nil {
			l.Tasks[i].Status = *opts.Status
		}
		if opts.Priority != nil {
			l.Tasks[i].Priority = *opts.Priority
		}
		if opts.Tags != nil {
			l.Tasks[i].Tags = NormalizeTags(*opts.Tags)
		}
		if opts.Project != nil {
			l.Tasks[i].Project = NormalizeProject(*opts.Project)
		}
		if opts.DueDate != nil {
			due := *opts.DueDate
			l.Tasks[i].DueDate = &due
		}

		updated := l.Tasks[i].Clone()
		return &updated, nil
	}

	return nil, nil
}

// Delete removes the task with the given id, preserving the relative
// order of the rest, and returns the removed task. Returns nil if the
// id was absent. The id is never reused by later Adds.
func (l *List) Delete(id int) *Task {
	for i := range l.Tasks {
		if l.Tasks[i].ID != id {
			continue
		}
		removed := l.Tasks[i].Clone()
		l.Tasks = append(l.Tasks[:i], l.Tasks[i+1:]...)
		return &removed
	}
	return nil
}

// MarkCompleted marks the task as completed. Returns nil if absent.
func (l *List) MarkCompleted(id int) *Task {
	return l.setStatus(id, StatusCompleted)
}

// MarkPending marks the task as pending again. Returns nil if absent.
func (l *List) MarkPending(id int) *Task {
	return l.setStatus(id, StatusPending)
}

func (l *List) setStatus(id int, status Status) *Task {
	// Status is a known-valid constant, so Update cannot fail here.
	updated, _ := l.Update(id, UpdateOptions{Status: &status})
	return updated
}

// Filter configures which tasks to return. All supplied criteria must
// match (conjunction); the zero value matches every task.
type Filter struct {
	// Status filters by exact status match.
	Status *Status

	// Priority filters by exact priority match.
	Priority *Priority

	// Tag filters to tasks carrying this tag.
	Tag string

	// Project filters by exact project match.
	Project string

	// OverdueOnly keeps tasks whose due date is strictly before Now.
	OverdueOnly bool

	// Keyword matches case-insensitively as a substring of the title.
	Keyword string

	// Now is the reference time for OverdueOnly. Zero means time.Now().
	Now time.Time
}

// Filter returns tasks matching the filter, in list order. The result
// is never nil: no matches means an empty slice.
func (l *List) Filter(f Filter) []Task {
	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}
	keyword := strings.ToLower(f.Keyword)

	result := []Task{}
	for _, t := range l.Tasks {
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		if f.Priority != nil && t.Priority != *f.Priority {
			continue
		}
		if f.Tag != "" && !t.HasTag(f.Tag) {
			continue
		}
		if f.Project != "" && t.Project != f.Project {
			continue
		}
		if f.OverdueOnly && !t.IsOverdue(now) {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(t.Title), keyword) {
			continue
		}
		result = append(result, t)
	}

	return result
}

// SortKey selects the field tasks are sorted by.
type SortKey string

const (
	// SortByPriority orders low < medium < high.
	SortByPriority SortKey = "priority"

	// SortByDueDate orders by due date ascending; tasks without one
	// sort last.
	SortByDueDate SortKey = "due_date"

	// SortByCreatedAt orders by creation time ascending.
	SortByCreatedAt SortKey = "created_at"

	// SortByTitle orders case-insensitively by title.
	SortByTitle SortKey = "title"
)

// ValidSortKeys returns all valid sort keys.
func ValidSortKeys() []SortKey {
	return []SortKey{SortByPriority, SortByDueDate, SortByCreatedAt, SortByTitle}
}

// IsValid returns true if the sort key is a known valid value.
func (k SortKey) IsValid() bool {
	for _, valid := range ValidSortKeys() {
		if k == valid {
			return true
		}
	}
	return false
}

// ParseSortKey parses raw text into a SortKey.
// Unrecognized input fails with ErrInvalidSortKey.
func ParseSortKey(value string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(value)))
	if !key.IsValid() {
		return "", invalidSortKeyError(value)
	}
	return key, nil
}

// sortKeyLess returns a strict less-than on the sort key only, so ties
// keep their input order under stable sorting. Unrecognized keys fall
// back to sorting by id.
func sortKeyLess(by SortKey) func(a, b Task) bool {
	switch by {
	case SortByPriority:
		return func(a, b Task) bool {
			return PriorityRank(a.Priority) < PriorityRank(b.Priority)
		}
	case SortByDueDate:
		return func(a, b Task) bool {
			return dueOrMax(a).Before(dueOrMax(b))
		}
	case SortByCreatedAt:
		return func(a, b Task) bool {
			return a.CreatedAt.Before(b.CreatedAt)
		}
	case SortByTitle:
		return func(a, b Task) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	default:
		return func(a, b Task) bool {
			return a.ID < b.ID
		}
	}
}

// dueOrMax treats a missing due date as the maximum representable date,
// so unscheduled tasks sort after every scheduled one.
func dueOrMax(t Task) time.Time {
	if t.DueDate == nil {
		return time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
	}
	return *t.DueDate
}

// Sort returns the given tasks ordered by the given key. The sort is
// stable (equal keys preserve their relative input order) and
// non-mutating: the input is left untouched.
func (l *List) Sort(tasks []Task, by SortKey, reverse bool) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)
	less := sortKeyLess(by)
	sort.SliceStable(sorted, func(i, j int) bool {
		if reverse {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

// All returns a copy of all tasks in list order.
func (l *List) All() []Task {
	return append([]Task(nil), l.Tasks...)
}

// Count returns the number of tasks, or the number matching status when
// one is supplied.
func (l *List) Count(status *Status) int {
	if status == nil {
		return len(l.Tasks)
	}
	count := 0
	for _, t := range l.Tasks {
		if t.Status == *status {
			count++
		}
	}
	return count
}
