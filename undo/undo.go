// Package undo keeps a bounded, persisted history of reversible
// actions over a task list.
//
// The log records snapshots, not references: each action owns a copy of
// the task it touched. Undo pops and returns the most recent action;
// applying the reversal to the live list and store is the caller's job,
// since the log knows about neither.
package undo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/amonks/todo/task"
)

// maxHistory bounds the persisted log; oldest entries drop first.
const maxHistory = 50

// ErrCorruptHistory reports that the history file could not be read or
// parsed. It is non-fatal: the log resets to empty and keeps working,
// and callers surface it as a warning.
var ErrCorruptHistory = errors.New("undo history is corrupt")

// ActionType identifies the kind of recorded action.
type ActionType string

const (
	// ActionDelete records a task deletion.
	ActionDelete ActionType = "delete"

	// ActionEdit records a field edit.
	ActionEdit ActionType = "edit"

	// ActionComplete records a completion.
	ActionComplete ActionType = "complete"
)

// Action is one reversible action. The three concrete kinds are
// DeleteAction, EditAction, and CompleteAction; callers reverse an
// action with an exhaustive type switch.
type Action interface {
	// Type identifies the action kind.
	Type() ActionType

	// TaskSnapshot is the task as it was when the action was recorded.
	TaskSnapshot() task.Task

	// RecordedAt is when the action was recorded.
	RecordedAt() time.Time
}

// DeleteAction records that a task was deleted. Reversal re-adds the
// snapshot's content (under a fresh id, since ids are never recycled).
type DeleteAction struct {
	Task task.Task
	At   time.Time
}

// Type identifies the action kind.
func (a DeleteAction) Type() ActionType { return ActionDelete }

// TaskSnapshot returns the deleted task.
func (a DeleteAction) TaskSnapshot() task.Task { return a.Task }

// RecordedAt returns when the deletion was recorded.
func (a DeleteAction) RecordedAt() time.Time { return a.At }

// EditAction records that a task was edited. Previous holds the full
// prior state needed to reverse the edit.
type EditAction struct {
	Task     task.Task
	Previous task.Task
	At       time.Time
}

// Type identifies the action kind.
func (a EditAction) Type() ActionType { return ActionEdit }

// TaskSnapshot returns the task as edited.
func (a EditAction) TaskSnapshot() task.Task { return a.Task }

// RecordedAt returns when the edit was recorded.
func (a EditAction) RecordedAt() time.Time { return a.At }

// CompleteAction records that a task was marked completed. Reversal
// marks it pending again.
type CompleteAction struct {
	Task task.Task
	At   time.Time
}

// Type identifies the action kind.
func (a CompleteAction) Type() ActionType { return ActionComplete }

// TaskSnapshot returns the completed task.
func (a CompleteAction) TaskSnapshot() task.Task { return a.Task }

// RecordedAt returns when the completion was recorded.
func (a CompleteAction) RecordedAt() time.Time { return a.At }

// Log is a persisted history of reversible actions.
type Log struct {
	path    string
	actions []Action
	now     func() time.Time
}

// Open loads the history at path. A missing file is an empty log. A
// file that cannot be read or parsed also yields an empty, usable log,
// along with an error matching ErrCorruptHistory for the caller to
// report as a warning.
func Open(path string) (*Log, error) {
	log := &Log{path: path, now: time.Now}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return log, nil
	}
	if err != nil {
		return log, fmt.Errorf("%w: %v", ErrCorruptHistory, err)
	}

	var records []actionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return log, fmt.Errorf("%w: %v", ErrCorruptHistory, err)
	}

	actions := make([]Action, 0, len(records))
	for _, record := range records {
		action, err := record.toAction()
		if err != nil {
			return log, fmt.Errorf("%w: %v", ErrCorruptHistory, err)
		}
		actions = append(actions, action)
	}

	log.actions = actions
	return log, nil
}

// RecordDelete appends a deletion and persists the log.
func (l *Log) RecordDelete(deleted task.Task) error {
	return l.append(DeleteAction{Task: deleted.Clone(), At: l.now()})
}

// RecordEdit appends an edit with the prior state and persists the log.
func (l *Log) RecordEdit(edited, previous task.Task) error {
	return l.append(EditAction{Task: edited.Clone(), Previous: previous.Clone(), At: l.now()})
}

// RecordComplete appends a completion and persists the log.
func (l *Log) RecordComplete(completed task.Task) error {
	return l.append(CompleteAction{Task: completed.Clone(), At: l.now()})
}

// CanUndo reports whether the log holds any actions.
func (l *Log) CanUndo() bool {
	return len(l.actions) > 0
}

// LastAction returns the most recent action without removing it, or
// nil when the log is empty.
func (l *Log) LastAction() Action {
	if len(l.actions) == 0 {
		return nil
	}
	return l.actions[len(l.actions)-1]
}

// Undo pops and returns the most recent action and persists the
// truncated log. Returns nil when there is nothing to undo. The caller
// applies the reversal to the live list.
func (l *Log) Undo() (Action, error) {
	if len(l.actions) == 0 {
		return nil, nil
	}

	action := l.actions[len(l.actions)-1]
	l.actions = l.actions[:len(l.actions)-1]
	if err := l.save(); err != nil {
		return nil, err
	}
	return action, nil
}

// Clear drops all history and persists the empty log.
func (l *Log) Clear() error {
	l.actions = nil
	return l.save()
}

// Len returns the number of recorded actions.
func (l *Log) Len() int {
	return len(l.actions)
}

func (l *Log) append(action Action) error {
	l.actions = append(l.actions, action)
	return l.save()
}

// save persists the log, keeping only the most recent maxHistory
// entries. Durability takes precedence over batching: every record
// writes through immediately.
func (l *Log) save() error {
	if len(l.actions) > maxHistory {
		l.actions = l.actions[len(l.actions)-maxHistory:]
	}

	records := make([]actionRecord, 0, len(l.actions))
	for _, action := range l.actions {
		records = append(records, toRecord(action))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode undo history: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	// Temp-file-plus-rename so a crash mid-write can't corrupt the
	// history (a corrupt history costs the whole undo window).
	tmp, err := os.CreateTemp(filepath.Dir(l.path), filepath.Base(l.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write undo history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, l.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// actionRecord is the persisted envelope: a type tag plus the task
// snapshot and, for edits, the prior state.
type actionRecord struct {
	ActionType    ActionType `json:"action_type"`
	Task          task.Task  `json:"task"`
	PreviousState *task.Task `json:"previous_state"`
	Timestamp     time.Time  `json:"timestamp"`
}

func toRecord(action Action) actionRecord {
	record := actionRecord{
		ActionType: action.Type(),
		Task:       action.TaskSnapshot(),
		Timestamp:  action.RecordedAt(),
	}
	if edit, ok := action.(EditAction); ok {
		previous := edit.Previous.Clone()
		record.PreviousState = &previous
	}
	return record
}

func (r actionRecord) toAction() (Action, error) {
	switch r.ActionType {
	case ActionDelete:
		return DeleteAction{Task: r.Task, At: r.Timestamp}, nil
	case ActionEdit:
		if r.PreviousState == nil {
			return nil, fmt.Errorf("edit record for task %d has no previous state", r.Task.ID)
		}
		return EditAction{Task: r.Task, Previous: *r.PreviousState, At: r.Timestamp}, nil
	case ActionComplete:
		return CompleteAction{Task: r.Task, At: r.Timestamp}, nil
	default:
		return nil, fmt.Errorf("unknown action type %q", r.ActionType)
	}
}
