package main

import (
	"strings"
	"testing"
	"time"

	"github.com/amonks/todo/internal/config"
	"github.com/amonks/todo/internal/ui"
	"github.com/amonks/todo/task"
)

func plainApp() *app {
	return &app{cfg: config.Default(), styles: ui.PlainStyles()}
}

func TestFormatDue(t *testing.T) {
	a := plainApp()
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	noDue := task.Task{Status: task.StatusPending}
	if got := a.formatDue(noDue, now); got != "-" {
		t.Errorf("expected - for no due date, got %q", got)
	}

	future := time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC)
	upcoming := task.Task{Status: task.StatusPending, DueDate: &future}
	if got := a.formatDue(upcoming, now); got != "2026-06-20" {
		t.Errorf("expected plain date, got %q", got)
	}

	past := time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC)
	overdue := task.Task{Status: task.StatusPending, DueDate: &past}
	if got := a.formatDue(overdue, now); !strings.Contains(got, "3d late") {
		t.Errorf("expected overdue marker, got %q", got)
	}

	// Completed tasks are never rendered as overdue.
	done := task.Task{Status: task.StatusCompleted, DueDate: &past}
	if got := a.formatDue(done, now); got != "2026-06-12" {
		t.Errorf("expected plain date for completed task, got %q", got)
	}
}

func TestFormatDueHonorsConfiguredLayout(t *testing.T) {
	a := plainApp()
	a.cfg.DateFormat = "02 Jan 2006"
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	due := time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC)
	item := task.Task{Status: task.StatusPending, DueDate: &due}
	if got := a.formatDue(item, now); got != "20 Jun 2026" {
		t.Errorf("expected configured layout, got %q", got)
	}
}

func TestFormatPriorityAndStatusPlain(t *testing.T) {
	a := plainApp()

	for _, p := range task.ValidPriorities() {
		if got := a.formatPriority(p); got != string(p) {
			t.Errorf("expected plain %q, got %q", p, got)
		}
	}
	for _, s := range task.ValidStatuses() {
		if got := a.formatStatus(s); got != string(s) {
			t.Errorf("expected plain %q, got %q", s, got)
		}
	}
}
