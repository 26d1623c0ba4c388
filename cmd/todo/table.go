package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amonks/todo/internal/dates"
	"github.com/amonks/todo/internal/ui"
	"github.com/amonks/todo/task"
)

// printTaskTable renders tasks as an aligned table with a summary line.
func (a *app) printTaskTable(tasks []task.Task, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	builder := ui.NewTableBuilder([]string{"ID", "PRI", "STATUS", "DUE", "TAGS", "PROJECT", "TITLE"}, len(tasks))
	for _, t := range tasks {
		builder.AddRow([]string{
			strconv.Itoa(t.ID),
			a.formatPriority(t.Priority),
			a.formatStatus(t.Status),
			a.formatDue(t, now),
			strings.Join(t.Tags, ","),
			t.Project,
			ui.TruncateCell(t.Title),
		})
	}
	fmt.Print(builder.String())

	pending, completed, overdue := 0, 0, 0
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			completed++
			continue
		}
		pending++
		if t.IsOverdue(now) {
			overdue++
		}
	}
	summary := fmt.Sprintf("%d tasks (%d pending, %d completed)", len(tasks), pending, completed)
	if overdue > 0 {
		summary += fmt.Sprintf(", %d overdue", overdue)
	}
	fmt.Println(a.styles.Muted(summary))
}

func (a *app) formatPriority(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return a.styles.Highlight(string(p))
	case task.PriorityLow:
		return a.styles.Muted(string(p))
	default:
		return string(p)
	}
}

func (a *app) formatStatus(s task.Status) string {
	if s == task.StatusCompleted {
		return a.styles.Success(string(s))
	}
	return string(s)
}

func (a *app) formatDue(t task.Task, now time.Time) string {
	if t.DueDate == nil {
		return "-"
	}
	rendered := dates.Format(*t.DueDate, a.cfg.DateFormat)
	if t.Status == task.StatusPending && t.IsOverdue(now) {
		return a.styles.Highlight(rendered + " (" + dates.Relative(*t.DueDate, now) + ")")
	}
	return rendered
}

// printTaskDetail prints one task in long form.
func (a *app) printTaskDetail(t task.Task, now time.Time) {
	fmt.Printf("ID:       %d\n", t.ID)
	fmt.Printf("Title:    %s\n", t.Title)
	fmt.Printf("Status:   %s\n", a.formatStatus(t.Status))
	fmt.Printf("Priority: %s\n", a.formatPriority(t.Priority))
	fmt.Printf("Created:  %s (%s)\n", t.CreatedAt.Format("2006-01-02 15:04:05"), ui.FormatTimeAgo(t.CreatedAt, now))
	if t.DueDate != nil {
		fmt.Printf("Due:      %s\n", a.formatDue(t, now))
	}
	if len(t.Tags) > 0 {
		fmt.Printf("Tags:     %s\n", strings.Join(t.Tags, ", "))
	}
	if t.Project != "" {
		fmt.Printf("Project:  %s\n", t.Project)
	}
}
