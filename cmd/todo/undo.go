package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amonks/todo/task"
	"github.com/amonks/todo/undo"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent delete, edit, or complete",
	Args:  cobra.NoArgs,
	RunE:  runUndo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

func runUndo(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	list, err := a.store.Load()
	if err != nil {
		return err
	}

	action, err := a.undoLog.Undo()
	if err != nil {
		return err
	}
	if action == nil {
		a.printInfo("Nothing to undo")
		return nil
	}

	switch act := action.(type) {
	case undo.DeleteAction:
		// Ids are never recycled, so the task comes back under a
		// fresh one.
		restored := list.Add(act.Task.Title, task.AddOptions{
			Priority: act.Task.Priority,
			Tags:     act.Task.Tags,
			Project:  act.Task.Project,
			DueDate:  act.Task.DueDate,
		})
		if act.Task.Status == task.StatusCompleted {
			list.MarkCompleted(restored.ID)
		}
		a.printSuccess("Restored task %d: %s", restored.ID, restored.Title)

	case undo.EditAction:
		previous := act.Previous
		opts := task.UpdateOptions{
			Title:    &previous.Title,
			Status:   &previous.Status,
			Priority: &previous.Priority,
			Tags:     &previous.Tags,
			Project:  &previous.Project,
			DueDate:  previous.DueDate,
		}
		reverted, err := list.Update(previous.ID, opts)
		if err != nil {
			return err
		}
		if reverted == nil {
			return fmt.Errorf("cannot undo edit: task %d no longer exists", previous.ID)
		}
		a.printSuccess("Reverted task %d: %s", reverted.ID, reverted.Title)

	case undo.CompleteAction:
		reopened := list.MarkPending(act.Task.ID)
		if reopened == nil {
			return fmt.Errorf("cannot undo completion: task %d no longer exists", act.Task.ID)
		}
		a.printSuccess("Reopened task %d: %s", reopened.ID, reopened.Title)

	default:
		return fmt.Errorf("unknown undo action %q", action.Type())
	}

	return a.store.Save(list)
}
