package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/amonks/todo/internal/config"
	"github.com/amonks/todo/internal/paths"
	"github.com/amonks/todo/internal/ui"
	"github.com/amonks/todo/store"
	"github.com/amonks/todo/task"
	"github.com/amonks/todo/undo"
)

// app bundles everything a command run needs: resolved config, the
// task store, the undo history, and output styling.
type app struct {
	cfg     *config.Config
	cfgPath string
	store   *store.Store
	undoLog *undo.Log
	styles  ui.Styles
}

// loadApp resolves config and opens the store and undo log. A corrupt
// undo history is reported as a warning and reset; it never blocks a
// command.
func loadApp() (*app, error) {
	cfgPath, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	dataDir, err := paths.ResolveWithDefault(cfg.DataDir, paths.DefaultDataDir)
	if err != nil {
		return nil, err
	}

	undoLog, err := undo.Open(paths.UndoFile(dataDir))
	if errors.Is(err, undo.ErrCorruptHistory) {
		styles := ui.NewStyles(cfg.ColorEnabled)
		fmt.Fprintln(os.Stderr, styles.Warning("warning: undo history was corrupt and has been reset"))
	} else if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		cfgPath: cfgPath,
		store:   store.New(paths.TasksFile(dataDir), store.Options{}),
		undoLog: undoLog,
		styles:  ui.NewStyles(cfg.ColorEnabled),
	}, nil
}

// parseTaskID parses a positional id argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

// splitTags splits a comma-separated tag argument. Normalization
// happens in the task package.
func splitTags(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return strings.Split(value, ",")
}

// confirm prompts on stdout and reads a y/n answer from stdin.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// resolveTaskIDs parses and resolves every id argument before the
// caller touches the list. Multi-id commands persist an undo record
// per task, so a bad id must fail the whole command up front rather
// than after some tasks were already recorded.
func resolveTaskIDs(list *task.List, args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := parseTaskID(arg)
		if err != nil {
			return nil, err
		}
		if _, err := requireTask(list, id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// requireTask fetches a task by id, failing with a not-found error the
// command can surface directly.
func requireTask(list *task.List, id int) (*task.Task, error) {
	found := list.GetByID(id)
	if found == nil {
		return nil, fmt.Errorf("task %d not found", id)
	}
	return found, nil
}
