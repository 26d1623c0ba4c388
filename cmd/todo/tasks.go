package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/todo/internal/dates"
	"github.com/amonks/todo/task"
)

// todo add
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var (
	addPriority string
	addTags     string
	addProject  string
	addDue      string
)

// todo list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runList,
}

var (
	listAll       bool
	listPending   bool
	listCompleted bool
	listPriority  string
	listTag       string
	listProject   string
	listOverdue   bool
	listSort      string
	listReverse   bool
	listJSON      bool
)

// todo show
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show detailed information about a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showJSON bool

// todo done
var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Mark one or more tasks as completed",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDone,
}

// todo reopen
var reopenCmd = &cobra.Command{
	Use:   "reopen <id>...",
	Short: "Mark one or more completed tasks as pending again",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runReopen,
}

// todo edit
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit fields of a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var (
	editTitle    string
	editPriority string
	editTags     string
	editProject  string
	editDue      string
)

// todo delete
var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

var deleteYes bool

// todo search
var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search tasks by title keyword, tag, or project",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSearch,
}

var (
	searchTag     string
	searchProject string
	searchJSON    bool
)

func init() {
	rootCmd.AddCommand(addCmd, listCmd, showCmd, doneCmd, reopenCmd, editCmd, deleteCmd, searchCmd)

	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority (low, medium, high)")
	addCmd.Flags().StringVarP(&addTags, "tags", "t", "", "Comma-separated tags")
	addCmd.Flags().StringVar(&addProject, "project", "", "Project name")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "Due date (today, tomorrow, +N, or 2006-01-02)")

	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Include completed tasks")
	listCmd.Flags().BoolVar(&listPending, "pending", false, "Show only pending tasks")
	listCmd.Flags().BoolVar(&listCompleted, "completed", false, "Show only completed tasks")
	listCmd.Flags().StringVarP(&listPriority, "priority", "p", "", "Filter by priority")
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "Filter by tag")
	listCmd.Flags().StringVar(&listProject, "project", "", "Filter by project")
	listCmd.Flags().BoolVar(&listOverdue, "overdue", false, "Show only overdue tasks")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort by field (priority, due_date, created_at, title)")
	listCmd.Flags().BoolVarP(&listReverse, "reverse", "r", false, "Reverse sort order")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")

	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority (low, medium, high)")
	editCmd.Flags().StringVarP(&editTags, "tags", "t", "", "Replacement comma-separated tags")
	editCmd.Flags().StringVar(&editProject, "project", "", "New project name")
	editCmd.Flags().StringVarP(&editDue, "due", "d", "", "New due date")

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")

	searchCmd.Flags().StringVarP(&searchTag, "tag", "t", "", "Filter by tag")
	searchCmd.Flags().StringVar(&searchProject, "project", "", "Filter by project")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output as JSON")
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	title := args[0]
	if err := task.ValidateTitle(title); err != nil {
		return err
	}

	opts := task.AddOptions{
		Priority: a.cfg.DefaultPriority,
		Tags:     append(append([]string{}, a.cfg.DefaultTags...), splitTags(addTags)...),
		Project:  addProject,
	}
	if cmd.Flags().Changed("priority") {
		priority, err := task.ParsePriority(addPriority)
		if err != nil {
			return err
		}
		opts.Priority = priority
	}
	if cmd.Flags().Changed("due") {
		due, err := dates.Parse(addDue, time.Now())
		if err != nil {
			return err
		}
		opts.DueDate = &due
	}

	list, err := a.store.Load()
	if err != nil {
		return err
	}

	created := list.Add(title, opts)
	if err := a.store.Save(list); err != nil {
		return err
	}

	a.printSuccess("Added task %d: %s", created.ID, created.Title)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	list, err := a.store.Load()
	if err != nil {
		return err
	}

	now := time.Now()
	filter := task.Filter{
		Tag:         listTag,
		Project:     listProject,
		OverdueOnly: listOverdue,
		Now:         now,
	}

	switch {
	case listCompleted:
		status := task.StatusCompleted
		filter.Status = &status
	case listPending:
		status := task.StatusPending
		filter.Status = &status
	case listAll || a.cfg.ShowCompleted:
		// No status filter.
	default:
		status := task.StatusPending
		filter.Status = &status
	}

	if listPriority != "" {
		priority, err := task.ParsePriority(listPriority)
		if err != nil {
			return err
		}
		filter.Priority = &priority
	}

	sortBy := a.cfg.SortBy
	if cmd.Flags().Changed("sort") {
		sortBy, err = task.ParseSortKey(listSort)
		if err != nil {
			return err
		}
	}
	reverse := a.cfg.SortReverse
	if cmd.Flags().Changed("reverse") {
		reverse = listReverse
	}

	tasks := list.Sort(list.Filter(filter), sortBy, reverse)

	if listJSON {
		return encodeJSONToStdout(tasks)
	}

	a.printTaskTable(tasks, now)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	list, err := a.store.Load()
	if err != nil {
		return err
	}

	found, err := requireTask(list, id)
	if err != nil {
		return err
	}

	if showJSON {
		return encodeJSONToStdout(found)
	}

	a.printTaskDetail(*found, time.Now())
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	list, err := a.store.Load()
	if err != nil {
		return err
	}

	ids, err := resolveTaskIDs(list, args)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if list.GetByID(id).Status == task.StatusCompleted {
			a.printInfo("Task %d is already completed", id)
			continue
		}

		completed := list.MarkCompleted(id)
		if err := a.undoLog.RecordComplete(*completed); err != nil {
			return err
		}
		a.printSuccess("Completed task %d: %s", completed.ID, completed.Title)
	}

	return a.store.Save(list)
}

func runReopen(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	list, err := a.store.Load()
	if err != nil {
		return err
	}

	ids, err := resolveTaskIDs(list, args)
	if err != nil {
		return err
	}

	for _, id := range ids {
		reopened := list.MarkPending(id)
		a.printSuccess("Reopened task %d: %s", reopened.ID, reopened.Title)
	}

	return a.store.Save(list)
}

func runEdit(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	opts := task.UpdateOptions{}
	if cmd.Flags().Changed("title") {
		opts.Title = &editTitle
	}
	if cmd.Flags().Changed("priority") {
		priority, err := task.ParsePriority(editPriority)
		if err != nil {
			return err
		}
		opts.Priority = &priority
	}
	if cmd.Flags().Changed("tags") {
		tags := splitTags(editTags)
		opts.Tags = &tags
	}
	if cmd.Flags().Changed("project") {
		opts.Project = &editProject
	}
	if cmd.Flags().Changed("due") {
		due, err := dates.Parse(editDue, time.Now())
		if err != nil {
			return err
		}
		opts.DueDate = &due
	}

	if opts == (task.UpdateOptions{}) {
		return fmt.Errorf("nothing to edit: pass at least one of --title, --priority, --tags, --project, --due")
	}

	list, err := a.store.Load()
	if err != nil {
		return err
	}

	previous, err := requireTask(list, id)
	if err != nil {
		return err
	}

	updated, err := list.Update(id, opts)
	if err != nil {
		return err
	}

	if err := a.undoLog.RecordEdit(*updated, *previous); err != nil {
		return err
	}
	if err := a.store.Save(list); err != nil {
		return err
	}

	a.printSuccess("Updated task %d: %s", updated.ID, updated.Title)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	list, err := a.store.Load()
	if err != nil {
		return err
	}

	ids, err := resolveTaskIDs(list, args)
	if err != nil {
		return err
	}

	for _, id := range ids {
		found := list.GetByID(id)
		if found == nil {
			// The same id given twice; the first pass removed it.
			continue
		}

		if !deleteYes {
			ok, err := confirm(fmt.Sprintf("Delete task %d (%s)?", found.ID, found.Title))
			if err != nil {
				return err
			}
			if !ok {
				a.printInfo("Skipped task %d", id)
				continue
			}
		}

		deleted := list.Delete(id)
		if err := a.undoLog.RecordDelete(*deleted); err != nil {
			return err
		}
		a.printSuccess("Deleted task %d: %s", deleted.ID, deleted.Title)
	}

	return a.store.Save(list)
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	list, err := a.store.Load()
	if err != nil {
		return err
	}

	filter := task.Filter{Tag: searchTag, Project: searchProject, Now: time.Now()}
	if len(args) > 0 {
		filter.Keyword = args[0]
	}
	if filter.Keyword == "" && filter.Tag == "" && filter.Project == "" {
		return fmt.Errorf("nothing to search for: pass a keyword, --tag, or --project")
	}

	now := filter.Now
	tasks := list.Filter(filter)

	if searchJSON {
		return encodeJSONToStdout(tasks)
	}

	a.printTaskTable(tasks, now)
	return nil
}
