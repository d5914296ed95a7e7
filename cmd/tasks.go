package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rogersnm/labkit/internal/markdown"
	"github.com/rogersnm/labkit/internal/model"
	"github.com/rogersnm/labkit/internal/prompt"
	"github.com/rogersnm/labkit/internal/tracker"
	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Track tasks (interactive menu without a subcommand)",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := &taskMenu{p: newPrompter(cmd), out: cmd.OutOrStdout(), t: openTasks()}
		return m.loop()
	},
}

var tasksAddCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		task, err := openTasks().Add(args[0], category)
		if task == nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added: %s\n", task)
		return err
	},
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := openTasks()
		tasks := t.List()
		if category, _ := cmd.Flags().GetString("category"); category != "" {
			tasks = t.ByCategory(category)
		}
		printTasks(cmd.OutOrStdout(), tasks)
		return nil
	},
}

var tasksShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		task, ok := openTasks().Find(id)
		if !ok {
			return fmt.Errorf("task %d not found", id)
		}
		fields := []string{
			markdown.RenderField("ID", strconv.Itoa(task.ID)),
			markdown.RenderField("Category", task.Category),
			markdown.RenderField("Status", markdown.RenderDone(task.Done)),
		}
		fmt.Fprint(cmd.OutOrStdout(), markdown.RenderEntityHeader(task.Description, fields))
		return nil
	},
}

var tasksSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search task descriptions and categories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		found := openTasks().Search(args[0])
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Found %d task(s):\n", len(found))
		printTasks(out, found)
		return nil
	},
}

var tasksDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTaskDone(cmd, args[0], true)
	},
}

var tasksUndoneCmd = &cobra.Command{
	Use:   "undone <id>",
	Short: "Mark a task not done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTaskDone(cmd, args[0], false)
	},
}

func setTaskDone(cmd *cobra.Command, arg string, done bool) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	found, err := openTasks().SetDone(id, done)
	if !found {
		return fmt.Errorf("task %d not found", id)
	}
	fmt.Fprintln(cmd.OutOrStdout(), doneMessage(done))
	return err
}

func doneMessage(done bool) string {
	if done {
		return "Task marked as done."
	}
	return "Task marked as not done."
}

func openTasks() *tracker.Tasks {
	return tracker.OpenTasks(cfg.TasksPath(dataDir), logger)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid id %q: enter a whole non-negative number", s)
	}
	return id, nil
}

// validOptionalID accepts an id or an empty answer, which cancels.
func validOptionalID(s string) error {
	if s == "" {
		return nil
	}
	_, err := parseID(s)
	return err
}

// reportSave tells the user a change was kept in memory only.
func reportSave(out io.Writer, err error) {
	if err != nil {
		fmt.Fprintf(out, "Warning: %v\n", err)
	}
}

func printTasks(out io.Writer, tasks []*model.Task) {
	if isTerminal(out) {
		fmt.Fprintln(out, markdown.RenderTaskTable(tasks))
		return
	}
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks found.")
		return
	}
	for _, t := range tasks {
		fmt.Fprintln(out, t)
	}
}

var taskMenuOptions = []prompt.Option{
	{Label: "Add task", Value: "add"},
	{Label: "Mark task done", Value: "done"},
	{Label: "Mark task not done", Value: "undone"},
	{Label: "Show all tasks", Value: "list"},
	{Label: "Show tasks by category", Value: "category"},
	{Label: "Search tasks", Value: "search"},
	{Label: "Save and exit", Value: "exit"},
}

type taskMenu struct {
	p   prompt.Prompter
	out io.Writer
	t   *tracker.Tasks
}

func (m *taskMenu) loop() error {
	for {
		fmt.Fprintln(m.out)
		choice, err := m.p.Select("Menu:", taskMenuOptions)
		if err == nil {
			if choice == "exit" {
				break
			}
			err = m.run(choice)
		}
		if errors.Is(err, prompt.ErrAborted) {
			break
		}
		if err != nil {
			return err
		}
	}
	if err := m.t.Save(); err != nil {
		reportSave(m.out, err)
		return nil
	}
	fmt.Fprintln(m.out, "Data saved.")
	return nil
}

func (m *taskMenu) run(choice string) error {
	switch choice {
	case "add":
		return m.add()
	case "done", "undone":
		return m.setDone(choice == "done")
	case "list":
		fmt.Fprintln(m.out, "\nAll tasks:")
		printTasks(m.out, m.t.List())
	case "category":
		category, err := m.p.Input("Category to filter by", nil)
		if err != nil {
			return err
		}
		if category == "" {
			fmt.Fprintln(m.out, "Category cannot be empty.")
			return nil
		}
		fmt.Fprintf(m.out, "\nTasks in category '%s':\n", category)
		printTasks(m.out, m.t.ByCategory(category))
	case "search":
		query, err := m.p.Input("Search query (description or category)", nil)
		if err != nil {
			return err
		}
		if query == "" {
			fmt.Fprintln(m.out, "Empty query.")
			return nil
		}
		found := m.t.Search(query)
		fmt.Fprintf(m.out, "\nFound %d task(s):\n", len(found))
		printTasks(m.out, found)
	}
	return nil
}

func (m *taskMenu) add() error {
	desc, err := m.p.Input("Task description", nil)
	if err != nil {
		return err
	}
	category, err := m.p.Input("Category (Enter for 'general')", nil)
	if err != nil {
		return err
	}
	task, err := m.t.Add(desc, category)
	if task == nil {
		if model.IsValidation(err) {
			fmt.Fprintf(m.out, "Error: %v\n", err)
			return nil
		}
		return err
	}
	fmt.Fprintf(m.out, "Added: %s\n", task)
	reportSave(m.out, err)
	return nil
}

func (m *taskMenu) setDone(done bool) error {
	label := "ID of the task to mark done (Enter to cancel)"
	if !done {
		label = "ID of the task to mark not done (Enter to cancel)"
	}
	answer, err := m.p.Input(label, validOptionalID)
	if err != nil || answer == "" {
		return err
	}
	id, _ := parseID(answer)
	found, err := m.t.SetDone(id, done)
	if !found {
		fmt.Fprintln(m.out, "No task with that ID.")
		return nil
	}
	fmt.Fprintln(m.out, doneMessage(done))
	reportSave(m.out, err)
	return nil
}

func init() {
	tasksAddCmd.Flags().StringP("category", "c", "", "category (default general)")
	tasksListCmd.Flags().StringP("category", "c", "", "only tasks in this category")

	tasksCmd.AddCommand(tasksAddCmd)
	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksShowCmd)
	tasksCmd.AddCommand(tasksSearchCmd)
	tasksCmd.AddCommand(tasksDoneCmd)
	tasksCmd.AddCommand(tasksUndoneCmd)
	rootCmd.AddCommand(tasksCmd)
}
