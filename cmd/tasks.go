package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskai-app/taskai-go/client"
	"github.com/taskai-app/taskai-go/model"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage tasks",
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := api.ListTasks(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(tasks)
	},
}

var tasksGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		task, err := api.GetTask(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(task)
	},
}

var newTask model.NewTask

var tasksCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a task",
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := api.CreateTask(cmd.Context(), newTask)
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var updateFields struct {
	title       string
	description string
	priority    int
	status      string
	progress    float64
}

var tasksUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Partially update a task; only the flags you pass are sent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		var updates model.TaskUpdate
		if cmd.Flags().Changed("title") {
			updates.Title = &updateFields.title
		}
		if cmd.Flags().Changed("description") {
			updates.Description = &updateFields.description
		}
		if cmd.Flags().Changed("priority") {
			updates.Priority = &updateFields.priority
		}
		if cmd.Flags().Changed("status") {
			updates.Status = &updateFields.status
		}
		if cmd.Flags().Changed("progress") {
			updates.Progress = &updateFields.progress
		}
		updated, err := api.UpdateTask(cmd.Context(), id, updates)
		if err != nil {
			return err
		}
		return printJSON(updated)
	},
}

var tasksDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		if err := api.DeleteTask(cmd.Context(), id); err != nil {
			return err
		}
		cmd.Printf("task %d deleted\n", id)
		return nil
	},
}

var recommendMode string

var tasksRecommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Fetch AI-ranked task recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := api.Recommendations(cmd.Context(), recommendMode)
		if err != nil {
			return err
		}
		return printJSON(tasks)
	},
}

func init() {
	tasksCreateCmd.Flags().StringVar(&newTask.Title, "title", "", "task title")
	tasksCreateCmd.Flags().StringVar(&newTask.Description, "description", "", "task description")
	tasksCreateCmd.Flags().IntVar(&newTask.Priority, "priority", 3, "priority, lower is more important")
	tasksCreateCmd.Flags().StringVar(&newTask.Status, "status", "todo", "task status")
	tasksCreateCmd.Flags().Float64Var(&newTask.Progress, "progress", 0, "progress percentage")
	tasksCreateCmd.MarkFlagRequired("title")

	tasksUpdateCmd.Flags().StringVar(&updateFields.title, "title", "", "task title")
	tasksUpdateCmd.Flags().StringVar(&updateFields.description, "description", "", "task description")
	tasksUpdateCmd.Flags().IntVar(&updateFields.priority, "priority", 0, "priority, lower is more important")
	tasksUpdateCmd.Flags().StringVar(&updateFields.status, "status", "", "task status")
	tasksUpdateCmd.Flags().Float64Var(&updateFields.progress, "progress", 0, "progress percentage")

	tasksRecommendCmd.Flags().StringVar(&recommendMode, "mode", client.DefaultRecommendationMode, "ranking mode: urgent, balanced or quick_wins")

	tasksCmd.AddCommand(tasksListCmd, tasksGetCmd, tasksCreateCmd, tasksUpdateCmd, tasksDeleteCmd, tasksRecommendCmd)
	RootCmd.AddCommand(tasksCmd)
}
