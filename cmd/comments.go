package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Read and post task comments",
}

var commentsListCmd = &cobra.Command{
	Use:   "list <task-id>",
	Short: "List comments on a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		comments, err := api.ListComments(cmd.Context(), taskID)
		if err != nil {
			return err
		}
		return printJSON(comments)
	},
}

var commentsPostCmd = &cobra.Command{
	Use:   "post <task-id> <content>...",
	Short: "Post a comment on a task",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		content := strings.Join(args[1:], " ")
		if err := api.PostComment(cmd.Context(), taskID, content); err != nil {
			return err
		}
		cmd.Println("comment posted")
		return nil
	},
}

func init() {
	commentsCmd.AddCommand(commentsListCmd, commentsPostCmd)
	RootCmd.AddCommand(commentsCmd)
}
