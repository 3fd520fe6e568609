package cmd

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
)

var attachmentsCmd = &cobra.Command{
	Use:   "attachments",
	Short: "Manage task attachments",
}

var attachmentsListCmd = &cobra.Command{
	Use:   "list <task-id>",
	Short: "List attachments on a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		attachments, err := api.ListAttachments(cmd.Context(), taskID)
		if err != nil {
			return err
		}
		return printJSON(attachments)
	},
}

var attachmentsUploadCmd = &cobra.Command{
	Use:   "upload <task-id> <file>",
	Short: "Upload a file as a task attachment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer f.Close()
		created, err := api.UploadAttachment(cmd.Context(), taskID, filepath.Base(args[1]), f)
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var attachmentsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an attachment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		msg, err := api.DeleteAttachment(cmd.Context(), id)
		if err != nil {
			return err
		}
		cmd.Println(msg)
		return nil
	},
}

var attachmentsURLCmd = &cobra.Command{
	Use:   "url <filename>",
	Short: "Print the static URL for a stored attachment filename",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println(api.AttachmentURL(args[0]))
		return nil
	},
}

func init() {
	attachmentsCmd.AddCommand(attachmentsListCmd, attachmentsUploadCmd, attachmentsDeleteCmd, attachmentsURLCmd)
	RootCmd.AddCommand(attachmentsCmd)
}
