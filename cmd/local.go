package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskai-app/taskai-go/store"
)

// localCmd drives the in-memory scratch list. Nothing here touches the
// backend; the list lives for the duration of the session only.
var localCmd = &cobra.Command{
	Use:   "local",
	Short: "Interactive local scratch list (not synced to the server)",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks := store.NewTaskStore()
		toasts := store.NewToastQueue()

		cancelToasts := toasts.Subscribe(func(t *store.Toast) {
			if t != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", t.Level, t.Message)
			}
		})
		defer cancelToasts()

		printList := func() {
			for _, t := range tasks.Tasks() {
				mark := " "
				if t.Completed {
					mark = "x"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %d  %s\n", mark, t.ID, t.Title)
			}
		}

		cmd.Println("commands: add <title> | toggle <id> | rm <id> | ls | quit")
		printList()
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			verb, rest, _ := strings.Cut(line, " ")
			switch verb {
			case "":
			case "add":
				if rest == "" {
					toasts.Show("add needs a title", store.LevelError)
					continue
				}
				task := tasks.Add(rest)
				toasts.Show(fmt.Sprintf("added #%d", task.ID), store.LevelSuccess)
			case "toggle", "rm":
				id, err := strconv.Atoi(rest)
				if err != nil {
					toasts.Show(verb+" needs a numeric id", store.LevelError)
					continue
				}
				if verb == "toggle" {
					tasks.Toggle(id)
				} else {
					tasks.Remove(id)
				}
				printList()
			case "ls":
				printList()
			case "quit", "exit":
				return nil
			default:
				toasts.Show("unknown command: "+verb, store.LevelError)
			}
		}
		return scanner.Err()
	},
}

func init() {
	RootCmd.AddCommand(localCmd)
}
