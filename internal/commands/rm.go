package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhtran/todi/internal/store"
	"github.com/minhtran/todi/internal/tui"
)

var rmCmd = &cobra.Command{
	Use:     "rm <task_id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task permanently",
	Args:    cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.TaskStore) {
		task, err := resolveTask(s, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		s.DeleteTask(task.ID)
		fmt.Printf("🗑️ Task %s deleted: %q\n", tui.ShortID(task.ID), task.Text)
	}),
}
