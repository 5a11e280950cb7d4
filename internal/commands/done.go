package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhtran/todi/internal/store"
	"github.com/minhtran/todi/internal/tui"
)

var doneCmd = &cobra.Command{
	Use:   "done <task_id>",
	Short: "Toggle a task's completion",
	Long: `Toggle a task between done and doing. Completing an overdue task
resolves its overdue state: it moves to the done group and stays there.

Usage:
  todi done 4f3a`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.TaskStore) {
		task, err := resolveTask(s, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		s.ToggleCompleted(task.ID)

		updated, _ := s.Get(task.ID)
		if updated.Completed {
			fmt.Printf("✅ Task %s marked done: %q\n", tui.ShortID(task.ID), updated.Text)
		} else {
			fmt.Printf("↩️ Task %s back in doing: %q\n", tui.ShortID(task.ID), updated.Text)
		}
	}),
}
