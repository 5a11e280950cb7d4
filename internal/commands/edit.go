package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhtran/todi/internal/collector"
	"github.com/minhtran/todi/internal/models"
	"github.com/minhtran/todi/internal/store"
)

var (
	editText     string
	editCategory string
	editStart    string
	editEnd      string
)

var editCmd = &cobra.Command{
	Use:   "edit <task_id>",
	Short: "Edit an existing task",
	Long: `Edit an existing task. The date prompts are pre-populated with the
task's current window; text and category are kept unless overridden with
flags. The task id may be any unique prefix shown by 'todi list'.

Usage:
  todi edit 4f3a                       - re-pick the dates of task 4f3a
  todi edit 4f3a --text "New title"    - rename and re-pick dates
  todi edit 4f3a --category Study`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.TaskStore) {
		task, err := resolveTask(s, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		text := task.Text
		if cmd.Flags().Changed("text") {
			text = editText
		}

		category := task.Category
		if cmd.Flags().Changed("category") {
			category, err = models.ParseCategory(editCategory)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}

		draft := collector.Draft{
			Text:         text,
			Category:     category,
			EditingID:    task.ID,
			DefaultStart: task.StartDate,
			DefaultEnd:   task.EndDate,
		}
		runCollector(s, draft, editStart, editEnd)
	}),
}

func init() {
	editCmd.Flags().StringVarP(&editText, "text", "t", "", "new task text")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "new category, empty to clear")
	editCmd.Flags().StringVar(&editStart, "start", "", "start date as dd/mm/yyyy (skips the prompt)")
	editCmd.Flags().StringVar(&editEnd, "end", "", "end date as dd/mm/yyyy (skips the prompt)")
}
