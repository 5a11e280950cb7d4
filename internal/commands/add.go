package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhtran/todi/internal/collector"
	"github.com/minhtran/todi/internal/dates"
	"github.com/minhtran/todi/internal/models"
	"github.com/minhtran/todi/internal/store"
	"github.com/minhtran/todi/internal/tui"
)

var (
	addCategory string
	addStart    string
	addEnd      string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new task. You will be prompted for a start date and an end date;
press Esc at either prompt to abort. Pass --start and --end together to
skip the prompts.

Usage:
  todi add "Buy milk"
  todi add "Gym session" --category Sport
  todi add "Taxes" --start 01/05/2024 --end 03/05/2024`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.TaskStore) {
		category, err := models.ParseCategory(addCategory)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		runCollector(s, collector.Draft{Text: args[0], Category: category}, addStart, addEnd)
	}),
}

// recordingWriter notes whether the collector actually committed, so a
// cancelled prompt can be told apart from a successful flow.
type recordingWriter struct {
	s         *store.TaskStore
	committed bool
	created   models.Task
}

func (w *recordingWriter) CreateTask(text string, category models.Category, start, end *time.Time) models.Task {
	w.committed = true
	w.created = w.s.CreateTask(text, category, start, end)
	return w.created
}

func (w *recordingWriter) EditTask(id, text string, category models.Category, start, end *time.Time) {
	w.committed = true
	w.s.EditTask(id, text, category, start, end)
}

// runCollector drives one create-or-edit flow through the date range
// collector, with either the interactive prompt or flag-supplied dates,
// and reports the outcome.
func runCollector(s *store.TaskStore, draft collector.Draft, startFlag, endFlag string) {
	writer := &recordingWriter{s: s}

	var pickErr *error
	var c *collector.Collector
	if startFlag != "" || endFlag != "" {
		if startFlag == "" || endFlag == "" {
			fmt.Println("Error: --start and --end must be given together")
			return
		}
		start, err := dates.ParseDay(startFlag)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		end, err := dates.ParseDay(endFlag)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		picker := &tui.StaticPicker{Start: start, End: end}
		c = collector.New(picker, writer)
		picker.Collector = c
		pickErr = &picker.Err
	} else {
		picker := &tui.PromptPicker{}
		c = collector.New(picker, writer)
		picker.Collector = c
		pickErr = &picker.Err
	}

	if err := c.Begin(draft); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := *pickErr; err != nil {
		if errors.Is(err, collector.ErrEndBeforeStart) {
			fmt.Println("Error: end date cannot be before the start date")
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}

	if !writer.committed {
		fmt.Println("❌ Cancelled, nothing changed.")
		return
	}
	if draft.EditingID != "" {
		task, _ := s.Get(draft.EditingID)
		fmt.Printf("✅ Task %s updated: %q\n", tui.ShortID(task.ID), task.Text)
		return
	}
	fmt.Printf("✅ New task %q added - id %s\n", writer.created.Text, tui.ShortID(writer.created.ID))
}

func init() {
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "task category (Work, Sport, Movie, Health, Study)")
	addCmd.Flags().StringVar(&addStart, "start", "", "start date as dd/mm/yyyy (skips the prompt)")
	addCmd.Flags().StringVar(&addEnd, "end", "", "end date as dd/mm/yyyy (skips the prompt)")
}
