package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhtran/todi/internal/db"
	"github.com/minhtran/todi/internal/models"
	"github.com/minhtran/todi/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "todi",
	Short: "A CLI todo list with date windows",
	Long: `todi is a command-line todo list. Tasks carry a start/end date window
and are grouped into doing, overdue and done. A task whose end date has
passed is marked overdue until you complete it or move its dates.`,
}

// initDB initializes the database and panics on error
func initDB() {
	if err := db.Initialize(); err != nil {
		panic(err) // For now, panic on DB init failure
	}
}

// withStore wraps a command function with the load/recompute/save cycle:
// the collection is read from the database, overdue state is re-derived on
// the way in and again after the command mutates it, then the snapshot is
// written back.
func withStore(fn func(cmd *cobra.Command, args []string, s *store.TaskStore)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initDB()
		defer db.Close()

		tasks, err := db.LoadTasks()
		if err != nil {
			fmt.Printf("Error: failed to load tasks: %v\n", err)
			return
		}

		s := store.New(tasks...)
		s.RecomputeOverdue(time.Now())

		fn(cmd, args, s)

		s.RecomputeOverdue(time.Now())
		if err := db.ReplaceTasks(s.All()); err != nil {
			fmt.Printf("Error: failed to save tasks: %v\n", err)
		}
	}
}

// resolveTask finds a task by full id or any unique id prefix
func resolveTask(s *store.TaskStore, ref string) (models.Task, error) {
	if task, ok := s.Get(ref); ok {
		return task, nil
	}

	var matches []models.Task
	for _, task := range s.All() {
		if strings.HasPrefix(task.ID, ref) {
			matches = append(matches, task)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Task{}, fmt.Errorf("no task matches %q", ref)
	default:
		return models.Task{}, fmt.Errorf("%q matches %d tasks, use a longer prefix", ref, len(matches))
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("todi %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(versionCmd)
}
