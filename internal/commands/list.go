package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhtran/todi/internal/models"
	"github.com/minhtran/todi/internal/store"
	"github.com/minhtran/todi/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks grouped by doing, overdue and done",
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.TaskStore) {
		if s.Len() == 0 {
			fmt.Println("No tasks yet. Add one with 'todi add'.")
			return
		}

		buckets := make(map[models.Bucket][]models.Task)
		for _, bucket := range models.Buckets() {
			buckets[bucket] = s.ListBy(bucket)
		}
		fmt.Print(tui.RenderBuckets(buckets))
	}),
}
