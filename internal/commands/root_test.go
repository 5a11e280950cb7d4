package commands

import (
	"testing"

	"github.com/minhtran/todi/internal/models"
	"github.com/minhtran/todi/internal/store"
)

func TestResolveTask(t *testing.T) {
	s := store.New(
		models.Task{ID: "abc12345-0000", Text: "first"},
		models.Task{ID: "abd67890-0000", Text: "second"},
	)

	t.Run("exact id", func(t *testing.T) {
		task, err := resolveTask(s, "abc12345-0000")
		if err != nil {
			t.Fatalf("resolveTask() err=%v, want nil", err)
		}
		if task.Text != "first" {
			t.Errorf("task.Text = %q, want %q", task.Text, "first")
		}
	})

	t.Run("unique prefix", func(t *testing.T) {
		task, err := resolveTask(s, "abd")
		if err != nil {
			t.Fatalf("resolveTask() err=%v, want nil", err)
		}
		if task.Text != "second" {
			t.Errorf("task.Text = %q, want %q", task.Text, "second")
		}
	})

	t.Run("ambiguous prefix", func(t *testing.T) {
		if _, err := resolveTask(s, "ab"); err == nil {
			t.Fatalf("resolveTask() err=nil, want ambiguity error")
		}
	})

	t.Run("no match", func(t *testing.T) {
		if _, err := resolveTask(s, "zzz"); err == nil {
			t.Fatalf("resolveTask() err=nil, want not-found error")
		}
	})
}
