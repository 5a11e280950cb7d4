package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/minhtran/todi/internal/dates"
	"github.com/minhtran/todi/internal/models"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccentBright))

	emptyStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(ColorHelpText))

	idStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText))

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))
)

// RenderBuckets renders the three task groupings for the list command
func RenderBuckets(tasks map[models.Bucket][]models.Task) string {
	var b strings.Builder

	for i, bucket := range models.Buckets() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(headingStyle.Render(strings.ToUpper(bucket.String())))
		b.WriteString("\n")

		group := tasks[bucket]
		if len(group) == 0 {
			b.WriteString(emptyStyle.Render("  nothing here"))
			b.WriteString("\n")
			continue
		}
		for _, task := range group {
			b.WriteString(renderTask(task))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderTask(task models.Task) string {
	var parts []string

	parts = append(parts, idStyle.Render(ShortID(task.ID)))

	switch {
	case task.Overdue:
		parts = append(parts, overdueStyle.Render("⚠️ "+task.Text))
	case task.Completed:
		parts = append(parts, doneStyle.Render("✓ "+task.Text))
	default:
		parts = append(parts, task.Text)
	}

	if task.Category != models.CategoryNone {
		parts = append(parts, fmt.Sprintf("%s %s", task.Category.Icon(), task.Category))
	}

	if task.StartDate != nil && task.EndDate != nil {
		parts = append(parts, idStyle.Render(
			fmt.Sprintf("%s → %s", dates.FormatDay(*task.StartDate), dates.FormatDay(*task.EndDate))))
	}

	return "  " + strings.Join(parts, "  ")
}

// ShortID returns the id prefix shown in list output
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
