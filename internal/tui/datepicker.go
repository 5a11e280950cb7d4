package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/minhtran/todi/internal/collector"
	"github.com/minhtran/todi/internal/dates"
)

// DatePickerModel prompts for a single calendar day. It yields exactly one
// of a chosen date or a cancellation when the program exits.
type DatePickerModel struct {
	purpose      collector.Purpose
	defaultValue time.Time
	input        textinput.Model

	chosen        *time.Time
	cancelled     bool
	validationErr string
	width         int
}

// NewDatePickerModel creates a picker prompt for the given purpose
func NewDatePickerModel(purpose collector.Purpose, defaultValue time.Time) DatePickerModel {
	input := textinput.New()
	input.Placeholder = fmt.Sprintf("dd/mm/yyyy (Enter for %s)", dates.FormatDay(defaultValue))
	input.Focus()
	input.CharLimit = 10
	input.Width = 30
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	return DatePickerModel{
		purpose:      purpose,
		defaultValue: defaultValue,
		input:        input,
	}
}

// Init initializes the model
func (m DatePickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m DatePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			value := m.input.Value()
			if value == "" {
				day := m.defaultValue
				m.chosen = &day
				return m, tea.Quit
			}
			day, err := dates.ParseDay(value)
			if err != nil {
				m.validationErr = err.Error()
				return m, nil
			}
			m.chosen = &day
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.validationErr != "" && m.input.Value() == "" {
		m.validationErr = ""
	}
	return m, cmd
}

// View renders the prompt
func (m DatePickerModel) View() string {
	if m.chosen != nil || m.cancelled {
		return "" // Let the caller print the outcome
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))

	title := "📅 Start date"
	if m.purpose == collector.PickEnd {
		title = "📅 End date"
	}

	body := titleStyle.Render(title) + "\n" + m.input.View()

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true)
		body += "\n" + errStyle.Render("❌ "+m.validationErr)
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	body += "\n" + helpStyle.Render("Enter: Confirm | Esc: Cancel")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Render(body)
}

// RunDatePicker runs the prompt and returns the chosen day, or ok=false on
// cancellation.
func RunDatePicker(purpose collector.Purpose, defaultValue time.Time) (time.Time, bool, error) {
	model := NewDatePickerModel(purpose, defaultValue)

	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return time.Time{}, false, err
	}

	m, ok := finalModel.(DatePickerModel)
	if !ok || m.cancelled || m.chosen == nil {
		return time.Time{}, false, nil
	}
	return *m.chosen, true, nil
}
