// Package collector sequences the two-step date-range prompt used by task
// creation and editing: ask for a start day, ask for an end day, then commit
// the draft to the store, or abort. The original form logic scattered this
// across picker visibility flags and partial date state; here it is one
// explicit state machine owning one draft at a time.
package collector

import (
	"errors"
	"strings"
	"time"

	"github.com/minhtran/todi/internal/dates"
	"github.com/minhtran/todi/internal/models"
)

// Validation errors surfaced to the user. Both abort the attempt; the user
// re-initiates after correcting the input.
var (
	ErrEmptyName      = errors.New("empty task name")
	ErrEndBeforeStart = errors.New("end before start")
)

// State is the collector's position in the prompt sequence
type State int

const (
	StateIdle State = iota
	StateAwaitingStart
	StateAwaitingEnd
	StateCommitting
)

// Purpose tells the picker which prompt to show
type Purpose int

const (
	PickStart Purpose = iota
	PickEnd
)

// DatePicker is the external date-picking capability. A request eventually
// yields exactly one callback on the collector: a chosen instant or a
// cancellation for the given purpose.
type DatePicker interface {
	RequestDate(purpose Purpose, defaultValue time.Time)
}

// TaskWriter is the subset of the task store the collector commits to
type TaskWriter interface {
	CreateTask(text string, category models.Category, start, end *time.Time) models.Task
	EditTask(id, text string, category models.Category, start, end *time.Time)
}

// Draft is the in-flight tuple being assembled before it becomes or
// updates a task. EditingID is empty for a create. DefaultStart/DefaultEnd
// seed the picker prompts (an edit pre-populates them from the task).
type Draft struct {
	Text         string
	Category     models.Category
	EditingID    string
	DefaultStart *time.Time
	DefaultEnd   *time.Time
}

// Collector drives one create-or-edit interaction at a time. Single-flight:
// a Begin while a draft is pending replaces the pending draft.
type Collector struct {
	picker DatePicker
	tasks  TaskWriter

	state        State
	draft        Draft
	pendingStart time.Time

	now func() time.Time
}

// New creates a collector in the idle state
func New(picker DatePicker, tasks TaskWriter) *Collector {
	return &Collector{
		picker: picker,
		tasks:  tasks,
		now:    time.Now,
	}
}

// State returns the collector's current state
func (c *Collector) State() State {
	return c.state
}

// Begin validates the draft text, stores the draft and requests the start
// date prompt. An empty text fails with ErrEmptyName and leaves the
// collector where it was.
func (c *Collector) Begin(draft Draft) error {
	draft.Text = strings.TrimSpace(draft.Text)
	if draft.Text == "" {
		return ErrEmptyName
	}

	c.draft = draft
	c.pendingStart = time.Time{}
	c.state = StateAwaitingStart
	c.picker.RequestDate(PickStart, c.defaultFor(PickStart))
	return nil
}

// StartChosen receives the start-date pick. Out of AwaitingStart it is a
// no-op.
func (c *Collector) StartChosen(instant time.Time) {
	if c.state != StateAwaitingStart {
		return
	}
	c.pendingStart = dates.Normalize(instant)
	c.state = StateAwaitingEnd
	c.picker.RequestDate(PickEnd, c.defaultFor(PickEnd))
}

// StartCancelled abandons the draft. Out of AwaitingStart it is a no-op.
func (c *Collector) StartCancelled() {
	if c.state != StateAwaitingStart {
		return
	}
	c.reset()
}

// EndChosen receives the end-date pick and commits the draft. An end day
// strictly before the pending start day fails with ErrEndBeforeStart and
// discards the whole draft. Out of AwaitingEnd it is a no-op.
func (c *Collector) EndChosen(instant time.Time) error {
	if c.state != StateAwaitingEnd {
		return nil
	}

	end := dates.Normalize(instant)
	if end.Before(c.pendingStart) {
		c.reset()
		return ErrEndBeforeStart
	}

	c.state = StateCommitting
	start := c.pendingStart
	if c.draft.EditingID != "" {
		c.tasks.EditTask(c.draft.EditingID, c.draft.Text, c.draft.Category, &start, &end)
	} else {
		c.tasks.CreateTask(c.draft.Text, c.draft.Category, &start, &end)
	}
	c.reset()
	return nil
}

// EndCancelled abandons the draft. Out of AwaitingEnd it is a no-op.
func (c *Collector) EndCancelled() {
	if c.state != StateAwaitingEnd {
		return
	}
	c.reset()
}

func (c *Collector) reset() {
	c.state = StateIdle
	c.draft = Draft{}
	c.pendingStart = time.Time{}
}

func (c *Collector) defaultFor(purpose Purpose) time.Time {
	switch purpose {
	case PickStart:
		if c.draft.DefaultStart != nil {
			return *c.draft.DefaultStart
		}
	case PickEnd:
		if c.draft.DefaultEnd != nil {
			return *c.draft.DefaultEnd
		}
	}
	return c.now()
}
