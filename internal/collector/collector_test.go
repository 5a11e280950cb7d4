package collector

import (
	"errors"
	"testing"
	"time"

	"github.com/minhtran/todi/internal/dates"
	"github.com/minhtran/todi/internal/models"
)

// --- fakes ---

type pickRequest struct {
	purpose Purpose
	def     time.Time
}

type fakePicker struct {
	requests []pickRequest
}

func (p *fakePicker) RequestDate(purpose Purpose, def time.Time) {
	p.requests = append(p.requests, pickRequest{purpose, def})
}

type fakeWriter struct {
	created []models.Task
	edits   []models.Task
}

func (w *fakeWriter) CreateTask(text string, category models.Category, start, end *time.Time) models.Task {
	task := models.Task{ID: "created", Text: text, Category: category, StartDate: start, EndDate: end}
	w.created = append(w.created, task)
	return task
}

func (w *fakeWriter) EditTask(id, text string, category models.Category, start, end *time.Time) {
	w.edits = append(w.edits, models.Task{ID: id, Text: text, Category: category, StartDate: start, EndDate: end})
}

func newUnderTest() (*Collector, *fakePicker, *fakeWriter) {
	picker := &fakePicker{}
	writer := &fakeWriter{}
	c := New(picker, writer)
	c.now = func() time.Time {
		return time.Date(2024, 5, 20, 9, 0, 0, 0, dates.Reference)
	}
	return c, picker, writer
}

// --- tests ---

func TestBegin(t *testing.T) {
	t.Run("requests the start prompt", func(t *testing.T) {
		c, picker, _ := newUnderTest()

		if err := c.Begin(Draft{Text: "Buy milk"}); err != nil {
			t.Fatalf("Begin() err=%v, want nil", err)
		}
		if c.State() != StateAwaitingStart {
			t.Errorf("State() = %v, want StateAwaitingStart", c.State())
		}
		if len(picker.requests) != 1 || picker.requests[0].purpose != PickStart {
			t.Errorf("requests = %v, want one PickStart", picker.requests)
		}
	})

	t.Run("empty name fails without transitioning", func(t *testing.T) {
		c, picker, _ := newUnderTest()

		err := c.Begin(Draft{Text: "   "})
		if !errors.Is(err, ErrEmptyName) {
			t.Fatalf("Begin() err=%v, want %v", err, ErrEmptyName)
		}
		if c.State() != StateIdle {
			t.Errorf("State() = %v, want StateIdle", c.State())
		}
		if len(picker.requests) != 0 {
			t.Errorf("requests = %v, want none", picker.requests)
		}
	})

	t.Run("default start date seeds the prompt", func(t *testing.T) {
		c, picker, _ := newUnderTest()
		prev := time.Date(2024, 5, 1, 0, 0, 0, 0, dates.Reference)

		if err := c.Begin(Draft{Text: "Buy milk", DefaultStart: &prev}); err != nil {
			t.Fatalf("Begin() err=%v, want nil", err)
		}
		if !picker.requests[0].def.Equal(prev) {
			t.Errorf("start default = %v, want %v", picker.requests[0].def, prev)
		}
	})

	t.Run("falls back to now for the default", func(t *testing.T) {
		c, picker, _ := newUnderTest()

		if err := c.Begin(Draft{Text: "Buy milk"}); err != nil {
			t.Fatalf("Begin() err=%v, want nil", err)
		}
		want := c.now()
		if !picker.requests[0].def.Equal(want) {
			t.Errorf("start default = %v, want %v", picker.requests[0].def, want)
		}
	})
}

func TestCreateFlow(t *testing.T) {
	c, picker, writer := newUnderTest()

	if err := c.Begin(Draft{Text: "Buy milk", Category: models.CategoryHealth}); err != nil {
		t.Fatalf("Begin() err=%v, want nil", err)
	}

	c.StartChosen(time.Date(2024, 5, 1, 14, 30, 0, 0, dates.Reference))
	if c.State() != StateAwaitingEnd {
		t.Fatalf("State() = %v, want StateAwaitingEnd", c.State())
	}
	if len(picker.requests) != 2 || picker.requests[1].purpose != PickEnd {
		t.Fatalf("requests = %v, want PickStart then PickEnd", picker.requests)
	}

	if err := c.EndChosen(time.Date(2024, 5, 3, 8, 0, 0, 0, dates.Reference)); err != nil {
		t.Fatalf("EndChosen() err=%v, want nil", err)
	}
	if c.State() != StateIdle {
		t.Errorf("State() = %v, want StateIdle after commit", c.State())
	}

	if len(writer.created) != 1 {
		t.Fatalf("created %d tasks, want 1", len(writer.created))
	}
	got := writer.created[0]
	if got.Text != "Buy milk" || got.Category != models.CategoryHealth {
		t.Errorf("created task = %+v, want text/category from the draft", got)
	}
	wantStart := time.Date(2024, 5, 1, 0, 0, 0, 0, dates.Reference)
	wantEnd := time.Date(2024, 5, 3, 0, 0, 0, 0, dates.Reference)
	if !got.StartDate.Equal(wantStart) || !got.EndDate.Equal(wantEnd) {
		t.Errorf("dates = (%v, %v), want normalized (%v, %v)", got.StartDate, got.EndDate, wantStart, wantEnd)
	}
	if len(writer.edits) != 0 {
		t.Errorf("edits = %v, want none for a create", writer.edits)
	}
}

func TestEditFlow(t *testing.T) {
	c, picker, writer := newUnderTest()
	prevStart := time.Date(2024, 4, 1, 0, 0, 0, 0, dates.Reference)
	prevEnd := time.Date(2024, 4, 5, 0, 0, 0, 0, dates.Reference)

	err := c.Begin(Draft{
		Text:         "Call bob",
		Category:     models.CategoryWork,
		EditingID:    "task-7",
		DefaultStart: &prevStart,
		DefaultEnd:   &prevEnd,
	})
	if err != nil {
		t.Fatalf("Begin() err=%v, want nil", err)
	}

	c.StartChosen(time.Date(2024, 5, 10, 0, 0, 0, 0, dates.Reference))
	if !picker.requests[1].def.Equal(prevEnd) {
		t.Errorf("end default = %v, want previous end %v", picker.requests[1].def, prevEnd)
	}

	if err := c.EndChosen(time.Date(2024, 5, 12, 0, 0, 0, 0, dates.Reference)); err != nil {
		t.Fatalf("EndChosen() err=%v, want nil", err)
	}

	if len(writer.created) != 0 {
		t.Errorf("created = %v, want none for an edit", writer.created)
	}
	if len(writer.edits) != 1 || writer.edits[0].ID != "task-7" {
		t.Fatalf("edits = %v, want one edit of task-7", writer.edits)
	}
}

func TestEndBeforeStart(t *testing.T) {
	c, _, writer := newUnderTest()

	if err := c.Begin(Draft{Text: "Call bob"}); err != nil {
		t.Fatalf("Begin() err=%v, want nil", err)
	}
	c.StartChosen(time.Date(2024, 5, 10, 0, 0, 0, 0, dates.Reference))

	err := c.EndChosen(time.Date(2024, 5, 5, 0, 0, 0, 0, dates.Reference))
	if !errors.Is(err, ErrEndBeforeStart) {
		t.Fatalf("EndChosen() err=%v, want %v", err, ErrEndBeforeStart)
	}
	if c.State() != StateIdle {
		t.Errorf("State() = %v, want StateIdle after discard", c.State())
	}
	if len(writer.created)+len(writer.edits) != 0 {
		t.Errorf("store touched (%d creates, %d edits), want untouched", len(writer.created), len(writer.edits))
	}
}

func TestEndEqualsStartIsAllowed(t *testing.T) {
	c, _, writer := newUnderTest()

	if err := c.Begin(Draft{Text: "Same day"}); err != nil {
		t.Fatalf("Begin() err=%v, want nil", err)
	}
	c.StartChosen(time.Date(2024, 5, 10, 8, 0, 0, 0, dates.Reference))
	// later instant, same canonical day
	if err := c.EndChosen(time.Date(2024, 5, 10, 22, 0, 0, 0, dates.Reference)); err != nil {
		t.Fatalf("EndChosen() err=%v, want nil", err)
	}
	if len(writer.created) != 1 {
		t.Fatalf("created %d tasks, want 1", len(writer.created))
	}
}

func TestCancellation(t *testing.T) {
	t.Run("cancel at start prompt", func(t *testing.T) {
		c, _, writer := newUnderTest()
		if err := c.Begin(Draft{Text: "Buy milk"}); err != nil {
			t.Fatalf("Begin() err=%v, want nil", err)
		}

		c.StartCancelled()

		if c.State() != StateIdle {
			t.Errorf("State() = %v, want StateIdle", c.State())
		}
		if len(writer.created) != 0 {
			t.Errorf("created = %v, want none", writer.created)
		}
	})

	t.Run("cancel at end prompt", func(t *testing.T) {
		c, _, writer := newUnderTest()
		if err := c.Begin(Draft{Text: "Buy milk"}); err != nil {
			t.Fatalf("Begin() err=%v, want nil", err)
		}
		c.StartChosen(time.Date(2024, 5, 1, 0, 0, 0, 0, dates.Reference))

		c.EndCancelled()

		if c.State() != StateIdle {
			t.Errorf("State() = %v, want StateIdle", c.State())
		}
		if len(writer.created) != 0 {
			t.Errorf("created = %v, want none", writer.created)
		}
	})
}

func TestOutOfStateCallsAreNoOps(t *testing.T) {
	c, picker, writer := newUnderTest()
	when := time.Date(2024, 5, 1, 0, 0, 0, 0, dates.Reference)

	// all callbacks while idle
	c.StartChosen(when)
	c.StartCancelled()
	if err := c.EndChosen(when); err != nil {
		t.Errorf("EndChosen() err=%v while idle, want nil", err)
	}
	c.EndCancelled()

	if c.State() != StateIdle {
		t.Errorf("State() = %v, want StateIdle", c.State())
	}
	if len(picker.requests) != 0 || len(writer.created) != 0 {
		t.Errorf("picker or store touched while idle")
	}

	// end callbacks while awaiting start
	if err := c.Begin(Draft{Text: "Buy milk"}); err != nil {
		t.Fatalf("Begin() err=%v, want nil", err)
	}
	if err := c.EndChosen(when); err != nil {
		t.Errorf("EndChosen() err=%v while awaiting start, want nil", err)
	}
	c.EndCancelled()
	if c.State() != StateAwaitingStart {
		t.Errorf("State() = %v, want StateAwaitingStart", c.State())
	}

	// start callbacks while awaiting end
	c.StartChosen(when)
	c.StartChosen(when.AddDate(0, 1, 0))
	c.StartCancelled()
	if c.State() != StateAwaitingEnd {
		t.Errorf("State() = %v, want StateAwaitingEnd", c.State())
	}
}

func TestReentrantBeginReplacesDraft(t *testing.T) {
	c, picker, writer := newUnderTest()

	if err := c.Begin(Draft{Text: "first"}); err != nil {
		t.Fatalf("Begin() err=%v, want nil", err)
	}
	c.StartChosen(time.Date(2024, 5, 1, 0, 0, 0, 0, dates.Reference))

	// a second Begin while the first draft awaits its end date
	if err := c.Begin(Draft{Text: "second"}); err != nil {
		t.Fatalf("Begin() err=%v, want nil", err)
	}
	if c.State() != StateAwaitingStart {
		t.Errorf("State() = %v, want StateAwaitingStart", c.State())
	}
	if len(picker.requests) != 3 || picker.requests[2].purpose != PickStart {
		t.Fatalf("requests = %v, want a fresh PickStart", picker.requests)
	}

	c.StartChosen(time.Date(2024, 6, 1, 0, 0, 0, 0, dates.Reference))
	if err := c.EndChosen(time.Date(2024, 6, 2, 0, 0, 0, 0, dates.Reference)); err != nil {
		t.Fatalf("EndChosen() err=%v, want nil", err)
	}

	if len(writer.created) != 1 || writer.created[0].Text != "second" {
		t.Fatalf("created = %v, want only the second draft", writer.created)
	}
}
