package tui

import (
	"time"

	"github.com/minhtran/todi/internal/collector"
)

// PromptPicker satisfies collector.DatePicker with the interactive prompt.
// Each request runs one prompt program and feeds the outcome straight back
// into the collector, so the whole create-or-edit flow completes within
// the collector's Begin call.
type PromptPicker struct {
	Collector *collector.Collector

	// Err records a prompt failure or the collector's validation verdict
	// for the command layer to report.
	Err error
}

// RequestDate runs the prompt for the given purpose
func (p *PromptPicker) RequestDate(purpose collector.Purpose, defaultValue time.Time) {
	chosen, ok, err := RunDatePicker(purpose, defaultValue)
	if err != nil {
		p.Err = err
		p.cancel(purpose)
		return
	}
	if !ok {
		p.cancel(purpose)
		return
	}

	switch purpose {
	case collector.PickStart:
		p.Collector.StartChosen(chosen)
	case collector.PickEnd:
		if err := p.Collector.EndChosen(chosen); err != nil {
			p.Err = err
		}
	}
}

func (p *PromptPicker) cancel(purpose collector.Purpose) {
	switch purpose {
	case collector.PickStart:
		p.Collector.StartCancelled()
	case collector.PickEnd:
		p.Collector.EndCancelled()
	}
}

// StaticPicker satisfies collector.DatePicker with dates supplied up front
// (the --start/--end flags). Flag dates go through the same collector as
// interactive picks, so validation and normalization are identical.
type StaticPicker struct {
	Collector *collector.Collector
	Start     time.Time
	End       time.Time

	Err error
}

// RequestDate answers immediately with the pre-supplied date
func (p *StaticPicker) RequestDate(purpose collector.Purpose, _ time.Time) {
	switch purpose {
	case collector.PickStart:
		p.Collector.StartChosen(p.Start)
	case collector.PickEnd:
		if err := p.Collector.EndChosen(p.End); err != nil {
			p.Err = err
		}
	}
}
