// Package termprogress renders sampling progress as a console progress bar.
package termprogress

import (
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/user/framestrip/pkg/ports"
)

// barWidth matches the 25-character bar of the classic console display.
const barWidth = 25

// Reporter implements ports.ProgressReporter with a terminal progress bar.
type Reporter struct {
	bar   *progressbar.ProgressBar
	total int
}

// New creates a new Reporter.
func New() *Reporter {
	return &Reporter{}
}

// Start begins a progress bar of total steps.
func (r *Reporter) Start(total int) {
	r.total = total
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Processing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(barWidth),
		progressbar.OptionShowCount(),
	)
}

// Report maps the fraction onto completed steps.
func (r *Reporter) Report(fraction float64) {
	if r.bar == nil {
		return
	}
	// Fire and forget: a failing console write must not fail the run.
	_ = r.bar.Set(int(fraction * float64(r.total)))
}

// Finish completes the bar and moves to a new line.
func (r *Reporter) Finish() {
	if r.bar == nil {
		return
	}
	_ = r.bar.Finish()
	r.bar = nil
}

var _ ports.ProgressReporter = (*Reporter)(nil)

// Noop discards all progress reports. Used for quiet mode.
type Noop struct{}

// NewNoop creates a new Noop reporter.
func NewNoop() *Noop {
	return &Noop{}
}

// Start does nothing.
func (n *Noop) Start(total int) {}

// Report does nothing.
func (n *Noop) Report(fraction float64) {}

// Finish does nothing.
func (n *Noop) Finish() {}

var _ ports.ProgressReporter = (*Noop)(nil)
