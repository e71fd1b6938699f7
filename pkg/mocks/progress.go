package mocks

import (
	"github.com/user/framestrip/pkg/ports"
)

// ProgressReporter is a mock implementation of ports.ProgressReporter that
// records every reported fraction.
type ProgressReporter struct {
	Total     int
	Fractions []float64
	Finished  bool
}

func (m *ProgressReporter) Start(total int) {
	m.Total = total
}

func (m *ProgressReporter) Report(fraction float64) {
	m.Fractions = append(m.Fractions, fraction)
}

func (m *ProgressReporter) Finish() {
	m.Finished = true
}

var _ ports.ProgressReporter = (*ProgressReporter)(nil)
