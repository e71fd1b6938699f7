package ports

// ProgressReporter receives fractional progress of the sampling loop.
// Reports are fire-and-forget; implementations must not fail the run.
type ProgressReporter interface {
	// Start announces a run of total steps.
	Start(total int)

	// Report records fractional progress in [0.0, 1.0].
	Report(fraction float64)

	// Finish completes the report, releasing any console state.
	Finish()
}
