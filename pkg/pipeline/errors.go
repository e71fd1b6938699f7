package pipeline

import "errors"

// Sentinel errors for the failure conditions of a run. Every one of them is
// unrecoverable: callers wrap them with context via fmt.Errorf and %w, and the
// CLI surfaces the message and exits non-zero. There is no retry anywhere in
// this pipeline.
var (
	// ErrSourceNotFound indicates the video source could not be opened.
	ErrSourceNotFound = errors.New("source video not found")

	// ErrInvalidArgument indicates a bad sample count, dimension or axis,
	// or a sample count exceeding the available frames.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrReadFailure indicates a frame could not be decoded.
	ErrReadFailure = errors.New("cannot read from video source")

	// ErrDegenerateFrame indicates a matte probe frame with no detectable
	// content (fully black).
	ErrDegenerateFrame = errors.New("no content detected in frame")

	// ErrEmptySequence indicates an operation over zero frames.
	ErrEmptySequence = errors.New("empty frame sequence")

	// ErrDimensionMismatch indicates frames to concatenate differ on the
	// non-stacking axis. This is an internal invariant violation.
	ErrDimensionMismatch = errors.New("frame dimension mismatch")

	// ErrWriteFailure indicates the output image could not be encoded or
	// written.
	ErrWriteFailure = errors.New("cannot write output image")
)
