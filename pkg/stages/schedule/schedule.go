// Package schedule computes which frame indices to sample from a video.
package schedule

import (
	"fmt"
	"math"

	"github.com/user/framestrip/pkg/pipeline"
)

// Indices returns count evenly spaced frame indices in [0, totalFrames-1].
// The first and last samples sit half an interval away from the video
// boundaries.
//
// The walk keeps a running floating-point offset and truncates it at each
// step instead of deriving every index from a closed-form expression. The two
// approaches diverge by rounding at large frame counts, and prior outputs
// were produced by the walk, so the walk is kept.
func Indices(totalFrames float64, count int) ([]int, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: number of frames must be a positive integer, got %d", pipeline.ErrInvalidArgument, count)
	}
	if float64(count) > totalFrames {
		return nil, fmt.Errorf("%w: requested frame count %d larger than total available (%.0f)", pipeline.ErrInvalidArgument, count, totalFrames)
	}

	interval := totalFrames / float64(count)
	offset := interval / 2

	indices := make([]int, count)
	for k := range indices {
		indices[k] = int(offset)
		offset += interval
	}
	return indices, nil
}

// CountFromInterval returns the number of samples a capture interval of
// intervalSeconds yields over a video of totalFrames frames at fps.
func CountFromInterval(totalFrames, fps, intervalSeconds float64) (int, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("%w: frame rate must be positive, got %g", pipeline.ErrInvalidArgument, fps)
	}
	if intervalSeconds <= 0 {
		return 0, fmt.Errorf("%w: capture interval must be positive, got %g", pipeline.ErrInvalidArgument, intervalSeconds)
	}

	duration := totalFrames / fps
	return int(math.Round(duration / intervalSeconds)), nil
}
