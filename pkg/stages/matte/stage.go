package matte

import (
	"context"
	"fmt"
	"image"

	"github.com/user/framestrip/pkg/pipeline"
	"github.com/user/framestrip/pkg/ports"
	"github.com/user/framestrip/pkg/stages/schedule"
)

// Stage probes a video source for matting and derives one crop rectangle.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new matte detection stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("matte"),
	}
}

// Execute decodes evenly spaced probe frames from the source and folds their
// content bounds into a single rectangle.
func (s *Stage) Execute(ctx context.Context, input pipeline.MatteInput) (pipeline.MatteResult, error) {
	probeCount := input.ProbeCount
	if float64(probeCount) > input.TotalFrames {
		// Short videos get one probe per frame.
		probeCount = int(input.TotalFrames)
	}

	indices, err := schedule.Indices(input.TotalFrames, probeCount)
	if err != nil {
		return pipeline.MatteResult{}, err
	}

	s.logger.Debug("Probing %d frames for matting", len(indices))

	frames := make([]image.Image, 0, len(indices))
	var native pipeline.Dimension
	for _, idx := range indices {
		select {
		case <-ctx.Done():
			return pipeline.MatteResult{}, ctx.Err()
		default:
		}

		if err := input.Source.SeekToFrame(idx); err != nil {
			return pipeline.MatteResult{}, fmt.Errorf("%w (probe frame %d out of %.0f): %v", pipeline.ErrReadFailure, idx, input.TotalFrames, err)
		}
		frame, err := input.Source.ReadFrame()
		if err != nil {
			return pipeline.MatteResult{}, fmt.Errorf("%w (probe frame %d out of %.0f): %v", pipeline.ErrReadFailure, idx, input.TotalFrames, err)
		}
		if native == (pipeline.Dimension{}) {
			native = pipeline.Dimension{Width: frame.Bounds().Dx(), Height: frame.Bounds().Dy()}
		}
		frames = append(frames, frame)
	}

	bounds, err := VideoBounds(frames)
	if err != nil {
		return pipeline.MatteResult{}, err
	}

	kind := Classify(bounds, native)
	s.logger.Debug("Detected %s, content bounds (%d, %d) to (%d, %d)", kind, bounds.Left, bounds.Top, bounds.Right, bounds.Bottom)

	return pipeline.MatteResult{Bounds: bounds, Kind: kind}, nil
}
