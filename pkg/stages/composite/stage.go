package composite

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/user/framestrip/pkg/pipeline"
	"github.com/user/framestrip/pkg/ports"
)

// Stage builds the strip image from a sequence of sampled frames.
//
// Decoding stays sequential on the single source cursor, but crop and resize
// of decoded frames run on a worker pool. Each worker writes its result into
// the slot matching the frame's sample index, so frame k always lands at
// strip position k regardless of completion order.
type Stage struct {
	renderer   ports.Renderer
	progress   ports.ProgressReporter
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new composite stage.
func NewStage(renderer ports.Renderer, progress ports.ProgressReporter, logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		renderer:   renderer,
		progress:   progress,
		logger:     logger.WithComponent("composite"),
		numWorkers: numWorkers,
	}
}

// decodeJob carries one decoded frame and its sample position.
type decodeJob struct {
	slot  int
	frame image.Image
}

// Execute samples every scheduled index and concatenates the transformed
// frames into one image.
func (s *Stage) Execute(ctx context.Context, input pipeline.CompositeInput) (pipeline.CompositeResult, error) {
	n := len(input.Indices)
	if n == 0 {
		return pipeline.CompositeResult{}, fmt.Errorf("%w: no frame indices scheduled", pipeline.ErrEmptySequence)
	}

	s.logger.Debug("Sampling %d frames with %d workers", n, s.numWorkers)

	transformed := make([]image.Image, n)
	jobs := make(chan decodeJob)

	var wg sync.WaitGroup
	for w := 0; w < s.numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				frame := job.frame
				if input.Bounds != nil {
					frame = Crop(frame, *input.Bounds)
				}
				transformed[job.slot] = s.renderer.ResizeImage(frame, input.FrameSize.Width, input.FrameSize.Height)
			}
		}()
	}

	s.progress.Start(n)
	err := s.decodeLoop(ctx, input, jobs)
	close(jobs)
	wg.Wait()
	s.progress.Finish()
	if err != nil {
		return pipeline.CompositeResult{}, err
	}

	strip, err := Concatenate(s.renderer, transformed, input.Axis)
	if err != nil {
		return pipeline.CompositeResult{}, err
	}

	s.logger.Debug("Strip assembled: %dx%d", strip.Bounds().Dx(), strip.Bounds().Dy())
	return pipeline.CompositeResult{Image: strip}, nil
}

// decodeLoop reads every scheduled frame in order and hands it to the worker
// pool.
func (s *Stage) decodeLoop(ctx context.Context, input pipeline.CompositeInput, jobs chan<- decodeJob) error {
	for k, frameIndex := range input.Indices {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := input.Source.SeekToFrame(frameIndex); err != nil {
			return fmt.Errorf("%w (frame %d out of %.0f): %v", pipeline.ErrReadFailure, frameIndex, input.TotalFrames, err)
		}
		frame, err := input.Source.ReadFrame()
		if err != nil {
			return fmt.Errorf("%w (frame %d out of %.0f): %v", pipeline.ErrReadFailure, frameIndex, input.TotalFrames, err)
		}

		jobs <- decodeJob{slot: k, frame: frame}
		s.progress.Report(float64(k+1) / float64(len(input.Indices)))
	}
	return nil
}
