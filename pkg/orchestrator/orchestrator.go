// Package orchestrator coordinates the sampling pipeline: scheduling, matte
// detection, compositing and output writing.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/ideamans/go-l10n"

	"github.com/user/framestrip/pkg/pipeline"
	"github.com/user/framestrip/pkg/ports"
	"github.com/user/framestrip/pkg/stages/composite"
	"github.com/user/framestrip/pkg/stages/schedule"
)

// Config contains all configuration for one run.
type Config struct {
	// Input/output paths.
	Source      string
	Destination string

	// SampleCount is the number of frames in the strip. Zero means derive
	// the count from IntervalSec.
	SampleCount int

	// IntervalSec is the capture interval in seconds, used when SampleCount
	// is zero.
	IntervalSec float64

	// FrameWidth and FrameHeight are explicit per-frame output dimensions.
	// Nil means auto.
	FrameWidth  *int
	FrameHeight *int

	// Axis is the concatenation direction.
	Axis pipeline.Axis

	// Trim enables matte detection and cropping.
	Trim bool

	// ProbeCount is the number of frames probed for matting.
	ProbeCount int

	// Workers is the transform worker count. Zero means one per CPU.
	Workers int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Axis:       pipeline.AxisHorizontal,
		ProbeCount: 20,
	}
}

// RunResult summarizes a completed run.
type RunResult struct {
	// Width and Height are the strip image dimensions.
	Width  int
	Height int

	// FrameCount is the number of sampled frames in the strip.
	FrameCount int

	// Matte is the detected matting, MatteNone when trimming was off.
	Matte pipeline.MatteKind

	// Native is the source frame size before any cropping.
	Native pipeline.Dimension

	// Cropped is the content size after trimming, equal to Native when no
	// matting was found.
	Cropped pipeline.Dimension

	// FrameSize is the per-frame size in the strip.
	FrameSize pipeline.Dimension

	// TotalFrames and FPS describe the source video.
	TotalFrames float64
	FPS         float64
}

// Orchestrator wires the stages against the external decoder and writer.
type Orchestrator struct {
	opener         ports.FrameSourceOpener
	matteStage     pipeline.Stage[pipeline.MatteInput, pipeline.MatteResult]
	compositeStage pipeline.Stage[pipeline.CompositeInput, pipeline.CompositeResult]
	writer         ports.ImageWriter
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	opener ports.FrameSourceOpener,
	matteStage pipeline.Stage[pipeline.MatteInput, pipeline.MatteResult],
	compositeStage pipeline.Stage[pipeline.CompositeInput, pipeline.CompositeResult],
	writer ports.ImageWriter,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		opener:         opener,
		matteStage:     matteStage,
		compositeStage: compositeStage,
		writer:         writer,
		logger:         logger,
	}
}

// Run executes the complete pipeline. The source handle is released on every
// exit path; on failure no output file is written.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	src, err := o.opener.Open(config.Source)
	if err != nil {
		return RunResult{}, fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	totalFrames := src.TotalFrames()

	sampleCount := config.SampleCount
	if sampleCount == 0 {
		if config.IntervalSec <= 0 {
			return RunResult{}, fmt.Errorf("%w: either a frame count or a capture interval is required", pipeline.ErrInvalidArgument)
		}
		sampleCount, err = schedule.CountFromInterval(totalFrames, src.FrameRate(), config.IntervalSec)
		if err != nil {
			return RunResult{}, err
		}
	}

	indices, err := schedule.Indices(totalFrames, sampleCount)
	if err != nil {
		return RunResult{}, err
	}

	// First frame establishes the native dimensions.
	firstFrame, err := src.ReadFrame()
	if err != nil {
		return RunResult{}, fmt.Errorf("%w: %v", pipeline.ErrReadFailure, err)
	}
	native := pipeline.Dimension{
		Width:  firstFrame.Bounds().Dx(),
		Height: firstFrame.Bounds().Dy(),
	}

	kind := pipeline.MatteNone
	cropped := native
	var bounds *pipeline.Rect
	if config.Trim {
		o.logger.Info(l10n.T("Trimming enabled, checking matting..."))
		matte, err := o.matteStage.Execute(ctx, pipeline.MatteInput{
			Source:      src,
			TotalFrames: totalFrames,
			ProbeCount:  config.ProbeCount,
		})
		if err != nil {
			return RunResult{}, fmt.Errorf("matte detection: %w", err)
		}
		kind = matte.Kind
		cropped = matte.Bounds.Size()
		if kind != pipeline.MatteNone {
			b := matte.Bounds
			bounds = &b
		}
		o.reportMatte(kind, native, cropped)
	}

	frameSize, err := composite.ResolveFrameSize(config.Axis, kind, native, cropped, config.FrameWidth, config.FrameHeight)
	if err != nil {
		return RunResult{}, err
	}

	outWidth, outHeight := frameSize.Width, frameSize.Height
	if config.Axis == pipeline.AxisHorizontal {
		outWidth *= sampleCount
	} else {
		outHeight *= sampleCount
	}
	o.logger.Info(l10n.F("Visualizing %q - %d by %d, from %d frames", config.Source, outWidth, outHeight, sampleCount))

	strip, err := o.compositeStage.Execute(ctx, pipeline.CompositeInput{
		Source:      src,
		Indices:     indices,
		TotalFrames: totalFrames,
		Bounds:      bounds,
		FrameSize:   frameSize,
		Axis:        config.Axis,
	})
	if err != nil {
		return RunResult{}, fmt.Errorf("composite: %w", err)
	}

	if err := o.writer.WriteImage(config.Destination, strip.Image); err != nil {
		return RunResult{}, fmt.Errorf("%w: %v", pipeline.ErrWriteFailure, err)
	}
	o.logger.Info(l10n.F("Visualization saved to %s", config.Destination))

	return RunResult{
		Width:       strip.Image.Bounds().Dx(),
		Height:      strip.Image.Bounds().Dy(),
		FrameCount:  sampleCount,
		Matte:       kind,
		Native:      native,
		Cropped:     cropped,
		FrameSize:   frameSize,
		TotalFrames: totalFrames,
		FPS:         src.FrameRate(),
	}, nil
}

// reportMatte logs the detected matting the way the console output always
// described it.
func (o *Orchestrator) reportMatte(kind pipeline.MatteKind, native, cropped pipeline.Dimension) {
	switch kind {
	case pipeline.MatteNone:
		o.logger.Info(l10n.T("No matting detected"))
	case pipeline.MatteLetterbox:
		o.logger.Info(l10n.F("Letterboxing detected, cropping %d px from top and bottom", (native.Height-cropped.Height)/2))
	case pipeline.MattePillarbox:
		o.logger.Info(l10n.F("Pillarboxing detected, trimming %d px from the sides", (native.Width-cropped.Width)/2))
	case pipeline.MatteBoth:
		o.logger.Info(l10n.F("Multiple matting detected - cropping (%d, %d) to (%d, %d)", native.Width, native.Height, cropped.Width, cropped.Height))
	}
}
