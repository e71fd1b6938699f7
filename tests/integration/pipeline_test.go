// Package integration contains integration tests for the framestrip pipeline.
// They run the orchestrator over synthetic frame sources, exercising every
// stage and the real image writer without touching ffmpeg.
package integration

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/framestrip/pkg/adapters/ggrenderer"
	"github.com/user/framestrip/pkg/adapters/imagewriter"
	"github.com/user/framestrip/pkg/adapters/logger"
	"github.com/user/framestrip/pkg/adapters/osfilesystem"
	"github.com/user/framestrip/pkg/mocks"
	"github.com/user/framestrip/pkg/orchestrator"
	"github.com/user/framestrip/pkg/pipeline"
	"github.com/user/framestrip/pkg/ports"
	"github.com/user/framestrip/pkg/stages/composite"
	"github.com/user/framestrip/pkg/stages/matte"
)

// gradientSource produces frames whose red channel encodes the frame index,
// so the strip's frame order is observable in the output pixels.
func gradientSource(total int, width, height int) *mocks.FrameSource {
	cursor := 0
	src := &mocks.FrameSource{
		TotalFramesFunc: func() float64 { return float64(total) },
		SeekToFrameFunc: func(index int) error {
			cursor = index
			return nil
		},
		ReadFrameFunc: func() (image.Image, error) {
			img := image.NewRGBA(image.Rect(0, 0, width, height))
			fill := color.RGBA{R: uint8(cursor * 2), G: 128, B: 128, A: 255}
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					img.Set(x, y, fill)
				}
			}
			cursor++
			return img, nil
		},
	}
	return src
}

func newOrchestrator(src ports.FrameSource, writer ports.ImageWriter) *orchestrator.Orchestrator {
	log := logger.NewNoop()
	opener := &mocks.FrameSourceOpener{
		OpenFunc: func(path string) (ports.FrameSource, error) {
			return src, nil
		},
	}
	return orchestrator.New(
		opener,
		matte.NewStage(log),
		composite.NewStage(ggrenderer.New(), &mocks.ProgressReporter{}, log, 4),
		writer,
		log,
	)
}

// TestPipelineToDisk runs the whole pipeline and decodes the written PNG.
func TestPipelineToDisk(t *testing.T) {
	fs := osfilesystem.New()
	src := gradientSource(100, 32, 24)
	output := filepath.Join(t.TempDir(), "strip.png")

	width := 8
	cfg := orchestrator.DefaultConfig()
	cfg.Source = "synthetic"
	cfg.Destination = output
	cfg.SampleCount = 5
	cfg.FrameWidth = &width

	result, err := newOrchestrator(src, imagewriter.New(fs, 95)).Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Width != 40 || result.Height != 24 {
		t.Fatalf("expected 40x24 strip, got %dx%d", result.Width, result.Height)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 24 {
		t.Errorf("expected 40x24 on disk, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Red increases left to right with the sampled frame index.
	left, _, _, _ := img.At(2, 12).RGBA()
	right, _, _, _ := img.At(37, 12).RGBA()
	if left>>8 >= right>>8 {
		t.Errorf("expected increasing red across the strip, got %d then %d", left>>8, right>>8)
	}
}

// TestPipelineWithTrim runs letterboxed frames through matte detection and
// checks the bars are gone from the output.
func TestPipelineWithTrim(t *testing.T) {
	// 64x48 frames with 8 px black bars top and bottom
	src := &mocks.FrameSource{
		ReadFrameFunc: func() (image.Image, error) {
			img := image.NewRGBA(image.Rect(0, 0, 64, 48))
			for y := 8; y < 40; y++ {
				for x := 0; x < 64; x++ {
					img.Set(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
				}
			}
			return img, nil
		},
	}
	fs := osfilesystem.New()
	output := filepath.Join(t.TempDir(), "strip.png")

	width := 16
	cfg := orchestrator.DefaultConfig()
	cfg.Source = "synthetic"
	cfg.Destination = output
	cfg.SampleCount = 3
	cfg.FrameWidth = &width
	cfg.Trim = true

	result, err := newOrchestrator(src, imagewriter.New(fs, 95)).Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Matte != pipeline.MatteLetterbox {
		t.Fatalf("expected letterbox, got %v", result.Matte)
	}
	// Cropped height 32, 3 frames of 16 px wide
	if result.Width != 48 || result.Height != 32 {
		t.Fatalf("expected 48x32 strip, got %dx%d", result.Width, result.Height)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}

	// The top row belonged to the matte before trimming; now it is content.
	r, _, _, _ := img.At(24, 0).RGBA()
	if r>>8 < 100 {
		t.Errorf("expected bright content at the top after trimming, got %v", img.At(24, 0))
	}
}

// TestPipelineJPEGOutput writes a JPEG strip.
func TestPipelineJPEGOutput(t *testing.T) {
	fs := osfilesystem.New()
	src := gradientSource(60, 16, 16)
	output := filepath.Join(t.TempDir(), "strip.jpg")

	width := 4
	cfg := orchestrator.DefaultConfig()
	cfg.Source = "synthetic"
	cfg.Destination = output
	cfg.SampleCount = 4
	cfg.FrameWidth = &width

	if _, err := newOrchestrator(src, imagewriter.New(fs, 80)).Run(context.Background(), cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(output)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected a non-empty JPEG file")
	}
}
