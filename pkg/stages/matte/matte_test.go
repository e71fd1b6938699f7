package matte

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/user/framestrip/pkg/pipeline"
)

// letterboxedFrame returns a width x height frame with black bars of barSize
// rows at the top and bottom and white content between them.
func letterboxedFrame(width, height, barSize int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := barSize; y < height-barSize; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

// pillarboxedFrame returns a width x height frame with black bars of barSize
// columns on each side and white content between them.
func pillarboxedFrame(width, height, barSize int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := barSize; x < width-barSize; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func TestFrameBounds_Letterbox(t *testing.T) {
	img := letterboxedFrame(100, 60, 10)

	bounds, err := FrameBounds(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := pipeline.Rect{Left: 0, Top: 10, Right: 99, Bottom: 49}
	if bounds != want {
		t.Errorf("expected %+v, got %+v", want, bounds)
	}
}

func TestFrameBounds_Pillarbox(t *testing.T) {
	img := pillarboxedFrame(100, 60, 15)

	bounds, err := FrameBounds(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := pipeline.Rect{Left: 15, Top: 0, Right: 84, Bottom: 59}
	if bounds != want {
		t.Errorf("expected %+v, got %+v", want, bounds)
	}
}

func TestFrameBounds_NoMatte(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 30; x++ {
			img.Set(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}

	bounds, err := FrameBounds(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bounds != pipeline.FullFrame(30, 20) {
		t.Errorf("expected full frame, got %+v", bounds)
	}
}

func TestFrameBounds_Degenerate(t *testing.T) {
	black := image.NewRGBA(image.Rect(0, 0, 20, 20))

	_, err := FrameBounds(black)
	if !errors.Is(err, pipeline.ErrDegenerateFrame) {
		t.Errorf("all black: expected ErrDegenerateFrame, got %v", err)
	}
}

func TestFrameBounds_ThresholdBoundary(t *testing.T) {
	// One intensity tick per channel per pixel sums exactly to the
	// threshold, which still counts as matte.
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, color.RGBA{R: 1, G: 1, B: 1, A: 255})
		}
	}

	_, err := FrameBounds(img)
	if !errors.Is(err, pipeline.ErrDegenerateFrame) {
		t.Errorf("at-threshold frame: expected ErrDegenerateFrame, got %v", err)
	}
}

func TestFrameBounds_GenericImage(t *testing.T) {
	// Non-RGBA images go through the generic profile path.
	src := letterboxedFrame(100, 60, 10)
	gray := image.NewGray(src.Bounds())
	for y := 0; y < 60; y++ {
		for x := 0; x < 100; x++ {
			gray.Set(x, y, src.At(x, y))
		}
	}

	bounds, err := FrameBounds(gray)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := pipeline.Rect{Left: 0, Top: 10, Right: 99, Bottom: 49}
	if bounds != want {
		t.Errorf("expected %+v, got %+v", want, bounds)
	}
}

func TestUnion(t *testing.T) {
	a := pipeline.Rect{Left: 10, Top: 5, Right: 50, Bottom: 40}
	b := pipeline.Rect{Left: 0, Top: 20, Right: 30, Bottom: 60}
	full := pipeline.FullFrame(100, 80)

	want := pipeline.Rect{Left: 0, Top: 5, Right: 50, Bottom: 60}
	if got := Union(a, b); got != want {
		t.Errorf("union: expected %+v, got %+v", want, got)
	}

	// Commutative
	if Union(a, b) != Union(b, a) {
		t.Error("union is not commutative")
	}

	// Associative
	c := pipeline.Rect{Left: 5, Top: 0, Right: 60, Bottom: 30}
	if Union(Union(a, b), c) != Union(a, Union(b, c)) {
		t.Error("union is not associative")
	}

	// Identity on itself
	if Union(a, a) != a {
		t.Error("union with itself is not the identity")
	}

	// Full frame absorbs
	if Union(a, full) != full {
		t.Error("union with the full frame did not yield the full frame")
	}
}

func TestVideoBounds_UnionsAcrossFrames(t *testing.T) {
	// A letterboxed and a pillarboxed frame union to the full frame,
	// guarding against cropping content that is only sometimes matted.
	frames := []image.Image{
		letterboxedFrame(100, 60, 10),
		pillarboxedFrame(100, 60, 15),
	}

	bounds, err := VideoBounds(frames)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bounds != pipeline.FullFrame(100, 60) {
		t.Errorf("expected full frame, got %+v", bounds)
	}
}

func TestVideoBounds_SkipsBlackFrames(t *testing.T) {
	frames := []image.Image{
		image.NewRGBA(image.Rect(0, 0, 100, 60)), // transitional black frame
		letterboxedFrame(100, 60, 10),
		image.NewRGBA(image.Rect(0, 0, 100, 60)),
	}

	bounds, err := VideoBounds(frames)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := pipeline.Rect{Left: 0, Top: 10, Right: 99, Bottom: 49}
	if bounds != want {
		t.Errorf("expected %+v, got %+v", want, bounds)
	}
}

func TestVideoBounds_Errors(t *testing.T) {
	if _, err := VideoBounds(nil); !errors.Is(err, pipeline.ErrEmptySequence) {
		t.Errorf("no frames: expected ErrEmptySequence, got %v", err)
	}

	allBlack := []image.Image{
		image.NewRGBA(image.Rect(0, 0, 100, 60)),
		image.NewRGBA(image.Rect(0, 0, 100, 60)),
	}
	if _, err := VideoBounds(allBlack); !errors.Is(err, pipeline.ErrDegenerateFrame) {
		t.Errorf("all black: expected ErrDegenerateFrame, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	frame := pipeline.Dimension{Width: 100, Height: 60}

	tests := []struct {
		name   string
		bounds pipeline.Rect
		want   pipeline.MatteKind
	}{
		{"full frame", pipeline.FullFrame(100, 60), pipeline.MatteNone},
		{"letterbox", pipeline.Rect{Left: 0, Top: 10, Right: 99, Bottom: 49}, pipeline.MatteLetterbox},
		{"pillarbox", pipeline.Rect{Left: 15, Top: 0, Right: 84, Bottom: 59}, pipeline.MattePillarbox},
		{"both", pipeline.Rect{Left: 15, Top: 10, Right: 84, Bottom: 49}, pipeline.MatteBoth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.bounds, frame); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
