// Package composite crops, resizes and concatenates sample frames into the
// strip image.
package composite

import (
	"fmt"
	"image"
	"image/color"

	"github.com/user/framestrip/pkg/pipeline"
	"github.com/user/framestrip/pkg/ports"
)

// DefaultStackSize is the per-frame size along the stacking axis when neither
// an explicit value nor a source-derived value applies, in pixels.
const DefaultStackSize = 1

// Crop slices the inclusive bounds rectangle out of the frame.
//
// The returned image has its origin at (0, 0) regardless of the source
// bounds, which keeps it compatible with drawing contexts that assume a zero
// origin. Bounds outside the frame are a programmer error; callers guarantee
// the rectangle lies within the image.
func Crop(img image.Image, bounds pipeline.Rect) image.Image {
	srcMin := img.Bounds().Min
	width := bounds.Width()
	height := bounds.Height()

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			out.Set(dx, dy, img.At(srcMin.X+bounds.Left+dx, srcMin.Y+bounds.Top+dy))
		}
	}
	return out
}

// Concatenate stacks the frames along the axis in input order.
//
// Every frame must match the first frame's dimension on the non-stacking
// axis; a mismatch returns pipeline.ErrDimensionMismatch. Zero frames return
// pipeline.ErrEmptySequence.
func Concatenate(renderer ports.Renderer, frames []image.Image, axis pipeline.Axis) (image.Image, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: nothing to concatenate", pipeline.ErrEmptySequence)
	}

	first := frames[0].Bounds()
	outWidth := first.Dx()
	outHeight := first.Dy()
	for i, frame := range frames[1:] {
		b := frame.Bounds()
		switch axis {
		case pipeline.AxisHorizontal:
			if b.Dy() != first.Dy() {
				return nil, fmt.Errorf("%w: frame %d is %d px tall, want %d", pipeline.ErrDimensionMismatch, i+1, b.Dy(), first.Dy())
			}
			outWidth += b.Dx()
		case pipeline.AxisVertical:
			if b.Dx() != first.Dx() {
				return nil, fmt.Errorf("%w: frame %d is %d px wide, want %d", pipeline.ErrDimensionMismatch, i+1, b.Dx(), first.Dx())
			}
			outHeight += b.Dy()
		default:
			return nil, fmt.Errorf("%w: unknown axis %d", pipeline.ErrInvalidArgument, axis)
		}
	}

	canvas := renderer.CreateCanvas(outWidth, outHeight, color.Black)
	offset := 0
	for _, frame := range frames {
		if axis == pipeline.AxisHorizontal {
			canvas.DrawImage(frame, offset, 0)
			offset += frame.Bounds().Dx()
		} else {
			canvas.DrawImage(frame, 0, offset)
			offset += frame.Bounds().Dy()
		}
	}
	return canvas.ToImage(), nil
}

// ResolveFrameSize resolves the per-frame output dimensions before the
// sampling loop.
//
// An explicit value (non-nil) wins and must be a positive integer. An auto
// dimension resolves to the source dimension when the stacking axis leaves it
// unchanged, preferring the matte-cropped dimension when that kind of matting
// was detected. On the stacking axis itself, auto falls back to
// DefaultStackSize.
func ResolveFrameSize(
	axis pipeline.Axis,
	kind pipeline.MatteKind,
	native pipeline.Dimension,
	cropped pipeline.Dimension,
	explicitWidth, explicitHeight *int,
) (pipeline.Dimension, error) {
	if axis != pipeline.AxisHorizontal && axis != pipeline.AxisVertical {
		return pipeline.Dimension{}, fmt.Errorf("%w: unknown axis %d", pipeline.ErrInvalidArgument, axis)
	}

	var out pipeline.Dimension

	switch {
	case explicitHeight != nil:
		if *explicitHeight < 1 {
			return pipeline.Dimension{}, fmt.Errorf("%w: frame height must be a positive integer, got %d", pipeline.ErrInvalidArgument, *explicitHeight)
		}
		out.Height = *explicitHeight
	case axis == pipeline.AxisHorizontal:
		if kind.Letterboxed() {
			out.Height = cropped.Height
		} else {
			out.Height = native.Height
		}
	default:
		out.Height = DefaultStackSize
	}

	switch {
	case explicitWidth != nil:
		if *explicitWidth < 1 {
			return pipeline.Dimension{}, fmt.Errorf("%w: frame width must be a positive integer, got %d", pipeline.ErrInvalidArgument, *explicitWidth)
		}
		out.Width = *explicitWidth
	case axis == pipeline.AxisVertical:
		if kind.Pillarboxed() {
			out.Width = cropped.Width
		} else {
			out.Width = native.Width
		}
	default:
		out.Width = DefaultStackSize
	}

	return out, nil
}
