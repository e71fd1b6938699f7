// Package matte detects hard black mattes (letterboxing and pillarboxing)
// around video content.
package matte

import (
	"fmt"
	"image"

	"github.com/user/framestrip/pkg/pipeline"
)

// FrameBounds returns the tightest axis-aligned rectangle containing all
// non-matte content in one frame.
//
// Each row's and column's channel values are summed into an intensity
// profile. A row is matte when its sum is at or below width*3, a column when
// at or below height*3: a threshold that tolerates one tick of intensity per
// channel per pixel. The bounds are the first and last profile entries above
// threshold, inclusive.
//
// Returns pipeline.ErrDegenerateFrame when nothing exceeds the threshold,
// which means the frame is fully black.
func FrameBounds(img image.Image) (pipeline.Rect, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rowSums := make([]uint64, height)
	colSums := make([]uint64, width)

	switch src := img.(type) {
	case *image.RGBA:
		sumProfilesRGBA(src, rowSums, colSums)
	default:
		sumProfiles(img, rowSums, colSums)
	}

	top, bottom := profileEdges(rowSums, uint64(width)*3)
	left, right := profileEdges(colSums, uint64(height)*3)

	if top < 0 || left < 0 {
		return pipeline.Rect{}, fmt.Errorf("%w: %dx%d frame is fully black", pipeline.ErrDegenerateFrame, width, height)
	}

	return pipeline.Rect{Left: left, Top: top, Right: right, Bottom: bottom}, nil
}

// Union returns the smallest rectangle containing both a and b.
// Commutative and associative; unioning a rectangle with itself is the
// identity, and the full-frame rectangle absorbs everything.
func Union(a, b pipeline.Rect) pipeline.Rect {
	return pipeline.Rect{
		Left:   min(a.Left, b.Left),
		Top:    min(a.Top, b.Top),
		Right:  max(a.Right, b.Right),
		Bottom: max(a.Bottom, b.Bottom),
	}
}

// VideoBounds folds FrameBounds over every probe frame with Union.
//
// Fully black probe frames contribute no bounds and are skipped, so a fade to
// black in the middle of the video does not abort trimming. The union guards
// the other direction too: a single unmatted frame widens the box to full
// frame, preventing false-positive cropping.
//
// Returns pipeline.ErrEmptySequence on zero frames and
// pipeline.ErrDegenerateFrame when every probe frame is black.
func VideoBounds(frames []image.Image) (pipeline.Rect, error) {
	if len(frames) == 0 {
		return pipeline.Rect{}, fmt.Errorf("%w: no probe frames", pipeline.ErrEmptySequence)
	}

	var acc *pipeline.Rect
	for _, frame := range frames {
		fb, err := FrameBounds(frame)
		if err != nil {
			continue
		}
		if acc == nil {
			acc = &fb
		} else {
			u := Union(*acc, fb)
			acc = &u
		}
	}
	if acc == nil {
		return pipeline.Rect{}, fmt.Errorf("%w: all %d probe frames are fully black", pipeline.ErrDegenerateFrame, len(frames))
	}
	return *acc, nil
}

// Classify compares detected content bounds against the native frame size.
// Reporting only; cropping uses the rectangle regardless.
func Classify(bounds pipeline.Rect, frame pipeline.Dimension) pipeline.MatteKind {
	letterboxed := bounds.Height() != frame.Height
	pillarboxed := bounds.Width() != frame.Width

	switch {
	case letterboxed && pillarboxed:
		return pipeline.MatteBoth
	case letterboxed:
		return pipeline.MatteLetterbox
	case pillarboxed:
		return pipeline.MattePillarbox
	default:
		return pipeline.MatteNone
	}
}

// profileEdges returns the first and last index whose value exceeds the
// threshold, or (-1, -1) when none does.
func profileEdges(profile []uint64, threshold uint64) (first, last int) {
	first, last = -1, -1
	for i, v := range profile {
		if v > threshold {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	return first, last
}

// sumProfilesRGBA accumulates row and column channel sums over the packed
// pixel buffer, skipping alpha.
func sumProfilesRGBA(img *image.RGBA, rowSums, colSums []uint64) {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		for x := 0; x < b.Dx(); x++ {
			px := uint64(row[x*4]) + uint64(row[x*4+1]) + uint64(row[x*4+2])
			rowSums[y] += px
			colSums[x] += px
		}
	}
}

// sumProfiles is the generic fallback for non-RGBA images. Channel values are
// scaled down to 8 bits so thresholds stay comparable.
func sumProfiles(img image.Image, rowSums, colSums []uint64) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			px := uint64(r>>8) + uint64(g>>8) + uint64(bl>>8)
			rowSums[y-b.Min.Y] += px
			colSums[x-b.Min.X] += px
		}
	}
}
