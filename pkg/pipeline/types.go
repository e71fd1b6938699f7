package pipeline

import (
	"fmt"
	"image"

	"github.com/user/framestrip/pkg/ports"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height in pixels.
type Dimension struct {
	Width  int
	Height int
}

// Rect is an axis-aligned rectangle in source-pixel space with inclusive
// coordinates: the pixel at (Right, Bottom) is part of the rectangle.
// Invariant: Left <= Right and Top <= Bottom.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// FullFrame returns the degenerate rectangle covering a whole width x height
// frame.
func FullFrame(width, height int) Rect {
	return Rect{Left: 0, Top: 0, Right: width - 1, Bottom: height - 1}
}

// Width returns the number of columns covered by the rectangle.
func (r Rect) Width() int { return r.Right - r.Left + 1 }

// Height returns the number of rows covered by the rectangle.
func (r Rect) Height() int { return r.Bottom - r.Top + 1 }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Dimension {
	return Dimension{Width: r.Width(), Height: r.Height()}
}

// Axis is the direction along which sample frames are concatenated.
type Axis int

const (
	// AxisHorizontal stacks frames left to right.
	AxisHorizontal Axis = iota
	// AxisVertical stacks frames top to bottom.
	AxisVertical
)

// String returns the string representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseAxis parses a direction string into an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "horizontal":
		return AxisHorizontal, nil
	case "vertical":
		return AxisVertical, nil
	default:
		return AxisHorizontal, fmt.Errorf("%w: direction must be horizontal or vertical, got %q", ErrInvalidArgument, s)
	}
}

// =============================================================================
// Matte Stage Types
// =============================================================================

// MatteInput contains parameters for matte detection over a video source.
type MatteInput struct {
	// Source is the open decoding session to probe. The stage seeks it but
	// does not close it.
	Source ports.FrameSource

	// TotalFrames is the source's frame count from metadata.
	TotalFrames float64

	// ProbeCount is the number of evenly spaced frames to probe.
	ProbeCount int
}

// MatteResult contains the detected content bounds.
type MatteResult struct {
	// Bounds is the union of content boxes across all probe frames.
	Bounds Rect

	// Kind classifies the detected matting relative to the native frame.
	Kind MatteKind
}

// MatteKind classifies detected matting. Reporting only; cropping uses the
// bounds rectangle regardless of kind.
type MatteKind int

const (
	MatteNone MatteKind = iota
	MatteLetterbox
	MattePillarbox
	MatteBoth
)

// Letterboxed reports whether top/bottom bars were detected.
func (k MatteKind) Letterboxed() bool { return k == MatteLetterbox || k == MatteBoth }

// Pillarboxed reports whether side bars were detected.
func (k MatteKind) Pillarboxed() bool { return k == MattePillarbox || k == MatteBoth }

// String returns the string representation of the matte kind.
func (k MatteKind) String() string {
	switch k {
	case MatteNone:
		return "none"
	case MatteLetterbox:
		return "letterbox"
	case MattePillarbox:
		return "pillarbox"
	case MatteBoth:
		return "letterbox+pillarbox"
	default:
		return "unknown"
	}
}

// =============================================================================
// Composite Stage Types
// =============================================================================

// CompositeInput contains parameters for building the strip image.
type CompositeInput struct {
	// Source is the open decoding session to sample. The stage seeks it but
	// does not close it.
	Source ports.FrameSource

	// Indices are the frame indices to sample, in increasing order.
	Indices []int

	// TotalFrames is the source's frame count, for error reporting.
	TotalFrames float64

	// Bounds is the crop rectangle applied to every sampled frame.
	// Nil means no cropping.
	Bounds *Rect

	// FrameSize is the per-frame output size after crop and resize.
	FrameSize Dimension

	// Axis is the concatenation direction.
	Axis Axis
}

// CompositeResult contains the finished strip image.
type CompositeResult struct {
	Image image.Image
}
