// Package summarizer provides summary generation for visualization runs.
package summarizer

import "time"

// Summary contains all data collected during a visualization run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source video information
	Source SourceInfo

	// Sampling settings
	Sampling SamplingInfo

	// Matte detection results
	Matte MatteInfo

	// Output strip details
	Output OutputInfo
}

// SourceInfo describes the input video.
type SourceInfo struct {
	Path        string
	TotalFrames int
	FPS         float64
	DurationSec float64
	Width       int
	Height      int
}

// SamplingInfo describes how frames were sampled.
type SamplingInfo struct {
	FrameCount int
	Direction  string
}

// MatteInfo describes the matte detection outcome.
type MatteInfo struct {
	Enabled bool
	Kind    string

	// CroppedWidth and CroppedHeight are the content dimensions after
	// trimming, equal to the source dimensions when no matting was found.
	CroppedWidth  int
	CroppedHeight int
}

// OutputInfo describes the written strip image.
type OutputInfo struct {
	Path        string
	Width       int
	Height      int
	FrameWidth  int
	FrameHeight int
	FileSize    int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets source video information.
func (b *Builder) WithSource(source SourceInfo) *Builder {
	b.summary.Source = source
	return b
}

// WithSampling sets sampling information.
func (b *Builder) WithSampling(frameCount int, direction string) *Builder {
	b.summary.Sampling = SamplingInfo{
		FrameCount: frameCount,
		Direction:  direction,
	}
	return b
}

// WithMatte sets matte detection information.
func (b *Builder) WithMatte(matte MatteInfo) *Builder {
	b.summary.Matte = matte
	return b
}

// WithOutput sets output strip information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
