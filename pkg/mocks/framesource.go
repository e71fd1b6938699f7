// Package mocks provides func-field mock implementations of the ports for
// tests.
package mocks

import (
	"image"
	"image/color"

	"github.com/user/framestrip/pkg/ports"
)

// FrameSource is a mock implementation of ports.FrameSource.
type FrameSource struct {
	TotalFramesFunc func() float64
	FrameRateFunc   func() float64
	SeekToFrameFunc func(index int) error
	ReadFrameFunc   func() (image.Image, error)
	CloseFunc       func() error

	// Closed records whether Close was called.
	Closed bool
}

func (m *FrameSource) TotalFrames() float64 {
	if m.TotalFramesFunc != nil {
		return m.TotalFramesFunc()
	}
	return 100
}

func (m *FrameSource) FrameRate() float64 {
	if m.FrameRateFunc != nil {
		return m.FrameRateFunc()
	}
	return 30
}

func (m *FrameSource) SeekToFrame(index int) error {
	if m.SeekToFrameFunc != nil {
		return m.SeekToFrameFunc(index)
	}
	return nil
}

func (m *FrameSource) ReadFrame() (image.Image, error) {
	if m.ReadFrameFunc != nil {
		return m.ReadFrameFunc()
	}
	return image.NewRGBA(image.Rect(0, 0, 10, 10)), nil
}

func (m *FrameSource) Close() error {
	m.Closed = true
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

var _ ports.FrameSource = (*FrameSource)(nil)

// FrameSourceOpener is a mock implementation of ports.FrameSourceOpener.
type FrameSourceOpener struct {
	OpenFunc func(path string) (ports.FrameSource, error)
}

func (m *FrameSourceOpener) Open(path string) (ports.FrameSource, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(path)
	}
	return &FrameSource{}, nil
}

var _ ports.FrameSourceOpener = (*FrameSourceOpener)(nil)

// NewUniformSource returns a mock source of total frames, each a solid fill
// of the given color at width x height.
func NewUniformSource(total int, width, height int, fill color.Color) *FrameSource {
	return &FrameSource{
		TotalFramesFunc: func() float64 { return float64(total) },
		ReadFrameFunc: func() (image.Image, error) {
			img := image.NewRGBA(image.Rect(0, 0, width, height))
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					img.Set(x, y, fill)
				}
			}
			return img, nil
		},
	}
}
