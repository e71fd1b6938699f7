// Package vidiosource provides a FrameSource over the Vidio library, which
// decodes frames through an ffmpeg pipe.
package vidiosource

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	vidio "github.com/AlexEidt/Vidio"

	"github.com/user/framestrip/pkg/adapters/mp4probe"
	"github.com/user/framestrip/pkg/pipeline"
	"github.com/user/framestrip/pkg/ports"
)

// Opener implements ports.FrameSourceOpener.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open starts a decoding session on the video at path.
//
// For MP4-family containers the frame count and frame rate come from the
// container sample tables (mp4probe), which are exact where the demuxer's
// nb_frames hint can be missing. Other containers use the demuxer metadata,
// falling back to duration x fps when the container carries no frame count.
func (o *Opener) Open(path string) (ports.FrameSource, error) {
	video, err := vidio.NewVideo(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", pipeline.ErrSourceNotFound, path, err)
	}

	s := &Source{
		path:        path,
		video:       video,
		totalFrames: float64(video.Frames()),
		fps:         video.FPS(),
	}

	if isMP4(path) {
		if info, err := mp4probe.ProbeFile(path); err == nil {
			s.totalFrames = float64(info.FrameCount)
			if info.FPS > 0 {
				s.fps = info.FPS
			}
		}
	}
	if s.totalFrames <= 0 && s.fps > 0 {
		s.totalFrames = float64(int(video.Duration() * s.fps))
	}
	if s.totalFrames <= 0 {
		video.Close()
		return nil, fmt.Errorf("%w: %q: could not determine frame count", pipeline.ErrSourceNotFound, path)
	}

	return s, nil
}

var _ ports.FrameSourceOpener = (*Opener)(nil)

// Source is one open Vidio decoding session.
//
// The underlying ffmpeg pipe only moves forward, so seeking is emulated:
// forward seeks read and discard intervening frames, backward seeks reopen
// the pipe from the start. Sampling schedules are strictly increasing, so in
// practice a run reopens at most once (after the matte probe pass).
type Source struct {
	path        string
	video       *vidio.Video
	totalFrames float64
	fps         float64
	cursor      int
	closed      bool
}

// TotalFrames returns the total frame count from metadata.
func (s *Source) TotalFrames() float64 {
	return s.totalFrames
}

// FrameRate returns the frame rate in frames per second.
func (s *Source) FrameRate() float64 {
	return s.fps
}

// SeekToFrame positions the cursor at the given frame index.
func (s *Source) SeekToFrame(index int) error {
	if s.closed {
		return fmt.Errorf("source is closed")
	}
	if index < 0 {
		return fmt.Errorf("negative frame index %d", index)
	}

	if index < s.cursor {
		s.video.Close()
		video, err := vidio.NewVideo(s.path)
		if err != nil {
			return fmt.Errorf("reopen %q: %w", s.path, err)
		}
		s.video = video
		s.cursor = 0
	}

	for s.cursor < index {
		if !s.video.Read() {
			return fmt.Errorf("stream ended at frame %d while seeking to %d", s.cursor, index)
		}
		s.cursor++
	}
	return nil
}

// ReadFrame decodes the frame at the cursor and advances it.
func (s *Source) ReadFrame() (image.Image, error) {
	if s.closed {
		return nil, fmt.Errorf("source is closed")
	}
	if !s.video.Read() {
		return nil, fmt.Errorf("stream ended at frame %d", s.cursor)
	}
	s.cursor++

	return frameImage(s.video.FrameBuffer(), s.video.Width(), s.video.Height(), s.video.Depth()), nil
}

// Close releases the decoding session.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.video.Close()
	return nil
}

var _ ports.FrameSource = (*Source)(nil)

// frameImage copies a packed frame buffer into a standalone RGBA image.
// Vidio reuses its frame buffer between reads, so the pixels must be copied
// out before the next read.
func frameImage(buf []byte, width, height, depth int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	switch depth {
	case 4:
		copy(img.Pix, buf[:width*height*4])
	case 3:
		for i := 0; i < width*height; i++ {
			img.Pix[i*4] = buf[i*3]
			img.Pix[i*4+1] = buf[i*3+1]
			img.Pix[i*4+2] = buf[i*3+2]
			img.Pix[i*4+3] = 0xFF
		}
	}
	return img
}

func isMP4(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".m4v", ".mov":
		return true
	default:
		return false
	}
}
