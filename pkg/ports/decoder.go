package ports

import (
	"image"
)

// FrameSource is one open decoding session on a video file.
// Seeking and reading are coupled to a single cursor: callers seek to a frame
// index, then read. Sessions are not safe for concurrent use.
type FrameSource interface {
	// TotalFrames returns the total frame count from container metadata.
	TotalFrames() float64

	// FrameRate returns the source frame rate in frames per second.
	FrameRate() float64

	// SeekToFrame positions the read cursor at the given frame index.
	SeekToFrame(index int) error

	// ReadFrame decodes the frame at the cursor and advances it.
	ReadFrame() (image.Image, error)

	// Close releases the decoding session. Safe to call more than once.
	Close() error
}

// FrameSourceOpener opens decoding sessions on video files.
type FrameSourceOpener interface {
	// Open starts a decoding session on the file at path.
	Open(path string) (FrameSource, error)
}
