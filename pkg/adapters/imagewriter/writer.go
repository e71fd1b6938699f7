// Package imagewriter writes finished strip images to disk.
package imagewriter

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/user/framestrip/pkg/ports"
)

// Writer implements ports.ImageWriter using the imaging library. The encoding
// is chosen from the destination file extension (png, jpg, gif, tif, bmp).
type Writer struct {
	fs      ports.FileSystem
	quality int
}

// New creates a new Writer. quality applies to JPEG output (1-100).
func New(fs ports.FileSystem, quality int) *Writer {
	return &Writer{fs: fs, quality: quality}
}

// WriteImage encodes img and writes it to path. The image is encoded into
// memory first, so an encoding failure leaves no partial file behind.
func (w *Writer) WriteImage(path string, img image.Image) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("unsupported output format for %q: %w", path, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(w.quality)); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	if err := w.fs.WriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}

var _ ports.ImageWriter = (*Writer)(nil)
