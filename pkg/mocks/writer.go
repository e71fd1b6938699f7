package mocks

import (
	"image"

	"github.com/user/framestrip/pkg/ports"
)

// ImageWriter is a mock implementation of ports.ImageWriter.
type ImageWriter struct {
	WriteImageFunc func(path string, img image.Image) error

	// Written records the last image handed to WriteImage.
	Written image.Image
	// Path records the last destination path.
	Path string
}

func (m *ImageWriter) WriteImage(path string, img image.Image) error {
	m.Written = img
	m.Path = path
	if m.WriteImageFunc != nil {
		return m.WriteImageFunc(path, img)
	}
	return nil
}

var _ ports.ImageWriter = (*ImageWriter)(nil)
