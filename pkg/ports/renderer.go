package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts image processing operations.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas with the specified dimensions
	// and background color.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// ResizeImage resizes an image to the specified dimensions. The same
	// resampling kernel is used for every call, so frames resized within one
	// run concatenate without visible interpolation seams.
	ResizeImage(img image.Image, width, height int) image.Image
}

// Canvas provides drawing operations for compositing images.
type Canvas interface {
	// DrawImage draws an image at the specified position.
	DrawImage(img image.Image, x, y int)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// ImageWriter encodes and writes a finished image to disk.
type ImageWriter interface {
	// WriteImage writes img to path, choosing the encoding from the file
	// extension. Nothing is written when encoding fails.
	WriteImage(path string, img image.Image) error
}
