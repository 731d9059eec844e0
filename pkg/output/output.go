// Package output handles encoding and delivery of rendered frames: PNG
// files, downscaled thumbnails, and optional upload to S3-compatible
// object storage.
package output

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/nfnt/resize"
)

// EncodePNG encodes an image to PNG bytes
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// SavePNG writes an image to disk as PNG
func SavePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to save PNG %s: %w", path, err)
	}
	return nil
}

// Thumbnail downscales the image to the given width, preserving aspect
// ratio, using bilinear interpolation.
func Thumbnail(img image.Image, width uint) image.Image {
	return resize.Resize(width, 0, img, resize.Bilinear)
}
