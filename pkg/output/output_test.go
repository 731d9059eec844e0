package output

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	src := testImage(16, 9)

	data, err := EncodePNG(src)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if decoded.Bounds() != src.Bounds() {
		t.Errorf("Expected bounds %v, got %v", src.Bounds(), decoded.Bounds())
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := SavePNG(path, testImage(8, 8)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Write into a missing directory fails loudly
	bad := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := SavePNG(bad, testImage(8, 8)); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestThumbnail_PreservesAspectRatio(t *testing.T) {
	thumb := Thumbnail(testImage(160, 90), 80)

	bounds := thumb.Bounds()
	if bounds.Dx() != 80 || bounds.Dy() != 45 {
		t.Errorf("Expected 80x45 thumbnail, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}
