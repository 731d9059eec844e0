package renderer

import (
	"bytes"
	"testing"

	"github.com/dmw7/go-raycast-renderer/pkg/scene"
)

func TestRenderer_RejectsDegenerateViewport(t *testing.T) {
	if _, err := NewRenderer(scene.NewDefaultScene(), 1, 450); err == nil {
		t.Error("Expected error for 1-pixel-wide viewport")
	}
}

func TestRenderer_Stats(t *testing.T) {
	rt, err := NewRenderer(scene.NewDefaultScene(), 160, 90)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	_, stats := rt.RenderFrame()

	if stats.TotalPixels != 160*90 {
		t.Errorf("Expected %d total pixels, got %d", 160*90, stats.TotalPixels)
	}
	if stats.HitPixels+stats.MissPixels != stats.TotalPixels {
		t.Errorf("Hit (%d) + miss (%d) != total (%d)",
			stats.HitPixels, stats.MissPixels, stats.TotalPixels)
	}
	// The default scene has both spheres and open sky in view
	if stats.HitPixels == 0 {
		t.Error("Expected some hit pixels")
	}
	if stats.MissPixels == 0 {
		t.Error("Expected some sky pixels")
	}
}

func TestRenderer_ParallelMatchesSequential(t *testing.T) {
	rt, err := NewRenderer(scene.NewDefaultScene(), 160, 90)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	rt.SetWorkers(4)

	seqImg, seqStats := rt.RenderFrame()
	parImg, parStats := rt.RenderFrameParallel()

	if !bytes.Equal(seqImg.Pix, parImg.Pix) {
		t.Error("Parallel render differs from sequential render")
	}
	if seqStats.HitPixels != parStats.HitPixels {
		t.Errorf("Hit counts differ: sequential %d, parallel %d",
			seqStats.HitPixels, parStats.HitPixels)
	}
}

func TestRenderer_AlphaIsOpaque(t *testing.T) {
	rt, err := NewRenderer(scene.NewDefaultScene(), 80, 45)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	img, _ := rt.RenderFrame()
	for _, p := range [][2]int{{0, 0}, {40, 22}, {79, 44}} {
		if a := img.RGBAAt(p[0], p[1]).A; a != 255 {
			t.Errorf("Pixel (%d,%d): expected alpha 255, got %d", p[0], p[1], a)
		}
	}
}

func TestRenderer_EndToEndCenterPixel(t *testing.T) {
	// Default scene at 800x450: the center pixel lands on the front sphere
	// with normal ~(0,0,1), giving an ~(0.5,0.5,1.0) pixel.
	rt, err := NewRenderer(scene.NewDefaultScene(), 800, 450)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	img, _ := rt.RenderFrame()
	px := img.RGBAAt(400, 225)

	within := func(got uint8, want, tol int) bool {
		d := int(got) - want
		return d >= -tol && d <= tol
	}
	if !within(px.R, 127, 3) || !within(px.G, 127, 3) || !within(px.B, 255, 3) || px.A != 255 {
		t.Errorf("Expected center pixel ~(127,127,255,255), got %v", px)
	}
}
