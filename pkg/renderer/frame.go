package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/dmw7/go-raycast-renderer/pkg/core"
	"github.com/dmw7/go-raycast-renderer/pkg/scene"
)

// FrameStats contains statistics about a rendered frame
type FrameStats struct {
	TotalPixels int           // Total number of pixels rendered
	HitPixels   int           // Pixels whose primary ray struck a primitive
	MissPixels  int           // Pixels resolved to the sky gradient
	RenderTime  time.Duration // Wall-clock render time
}

// Renderer drives per-pixel shading for whole frames. The scene and camera
// are read-only during rendering, so frames may be evaluated sequentially or
// across a worker pool with identical results.
type Renderer struct {
	shader  *Shader
	width   int
	height  int
	workers int
}

// NewRenderer creates a renderer for the given scene and viewport
func NewRenderer(sc *scene.Scene, width, height int) (*Renderer, error) {
	camera, err := NewCamera(width, height)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		shader: NewShader(camera, sc),
		width:  width,
		height: height,
	}, nil
}

// SetWorkers sets the worker count for RenderFrameParallel.
// Values <= 0 select the CPU count.
func (r *Renderer) SetWorkers(n int) {
	r.workers = n
}

// RenderFrame renders a single frame sequentially and returns the image
// along with frame statistics.
func (r *Renderer) RenderFrame() (*image.RGBA, FrameStats) {
	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	hits := 0
	for y := 0; y < r.height; y++ {
		hits += r.renderRow(img, y)
	}

	return img, r.frameStats(hits, time.Since(startTime))
}

// renderRow shades one scanline into img and returns the number of pixels
// whose primary ray hit a primitive. Rows are disjoint, so concurrent calls
// for different y values are safe.
func (r *Renderer) renderRow(img *image.RGBA, y int) int {
	hits := 0
	for x := 0; x < r.width; x++ {
		colorVec, hit := r.shader.Shade(float64(x), float64(y))
		if hit {
			hits++
		}
		img.SetRGBA(x, y, vec3ToRGBA(colorVec))
	}
	return hits
}

func (r *Renderer) frameStats(hits int, elapsed time.Duration) FrameStats {
	total := r.width * r.height
	return FrameStats{
		TotalPixels: total,
		HitPixels:   hits,
		MissPixels:  total - hits,
		RenderTime:  elapsed,
	}
}

// vec3ToRGBA converts a linear color vector to an 8-bit RGBA pixel with
// alpha fixed at 1.
func vec3ToRGBA(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
