package renderer

import (
	"github.com/dmw7/go-raycast-renderer/pkg/core"
	"github.com/dmw7/go-raycast-renderer/pkg/scene"
)

// Shader resolves a pixel position to a color: primary ray generation,
// nearest-hit resolution, then either normal visualization or the sky
// gradient. It holds no mutable state and is safe for concurrent use.
type Shader struct {
	camera *Camera
	scene  *scene.Scene
}

// NewShader creates a shader over the given camera and scene
func NewShader(camera *Camera, sc *scene.Scene) *Shader {
	return &Shader{camera: camera, scene: sc}
}

// Shade computes the color for the given pixel position and reports whether
// a primitive was struck. Hit colors visualize the surface normal remapped
// from [-1,1] into [0,1]; misses resolve to the sky gradient.
func (s *Shader) Shade(px, py float64) (core.Vec3, bool) {
	ray := s.camera.GenerateRay(px, py)

	if hit, ok := s.scene.NearestHit(ray); ok {
		return hit.Normal.Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5)), true
	}

	return s.skyGradient(ray), false
}

// skyGradient returns a vertical blend between the horizon and zenith colors
// driven by the normalized ray direction's y component.
func (s *Shader) skyGradient(ray core.Ray) core.Vec3 {
	topColor, bottomColor := s.scene.BackgroundColors()

	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}
