package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/dmw7/go-raycast-renderer/pkg/core"
	"github.com/dmw7/go-raycast-renderer/pkg/geometry"
)

// ErrInvalidPrimitive is returned when a primitive fails construction-time
// validation (e.g. a sphere with a non-positive radius).
var ErrInvalidPrimitive = errors.New("scene: invalid primitive")

// Scene holds an ordered collection of spheres and the sky gradient colors.
// It is immutable during rendering; spheres are added up front and shared
// read-only by all pixel evaluations.
type Scene struct {
	spheres     []*geometry.Sphere
	topColor    core.Vec3 // Sky color at the zenith
	bottomColor core.Vec3 // Sky color at the horizon
}

// New creates a scene from the given spheres, validating each one.
// Insertion order is preserved and determines nearest-hit tie-breaking.
func New(spheres ...*geometry.Sphere) (*Scene, error) {
	s := &Scene{
		topColor:    core.NewVec3(0.3, 0.5, 1.0),
		bottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
	for _, sphere := range spheres {
		if err := s.Add(sphere); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends a sphere to the scene, rejecting degenerate radii.
func (s *Scene) Add(sphere *geometry.Sphere) error {
	if !(sphere.Radius > 0) {
		return fmt.Errorf("%w: sphere radius must be positive, got %v", ErrInvalidPrimitive, sphere.Radius)
	}
	s.spheres = append(s.spheres, sphere)
	return nil
}

// Spheres returns the ordered sphere list
func (s *Scene) Spheres() []*geometry.Sphere {
	return s.spheres
}

// BackgroundColors returns the sky gradient colors (zenith, horizon)
func (s *Scene) BackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.topColor, s.bottomColor
}

// NearestHit resolves the closest intersection across all spheres by linear
// scan. The replacement test is strict, so at exactly equal t the
// earliest-inserted sphere wins.
func (s *Scene) NearestHit(ray core.Ray) (core.Intersection, bool) {
	closest := core.Intersection{T: math.Inf(1)}
	found := false

	for _, sphere := range s.spheres {
		if hit, ok := sphere.Intersect(ray); ok && hit.T < closest.T {
			closest = hit
			found = true
		}
	}

	return closest, found
}
