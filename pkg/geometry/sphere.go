package geometry

import (
	"math"

	"github.com/dmw7/go-raycast-renderer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Intersect tests the ray against the sphere and returns the nearest hit
// with a strictly positive t, or false if the ray misses.
func (s *Sphere) Intersect(ray core.Ray) (core.Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients in half-b form: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.Intersection{}, false
	}

	// Prefer the near root; fall back to the far root when the near root is
	// behind the origin (ray starts inside the sphere).
	sqrtD := math.Sqrt(discriminant)
	t := (-halfB - sqrtD) / a
	if t <= 0 {
		t = (-halfB + sqrtD) / a
		if t <= 0 {
			// Both roots behind the origin
			return core.Intersection{}, false
		}
	}

	point := ray.At(t)

	// Dividing by the radius yields a unit normal exactly, since the radius
	// is the distance from center to surface.
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return core.Intersection{Point: point, Normal: normal, T: t}, true
}
