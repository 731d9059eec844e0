package core

// Intersection records the nearest surface hit along a ray.
// T is always strictly positive; misses are reported through a separate
// boolean rather than a sentinel T value.
type Intersection struct {
	Point  Vec3    // World-space hit point
	Normal Vec3    // Outward unit normal at the hit point
	T      float64 // Hit distance along the ray
}
