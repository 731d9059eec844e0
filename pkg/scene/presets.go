package scene

import (
	"github.com/dmw7/go-raycast-renderer/pkg/core"
	"github.com/dmw7/go-raycast-renderer/pkg/geometry"
)

// NewDefaultScene creates the standard two-sphere scene: a unit-ish sphere
// in front of the camera and a large ground sphere below it.
func NewDefaultScene() *Scene {
	// Radii are positive constants, so validation cannot fail here.
	s, _ := New(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100),
	)
	return s
}

// NewRowScene creates a row of small spheres at increasing depth, useful for
// eyeballing depth ordering.
func NewRowScene() *Scene {
	s, _ := New(
		geometry.NewSphere(core.NewVec3(-1.2, 0, -2), 0.5),
		geometry.NewSphere(core.NewVec3(0, 0, -1.5), 0.5),
		geometry.NewSphere(core.NewVec3(1.2, 0, -2.5), 0.5),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100),
	)
	return s
}
