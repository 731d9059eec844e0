package renderer

import (
	"math"
	"testing"

	"github.com/dmw7/go-raycast-renderer/pkg/core"
	"github.com/dmw7/go-raycast-renderer/pkg/scene"
)

func newTestShader(t *testing.T, sc *scene.Scene, width, height int) *Shader {
	t.Helper()
	camera, err := NewCamera(width, height)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return NewShader(camera, sc)
}

func TestShader_Deterministic(t *testing.T) {
	shader := newTestShader(t, scene.NewDefaultScene(), 800, 450)

	for _, pos := range [][2]float64{{400, 225}, {0, 0}, {799, 449}, {123, 77}} {
		first, firstHit := shader.Shade(pos[0], pos[1])
		second, secondHit := shader.Shade(pos[0], pos[1])
		if first != second || firstHit != secondHit {
			t.Errorf("Pixel (%v,%v): repeated shading differed: %v/%t vs %v/%t",
				pos[0], pos[1], first, firstHit, second, secondHit)
		}
	}
}

func TestShader_CenterPixelHitsFrontSphere(t *testing.T) {
	// Default scene, 800x450: the screen-center ray hits the front sphere
	// nearly head-on, so the normal is ~(0,0,1) and the normal-visualization
	// color is ~(0.5,0.5,1).
	shader := newTestShader(t, scene.NewDefaultScene(), 800, 450)

	colorVec, hit := shader.Shade(400, 225)
	if !hit {
		t.Fatal("Expected center pixel to hit the front sphere")
	}

	expected := core.NewVec3(0.5, 0.5, 1.0)
	tolerance := 0.01
	if math.Abs(colorVec.X-expected.X) > tolerance ||
		math.Abs(colorVec.Y-expected.Y) > tolerance ||
		math.Abs(colorVec.Z-expected.Z) > tolerance {
		t.Errorf("Expected color ~%v, got %v", expected, colorVec)
	}
}

func TestShader_SkyGradient(t *testing.T) {
	shader := newTestShader(t, scene.NewDefaultScene(), 800, 450)

	// Top-center pixel: well above the horizon, no sphere in the path.
	topColor, topHit := shader.Shade(399.5, 0)
	if topHit {
		t.Fatal("Expected top-center pixel to miss all spheres")
	}

	// Left edge at the horizon row: the ray has y=0 and misses both spheres.
	horizonColor, horizonHit := shader.Shade(0, 224.5)
	if horizonHit {
		t.Fatal("Expected horizon-edge pixel to miss all spheres")
	}

	// The gradient runs white (horizon) to sky blue (zenith): red and green
	// drop toward the top, blue stays saturated.
	if topColor.X >= horizonColor.X || topColor.Y >= horizonColor.Y {
		t.Errorf("Expected sky to get bluer toward the top: top %v, horizon %v", topColor, horizonColor)
	}
	if topColor.Z < 0.99 {
		t.Errorf("Expected saturated blue channel near the top, got %v", topColor)
	}

	// Horizon ray direction is horizontal, so the blend sits at t=0.5
	// exactly: halfway between white and sky blue.
	expected := core.NewVec3(0.65, 0.75, 1.0)
	tolerance := 1e-9
	if math.Abs(horizonColor.X-expected.X) > tolerance ||
		math.Abs(horizonColor.Y-expected.Y) > tolerance ||
		math.Abs(horizonColor.Z-expected.Z) > tolerance {
		t.Errorf("Expected horizon color %v, got %v", expected, horizonColor)
	}
}

func TestShader_GroundSphereFillsLowerHalf(t *testing.T) {
	shader := newTestShader(t, scene.NewDefaultScene(), 800, 450)

	// A pixel aimed below the horizon toward the ground sphere
	_, hit := shader.Shade(200, 430)
	if !hit {
		t.Error("Expected lower-area pixel to hit the ground sphere")
	}
}
