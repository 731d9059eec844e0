package renderer

import (
	"errors"
	"fmt"

	"github.com/dmw7/go-raycast-renderer/pkg/core"
)

// ErrInvalidViewport is returned for viewports smaller than 2x2, where the
// pixel normalization (division by dim-1) is undefined.
var ErrInvalidViewport = errors.New("renderer: invalid viewport")

// focusDistance is the pinhole focal length; the image plane sits one unit
// down the negative z-axis.
const focusDistance = 1.0

// Camera maps pixel coordinates to world-space primary rays for a pinhole
// camera at the origin looking down -z.
type Camera struct {
	width       int
	height      int
	aspectRatio float64
}

// NewCamera creates a camera for the given viewport dimensions.
func NewCamera(width, height int) (*Camera, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: dimensions must be at least 2x2, got %dx%d", ErrInvalidViewport, width, height)
	}
	return &Camera{
		width:       width,
		height:      height,
		aspectRatio: float64(width) / float64(height),
	}, nil
}

// Width returns the viewport width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the viewport height in pixels
func (c *Camera) Height() int { return c.height }

// GenerateRay maps a pixel position (device coordinates, origin top-left,
// y down) to a primary ray. Pixel (0,0) maps to the top-left of the image
// plane and (width-1, height-1) to the bottom-right. The returned direction
// is not normalized.
func (c *Camera) GenerateRay(px, py float64) core.Ray {
	// Normalize to [0,1], remap to [-1,1]
	u := 2.0*(px/float64(c.width-1)) - 1.0
	v := 2.0*(py/float64(c.height-1)) - 1.0

	// Stretch x by the aspect ratio and flip y so that up is positive
	direction := core.NewVec3(u*c.aspectRatio, -v, -focusDistance)

	return core.NewRay(core.NewVec3(0, 0, 0), direction)
}
