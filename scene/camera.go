package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/achilleasa/afterglow/types"
)

// The camera type controls the scene camera. It models a thin lens so
// that objects away from the focus plane get blurred.
type Camera struct {
	Position types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	// Vertical field of view in degrees.
	FOV float32

	// Lens aperture and distance to the plane in perfect focus.
	Aperture  float32
	FocusDist float32

	// Derived by SetupProjection.
	upperLeft  types.Vec3
	horizontal types.Vec3
	vertical   types.Vec3
	u, v, w    types.Vec3
	lensRadius float32
}

func NewCamera(fov float32) *Camera {
	return &Camera{
		Position:  types.Vec3{0, 0, 0},
		LookAt:    types.Vec3{0, 0, -1},
		Up:        types.Vec3{0, 1, 0},
		FOV:       fov,
		FocusDist: 1,
	}
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"Camera:\n  Eye    : (%3.3f, %3.3f, %3.3f)\n  LookAt : (%3.3f, %3.3f, %3.3f)\n  FOV    : %3.1f\n  Focus  : %3.3f (aperture %3.3f)",
		c.Position[0], c.Position[1], c.Position[2],
		c.LookAt[0], c.LookAt[1], c.LookAt[2],
		c.FOV, c.FocusDist, c.Aperture,
	)
}

// Setup the viewport for the given frame aspect ratio. This method must be
// called after changing any of the exported camera fields.
func (c *Camera) SetupProjection(aspect float32) {
	theta := float64(c.FOV) * math.Pi / 180.0
	viewportH := 2.0 * float32(math.Tan(theta/2.0))
	viewportW := aspect * viewportH

	c.w = c.Position.Sub(c.LookAt).Normalize()
	c.u = c.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	c.horizontal = c.u.Mul(c.FocusDist * viewportW)
	c.vertical = c.v.Mul(c.FocusDist * viewportH)
	c.upperLeft = c.Position.
		Sub(c.horizontal.Mul(0.5)).
		Add(c.vertical.Mul(0.5)).
		Sub(c.w.Mul(c.FocusDist))
	c.lensRadius = c.Aperture / 2
}

// Generate a ray through the viewport point (s, t) where (0, 0) is the
// top-left and (1, 1) the bottom-right corner of the frame.
func (c *Camera) Ray(s, t float32, rng *rand.Rand) types.Ray {
	origin := c.Position
	if c.lensRadius > 0 {
		dx, dy := randomInUnitDisk(rng)
		origin = origin.Add(c.u.Mul(dx * c.lensRadius)).Add(c.v.Mul(dy * c.lensRadius))
	}

	target := c.upperLeft.Add(c.horizontal.Mul(s)).Sub(c.vertical.Mul(t))
	return types.Ray{
		Origin: origin,
		Dir:    target.Sub(origin),
	}
}

func randomInUnitDisk(rng *rand.Rand) (float32, float32) {
	for {
		x := 2*rng.Float32() - 1
		y := 2*rng.Float32() - 1
		if x*x+y*y < 1 {
			return x, y
		}
	}
}
