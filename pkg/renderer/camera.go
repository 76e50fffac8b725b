package renderer

import (
	"math"
	"math/rand"

	"github.com/prismrt/bandtracer/pkg/core"
)

// Camera generates primary rays through a thin lens. The shutter is open
// over [TimeBegin, TimeEnd] and each ray samples a uniform time inside it.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	timeBegin       float64
	timeEnd         float64
}

// NewCamera creates a camera looking from eye toward target. The vertical
// field of view is in degrees; aperture and focusDistance control the
// depth-of-field blur.
func NewCamera(eye, target, up core.Vec3, verticalFov, aspectRatio, aperture, focusDistance, timeBegin, timeEnd float64) *Camera {
	theta := verticalFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2.0 * halfHeight
	viewportWidth := aspectRatio * viewportHeight

	w := eye.Subtract(target).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := eye
	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      aperture / 2,
		timeBegin:       timeBegin,
		timeEnd:         timeEnd,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// The origin is jittered across the lens disk and the ray is stamped with a
// time drawn uniformly from the shutter window.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRayAt(origin, direction, c.sampleTime(random))
}

// sampleTime draws from the shutter window; a degenerate window is a fixed
// instant and consumes no randomness.
func (c *Camera) sampleTime(random *rand.Rand) float64 {
	if c.timeEnd <= c.timeBegin {
		return c.timeBegin
	}
	return c.timeBegin + random.Float64()*(c.timeEnd-c.timeBegin)
}
