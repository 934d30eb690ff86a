package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis aligned box between its Min and Max corners.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

func NewAABBFromMin(min, extents mgl32.Vec3) AABB {
	return AABB{Min: min, Max: min.Add(extents)}
}

// Contains treats the box as half open, like the cells of a grid.
func (a AABB) Contains(p mgl32.Vec3) bool {
	return p.X() >= a.Min.X() && p.X() < a.Max.X() &&
		p.Y() >= a.Min.Y() && p.Y() < a.Max.Y() &&
		p.Z() >= a.Min.Z() && p.Z() < a.Max.Z()
}

// ClipSegment returns the part of the segment from→to inside the box, using the slab method.
func (a AABB) ClipSegment(from, to mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3, bool) {
	tEnter, tExit := 0.0, 1.0
	dir := to.Sub(from)
	for axis := 0; axis < 3; axis++ {
		origin := float64(from[axis])
		delta := float64(dir[axis])
		lo, hi := float64(a.Min[axis]), float64(a.Max[axis])
		if delta == 0 {
			if origin < lo || origin >= hi {
				return from, to, false
			}
			continue
		}
		near := (lo - origin) / delta
		far := (hi - origin) / delta
		if near > far {
			near, far = far, near
		}
		tEnter = math.Max(tEnter, near)
		tExit = math.Min(tExit, far)
		if tEnter > tExit {
			return from, to, false
		}
	}
	return from.Add(dir.Mul(float32(tEnter))), from.Add(dir.Mul(float32(tExit))), true
}
