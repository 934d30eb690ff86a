package util

import (
	"github.com/go-gl/mathgl/mgl32"
)

func MulComponents(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

func DivComponents(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() / b.X(), a.Y() / b.Y(), a.Z() / b.Z()}
}

// FloorDiv divides rounding towards negative infinity, so voxel -1 belongs to tile -1.
func FloorDiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func Mix(a, b, factor float32) float32 {
	return a*(1-factor) + factor*b
}
