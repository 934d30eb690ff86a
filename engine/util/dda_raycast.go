package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tileworld/engine/voxel"
)

// DDATraverse walks every unit cell the segment rayStart→rayEnd passes through, in order of distance from rayStart.
// tEnter and tExit are the distances along the segment at which the ray enters and leaves the cell.
// The walk ends when stopRay returns true or the end of the segment is reached; the return value reports whether stopRay ended it.
func DDATraverse(rayStart, rayEnd mgl32.Vec3, stopRay func(cell voxel.Int3, tEnter, tExit float64) bool) bool {
	// adapted from: https://github.com/fenomas/fast-voxel-raycast/blob/master/index.js
	cell := voxel.PositionToGridInt3(rayStart)
	ray := rayEnd.Sub(rayStart)
	maxRayLength := float64(ray.Len())
	if maxRayLength == 0 {
		return stopRay(cell, 0, 0)
	}

	origin := [3]float64{float64(rayStart.X()), float64(rayStart.Y()), float64(rayStart.Z())}
	rayDir := [3]float64{float64(ray.X()) / maxRayLength, float64(ray.Y()) / maxRayLength, float64(ray.Z()) / maxRayLength}
	gridPos := [3]int32{cell.X, cell.Y, cell.Z}

	var step [3]int32
	var tMax, tDelta [3]float64
	for axis := 0; axis < 3; axis++ {
		switch {
		case rayDir[axis] > 0:
			step[axis] = 1
			tDelta[axis] = 1 / rayDir[axis]
			tMax[axis] = (float64(gridPos[axis]+1) - origin[axis]) / rayDir[axis]
		case rayDir[axis] < 0:
			step[axis] = -1
			tDelta[axis] = -1 / rayDir[axis]
			tMax[axis] = (float64(gridPos[axis]) - origin[axis]) / rayDir[axis]
		default:
			tDelta[axis] = math.Inf(1)
			tMax[axis] = math.Inf(1)
		}
	}

	t := 0.0
	for {
		steppedIndex := 0
		if tMax[1] < tMax[steppedIndex] {
			steppedIndex = 1
		}
		if tMax[2] < tMax[steppedIndex] {
			steppedIndex = 2
		}
		tExit := math.Min(tMax[steppedIndex], maxRayLength)
		if stopRay(voxel.Int3{X: gridPos[0], Y: gridPos[1], Z: gridPos[2]}, t, tExit) {
			return true
		}
		if tMax[steppedIndex] >= maxRayLength {
			return false
		}
		gridPos[steppedIndex] += step[steppedIndex]
		t = tMax[steppedIndex]
		tMax[steppedIndex] += tDelta[steppedIndex]
	}
}

// DDARaycast returns the first cell along the segment for which isSolid holds.
func DDARaycast(rayStart, rayEnd mgl32.Vec3, isSolid func(cell voxel.Int3) bool) (voxel.Int3, float64, bool) {
	var hitCell voxel.Int3
	var hitDistance float64
	hit := DDATraverse(rayStart, rayEnd, func(cell voxel.Int3, tEnter, tExit float64) bool {
		if isSolid(cell) {
			hitCell, hitDistance = cell, tEnter
			return true
		}
		return false
	})
	return hitCell, hitDistance, hit
}
