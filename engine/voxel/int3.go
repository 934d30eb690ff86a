package voxel

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Int3 is a discrete grid coordinate. Depending on context it addresses a tile of the map
// or a single voxel inside a tile's voxel map.
type Int3 struct {
	X, Y, Z int32
}

func (i Int3) Add(other Int3) Int3 {
	return Int3{i.X + other.X, i.Y + other.Y, i.Z + other.Z}
}

func (i Int3) Sub(tr Int3) Int3 {
	return Int3{i.X - tr.X, i.Y - tr.Y, i.Z - tr.Z}
}

func (i Int3) Mul(factor int32) Int3 {
	i.X *= factor
	i.Y *= factor
	i.Z *= factor
	return i
}

// MulComponents scales each axis by the matching axis of other.
func (i Int3) MulComponents(other Int3) Int3 {
	return Int3{i.X * other.X, i.Y * other.Y, i.Z * other.Z}
}

func (i Int3) ToVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X), float32(i.Y), float32(i.Z)}
}

// ToTileCenterVec3 returns the world position of the middle of the tile.
func (i Int3) ToTileCenterVec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(i.X) + 0.5, float32(i.Y) + 0.5, float32(i.Z) + 0.5}
}

func (i Int3) Volume() int {
	return int(i.X) * int(i.Y) * int(i.Z)
}

func (i Int3) ToString() string {
	return fmt.Sprintf("%d,%d,%d", i.X, i.Y, i.Z)
}

func (i Int3) String() string {
	return i.ToString()
}

// Less orders coordinates by z, then y, then x. It matches the storage order of the tile grid.
func (i Int3) Less(other Int3) bool {
	if i.Z != other.Z {
		return i.Z < other.Z
	}
	if i.Y != other.Y {
		return i.Y < other.Y
	}
	return i.X < other.X
}

// Within reports whether i lies inside the box [start, end). The end bound is exclusive on every axis.
func (i Int3) Within(start, end Int3) bool {
	return i.X >= start.X && i.X < end.X &&
		i.Y >= start.Y && i.Y < end.Y &&
		i.Z >= start.Z && i.Z < end.Z
}

func PositionToGridInt3(pos mgl32.Vec3) Int3 {
	return Int3{
		int32(math.Floor(float64(pos.X()))),
		int32(math.Floor(float64(pos.Y()))),
		int32(math.Floor(float64(pos.Z()))),
	}
}

func ManhattanDistance3(a, b Int3) int32 {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y) + Abs(a.Z-b.Z)
}

// ManhattanDistanceToBox returns the grid distance from pos to the nearest cell of [start, end).
func ManhattanDistanceToBox(pos, start, end Int3) int32 {
	return axisDistance(pos.X, start.X, end.X-1) + axisDistance(pos.Y, start.Y, end.Y-1) + axisDistance(pos.Z, start.Z, end.Z-1)
}

func axisDistance(v, lo, hi int32) int32 {
	if v < lo {
		return lo - v
	}
	if v > hi {
		return v - hi
	}
	return 0
}

func Abs(i int32) int32 {
	if i < 0 {
		return -i
	}
	return i
}
