package voxel

import "math/bits"

// VoxelMap samples the occupancy of a single tile at sub-tile resolution.
// Bits are stored in the same z-major order the tile grid uses.
type VoxelMap struct {
	size   Int3
	data   []uint64
	centre Int3
}

func NewVoxelMap(size Int3) *VoxelMap {
	if size.X < 0 || size.Y < 0 || size.Z < 0 {
		size = Int3{}
	}
	return &VoxelMap{
		size:   size,
		data:   make([]uint64, (size.Volume()+63)/64),
		centre: Int3{size.X / 2, size.Y / 2, size.Z / 2},
	}
}

// NewFullVoxelMap returns a map of the given size with every voxel set.
func NewFullVoxelMap(size Int3) *VoxelMap {
	v := NewVoxelMap(size)
	v.Fill(true)
	return v
}

func (v *VoxelMap) Size() Int3 {
	return v.size
}

func (v *VoxelMap) Contains(pos Int3) bool {
	return pos.X >= 0 && pos.X < v.size.X && pos.Y >= 0 && pos.Y < v.size.Y && pos.Z >= 0 && pos.Z < v.size.Z
}

func (v *VoxelMap) index(pos Int3) int {
	return int(pos.Z)*int(v.size.X)*int(v.size.Y) + int(pos.Y)*int(v.size.X) + int(pos.X)
}

// GetBit reports whether the voxel is solid. Positions outside the map are empty.
func (v *VoxelMap) GetBit(pos Int3) bool {
	if v == nil || !v.Contains(pos) {
		return false
	}
	i := v.index(pos)
	return v.data[i/64]&(1<<(uint(i)%64)) != 0
}

func (v *VoxelMap) SetBit(pos Int3, solid bool) {
	if !v.Contains(pos) {
		return
	}
	i := v.index(pos)
	if solid {
		v.data[i/64] |= 1 << (uint(i) % 64)
	} else {
		v.data[i/64] &^= 1 << (uint(i) % 64)
	}
}

func (v *VoxelMap) Fill(solid bool) {
	for i := range v.data {
		v.data[i] = 0
	}
	if !solid {
		return
	}
	for z := int32(0); z < v.size.Z; z++ {
		for y := int32(0); y < v.size.Y; y++ {
			for x := int32(0); x < v.size.X; x++ {
				v.SetBit(Int3{x, y, z}, true)
			}
		}
	}
}

// FillBox sets every voxel in [start, end) to solid.
func (v *VoxelMap) FillBox(start, end Int3, solid bool) {
	for z := start.Z; z < end.Z; z++ {
		for y := start.Y; y < end.Y; y++ {
			for x := start.X; x < end.X; x++ {
				v.SetBit(Int3{x, y, z}, solid)
			}
		}
	}
}

func (v *VoxelMap) Count() int {
	n := 0
	for _, word := range v.data {
		n += bits.OnesCount64(word)
	}
	return n
}

func (v *VoxelMap) IsEmpty() bool {
	return v.Count() == 0
}

func (v *VoxelMap) IsFull() bool {
	return v.Count() == v.size.Volume()
}

// Centre returns the centre computed by the last CalculateCentre call, the geometric centre before that.
func (v *VoxelMap) Centre() Int3 {
	return v.centre
}

// CalculateCentre recomputes the centre of mass from the solid voxels.
func (v *VoxelMap) CalculateCentre() {
	var sum [3]int64
	count := int64(0)
	for z := int32(0); z < v.size.Z; z++ {
		for y := int32(0); y < v.size.Y; y++ {
			for x := int32(0); x < v.size.X; x++ {
				if v.GetBit(Int3{x, y, z}) {
					sum[0] += int64(x)
					sum[1] += int64(y)
					sum[2] += int64(z)
					count++
				}
			}
		}
	}
	if count == 0 {
		v.centre = Int3{v.size.X / 2, v.size.Y / 2, v.size.Z / 2}
		return
	}
	v.centre = Int3{int32(sum[0] / count), int32(sum[1] / count), int32(sum[2] / count)}
}

// TopHeight returns one above the highest solid layer, 0 for an empty map.
func (v *VoxelMap) TopHeight() int32 {
	if v == nil {
		return 0
	}
	for z := v.size.Z - 1; z >= 0; z-- {
		for y := int32(0); y < v.size.Y; y++ {
			for x := int32(0); x < v.size.X; x++ {
				if v.GetBit(Int3{x, y, z}) {
					return z + 1
				}
			}
		}
	}
	return 0
}
