package voxel

import (
	"compress/gzip"
	"io"

	"github.com/Tnze/go-mc/nbt"
	"github.com/pkg/errors"
)

/*
	TAG_Compound({
	    "size_x": TAG_Int(),
	    "size_y": TAG_Int(),
	    "size_z": TAG_Int(),
	    "bits": TAG_Long_Array()
	})
*/
type voxelMapTag struct {
	SizeX int32   `nbt:"size_x"`
	SizeY int32   `nbt:"size_y"`
	SizeZ int32   `nbt:"size_z"`
	Bits  []int64 `nbt:"bits"`
}

// EncodeVoxelMap writes the map as a gzip compressed NBT compound.
func EncodeVoxelMap(w io.Writer, v *VoxelMap) error {
	tag := voxelMapTag{
		SizeX: v.size.X,
		SizeY: v.size.Y,
		SizeZ: v.size.Z,
		Bits:  make([]int64, len(v.data)),
	}
	for i, word := range v.data {
		tag.Bits[i] = int64(word)
	}
	gzipWriter := gzip.NewWriter(w)
	if err := nbt.NewEncoder(gzipWriter).Encode(tag, "voxelmap"); err != nil {
		gzipWriter.Close()
		return errors.Wrap(err, "encode voxel map")
	}
	return errors.Wrap(gzipWriter.Close(), "flush voxel map")
}

// DecodeVoxelMap reads a map written by EncodeVoxelMap.
func DecodeVoxelMap(r io.Reader) (*VoxelMap, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open voxel map stream")
	}
	defer gzipReader.Close()

	var tag voxelMapTag
	if _, err = nbt.NewDecoder(gzipReader).Decode(&tag); err != nil {
		return nil, errors.Wrap(err, "decode voxel map")
	}
	size := Int3{tag.SizeX, tag.SizeY, tag.SizeZ}
	if size.X < 0 || size.Y < 0 || size.Z < 0 {
		return nil, errors.Errorf("invalid voxel map size %s", size.ToString())
	}
	v := NewVoxelMap(size)
	if len(tag.Bits) != len(v.data) {
		return nil, errors.Errorf("voxel map %s expects %d words, got %d", size.ToString(), len(v.data), len(tag.Bits))
	}
	for i, word := range tag.Bits {
		v.data[i] = uint64(word)
	}
	v.CalculateCentre()
	return v, nil
}
