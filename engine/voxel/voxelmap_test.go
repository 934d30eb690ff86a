package voxel

import (
	"bytes"
	"testing"
)

func TestVoxelMapBits(t *testing.T) {
	v := NewVoxelMap(Int3{4, 3, 2})
	if !v.IsEmpty() {
		t.Fatal("new voxel map should be empty")
	}
	v.SetBit(Int3{3, 2, 1}, true)
	if !v.GetBit(Int3{3, 2, 1}) {
		t.Fatal("bit should be set")
	}
	if v.GetBit(Int3{2, 2, 1}) {
		t.Fatal("neighbouring bit should be clear")
	}
	if v.GetBit(Int3{4, 0, 0}) || v.GetBit(Int3{-1, 0, 0}) {
		t.Fatal("out of range bits must read as empty")
	}
	v.SetBit(Int3{3, 2, 1}, false)
	if !v.IsEmpty() {
		t.Fatal("clearing the only bit should leave the map empty")
	}
}

func TestVoxelMapFillAndHeight(t *testing.T) {
	v := NewVoxelMap(Int3{8, 8, 10})
	v.FillBox(Int3{0, 0, 0}, Int3{8, 8, 3}, true)
	if got := v.TopHeight(); got != 3 {
		t.Fatalf("expected top height 3, got %d", got)
	}
	if v.Count() != 8*8*3 {
		t.Fatalf("expected %d voxels, got %d", 8*8*3, v.Count())
	}
	full := NewFullVoxelMap(Int3{3, 3, 3})
	if !full.IsFull() {
		t.Fatal("full voxel map should report full")
	}
	v.CalculateCentre()
	if c := v.Centre(); c.Z != 1 {
		t.Fatalf("expected centre z 1, got %s", c.ToString())
	}
}

func TestVoxelMapNBTRoundTrip(t *testing.T) {
	v := NewVoxelMap(Int3{24, 24, 20})
	v.FillBox(Int3{0, 10, 0}, Int3{24, 14, 20}, true)

	var buf bytes.Buffer
	if err := EncodeVoxelMap(&buf, v); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	decoded, err := DecodeVoxelMap(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Size() != v.Size() {
		t.Fatalf("size mismatch: %s vs %s", decoded.Size().ToString(), v.Size().ToString())
	}
	if decoded.Count() != v.Count() {
		t.Fatalf("voxel count mismatch: %d vs %d", decoded.Count(), v.Count())
	}
	if !decoded.GetBit(Int3{5, 11, 19}) || decoded.GetBit(Int3{5, 9, 0}) {
		t.Fatal("decoded bits differ from the source")
	}
}

func TestDecodeVoxelMapRejectsGarbage(t *testing.T) {
	if _, err := DecodeVoxelMap(bytes.NewReader([]byte("not a voxel map"))); err == nil {
		t.Fatal("expected an error for a non-gzip stream")
	}
}

func TestManhattanDistanceToBox(t *testing.T) {
	start, end := Int3{5, 5, 0}, Int3{7, 7, 1}
	if d := ManhattanDistanceToBox(Int3{6, 6, 0}, start, end); d != 0 {
		t.Fatalf("inside the box distance should be 0, got %d", d)
	}
	if d := ManhattanDistanceToBox(Int3{0, 6, 2}, start, end); d != 7 {
		t.Fatalf("expected 7, got %d", d)
	}
}
