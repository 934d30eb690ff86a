package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/memmaker/tileworld/engine/voxel"
	"github.com/memmaker/tileworld/game"
)

func TestDemoRuns(t *testing.T) {
	battle, err := newDemoBattle()
	if err != nil {
		t.Fatalf("demo setup failed: %v", err)
	}
	defer battle.Shutdown()
	if err := issueDemoOrders(battle); err != nil {
		t.Fatalf("orders failed: %v", err)
	}
	for i := 0; i < 50; i++ {
		if err := battle.Tick(); err != nil {
			t.Fatalf("tick %d failed: %v", i, err)
		}
	}
	rows := renderLevel(battle.Map, 0, 0)
	if len(rows) != len(demoLayout) {
		t.Fatalf("expected %d rows, got %d", len(demoLayout), len(rows))
	}
	joined := strings.Join(rows, "\n")
	if strings.Count(joined, "@") != 2 || strings.Count(joined, "&") != 1 {
		t.Fatalf("expected two soldiers and one monster:\n%s", joined)
	}
	if narrow := renderLevel(battle.Map, 0, 4); len(narrow[0]) != 4 {
		t.Fatalf("rows should be cut to the given width")
	}
}

func TestExportsWriteCompleteFiles(t *testing.T) {
	battle, err := newDemoBattle()
	if err != nil {
		t.Fatalf("demo setup failed: %v", err)
	}
	defer battle.Shutdown()
	dir := t.TempDir()

	viewFile := filepath.Join(dir, "view.png")
	if err := writeVoxelView(battle.Map, viewFile, "strategy"); err != nil {
		t.Fatalf("view export failed: %v", err)
	}
	file, err := os.Open(viewFile)
	if err != nil {
		t.Fatalf("view file missing: %v", err)
	}
	defer file.Close()
	if _, err := png.Decode(file); err != nil {
		t.Fatalf("view file is not a valid PNG: %v", err)
	}

	shapeFile := filepath.Join(dir, "stairs.nbt")
	size := battle.Map.VoxelMapSize
	if err := writeStairsShape(size, shapeFile); err != nil {
		t.Fatalf("shape export failed: %v", err)
	}
	shape, err := os.Open(shapeFile)
	if err != nil {
		t.Fatalf("shape file missing: %v", err)
	}
	defer shape.Close()
	decoded, err := voxel.DecodeVoxelMap(shape)
	if err != nil {
		t.Fatalf("shape file does not decode: %v", err)
	}
	if decoded.Size() != size || decoded.Count() != game.StairsShape(size).Count() {
		t.Fatalf("decoded shape differs from the exported one")
	}

	if err := writeStairsShape(size, filepath.Join(dir, "missing", "stairs.nbt")); err == nil {
		t.Fatalf("expected an error for an unwritable path")
	}
}
