package util

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/tileworld/engine/voxel"
)

func TestDDATraverseVisitsCellsInOrder(t *testing.T) {
	var visited []voxel.Int3
	lastExit := -1.0
	DDATraverse(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{4.5, 2.5, 0.5}, func(cell voxel.Int3, tEnter, tExit float64) bool {
		if tEnter < lastExit-1e-6 {
			t.Fatalf("cell %s entered at %v before previous exit %v", cell.ToString(), tEnter, lastExit)
		}
		lastExit = tExit
		visited = append(visited, cell)
		return false
	})
	if visited[0] != (voxel.Int3{X: 0, Y: 0, Z: 0}) {
		t.Fatalf("traversal must start in the start cell, got %s", visited[0].ToString())
	}
	if last := visited[len(visited)-1]; last != (voxel.Int3{X: 4, Y: 2, Z: 0}) {
		t.Fatalf("traversal must end in the end cell, got %s", last.ToString())
	}
	for i := 1; i < len(visited); i++ {
		if voxel.ManhattanDistance3(visited[i-1], visited[i]) != 1 {
			t.Fatalf("cells %s and %s are not face neighbours", visited[i-1].ToString(), visited[i].ToString())
		}
	}
}

func TestDDATraverseNegativeDirection(t *testing.T) {
	count := 0
	DDATraverse(mgl32.Vec3{5.5, 0.5, 3.5}, mgl32.Vec3{5.5, 0.5, 0.5}, func(cell voxel.Int3, tEnter, tExit float64) bool {
		if cell.Z != int32(3-count) {
			t.Fatalf("expected z %d, got %d", 3-count, cell.Z)
		}
		count++
		return false
	})
	if count != 4 {
		t.Fatalf("expected 4 cells, got %d", count)
	}
}

func TestDDATraverseDegenerateSegment(t *testing.T) {
	calls := 0
	DDATraverse(mgl32.Vec3{1.2, 1.2, 1.2}, mgl32.Vec3{1.2, 1.2, 1.2}, func(cell voxel.Int3, tEnter, tExit float64) bool {
		calls++
		if cell != (voxel.Int3{X: 1, Y: 1, Z: 1}) {
			t.Fatalf("unexpected cell %s", cell.ToString())
		}
		return false
	})
	if calls != 1 {
		t.Fatalf("a zero length segment visits its cell once, got %d", calls)
	}
}

func TestDDARaycastStopsAtFirstSolid(t *testing.T) {
	solid := map[voxel.Int3]bool{{X: 3, Y: 0, Z: 0}: true, {X: 6, Y: 0, Z: 0}: true}
	cell, dist, hit := DDARaycast(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{9.5, 0.5, 0.5}, func(c voxel.Int3) bool {
		return solid[c]
	})
	if !hit || cell != (voxel.Int3{X: 3, Y: 0, Z: 0}) {
		t.Fatalf("expected hit at 3,0,0, got %v %s", hit, cell.ToString())
	}
	if dist < 2.49 || dist > 2.51 {
		t.Fatalf("expected entry distance 2.5, got %v", dist)
	}
}
