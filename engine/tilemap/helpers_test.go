package tilemap

import (
	"bytes"
	"testing"

	"github.com/memmaker/tileworld/engine/util"
	"github.com/memmaker/tileworld/engine/voxel"
)

type testEntity struct {
	objectType ObjectType
	tiles      []voxel.Int3
	owner      Organisation
	moving     bool
}

func (e *testEntity) ObjectType() ObjectType     { return e.objectType }
func (e *testEntity) Footprint() []voxel.Int3    { return e.tiles }
func (e *testEntity) ControlledBy() Organisation { return e.owner }
func (e *testEntity) IsMoving() bool             { return e.moving }

func newEntity(t ObjectType, tiles ...voxel.Int3) *testEntity {
	return &testEntity{objectType: t, tiles: tiles}
}

// voxelEntity shares one voxel map between all its tiles.
type voxelEntity struct {
	testEntity
	shape *voxel.VoxelMap
}

func (e *voxelEntity) VoxelMapAt(tile voxel.Int3, los bool) *voxel.VoxelMap {
	return e.shape
}

func newBattleMap(t *testing.T, size voxel.Int3) *TileMap {
	t.Helper()
	m, err := NewTileMapFromConfig(BattleConfig(size))
	if err != nil {
		t.Fatalf("could not create map: %v", err)
	}
	return m
}

func mustAdd(t *testing.T, m *TileMap, e Entity) *TileObject {
	t.Helper()
	object, err := m.AddObjectToMap(e)
	if err != nil {
		t.Fatalf("could not place %s: %v", e.ObjectType(), err)
	}
	return object
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	previous := util.SetLogOutput(buf)
	t.Cleanup(func() { util.SetLogOutput(previous) })
	return buf
}

// testWalker moves one tile per step and cannot enter scenery or units.
type testWalker struct{}

func (testWalker) CanEnterTile(from, to *Tile, ex UnitExclusion) (float64, bool) {
	if to.HasObjectOfType(ObjectTypeScenery) || to.HasBlockingUnit(ex, nil) {
		return 0, false
	}
	return 1, true
}

func (testWalker) Heuristic(from, destStart, destEnd voxel.Int3) float64 {
	return float64(voxel.ManhattanDistanceToBox(from, destStart, destEnd))
}
