package tilemap

import (
	"image"
	"strings"
	"testing"

	"github.com/memmaker/tileworld/engine/voxel"
	"github.com/pkg/errors"
)

func TestGetTileIndexing(t *testing.T) {
	size := voxel.Int3{X: 4, Y: 3, Z: 2}
	m := newBattleMap(t, size)
	for z := int32(0); z < size.Z; z++ {
		for y := int32(0); y < size.Y; y++ {
			for x := int32(0); x < size.X; x++ {
				tile := m.GetTile(x, y, z)
				if tile == nil {
					t.Fatalf("tile %d,%d,%d missing", x, y, z)
				}
				if tile.Position != (voxel.Int3{X: x, Y: y, Z: z}) {
					t.Fatalf("tile %d,%d,%d reports position %s", x, y, z, tile.Position)
				}
			}
		}
	}
}

func TestGetTileOutOfBounds(t *testing.T) {
	m := newBattleMap(t, voxel.Int3{X: 4, Y: 3, Z: 2})
	logged := captureLog(t)
	outside := []voxel.Int3{{X: -1}, {X: 4}, {Y: 3}, {Z: 2}, {Z: -1}}
	for _, pos := range outside {
		if m.GetTileAt(pos) != nil {
			t.Fatalf("expected nil tile at %s", pos)
		}
		if m.TileIsValidAt(pos) {
			t.Fatalf("%s reported as valid", pos)
		}
	}
	if strings.Count(logged.String(), "Incorrect tile coordinates") != len(outside) {
		t.Fatalf("expected one error log per invalid access, got %q", logged.String())
	}
}

func TestLayerAssignment(t *testing.T) {
	m := newBattleMap(t, voxel.Int3{X: 1, Y: 1, Z: 1})
	if m.GetLayerCount() != 3 {
		t.Fatalf("expected 3 layers, got %d", m.GetLayerCount())
	}
	for _, objectType := range AllObjectTypes() {
		layer := m.GetLayer(objectType)
		if !m.LayerTypes(layer).Has(objectType) {
			t.Fatalf("%s not in its layer %d", objectType, layer)
		}
	}
	if m.GetLayer(ObjectTypeBattleUnit) != 2 || m.GetLayer(ObjectTypeBattleMapPart) != 0 {
		t.Fatalf("unexpected battle layering")
	}
}

func TestNewTileMapRejectsBadLayering(t *testing.T) {
	size := voxel.Int3{X: 2, Y: 2, Z: 1}
	duplicated := BattleConfig(size)
	duplicated.Layers = append(duplicated.Layers, []ObjectType{ObjectTypeScenery})
	if _, err := NewTileMapFromConfig(duplicated); err == nil {
		t.Fatalf("expected error for duplicated type")
	}
	missing := BattleConfig(size)
	missing.Layers = missing.Layers[:2]
	if _, err := NewTileMapFromConfig(missing); err == nil {
		t.Fatalf("expected error for missing type")
	}
	if _, err := NewTileMapFromConfig(CityConfig(voxel.Int3{X: 0, Y: 2, Z: 1})); err == nil {
		t.Fatalf("expected error for empty size")
	}
}

func TestAddMoveRemoveObject(t *testing.T) {
	m := newBattleMap(t, voxel.Int3{X: 4, Y: 4, Z: 2})
	unit := newEntity(ObjectTypeBattleUnit, voxel.Int3{X: 1, Y: 1}, voxel.Int3{X: 1, Y: 1, Z: 1})
	object := mustAdd(t, m, unit)
	if !object.IsOnMap() || len(object.OccupiedTiles()) != 2 {
		t.Fatalf("expected object on two tiles, got %v", object.OccupiedTiles())
	}
	if m.GetTile(1, 1, 1).FirstObjectOfType(ObjectTypeBattleUnit) != object {
		t.Fatalf("object missing from upper tile")
	}

	unit.tiles = []voxel.Int3{{X: 2, Y: 1}}
	if err := m.MoveObject(object); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if !m.GetTile(1, 1, 0).IsEmpty() || !m.GetTile(1, 1, 1).IsEmpty() {
		t.Fatalf("old tiles still reference the object")
	}
	if !m.GetTile(2, 1, 0).HasObjectOfType(ObjectTypeBattleUnit) {
		t.Fatalf("new tile does not reference the object")
	}

	m.RemoveObject(object)
	if object.IsOnMap() || !m.GetTile(2, 1, 0).IsEmpty() {
		t.Fatalf("object still on map after removal")
	}
}

func TestAddObjectOffMap(t *testing.T) {
	m := newBattleMap(t, voxel.Int3{X: 2, Y: 2, Z: 1})
	captureLog(t)
	_, err := m.AddObjectToMap(newEntity(ObjectTypeScenery, voxel.Int3{X: 5}))
	if !errors.Is(err, ErrOffMap) {
		t.Fatalf("expected ErrOffMap, got %v", err)
	}
	partial := mustAdd(t, m, newEntity(ObjectTypeScenery, voxel.Int3{X: 5}, voxel.Int3{X: 1}))
	if len(partial.OccupiedTiles()) != 1 {
		t.Fatalf("expected off-map tile to be skipped, got %v", partial.OccupiedTiles())
	}
}

func TestCeaseUpdates(t *testing.T) {
	m := newBattleMap(t, voxel.Int3{X: 2, Y: 2, Z: 1})
	object := mustAdd(t, m, newEntity(ObjectTypeBattleItem, voxel.Int3{}))
	m.CeaseUpdates = true
	if _, err := m.AddObjectToMap(newEntity(ObjectTypeBattleItem, voxel.Int3{X: 1})); err != ErrUpdatesCeased {
		t.Fatalf("expected ErrUpdatesCeased, got %v", err)
	}
	if err := m.MoveObject(object); err != ErrUpdatesCeased {
		t.Fatalf("expected ErrUpdatesCeased on move, got %v", err)
	}
	m.RemoveObject(object)
	if object.IsOnMap() {
		t.Fatalf("removal must work while updates are ceased")
	}
}

func TestHasBlockingUnit(t *testing.T) {
	m := newBattleMap(t, voxel.Int3{X: 2, Y: 1, Z: 1})
	walker := newEntity(ObjectTypeBattleUnit, voxel.Int3{})
	walker.moving = true
	mustAdd(t, m, walker)
	tile := m.GetTile(0, 0, 0)
	if !tile.HasBlockingUnit(UnitExclusion{}, nil) {
		t.Fatalf("unit should block without exclusions")
	}
	if tile.HasBlockingUnit(UnitExclusion{IgnoreMovingUnits: true}, nil) {
		t.Fatalf("moving unit should be ignored")
	}
	if !tile.HasBlockingUnit(UnitExclusion{IgnoreStaticUnits: true}, nil) {
		t.Fatalf("moving unit should not count as static")
	}
	if tile.HasBlockingUnit(UnitExclusion{IgnoreAllUnits: true}, nil) || tile.HasBlockingUnit(UnitExclusion{}, walker) {
		t.Fatalf("unit should not block itself or when all units are ignored")
	}
	mustAdd(t, m, newEntity(ObjectTypeBattleItem, voxel.Int3{X: 1}))
	mustAdd(t, m, newEntity(ObjectTypeVehicle, voxel.Int3{X: 1}))
	if !m.GetTile(1, 0, 0).HasBlockingUnit(UnitExclusion{}, nil) {
		t.Fatalf("vehicle behind an item should block")
	}
	if allocs := testing.AllocsPerRun(100, func() { tile.HasBlockingUnit(UnitExclusion{}, nil) }); allocs != 0 {
		t.Fatalf("HasBlockingUnit allocates %.1f times per call", allocs)
	}
}

func TestViewSurfaceDirtyFlags(t *testing.T) {
	m := newBattleMap(t, voxel.Int3{X: 8, Y: 8, Z: 1})
	if !m.IsViewSurfaceDirty(0) || !m.IsViewSurfaceDirty(-1) {
		t.Fatalf("unset slots must report dirty")
	}
	surface := image.NewRGBA(image.Rect(0, 0, 4, 4))
	m.SetViewSurface(3, surface)
	if m.IsViewSurfaceDirty(3) || m.GetViewSurface(3) != surface {
		t.Fatalf("stored slot should be clean")
	}
	m.SetViewSurfaceDirty(3, true)
	if !m.IsViewSurfaceDirty(3) {
		t.Fatalf("slot should be dirty after marking")
	}
	m.SetViewSurface(3, surface)
	if m.IsViewSurfaceDirty(3) {
		t.Fatalf("storing must clear the dirty flag")
	}
	if !m.IsViewSurfaceDirty(2) {
		t.Fatalf("slots below a stored slot stay dirty")
	}
}

func TestViewRegionMarkedDirtyByPlacement(t *testing.T) {
	m := newBattleMap(t, voxel.Int3{X: 8, Y: 8, Z: 1})
	if err := m.RegisterViewRegion(0, voxel.Int3{}, voxel.Int3{X: 4, Y: 4, Z: 1}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := m.RegisterViewRegion(1, voxel.Int3{X: 4}, voxel.Int3{X: 8, Y: 4, Z: 1}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := m.RegisterViewRegion(2, voxel.Int3{X: 4}, voxel.Int3{X: 4, Y: 4, Z: 1}); err == nil {
		t.Fatalf("expected error for empty region")
	}
	m.SetViewSurface(0, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	m.SetViewSurface(1, image.NewRGBA(image.Rect(0, 0, 1, 1)))

	unit := newEntity(ObjectTypeBattleUnit, voxel.Int3{X: 5, Y: 1})
	object := mustAdd(t, m, unit)
	if m.IsViewSurfaceDirty(0) || !m.IsViewSurfaceDirty(1) {
		t.Fatalf("only the region containing the unit should be dirty")
	}

	m.SetViewSurface(1, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	unit.tiles = []voxel.Int3{{X: 3, Y: 1}}
	if err := m.MoveObject(object); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if !m.IsViewSurfaceDirty(0) || !m.IsViewSurfaceDirty(1) {
		t.Fatalf("moving across regions should dirty both")
	}
}

func TestUpdateAllBattlescapeInfo(t *testing.T) {
	m := newBattleMap(t, voxel.Int3{X: 3, Y: 3, Z: 2})
	floor := voxel.NewVoxelMap(m.VoxelMapSize)
	floor.FillBox(voxel.Int3{}, voxel.Int3{X: m.VoxelMapSize.X, Y: m.VoxelMapSize.Y, Z: 2}, true)
	mustAdd(t, m, &voxelEntity{testEntity: testEntity{objectType: ObjectTypeBattleMapPart, tiles: []voxel.Int3{{X: 1, Y: 1}}}, shape: floor})
	mustAdd(t, m, newEntity(ObjectTypeBattleMapPart, voxel.Int3{}))
	mustAdd(t, m, newEntity(ObjectTypeBattleUnit, voxel.Int3{X: 1, Y: 1}))
	m.UpdateAllBattlescapeInfo()

	floorTile := m.GetTile(1, 1, 0)
	if !floorTile.SolidGround || !floorTile.CanStand || floorTile.Height != 0.1 || floorTile.UnitCount != 1 {
		t.Fatalf("unexpected floor tile state %+v", *floorTile)
	}
	block := m.GetTile(0, 0, 0)
	if block.CanStand || !block.LOSBlocked || block.Height != 1 {
		t.Fatalf("unexpected block tile state %+v", *block)
	}
	if !m.GetTile(0, 0, 1).CanStand {
		t.Fatalf("tile on top of a block should be standable")
	}
	if m.GetTile(2, 2, 0).CanStand || floorTile.LOSBlocked {
		t.Fatalf("empty tile or thin floor reported wrong state")
	}
}

func TestUpdateAllCityInfo(t *testing.T) {
	m, err := NewTileMapFromConfig(CityConfig(voxel.Int3{X: 2, Y: 2, Z: 2}))
	if err != nil {
		t.Fatalf("could not create map: %v", err)
	}
	mustAdd(t, m, newEntity(ObjectTypeScenery, voxel.Int3{}))
	mustAdd(t, m, newEntity(ObjectTypeVehicle, voxel.Int3{X: 1, Z: 1}))
	mustAdd(t, m, newEntity(ObjectTypeVehicle, voxel.Int3{X: 1, Z: 1}))
	m.UpdateAllCityInfo()
	if !m.GetTile(0, 0, 0).HasScenery || m.GetTile(1, 0, 1).VehicleCount != 2 {
		t.Fatalf("city info not refreshed")
	}
	m.CeaseUpdates = true
	m.GetTile(0, 0, 0).HasScenery = false
	m.UpdateAllCityInfo()
	if m.GetTile(0, 0, 0).HasScenery {
		t.Fatalf("update pass must be a no-op while updates are ceased")
	}
}
