package tilemap

import (
	"slices"

	"github.com/memmaker/tileworld/engine/voxel"
)

// UnitExclusion tells HasBlockingUnit which units a pathing query may walk through.
type UnitExclusion struct {
	IgnoreStaticUnits bool
	IgnoreMovingUnits bool
	IgnoreAllUnits    bool
}

type Tile struct {
	Position voxel.Int3

	tileMap *TileMap
	layers  [][]*TileObject

	// battle state, refreshed by UpdateAllBattlescapeInfo
	SolidGround bool
	CanStand    bool
	Height      float32
	LOSBlocked  bool
	UnitCount   int

	// city state, refreshed by UpdateAllCityInfo
	HasScenery   bool
	VehicleCount int
}

func (t *Tile) Map() *TileMap {
	return t.tileMap
}

// ObjectsInLayer returns the objects of one layer in insertion order. The slice must not be modified.
func (t *Tile) ObjectsInLayer(layer int) []*TileObject {
	if layer < 0 || layer >= len(t.layers) {
		return nil
	}
	return t.layers[layer]
}

// Objects returns every object on the tile, lowest layer first.
func (t *Tile) Objects() []*TileObject {
	var result []*TileObject
	for _, layer := range t.layers {
		result = append(result, layer...)
	}
	return result
}

func (t *Tile) IsEmpty() bool {
	for _, layer := range t.layers {
		if len(layer) > 0 {
			return false
		}
	}
	return true
}

func (t *Tile) FirstObjectOfType(objectType ObjectType) *TileObject {
	for _, object := range t.ObjectsInLayer(t.tileMap.GetLayer(objectType)) {
		if object.Type == objectType {
			return object
		}
	}
	return nil
}

func (t *Tile) HasObjectOfType(objectType ObjectType) bool {
	return t.FirstObjectOfType(objectType) != nil
}

// HasBlockingUnit reports whether a unit other than self occupies the tile and is not excluded.
func (t *Tile) HasBlockingUnit(ex UnitExclusion, self Entity) bool {
	if ex.IgnoreAllUnits {
		return false
	}
	for _, layer := range t.layers {
		for _, object := range layer {
			if !object.Type.IsUnit() || (self != nil && object.Owner == self) {
				continue
			}
			moving := object.IsMoving()
			if moving && ex.IgnoreMovingUnits {
				continue
			}
			if !moving && ex.IgnoreStaticUnits {
				continue
			}
			return true
		}
	}
	return false
}

// Neighbor returns the adjacent tile in the given direction, nil at the map border.
func (t *Tile) Neighbor(dir MapDirection) *Tile {
	pos := t.Position.Add(dir.Offset())
	if !t.tileMap.TileIsValidAt(pos) {
		return nil
	}
	return t.tileMap.tileAt(pos)
}

func (t *Tile) add(object *TileObject) bool {
	layer := t.layers[object.layer]
	if slices.Contains(layer, object) {
		return false
	}
	t.layers[object.layer] = append(layer, object)
	return true
}

func (t *Tile) remove(object *TileObject) {
	layer := t.layers[object.layer]
	if i := slices.Index(layer, object); i >= 0 {
		t.layers[object.layer] = slices.Delete(layer, i, i+1)
	}
}
