package game

import (
	"fmt"

	"github.com/memmaker/tileworld/engine/tilemap"
	"github.com/memmaker/tileworld/engine/util"
	"github.com/memmaker/tileworld/engine/voxel"
	"github.com/pkg/errors"
)

// MapEntity is a game object that can be placed on a tile map.
type MapEntity interface {
	tilemap.Entity
	TileObject() *tilemap.TileObject
	setTileObject(object *tilemap.TileObject)
}

// placement is embedded by every entity kind. It keeps the anchor tile, the offsets of the other
// occupied tiles relative to it, and the map's record once the entity was spawned.
type placement struct {
	position voxel.Int3
	offsets  []voxel.Int3
	object   *tilemap.TileObject
}

func (p *placement) Position() voxel.Int3 {
	return p.position
}

func (p *placement) Footprint() []voxel.Int3 {
	if len(p.offsets) == 0 {
		return []voxel.Int3{p.position}
	}
	tiles := make([]voxel.Int3, len(p.offsets))
	for i, offset := range p.offsets {
		tiles[i] = p.position.Add(offset)
	}
	return tiles
}

func (p *placement) TileObject() *tilemap.TileObject {
	return p.object
}

func (p *placement) setTileObject(object *tilemap.TileObject) {
	p.object = object
}

// Spawn places the entity on the map.
func Spawn(m *tilemap.TileMap, e MapEntity) error {
	if e.TileObject() != nil && e.TileObject().IsOnMap() {
		return errors.Errorf("%s already spawned", e.ObjectType())
	}
	object, err := m.AddObjectToMap(e)
	if err != nil {
		return errors.Wrapf(err, "spawning %s", e.ObjectType())
	}
	e.setTileObject(object)
	return nil
}

// Despawn removes the entity from the map. The entity may be spawned again afterwards.
func Despawn(m *tilemap.TileMap, e MapEntity) {
	if e.TileObject() == nil {
		return
	}
	m.RemoveObject(e.TileObject())
	if e.TileObject().IsOnMap() {
		util.LogMapError(fmt.Sprintf("[Game] %s still on map after removal", e.ObjectType()))
		return
	}
	e.setTileObject(nil)
}

// relocate moves an entity's anchor and updates the map if it was spawned.
func relocate(m *tilemap.TileMap, e MapEntity, p *placement, to voxel.Int3) error {
	p.position = to
	if e.TileObject() == nil {
		return nil
	}
	return m.MoveObject(e.TileObject())
}
