package tilemap

import (
	"fmt"

	"github.com/memmaker/tileworld/engine/util"
	"github.com/memmaker/tileworld/engine/voxel"
	"github.com/pkg/errors"
)

// AddObjectToMap places an entity on every tile of its footprint and returns the map's record of it.
func (m *TileMap) AddObjectToMap(entity Entity) (*TileObject, error) {
	if m.CeaseUpdates {
		return nil, ErrUpdatesCeased
	}
	objectType := entity.ObjectType()
	if !objectType.IsValid() {
		return nil, errors.Errorf("cannot place object of invalid type %d", int(objectType))
	}
	object := &TileObject{
		Type:    objectType,
		Owner:   entity,
		tileMap: m,
		layer:   m.GetLayer(objectType),
	}
	if err := m.place(object); err != nil {
		return nil, err
	}
	return object, nil
}

// MoveObject re-reads the footprint of the object's entity and updates the tiles accordingly.
func (m *TileMap) MoveObject(object *TileObject) error {
	if m.CeaseUpdates {
		return ErrUpdatesCeased
	}
	if object.tileMap != m {
		return errors.New("object belongs to a different map")
	}
	m.markViewDirty(object.occupied)
	m.detach(object)
	// an object moved entirely off the map stays detached
	return m.place(object)
}

// RemoveObject detaches the object from every tile. It is allowed while updates are ceased.
func (m *TileMap) RemoveObject(object *TileObject) {
	if object.tileMap != m || !object.IsOnMap() {
		return
	}
	m.markViewDirty(object.occupied)
	m.detach(object)
}

func (m *TileMap) place(object *TileObject) error {
	var occupied []voxel.Int3
	for _, pos := range object.Owner.Footprint() {
		if !m.TileIsValidAt(pos) {
			util.LogMapWarning(fmt.Sprintf("[TileMap] %s footprint tile %s is off the map, skipped", object.Type, pos))
			continue
		}
		if m.tileAt(pos).add(object) {
			occupied = append(occupied, pos)
		}
	}
	if len(occupied) == 0 {
		return errors.Wrapf(ErrOffMap, "placing %s", object.Type)
	}
	object.occupied = occupied
	m.markViewDirty(occupied)
	return nil
}

func (m *TileMap) detach(object *TileObject) {
	for _, pos := range object.occupied {
		m.tileAt(pos).remove(object)
	}
	object.occupied = nil
}
