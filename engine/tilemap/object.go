package tilemap

import (
	"github.com/memmaker/tileworld/engine/voxel"
)

// Organisation identifies the owner of an entity, used to let shooters ignore their own projectiles.
type Organisation uint64

const NoOrganisation Organisation = 0

// Entity is the narrow view the map needs of a game object.
type Entity interface {
	ObjectType() ObjectType
	// Footprint returns every tile the entity currently occupies.
	Footprint() []voxel.Int3
}

// Voxelized entities describe their shape inside each occupied tile.
// A nil map, like an entity without this capability, fills the tile completely.
// An entity that should not take part in one kind of query returns an empty map for it.
type Voxelized interface {
	VoxelMapAt(tile voxel.Int3, los bool) *voxel.VoxelMap
}

type Owned interface {
	ControlledBy() Organisation
}

// Mover is implemented by units that distinguish between standing still and walking.
type Mover interface {
	IsMoving() bool
}

// TileObject is the map's record of an entity. Tiles keep non-owning references to it;
// the entity owns it and must call RemoveObject before it is discarded.
type TileObject struct {
	Type  ObjectType
	Owner Entity

	tileMap  *TileMap
	layer    int
	occupied []voxel.Int3
}

func (o *TileObject) Map() *TileMap {
	return o.tileMap
}

func (o *TileObject) Layer() int {
	return o.layer
}

// OccupiedTiles returns the footprint the object was last placed with.
func (o *TileObject) OccupiedTiles() []voxel.Int3 {
	return o.occupied
}

// IsOnMap reports whether any tile still references the object.
func (o *TileObject) IsOnMap() bool {
	return len(o.occupied) > 0
}

func (o *TileObject) ControlledBy() Organisation {
	if owned, ok := o.Owner.(Owned); ok {
		return owned.ControlledBy()
	}
	return NoOrganisation
}

func (o *TileObject) IsMoving() bool {
	if mover, ok := o.Owner.(Mover); ok {
		return mover.IsMoving()
	}
	return false
}

// voxelMapAt returns the sampler of one tile. full is set when the object fills the tile completely.
func (o *TileObject) voxelMapAt(tile voxel.Int3, los bool) (vm *voxel.VoxelMap, full bool) {
	if voxelized, ok := o.Owner.(Voxelized); ok {
		if vm = voxelized.VoxelMapAt(tile, los); vm != nil {
			return vm, false
		}
	}
	return nil, true
}

// IsSolidAt samples the object at a voxel of one of its tiles. local is in voxel units relative to the tile corner.
// Samplers of a different resolution than the map are rescaled.
func (o *TileObject) IsSolidAt(tile, local voxel.Int3, los bool) bool {
	vm, full := o.voxelMapAt(tile, los)
	if full {
		return true
	}
	mapSize := o.tileMap.VoxelMapSize
	sampleSize := vm.Size()
	if sampleSize != mapSize {
		local = voxel.Int3{
			X: local.X * sampleSize.X / mapSize.X,
			Y: local.Y * sampleSize.Y / mapSize.Y,
			Z: local.Z * sampleSize.Z / mapSize.Z,
		}
	}
	return vm.GetBit(local)
}

// heightIn returns the fraction of the tile height the object fills, measured from the floor of the tile.
func (o *TileObject) heightIn(tile voxel.Int3) float32 {
	vm, full := o.voxelMapAt(tile, false)
	if full {
		return 1
	}
	if vm.Size().Z == 0 {
		return 0
	}
	return float32(vm.TopHeight()) / float32(vm.Size().Z)
}

// blocksSightIn reports whether the object fills the tile completely for line of sight purposes.
func (o *TileObject) blocksSightIn(tile voxel.Int3) bool {
	if !o.Type.BlocksLOS() {
		return false
	}
	vm, full := o.voxelMapAt(tile, true)
	return full || vm.IsFull()
}
