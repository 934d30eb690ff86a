package game

import (
	"github.com/memmaker/tileworld/engine/tilemap"
	"github.com/memmaker/tileworld/engine/voxel"
)

// Scenery is a static city structure. A nil shape fills its tiles completely.
type Scenery struct {
	placement
	Name  string
	shape *voxel.VoxelMap
}

func NewScenery(name string, position voxel.Int3, shape *voxel.VoxelMap) *Scenery {
	return &Scenery{placement: placement{position: position}, Name: name, shape: shape}
}

func (s *Scenery) ObjectType() tilemap.ObjectType {
	return tilemap.ObjectTypeScenery
}

func (s *Scenery) VoxelMapAt(tile voxel.Int3, los bool) *voxel.VoxelMap {
	return s.shape
}

// Doodad is a short lived visual effect. It never blocks anything but can be hit by unfiltered ray queries.
type Doodad struct {
	placement
	TicksLeft int
}

func NewDoodad(position voxel.Int3, lifetimeTicks int) *Doodad {
	return &Doodad{placement: placement{position: position}, TicksLeft: lifetimeTicks}
}

func (d *Doodad) ObjectType() tilemap.ObjectType {
	return tilemap.ObjectTypeDoodad
}

type MapPartKind int

const (
	MapPartGround MapPartKind = iota
	MapPartWall
	MapPartFeature
)

// BattleMapPart is one piece of battle terrain.
type BattleMapPart struct {
	placement
	Kind     MapPartKind
	shape    *voxel.VoxelMap
	losShape *voxel.VoxelMap
}

// GroundThickness is the number of voxel layers a ground part fills at the bottom of its tile.
const GroundThickness = 2

// NewGround creates a floor part covering the bottom layers of the tile.
func NewGround(position voxel.Int3, voxelMapSize voxel.Int3) *BattleMapPart {
	shape := voxel.NewVoxelMap(voxelMapSize)
	shape.FillBox(voxel.Int3{}, voxel.Int3{X: voxelMapSize.X, Y: voxelMapSize.Y, Z: GroundThickness}, true)
	return &BattleMapPart{placement: placement{position: position}, Kind: MapPartGround, shape: shape, losShape: shape}
}

// NewWall creates a part filling its tile completely.
func NewWall(position voxel.Int3) *BattleMapPart {
	return &BattleMapPart{placement: placement{position: position}, Kind: MapPartWall}
}

// NewFeature creates a part with a custom shape. losShape may differ from shape, e.g. for windows.
func NewFeature(position voxel.Int3, shape, losShape *voxel.VoxelMap) *BattleMapPart {
	return &BattleMapPart{placement: placement{position: position}, Kind: MapPartFeature, shape: shape, losShape: losShape}
}

func (b *BattleMapPart) ObjectType() tilemap.ObjectType {
	return tilemap.ObjectTypeBattleMapPart
}

func (b *BattleMapPart) VoxelMapAt(tile voxel.Int3, los bool) *voxel.VoxelMap {
	if los {
		return b.losShape
	}
	return b.shape
}

// BattleItem is an item lying on the ground.
type BattleItem struct {
	placement
	Name  string
	shape *voxel.VoxelMap
}

func NewBattleItem(name string, position voxel.Int3, voxelMapSize voxel.Int3) *BattleItem {
	shape := voxel.NewVoxelMap(voxelMapSize)
	centre := voxel.Int3{X: voxelMapSize.X / 2, Y: voxelMapSize.Y / 2}
	shape.FillBox(centre.Sub(voxel.Int3{X: 2, Y: 2}), centre.Add(voxel.Int3{X: 2, Y: 2, Z: GroundThickness + 2}), true)
	shape.CalculateCentre()
	return &BattleItem{placement: placement{position: position}, Name: name, shape: shape}
}

func (i *BattleItem) ObjectType() tilemap.ObjectType {
	return tilemap.ObjectTypeBattleItem
}

func (i *BattleItem) VoxelMapAt(tile voxel.Int3, los bool) *voxel.VoxelMap {
	return i.shape
}

type HazardKind int

const (
	HazardSmoke HazardKind = iota
	HazardFire
)

// BattleHazard is smoke or fire filling a tile for a limited time. Smoke blocks sight, neither stops projectiles.
type BattleHazard struct {
	placement
	Kind      HazardKind
	TicksLeft int
	empty     *voxel.VoxelMap
}

func NewBattleHazard(kind HazardKind, position voxel.Int3, lifetimeTicks int) *BattleHazard {
	return &BattleHazard{
		placement: placement{position: position},
		Kind:      kind,
		TicksLeft: lifetimeTicks,
		empty:     voxel.NewVoxelMap(voxel.Int3{X: 1, Y: 1, Z: 1}),
	}
}

func (h *BattleHazard) ObjectType() tilemap.ObjectType {
	return tilemap.ObjectTypeBattleHazard
}

func (h *BattleHazard) VoxelMapAt(tile voxel.Int3, los bool) *voxel.VoxelMap {
	if los && h.Kind == HazardSmoke {
		return nil
	}
	return h.empty
}
