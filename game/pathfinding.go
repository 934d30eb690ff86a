package game

import (
	"github.com/memmaker/tileworld/engine/tilemap"
	"github.com/memmaker/tileworld/engine/voxel"
)

// ClimbHeight is the tile fill a unit needs to stand on to climb to the level above, e.g. stairs.
const ClimbHeight = 0.5

const (
	walkCost  = 1.0
	climbCost = 2.0
)

// GroundMover moves battle units. Tiles must be standable and, for every extra tile of the unit's
// footprint, free of terrain. Units climb one level at a time from tiles filled at least ClimbHeight.
// The battlescape info of the map must be up to date.
type GroundMover struct {
	Unit *BattleUnit
}

func (g *GroundMover) CanEnterTile(from, to *tilemap.Tile, ex tilemap.UnitExclusion) (float64, bool) {
	if from == nil || to == nil {
		return 0, false
	}
	var self tilemap.Entity
	if g.Unit != nil {
		self = g.Unit
	}
	if !g.isFree(to, ex, self) {
		return 0, false
	}
	switch to.Position.Z - from.Position.Z {
	case 1:
		// climbing ends on top of whatever the unit stood on
		if from.Height < ClimbHeight || to.Height >= 1 {
			return 0, false
		}
		return climbCost, true
	case -1:
		if !to.CanStand {
			return 0, false
		}
		return climbCost, true
	}
	if !to.CanStand {
		return 0, false
	}
	return walkCost, true
}

func (g *GroundMover) isFree(to *tilemap.Tile, ex tilemap.UnitExclusion, self tilemap.Entity) bool {
	if to.HasBlockingUnit(ex, self) {
		return false
	}
	if g.Unit == nil {
		return true
	}
	m := to.Map()
	for _, offset := range g.Unit.offsets {
		if offset == (voxel.Int3{}) {
			continue
		}
		pos := to.Position.Add(offset)
		if !m.TileIsValidAt(pos) {
			return false
		}
		tile := m.GetTileAt(pos)
		if tile.Height > 0 || tile.HasBlockingUnit(ex, self) {
			return false
		}
	}
	return true
}

func (g *GroundMover) Heuristic(from, destStart, destEnd voxel.Int3) float64 {
	return float64(voxel.ManhattanDistanceToBox(from, destStart, destEnd)) * walkCost
}

// FlyingMover moves city vehicles through every tile free of scenery.
type FlyingMover struct {
	Vehicle *Vehicle
}

func (f *FlyingMover) CanEnterTile(from, to *tilemap.Tile, ex tilemap.UnitExclusion) (float64, bool) {
	if to == nil || to.HasObjectOfType(tilemap.ObjectTypeScenery) {
		return 0, false
	}
	var self tilemap.Entity
	if f.Vehicle != nil {
		self = f.Vehicle
	}
	if to.HasBlockingUnit(ex, self) {
		return 0, false
	}
	return walkCost, true
}

func (f *FlyingMover) Heuristic(from, destStart, destEnd voxel.Int3) float64 {
	return float64(voxel.ManhattanDistanceToBox(from, destStart, destEnd)) * walkCost
}
