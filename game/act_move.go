package game

import (
	"slices"

	"github.com/memmaker/tileworld/engine/tilemap"
	"github.com/memmaker/tileworld/engine/voxel"
)

// ActionMove lists the tiles a unit can reach with the moves it has left.
type ActionMove struct {
	gameMap      *tilemap.TileMap
	unit         *BattleUnit
	movesLeft    float64
	distanceMap  map[voxel.Int3]float64
	validTargets []voxel.Int3
}

func NewActionMove(gameMap *tilemap.TileMap, unit *BattleUnit, movesLeft float64) *ActionMove {
	a := &ActionMove{
		gameMap:   gameMap,
		unit:      unit,
		movesLeft: movesLeft,
	}
	a.updateTargetData()
	return a
}

func (a *ActionMove) GetName() string {
	return "Move"
}

func (a *ActionMove) IsValidTarget(target voxel.Int3) bool {
	distance, ok := a.distanceMap[target]
	return ok && distance <= a.movesLeft && target != a.unit.Position()
}

// GetValidTargets returns the reachable tiles in grid order.
func (a *ActionMove) GetValidTargets() []voxel.Int3 {
	return a.validTargets
}

func (a *ActionMove) GetCost(target voxel.Int3) float64 {
	return a.distanceMap[target]
}

// Execute starts the move. It fails for targets outside the movement range.
func (a *ActionMove) Execute(target voxel.Int3) bool {
	if !a.IsValidTarget(target) {
		return false
	}
	return a.unit.MoveTo(a.gameMap, target)
}

func (a *ActionMove) updateTargetData() {
	footPos := a.unit.Position()
	a.distanceMap = a.gameMap.FindReachableTiles(footPos, a.movesLeft, &GroundMover{Unit: a.unit}, tilemap.DefaultPathOptions().UnitExclusion)
	a.validTargets = a.validTargets[:0]
	for node := range a.distanceMap {
		if node != footPos {
			a.validTargets = append(a.validTargets, node)
		}
	}
	slices.SortFunc(a.validTargets, func(i, j voxel.Int3) int {
		switch {
		case i.Less(j):
			return -1
		case j.Less(i):
			return 1
		}
		return 0
	})
}
