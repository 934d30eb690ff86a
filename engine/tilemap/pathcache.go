package tilemap

import (
	"fmt"
	"slices"

	"github.com/memmaker/tileworld/engine/util"
	"github.com/memmaker/tileworld/engine/voxel"
)

// FindAgentPath behaves like FindShortestPathTo but reuses the last path computed towards the same destination
// when it passes through origin, every remaining step can still be entered and the rest fits opts.MaxCost.
// The cache is never invalidated by the map itself; callers clear it with ClearPathCaches when the world changes.
func (m *TileMap) FindAgentPath(origin, destination voxel.Int3, iterationLimit int, helper CanEnterTileHelper, opts PathOptions) ([]voxel.Int3, float64) {
	if cached, ok := m.agentPathCache[destination]; ok && iterationLimit > 0 {
		if i := slices.Index(cached, origin); i >= 0 {
			cost, valid := m.validatePath(cached[i:], helper, opts.UnitExclusion)
			if valid && (opts.MaxCost <= 0 || cost <= opts.MaxCost) {
				util.LogPathDebug(fmt.Sprintf("[Path] cache hit %s -> %s", origin, destination))
				return slices.Clone(cached[i:]), cost
			}
		}
	}
	result, cost := m.FindShortestPathTo(origin, destination, iterationLimit, helper, opts)
	if len(result) > 0 && result[len(result)-1] == destination {
		m.agentPathCache[destination] = slices.Clone(result)
	}
	return result, cost
}

func (m *TileMap) validatePath(steps []voxel.Int3, helper CanEnterTileHelper, ex UnitExclusion) (float64, bool) {
	total := 0.0
	for i := 1; i < len(steps); i++ {
		if !m.TileIsValidAt(steps[i-1]) || !m.TileIsValidAt(steps[i]) {
			return 0, false
		}
		cost, ok := helper.CanEnterTile(m.tileAt(steps[i-1]), m.tileAt(steps[i]), ex)
		if !ok {
			return 0, false
		}
		total += cost
	}
	return total, true
}

func (m *TileMap) ClearPathCaches() {
	clear(m.agentPathCache)
}
