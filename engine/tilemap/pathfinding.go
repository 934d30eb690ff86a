package tilemap

import (
	"fmt"

	"github.com/memmaker/tileworld/engine/path"
	"github.com/memmaker/tileworld/engine/util"
	"github.com/memmaker/tileworld/engine/voxel"
)

// CanEnterTileHelper decides the movement rules of one kind of agent.
type CanEnterTileHelper interface {
	// CanEnterTile returns the cost of stepping from one tile to an adjacent one, and false when the step is impossible.
	CanEnterTile(from, to *Tile, ex UnitExclusion) (float64, bool)
	// Heuristic estimates the remaining cost from a tile to the box [destStart, destEnd). It must not overestimate.
	Heuristic(from, destStart, destEnd voxel.Int3) float64
}

type PathOptions struct {
	UnitExclusion
	// ApproachOnly returns the path towards the closest reached tile when the destination is out of reach.
	ApproachOnly bool
	// MaxCost bounds the accumulated step cost. Zero means unbounded.
	MaxCost float64
}

func DefaultPathOptions() PathOptions {
	return PathOptions{UnitExclusion: UnitExclusion{IgnoreMovingUnits: true}}
}

type tileGraph struct {
	tileMap    *TileMap
	helper     CanEnterTileHelper
	exclusion  UnitExclusion
	destStart  voxel.Int3
	destEnd    voxel.Int3
	edgeBuffer []path.Edge[voxel.Int3]
}

func (g *tileGraph) GetEdges(node voxel.Int3) []path.Edge[voxel.Int3] {
	from := g.tileMap.tileAt(node)
	edges := g.edgeBuffer[:0]
	for _, dir := range AllDirections {
		next := node.Add(dir.Offset())
		if !g.tileMap.TileIsValidAt(next) {
			continue
		}
		cost, ok := g.helper.CanEnterTile(from, g.tileMap.tileAt(next), g.exclusion)
		if !ok {
			continue
		}
		edges = append(edges, path.Edge[voxel.Int3]{To: next, Cost: cost})
	}
	g.edgeBuffer = edges
	return edges
}

func (g *tileGraph) Heuristic(node voxel.Int3) float64 {
	return g.helper.Heuristic(node, g.destStart, g.destEnd)
}

func (g *tileGraph) IsGoal(node voxel.Int3) bool {
	return node.Within(g.destStart, g.destEnd)
}

// FindShortestPath searches a path from origin into the box [destStart, destEnd).
// The returned path starts with origin; the cost is the sum of the helper's step costs.
// A nil path means the destination was not reached within iterationLimit expansions,
// unless opts.ApproachOnly is set, in which case the path to the closest reached tile is returned.
func (m *TileMap) FindShortestPath(origin, destStart, destEnd voxel.Int3, iterationLimit int, helper CanEnterTileHelper, opts PathOptions) ([]voxel.Int3, float64) {
	if m.GetTileAt(origin) == nil {
		util.LogPathWarning(fmt.Sprintf("[Path] invalid origin %s", origin))
		return nil, 0
	}
	if destEnd.X <= destStart.X || destEnd.Y <= destStart.Y || destEnd.Z <= destStart.Z {
		util.LogPathWarning(fmt.Sprintf("[Path] empty destination box %s-%s", destStart, destEnd))
		return nil, 0
	}
	graph := &tileGraph{
		tileMap:   m,
		helper:    helper,
		exclusion: opts.UnitExclusion,
		destStart: destStart,
		destEnd:   destEnd,
	}
	result := path.AStar[voxel.Int3](origin, graph, path.SearchLimits{
		IterationLimit: iterationLimit,
		MaxCost:        opts.MaxCost,
		ApproachOnly:   opts.ApproachOnly,
	})
	util.LogPathDebug(fmt.Sprintf("[Path] %s -> %s-%s: found=%t length=%d iterations=%d", origin, destStart, destEnd, result.Found, len(result.Path), result.Iterations))
	return result.Path, result.Cost
}

// FindShortestPathTo searches a path from origin to a single tile.
func (m *TileMap) FindShortestPathTo(origin, destination voxel.Int3, iterationLimit int, helper CanEnterTileHelper, opts PathOptions) ([]voxel.Int3, float64) {
	return m.FindShortestPath(origin, destination, destination.Add(voxel.Int3{X: 1, Y: 1, Z: 1}), iterationLimit, helper, opts)
}

type reachableGraph struct {
	tileMap   *TileMap
	helper    CanEnterTileHelper
	exclusion UnitExclusion
	costs     map[[2]voxel.Int3]float64
}

func (g *reachableGraph) GetNeighbors(node voxel.Int3) []voxel.Int3 {
	from := g.tileMap.tileAt(node)
	var neighbors []voxel.Int3
	for _, dir := range AllDirections {
		next := node.Add(dir.Offset())
		if !g.tileMap.TileIsValidAt(next) {
			continue
		}
		cost, ok := g.helper.CanEnterTile(from, g.tileMap.tileAt(next), g.exclusion)
		if !ok {
			continue
		}
		g.costs[[2]voxel.Int3{node, next}] = cost
		neighbors = append(neighbors, next)
	}
	return neighbors
}

func (g *reachableGraph) GetCost(currentNode, neighbor voxel.Int3) float64 {
	return g.costs[[2]voxel.Int3{currentNode, neighbor}]
}

// FindReachableTiles returns every tile reachable from origin within maxCost, with its cheapest cost.
func (m *TileMap) FindReachableTiles(origin voxel.Int3, maxCost float64, helper CanEnterTileHelper, ex UnitExclusion) map[voxel.Int3]float64 {
	if m.GetTileAt(origin) == nil {
		return nil
	}
	graph := &reachableGraph{
		tileMap:   m,
		helper:    helper,
		exclusion: ex,
		costs:     make(map[[2]voxel.Int3]float64),
	}
	dist, _ := path.Dijkstra[voxel.Int3](path.NewNode(origin), maxCost, graph)
	return dist
}
