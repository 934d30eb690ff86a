package path

import (
	"slices"
)

// Edge is a traversable connection to a neighbouring node.
type Edge[T any] struct {
	To   T
	Cost float64
}

type AStarSource[T comparable] interface {
	// GetEdges returns the enterable neighbours of node in a stable order.
	GetEdges(node T) []Edge[T]
	// Heuristic must never overestimate the remaining cost to a goal.
	Heuristic(node T) float64
	IsGoal(node T) bool
}

type SearchLimits struct {
	// IterationLimit bounds the number of expanded nodes. Zero expands nothing.
	IterationLimit int
	// MaxCost prunes every node whose accumulated cost exceeds it. Zero disables the bound.
	MaxCost float64
	// ApproachOnly returns the path to the reached node closest to the goal when the goal itself was not reached.
	ApproachOnly bool
}

type SearchResult[T comparable] struct {
	Path       []T
	Cost       float64
	Found      bool
	Iterations int
}

// AStar runs a bounded best-first search from start.
// Nodes are ordered by cost plus heuristic; equal priorities are expanded in the order they were queued,
// and neighbours are queued in the order GetEdges returns them, so identical inputs give identical paths.
func AStar[T comparable](start T, dataSource AStarSource[T], limits SearchLimits) SearchResult[T] {
	if dataSource.IsGoal(start) {
		return SearchResult[T]{Path: []T{start}, Found: true}
	}

	costSoFar := map[T]float64{start: 0}
	prev := make(map[T]T)
	existingNodes := make(map[T]PathNode[T])
	closed := make(map[T]bool)

	startNode := NewNode(start)
	startNode.SetPriority(dataSource.Heuristic(start))
	existingNodes[start] = startNode
	Q := NewPriorityQueue([]PathNode[T]{startNode})

	closest := start
	closestDistance := dataSource.Heuristic(start)

	iterations := 0
	for !Q.IsEmpty() && iterations < limits.IterationLimit {
		current := Q.Dequeue().GetValue()
		iterations++
		if dataSource.IsGoal(current) {
			return SearchResult[T]{
				Path:       reconstruct(prev, start, current),
				Cost:       costSoFar[current],
				Found:      true,
				Iterations: iterations,
			}
		}
		closed[current] = true

		for _, edge := range dataSource.GetEdges(current) {
			if closed[edge.To] {
				continue
			}
			newCost := costSoFar[current] + edge.Cost
			if limits.MaxCost > 0 && newCost > limits.MaxCost {
				continue
			}
			if oldCost, known := costSoFar[edge.To]; known && newCost >= oldCost {
				continue
			}
			costSoFar[edge.To] = newCost
			prev[edge.To] = current

			heuristic := dataSource.Heuristic(edge.To)
			node, ok := existingNodes[edge.To]
			if !ok {
				node = NewNode(edge.To)
				existingNodes[edge.To] = node
			}
			node.SetPriority(newCost + heuristic)
			Q.Enqueue(node)

			if heuristic < closestDistance {
				closest = edge.To
				closestDistance = heuristic
			}
		}
	}

	if !limits.ApproachOnly {
		return SearchResult[T]{Iterations: iterations}
	}
	return SearchResult[T]{
		Path:       reconstruct(prev, start, closest),
		Cost:       costSoFar[closest],
		Found:      dataSource.IsGoal(closest),
		Iterations: iterations,
	}
}

func reconstruct[T comparable](prev map[T]T, start, end T) []T {
	pathToTarget := []T{end}
	current := end
	for current != start {
		current = prev[current]
		pathToTarget = append(pathToTarget, current)
	}
	slices.Reverse(pathToTarget)
	return pathToTarget
}
