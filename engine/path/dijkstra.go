package path

type DijkstraSource[T any] interface {
	GetNeighbors(node T) []T
	GetCost(currentNode T, neighbor T) float64
}

// Dijkstra expands every node reachable from source whose distance does not exceed maxCost.
// dist holds the cheapest known cost of each reached node, prev its predecessor on that route.
func Dijkstra[T comparable](source *PqItem[T], maxCost float64, dataSource DijkstraSource[T]) (dist map[T]float64, prev map[T]T) {
	start := source.GetValue()
	dist = map[T]float64{start: 0}
	prev = make(map[T]T)
	nodes := map[T]PathNode[T]{start: source}
	settled := make(map[T]bool)

	source.SetPriority(0)
	queue := NewPriorityQueue([]PathNode[T]{source})
	for !queue.IsEmpty() {
		current := queue.Dequeue().GetValue()
		if settled[current] {
			continue
		}
		settled[current] = true
		for _, neighbor := range dataSource.GetNeighbors(current) {
			if settled[neighbor] {
				continue
			}
			alt := dist[current] + dataSource.GetCost(current, neighbor)
			if alt > maxCost {
				continue
			}
			if known, ok := dist[neighbor]; ok && alt >= known {
				continue
			}
			dist[neighbor] = alt
			prev[neighbor] = current
			node, ok := nodes[neighbor]
			if !ok {
				node = NewNode(neighbor)
				nodes[neighbor] = node
			}
			queue.Update(node, alt)
		}
	}
	return dist, prev
}
