package exercise

import (
	"container/heap"
	"fmt"
	"math"
)

// Unreachable is the distance sentinel for vertices with no path from the
// start vertex.
const Unreachable = math.MaxInt

// Edge is a weighted directed edge in an adjacency-list graph.
type Edge struct {
	// To is the index of the destination vertex.
	To int
	// Weight is the non-negative edge cost.
	Weight int
}

// ErrNegativeWeight indicates an edge with a negative weight, which breaks
// the greedy invariant Dijkstra relies on.
var ErrNegativeWeight = fmt.Errorf("negative edge weight")

// Dijkstra computes shortest-path distances from start to every vertex of
// the weighted adjacency-list graph, using a min-priority queue with the
// lazy decrease-key strategy: relaxations push duplicate heap entries, and
// stale entries are skipped when their recorded cost exceeds the current
// best distance.
//
// Unreachable vertices keep the Unreachable sentinel.
//
// Parameters:
//   - graph: Adjacency list; graph[u] holds the outgoing edges of vertex u.
//   - start: Index of the source vertex.
//
// Returns:
//   - []int: Distance from start to each vertex, Unreachable if no path.
//   - error: ErrNegativeWeight for a negative edge, or an error if start or
//     an edge target is out of range.
func Dijkstra(graph [][]Edge, start int) ([]int, error) {
	n := len(graph)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("dijkstra: start vertex %d out of range [0, %d)", start, n)
	}
	// Fail fast on malformed input before touching the heap.
	for u, edges := range graph {
		for _, e := range edges {
			if e.Weight < 0 {
				return nil, fmt.Errorf("dijkstra: edge %d->%d weight %d: %w", u, e.To, e.Weight, ErrNegativeWeight)
			}
			if e.To < 0 || e.To >= n {
				return nil, fmt.Errorf("dijkstra: edge %d->%d target out of range [0, %d)", u, e.To, n)
			}
		}
	}

	dist := make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[start] = 0

	pq := &vertexHeap{{cost: 0, vertex: start}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(vertexItem)
		// Stale entry: a shorter path was already settled.
		if item.cost > dist[item.vertex] {
			continue
		}
		for _, e := range graph[item.vertex] {
			if next := item.cost + e.Weight; next < dist[e.To] {
				dist[e.To] = next
				heap.Push(pq, vertexItem{cost: next, vertex: e.To})
			}
		}
	}

	return dist, nil
}

// vertexItem is a priority-queue entry pairing a vertex with the path cost
// recorded at push time.
type vertexItem struct {
	cost   int
	vertex int
}

// vertexHeap is a min-heap of vertexItem ordered by cost.
type vertexHeap []vertexItem

func (h vertexHeap) Len() int           { return len(h) }
func (h vertexHeap) Less(i, j int) bool { return h[i].cost < h[j].cost }
func (h vertexHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *vertexHeap) Push(x any)        { *h = append(*h, x.(vertexItem)) }
func (h *vertexHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
