package exercise

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDijkstra_SingleVertex(t *testing.T) {
	t.Parallel()
	// A graph with one vertex and no edges: distance to itself is 0.
	dist, err := Dijkstra([][]Edge{{}}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, dist)
}

func TestDijkstra_LineGraph(t *testing.T) {
	t.Parallel()
	graph := [][]Edge{
		{{To: 1, Weight: 2}},
		{{To: 2, Weight: 3}},
		{},
	}
	dist, err := Dijkstra(graph, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 5}, dist)
}

func TestDijkstra_PrefersCheaperPath(t *testing.T) {
	t.Parallel()
	// Direct edge 0->2 costs 10; the detour through 1 costs 1+2=3.
	graph := [][]Edge{
		{{To: 1, Weight: 1}, {To: 2, Weight: 10}},
		{{To: 2, Weight: 2}},
		{},
	}
	dist, err := Dijkstra(graph, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, dist)
}

func TestDijkstra_UnreachableKeepsSentinel(t *testing.T) {
	t.Parallel()
	graph := [][]Edge{
		{{To: 1, Weight: 4}},
		{},
		{}, // vertex 2 has no incoming path
	}
	dist, err := Dijkstra(graph, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, Unreachable}, dist)
}

func TestDijkstra_StaleEntriesAreSkipped(t *testing.T) {
	t.Parallel()
	// Multiple relaxations of vertex 3 push duplicate heap entries; only
	// the cheapest settles.
	graph := [][]Edge{
		{{To: 1, Weight: 7}, {To: 2, Weight: 1}, {To: 3, Weight: 20}},
		{{To: 3, Weight: 1}},
		{{To: 1, Weight: 2}, {To: 3, Weight: 8}},
		{},
	}
	dist, err := Dijkstra(graph, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 1, 4}, dist)
}

func TestDijkstra_ZeroWeightEdges(t *testing.T) {
	t.Parallel()
	graph := [][]Edge{
		{{To: 1, Weight: 0}},
		{{To: 2, Weight: 0}},
		{},
	}
	dist, err := Dijkstra(graph, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, dist)
}

func TestDijkstra_NegativeWeightRejected(t *testing.T) {
	t.Parallel()
	graph := [][]Edge{
		{{To: 1, Weight: -1}},
		{},
	}
	_, err := Dijkstra(graph, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNegativeWeight), "expected ErrNegativeWeight, got %v", err)
}

func TestDijkstra_StartOutOfRange(t *testing.T) {
	t.Parallel()
	_, err := Dijkstra([][]Edge{{}}, 5)
	require.Error(t, err)

	_, err = Dijkstra([][]Edge{{}}, -1)
	require.Error(t, err)
}

func TestDijkstra_EdgeTargetOutOfRange(t *testing.T) {
	t.Parallel()
	graph := [][]Edge{
		{{To: 9, Weight: 1}},
	}
	_, err := Dijkstra(graph, 0)
	require.Error(t, err)
}
