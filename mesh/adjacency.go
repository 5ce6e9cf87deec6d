package mesh

import (
	"fmt"
	"sort"
)

// AdjacencyGraph is the element adjacency ("dual") graph of a mesh in
// compressed sparse row form: the neighbors of element i are
// Indices[Ptr[i]:Ptr[i+1]]. Two elements are adjacent iff they share
// a face, so the adjacency is symmetric by construction.
type AdjacencyGraph struct {
	Ptr     []int // Length NumElements+1, non-decreasing, Ptr[0]=0
	Indices []int // Concatenated neighbor lists
}

// NumNodes returns the number of graph nodes (mesh elements)
func (g *AdjacencyGraph) NumNodes() int {
	return len(g.Ptr) - 1
}

// NumEdges returns the number of adjacency entries (twice the number
// of shared faces)
func (g *AdjacencyGraph) NumEdges() int {
	return len(g.Indices)
}

// Neighbors returns the neighbor list of node i as a subslice of the
// shared Indices array
func (g *AdjacencyGraph) Neighbors(i int) []int {
	return g.Indices[g.Ptr[i]:g.Ptr[i+1]]
}

// Degree returns the number of neighbors of node i
func (g *AdjacencyGraph) Degree(i int) int {
	return g.Ptr[i+1] - g.Ptr[i]
}

// Validate checks the CSR invariants and adjacency symmetry
func (g *AdjacencyGraph) Validate() error {
	n := g.NumNodes()
	if n < 0 {
		return fmt.Errorf("offsets array is empty")
	}
	if g.Ptr[0] != 0 {
		return fmt.Errorf("offsets must start at 0, got %d", g.Ptr[0])
	}
	for i := 0; i < n; i++ {
		if g.Ptr[i+1] < g.Ptr[i] {
			return fmt.Errorf("offsets decrease at node %d: %d -> %d",
				i, g.Ptr[i], g.Ptr[i+1])
		}
	}
	if g.Ptr[n] != len(g.Indices) {
		return fmt.Errorf("final offset %d does not match index count %d",
			g.Ptr[n], len(g.Indices))
	}

	for i := 0; i < n; i++ {
		for _, j := range g.Neighbors(i) {
			if j < 0 || j >= n {
				return fmt.Errorf("node %d has out-of-range neighbor %d", i, j)
			}
			if !contains(g.Neighbors(j), i) {
				return fmt.Errorf("asymmetric adjacency: %d lists %d but not vice versa", i, j)
			}
		}
	}
	return nil
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// ComputeElemToElems builds the dual graph of the mesh: one node per
// element, one edge per shared face. Each shared face contributes
// exactly one adjacency entry in each direction; boundary faces
// contribute none. The result is cached until InvalidateConnectivity.
func (m *SimplexMesh) ComputeElemToElems() {
	ne := m.NumElements()
	neighbors := make([][]int, ne)

	// Match faces by sorted vertex key; the second element seen with
	// the same face is the neighbor across it
	faceMap := make(map[string]int)
	for elemID := 0; elemID < ne; elemID++ {
		for _, faceVerts := range ElementFaces(m.ElementType, m.Elements[elemID]) {
			key := faceKey(faceVerts)

			if other, exists := faceMap[key]; exists {
				neighbors[other] = append(neighbors[other], elemID)
				neighbors[elemID] = append(neighbors[elemID], other)
				delete(faceMap, key)
			} else {
				faceMap[key] = elemID
			}
		}
	}

	// Compress to CSR with sorted neighbor rows
	ptr := make([]int, ne+1)
	for i := 0; i < ne; i++ {
		ptr[i+1] = ptr[i] + len(neighbors[i])
	}
	indices := make([]int, 0, ptr[ne])
	for i := 0; i < ne; i++ {
		sort.Ints(neighbors[i])
		indices = append(indices, neighbors[i]...)
	}

	m.elemToElems = &AdjacencyGraph{Ptr: ptr, Indices: indices}
}

// ElemToElems returns the cached dual graph, or nil if
// ComputeElemToElems has not been called since the last invalidation
func (m *SimplexMesh) ElemToElems() *AdjacencyGraph {
	return m.elemToElems
}
