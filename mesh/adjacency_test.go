package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDualGraphInvariants(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    *SimplexMesh
	}{
		{"square", UnitSquareMesh().Split().Split()},
		{"cube", UnitCubeMesh().Split()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.m
			m.ComputeElemToElems()
			g := m.ElemToElems()
			require.NotNil(t, g)

			require.NoError(t, g.Validate())
			assert.Equal(t, m.NumElements(), g.NumNodes())

			// CSR shape
			assert.Equal(t, 0, g.Ptr[0])
			assert.Equal(t, len(g.Indices), g.Ptr[g.NumNodes()])

			// No element exceeds its face count, and boundary
			// elements have strictly fewer neighbors
			nfaces := m.ElementType.NumFaces()
			sawBoundary := false
			for i := 0; i < g.NumNodes(); i++ {
				assert.LessOrEqual(t, g.Degree(i), nfaces)
				if g.Degree(i) < nfaces {
					sawBoundary = true
				}
			}
			assert.True(t, sawBoundary, "mesh with boundary must have boundary elements")
		})
	}
}

func TestDualGraphSymmetry(t *testing.T) {
	m := UnitCubeMesh().Split()
	m.ComputeElemToElems()
	g := m.ElemToElems()

	for a := 0; a < g.NumNodes(); a++ {
		for _, b := range g.Neighbors(a) {
			assert.Contains(t, g.Neighbors(b), a,
				"element %d lists %d as neighbor, but not vice versa", a, b)
		}
	}
}

func TestDualGraphMatchesFaceMap(t *testing.T) {
	// Every adjacency edge corresponds to one interior face, so the
	// edge count must be exactly twice the interior face count
	m := UnitSquareMesh().Split().Split().Split()
	m.ComputeElemToElems()
	m.ComputeFaceToElems()

	interior := 0
	for _, f := range m.FaceToElems() {
		if f.IsInterior() {
			interior++
		}
	}

	assert.Equal(t, 2*interior, m.ElemToElems().NumEdges())
}

func TestDualGraphSingleElement(t *testing.T) {
	m, err := NewSimplexMesh(Triangle,
		[][]float64{{0, 0}, {1, 0}, {0, 1}},
		[][]int{{0, 1, 2}})
	require.NoError(t, err)

	m.ComputeElemToElems()
	g := m.ElemToElems()

	require.NoError(t, g.Validate())
	assert.Equal(t, 1, g.NumNodes())
	assert.Equal(t, 0, g.NumEdges())
	assert.Empty(t, g.Neighbors(0))
}

func TestDualGraphNoDuplicatePairs(t *testing.T) {
	m := UnitSquareMesh().Split()
	m.ComputeElemToElems()
	g := m.ElemToElems()

	for i := 0; i < g.NumNodes(); i++ {
		seen := make(map[int]bool)
		for _, j := range g.Neighbors(i) {
			assert.False(t, seen[j], "element %d lists neighbor %d twice", i, j)
			assert.NotEqual(t, i, j, "element %d lists itself as neighbor", i)
			seen[j] = true
		}
	}
}

func TestInvalidateConnectivity(t *testing.T) {
	m := UnitSquareMesh()
	m.ComputeElemToElems()
	m.ComputeFaceToElems()
	require.NotNil(t, m.ElemToElems())
	require.NotNil(t, m.FaceToElems())

	m.InvalidateConnectivity()
	assert.Nil(t, m.ElemToElems())
	assert.Nil(t, m.FaceToElems())
	assert.Equal(t, -1, m.NumFaces())
}
