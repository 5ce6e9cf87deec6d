package mesh

import (
	"fmt"
)

// ElementType identifies the simplex shape of the mesh elements
type ElementType int

const (
	Triangle ElementType = iota // 2D simplex, 3 vertices
	Tet                         // 3D simplex, 4 vertices
)

func (e ElementType) String() string {
	return [...]string{"Triangle", "Tet"}[e]
}

// NumVerts returns the number of vertices per element
func (e ElementType) NumVerts() int {
	switch e {
	case Triangle:
		return 3
	case Tet:
		return 4
	}
	return 0
}

// NumFaces returns the number of (D-1)-faces per element
func (e ElementType) NumFaces() int {
	switch e {
	case Triangle:
		return 3
	case Tet:
		return 4
	}
	return 0
}

// Dimension returns the spatial dimension of the element type
func (e ElementType) Dimension() int {
	switch e {
	case Triangle:
		return 2
	case Tet:
		return 3
	}
	return 0
}

// SimplexMesh is an unstructured mesh of uniform simplex elements
// (triangles or tetrahedra). Element tags are 1-based: tag 1 means
// "no special region"; partitioning overwrites tags with partition
// membership (partition p -> tag p+1).
//
// Connectivity artifacts (element adjacency, face incidence) are
// computed on request and cached; callers that mutate the mesh must
// call InvalidateConnectivity.
type SimplexMesh struct {
	// Geometry
	Vertices [][]float64 // Vertex coordinates [nvertices][dim]

	// Element data
	Elements    [][]int // Element to vertex connectivity [nelems][nverts]
	ElementType ElementType
	ElementTags []int // One tag per element, 1-based

	// Cached connectivity
	elemToElems *AdjacencyGraph
	faces       []Face
}

// NewSimplexMesh creates a mesh from vertex coordinates and element
// connectivity, with all element tags initialized to 1.
func NewSimplexMesh(etype ElementType, vertices [][]float64, elements [][]int) (*SimplexMesh, error) {
	nv := etype.NumVerts()
	for i, elem := range elements {
		if len(elem) != nv {
			return nil, fmt.Errorf("element %d has %d vertices, %s requires %d",
				i, len(elem), etype, nv)
		}
		for _, v := range elem {
			if v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("element %d references vertex %d, mesh has %d vertices",
					i, v, len(vertices))
			}
		}
	}

	tags := make([]int, len(elements))
	for i := range tags {
		tags[i] = 1
	}

	return &SimplexMesh{
		Vertices:    vertices,
		Elements:    elements,
		ElementType: etype,
		ElementTags: tags,
	}, nil
}

// NumElements returns the number of elements in the mesh
func (m *SimplexMesh) NumElements() int {
	return len(m.Elements)
}

// NumVertices returns the number of vertices in the mesh
func (m *SimplexMesh) NumVertices() int {
	return len(m.Vertices)
}

// NumFaces returns the number of unique faces, or -1 if face
// connectivity has not been computed
func (m *SimplexMesh) NumFaces() int {
	if m.faces == nil {
		return -1
	}
	return len(m.faces)
}

// SetElementTags overwrites all element tags
func (m *SimplexMesh) SetElementTags(tags []int) error {
	if len(tags) != m.NumElements() {
		return fmt.Errorf("tag count %d does not match element count %d",
			len(tags), m.NumElements())
	}
	copy(m.ElementTags, tags)
	return nil
}

// HasUniformTags reports whether every element carries tag 1
func (m *SimplexMesh) HasUniformTags() bool {
	for _, t := range m.ElementTags {
		if t != 1 {
			return false
		}
	}
	return true
}

// InvalidateConnectivity drops all cached connectivity artifacts.
// Must be called after any mutation of Elements or Vertices.
func (m *SimplexMesh) InvalidateConnectivity() {
	m.elemToElems = nil
	m.faces = nil
}
