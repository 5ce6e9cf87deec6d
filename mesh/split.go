package mesh

// edgeKey identifies a mesh edge independent of direction
type edgeKey struct {
	a, b int
}

func newEdgeKey(v0, v1 int) edgeKey {
	if v0 > v1 {
		v0, v1 = v1, v0
	}
	return edgeKey{a: v0, b: v1}
}

// midpoints tracks the vertices inserted at edge midpoints during
// refinement, deduplicated across elements sharing an edge
type midpoints struct {
	mesh     *SimplexMesh
	vertices [][]float64
	index    map[edgeKey]int
}

func newMidpoints(m *SimplexMesh) *midpoints {
	verts := make([][]float64, len(m.Vertices), 2*len(m.Vertices))
	copy(verts, m.Vertices)
	return &midpoints{
		mesh:     m,
		vertices: verts,
		index:    make(map[edgeKey]int),
	}
}

// get returns the midpoint vertex of edge (v0, v1), inserting it on
// first use
func (mp *midpoints) get(v0, v1 int) int {
	key := newEdgeKey(v0, v1)
	if idx, exists := mp.index[key]; exists {
		return idx
	}

	p0, p1 := mp.mesh.Vertices[v0], mp.mesh.Vertices[v1]
	mid := make([]float64, len(p0))
	for d := range mid {
		mid[d] = 0.5 * (p0[d] + p1[d])
	}

	idx := len(mp.vertices)
	mp.vertices = append(mp.vertices, mid)
	mp.index[key] = idx
	return idx
}

// Split returns a uniformly refined copy of the mesh: each triangle
// is split into 4 triangles via its edge midpoints, each tetrahedron
// into 8 tetrahedra (4 corner tets plus the interior octahedron cut
// along one diagonal). Child elements inherit the parent's tag. The
// returned mesh has no cached connectivity.
func (m *SimplexMesh) Split() *SimplexMesh {
	mp := newMidpoints(m)

	var childrenPerElem int
	switch m.ElementType {
	case Triangle:
		childrenPerElem = 4
	case Tet:
		childrenPerElem = 8
	}

	elements := make([][]int, 0, childrenPerElem*m.NumElements())
	tags := make([]int, 0, childrenPerElem*m.NumElements())

	for elemID, ev := range m.Elements {
		var children [][]int

		switch m.ElementType {
		case Triangle:
			m01 := mp.get(ev[0], ev[1])
			m12 := mp.get(ev[1], ev[2])
			m02 := mp.get(ev[0], ev[2])
			children = [][]int{
				{ev[0], m01, m02},
				{m01, ev[1], m12},
				{m02, m12, ev[2]},
				{m01, m12, m02},
			}

		case Tet:
			m01 := mp.get(ev[0], ev[1])
			m02 := mp.get(ev[0], ev[2])
			m03 := mp.get(ev[0], ev[3])
			m12 := mp.get(ev[1], ev[2])
			m13 := mp.get(ev[1], ev[3])
			m23 := mp.get(ev[2], ev[3])
			children = [][]int{
				// Corner tets
				{ev[0], m01, m02, m03},
				{m01, ev[1], m12, m13},
				{m02, m12, ev[2], m23},
				{m03, m13, m23, ev[3]},
				// Interior octahedron, cut along diagonal m02-m13
				{m01, m02, m03, m13},
				{m01, m02, m12, m13},
				{m02, m03, m13, m23},
				{m02, m12, m13, m23},
			}
		}

		for _, child := range children {
			elements = append(elements, child)
			tags = append(tags, m.ElementTags[elemID])
		}
	}

	return &SimplexMesh{
		Vertices:    mp.vertices,
		Elements:    elements,
		ElementType: m.ElementType,
		ElementTags: tags,
	}
}
