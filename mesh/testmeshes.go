package mesh

// UnitSquareMesh returns the unit square [0,1]^2 meshed with two
// triangles sharing the diagonal
func UnitSquareMesh() *SimplexMesh {
	vertices := [][]float64{
		{0, 0},
		{1, 0},
		{1, 1},
		{0, 1},
	}
	elements := [][]int{
		{0, 1, 2},
		{0, 2, 3},
	}

	m, _ := NewSimplexMesh(Triangle, vertices, elements)
	return m
}

// UnitCubeMesh returns the unit cube [0,1]^3 meshed with six
// tetrahedra around the main diagonal (Kuhn decomposition)
func UnitCubeMesh() *SimplexMesh {
	vertices := [][]float64{
		{0, 0, 0}, // 0: origin
		{1, 0, 0}, // 1: x
		{1, 1, 0}, // 2: xy
		{0, 1, 0}, // 3: y
		{0, 0, 1}, // 4: z
		{1, 0, 1}, // 5: xz
		{1, 1, 1}, // 6: xyz
		{0, 1, 1}, // 7: yz
	}
	// Each tet contains the diagonal 0-6
	elements := [][]int{
		{0, 1, 2, 6},
		{0, 2, 3, 6},
		{0, 3, 7, 6},
		{0, 7, 4, 6},
		{0, 4, 5, 6},
		{0, 5, 1, 6},
	}

	m, _ := NewSimplexMesh(Tet, vertices, elements)
	return m
}
