package mesh

import (
	"fmt"
	"sort"
)

// Face is a unique (D-1)-face of the mesh with its incident elements.
// Interior faces have two incident elements, boundary faces one.
type Face struct {
	Vertices []int // Sorted vertex indices
	Elements []int // One or two incident element indices
}

// IsInterior reports whether the face is shared by two elements
func (f *Face) IsInterior() bool {
	return len(f.Elements) == 2
}

// ElementFaces returns the vertex lists of each local face of an
// element, given its vertex connectivity. Face ordering follows the
// local numbering convention for each element type.
func ElementFaces(etype ElementType, vertices []int) [][]int {
	switch etype {
	case Triangle:
		return [][]int{
			{vertices[0], vertices[1]}, // Edge 0
			{vertices[1], vertices[2]}, // Edge 1
			{vertices[2], vertices[0]}, // Edge 2
		}
	case Tet:
		return [][]int{
			{vertices[0], vertices[2], vertices[1]}, // Face 0
			{vertices[0], vertices[1], vertices[3]}, // Face 1
			{vertices[1], vertices[2], vertices[3]}, // Face 2
			{vertices[0], vertices[3], vertices[2]}, // Face 3
		}
	default:
		return [][]int{}
	}
}

// faceKey builds an order-independent lookup key for a face
func faceKey(faceVerts []int) string {
	sorted := make([]int, len(faceVerts))
	copy(sorted, faceVerts)
	sort.Ints(sorted)
	return fmt.Sprintf("%v", sorted)
}

// ComputeFaceToElems enumerates the unique faces of the mesh and
// records the incident elements of each. Faces are matched by their
// vertex set, independent of orientation. The result is cached;
// recompute after mesh mutation via InvalidateConnectivity.
func (m *SimplexMesh) ComputeFaceToElems() {
	faceMap := make(map[string]int)
	faces := make([]Face, 0, m.NumElements()*m.ElementType.NumFaces()/2)

	for elemID := 0; elemID < m.NumElements(); elemID++ {
		for _, faceVerts := range ElementFaces(m.ElementType, m.Elements[elemID]) {
			key := faceKey(faceVerts)

			if faceID, exists := faceMap[key]; exists {
				// Second incidence - interior face
				faces[faceID].Elements = append(faces[faceID].Elements, elemID)
			} else {
				sorted := make([]int, len(faceVerts))
				copy(sorted, faceVerts)
				sort.Ints(sorted)

				faceMap[key] = len(faces)
				faces = append(faces, Face{
					Vertices: sorted,
					Elements: []int{elemID},
				})
			}
		}
	}

	m.faces = faces
}

// FaceToElems returns the cached face-to-element map, or nil if
// ComputeFaceToElems has not been called since the last invalidation
func (m *SimplexMesh) FaceToElems() []Face {
	return m.faces
}
