package partitions

import (
	"fmt"

	"github.com/notargets/meshpart/mesh"
)

// PartitionQuality returns the cut ratio of the current element tags:
// the number of interior faces whose two incident elements carry
// different tags, divided by the total face count (boundary faces
// included in the denominator). The result is in [0, 1]; lower means
// less inter-partition communication.
//
// Face-to-element connectivity must already be computed; unlike
// Partition, this never triggers recomputation because it is a
// read-only diagnostic.
func PartitionQuality(m *mesh.SimplexMesh) (float64, error) {
	faces := m.FaceToElems()
	if faces == nil {
		return 0, &MissingConnectivityError{What: "face to element"}
	}
	if len(faces) == 0 {
		return 0, fmt.Errorf("mesh has no faces")
	}

	cut := 0
	for i := range faces {
		f := &faces[i]
		if f.IsInterior() && m.ElementTags[f.Elements[0]] != m.ElementTags[f.Elements[1]] {
			cut++
		}
	}

	return float64(cut) / float64(len(faces)), nil
}
