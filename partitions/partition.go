package partitions

import (
	"fmt"
	"log"

	"github.com/notargets/meshpart/mesh"
)

// Partition assigns every mesh element to one of nParts partitions
// using the named backend, writing the result into the element tags:
// element i in partition p receives tag p+1 (tag 0 is never used, per
// the 1-based tagging convention of the mesh). Any pre-existing tags
// are overwritten; non-uniform tags trigger a warning first.
//
// Tags are written all-or-nothing: on any error they are left
// unchanged. The dual graph is computed lazily if absent.
func Partition(m *mesh.SimplexMesh, backend Backend, nParts int) error {
	return PartitionWithConfig(m, backend, DefaultConfig(nParts))
}

// PartitionWithConfig is Partition with explicit backend parameters
func PartitionWithConfig(m *mesh.SimplexMesh, backend Backend, cfg *Config) error {
	nParts := int(cfg.NParts)
	if nParts <= 0 || nParts > m.NumElements() {
		return &InvalidPartitionCountError{NParts: nParts, NumElements: m.NumElements()}
	}

	factory, ok := registry[backend]
	if !ok {
		return &BackendUnavailableError{Backend: backend}
	}

	if !m.HasUniformTags() {
		log.Printf("Erasing non-uniform element tags")
	}
	log.Printf("Partitioning mesh into %d parts using %s", nParts, backend)

	if m.ElemToElems() == nil {
		m.ComputeElemToElems()
	}

	p := factory(cfg)
	if err := p.buildGraph(m.ElemToElems()); err != nil {
		return err
	}
	if err := p.run(cfg.NParts); err != nil {
		return &BackendFailureError{Backend: backend, Err: err}
	}

	labels := p.labels()
	if len(labels) != m.NumElements() {
		return &BackendFailureError{
			Backend: backend,
			Err: fmt.Errorf("got %d labels for %d elements",
				len(labels), m.NumElements()),
		}
	}
	for i, l := range labels {
		if l < 0 || int(l) >= nParts {
			return &BackendFailureError{
				Backend: backend,
				Err:     fmt.Errorf("element %d has label %d outside [0, %d)", i, l, nParts),
			}
		}
	}

	for i, l := range labels {
		m.ElementTags[i] = int(l) + 1
	}

	return nil
}
