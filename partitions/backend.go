package partitions

import (
	"sort"

	"github.com/notargets/meshpart/mesh"
)

// Backend names a graph-partitioning algorithm. Whether a backend is
// available is a build-time fact: compiled-in backends register
// themselves at process start, and requesting an unregistered one
// fails with BackendUnavailableError before any computation.
type Backend string

const (
	// Metis selects the METIS multilevel k-way partitioner
	Metis Backend = "metis"

	// Scotch names the Scotch partitioner. No Go binding is linked
	// into this module, so it is declared but never registered;
	// requesting it exercises the unavailable path.
	Scotch Backend = "scotch"
)

// graphPartitioner is the capability set every backend variant
// implements: convert the adjacency graph into the library's own
// representation, run the partitioner, and collect one label per
// node. Library types never cross this boundary.
type graphPartitioner interface {
	// buildGraph converts the CSR adjacency into the backend's
	// integer width and graph representation
	buildGraph(g *mesh.AdjacencyGraph) error

	// run invokes the multilevel partitioner for nParts partitions
	// with uniform cost between any two partitions
	run(nParts int32) error

	// labels returns one partition label per node, contiguous from
	// the backend's native base
	labels() []int32
}

var registry = make(map[Backend]func(*Config) graphPartitioner)

// register adds a backend variant to the process-wide registry.
// Called from init in each compiled-in backend file.
func register(name Backend, factory func(*Config) graphPartitioner) {
	registry[name] = factory
}

// Available reports whether the named backend is compiled in
func Available(name Backend) bool {
	_, ok := registry[name]
	return ok
}

// AvailableBackends returns the names of all compiled-in backends
func AvailableBackends() []Backend {
	names := make([]Backend, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
