package partitions

import (
	"fmt"
	"math"

	metis "github.com/notargets/go-metis"

	"github.com/notargets/meshpart/mesh"
)

func init() {
	register(Metis, newMetisPartitioner)
}

// metisPartitioner drives METIS through its CSR (xadj/adjncy) input
// format. METIS indices are 32-bit, so graph conversion checks for
// overflow. Labels are 0-based.
type metisPartitioner struct {
	cfg *Config

	xadj   []int32
	adjncy []int32
	part   []int32
}

func newMetisPartitioner(cfg *Config) graphPartitioner {
	return &metisPartitioner{cfg: cfg}
}

func (mp *metisPartitioner) buildGraph(g *mesh.AdjacencyGraph) error {
	mp.xadj = make([]int32, len(g.Ptr))
	for i, v := range g.Ptr {
		if v > math.MaxInt32 {
			return &IndexConversionError{Backend: Metis, Value: v}
		}
		mp.xadj[i] = int32(v)
	}

	mp.adjncy = make([]int32, len(g.Indices))
	for i, v := range g.Indices {
		if v > math.MaxInt32 {
			return &IndexConversionError{Backend: Metis, Value: v}
		}
		mp.adjncy[i] = int32(v)
	}

	return nil
}

func (mp *metisPartitioner) run(nParts int32) error {
	opts := make([]int32, metis.NoOptions)
	if err := metis.SetDefaultOptions(opts); err != nil {
		return fmt.Errorf("failed to set METIS options: %w", err)
	}

	if mp.cfg.Objective == ObjectiveVol {
		opts[metis.OptionObjType] = metis.ObjTypeVol
	} else {
		opts[metis.OptionObjType] = metis.ObjTypeCut
	}

	ubvec := []float32{mp.cfg.ImbalanceFactor}

	// Uniform per-element cost: no vertex or edge weights, no target
	// partition weights
	part, _, err := metis.PartGraphKwayWeighted(
		mp.xadj, mp.adjncy, nil, nil,
		nParts, nil, ubvec, opts,
	)
	if err != nil {
		return err
	}

	if len(part) != len(mp.xadj)-1 {
		return fmt.Errorf("METIS returned %d labels for %d nodes",
			len(part), len(mp.xadj)-1)
	}

	mp.part = part
	return nil
}

func (mp *metisPartitioner) labels() []int32 {
	return mp.part
}
