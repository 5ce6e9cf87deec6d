package partitions

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/notargets/meshpart/mesh"
)

// Layout groups mesh elements by their partition tags, with
// bidirectional mappings between global and partition-local element
// numbering. Build it after a successful Partition call.
type Layout struct {
	NumPartitions int
	TotalElements int

	// EToP maps element k to partition EToP[k] (tag - 1)
	EToP []int

	// Elements lists, per partition, the global element indices in
	// partition-local order
	Elements [][]int

	// GlobalToLocal maps, per partition, global element index to
	// partition-local index
	GlobalToLocal []map[int]int
}

// BuildLayout derives the partition layout from the mesh element
// tags. Tags must be 1-based partition labels as written by
// Partition; a tag below 1 is rejected.
func BuildLayout(m *mesh.SimplexMesh) (*Layout, error) {
	numPartitions := 0
	for i, tag := range m.ElementTags {
		if tag < 1 {
			return nil, fmt.Errorf("element %d has tag %d, expected a 1-based partition tag", i, tag)
		}
		if tag > numPartitions {
			numPartitions = tag
		}
	}

	l := &Layout{
		NumPartitions: numPartitions,
		TotalElements: m.NumElements(),
		EToP:          make([]int, m.NumElements()),
		Elements:      make([][]int, numPartitions),
		GlobalToLocal: make([]map[int]int, numPartitions),
	}
	for p := 0; p < numPartitions; p++ {
		l.GlobalToLocal[p] = make(map[int]int)
	}

	for globalElem, tag := range m.ElementTags {
		p := tag - 1
		l.EToP[globalElem] = p
		l.GlobalToLocal[p][globalElem] = len(l.Elements[p])
		l.Elements[p] = append(l.Elements[p], globalElem)
	}

	return l, nil
}

// Validate checks that the partitions form a disjoint cover of the
// mesh elements
func (l *Layout) Validate() error {
	total := 0
	for p, elems := range l.Elements {
		total += len(elems)
		for localIdx, globalElem := range elems {
			if l.EToP[globalElem] != p {
				return fmt.Errorf("element %d listed in partition %d but mapped to %d",
					globalElem, p, l.EToP[globalElem])
			}
			if l.GlobalToLocal[p][globalElem] != localIdx {
				return fmt.Errorf("partition %d: element %d local index mismatch", p, globalElem)
			}
		}
	}
	if total != l.TotalElements {
		return fmt.Errorf("partitions cover %d elements, mesh has %d", total, l.TotalElements)
	}
	return nil
}

// Stats summarizes the element balance of a layout
type Stats struct {
	NumPartitions int
	MinElements   int
	MaxElements   int
	AvgElements   float64
	Imbalance     float64 // MaxElements / AvgElements
}

// Statistics computes the element balance across partitions
func (l *Layout) Statistics() Stats {
	counts := make([]float64, l.NumPartitions)
	for p, elems := range l.Elements {
		counts[p] = float64(len(elems))
	}

	avg := stat.Mean(counts, nil)
	max := floats.Max(counts)
	min := floats.Min(counts)

	return Stats{
		NumPartitions: l.NumPartitions,
		MinElements:   int(min),
		MaxElements:   int(max),
		AvgElements:   avg,
		Imbalance:     max / avg,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("partitions: %d, elements per partition: [%d, %d], avg %.1f, imbalance %.3f",
		s.NumPartitions, s.MinElements, s.MaxElements, s.AvgElements, s.Imbalance)
}

// ExchangeCounts derives, from the dual graph, the number of shared
// interior faces between each ordered pair of distinct partitions.
// Each shared face is counted once in each direction, so the result
// describes the per-direction communication pattern. Requires the
// dual graph to be computed.
func (l *Layout) ExchangeCounts(m *mesh.SimplexMesh) (map[[2]int]int, error) {
	g := m.ElemToElems()
	if g == nil {
		return nil, &MissingConnectivityError{What: "element to element"}
	}

	counts := make(map[[2]int]int)
	for elem := 0; elem < g.NumNodes(); elem++ {
		p := l.EToP[elem]
		for _, neighbor := range g.Neighbors(elem) {
			q := l.EToP[neighbor]
			if p != q {
				counts[[2]int{p, q}]++
			}
		}
	}

	return counts, nil
}

// VerifyExchange checks that the exchange pattern is symmetric: every
// face partition p shares with q, q shares with p. An asymmetry here
// means the dual graph itself is inconsistent.
func VerifyExchange(counts map[[2]int]int) error {
	for pair, n := range counts {
		reverse := [2]int{pair[1], pair[0]}
		if counts[reverse] != n {
			return fmt.Errorf("asymmetric exchange: %d->%d has %d faces, %d->%d has %d",
				pair[0], pair[1], n, pair[1], pair[0], counts[reverse])
		}
	}
	return nil
}
