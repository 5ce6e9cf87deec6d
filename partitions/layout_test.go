package partitions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshpart/mesh"
)

func TestBuildLayoutFromTags(t *testing.T) {
	m := mesh.UnitSquareMesh().Split() // 8 elements
	require.NoError(t, m.SetElementTags([]int{1, 1, 2, 2, 2, 1, 2, 1}))

	l, err := BuildLayout(m)
	require.NoError(t, err)
	require.NoError(t, l.Validate())

	assert.Equal(t, 2, l.NumPartitions)
	assert.Equal(t, 8, l.TotalElements)
	assert.ElementsMatch(t, []int{0, 1, 5, 7}, l.Elements[0])
	assert.ElementsMatch(t, []int{2, 3, 4, 6}, l.Elements[1])

	// Round trip global -> local -> global
	for p, elems := range l.Elements {
		for localIdx, globalElem := range elems {
			assert.Equal(t, localIdx, l.GlobalToLocal[p][globalElem])
			assert.Equal(t, p, l.EToP[globalElem])
		}
	}
}

func TestBuildLayoutRejectsBadTags(t *testing.T) {
	m := mesh.UnitSquareMesh()
	require.NoError(t, m.SetElementTags([]int{0, 1}))

	_, err := BuildLayout(m)
	assert.Error(t, err)
}

func TestLayoutStatistics(t *testing.T) {
	m := mesh.UnitSquareMesh().Split()
	require.NoError(t, m.SetElementTags([]int{1, 1, 1, 1, 1, 1, 2, 2}))

	l, err := BuildLayout(m)
	require.NoError(t, err)

	s := l.Statistics()
	assert.Equal(t, 2, s.NumPartitions)
	assert.Equal(t, 2, s.MinElements)
	assert.Equal(t, 6, s.MaxElements)
	assert.InDelta(t, 4.0, s.AvgElements, 1e-15)
	assert.InDelta(t, 1.5, s.Imbalance, 1e-15)
}

func TestExchangeCountsMatchCutFaces(t *testing.T) {
	m := mesh.UnitSquareMesh()
	for i := 0; i < 4; i++ {
		m = m.Split()
	}
	require.NoError(t, Partition(m, Metis, 3))

	l, err := BuildLayout(m)
	require.NoError(t, err)

	counts, err := l.ExchangeCounts(m)
	require.NoError(t, err)
	require.NoError(t, VerifyExchange(counts))

	// Each cut face is counted once per direction, so the directed
	// totals must be exactly twice the cut face count
	m.ComputeFaceToElems()
	cut := 0
	for _, f := range m.FaceToElems() {
		if f.IsInterior() && m.ElementTags[f.Elements[0]] != m.ElementTags[f.Elements[1]] {
			cut++
		}
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, 2*cut, total)
}

func TestExchangeCountsRequireDualGraph(t *testing.T) {
	m := mesh.UnitSquareMesh()
	l, err := BuildLayout(m)
	require.NoError(t, err)

	_, err = l.ExchangeCounts(m)
	var missing *MissingConnectivityError
	assert.ErrorAs(t, err, &missing)
}

func TestVerifyExchangeDetectsAsymmetry(t *testing.T) {
	counts := map[[2]int]int{
		{0, 1}: 3,
		{1, 0}: 2,
	}
	assert.Error(t, VerifyExchange(counts))
}
