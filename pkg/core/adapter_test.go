package core

import (
	"math/rand"
	"testing"

	"sortsearch/pkg/common"
	"sortsearch/pkg/config"
	"sortsearch/pkg/monitor"
	"sortsearch/pkg/searcher"
	"sortsearch/pkg/sorter"

	"github.com/gravitational/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapterEndToEnd(t *testing.T) {
	var op DataOperation = NewAdapter()

	data := []int64{5, 3, 8, 4, 9, 1, 2}
	require.NoError(t, op.Sort(data))
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 8, 9}, data)

	idx, err := op.Search(data, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	idx, err = op.Search(data, 6)
	require.NoError(t, err)
	assert.Equal(t, common.NotFound, idx)
}

func TestAdapterRejectsNilSequence(t *testing.T) {
	op := NewAdapter()

	err := op.Sort(nil)
	require.Error(t, err)
	assert.True(t, trace.IsBadParameter(err))

	idx, err := op.Search(nil, 1)
	require.Error(t, err)
	assert.True(t, trace.IsBadParameter(err))
	assert.Equal(t, common.NotFound, idx)
}

func TestAdapterEmptySequence(t *testing.T) {
	op := NewAdapter()
	data := []int64{}

	require.NoError(t, op.Sort(data))
	assert.Empty(t, data)

	idx, err := op.Search(data, 0)
	require.NoError(t, err)
	assert.Equal(t, common.NotFound, idx)
}

func TestAdapterMatchesDelegates(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	op := NewAdapter()
	qs := sorter.NewQuickSort()
	bs := searcher.NewBinarySearch()

	for round := 0; round < 50; round++ {
		n := rng.Intn(64)
		viaAdapter := make([]int64, n)
		for i := range viaAdapter {
			viaAdapter[i] = rng.Int63n(32) - 16
		}
		direct := append([]int64{}, viaAdapter...)

		require.NoError(t, op.Sort(viaAdapter))
		qs.Sort(direct)
		require.Equal(t, direct, viaAdapter)

		for k := int64(-17); k <= 17; k++ {
			got, err := op.Search(viaAdapter, k)
			require.NoError(t, err)
			require.Equal(t, bs.Search(direct, k), got, "key=%d", k)
		}
	}
}

func TestAdapterMatchesDelegatesOnUnsortedSearch(t *testing.T) {
	op := NewAdapter()
	data := []int64{9, 1, 8, 2, 7}
	for k := int64(0); k < 10; k++ {
		got, err := op.Search(data, k)
		require.NoError(t, err)
		assert.Equal(t, searcher.NewBinarySearch().Search(data, k), got)
	}
}

// reverseSorter 用来验证后端可替换
type reverseSorter struct{ calls int }

func (r *reverseSorter) Name() string { return "reverse" }

func (r *reverseSorter) Sort(data []int64) {
	r.calls++
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}

type fixedSearcher struct{ idx int }

func (f fixedSearcher) Name() string                      { return "fixed" }
func (f fixedSearcher) Search(data []int64, key int64) int { return f.idx }

func TestAdapterSubstitution(t *testing.T) {
	rs := &reverseSorter{}
	op := NewAdapter(WithSorter(rs), WithSearcher(fixedSearcher{idx: 42}))

	data := []int64{1, 2, 3}
	require.NoError(t, op.Sort(data))
	assert.Equal(t, []int64{3, 2, 1}, data)
	assert.Equal(t, 1, rs.calls)

	idx, err := op.Search(data, 2)
	require.NoError(t, err)
	assert.Equal(t, 42, idx)

	s, srch := op.Backends()
	assert.Equal(t, "reverse", s)
	assert.Equal(t, "fixed", srch)
}

func TestNewFromConfig(t *testing.T) {
	stats := monitor.NewOpStats()
	op, err := NewFromConfig(config.EngineConfig{
		Sorter:      "treesort",
		Searcher:    "interpolation",
		BTreeDegree: 8,
	}, stats)
	require.NoError(t, err)

	s, srch := op.Backends()
	assert.Equal(t, "treesort", s)
	assert.Equal(t, "interpolation", srch)

	data := []int64{5, 3, 8, 4, 9, 1, 2}
	require.NoError(t, op.Sort(data))
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 8, 9}, data)

	idx, err := op.Search(data, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
	assert.NotZero(t, stats.Snapshot().Comparisons)
	assert.NotZero(t, stats.Snapshot().Probes)
}

func TestNewFromConfigDefaults(t *testing.T) {
	op, err := NewFromConfig(config.EngineConfig{}, nil)
	require.NoError(t, err)
	s, srch := op.Backends()
	assert.Equal(t, "quicksort", s)
	assert.Equal(t, "binary", srch)
}

func TestNewFromConfigUnknownBackend(t *testing.T) {
	_, err := NewFromConfig(config.EngineConfig{Sorter: "bogo"}, nil)
	require.Error(t, err)
	assert.True(t, trace.IsBadParameter(err))

	_, err = NewFromConfig(config.EngineConfig{Searcher: "linear"}, nil)
	require.Error(t, err)
	assert.True(t, trace.IsBadParameter(err))
}
