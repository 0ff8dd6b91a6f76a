package sorter

import (
	"testing"

	"sortsearch/pkg/monitor"

	"github.com/stretchr/testify/assert"
)

func TestTreeSortKeepsDuplicates(t *testing.T) {
	data := []int64{4, 4, -1, 4, 0, -1}
	NewTreeSort(DefaultDegree).Sort(data)
	assert.Equal(t, []int64{-1, -1, 0, 4, 4, 4}, data)
}

func TestTreeSortZeroDegreeFallsBack(t *testing.T) {
	ts := &TreeSort{}
	data := []int64{2, 1}
	assert.NotPanics(t, func() { ts.Sort(data) })
	assert.Equal(t, []int64{1, 2}, data)
}

func TestTreeSortCountsComparisons(t *testing.T) {
	stats := monitor.NewOpStats()
	ts := NewTreeSort(4)
	ts.Stats = stats

	data := []int64{9, 7, 5, 3, 1}
	ts.Sort(data)

	assert.Equal(t, []int64{1, 3, 5, 7, 9}, data)
	assert.NotZero(t, stats.Snapshot().Comparisons)
	assert.Zero(t, stats.Snapshot().Swaps)
}
