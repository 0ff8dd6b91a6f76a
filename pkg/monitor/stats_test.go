package monitor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNilStatsIsNoop(t *testing.T) {
	var st *OpStats
	assert.NotPanics(t, func() {
		st.RecordComparison()
		st.RecordSwap()
		st.RecordProbe()
		st.Reset()
	})
	assert.Equal(t, OpStats{}, st.Snapshot())
}

func TestCountersConcurrent(t *testing.T) {
	st := NewOpStats()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				st.RecordComparison()
				st.RecordSwap()
				st.RecordProbe()
			}
		}()
	}
	wg.Wait()

	snap := st.Snapshot()
	assert.Equal(t, uint64(8000), snap.Comparisons)
	assert.Equal(t, uint64(8000), snap.Swaps)
	assert.Equal(t, uint64(8000), snap.Probes)

	st.Reset()
	assert.Equal(t, OpStats{}, st.Snapshot())
}
