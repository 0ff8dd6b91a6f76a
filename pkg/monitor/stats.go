package monitor

import (
	"sync/atomic"
)

// OpStats 记录算法执行过程中的基本操作次数。
// 各算法实现持有一个可选的 *OpStats，为 nil 时不计数。
type OpStats struct {
	Comparisons uint64
	Swaps       uint64
	Probes      uint64
}

func NewOpStats() *OpStats {
	return &OpStats{}
}

func (st *OpStats) RecordComparison() {
	if st == nil {
		return
	}
	atomic.AddUint64(&st.Comparisons, 1)
}

func (st *OpStats) RecordSwap() {
	if st == nil {
		return
	}
	atomic.AddUint64(&st.Swaps, 1)
}

func (st *OpStats) RecordProbe() {
	if st == nil {
		return
	}
	atomic.AddUint64(&st.Probes, 1)
}

// Snapshot 返回当前计数的一致性拷贝
func (st *OpStats) Snapshot() OpStats {
	if st == nil {
		return OpStats{}
	}
	return OpStats{
		Comparisons: atomic.LoadUint64(&st.Comparisons),
		Swaps:       atomic.LoadUint64(&st.Swaps),
		Probes:      atomic.LoadUint64(&st.Probes),
	}
}

func (st *OpStats) Reset() {
	if st == nil {
		return
	}
	atomic.StoreUint64(&st.Comparisons, 0)
	atomic.StoreUint64(&st.Swaps, 0)
	atomic.StoreUint64(&st.Probes, 0)
}
