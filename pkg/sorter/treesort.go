package sorter

import (
	"sortsearch/pkg/monitor"

	"github.com/google/btree"
)

const DefaultDegree = 32

// entry 以 (值, 原位置) 为键，保证重复值不会被 B 树合并
type entry struct {
	val int64
	pos int
}

func lessEntry(a, b entry) bool {
	if a.val != b.val {
		return a.val < b.val
	}
	return a.pos < b.pos
}

// TreeSort 先把元素插入 B 树，再按中序遍历写回原切片。
// 需要 O(n) 的临时空间，调用返回后不保留任何引用。
type TreeSort struct {
	Degree int
	Stats  *monitor.OpStats
}

func NewTreeSort(degree int) *TreeSort {
	return &TreeSort{Degree: degree}
}

func (ts *TreeSort) Name() string {
	return "treesort"
}

func (ts *TreeSort) Sort(data []int64) {
	if len(data) < 2 {
		return
	}

	less := lessEntry
	if ts.Stats != nil {
		less = func(a, b entry) bool {
			ts.Stats.RecordComparison()
			return lessEntry(a, b)
		}
	}

	degree := ts.Degree
	if degree < 2 {
		degree = DefaultDegree
	}
	tree := btree.NewG[entry](degree, less)
	for i, v := range data {
		tree.ReplaceOrInsert(entry{val: v, pos: i})
	}

	i := 0
	tree.Ascend(func(e entry) bool {
		data[i] = e.val
		i++
		return true
	})
}
