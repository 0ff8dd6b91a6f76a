package sorter

import (
	"sortsearch/pkg/monitor"
)

// QuickSort 递归快速排序，划分时取子区间最后一个元素为基准。
// 有序或逆序输入会退化为 O(n²)，这是算法本身的行为，不做三数取中之类的优化。
// 不稳定。
type QuickSort struct {
	Stats *monitor.OpStats // 可选，为 nil 时不计数
}

func NewQuickSort() *QuickSort {
	return &QuickSort{}
}

func (qs *QuickSort) Name() string {
	return "quicksort"
}

func (qs *QuickSort) Sort(data []int64) {
	qs.sortRange(data, 0, len(data)-1)
}

func (qs *QuickSort) sortRange(data []int64, low, high int) {
	if low < high {
		p := qs.partition(data, low, high)
		qs.sortRange(data, low, p-1)
		qs.sortRange(data, p+1, high)
	}
}

// partition 单向扫描，把 <= pivot 的元素换到左侧，返回基准的最终位置
func (qs *QuickSort) partition(data []int64, low, high int) int {
	pivot := data[high]
	i := low - 1
	for j := low; j < high; j++ {
		qs.Stats.RecordComparison()
		if data[j] <= pivot {
			i++
			qs.swap(data, i, j)
		}
	}
	qs.swap(data, i+1, high)
	return i + 1
}

// swap 下标相同时也计为一次交换
func (qs *QuickSort) swap(data []int64, i, j int) {
	qs.Stats.RecordSwap()
	data[i], data[j] = data[j], data[i]
}
