package searcher

import (
	"sortsearch/pkg/monitor"
)

// BinarySearch 经典二分查找，维护闭区间 [low, high]
type BinarySearch struct {
	Stats *monitor.OpStats
}

func NewBinarySearch() *BinarySearch {
	return &BinarySearch{}
}

func (bs *BinarySearch) Name() string {
	return "binary"
}

func (bs *BinarySearch) Search(data []int64, key int64) int {
	low, high := 0, len(data)-1
	for low <= high {
		mid := int(uint(low+high) >> 1) // 防止 low+high 溢出
		bs.Stats.RecordProbe()
		switch v := data[mid]; {
		case v == key:
			return mid
		case v < key:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return NotFound
}
