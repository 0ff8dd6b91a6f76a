package searcher

import (
	"sortsearch/pkg/model"
	"sortsearch/pkg/monitor"
)

// Interpolation 插值查找：用当前区间两端拟合直线，探测预测位置。
// 分布均匀时平均 O(log log n) 次探测，最坏 O(n)。
// 预测位置总被裁剪到 [low, high]，因此每次探测都会缩小区间。
type Interpolation struct {
	Stats *monitor.OpStats
}

func NewInterpolation() *Interpolation {
	return &Interpolation{}
}

func (is *Interpolation) Name() string {
	return "interpolation"
}

func (is *Interpolation) Search(data []int64, key int64) int {
	low, high := 0, len(data)-1
	lm := model.NewLinearModel()

	for low <= high {
		lo, hi := data[low], data[high]
		if key < lo || key > hi {
			// 有序前提下 key 不可能在区间内
			return NotFound
		}

		lm.Fit2(lo, low, hi, high)
		pos := lm.Predict(key)
		if pos < low {
			pos = low
		}
		if pos > high {
			pos = high
		}

		is.Stats.RecordProbe()
		switch v := data[pos]; {
		case v == key:
			return pos
		case v < key:
			low = pos + 1
		default:
			high = pos - 1
		}
	}
	return NotFound
}
