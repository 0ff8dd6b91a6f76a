package model

import (
	"math"
)

// LinearModel 线性模型 key -> position。
// 以均值点为原点保存直线，避免 key 很大时相减造成精度丢失。
type LinearModel struct {
	Slope float64
	meanX float64
	meanY float64
}

func NewLinearModel() *LinearModel {
	return &LinearModel{}
}

// Fit2 拟合经过 (k1, p1) 与 (k2, p2) 的直线。k1 == k2 时斜率为 0。
func (lm *LinearModel) Fit2(k1 int64, p1 int, k2 int64, p2 int) {
	lm.meanX = (float64(k1) + float64(k2)) / 2
	lm.meanY = (float64(p1) + float64(p2)) / 2

	dx := float64(k2) - float64(k1)
	dy := float64(p2) - float64(p1)
	if dx == 0 {
		lm.Slope = 0
	} else {
		lm.Slope = dy / dx
	}
}

// Predict 返回预测位置，结果可能越界，由调用方裁剪
func (lm *LinearModel) Predict(key int64) int {
	y := lm.Slope*(float64(key)-lm.meanX) + lm.meanY
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return int(lm.meanY)
	}
	if y >= math.MaxInt32 {
		return math.MaxInt32
	}
	if y <= math.MinInt32 {
		return math.MinInt32
	}
	return int(math.Round(y))
}
