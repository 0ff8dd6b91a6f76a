// Package sorter 提供原地升序排序的实现。
package sorter

// Sorter 把序列原地排成升序，结果是输入的一个排列
type Sorter interface {
	Sort(data []int64)
	Name() string
}

// IsSorted 判断序列是否为升序
func IsSorted(data []int64) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
