package core

// DataOperation 排序与查找的统一接口，屏蔽具体算法的差异。
// 调用方只依赖这两个操作，底层实现可以替换而无需修改调用点。
type DataOperation interface {
	// Sort 把 data 原地排成升序；data 为 nil 时返回 BadParameter
	Sort(data []int64) error
	// Search 在升序的 data 中查找 key，返回下标或 common.NotFound；
	// data 为 nil 时返回 BadParameter
	Search(data []int64, key int64) (int, error)
}
