// Package searcher 提供在升序序列上查找 key 的实现。
//
// 所有实现都假设输入已经升序排列，但不做检查：对无序输入结果未定义，
// 可能返回 NotFound，也可能返回某个值相等的元素下标，但不会 panic。
// key 重复出现时返回哪一个下标同样未定义。
package searcher

import "sortsearch/pkg/common"

// NotFound 与 common.NotFound 相同
const NotFound = common.NotFound

// Searcher 返回 data 中等于 key 的元素下标，找不到返回 NotFound
type Searcher interface {
	Search(data []int64, key int64) int
	Name() string
}
