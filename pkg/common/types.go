package common

import (
	"strconv"
	"strings"

	"github.com/gravitational/trace"
)

// NotFound 是查找失败时返回的下标，任何合法下标都不会等于它
const NotFound = -1

// Format 以空格分隔打印序列，便于命令行输出
func Format(data []int64) string {
	var sb strings.Builder
	for i, v := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(v, 10))
	}
	return sb.String()
}

// Parse 解析以空白分隔的整数列表，与 Format 互逆
func Parse(fields []string) ([]int64, error) {
	data := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, trace.BadParameter("invalid integer %q", f)
		}
		data = append(data, v)
	}
	return data, nil
}
