package core

import (
	"sortsearch/pkg/common"
	"sortsearch/pkg/config"
	"sortsearch/pkg/monitor"
	"sortsearch/pkg/searcher"
	"sortsearch/pkg/sorter"

	"github.com/gravitational/trace"
)

// Adapter 把一个 Sorter 和一个 Searcher 适配成 DataOperation。
// 参数与结果原样转发，除了拒绝 nil 序列外不引入新的失败情形。
type Adapter struct {
	sorter   sorter.Sorter
	searcher searcher.Searcher
}

// Option 用于替换默认的后端实现
type Option func(*Adapter)

func WithSorter(s sorter.Sorter) Option {
	return func(a *Adapter) {
		a.sorter = s
	}
}

func WithSearcher(s searcher.Searcher) Option {
	return func(a *Adapter) {
		a.searcher = s
	}
}

// NewAdapter 默认使用快速排序与二分查找
func NewAdapter(opts ...Option) *Adapter {
	a := &Adapter{
		sorter:   sorter.NewQuickSort(),
		searcher: searcher.NewBinarySearch(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewFromConfig 按名字选择后端。stats 可为 nil。
func NewFromConfig(cfg config.EngineConfig, stats *monitor.OpStats) (*Adapter, error) {
	s, err := NewSorter(cfg.Sorter, cfg.BTreeDegree, stats)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	srch, err := NewSearcher(cfg.Searcher, stats)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return NewAdapter(WithSorter(s), WithSearcher(srch)), nil
}

// NewSorter 根据名字构造排序实现
func NewSorter(name string, degree int, stats *monitor.OpStats) (sorter.Sorter, error) {
	switch name {
	case "", "quicksort":
		return &sorter.QuickSort{Stats: stats}, nil
	case "treesort":
		ts := sorter.NewTreeSort(degree)
		ts.Stats = stats
		return ts, nil
	default:
		return nil, trace.BadParameter("unknown sorter %q", name)
	}
}

// NewSearcher 根据名字构造查找实现
func NewSearcher(name string, stats *monitor.OpStats) (searcher.Searcher, error) {
	switch name {
	case "", "binary":
		return &searcher.BinarySearch{Stats: stats}, nil
	case "interpolation":
		return &searcher.Interpolation{Stats: stats}, nil
	default:
		return nil, trace.BadParameter("unknown searcher %q", name)
	}
}

func (a *Adapter) Sort(data []int64) error {
	if data == nil {
		return trace.BadParameter("missing sequence")
	}
	a.sorter.Sort(data)
	return nil
}

func (a *Adapter) Search(data []int64, key int64) (int, error) {
	if data == nil {
		return common.NotFound, trace.BadParameter("missing sequence")
	}
	return a.searcher.Search(data, key), nil
}

// Backends 返回当前使用的排序与查找实现的名字
func (a *Adapter) Backends() (string, string) {
	return a.sorter.Name(), a.searcher.Name()
}
