// Package bench 对各排序/查找实现组合做计时与计数。
package bench

import (
	"math/rand"
	"time"

	"sortsearch/pkg/config"
	"sortsearch/pkg/core"
	"sortsearch/pkg/monitor"
	"sortsearch/pkg/sorter"
	"sortsearch/pkg/storage"

	"github.com/gravitational/trace"
)

var (
	Sorters   = []string{"quicksort", "treesort"}
	Searchers = []string{"binary", "interpolation"}
)

// Generate 按模式生成长度为 n 的输入
func Generate(pattern string, n int, rng *rand.Rand) ([]int64, error) {
	if n < 0 {
		return nil, trace.BadParameter("invalid size %d", n)
	}
	data := make([]int64, n)
	switch pattern {
	case "random":
		for i := range data {
			data[i] = rng.Int63n(int64(n)*4+1) - int64(n)*2
		}
	case "sorted":
		for i := range data {
			data[i] = int64(i * 2)
		}
	case "reversed":
		for i := range data {
			data[i] = int64((n - i) * 2)
		}
	default:
		return nil, trace.BadParameter("unknown pattern %q", pattern)
	}
	return data, nil
}

// Run 对每个 (size, pattern, sorter, searcher) 组合执行一次排序与 cfg.Searches 次查找
func Run(cfg config.BenchmarkConfig, degree int) ([]storage.Result, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	var results []storage.Result

	for _, size := range cfg.Sizes {
		for _, pattern := range cfg.Patterns {
			input, err := Generate(pattern, size, rng)
			if err != nil {
				return nil, trace.Wrap(err)
			}
			keys := make([]int64, cfg.Searches)
			for i := range keys {
				if size > 0 {
					keys[i] = input[rng.Intn(size)]
				}
			}

			for _, sorterName := range Sorters {
				for _, searcherName := range Searchers {
					r, err := runOne(input, keys, sorterName, searcherName, degree)
					if err != nil {
						return nil, trace.Wrap(err)
					}
					r.Pattern = pattern
					r.Size = size
					results = append(results, r)
				}
			}
		}
	}
	return results, nil
}

func runOne(input, keys []int64, sorterName, searcherName string, degree int) (storage.Result, error) {
	sortStats := monitor.NewOpStats()
	searchStats := monitor.NewOpStats()

	s, err := core.NewSorter(sorterName, degree, sortStats)
	if err != nil {
		return storage.Result{}, trace.Wrap(err)
	}
	srch, err := core.NewSearcher(searcherName, searchStats)
	if err != nil {
		return storage.Result{}, trace.Wrap(err)
	}
	op := core.NewAdapter(core.WithSorter(s), core.WithSearcher(srch))

	data := make([]int64, len(input))
	copy(data, input)

	start := time.Now()
	if err := op.Sort(data); err != nil {
		return storage.Result{}, trace.Wrap(err)
	}
	sortNanos := time.Since(start).Nanoseconds()
	if !sorter.IsSorted(data) {
		return storage.Result{}, trace.Errorf("%s produced unsorted output", sorterName)
	}

	start = time.Now()
	for _, key := range keys {
		if _, err := op.Search(data, key); err != nil {
			return storage.Result{}, trace.Wrap(err)
		}
	}
	var avgSearch float64
	if len(keys) > 0 {
		avgSearch = float64(time.Since(start).Nanoseconds()) / float64(len(keys))
	}

	sortCounts := sortStats.Snapshot()
	return storage.Result{
		Sorter:      sorterName,
		Searcher:    searcherName,
		SortNanos:   sortNanos,
		SearchNanos: avgSearch,
		Comparisons: sortCounts.Comparisons,
		Swaps:       sortCounts.Swaps,
		Probes:      searchStats.Snapshot().Probes,
		RecordedAt:  time.Now(),
	}, nil
}
