package main

import (
	"fmt"
	"io"
	"os"

	"sortsearch/pkg/common"
	"sortsearch/pkg/config"
	"sortsearch/pkg/core"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Load config failed: %v", err)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("Example failed: %v", err)
	}
}

// run 排序 cfg.Sample.Data，然后逐个查找 cfg.Sample.Keys
func run(cfg *config.Config, out io.Writer) error {
	op, err := core.NewFromConfig(cfg.Engine, nil)
	if err != nil {
		return trace.Wrap(err)
	}

	data := make([]int64, len(cfg.Sample.Data))
	copy(data, cfg.Sample.Data)

	fmt.Fprintln(out, "Before sort:")
	fmt.Fprintln(out, common.Format(data))

	if err := op.Sort(data); err != nil {
		return trace.Wrap(err)
	}
	fmt.Fprintln(out, "After sort:")
	fmt.Fprintln(out, common.Format(data))

	for _, key := range cfg.Sample.Keys {
		idx, err := op.Search(data, key)
		if err != nil {
			return trace.Wrap(err)
		}
		if idx != common.NotFound {
			fmt.Fprintf(out, "Element %d found at index %d\n", key, idx)
		} else {
			fmt.Fprintf(out, "Element %d not found\n", key)
		}
	}
	return nil
}
