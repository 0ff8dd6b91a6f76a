package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"sortsearch/pkg/bench"
	"sortsearch/pkg/config"
	"sortsearch/pkg/logging"
	"sortsearch/pkg/storage"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		resultsPath string
		truncate    bool
		list        bool
	)

	cmd := &cobra.Command{
		Use:          "benchmark",
		Short:        "Time every sorter/searcher pair on generated inputs",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return trace.Wrap(err)
			}
			if err := logging.Setup(cfg.Log.Level, nil); err != nil {
				return trace.Wrap(err)
			}
			if resultsPath != "" {
				cfg.Benchmark.ResultsPath = resultsPath
			}

			var store storage.ResultStore
			if cfg.Benchmark.ResultsPath != "" {
				s, err := storage.NewSQLiteStore(cfg.Benchmark.ResultsPath)
				if err != nil {
					return trace.Wrap(err)
				}
				defer s.Close()
				store = s
				if truncate {
					if err := store.Truncate(); err != nil {
						return trace.Wrap(err)
					}
				}
			}

			if list {
				if store == nil {
					return trace.BadParameter("--list needs a results database")
				}
				results, err := store.List()
				if err != nil {
					return trace.Wrap(err)
				}
				printTable(cmd.OutOrStdout(), results)
				return nil
			}

			log.WithFields(log.Fields{
				"sizes":    cfg.Benchmark.Sizes,
				"patterns": cfg.Benchmark.Patterns,
				"searches": cfg.Benchmark.Searches,
			}).Info("Starting benchmark.")

			start := time.Now()
			results, err := bench.Run(cfg.Benchmark, cfg.Engine.BTreeDegree)
			if err != nil {
				return trace.Wrap(err)
			}
			log.WithField("elapsed", time.Since(start)).Info("Benchmark finished.")
			printTable(cmd.OutOrStdout(), results)

			if store != nil {
				if err := store.BatchRecord(results); err != nil {
					return trace.Wrap(err)
				}
				log.WithFields(log.Fields{
					"rows": len(results),
					"path": cfg.Benchmark.ResultsPath,
				}).Info("Recorded results.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config")
	cmd.Flags().StringVar(&resultsPath, "results", "", "SQLite file to record results into (overrides config)")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "Delete previously recorded results first")
	cmd.Flags().BoolVar(&list, "list", false, "Print recorded results instead of running")
	return cmd
}

func printTable(out io.Writer, results []storage.Result) {
	fmt.Fprintf(out, "%-10s %-14s %-9s %8s %14s %12s %12s %12s %10s\n",
		"SORTER", "SEARCHER", "PATTERN", "N", "SORT", "SEARCH(ns)", "CMP", "SWAPS", "PROBES")
	for _, r := range results {
		fmt.Fprintf(out, "%-10s %-14s %-9s %8d %14v %12.1f %12d %12d %10d\n",
			r.Sorter, r.Searcher, r.Pattern, r.Size, time.Duration(r.SortNanos),
			r.SearchNanos, r.Comparisons, r.Swaps, r.Probes)
	}
}
