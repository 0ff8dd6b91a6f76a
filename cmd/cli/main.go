package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"sortsearch/pkg/common"
	"sortsearch/pkg/config"
	"sortsearch/pkg/core"
	"sortsearch/pkg/logging"
	"sortsearch/pkg/monitor"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const Prompt = "sortsearch> "

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		sorterName string
		searchName string
	)

	cmd := &cobra.Command{
		Use:          "sortsearch",
		Short:        "Interactive sort/search shell",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return trace.Wrap(err)
			}
			if err := logging.Setup(cfg.Log.Level, nil); err != nil {
				return trace.Wrap(err)
			}
			if sorterName != "" {
				cfg.Engine.Sorter = sorterName
			}
			if searchName != "" {
				cfg.Engine.Searcher = searchName
			}

			stats := monitor.NewOpStats()
			op, err := core.NewFromConfig(cfg.Engine, stats)
			if err != nil {
				return trace.Wrap(err)
			}
			sorterBackend, searcherBackend := op.Backends()
			log.WithFields(log.Fields{
				"sorter":   sorterBackend,
				"searcher": searcherBackend,
			}).Debug("Engine ready.")

			s := newSession(op, stats, cfg.Sample.Data, cmd.OutOrStdout())
			s.run(cmd.InOrStdin())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config")
	cmd.Flags().StringVar(&sorterName, "sorter", "", "Sort backend (quicksort, treesort)")
	cmd.Flags().StringVar(&searchName, "searcher", "", "Search backend (binary, interpolation)")
	return cmd
}

// session 持有当前序列，命令之间共享
type session struct {
	op    core.DataOperation
	stats *monitor.OpStats
	data  []int64
	out   io.Writer
}

func newSession(op core.DataOperation, stats *monitor.OpStats, data []int64, out io.Writer) *session {
	seq := make([]int64, len(data))
	copy(seq, data)
	return &session{op: op, stats: stats, data: seq, out: out}
}

func (s *session) run(in io.Reader) {
	fmt.Fprintln(s.out, "Type 'help' for commands.")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, Prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !s.exec(strings.Fields(line)) {
			return
		}
	}
}

// exec 执行一条命令，返回 false 表示退出
func (s *session) exec(parts []string) bool {
	cmd := strings.ToLower(parts[0])

	switch cmd {
	case "load":
		s.handleLoad(parts)
	case "show":
		fmt.Fprintf(s.out, "[%s]\n", common.Format(s.data))
	case "sort":
		s.handleSort()
	case "search", "find":
		s.handleSearch(parts)
	case "stats":
		st := s.stats.Snapshot()
		fmt.Fprintf(s.out, "comparisons=%d swaps=%d probes=%d\n", st.Comparisons, st.Swaps, st.Probes)
	case "reset":
		s.stats.Reset()
		fmt.Fprintln(s.out, "OK")
	case "help":
		printHelp(s.out)
	case "exit", "quit":
		fmt.Fprintln(s.out, "Bye!")
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: '%s'. Type 'help'.\n", cmd)
	}
	return true
}

func (s *session) handleLoad(parts []string) {
	data, err := common.Parse(parts[1:])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.data = data
	fmt.Fprintf(s.out, "Loaded %d values\n", len(data))
}

func (s *session) handleSort() {
	if err := s.op.Sort(s.data); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "[%s]\n", common.Format(s.data))
}

func (s *session) handleSearch(parts []string) {
	if len(parts) < 2 {
		fmt.Fprintln(s.out, "Usage: search <key_int>")
		return
	}

	key, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		fmt.Fprintln(s.out, "Error: Key must be an integer")
		return
	}

	idx, err := s.op.Search(s.data, key)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if idx == common.NotFound {
		fmt.Fprintf(s.out, "%d not found\n", key)
		return
	}
	fmt.Fprintf(s.out, "%d at index %d\n", key, idx)
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, `
Commands:
  load <v1> <v2> ...     Replace the current sequence
  show                   Print the current sequence
  sort                   Sort the current sequence in place
  search <key>           Look up key (sort the sequence first)
  stats                  Print operation counters
  reset                  Zero the operation counters
  exit                   Exit CLI
	`)
}
