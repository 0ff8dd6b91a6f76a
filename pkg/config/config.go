package config

import (
	"os"

	"github.com/gravitational/trace"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Engine    EngineConfig    `yaml:"engine"`
	Sample    SampleConfig    `yaml:"sample"`
	Benchmark BenchmarkConfig `yaml:"benchmark"`
	Log       LogConfig       `yaml:"log"`
}

type EngineConfig struct {
	Sorter      string `yaml:"sorter"`       // quicksort | treesort
	Searcher    string `yaml:"searcher"`     // binary | interpolation
	BTreeDegree int    `yaml:"btree_degree"` // only used by treesort
}

type SampleConfig struct {
	Data []int64 `yaml:"data"`
	Keys []int64 `yaml:"keys"`
}

type BenchmarkConfig struct {
	Sizes       []int    `yaml:"sizes"`
	Patterns    []string `yaml:"patterns"` // random | sorted | reversed
	Searches    int      `yaml:"searches"`
	Seed        int64    `yaml:"seed"`
	ResultsPath string   `yaml:"results_path"` // SQLite file, empty disables recording
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultSearchPaths 未指定配置文件时依次尝试的位置
var DefaultSearchPaths = []string{"configs/sortsearch.yaml", "sortsearch.yaml"}

func defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			Sorter:      "quicksort",
			Searcher:    "binary",
			BTreeDegree: 32,
		},
		Sample: SampleConfig{
			Data: []int64{5, 3, 8, 4, 9, 1, 2},
			Keys: []int64{4, 6},
		},
		Benchmark: BenchmarkConfig{
			Sizes:    []int{1000, 10000},
			Patterns: []string{"random", "sorted", "reversed"},
			Searches: 1000,
			Seed:     1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func Load(configPath string) (*Config, error) {
	cfg := defaults()

	if configPath == "" {
		for _, p := range DefaultSearchPaths {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, trace.BadParameter("parse %s: %v", p, err)
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		applyDefaults(cfg)
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, trace.ConvertSystemError(err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, trace.BadParameter("parse %s: %v", configPath, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Engine.Sorter == "" {
		cfg.Engine.Sorter = "quicksort"
	}
	if cfg.Engine.Searcher == "" {
		cfg.Engine.Searcher = "binary"
	}
	if cfg.Engine.BTreeDegree < 2 {
		cfg.Engine.BTreeDegree = 32
	}
	if cfg.Sample.Data == nil {
		cfg.Sample.Data = []int64{5, 3, 8, 4, 9, 1, 2}
	}
	if len(cfg.Benchmark.Sizes) == 0 {
		cfg.Benchmark.Sizes = []int{1000, 10000}
	}
	if len(cfg.Benchmark.Patterns) == 0 {
		cfg.Benchmark.Patterns = []string{"random", "sorted", "reversed"}
	}
	if cfg.Benchmark.Searches <= 0 {
		cfg.Benchmark.Searches = 1000
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
