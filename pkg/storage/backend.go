package storage

import (
	"database/sql"
	"sync"
	"time"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Result 一次基准测试的结果行
type Result struct {
	Sorter      string
	Searcher    string
	Pattern     string
	Size        int
	SortNanos   int64
	SearchNanos float64 // 每次查找的平均耗时
	Comparisons uint64
	Swaps       uint64
	Probes      uint64
	RecordedAt  time.Time
}

// ResultStore 把基准测试结果保存到 SQLite。
// 只被 benchmark 命令使用，排序与查找本身不持久化任何状态。
type ResultStore interface {
	Record(r Result) error
	BatchRecord(results []Result) error
	List() ([]Result, error)
	Truncate() error
	Close() error
}

type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, trace.Wrap(err, "open sqlite %s", path)
	}

	query := `
	CREATE TABLE IF NOT EXISTS results (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		sorter       TEXT NOT NULL,
		searcher     TEXT NOT NULL,
		pattern      TEXT NOT NULL,
		size         INTEGER NOT NULL,
		sort_nanos   INTEGER NOT NULL,
		search_nanos REAL NOT NULL,
		comparisons  INTEGER NOT NULL,
		swaps        INTEGER NOT NULL,
		probes       INTEGER NOT NULL,
		recorded_at  INTEGER NOT NULL
	);`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, trace.Wrap(err, "init results table")
	}

	_, err = db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
	`)
	if err != nil {
		log.WithError(err).Warn("Failed to set PRAGMA.")
	}

	return &SQLiteStore{db: db}, nil
}

const insertQuery = `INSERT INTO results
	(sorter, searcher, pattern, size, sort_nanos, search_nanos, comparisons, swaps, probes, recorded_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func resultArgs(r Result) []interface{} {
	at := r.RecordedAt
	if at.IsZero() {
		at = time.Now()
	}
	return []interface{}{
		r.Sorter, r.Searcher, r.Pattern, r.Size, r.SortNanos, r.SearchNanos,
		int64(r.Comparisons), int64(r.Swaps), int64(r.Probes), at.UnixNano(),
	}
}

func (s *SQLiteStore) Record(r Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(insertQuery, resultArgs(r)...)
	return trace.Wrap(err)
}

func (s *SQLiteStore) BatchRecord(results []Result) error {
	if len(results) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return trace.Wrap(err)
	}

	stmt, err := tx.Prepare(insertQuery)
	if err != nil {
		tx.Rollback()
		return trace.Wrap(err)
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.Exec(resultArgs(r)...); err != nil {
			tx.Rollback()
			return trace.Wrap(err)
		}
	}

	return trace.Wrap(tx.Commit())
}

// List 按写入顺序返回全部结果
func (s *SQLiteStore) List() ([]Result, error) {
	rows, err := s.db.Query(`SELECT sorter, searcher, pattern, size, sort_nanos, search_nanos,
		comparisons, swaps, probes, recorded_at FROM results ORDER BY id ASC`)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var cmp, swaps, probes, at int64
		if err := rows.Scan(&r.Sorter, &r.Searcher, &r.Pattern, &r.Size, &r.SortNanos,
			&r.SearchNanos, &cmp, &swaps, &probes, &at); err != nil {
			return nil, trace.Wrap(err)
		}
		r.Comparisons, r.Swaps, r.Probes = uint64(cmp), uint64(swaps), uint64(probes)
		r.RecordedAt = time.Unix(0, at)
		results = append(results, r)
	}
	return results, trace.Wrap(rows.Err())
}

func (s *SQLiteStore) Truncate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM results")
	return trace.Wrap(err)
}

func (s *SQLiteStore) Close() error {
	return trace.Wrap(s.db.Close())
}
