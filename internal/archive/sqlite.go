// Package archive keeps a sqlite record of planning runs so seeds and plans
// can be compared across invocations.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type Run struct {
	ID        int64
	Seed      uint64
	Committee []int
	Plan      string
	Stop      string
	ElapsedMs int64
	Mean      float64
	StdDev    float64
	CreatedAt time.Time
}

type SQLiteArchive struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteArchive, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteArchive{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		seed TEXT NOT NULL,
		committee TEXT NOT NULL,
		plan TEXT NOT NULL,
		stop TEXT NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		mean REAL NOT NULL,
		std_dev REAL NOT NULL,
		created_at TEXT NOT NULL
	);`)
	return err
}

func (a *SQLiteArchive) Close() error { return a.db.Close() }

// Record stores r and returns its row id.
func (a *SQLiteArchive) Record(ctx context.Context, r Run) (int64, error) {
	committee, err := json.Marshal(r.Committee)
	if err != nil {
		return 0, err
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	// seed is stored as text: sqlite integers are signed 64-bit
	res, err := a.db.ExecContext(ctx,
		`INSERT INTO runs (seed, committee, plan, stop, elapsed_ms, mean, std_dev, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		fmt.Sprint(r.Seed), string(committee), r.Plan, r.Stop, r.ElapsedMs, r.Mean, r.StdDev,
		r.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Best returns up to limit runs ordered by mean score, best first.
func (a *SQLiteArchive) Best(ctx context.Context, limit int) ([]Run, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT id, seed, committee, plan, stop, elapsed_ms, mean, std_dev, created_at
		FROM runs ORDER BY mean DESC, id ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r         Run
			seed      string
			committee string
			created   string
		)
		if err := rows.Scan(&r.ID, &seed, &committee, &r.Plan, &r.Stop, &r.ElapsedMs, &r.Mean, &r.StdDev, &created); err != nil {
			return nil, err
		}
		if _, err := fmt.Sscan(seed, &r.Seed); err != nil {
			return nil, fmt.Errorf("run %d seed: %w", r.ID, err)
		}
		if err := json.Unmarshal([]byte(committee), &r.Committee); err != nil {
			return nil, fmt.Errorf("run %d committee: %w", r.ID, err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("run %d created_at: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
