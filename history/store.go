// Package history persists finished sessions in SQLite
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lixenwraith/allerbees/core"
)

// Store is the sessions database
type Store struct {
	db *sql.DB
}

// Stats summarizes recorded sessions
type Stats struct {
	Sessions int
	Wins     int
	Losses   int
	// BestWin is the fastest winning session, zero when none
	BestWin time.Duration
	Pollen  int
}

// Open creates or opens the database at path
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session INTEGER NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			elapsed_ms INTEGER NOT NULL,
			pollen INTEGER NOT NULL,
			sneezes INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS sessions_ended_at ON sessions(ended_at);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one finished session
func (s *Store) Record(ctx context.Context, r core.SessionResult) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions(session,started_at,ended_at,outcome,reason,elapsed_ms,pollen,sneezes) VALUES(?,?,?,?,?,?,?,?)`,
		r.Session,
		r.StartedAt.UnixMilli(),
		r.EndedAt.UnixMilli(),
		r.Outcome,
		r.Reason,
		r.Elapsed.Milliseconds(),
		r.Pollen,
		r.Sneezes,
	)
	if err != nil {
		return fmt.Errorf("record session %d: %w", r.Session, err)
	}
	return nil
}

// Recent returns up to limit sessions, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]core.SessionResult, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT session,started_at,ended_at,outcome,reason,elapsed_ms,pollen,sneezes
		 FROM sessions ORDER BY ended_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []core.SessionResult
	for rows.Next() {
		var (
			r              core.SessionResult
			started, ended int64
			elapsedMs      int64
		)
		if err := rows.Scan(&r.Session, &started, &ended, &r.Outcome, &r.Reason, &elapsedMs, &r.Pollen, &r.Sneezes); err != nil {
			return nil, err
		}
		r.StartedAt = time.UnixMilli(started).UTC()
		r.EndedAt = time.UnixMilli(ended).UTC()
		r.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		out = append(out, r)
	}
	return out, rows.Err()
}

// Stats aggregates all recorded sessions
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var (
		st   Stats
		best sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx, `SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'lose' THEN 1 ELSE 0 END), 0),
			MIN(CASE WHEN outcome = 'win' THEN elapsed_ms END),
			COALESCE(SUM(pollen), 0)
		FROM sessions`).Scan(&st.Sessions, &st.Wins, &st.Losses, &best, &st.Pollen)
	if err != nil {
		return Stats{}, err
	}
	if best.Valid {
		st.BestWin = time.Duration(best.Int64) * time.Millisecond
	}
	return st, nil
}
