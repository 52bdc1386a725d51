// Package history persists per-analysis score summaries in PostgreSQL so
// progress can be charted over time. Snapshots themselves stay transient;
// only the composite score and per-section percentages are stored.
package history

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS analysis_runs (
	id          BIGSERIAL PRIMARY KEY,
	url_hash    TEXT NOT NULL,
	kind        TEXT NOT NULL DEFAULT 'profile',
	total_score INT NOT NULL,
	sections    JSONB NOT NULL DEFAULT '{}',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS analysis_runs_url_hash_idx ON analysis_runs (url_hash, created_at DESC);
`

// Store holds the pgx connection pool for score history.
type Store struct {
	pool *pgxpool.Pool
}

// Connect creates a pgx pool and ensures the schema exists.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	slog.Info("score history postgres connected", slog.String("addr", config.ConnConfig.Host))
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// Run is one recorded analysis summary.
type Run struct {
	ID         int64          `json:"id"`
	URLHash    string         `json:"url_hash"`
	Kind       string         `json:"kind"`
	TotalScore int            `json:"total_score"`
	Sections   map[string]int `json:"sections"`
	CreatedAt  time.Time      `json:"created_at"`
}

// HashURL produces the stable identifier stored instead of the raw URL.
// Trailing slashes and scheme/case differences collapse to one hash.
func HashURL(rawURL string) string {
	u := strings.ToLower(strings.TrimRight(strings.TrimSpace(rawURL), "/"))
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	u = strings.TrimPrefix(u, "www.")
	sum := sha256.Sum256([]byte(u))
	return hex.EncodeToString(sum[:8])
}

// Add records one analysis run. Sections maps section name to percentage.
func (s *Store) Add(ctx context.Context, urlHash, kind string, totalScore int, sections map[string]int) error {
	if urlHash == "" {
		return errors.New("history: url hash is required")
	}
	if kind == "" {
		kind = "profile"
	}
	data, err := json.Marshal(sections)
	if err != nil {
		return fmt.Errorf("history: marshal sections: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO analysis_runs (url_hash, kind, total_score, sections) VALUES ($1, $2, $3, $4)`,
		urlHash, kind, totalScore, data,
	)
	if err != nil {
		return fmt.Errorf("history: insert run: %w", err)
	}
	return nil
}

// Recent returns the latest runs for a URL hash, newest first. An empty
// hash returns the latest runs across all analyses.
func (s *Store) Recent(ctx context.Context, urlHash string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	const cols = `id, url_hash, kind, total_score, sections, created_at`
	query := `SELECT ` + cols + ` FROM analysis_runs ORDER BY created_at DESC LIMIT $1`
	args := []any{limit}
	if urlHash != "" {
		query = `SELECT ` + cols + ` FROM analysis_runs WHERE url_hash = $1 ORDER BY created_at DESC LIMIT $2`
		args = []any{urlHash, limit}
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var sections []byte
		if err := rows.Scan(&r.ID, &r.URLHash, &r.Kind, &r.TotalScore, &sections, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		if err := json.Unmarshal(sections, &r.Sections); err != nil {
			r.Sections = map[string]int{}
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
