// Package tracker persists job applications in a local SQLite database:
// the dashboard's saved/applied/interview/offer/rejected board, linked to
// job analyses through the stored match score.
package tracker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/anatolykoptev/go_profile/internal/engine"
	_ "modernc.org/sqlite"
)

// Status is the application stage of a tracked job.
type Status string

const (
	StatusSaved     Status = "saved"
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
)

// Job is a single tracked application.
type Job struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Company    string  `json:"company"`
	URL        string  `json:"url,omitempty"`
	Status     Status  `json:"status"`
	Notes      string  `json:"notes,omitempty"`
	Salary     string  `json:"salary,omitempty"`
	Location   string  `json:"location,omitempty"`
	MatchScore float64 `json:"match_score,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

// AddInput is the input for adding a tracked job.
type AddInput struct {
	Title      string  `json:"title"`
	Company    string  `json:"company"`
	URL        string  `json:"url,omitempty"`
	Status     string  `json:"status,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	Salary     string  `json:"salary,omitempty"`
	Location   string  `json:"location,omitempty"`
	MatchScore float64 `json:"match_score,omitempty"`
}

// ListInput filters the tracked-job listing.
type ListInput struct {
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// UpdateInput updates status and/or notes of a tracked job.
type UpdateInput struct {
	ID     int64  `json:"id"`
	Status string `json:"status,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// Result is the output of add/update operations.
type Result struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ListResult is the output of list operations.
type ListResult struct {
	Jobs  []Job `json:"jobs"`
	Total int   `json:"total"`
}

var (
	db      *sql.DB
	once    sync.Once
	openErr error
)

// openDB opens (or creates) the SQLite database. The path comes from
// configuration, defaulting to ~/.go_profile/tracker.db.
func openDB() (*sql.DB, error) {
	once.Do(func() {
		path := engine.Cfg.TrackerDBPath
		if path == "" {
			path = filepath.Join(os.Getenv("HOME"), ".go_profile", "tracker.db")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			openErr = fmt.Errorf("tracker: mkdir %s: %w", filepath.Dir(path), err)
			return
		}
		d, err := sql.Open("sqlite", path)
		if err != nil {
			openErr = fmt.Errorf("tracker: open db: %w", err)
			return
		}
		d.SetMaxOpenConns(1) // SQLite: single writer
		if err := initSchema(d); err != nil {
			openErr = fmt.Errorf("tracker: init schema: %w", err)
			return
		}
		db = d
	})
	return db, openErr
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS applications (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT NOT NULL,
		company     TEXT NOT NULL,
		url         TEXT,
		status      TEXT NOT NULL DEFAULT 'saved',
		notes       TEXT,
		salary      TEXT,
		location    TEXT,
		match_score REAL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`)
	return err
}

func validStatus(s string) bool {
	switch Status(s) {
	case StatusSaved, StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// Add saves a new application.
func Add(_ context.Context, input AddInput) (*Result, error) {
	if input.Title == "" || input.Company == "" {
		return nil, errors.New("tracker: title and company are required")
	}

	status := strings.ToLower(input.Status)
	if status == "" {
		status = string(StatusSaved)
	}
	if !validStatus(status) {
		return nil, fmt.Errorf("tracker: invalid status %q (valid: saved, applied, interview, offer, rejected)", status)
	}

	d, err := openDB()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := d.Exec(
		`INSERT INTO applications (title, company, url, status, notes, salary, location, match_score, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		input.Title, input.Company, input.URL, status,
		input.Notes, input.Salary, input.Location, input.MatchScore, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("tracker: insert: %w", err)
	}

	id, _ := res.LastInsertId()
	return &Result{
		ID:      id,
		Message: fmt.Sprintf("Application '%s' at '%s' saved with status '%s' (id=%d)", input.Title, input.Company, status, id),
	}, nil
}

// List returns tracked applications, optionally filtered by status.
func List(_ context.Context, input ListInput) (*ListResult, error) {
	d, err := openDB()
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	const cols = `id, title, company, url, status, notes, salary, location, match_score, created_at, updated_at`
	var rows *sql.Rows
	if input.Status != "" {
		status := strings.ToLower(input.Status)
		if !validStatus(status) {
			return nil, fmt.Errorf("tracker: invalid status %q", status)
		}
		rows, err = d.Query(
			`SELECT `+cols+` FROM applications WHERE status = ? ORDER BY updated_at DESC LIMIT ?`,
			status, limit,
		)
	} else {
		rows, err = d.Query(
			`SELECT `+cols+` FROM applications ORDER BY updated_at DESC LIMIT ?`,
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("tracker: query: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var j Job
		var url, notes, salary, location sql.NullString
		var score sql.NullFloat64
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &url, &j.Status,
			&notes, &salary, &location, &score, &j.CreatedAt, &j.UpdatedAt); err != nil {
			continue
		}
		j.URL = url.String
		j.Notes = notes.String
		j.Salary = salary.String
		j.Location = location.String
		j.MatchScore = score.Float64
		jobs = append(jobs, j)
	}

	var total int
	if input.Status != "" {
		d.QueryRow(`SELECT COUNT(*) FROM applications WHERE status = ?`, strings.ToLower(input.Status)).Scan(&total) //nolint:errcheck
	} else {
		d.QueryRow(`SELECT COUNT(*) FROM applications`).Scan(&total) //nolint:errcheck
	}

	if jobs == nil {
		jobs = []Job{}
	}
	return &ListResult{Jobs: jobs, Total: total}, nil
}

// Update changes the status and/or notes of a tracked application.
func Update(_ context.Context, input UpdateInput) (*Result, error) {
	if input.ID <= 0 {
		return nil, errors.New("tracker: id is required")
	}
	if input.Status == "" && input.Notes == "" {
		return nil, errors.New("tracker: at least one of status or notes must be provided")
	}

	d, err := openDB()
	if err != nil {
		return nil, err
	}

	if input.Status != "" && !validStatus(strings.ToLower(input.Status)) {
		return nil, fmt.Errorf("tracker: invalid status %q", input.Status)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	switch {
	case input.Status != "" && input.Notes != "":
		_, err = d.Exec(`UPDATE applications SET status=?, notes=?, updated_at=? WHERE id=?`,
			strings.ToLower(input.Status), input.Notes, now, input.ID)
	case input.Status != "":
		_, err = d.Exec(`UPDATE applications SET status=?, updated_at=? WHERE id=?`,
			strings.ToLower(input.Status), now, input.ID)
	default:
		_, err = d.Exec(`UPDATE applications SET notes=?, updated_at=? WHERE id=?`,
			input.Notes, now, input.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("tracker: update: %w", err)
	}

	return &Result{
		ID:      input.ID,
		Message: fmt.Sprintf("Application #%d updated successfully", input.ID),
	}, nil
}
