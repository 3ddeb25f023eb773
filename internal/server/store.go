// Package server implements the reference submission backend: a DuckDB
// store for received monitoreos and the HTTP handler in front of it.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb" // Register DuckDB driver

	"monreview/internal/review"
)

// Store persists received submissions in DuckDB.
type Store struct {
	db     *sql.DB
	config StoreConfig
}

// StoreConfig holds database tuning options.
type StoreConfig struct {
	Threads       int // 0 = DuckDB default
	MemoryLimitGB int // 0 = DuckDB default
}

// StoreOption configures the store.
type StoreOption func(*Store)

// WithThreads sets the number of DuckDB threads.
func WithThreads(n int) StoreOption {
	return func(s *Store) { s.config.Threads = n }
}

// WithMemoryLimit sets the DuckDB memory limit in GB.
func WithMemoryLimit(gb int) StoreOption {
	return func(s *Store) { s.config.MemoryLimitGB = gb }
}

// OpenStore opens (or creates) the submission store. An empty dsn uses an
// in-memory database.
func OpenStore(dsn string, opts ...StoreOption) (*Store, error) {
	s := &Store{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping duckdb: %w", err)
	}

	// DuckDB is embedded; serial access is safer for writes.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	s.db = db

	if s.config.Threads > 0 {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA threads=%d", s.config.Threads)); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("setting threads: %w", err)
		}
	}
	if s.config.MemoryLimitGB > 0 {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA memory_limit='%dGB'", s.config.MemoryLimitGB)); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("setting memory limit: %w", err)
		}
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE SEQUENCE IF NOT EXISTS submissions_seq`,
		`CREATE TABLE IF NOT EXISTS submissions (
			submission_id BIGINT PRIMARY KEY DEFAULT nextval('submissions_seq'),
			site          VARCHAR NOT NULL,
			received_at   TIMESTAMP NOT NULL,
			ok_count      INTEGER NOT NULL,
			problem_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS submission_rows (
			submission_id BIGINT NOT NULL,
			client_id     BIGINT NOT NULL,
			estatus       VARCHAR NOT NULL,
			observacion   VARCHAR,
			date_rest     VARCHAR
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// InsertSubmission persists one submission envelope and returns its id.
func (s *Store) InsertSubmission(ctx context.Context, site string, rows []review.Row) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	okCount, probCount := 0, 0
	for _, row := range rows {
		if row.Estatus == review.EstatusOK {
			okCount++
		} else {
			probCount++
		}
	}

	var id int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO submissions (site, received_at, ok_count, problem_count)
		 VALUES (?, ?, ?, ?) RETURNING submission_id`,
		site, time.Now().UTC(), okCount, probCount,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert submission: %w", err)
	}

	for _, row := range rows {
		var obs sql.NullString
		if row.Observacion != nil {
			obs = sql.NullString{String: *row.Observacion, Valid: true}
		}
		var dateRest sql.NullString
		if row.DateRest != "" {
			dateRest = sql.NullString{String: row.DateRest, Valid: true}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO submission_rows (submission_id, client_id, estatus, observacion, date_rest)
			 VALUES (?, ?, ?, ?, ?)`,
			id, row.ClientID, row.Estatus, obs, dateRest,
		); err != nil {
			return 0, fmt.Errorf("insert row for client %d: %w", row.ClientID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit submission: %w", err)
	}
	return id, nil
}

// SubmissionSummary is one stored submission without its rows.
type SubmissionSummary struct {
	ID           int64     `json:"submission_id"`
	Site         string    `json:"site"`
	ReceivedAt   time.Time `json:"received_at"`
	OKCount      int       `json:"ok_count"`
	ProblemCount int       `json:"problem_count"`
}

// QuerySubmissions retrieves recent submissions, newest first, optionally
// filtered by site.
func (s *Store) QuerySubmissions(ctx context.Context, site string, limit int) ([]SubmissionSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // Safety limit
	}

	query := `
		SELECT submission_id, site, received_at, ok_count, problem_count
		FROM submissions
		WHERE 1=1
	`
	args := []interface{}{}
	if site != "" {
		query += " AND site = ?"
		args = append(args, site)
	}
	query += " ORDER BY received_at DESC, submission_id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	summaries := []SubmissionSummary{}
	for rows.Next() {
		var sum SubmissionSummary
		if err := rows.Scan(&sum.ID, &sum.Site, &sum.ReceivedAt, &sum.OKCount, &sum.ProblemCount); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return summaries, nil
}

// StoredRow is one persisted submission row.
type StoredRow struct {
	ClientID    int64  `json:"client_id"`
	Estatus     string `json:"estatus"`
	Observacion string `json:"observacion,omitempty"`
	DateRest    string `json:"dateRest,omitempty"`
}

// QueryRows retrieves the rows of one submission.
func (s *Store) QueryRows(ctx context.Context, submissionID int64) ([]StoredRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT client_id, estatus, observacion, date_rest
		 FROM submission_rows WHERE submission_id = ? ORDER BY client_id`,
		submissionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()

	out := []StoredRow{}
	for rows.Next() {
		var row StoredRow
		var obs, dateRest sql.NullString
		if err := rows.Scan(&row.ClientID, &row.Estatus, &obs, &dateRest); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row.Observacion = obs.String
		row.DateRest = dateRest.String
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return out, nil
}
