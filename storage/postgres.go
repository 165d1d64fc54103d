package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/hireflow/backend/models"
)

const candidatesSchema = `
CREATE TABLE IF NOT EXISTS candidates (
    id              TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    email           TEXT NOT NULL DEFAULT '',
    role            TEXT NOT NULL DEFAULT '',
    job_description TEXT NOT NULL DEFAULT '',
    score           INTEGER,
    status          TEXT NOT NULL DEFAULT 'Pending',
    extracted_data  JSONB NOT NULL DEFAULT '{}'::jsonb,
    analysis        JSONB NOT NULL DEFAULT '{}'::jsonb,
    resume_url      TEXT NOT NULL DEFAULT '',
    resume_name     TEXT NOT NULL DEFAULT '',
    avatar_url      TEXT NOT NULL DEFAULT '',
    created_at      TIMESTAMPTZ NOT NULL,
    updated_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_candidates_status ON candidates (status);
CREATE INDEX IF NOT EXISTS idx_candidates_created_at ON candidates (created_at DESC);
`

const candidateColumns = `id, name, email, role, job_description, score, status, extracted_data,
    analysis, resume_url, resume_name, avatar_url, created_at, updated_at`

// PostgresStore keeps candidate records in a Postgres table. Extracted data
// and analysis are stored as JSONB.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens the database and creates the schema when missing
func NewPostgresStore(ctx context.Context, dataSourceName string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// EnsureSchema creates the candidates table and indexes
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, candidatesSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database pool
func (p *PostgresStore) Close() error {
	return p.db.Close()
}

// Create inserts a new candidate row
func (p *PostgresStore) Create(ctx context.Context, c *models.Candidate) error {
	prepareNew(c)

	extracted, err := json.Marshal(c.ExtractedData)
	if err != nil {
		return fmt.Errorf("failed to marshal extracted data: %w", err)
	}
	analysis, err := json.Marshal(c.Analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	query := `INSERT INTO candidates (` + candidateColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = p.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Email,
		c.Role,
		c.JobDescription,
		nullableInt(c.Score),
		string(c.Status),
		extracted,
		analysis,
		c.ResumeURL,
		c.ResumeName,
		c.AvatarURL,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("failed to create candidate: id %s already exists", c.ID)
		}
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

// Get retrieves a candidate by ID
func (p *PostgresStore) Get(ctx context.Context, id string) (*models.Candidate, error) {
	row := p.db.QueryRowContext(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	c, err := scanCandidate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// List returns candidates newest first, optionally filtered by status
func (p *PostgresStore) List(ctx context.Context, filter CandidateFilter) ([]*models.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates`
	var args []interface{}
	if filter.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(filter.Status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := []*models.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

// Update applies a partial update and returns the stored record. An empty
// update reads the row without touching updated_at.
func (p *PostgresStore) Update(ctx context.Context, id string, update CandidateUpdate) (*models.Candidate, error) {
	if update.IsEmpty() {
		return p.Get(ctx, id)
	}

	query, args, err := buildUpdate(id, update, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	c, err := scanCandidate(p.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}
	return c, nil
}

// buildUpdate renders the UPDATE statement for the fields set in update.
// Placeholders are numbered in the order their args are appended, with the
// id last.
func buildUpdate(id string, update CandidateUpdate, now time.Time) (string, []interface{}, error) {
	sets := []string{"updated_at = $1"}
	args := []interface{}{now}

	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Status != nil {
		set("status", string(*update.Status))
	}
	if update.Score != nil {
		set("score", *update.Score)
	}
	if update.Analysis != nil {
		analysis, err := json.Marshal(update.Analysis)
		if err != nil {
			return "", nil, fmt.Errorf("failed to marshal analysis: %w", err)
		}
		set("analysis", analysis)
	}
	if update.AvatarURL != nil {
		set("avatar_url", *update.AvatarURL)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE candidates SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), candidateColumns)
	return query, args, nil
}

// Delete removes a candidate row
func (p *PostgresStore) Delete(ctx context.Context, id string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCandidate(row rowScanner) (*models.Candidate, error) {
	var (
		c         models.Candidate
		score     sql.NullInt64
		status    string
		extracted []byte
		analysis  []byte
	)

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Role,
		&c.JobDescription,
		&score,
		&status,
		&extracted,
		&analysis,
		&c.ResumeURL,
		&c.ResumeName,
		&c.AvatarURL,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Status = models.CandidateStatus(status)
	if score.Valid {
		v := int(score.Int64)
		c.Score = &v
	}
	if len(extracted) > 0 {
		if err := json.Unmarshal(extracted, &c.ExtractedData); err != nil {
			return nil, fmt.Errorf("failed to parse extracted data: %w", err)
		}
	}
	if len(analysis) > 0 {
		if err := json.Unmarshal(analysis, &c.Analysis); err != nil {
			return nil, fmt.Errorf("failed to parse analysis: %w", err)
		}
	}
	return &c, nil
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
