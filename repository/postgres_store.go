package repository

import (
	"context"
	"errors"
	"fmt"

	"govern/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// queryable is satisfied by both the pool and a transaction
type queryable interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStore keeps documents as rows of the documents table
type PostgresStore struct {
	q queryable
}

// NewPostgresStore creates a PostgreSQL-backed document store
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{q: db.Pool}
}

// Read returns the stored document or ErrDocumentNotFound
func (s *PostgresStore) Read(ctx context.Context, name string) ([]byte, error) {
	query := `SELECT body FROM documents WHERE name = $1`

	var body []byte
	err := s.q.QueryRow(ctx, query, name).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document %s: %w", name, err)
	}

	return body, nil
}

// Write upserts the document row
func (s *PostgresStore) Write(ctx context.Context, name string, data []byte) error {
	query := `
		INSERT INTO documents (name, body, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (name) DO UPDATE
		SET body = EXCLUDED.body,
		    updated_at = EXCLUDED.updated_at
	`

	if _, err := s.q.Exec(ctx, query, name, string(data)); err != nil {
		return fmt.Errorf("failed to upsert document %s: %w", name, err)
	}

	return nil
}
