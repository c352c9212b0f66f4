package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresSchema creates the slot table. Applied by cmd/migrate and by
// PostgresStorage.EnsureSchema.
const PostgresSchema = `CREATE TABLE IF NOT EXISTS ` + SlotTable + ` (
	slot       TEXT PRIMARY KEY,
	payload    BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Querier is the subset of *pgxpool.Pool used by PostgresStorage.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PostgresStorage is the PostgreSQL implementation of Storage.
type PostgresStorage struct {
	q Querier
}

// NewPostgresStorage creates a PostgresStorage backed by the given pool.
func NewPostgresStorage(q Querier) *PostgresStorage {
	return &PostgresStorage{q: q}
}

var _ Storage = (*PostgresStorage)(nil)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// EnsureSchema creates the slot table if it does not exist.
func (s *PostgresStorage) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, PostgresSchema); err != nil {
		return fmt.Errorf("storage: create schema: %w", err)
	}
	return nil
}

func (s *PostgresStorage) Read(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psql.Select("payload").From(SlotTable).Where(sq.Eq{"slot": key}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("storage: build read: %w", err)
	}
	var data []byte
	err = s.q.QueryRow(ctx, query, args...).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read: %w", err)
	}
	return data, nil
}

func (s *PostgresStorage) Write(ctx context.Context, key string, data []byte) error {
	query, args, err := psql.Insert(SlotTable).
		Columns("slot", "payload", "updated_at").
		Values(key, data, sq.Expr("now()")).
		Suffix("ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("storage: build write: %w", err)
	}
	if _, err := s.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("storage: write: %w", err)
	}
	return nil
}

func (s *PostgresStorage) Delete(ctx context.Context, key string) error {
	query, args, err := psql.Delete(SlotTable).Where(sq.Eq{"slot": key}).ToSql()
	if err != nil {
		return fmt.Errorf("storage: build delete: %w", err)
	}
	if _, err := s.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("storage: delete: %w", err)
	}
	return nil
}

func (s *PostgresStorage) Ping(ctx context.Context) error {
	return s.q.Ping(ctx)
}
