// Package postgres persists credential and student records.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidTransition indicates an update that would violate the
	// credential lifecycle (PENDING -> ISSUED/ERROR, ISSUED -> REVOKED).
	ErrInvalidTransition = errors.New("invalid credential state transition")
)

type (
	// DB is the pgx surface the repository uses. *pgxpool.Pool satisfies it.
	DB interface {
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	}

	// Metrics records outcomes of repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository provides single-row reads and writes over the credential store.
type Repository struct {
	db      DB
	metrics Metrics
}

// NewRepository opens a connection pool for dsn and pings it.
func NewRepository(ctx context.Context, dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Repository{db: pool, metrics: metrics}, nil
}
