package pgxfx

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// DBTX is satisfied by both the pool and a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB can also open transactions.
type DB interface {
	DBTX
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

var _ DB = (*pgxpool.Pool)(nil)

// New builds a pool, connections are established lazily.
func New(config Config) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(config.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database dsn: %w", err)
	}

	if config.MaxConns > 0 {
		pc.MaxConns = config.MaxConns
	}
	if config.MinConns > 0 {
		pc.MinConns = config.MinConns
	}
	if config.MaxConnLifetime > 0 {
		pc.MaxConnLifetime = config.MaxConnLifetime
	}
	if config.MaxConnIdleTime > 0 {
		pc.MaxConnIdleTime = config.MaxConnIdleTime
	}
	if config.DialTimeout > 0 {
		pc.ConnConfig.ConnectTimeout = config.DialTimeout
	}
	if config.ApplicationName != "" {
		pc.ConnConfig.RuntimeParams["application_name"] = config.ApplicationName
	}
	if config.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = fmt.Sprint(config.StatementTimeout.Milliseconds())
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pc)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	return pool, nil
}

// IsForeignKeyViolation reports whether err was raised by a foreign key constraint.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// IsUniqueViolation reports whether err was raised by a unique constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// InTx runs fn inside a transaction, rolling back when fn fails.
func InTx(ctx context.Context, db DB, fn func(tx DBTX) error) error {
	return inTx(ctx, db, pgx.TxOptions{}, fn)
}

// InSnapshot runs fn in a read-only repeatable read transaction, every
// statement inside sees the same data.
func InSnapshot(ctx context.Context, db DB, fn func(tx DBTX) error) error {
	return inTx(ctx, db, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, fn)
}

func inTx(ctx context.Context, db DB, options pgx.TxOptions, fn func(tx DBTX) error) error {
	tx, err := db.BeginTx(ctx, options)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if fnErr := fn(tx); fnErr != nil {
		return fnErr
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return fmt.Errorf("failed to commit transaction: %w", commitErr)
	}

	return nil
}
