package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/bburrets/mdf-contract-management/internal/domain"
)

// PostgreSQL error codes the coordinator translates
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// RunAtomic executes fn inside a transaction and translates the resulting error.
//
// Nested calls made through the transactional store run in a savepoint, so an error
// returned by the inner fn rolls back only the inner work. The acquire timeout bounds
// only the wait for a pooled connection of the outermost block; a slow transaction that
// holds its connection is never cut short by it.
func (s *pgStore) RunAtomic(ctx context.Context, fn func(tx Store) error) error {
	db := s.db.WithContext(ctx)

	if !s.inTransaction() && s.acquireTimeout > 0 {
		conn, err := s.acquire(ctx)
		if err != nil {
			return translateError(ctx, err)
		}
		defer func() { _ = conn.Close() }()
		db.Statement.ConnPool = conn
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx, acquireTimeout: s.acquireTimeout})
	})

	return translateError(ctx, err)
}

// acquire checks a dedicated connection out of the pool, waiting at most acquireTimeout
func (s *pgStore) acquire(ctx context.Context) (*sql.Conn, error) {
	sqlDB, err := s.db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	acquireCtx, cancel := context.WithTimeout(ctx, s.acquireTimeout)
	defer cancel()

	conn, err := sqlDB.Conn(acquireCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection within %s: %w", s.acquireTimeout, err)
	}
	return conn, nil
}

// inTransaction reports whether the store is bound to an open transaction
func (s *pgStore) inTransaction() bool {
	committer, ok := s.db.Statement.ConnPool.(gorm.TxCommitter)
	return ok && committer != nil
}

// isUniqueViolation reports whether err is a unique constraint violation and returns the constraint name
func isUniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName, true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}
	return "", false
}

// IsRetryable reports whether err is a serialization failure or a deadlock that may succeed on retry
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
	}
	return false
}

// translateError maps the outcome of an atomic block into the domain error taxonomy.
// Business errors pass through untouched, everything else is reported as a TransactionError.
func translateError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	if _, ok := domain.AsValidationErrors(err); ok {
		return err
	}
	if errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrResourceExhausted) ||
		errors.Is(err, domain.ErrActorRequired) {
		return err
	}

	if constraint, ok := isUniqueViolation(err); ok {
		if constraint == "" {
			return fmt.Errorf("%w: %v", domain.ErrConflict, err)
		}
		return fmt.Errorf("%w: unique constraint %s violated", domain.ErrConflict, constraint)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrResourceExhausted, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	return &domain.TransactionError{Op: "run_atomic", Err: err}
}
