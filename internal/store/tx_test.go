package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/bburrets/mdf-contract-management/internal/domain"
)

func TestTranslateError(t *testing.T) {
	expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	tests := []struct {
		name  string
		ctx   context.Context
		err   error
		check func(t *testing.T, got error)
	}{
		{
			name: "nil",
			ctx:  context.Background(),
			err:  nil,
			check: func(t *testing.T, got error) {
				assert.NoError(t, got)
			},
		},
		{
			name: "validation errors pass through",
			ctx:  context.Background(),
			err:  domain.ValidationErrors{"total_committed_amount": "must be greater than zero"},
			check: func(t *testing.T, got error) {
				_, ok := domain.AsValidationErrors(got)
				assert.True(t, ok)
			},
		},
		{
			name: "not found passes through",
			ctx:  context.Background(),
			err:  fmt.Errorf("contract 7: %w", domain.ErrContractNotFound),
			check: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, domain.ErrNotFound)
				var txErr *domain.TransactionError
				assert.False(t, errors.As(got, &txErr))
			},
		},
		{
			name: "unique violation becomes conflict",
			ctx:  context.Background(),
			err:  fmt.Errorf("failed to insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_allocations_contract_channel"}),
			check: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, domain.ErrConflict)
				assert.Contains(t, got.Error(), "idx_allocations_contract_channel")
			},
		},
		{
			name: "gorm duplicated key becomes conflict",
			ctx:  context.Background(),
			err:  gorm.ErrDuplicatedKey,
			check: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, domain.ErrConflict)
			},
		},
		{
			name: "deadline becomes resource exhausted",
			ctx:  context.Background(),
			err:  fmt.Errorf("failed to begin: %w", context.DeadlineExceeded),
			check: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, domain.ErrResourceExhausted)
			},
		},
		{
			name: "expired context becomes resource exhausted",
			ctx:  expired,
			err:  errors.New("conn busy"),
			check: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, domain.ErrResourceExhausted)
			},
		},
		{
			name: "cancellation passes through",
			ctx:  context.Background(),
			err:  context.Canceled,
			check: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, context.Canceled)
			},
		},
		{
			name: "anything else is a transaction error",
			ctx:  context.Background(),
			err:  errors.New("connection reset by peer"),
			check: func(t *testing.T, got error) {
				var txErr *domain.TransactionError
				assert.ErrorAs(t, got, &txErr)
				assert.Equal(t, "run_atomic", txErr.Op)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, translateError(tt.ctx, tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&pgconn.PgError{Code: "40001"}))
	assert.True(t, IsRetryable(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "40P01"})))
	assert.False(t, IsRetryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsRetryable(errors.New("plain")))
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	open, idle, lifetime, idleTime := NormalizeConnectionPoolSettings(0, 0, 0, 0)
	assert.Equal(t, 20, open)
	assert.Equal(t, 5, idle)
	assert.Equal(t, 5*time.Minute, lifetime)
	assert.Equal(t, 10*time.Minute, idleTime)

	open, idle, _, _ = NormalizeConnectionPoolSettings(3, 10, time.Hour, time.Minute)
	assert.Equal(t, 3, open)
	assert.Equal(t, 3, idle, "idle connections never exceed open connections")
}
