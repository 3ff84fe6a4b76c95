package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bburrets/mdf-contract-management/internal/adapter"
	"github.com/bburrets/mdf-contract-management/internal/ledger"
	"github.com/bburrets/mdf-contract-management/internal/logger"
	"github.com/bburrets/mdf-contract-management/internal/mocks"
	"github.com/bburrets/mdf-contract-management/internal/store"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type testLedgerMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	recorder *mocks.MockAuditRecorder
	clock    *mocks.MockClock
	service  ledger.Service
}

func setupTestLedger(t *testing.T) *testLedgerMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)
	tm := &testLedgerMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		recorder: mocks.NewMockAuditRecorder(ctrl),
		clock:    mocks.NewMockClock(ctrl),
	}
	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Millisecond).AnyTimes()

	tm.service = ledger.New(tm.store, tm.recorder, tm.clock, adapter.NewJSON())

	return tm
}

func tearDownTestLedger(mocks *testLedgerMocks) {
	mocks.ctrl.Finish()
}

// runInline makes RunAtomic invoke fn with the same mock store
func runInline(st *mocks.MockStore) func(ctx context.Context, fn func(store.Store) error) error {
	return func(ctx context.Context, fn func(store.Store) error) error {
		return fn(st)
	}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, d(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}
