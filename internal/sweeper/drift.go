package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/bburrets/mdf-contract-management/internal/adapter"
	"github.com/bburrets/mdf-contract-management/internal/domain"
	"github.com/bburrets/mdf-contract-management/internal/ledger"
	"github.com/bburrets/mdf-contract-management/internal/logger"
	"github.com/bburrets/mdf-contract-management/internal/metrics"
	"github.com/bburrets/mdf-contract-management/internal/store"
)

const (
	DEFAULT_SWEEP_INTERVAL   = time.Hour
	DEFAULT_SWEEP_BATCH_SIZE = 100
	DEFAULT_SWEEP_POOL_SIZE  = 5
)

// DriftSweeperConfig holds configuration for the allocation drift sweeper
type DriftSweeperConfig struct {
	Interval       time.Duration // Time to sleep between sweep cycles
	BatchSize      int           // Contracts read per page
	WorkerPoolSize int           // Concurrent validations
	QueueSize      int           // Pending validations the pool accepts
}

// DriftReport summarizes one sweep cycle
type DriftReport struct {
	Checked int64
	Failed  int64
	// Drifted holds the contracts whose allocations missed the committed total, ordered by id
	Drifted []ledger.AllocationValidation
}

// Over counts drifted contracts with more allocated than committed
func (r *DriftReport) Over() int {
	n := 0
	for _, v := range r.Drifted {
		if v.IsOverAllocated {
			n++
		}
	}
	return n
}

// Under counts drifted contracts with less allocated than committed
func (r *DriftReport) Under() int {
	return len(r.Drifted) - r.Over()
}

var _ Sweeper = (*DriftSweeper)(nil)

// DriftSweeper periodically checks that every Channel contract is fully allocated.
// Contracts can drift when an allocation is edited on its own or the committed total changes.
type DriftSweeper struct {
	config    DriftSweeperConfig
	ledger    ledger.Service
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewDriftSweeper creates a new allocation drift sweeper
func NewDriftSweeper(config DriftSweeperConfig, svc ledger.Service, clock adapter.Clock) *DriftSweeper {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_SWEEP_INTERVAL
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DEFAULT_SWEEP_BATCH_SIZE
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = DEFAULT_SWEEP_POOL_SIZE
	}
	if config.QueueSize <= 0 {
		config.QueueSize = config.BatchSize
	}

	return &DriftSweeper{
		config:    config,
		ledger:    svc,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *DriftSweeper) Name() string {
	return "allocation-drift-sweeper"
}

// Start runs a sweep immediately and then once per interval
func (s *DriftSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting allocation drift sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Allocation drift sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Allocation drift sweeper stop requested")
			return nil
		default:
			if _, err := s.Sweep(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err)
			}
			s.sleep(ctx, s.config.Interval)
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *DriftSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping allocation drift sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Allocation drift sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Allocation drift sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// Sweep runs one cycle over every Channel contract, keyset paged by id
func (s *DriftSweeper) Sweep(ctx context.Context) (*DriftReport, error) {
	startTime := s.clock.Now()

	pool := pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.QueueSize),
		pond.WithContext(ctx),
	)
	defer pool.StopAndWait()

	var (
		checked, failed atomic.Int64
		mu              sync.Mutex
		report          = &DriftReport{}
		scope           = domain.ScopeChannel
		afterID         int64
	)

	for {
		cursor := afterID
		page, err := s.ledger.ListContracts(ctx, store.ContractQueryFilter{
			Scope:   &scope,
			AfterID: &cursor,
			Limit:   s.config.BatchSize,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list contracts after %d: %w", afterID, err)
		}
		if len(page.Contracts) == 0 {
			break
		}

		group := pool.NewGroup()
		for _, c := range page.Contracts {
			contractID := c.ID
			group.Submit(func() {
				validation, err := s.ledger.ValidateAllocationAmounts(ctx, contractID)
				if err != nil {
					if errors.Is(err, domain.ErrNotFound) {
						// deleted since the page was read
						return
					}
					failed.Add(1)
					logger.ErrorCtx(ctx, err, zap.Int64("contract_id", contractID))
					return
				}

				checked.Add(1)
				if validation.IsFullyAllocated {
					return
				}

				logger.WarnCtx(ctx, "Contract allocations drifted from committed total",
					zap.Int64("contract_id", contractID),
					zap.String("total_committed_amount", validation.TotalCommittedAmount.String()),
					zap.String("total_allocated", validation.TotalAllocated.String()),
					zap.String("remaining_to_allocate", validation.RemainingToAllocate.String()),
				)
				mu.Lock()
				report.Drifted = append(report.Drifted, *validation)
				mu.Unlock()
			})
		}
		if err := group.Wait(); err != nil {
			return nil, fmt.Errorf("sweep interrupted: %w", err)
		}

		afterID = page.Contracts[len(page.Contracts)-1].ID
		if len(page.Contracts) < s.config.BatchSize {
			break
		}
	}

	sort.Slice(report.Drifted, func(i, j int) bool {
		return report.Drifted[i].ContractID < report.Drifted[j].ContractID
	})
	report.Checked = checked.Load()
	report.Failed = failed.Load()

	metrics.DriftedContracts.WithLabelValues("over").Set(float64(report.Over()))
	metrics.DriftedContracts.WithLabelValues("under").Set(float64(report.Under()))

	duration := s.clock.Since(startTime)
	metrics.SweepDuration.Observe(duration.Seconds())

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", duration),
		zap.Int64("checked", report.Checked),
		zap.Int64("failed", report.Failed),
		zap.Int("over_allocated", report.Over()),
		zap.Int("under_allocated", report.Under()),
	)

	return report, nil
}

// sleep waits for duration unless the sweeper is canceled or stopped first
func (s *DriftSweeper) sleep(ctx context.Context, duration time.Duration) {
	select {
	case <-s.clock.After(duration):
	case <-ctx.Done():
	case <-s.stopChan:
	}
}
