// Package ledger implements the contract and allocation operations of the funding ledger.
// Every mutation runs in one atomic unit together with its audit entry.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bburrets/mdf-contract-management/internal/adapter"
	"github.com/bburrets/mdf-contract-management/internal/audit"
	"github.com/bburrets/mdf-contract-management/internal/domain"
	"github.com/bburrets/mdf-contract-management/internal/metrics"
	"github.com/bburrets/mdf-contract-management/internal/store"
	"github.com/bburrets/mdf-contract-management/internal/store/schema"
)

// Service is the interface for the funding ledger
//
//go:generate mockgen -source=service.go -destination=../mocks/ledger_service.go -package=mocks -mock_names=Service=MockLedgerService
type Service interface {
	// CreateContract validates the input and atomically inserts the contract, one allocation per
	// non-zero channel and the contract_create audit entry
	CreateContract(ctx context.Context, input CreateContractInput, actor string) (int64, error)
	// GetContract retrieves a contract with its allocations and style details and records a view
	GetContract(ctx context.Context, id int64, actor string) (*store.ContractWithStyle, error)
	// ListContracts retrieves contracts matching the filter, newest first
	ListContracts(ctx context.Context, filter store.ContractQueryFilter) (*ContractPage, error)
	// ExportContracts retrieves one flattened row per contract and allocation
	ExportContracts(ctx context.Context, ids []int64) ([]store.ContractExportRow, error)
	// UpdateContract applies the provided fields to a contract
	UpdateContract(ctx context.Context, id int64, input UpdateContractInput, actor string) (*schema.Contract, error)
	// DeleteContract deletes a contract together with its allocations
	DeleteContract(ctx context.Context, id int64, actor string) error
	// ValidateContractInput returns every field error of a contract submission without writing anything
	ValidateContractInput(ctx context.Context, input CreateContractInput) (domain.ValidationErrors, error)

	// CreateAllocation adds a channel allocation to a Channel contract
	CreateAllocation(ctx context.Context, contractID int64, channel domain.Channel, amount decimal.Decimal, actor string) (*schema.Allocation, error)
	// GetAllocation retrieves an allocation with its spend and remaining balance
	GetAllocation(ctx context.Context, id int64) (*schema.AllocationBalance, error)
	// ListAllocations retrieves allocation balances matching the filter
	ListAllocations(ctx context.Context, filter store.AllocationQueryFilter) (*AllocationPage, error)
	// UpdateAllocation sets the allocated amount of an allocation
	UpdateAllocation(ctx context.Context, id int64, amount decimal.Decimal, actor string) (*schema.Allocation, error)
	// DeleteAllocation deletes an allocation
	DeleteAllocation(ctx context.Context, id int64, actor string) error
	// GetUtilization reports the spend ratio of every allocation, or of one contract's allocations,
	// highest first
	GetUtilization(ctx context.Context, contractID *int64) ([]Utilization, error)
	// GetNearingLimit reports the allocations whose utilization is at or above threshold percent
	GetNearingLimit(ctx context.Context, threshold decimal.Decimal) ([]Utilization, error)
	// GetChannelSummary aggregates allocations per channel
	GetChannelSummary(ctx context.Context) ([]ChannelSummary, error)
	// ValidateAllocationAmounts compares a contract's committed total with its allocations
	ValidateAllocationAmounts(ctx context.Context, contractID int64) (*AllocationValidation, error)

	// QueryAudit reads the audit trail, newest first
	QueryAudit(ctx context.Context, filter audit.Filter, limit int, offset uint64) (*AuditPage, error)

	// SaveDraft stores the contract form of an actor
	SaveDraft(ctx context.Context, actor string, input SaveDraftInput) (*DraftSaveResult, error)
	// ResumeDraft retrieves the latest draft of an actor
	ResumeDraft(ctx context.Context, actor string) (*schema.ContractDraft, error)
	// DeleteDraft deletes a draft owned by the actor
	DeleteDraft(ctx context.Context, id int64, actor string) error
	// CleanupDrafts deletes every draft of the actor except the latest one
	CleanupDrafts(ctx context.Context, actor string) (int64, error)
}

type service struct {
	store    store.Store
	recorder audit.Recorder
	clock    adapter.Clock
	json     adapter.JSON
}

// New creates a ledger service. json decodes stored draft forms.
func New(st store.Store, recorder audit.Recorder, clock adapter.Clock, json adapter.JSON) Service {
	return &service{
		store:    st,
		recorder: recorder,
		clock:    clock,
		json:     json,
	}
}

// track observes the duration and result of an operation. errp is read when the deferred call runs.
func (s *service) track(operation string, start time.Time, errp *error) {
	var err error
	if errp != nil {
		err = *errp
	}
	metrics.LedgerOperationDuration.WithLabelValues(operation).Observe(s.clock.Since(start).Seconds())
	metrics.LedgerOperations.WithLabelValues(operation, resultOf(err)).Inc()
}

func resultOf(err error) string {
	if err == nil {
		return metrics.ResultSuccess
	}
	if _, ok := domain.AsValidationErrors(err); ok {
		return metrics.ResultValidation
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, domain.ErrConflict):
		return metrics.ResultConflict
	case errors.Is(err, domain.ErrResourceExhausted):
		return metrics.ResultExhausted
	default:
		return metrics.ResultError
	}
}
