package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bburrets/mdf-contract-management/internal/allocation"
	"github.com/bburrets/mdf-contract-management/internal/audit"
	"github.com/bburrets/mdf-contract-management/internal/domain"
	"github.com/bburrets/mdf-contract-management/internal/logger"
	"github.com/bburrets/mdf-contract-management/internal/store"
	"github.com/bburrets/mdf-contract-management/internal/store/schema"
)

func validateAmount(verrs domain.ValidationErrors, amount decimal.Decimal) {
	switch {
	case amount.IsNegative():
		verrs.Add("allocated_amount", "must not be negative")
	case !hasCents(amount):
		verrs.Add("allocated_amount", "must have at most 2 decimal places")
	}
}

func (s *service) CreateAllocation(ctx context.Context, contractID int64, channel domain.Channel, amount decimal.Decimal, actor string) (created *schema.Allocation, err error) {
	defer s.track("create_allocation", s.clock.Now(), &err)

	if actor == "" {
		return nil, domain.ErrActorRequired
	}

	verrs := domain.ValidationErrors{}
	if !channel.Valid() {
		verrs.Add("channel", "must be one of: Inline Ecomm")
	}
	validateAmount(verrs, amount)
	if verrs.HasErrors() {
		return nil, verrs
	}

	err = s.store.RunAtomic(ctx, func(tx store.Store) error {
		contract, err := tx.GetContractForUpdate(ctx, contractID)
		if err != nil {
			return err
		}
		if contract == nil {
			return fmt.Errorf("contract %d: %w", contractID, domain.ErrContractNotFound)
		}
		if contract.Scope != domain.ScopeChannel {
			return domain.ValidationErrors{"contract_id": "AllStyle contracts carry no channel allocations"}
		}
		for _, existing := range contract.Allocations {
			if existing.Channel == channel {
				return fmt.Errorf("%s allocation for contract %d: %w", channel, contractID, domain.ErrDuplicateAllocation)
			}
		}
		if err := allocation.ValidateAllocationBounds(contract.TotalCommittedAmount, amount); err != nil {
			return domain.ValidationErrors{"allocated_amount": err.Error()}
		}

		a := &schema.Allocation{
			ContractID:      contractID,
			Channel:         channel,
			AllocatedAmount: amount,
		}
		if err := tx.CreateAllocation(ctx, a); err != nil {
			return err
		}

		s.recorder.Record(ctx, tx, audit.Entry{
			ContractID: &contractID,
			ActorID:    actor,
			Payload:    audit.AllocationCreated{Allocation: *a},
		})

		created = a
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create allocation: %w", err)
	}

	logger.InfoCtx(ctx, "Allocation created",
		zap.Int64("allocation_id", created.ID),
		zap.Int64("contract_id", contractID),
		zap.String("channel", string(channel)),
		zap.String("actor", actor))

	return created, nil
}

func (s *service) GetAllocation(ctx context.Context, id int64) (balance *schema.AllocationBalance, err error) {
	defer s.track("get_allocation", s.clock.Now(), &err)

	balance, err = s.store.GetAllocationBalance(ctx, id)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, fmt.Errorf("allocation %d: %w", id, domain.ErrAllocationNotFound)
	}
	return balance, nil
}

func (s *service) ListAllocations(ctx context.Context, filter store.AllocationQueryFilter) (page *AllocationPage, err error) {
	defer s.track("list_allocations", s.clock.Now(), &err)

	filter.Limit = normalizeLimit(filter.Limit)
	if filter.Channel != nil && !filter.Channel.Valid() {
		return nil, domain.ValidationErrors{"channel": "must be one of: Inline Ecomm"}
	}

	balances, total, err := s.store.ListAllocationBalances(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &AllocationPage{
		Allocations: balances,
		Total:       total,
		Limit:       filter.Limit,
		Offset:      filter.Offset,
	}, nil
}

func (s *service) UpdateAllocation(ctx context.Context, id int64, amount decimal.Decimal, actor string) (updated *schema.Allocation, err error) {
	defer s.track("update_allocation", s.clock.Now(), &err)

	if actor == "" {
		return nil, domain.ErrActorRequired
	}

	verrs := domain.ValidationErrors{}
	validateAmount(verrs, amount)
	if verrs.HasErrors() {
		return nil, verrs
	}

	err = s.store.RunAtomic(ctx, func(tx store.Store) error {
		before, err := tx.GetAllocationForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if before == nil {
			return fmt.Errorf("allocation %d: %w", id, domain.ErrAllocationNotFound)
		}

		contract, err := tx.GetContractByID(ctx, before.ContractID)
		if err != nil {
			return err
		}
		if contract == nil {
			return fmt.Errorf("contract %d: %w", before.ContractID, domain.ErrContractNotFound)
		}
		if err := allocation.ValidateAllocationBounds(contract.TotalCommittedAmount, amount); err != nil {
			return domain.ValidationErrors{"allocated_amount": err.Error()}
		}

		after, err := tx.UpdateAllocationAmount(ctx, id, amount)
		if err != nil {
			return err
		}
		if after == nil {
			return fmt.Errorf("allocation %d: %w", id, domain.ErrAllocationNotFound)
		}

		s.recorder.Record(ctx, tx, audit.Entry{
			ContractID: &before.ContractID,
			ActorID:    actor,
			Payload: audit.AllocationUpdated{
				AllocationID: id,
				Channel:      before.Channel,
				Before:       before.AllocatedAmount,
				After:        after.AllocatedAmount,
				Changes:      []string{"allocated_amount"},
			},
		})

		updated = after
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update allocation %d: %w", id, err)
	}

	logger.InfoCtx(ctx, "Allocation updated",
		zap.Int64("allocation_id", id),
		zap.String("allocated_amount", updated.AllocatedAmount.StringFixed(2)),
		zap.String("actor", actor))

	return updated, nil
}

func (s *service) DeleteAllocation(ctx context.Context, id int64, actor string) (err error) {
	defer s.track("delete_allocation", s.clock.Now(), &err)

	if actor == "" {
		return domain.ErrActorRequired
	}

	err = s.store.RunAtomic(ctx, func(tx store.Store) error {
		before, err := tx.GetAllocationForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if before == nil {
			return fmt.Errorf("allocation %d: %w", id, domain.ErrAllocationNotFound)
		}

		deleted, err := tx.DeleteAllocation(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("allocation %d: %w", id, domain.ErrAllocationNotFound)
		}

		s.recorder.Record(ctx, tx, audit.Entry{
			ContractID: &before.ContractID,
			ActorID:    actor,
			Payload: audit.AllocationDeleted{
				Allocation: *before,
				DeletedAt:  s.clock.Now(),
			},
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete allocation %d: %w", id, err)
	}

	logger.InfoCtx(ctx, "Allocation deleted", zap.Int64("allocation_id", id), zap.String("actor", actor))
	return nil
}

// utilizationOf returns spent / allocated * 100, or 0 when nothing is allocated
func utilizationOf(b schema.AllocationBalance) decimal.Decimal {
	if !b.AllocatedAmount.IsPositive() {
		return decimal.Zero
	}
	return b.SpentAmount.Div(b.AllocatedAmount).Mul(domain.Hundred)
}

// sortByUtilization orders highest utilization first, then by allocation id
func sortByUtilization(items []Utilization) {
	sort.SliceStable(items, func(i, j int) bool {
		if c := items[i].UtilizationPercentage.Cmp(items[j].UtilizationPercentage); c != 0 {
			return c > 0
		}
		return items[i].ID < items[j].ID
	})
}

func (s *service) GetUtilization(ctx context.Context, contractID *int64) (items []Utilization, err error) {
	defer s.track("get_utilization", s.clock.Now(), &err)

	balances, _, err := s.store.ListAllocationBalances(ctx, store.AllocationQueryFilter{ContractID: contractID})
	if err != nil {
		return nil, err
	}

	items = make([]Utilization, 0, len(balances))
	for _, b := range balances {
		items = append(items, Utilization{
			AllocationBalance:     b,
			UtilizationPercentage: utilizationOf(b).Round(2),
		})
	}
	sortByUtilization(items)

	return items, nil
}

func (s *service) GetNearingLimit(ctx context.Context, threshold decimal.Decimal) (items []Utilization, err error) {
	defer s.track("get_nearing_limit", s.clock.Now(), &err)

	if threshold.IsNegative() {
		return nil, domain.ValidationErrors{"threshold": "must not be negative"}
	}

	balances, _, err := s.store.ListAllocationBalances(ctx, store.AllocationQueryFilter{})
	if err != nil {
		return nil, err
	}

	items = make([]Utilization, 0)
	for _, b := range balances {
		if !b.AllocatedAmount.IsPositive() {
			continue
		}
		pct := utilizationOf(b)
		if pct.LessThan(threshold) {
			continue
		}
		items = append(items, Utilization{
			AllocationBalance:     b,
			UtilizationPercentage: pct.Round(2),
		})
	}
	sortByUtilization(items)

	return items, nil
}

func (s *service) GetChannelSummary(ctx context.Context) (summaries []ChannelSummary, err error) {
	defer s.track("get_channel_summary", s.clock.Now(), &err)

	balances, _, err := s.store.ListAllocationBalances(ctx, store.AllocationQueryFilter{})
	if err != nil {
		return nil, err
	}

	byChannel := make(map[domain.Channel]*ChannelSummary, len(domain.Channels))
	utilizationSum := make(map[domain.Channel]decimal.Decimal, len(domain.Channels))
	for _, b := range balances {
		summary, ok := byChannel[b.Channel]
		if !ok {
			summary = &ChannelSummary{Channel: b.Channel, Label: b.Channel.Label()}
			byChannel[b.Channel] = summary
		}
		summary.AllocationCount++
		summary.TotalAllocated = summary.TotalAllocated.Add(b.AllocatedAmount)
		summary.TotalSpent = summary.TotalSpent.Add(b.SpentAmount)
		summary.TotalRemaining = summary.TotalRemaining.Add(b.RemainingBalance)
		utilizationSum[b.Channel] = utilizationSum[b.Channel].Add(utilizationOf(b))
	}

	summaries = make([]ChannelSummary, 0, len(byChannel))
	for _, channel := range domain.Channels {
		summary, ok := byChannel[channel]
		if !ok {
			continue
		}
		summary.AverageUtilization = utilizationSum[channel].
			Div(decimal.NewFromInt(int64(summary.AllocationCount))).
			Round(2)
		summaries = append(summaries, *summary)
	}

	return summaries, nil
}

func (s *service) ValidateAllocationAmounts(ctx context.Context, contractID int64) (result *AllocationValidation, err error) {
	defer s.track("validate_allocations", s.clock.Now(), &err)

	totals, err := s.store.GetAllocationTotals(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if totals == nil {
		return nil, fmt.Errorf("contract %d: %w", contractID, domain.ErrContractNotFound)
	}

	remaining := totals.TotalCommittedAmount.Sub(totals.TotalAllocated)
	return &AllocationValidation{
		ContractID:           contractID,
		TotalCommittedAmount: totals.TotalCommittedAmount,
		TotalAllocated:       totals.TotalAllocated,
		RemainingToAllocate:  remaining,
		IsFullyAllocated:     remaining.Abs().LessThanOrEqual(domain.Tolerance),
		IsOverAllocated:      remaining.LessThan(domain.Tolerance.Neg()),
	}, nil
}
