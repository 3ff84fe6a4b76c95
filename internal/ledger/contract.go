package ledger

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bburrets/mdf-contract-management/internal/allocation"
	"github.com/bburrets/mdf-contract-management/internal/audit"
	"github.com/bburrets/mdf-contract-management/internal/domain"
	"github.com/bburrets/mdf-contract-management/internal/logger"
	"github.com/bburrets/mdf-contract-management/internal/store"
	"github.com/bburrets/mdf-contract-management/internal/store/schema"
)

func (s *service) CreateContract(ctx context.Context, input CreateContractInput, actor string) (id int64, err error) {
	defer s.track("create_contract", s.clock.Now(), &err)

	if actor == "" {
		return 0, domain.ErrActorRequired
	}

	verrs, err := s.validateContract(ctx, input)
	if err != nil {
		return 0, err
	}
	if verrs.HasErrors() {
		return 0, verrs
	}

	contract := &schema.Contract{
		StyleNumber:          input.StyleNumber,
		Scope:                input.Scope,
		Customer:             input.Customer,
		TotalCommittedAmount: input.TotalCommittedAmount,
		ContractDate:         input.ContractDate,
		CampaignStartDate:    input.CampaignStartDate,
		CampaignEndDate:      input.CampaignEndDate,
		CreatedBy:            actor,
	}

	err = s.store.RunAtomic(ctx, func(tx store.Store) error {
		contract.Allocations = nil
		if err := tx.CreateContract(ctx, contract); err != nil {
			return err
		}

		if contract.Scope == domain.ScopeChannel {
			for _, channel := range domain.Channels {
				amount := input.Allocations.Amount(channel)
				if amount.IsZero() {
					continue
				}
				a := schema.Allocation{
					ContractID:      contract.ID,
					Channel:         channel,
					AllocatedAmount: amount,
				}
				if err := tx.CreateAllocation(ctx, &a); err != nil {
					return err
				}
				contract.Allocations = append(contract.Allocations, a)
			}
		}

		s.recorder.Record(ctx, tx, audit.Entry{
			ContractID: &contract.ID,
			ActorID:    actor,
			Payload:    audit.ContractCreated{Contract: *contract},
		})
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create contract: %w", err)
	}

	logger.InfoCtx(ctx, "Contract created",
		zap.Int64("contract_id", contract.ID),
		zap.String("style_number", contract.StyleNumber),
		zap.String("scope", string(contract.Scope)),
		zap.Int("allocations", len(contract.Allocations)),
		zap.String("actor", actor))

	return contract.ID, nil
}

func (s *service) GetContract(ctx context.Context, id int64, actor string) (contract *store.ContractWithStyle, err error) {
	defer s.track("get_contract", s.clock.Now(), &err)

	contract, err = s.store.GetContractWithStyle(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, fmt.Errorf("contract %d: %w", id, domain.ErrContractNotFound)
	}

	if actor != "" {
		s.recorder.Record(ctx, nil, audit.Entry{
			ContractID: &contract.ID,
			ActorID:    actor,
			Payload: audit.ContractViewed{
				ContractID:  contract.ID,
				StyleNumber: contract.StyleNumber,
			},
		})
	}

	return contract, nil
}

func (s *service) ListContracts(ctx context.Context, filter store.ContractQueryFilter) (page *ContractPage, err error) {
	defer s.track("list_contracts", s.clock.Now(), &err)

	filter.Limit = normalizeLimit(filter.Limit)
	if filter.Scope != nil && !filter.Scope.Valid() {
		return nil, domain.ValidationErrors{"scope": "must be one of: Channel AllStyle"}
	}

	contracts, total, err := s.store.ListContracts(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ContractPage{
		Contracts: contracts,
		Total:     total,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	}, nil
}

func (s *service) ExportContracts(ctx context.Context, ids []int64) (rows []store.ContractExportRow, err error) {
	defer s.track("export_contracts", s.clock.Now(), &err)

	if len(ids) == 0 {
		return []store.ContractExportRow{}, nil
	}
	if len(ids) > domain.MAX_LIST_LIMIT {
		return nil, domain.ValidationErrors{
			"ids": fmt.Sprintf("at most %d contracts can be exported at once", domain.MAX_LIST_LIMIT),
		}
	}

	return s.store.ExportContracts(ctx, ids)
}

func (s *service) UpdateContract(ctx context.Context, id int64, input UpdateContractInput, actor string) (updated *schema.Contract, err error) {
	defer s.track("update_contract", s.clock.Now(), &err)

	if actor == "" {
		return nil, domain.ErrActorRequired
	}
	if verrs := structErrors(input); verrs.HasErrors() {
		return nil, verrs
	}

	err = s.store.RunAtomic(ctx, func(tx store.Store) error {
		before, err := tx.GetContractForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if before == nil {
			return fmt.Errorf("contract %d: %w", id, domain.ErrContractNotFound)
		}

		after := input.apply(*before)

		verrs := domain.ValidationErrors{}
		validateTotal(verrs, after.TotalCommittedAmount)
		if err := allocation.ValidateCampaignRange(after.CampaignStartDate, after.CampaignEndDate); err != nil {
			verrs.Add("campaign_end_date", err.Error())
		}
		if verrs.HasErrors() {
			return verrs
		}

		if err := tx.UpdateContract(ctx, &after); err != nil {
			return err
		}

		s.recorder.Record(ctx, tx, audit.Entry{
			ContractID: &after.ID,
			ActorID:    actor,
			Payload: audit.ContractUpdated{
				Before:  *before,
				After:   after,
				Changes: input.Changes(),
			},
		})

		updated = &after
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update contract %d: %w", id, err)
	}

	logger.InfoCtx(ctx, "Contract updated",
		zap.Int64("contract_id", id),
		zap.Strings("changes", input.Changes()),
		zap.String("actor", actor))

	return updated, nil
}

func (s *service) DeleteContract(ctx context.Context, id int64, actor string) (err error) {
	defer s.track("delete_contract", s.clock.Now(), &err)

	if actor == "" {
		return domain.ErrActorRequired
	}

	err = s.store.RunAtomic(ctx, func(tx store.Store) error {
		contract, err := tx.GetContractForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if contract == nil {
			return fmt.Errorf("contract %d: %w", id, domain.ErrContractNotFound)
		}

		if _, err := tx.DeleteAllocationsByContractID(ctx, id); err != nil {
			return err
		}
		deleted, err := tx.DeleteContract(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("contract %d: %w", id, domain.ErrContractNotFound)
		}

		s.recorder.Record(ctx, tx, audit.Entry{
			ContractID: &id,
			ActorID:    actor,
			Payload: audit.ContractDeleted{
				Contract:  *contract,
				DeletedAt: s.clock.Now(),
			},
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete contract %d: %w", id, err)
	}

	logger.InfoCtx(ctx, "Contract deleted", zap.Int64("contract_id", id), zap.String("actor", actor))
	return nil
}

func (s *service) ValidateContractInput(ctx context.Context, input CreateContractInput) (verrs domain.ValidationErrors, err error) {
	defer s.track("validate_contract", s.clock.Now(), &err)

	return s.validateContract(ctx, input)
}
