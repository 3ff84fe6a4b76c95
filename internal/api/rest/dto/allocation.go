package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bburrets/mdf-contract-management/internal/allocation"
)

// CreateAllocationRequest is the body of POST /allocations
type CreateAllocationRequest struct {
	ContractID      int64           `json:"contract_id" binding:"required"`
	Channel         string          `json:"channel" binding:"required"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
}

// UpdateAllocationRequest is the body of PATCH /allocations/:id
type UpdateAllocationRequest struct {
	AllocatedAmount *decimal.Decimal `json:"allocated_amount" binding:"required"`
}

// Reconcile modes
const (
	RECONCILE_PERCENTAGE = "percentage"
	RECONCILE_AMOUNT     = "amount"
	RECONCILE_PRESET     = "preset"
	RECONCILE_RESET      = "reset"
)

// ReconcileRequest is the body of POST /allocations/reconcile. It derives a split without persisting anything.
type ReconcileRequest struct {
	TotalCommittedAmount decimal.Decimal  `json:"total_committed_amount"`
	Mode                 string           `json:"mode" binding:"required,oneof=percentage amount preset reset"`
	InlinePercentage     *decimal.Decimal `json:"inline_percentage"`
	InlineAmount         *decimal.Decimal `json:"inline_amount"`
	Preset               string           `json:"preset"`
}

// ReconcileResponse is the derived split
type ReconcileResponse struct {
	allocation.Split
	Reconciles bool `json:"reconciles"`
}

// PresetsResponse lists the supported presets
type PresetsResponse struct {
	Presets []allocation.Preset `json:"presets"`
}

// MigrationRunResponse is returned by POST /admin/migrations/run
type MigrationRunResponse struct {
	Applied int `json:"applied"`
}
