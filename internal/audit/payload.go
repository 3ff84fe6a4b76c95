package audit

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bburrets/mdf-contract-management/internal/domain"
	"github.com/bburrets/mdf-contract-management/internal/store/schema"
)

// Payload is the action specific body of an audit entry.
// Each action type has exactly one payload shape.
type Payload interface {
	ActionType() domain.ActionType
}

// ContractCreated is recorded by contract_create
type ContractCreated struct {
	Contract schema.Contract `json:"contract"`
}

// ContractUpdated is recorded by contract_update
type ContractUpdated struct {
	Before  schema.Contract `json:"before"`
	After   schema.Contract `json:"after"`
	Changes []string        `json:"changes"`
}

// ContractDeleted is recorded by contract_delete and carries the full pre-deletion snapshot
type ContractDeleted struct {
	Contract  schema.Contract `json:"deleted_contract"`
	DeletedAt time.Time       `json:"deleted_at"`
}

// ContractViewed is recorded by contract_view
type ContractViewed struct {
	ContractID  int64  `json:"contract_id"`
	StyleNumber string `json:"style_number"`
}

// AllocationCreated is recorded by allocation_create
type AllocationCreated struct {
	Allocation schema.Allocation `json:"allocation"`
}

// AllocationUpdated is recorded by allocation_update
type AllocationUpdated struct {
	AllocationID int64           `json:"allocation_id"`
	Channel      domain.Channel  `json:"channel"`
	Before       decimal.Decimal `json:"before_allocated_amount"`
	After        decimal.Decimal `json:"after_allocated_amount"`
	Changes      []string        `json:"changes"`
}

// AllocationDeleted is recorded by allocation_delete
type AllocationDeleted struct {
	Allocation schema.Allocation `json:"deleted_allocation"`
	DeletedAt  time.Time         `json:"deleted_at"`
}

// DraftSaved is recorded by save_draft
type DraftSaved struct {
	DraftID          int64             `json:"draft_id"`
	Created          bool              `json:"created"`
	ReplacedDrafts   int64             `json:"replaced_drafts"`
	ValidationErrors map[string]string `json:"validation_errors,omitempty"`
}

// DraftResumed is recorded by resume_draft
type DraftResumed struct {
	DraftID   int64     `json:"draft_id"`
	LastSaved time.Time `json:"last_saved"`
}

func (ContractCreated) ActionType() domain.ActionType   { return domain.ActionContractCreate }
func (ContractUpdated) ActionType() domain.ActionType   { return domain.ActionContractUpdate }
func (ContractDeleted) ActionType() domain.ActionType   { return domain.ActionContractDelete }
func (ContractViewed) ActionType() domain.ActionType    { return domain.ActionContractView }
func (AllocationCreated) ActionType() domain.ActionType { return domain.ActionAllocationCreate }
func (AllocationUpdated) ActionType() domain.ActionType { return domain.ActionAllocationUpdate }
func (AllocationDeleted) ActionType() domain.ActionType { return domain.ActionAllocationDelete }
func (DraftSaved) ActionType() domain.ActionType        { return domain.ActionSaveDraft }
func (DraftResumed) ActionType() domain.ActionType      { return domain.ActionResumeDraft }

// newPayload returns an empty payload of the shape selected by the action type
func newPayload(actionType domain.ActionType) (Payload, error) {
	var payload Payload
	switch actionType {
	case domain.ActionContractCreate:
		payload = &ContractCreated{}
	case domain.ActionContractUpdate:
		payload = &ContractUpdated{}
	case domain.ActionContractDelete:
		payload = &ContractDeleted{}
	case domain.ActionContractView:
		payload = &ContractViewed{}
	case domain.ActionAllocationCreate:
		payload = &AllocationCreated{}
	case domain.ActionAllocationUpdate:
		payload = &AllocationUpdated{}
	case domain.ActionAllocationDelete:
		payload = &AllocationDeleted{}
	case domain.ActionSaveDraft:
		payload = &DraftSaved{}
	case domain.ActionResumeDraft:
		payload = &DraftResumed{}
	default:
		return nil, fmt.Errorf("unknown action type %q", actionType)
	}
	return payload, nil
}
