package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bburrets/mdf-contract-management/internal/domain"
	"github.com/bburrets/mdf-contract-management/internal/ledger"
	"github.com/bburrets/mdf-contract-management/internal/store"
	"github.com/bburrets/mdf-contract-management/internal/store/schema"
)

// AllocationResponse represents one channel allocation of a contract
type AllocationResponse struct {
	ID              int64           `json:"id"`
	ContractID      int64           `json:"contract_id"`
	Channel         domain.Channel  `json:"channel"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ContractResponse represents a contract with its allocations. Calendar dates are YYYY-MM-DD.
type ContractResponse struct {
	ID                   int64                `json:"id"`
	StyleNumber          string               `json:"style_number"`
	Scope                domain.Scope         `json:"scope"`
	Customer             *string              `json:"customer"`
	TotalCommittedAmount decimal.Decimal      `json:"total_committed_amount"`
	ContractDate         string               `json:"contract_date"`
	CampaignStartDate    *string              `json:"campaign_start_date"`
	CampaignEndDate      *string              `json:"campaign_end_date"`
	CreatedBy            string               `json:"created_by"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
	Allocations          []AllocationResponse `json:"allocations"`

	// Style catalog details, present when the contract was read with its style
	ItemNumber      *string `json:"item_number,omitempty"`
	ItemDescription *string `json:"item_desc,omitempty"`
	Season          *string `json:"season,omitempty"`
	BusinessLine    *string `json:"business_line,omitempty"`
}

// ContractListResponse is one page of contracts
type ContractListResponse struct {
	Contracts []ContractResponse `json:"contracts"`
	Total     uint64             `json:"total"`
	Limit     int                `json:"limit"`
	Offset    uint64             `json:"offset"`
}

// CreateContractResponse is returned by POST /contracts
type CreateContractResponse struct {
	ContractID int64 `json:"contract_id"`
}

// ValidateContractResponse is returned by POST /contracts/validate
type ValidateContractResponse struct {
	Valid  bool                    `json:"valid"`
	Errors domain.ValidationErrors `json:"errors,omitempty"`
}

// UpdateContractRequest is the body of PATCH /contracts/:id. Omitted fields are unchanged.
type UpdateContractRequest struct {
	Customer             *string          `json:"customer"`
	TotalCommittedAmount *decimal.Decimal `json:"total_committed_amount"`
	CampaignStartDate    *string          `json:"campaign_start_date"`
	CampaignEndDate      *string          `json:"campaign_end_date"`
}

// Input converts the request into a ledger update, reporting unparseable dates as field errors
func (r UpdateContractRequest) Input() (ledger.UpdateContractInput, domain.ValidationErrors) {
	verrs := domain.ValidationErrors{}
	input := ledger.UpdateContractInput{
		Customer:             r.Customer,
		TotalCommittedAmount: r.TotalCommittedAmount,
	}
	input.CampaignStartDate = parseOptionalDate(verrs, "campaign_start_date", r.CampaignStartDate)
	input.CampaignEndDate = parseOptionalDate(verrs, "campaign_end_date", r.CampaignEndDate)
	return input, verrs
}

func parseOptionalDate(verrs domain.ValidationErrors, field string, value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, err := ledger.ParseDate(*value)
	if err != nil || t == nil {
		verrs.Add(field, "must be a date in YYYY-MM-DD format")
		return nil
	}
	return t
}

// FormatDate renders a calendar date
func FormatDate(t time.Time) string {
	return t.Format(ledger.DateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}

// NewAllocationResponse maps an allocation row
func NewAllocationResponse(a schema.Allocation) AllocationResponse {
	return AllocationResponse{
		ID:              a.ID,
		ContractID:      a.ContractID,
		Channel:         a.Channel,
		AllocatedAmount: a.AllocatedAmount,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// NewContractResponse maps a contract row
func NewContractResponse(c schema.Contract) ContractResponse {
	allocations := make([]AllocationResponse, 0, len(c.Allocations))
	for _, a := range c.Allocations {
		allocations = append(allocations, NewAllocationResponse(a))
	}

	return ContractResponse{
		ID:                   c.ID,
		StyleNumber:          c.StyleNumber,
		Scope:                c.Scope,
		Customer:             c.Customer,
		TotalCommittedAmount: c.TotalCommittedAmount,
		ContractDate:         FormatDate(c.ContractDate),
		CampaignStartDate:    formatOptionalDate(c.CampaignStartDate),
		CampaignEndDate:      formatOptionalDate(c.CampaignEndDate),
		CreatedBy:            c.CreatedBy,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
		Allocations:          allocations,
	}
}

// NewContractWithStyleResponse maps a contract read with its style details
func NewContractWithStyleResponse(c store.ContractWithStyle) ContractResponse {
	resp := NewContractResponse(c.Contract)
	resp.ItemNumber = c.ItemNumber
	resp.ItemDescription = c.ItemDescription
	resp.Season = c.Season
	resp.BusinessLine = c.BusinessLine
	return resp
}

// NewContractListResponse maps a page of contracts
func NewContractListResponse(page *ledger.ContractPage) ContractListResponse {
	contracts := make([]ContractResponse, 0, len(page.Contracts))
	for _, c := range page.Contracts {
		contracts = append(contracts, NewContractWithStyleResponse(c))
	}
	return ContractListResponse{
		Contracts: contracts,
		Total:     page.Total,
		Limit:     page.Limit,
		Offset:    page.Offset,
	}
}
