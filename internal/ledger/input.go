package ledger

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bburrets/mdf-contract-management/internal/audit"
	"github.com/bburrets/mdf-contract-management/internal/domain"
	"github.com/bburrets/mdf-contract-management/internal/store"
	"github.com/bburrets/mdf-contract-management/internal/store/schema"
)

// DateLayout is the calendar date format used by contract forms
const DateLayout = "2006-01-02"

// AllocationInput is the requested channel split of a Channel contract.
// Percentages are optional; when both are given they must agree with the amounts.
type AllocationInput struct {
	InlineAmount     decimal.Decimal  `json:"inline_amount"`
	EcommAmount      decimal.Decimal  `json:"ecomm_amount"`
	InlinePercentage *decimal.Decimal `json:"inline_percentage,omitempty"`
	EcommPercentage  *decimal.Decimal `json:"ecomm_percentage,omitempty"`
}

// Amount returns the amount requested for a channel
func (a AllocationInput) Amount(channel domain.Channel) decimal.Decimal {
	if channel == domain.ChannelEcomm {
		return a.EcommAmount
	}
	return a.InlineAmount
}

// CreateContractInput is a new contract submission
type CreateContractInput struct {
	StyleNumber          string          `json:"style_number" validate:"required,max=50"`
	Scope                domain.Scope    `json:"scope" validate:"required,oneof=Channel AllStyle"`
	Customer             *string         `json:"customer,omitempty" validate:"omitempty,max=200"`
	TotalCommittedAmount decimal.Decimal `json:"total_committed_amount"`
	ContractDate         time.Time       `json:"contract_date" validate:"required"`
	CampaignStartDate    *time.Time      `json:"campaign_start_date,omitempty"`
	CampaignEndDate      *time.Time      `json:"campaign_end_date,omitempty"`
	Allocations          AllocationInput `json:"allocations"`
}

// ContractForm is the contract entry form as clients submit it and as drafts store it.
// Dates are calendar dates in YYYY-MM-DD form.
type ContractForm struct {
	StyleNumber          string          `json:"style_number"`
	Scope                string          `json:"scope"`
	Customer             string          `json:"customer,omitempty"`
	TotalCommittedAmount decimal.Decimal `json:"total_committed_amount"`
	ContractDate         string          `json:"contract_date"`
	CampaignStartDate    string          `json:"campaign_start_date,omitempty"`
	CampaignEndDate      string          `json:"campaign_end_date,omitempty"`
	Allocations          AllocationInput `json:"allocations"`
}

// Input converts the form into a contract input. Dates that cannot be parsed are reported as field errors.
func (f ContractForm) Input() (CreateContractInput, domain.ValidationErrors) {
	verrs := domain.ValidationErrors{}

	input := CreateContractInput{
		StyleNumber:          strings.TrimSpace(f.StyleNumber),
		Scope:                domain.Scope(strings.TrimSpace(f.Scope)),
		TotalCommittedAmount: f.TotalCommittedAmount,
		Allocations:          f.Allocations,
	}
	if customer := strings.TrimSpace(f.Customer); customer != "" {
		input.Customer = &customer
	}
	if contractDate := parseDate(verrs, "contract_date", f.ContractDate); contractDate != nil {
		input.ContractDate = *contractDate
	}
	input.CampaignStartDate = parseDate(verrs, "campaign_start_date", f.CampaignStartDate)
	input.CampaignEndDate = parseDate(verrs, "campaign_end_date", f.CampaignEndDate)

	return input, verrs
}

// ParseDate parses an optional YYYY-MM-DD date; an empty value yields nil
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDate(verrs domain.ValidationErrors, field, value string) *time.Time {
	t, err := ParseDate(value)
	if err != nil {
		verrs.Add(field, "must be a date in YYYY-MM-DD format")
		return nil
	}
	return t
}

// UpdateContractInput carries the contract fields to change. Nil fields keep their stored value;
// an empty customer clears it.
type UpdateContractInput struct {
	Customer             *string          `json:"customer,omitempty" validate:"omitempty,max=200"`
	TotalCommittedAmount *decimal.Decimal `json:"total_committed_amount,omitempty"`
	CampaignStartDate    *time.Time       `json:"campaign_start_date,omitempty"`
	CampaignEndDate      *time.Time       `json:"campaign_end_date,omitempty"`
}

// Changes lists the provided fields by name
func (in UpdateContractInput) Changes() []string {
	changes := make([]string, 0, 4)
	if in.Customer != nil {
		changes = append(changes, "customer")
	}
	if in.TotalCommittedAmount != nil {
		changes = append(changes, "total_committed_amount")
	}
	if in.CampaignStartDate != nil {
		changes = append(changes, "campaign_start_date")
	}
	if in.CampaignEndDate != nil {
		changes = append(changes, "campaign_end_date")
	}
	return changes
}

// apply returns c with the provided fields replaced
func (in UpdateContractInput) apply(c schema.Contract) schema.Contract {
	if in.Customer != nil {
		customer := strings.TrimSpace(*in.Customer)
		if customer == "" {
			c.Customer = nil
		} else {
			c.Customer = &customer
		}
	}
	if in.TotalCommittedAmount != nil {
		c.TotalCommittedAmount = *in.TotalCommittedAmount
	}
	if in.CampaignStartDate != nil {
		c.CampaignStartDate = in.CampaignStartDate
	}
	if in.CampaignEndDate != nil {
		c.CampaignEndDate = in.CampaignEndDate
	}
	return c
}

// SaveDraftInput is a draft save request. Without DraftID a new draft replaces the actor's previous ones.
type SaveDraftInput struct {
	DraftID    *int64          `json:"draft_id,omitempty"`
	ContractID *int64          `json:"contract_id,omitempty"`
	FormData   json.RawMessage `json:"form_data"`
}

// DraftSaveResult is the saved draft with the field errors its form currently has
type DraftSaveResult struct {
	Draft            *schema.ContractDraft   `json:"draft"`
	Created          bool                    `json:"created"`
	ValidationErrors domain.ValidationErrors `json:"validation_errors,omitempty"`
}

// Utilization is an allocation balance with its spend ratio
type Utilization struct {
	schema.AllocationBalance
	// UtilizationPercentage is spent / allocated * 100 rounded to two places, 0 when nothing is allocated
	UtilizationPercentage decimal.Decimal `json:"utilization_percentage"`
}

// AllocationValidation compares a contract's committed total with the sum of its allocations
type AllocationValidation struct {
	ContractID           int64           `json:"contract_id"`
	TotalCommittedAmount decimal.Decimal `json:"total_committed_amount"`
	TotalAllocated       decimal.Decimal `json:"total_allocated"`
	RemainingToAllocate  decimal.Decimal `json:"remaining_to_allocate"`
	IsFullyAllocated     bool            `json:"is_fully_allocated"`
	IsOverAllocated      bool            `json:"is_over_allocated"`
}

// ChannelSummary aggregates the allocations of one channel
type ChannelSummary struct {
	Channel            domain.Channel  `json:"channel"`
	Label              string          `json:"label"`
	AllocationCount    int             `json:"allocation_count"`
	TotalAllocated     decimal.Decimal `json:"total_allocated"`
	TotalSpent         decimal.Decimal `json:"total_spent"`
	TotalRemaining     decimal.Decimal `json:"total_remaining"`
	AverageUtilization decimal.Decimal `json:"average_utilization"`
}

// ContractPage is one page of contracts with the total match count
type ContractPage struct {
	Contracts []store.ContractWithStyle `json:"contracts"`
	Total     uint64                    `json:"total"`
	Limit     int                       `json:"limit"`
	Offset    uint64                    `json:"offset"`
}

// AllocationPage is one page of allocation balances with the total match count
type AllocationPage struct {
	Allocations []schema.AllocationBalance `json:"allocations"`
	Total       uint64                     `json:"total"`
	Limit       int                        `json:"limit"`
	Offset      uint64                     `json:"offset"`
}

// AuditPage is one page of audit records with the total match count
type AuditPage struct {
	Records []audit.Record `json:"records"`
	Total   uint64         `json:"total"`
	Limit   int            `json:"limit"`
	Offset  uint64         `json:"offset"`
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return domain.DEFAULT_LIST_LIMIT
	}
	return min(limit, domain.MAX_LIST_LIMIT)
}
