package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bburrets/mdf-contract-management/internal/domain"
)

// Contract represents the contracts table - one MDF funding commitment against a style
type Contract struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// StyleNumber references the funded style in the styles catalog
	StyleNumber string `gorm:"column:style_number;not null;type:varchar(50);index" json:"style_number"`
	// Scope tells whether the commitment is split across channels or covers the whole style
	Scope domain.Scope `gorm:"column:scope;not null;type:text" json:"scope"`
	// Customer is an optional customer label
	Customer *string `gorm:"column:customer;type:varchar(200)" json:"customer,omitempty"`
	// TotalCommittedAmount is the total funding committed by the contract
	TotalCommittedAmount decimal.Decimal `gorm:"column:total_committed_amount;not null;type:numeric(14,2)" json:"total_committed_amount"`
	// ContractDate is the date the contract was signed
	ContractDate time.Time `gorm:"column:contract_date;not null;type:date" json:"contract_date"`
	// CampaignStartDate is the optional first day of the funded campaign
	CampaignStartDate *time.Time `gorm:"column:campaign_start_date;type:date" json:"campaign_start_date,omitempty"`
	// CampaignEndDate is the optional last day of the funded campaign
	CampaignEndDate *time.Time `gorm:"column:campaign_end_date;type:date" json:"campaign_end_date,omitempty"`
	// CreatedBy is the actor that created the contract
	CreatedBy string `gorm:"column:created_by;not null;type:text;index" json:"created_by"`
	// CreatedAt is the timestamp when the contract was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
	// UpdatedAt is the timestamp when the contract was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"updated_at"`

	// Associations
	Allocations []Allocation `gorm:"foreignKey:ContractID" json:"allocations,omitempty"`
}

// TableName specifies the table name for the Contract model
func (Contract) TableName() string {
	return "contracts"
}
