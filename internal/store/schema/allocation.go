package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bburrets/mdf-contract-management/internal/domain"
)

// Allocation represents the allocations table - the share of a contract's funding assigned to one channel.
// A contract has at most one allocation per channel.
type Allocation struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// ContractID references the owning contract. The foreign key carries no referential action;
	// owned allocations are deleted explicitly together with their contract.
	ContractID int64 `gorm:"column:contract_id;not null;uniqueIndex:idx_allocations_contract_channel" json:"contract_id"`
	// Channel is the sales channel being funded
	Channel domain.Channel `gorm:"column:channel;not null;type:text;uniqueIndex:idx_allocations_contract_channel" json:"channel"`
	// AllocatedAmount is the amount assigned to the channel
	AllocatedAmount decimal.Decimal `gorm:"column:allocated_amount;not null;type:numeric(14,2)" json:"allocated_amount"`
	// CreatedAt is the timestamp when the allocation was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
	// UpdatedAt is the timestamp when the allocation was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"updated_at"`
}

// TableName specifies the table name for the Allocation model
func (Allocation) TableName() string {
	return "allocations"
}

// AllocationSpend represents the allocation_spend table.
// It is maintained by the external spend tracking process and only read by the ledger.
type AllocationSpend struct {
	// AllocationID references the allocation the spend is booked against
	AllocationID int64 `gorm:"column:allocation_id;primaryKey"`
	// SpentAmount is the amount spent so far
	SpentAmount decimal.Decimal `gorm:"column:spent_amount;not null;type:numeric(14,2)"`
	// UpdatedAt is the timestamp of the last spend feed update
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AllocationSpend model
func (AllocationSpend) TableName() string {
	return "allocation_spend"
}

// AllocationBalance represents the allocation_balances view - an allocation joined with its
// externally maintained spend and the owning contract's style
type AllocationBalance struct {
	Allocation
	// SpentAmount is the amount spent against the allocation (0 when no spend has been recorded)
	SpentAmount decimal.Decimal `gorm:"column:spent_amount;->" json:"spent_amount"`
	// RemainingBalance is allocated_amount - spent_amount
	RemainingBalance decimal.Decimal `gorm:"column:remaining_balance;->" json:"remaining_balance"`
	// StyleNumber is the style of the owning contract
	StyleNumber string `gorm:"column:style_number;->" json:"style_number"`
	// Scope is the scope of the owning contract
	Scope domain.Scope `gorm:"column:scope;->" json:"scope"`
}

// TableName specifies the view name for the AllocationBalance model
func (AllocationBalance) TableName() string {
	return "allocation_balances"
}
