package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bburrets/mdf-contract-management/internal/domain"
	"github.com/bburrets/mdf-contract-management/internal/store/schema"
)

// ContractQueryFilter represents filters for listing contracts
type ContractQueryFilter struct {
	// CreatedBy matches the creating actor exactly
	CreatedBy *string
	// Style matches style number or item description as a case-insensitive substring
	Style *string
	// Customer matches the customer label as a case-insensitive substring
	Customer *string
	// Season matches the style's season exactly
	Season *string
	// BusinessLine matches the style's business line exactly
	BusinessLine *string
	// Scope matches the contract scope exactly
	Scope *domain.Scope
	// AfterID restricts the result to contracts with a larger id (keyset paging)
	AfterID *int64

	Limit  int
	Offset uint64
}

// ContractWithStyle is a contract joined with its allocations and style catalog details
type ContractWithStyle struct {
	schema.Contract
	ItemNumber      *string `gorm:"column:item_number;->" json:"item_number,omitempty"`
	ItemDescription *string `gorm:"column:item_desc;->" json:"item_desc,omitempty"`
	Season          *string `gorm:"column:season;->" json:"season,omitempty"`
	BusinessLine    *string `gorm:"column:business_line;->" json:"business_line,omitempty"`
}

// ContractExportRow is one flattened contract x allocation row
type ContractExportRow struct {
	ContractID           int64            `gorm:"column:contract_id" json:"contract_id"`
	StyleNumber          string           `gorm:"column:style_number" json:"style_number"`
	Scope                domain.Scope     `gorm:"column:scope" json:"scope"`
	Customer             *string          `gorm:"column:customer" json:"customer,omitempty"`
	TotalCommittedAmount decimal.Decimal  `gorm:"column:total_committed_amount" json:"total_committed_amount"`
	ContractDate         time.Time        `gorm:"column:contract_date" json:"contract_date"`
	CampaignStartDate    *time.Time       `gorm:"column:campaign_start_date" json:"campaign_start_date,omitempty"`
	CampaignEndDate      *time.Time       `gorm:"column:campaign_end_date" json:"campaign_end_date,omitempty"`
	CreatedBy            string           `gorm:"column:created_by" json:"created_by"`
	CreatedAt            time.Time        `gorm:"column:created_at" json:"created_at"`
	ItemNumber           *string          `gorm:"column:item_number" json:"item_number,omitempty"`
	ItemDescription      *string          `gorm:"column:item_desc" json:"item_desc,omitempty"`
	Season               *string          `gorm:"column:season" json:"season,omitempty"`
	BusinessLine         *string          `gorm:"column:business_line" json:"business_line,omitempty"`
	Channel              *domain.Channel  `gorm:"column:channel" json:"channel,omitempty"`
	AllocatedAmount      *decimal.Decimal `gorm:"column:allocated_amount" json:"allocated_amount,omitempty"`
}

// AllocationQueryFilter represents filters for listing allocation balances
type AllocationQueryFilter struct {
	ContractID *int64
	Channel    *domain.Channel

	// Limit of 0 returns every matching row
	Limit  int
	Offset uint64
}

// AllocationTotals is the committed total of a contract against the sum of its allocations
type AllocationTotals struct {
	ContractID           int64           `gorm:"column:contract_id"`
	TotalCommittedAmount decimal.Decimal `gorm:"column:total_committed_amount"`
	TotalAllocated       decimal.Decimal `gorm:"column:total_allocated"`
}

// AuditQueryFilter represents filters for reading the audit log
type AuditQueryFilter struct {
	ContractID *int64
	ActorID    *string
	ActionType *domain.ActionType

	Limit  int
	Offset uint64
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// RunAtomic executes fn inside a transaction. The transaction commits when fn returns nil
	// and rolls back otherwise. Calling RunAtomic on the transactional store passed to fn
	// opens a savepoint instead of a new transaction.
	RunAtomic(ctx context.Context, fn func(tx Store) error) error

	// StyleExists checks whether a style number is present in the styles catalog
	StyleExists(ctx context.Context, styleNumber string) (bool, error)
	// GetStyle retrieves a style by its style number
	GetStyle(ctx context.Context, styleNumber string) (*schema.Style, error)

	// CreateContract inserts a contract row and fills its ID and timestamps
	CreateContract(ctx context.Context, contract *schema.Contract) error
	// GetContractByID retrieves a contract with its allocations
	GetContractByID(ctx context.Context, id int64) (*schema.Contract, error)
	// GetContractForUpdate retrieves a contract with its allocations and locks the contract row
	GetContractForUpdate(ctx context.Context, id int64) (*schema.Contract, error)
	// GetContractWithStyle retrieves a contract with its allocations and style details
	GetContractWithStyle(ctx context.Context, id int64) (*ContractWithStyle, error)
	// UpdateContract writes the mutable columns of a contract and refreshes updated_at
	UpdateContract(ctx context.Context, contract *schema.Contract) error
	// DeleteContract deletes a contract row; it reports whether a row was deleted
	DeleteContract(ctx context.Context, id int64) (bool, error)
	// ListContracts retrieves contracts matching the filter, newest first, with the total count
	ListContracts(ctx context.Context, filter ContractQueryFilter) ([]ContractWithStyle, uint64, error)
	// ExportContracts retrieves flattened contract x allocation rows for the given ids
	ExportContracts(ctx context.Context, ids []int64) ([]ContractExportRow, error)

	// CreateAllocation inserts an allocation row
	CreateAllocation(ctx context.Context, allocation *schema.Allocation) error
	// GetAllocationByID retrieves an allocation
	GetAllocationByID(ctx context.Context, id int64) (*schema.Allocation, error)
	// GetAllocationForUpdate retrieves an allocation and locks its row
	GetAllocationForUpdate(ctx context.Context, id int64) (*schema.Allocation, error)
	// UpdateAllocationAmount sets the allocated amount and returns the updated row
	UpdateAllocationAmount(ctx context.Context, id int64, amount decimal.Decimal) (*schema.Allocation, error)
	// DeleteAllocation deletes an allocation row; it reports whether a row was deleted
	DeleteAllocation(ctx context.Context, id int64) (bool, error)
	// DeleteAllocationsByContractID deletes every allocation owned by a contract
	DeleteAllocationsByContractID(ctx context.Context, contractID int64) (int64, error)
	// GetAllocationBalance retrieves an allocation with its spend and remaining balance
	GetAllocationBalance(ctx context.Context, id int64) (*schema.AllocationBalance, error)
	// ListAllocationBalances retrieves allocation balances matching the filter, newest first, with the total count
	ListAllocationBalances(ctx context.Context, filter AllocationQueryFilter) ([]schema.AllocationBalance, uint64, error)
	// GetAllocationTotals sums the allocations of a contract against its committed total
	GetAllocationTotals(ctx context.Context, contractID int64) (*AllocationTotals, error)

	// CreateAuditEntry appends an entry to the audit log
	CreateAuditEntry(ctx context.Context, entry *schema.AuditEntry) error
	// GetAuditEntries retrieves audit entries matching the filter, newest first, with the total count
	GetAuditEntries(ctx context.Context, filter AuditQueryFilter) ([]schema.AuditEntry, uint64, error)

	// CreateDraft inserts a contract draft
	CreateDraft(ctx context.Context, draft *schema.ContractDraft) error
	// GetDraftByID retrieves a draft
	GetDraftByID(ctx context.Context, id int64) (*schema.ContractDraft, error)
	// UpdateDraft writes the form data and validation errors of a draft and refreshes last_saved
	UpdateDraft(ctx context.Context, draft *schema.ContractDraft) error
	// GetLatestDraftByActor retrieves the most recently saved draft of an actor
	GetLatestDraftByActor(ctx context.Context, actorID string) (*schema.ContractDraft, error)
	// DeleteDraft deletes a draft; it reports whether a row was deleted
	DeleteDraft(ctx context.Context, id int64) (bool, error)
	// DeleteDraftsByActor deletes an actor's drafts except keepID when given
	DeleteDraftsByActor(ctx context.Context, actorID string, keepID *int64) (int64, error)

	// EnsureMigrationsTable creates the schema_migrations table when missing
	EnsureMigrationsTable(ctx context.Context) error
	// GetExecutedMigrations retrieves executed migrations ordered by version and filename
	GetExecutedMigrations(ctx context.Context) ([]schema.SchemaMigration, error)
	// ExecMigration executes the SQL content of a migration file
	ExecMigration(ctx context.Context, content string) error
	// RecordMigration inserts the version row of an executed migration
	RecordMigration(ctx context.Context, filename string, version int) error
}
