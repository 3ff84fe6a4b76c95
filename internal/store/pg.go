package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/bburrets/mdf-contract-management/internal/domain"
	"github.com/bburrets/mdf-contract-management/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
	// acquireTimeout bounds the connection checkout of each top-level atomic block, 0 disables the bound
	acquireTimeout time.Duration
}

// Option configures the PostgreSQL store
type Option func(*pgStore)

// WithAcquireTimeout bounds how long an atomic block may wait for a pooled connection
func WithAcquireTimeout(timeout time.Duration) Option {
	return func(s *pgStore) {
		s.acquireTimeout = timeout
	}
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB, opts ...Option) Store {
	s := &pgStore{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero or negative):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited", the ledger always runs with a bounded pool
//   - MaxIdleConns never exceeds MaxOpenConns
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// primary returns a session pinned to the primary when a read replica is registered
func (s *pgStore) primary(ctx context.Context) *gorm.DB {
	db := s.db.WithContext(ctx)
	if hasDBResolver(s.db) {
		db = db.Clauses(dbresolver.Write)
	}
	return db
}

// StyleExists checks whether a style number is present in the styles catalog
func (s *pgStore) StyleExists(ctx context.Context, styleNumber string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Style{}).
		Where("style_number = ?", styleNumber).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check style: %w", err)
	}
	return count > 0, nil
}

// GetStyle retrieves a style by its style number
func (s *pgStore) GetStyle(ctx context.Context, styleNumber string) (*schema.Style, error) {
	var style schema.Style
	err := s.db.WithContext(ctx).Where("style_number = ?", styleNumber).First(&style).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get style: %w", err)
	}
	return &style, nil
}

// CreateContract inserts a contract row. Allocations are never inserted through the association.
func (s *pgStore) CreateContract(ctx context.Context, contract *schema.Contract) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(contract).Error; err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}
	return nil
}

// GetContractByID retrieves a contract with its allocations
func (s *pgStore) GetContractByID(ctx context.Context, id int64) (*schema.Contract, error) {
	var contract schema.Contract
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}

	allocations, err := s.getAllocationsByContractIDs(s.db.WithContext(ctx), []int64{id})
	if err != nil {
		return nil, err
	}
	contract.Allocations = allocations[id]

	return &contract, nil
}

// GetContractForUpdate retrieves a contract with its allocations and holds a row lock on the
// contract until the surrounding transaction ends
func (s *pgStore) GetContractForUpdate(ctx context.Context, id int64) (*schema.Contract, error) {
	var contract schema.Contract
	err := s.primary(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock contract: %w", err)
	}

	allocations, err := s.getAllocationsByContractIDs(s.primary(ctx), []int64{id})
	if err != nil {
		return nil, err
	}
	contract.Allocations = allocations[id]

	return &contract, nil
}

// GetContractWithStyle retrieves a contract with its allocations and style details
func (s *pgStore) GetContractWithStyle(ctx context.Context, id int64) (*ContractWithStyle, error) {
	var rows []ContractWithStyle
	err := contractsWithStyles(s.db.WithContext(ctx)).
		Where("c.id = ?", id).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	allocations, err := s.getAllocationsByContractIDs(s.db.WithContext(ctx), []int64{id})
	if err != nil {
		return nil, err
	}
	rows[0].Allocations = allocations[id]

	return &rows[0], nil
}

// UpdateContract writes the mutable columns of a contract and reloads the row
func (s *pgStore) UpdateContract(ctx context.Context, contract *schema.Contract) error {
	result := s.db.WithContext(ctx).
		Model(contract).
		Clauses(clause.Returning{Columns: []clause.Column{}}).
		Omit(clause.Associations).
		Updates(map[string]any{
			"customer":               contract.Customer,
			"total_committed_amount": contract.TotalCommittedAmount,
			"campaign_start_date":    contract.CampaignStartDate,
			"campaign_end_date":      contract.CampaignEndDate,
			"updated_at":             gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update contract: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrContractNotFound
	}
	return nil
}

// DeleteContract deletes a contract row. Owned allocations must be deleted first.
func (s *pgStore) DeleteContract(ctx context.Context, id int64) (bool, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Contract{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete contract: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func contractsWithStyles(db *gorm.DB) *gorm.DB {
	return db.Table("contracts AS c").
		Joins("LEFT JOIN styles s ON s.style_number = c.style_number")
}

func applyContractFilter(query *gorm.DB, filter ContractQueryFilter) *gorm.DB {
	if filter.CreatedBy != nil {
		query = query.Where("c.created_by = ?", *filter.CreatedBy)
	}
	if filter.Style != nil && *filter.Style != "" {
		pattern := "%" + *filter.Style + "%"
		query = query.Where("(c.style_number ILIKE ? OR s.item_desc ILIKE ?)", pattern, pattern)
	}
	if filter.Customer != nil && *filter.Customer != "" {
		query = query.Where("c.customer ILIKE ?", "%"+*filter.Customer+"%")
	}
	if filter.Season != nil {
		query = query.Where("s.season = ?", *filter.Season)
	}
	if filter.BusinessLine != nil {
		query = query.Where("s.business_line = ?", *filter.BusinessLine)
	}
	if filter.Scope != nil {
		query = query.Where("c.scope = ?", *filter.Scope)
	}
	if filter.AfterID != nil {
		query = query.Where("c.id > ?", *filter.AfterID)
	}
	return query
}

// ListContracts retrieves contracts matching the filter with the total count.
// Results are ordered newest first, or by ascending id when AfterID is set.
func (s *pgStore) ListContracts(ctx context.Context, filter ContractQueryFilter) ([]ContractWithStyle, uint64, error) {
	var total int64
	err := applyContractFilter(contractsWithStyles(s.db.WithContext(ctx)), filter).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count contracts: %w", err)
	}
	if total == 0 {
		return []ContractWithStyle{}, 0, nil
	}

	query := applyContractFilter(contractsWithStyles(s.db.WithContext(ctx)), filter).
		Select("c.*, s.item_number, s.item_desc, s.season, s.business_line")
	if filter.AfterID != nil {
		query = query.Order("c.id ASC")
	} else {
		query = query.Order("c.created_at DESC").Order("c.id DESC")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(int(filter.Offset)) //nolint:gosec,G115
	}

	var rows []ContractWithStyle
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list contracts: %w", err)
	}

	ids := make([]int64, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}
	allocations, err := s.getAllocationsByContractIDs(s.db.WithContext(ctx), ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range rows {
		rows[i].Allocations = allocations[rows[i].ID]
	}

	return rows, uint64(total), nil //nolint:gosec,G115
}

// ExportContracts retrieves one row per contract and allocation, contracts without allocations
// produce a single row with empty allocation columns
func (s *pgStore) ExportContracts(ctx context.Context, ids []int64) ([]ContractExportRow, error) {
	if len(ids) == 0 {
		return []ContractExportRow{}, nil
	}

	var rows []ContractExportRow
	err := contractsWithStyles(s.db.WithContext(ctx)).
		Select(`c.id AS contract_id, c.style_number, c.scope, c.customer, c.total_committed_amount,
			c.contract_date, c.campaign_start_date, c.campaign_end_date, c.created_by, c.created_at,
			s.item_number, s.item_desc, s.season, s.business_line,
			a.channel, a.allocated_amount`).
		Joins("LEFT JOIN allocations a ON a.contract_id = c.id").
		Where("c.id IN ?", ids).
		Order("c.id ASC").
		Order("a.channel ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to export contracts: %w", err)
	}
	return rows, nil
}

func (s *pgStore) getAllocationsByContractIDs(db *gorm.DB, contractIDs []int64) (map[int64][]schema.Allocation, error) {
	result := make(map[int64][]schema.Allocation, len(contractIDs))
	if len(contractIDs) == 0 {
		return result, nil
	}

	var allocations []schema.Allocation
	err := db.Where("contract_id IN ?", contractIDs).
		Order("contract_id ASC").
		Order("channel ASC").
		Find(&allocations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get allocations: %w", err)
	}

	for _, a := range allocations {
		result[a.ContractID] = append(result[a.ContractID], a)
	}
	return result, nil
}

// CreateAllocation inserts an allocation row. A second allocation for the same
// contract and channel fails with domain.ErrDuplicateAllocation.
func (s *pgStore) CreateAllocation(ctx context.Context, allocation *schema.Allocation) error {
	if err := s.db.WithContext(ctx).Create(allocation).Error; err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return fmt.Errorf("failed to create %s allocation for contract %d: %w",
				allocation.Channel, allocation.ContractID, domain.ErrDuplicateAllocation)
		}
		return fmt.Errorf("failed to create allocation: %w", err)
	}
	return nil
}

// GetAllocationByID retrieves an allocation
func (s *pgStore) GetAllocationByID(ctx context.Context, id int64) (*schema.Allocation, error) {
	var allocation schema.Allocation
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&allocation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get allocation: %w", err)
	}
	return &allocation, nil
}

// GetAllocationForUpdate retrieves an allocation and holds a row lock on it until the
// surrounding transaction ends
func (s *pgStore) GetAllocationForUpdate(ctx context.Context, id int64) (*schema.Allocation, error) {
	var allocation schema.Allocation
	err := s.primary(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&allocation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock allocation: %w", err)
	}
	return &allocation, nil
}

// UpdateAllocationAmount sets the allocated amount and returns the updated row
func (s *pgStore) UpdateAllocationAmount(ctx context.Context, id int64, amount decimal.Decimal) (*schema.Allocation, error) {
	allocation := schema.Allocation{ID: id}
	result := s.db.WithContext(ctx).
		Model(&allocation).
		Clauses(clause.Returning{Columns: []clause.Column{}}).
		Updates(map[string]any{
			"allocated_amount": amount,
			"updated_at":       gorm.Expr("now()"),
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update allocation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &allocation, nil
}

// DeleteAllocation deletes an allocation row
func (s *pgStore) DeleteAllocation(ctx context.Context, id int64) (bool, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Allocation{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete allocation: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// DeleteAllocationsByContractID deletes every allocation owned by a contract
func (s *pgStore) DeleteAllocationsByContractID(ctx context.Context, contractID int64) (int64, error) {
	result := s.db.WithContext(ctx).Where("contract_id = ?", contractID).Delete(&schema.Allocation{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete allocations: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// GetAllocationBalance retrieves an allocation with its spend and remaining balance
func (s *pgStore) GetAllocationBalance(ctx context.Context, id int64) (*schema.AllocationBalance, error) {
	var balance schema.AllocationBalance
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&balance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get allocation balance: %w", err)
	}
	return &balance, nil
}

func applyAllocationFilter(query *gorm.DB, filter AllocationQueryFilter) *gorm.DB {
	if filter.ContractID != nil {
		query = query.Where("contract_id = ?", *filter.ContractID)
	}
	if filter.Channel != nil {
		query = query.Where("channel = ?", *filter.Channel)
	}
	return query
}

// ListAllocationBalances retrieves allocation balances matching the filter with the total count
func (s *pgStore) ListAllocationBalances(ctx context.Context, filter AllocationQueryFilter) ([]schema.AllocationBalance, uint64, error) {
	var total int64
	err := applyAllocationFilter(s.db.WithContext(ctx).Model(&schema.AllocationBalance{}), filter).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count allocations: %w", err)
	}
	if total == 0 {
		return []schema.AllocationBalance{}, 0, nil
	}

	query := applyAllocationFilter(s.db.WithContext(ctx), filter).
		Order("created_at DESC").
		Order("id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(int(filter.Offset)) //nolint:gosec,G115
	}

	var balances []schema.AllocationBalance
	if err := query.Find(&balances).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list allocations: %w", err)
	}

	return balances, uint64(total), nil //nolint:gosec,G115
}

// GetAllocationTotals sums the allocations of a contract against its committed total
func (s *pgStore) GetAllocationTotals(ctx context.Context, contractID int64) (*AllocationTotals, error) {
	var rows []AllocationTotals
	err := s.db.WithContext(ctx).
		Table("contracts AS c").
		Select("c.id AS contract_id, c.total_committed_amount, COALESCE(SUM(a.allocated_amount), 0) AS total_allocated").
		Joins("LEFT JOIN allocations a ON a.contract_id = c.id").
		Where("c.id = ?", contractID).
		Group("c.id, c.total_committed_amount").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum allocations: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// CreateAuditEntry appends an entry to the audit log
func (s *pgStore) CreateAuditEntry(ctx context.Context, entry *schema.AuditEntry) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}
	return nil
}

func applyAuditFilter(query *gorm.DB, filter AuditQueryFilter) *gorm.DB {
	if filter.ContractID != nil {
		query = query.Where("contract_id = ?", *filter.ContractID)
	}
	if filter.ActorID != nil {
		query = query.Where("actor_id = ?", *filter.ActorID)
	}
	if filter.ActionType != nil {
		query = query.Where("action_type = ?", *filter.ActionType)
	}
	return query
}

// GetAuditEntries retrieves audit entries matching the filter, newest first, with the total count
func (s *pgStore) GetAuditEntries(ctx context.Context, filter AuditQueryFilter) ([]schema.AuditEntry, uint64, error) {
	var total int64
	err := applyAuditFilter(s.db.WithContext(ctx).Model(&schema.AuditEntry{}), filter).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}
	if total == 0 {
		return []schema.AuditEntry{}, 0, nil
	}

	query := applyAuditFilter(s.db.WithContext(ctx), filter).
		Order(`"timestamp" DESC`).
		Order("id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(int(filter.Offset)) //nolint:gosec,G115
	}

	var entries []schema.AuditEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get audit entries: %w", err)
	}

	return entries, uint64(total), nil //nolint:gosec,G115
}

// CreateDraft inserts a contract draft
func (s *pgStore) CreateDraft(ctx context.Context, draft *schema.ContractDraft) error {
	if err := s.db.WithContext(ctx).Create(draft).Error; err != nil {
		return fmt.Errorf("failed to create draft: %w", err)
	}
	return nil
}

// GetDraftByID retrieves a draft
func (s *pgStore) GetDraftByID(ctx context.Context, id int64) (*schema.ContractDraft, error) {
	var draft schema.ContractDraft
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&draft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	return &draft, nil
}

// UpdateDraft writes the form data and validation errors of a draft and refreshes last_saved
func (s *pgStore) UpdateDraft(ctx context.Context, draft *schema.ContractDraft) error {
	result := s.db.WithContext(ctx).
		Model(draft).
		Clauses(clause.Returning{Columns: []clause.Column{}}).
		Updates(map[string]any{
			"form_data":         draft.FormData,
			"validation_errors": draft.ValidationErrors,
			"last_saved":        gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update draft: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDraftNotFound
	}
	return nil
}

// GetLatestDraftByActor retrieves the most recently saved draft of an actor
func (s *pgStore) GetLatestDraftByActor(ctx context.Context, actorID string) (*schema.ContractDraft, error) {
	var draft schema.ContractDraft
	err := s.db.WithContext(ctx).
		Where("actor_id = ?", actorID).
		Order("last_saved DESC").
		Order("id DESC").
		First(&draft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest draft: %w", err)
	}
	return &draft, nil
}

// DeleteDraft deletes a draft
func (s *pgStore) DeleteDraft(ctx context.Context, id int64) (bool, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.ContractDraft{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete draft: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// DeleteDraftsByActor deletes an actor's drafts except keepID when given
func (s *pgStore) DeleteDraftsByActor(ctx context.Context, actorID string, keepID *int64) (int64, error) {
	query := s.db.WithContext(ctx).Where("actor_id = ?", actorID)
	if keepID != nil {
		query = query.Where("id <> ?", *keepID)
	}
	result := query.Delete(&schema.ContractDraft{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete drafts: %w", result.Error)
	}
	return result.RowsAffected, nil
}

const createMigrationsTableSQL = `CREATE TABLE IF NOT EXISTS schema_migrations (
    id           BIGSERIAL PRIMARY KEY,
    filename     TEXT NOT NULL UNIQUE,
    version      INTEGER NOT NULL,
    executed_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// EnsureMigrationsTable creates the schema_migrations table when missing
func (s *pgStore) EnsureMigrationsTable(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec(createMigrationsTableSQL).Error; err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}
	return nil
}

// GetExecutedMigrations retrieves executed migrations ordered by version and filename
func (s *pgStore) GetExecutedMigrations(ctx context.Context) ([]schema.SchemaMigration, error) {
	var migrations []schema.SchemaMigration
	err := s.primary(ctx).
		Order("version ASC").
		Order("filename ASC").
		Find(&migrations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get executed migrations: %w", err)
	}
	return migrations, nil
}

// ExecMigration executes the SQL content of a migration file.
// The content is sent without bind arguments so files may hold several statements.
func (s *pgStore) ExecMigration(ctx context.Context, content string) error {
	if err := s.db.WithContext(ctx).Exec(content).Error; err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}
	return nil
}

// RecordMigration inserts the version row of an executed migration
func (s *pgStore) RecordMigration(ctx context.Context, filename string, version int) error {
	err := s.db.WithContext(ctx).
		Exec("INSERT INTO schema_migrations (filename, version) VALUES (?, ?)", filename, version).Error
	if err != nil {
		return fmt.Errorf("failed to record migration %s: %w", filename, err)
	}
	return nil
}
