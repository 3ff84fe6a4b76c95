package rest

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bburrets/mdf-contract-management/internal/api/middleware"
	"github.com/bburrets/mdf-contract-management/internal/api/rest/dto"
	"github.com/bburrets/mdf-contract-management/internal/ledger"
	"github.com/bburrets/mdf-contract-management/internal/migration"
	"github.com/bburrets/mdf-contract-management/internal/store"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// CreateContract creates a contract with its channel allocations
	// POST /api/v1/contracts
	CreateContract(c *gin.Context)

	// ListContracts lists contracts, newest first
	// GET /api/v1/contracts?created_by=&style=&customer=&season=&business_line=&scope=&limit=&offset=
	ListContracts(c *gin.Context)

	// GetContract retrieves a contract with its allocations and style details
	// GET /api/v1/contracts/:id
	GetContract(c *gin.Context)

	// UpdateContract changes customer, committed total or campaign dates
	// PATCH /api/v1/contracts/:id
	UpdateContract(c *gin.Context)

	// DeleteContract deletes a contract and its allocations
	// DELETE /api/v1/contracts/:id
	DeleteContract(c *gin.Context)

	// ValidateContract reports the field errors of a contract form without saving it
	// POST /api/v1/contracts/validate
	ValidateContract(c *gin.Context)

	// ExportContracts returns one row per contract and allocation, as CSV unless format=json
	// GET /api/v1/contracts/export?ids=1,2,3&format=csv
	ExportContracts(c *gin.Context)

	// GetContractValidation compares the committed total with the allocations
	// GET /api/v1/contracts/:id/validation
	GetContractValidation(c *gin.Context)

	// GetContractAudit lists the audit trail of a contract
	// GET /api/v1/contracts/:id/audit?limit=&offset=
	GetContractAudit(c *gin.Context)

	// CreateAllocation adds a channel allocation to a contract
	// POST /api/v1/allocations
	CreateAllocation(c *gin.Context)

	// ListAllocations lists allocation balances
	// GET /api/v1/allocations?contract_id=&channel=&limit=&offset=
	ListAllocations(c *gin.Context)

	// GetAllocation retrieves an allocation balance
	// GET /api/v1/allocations/:id
	GetAllocation(c *gin.Context)

	// UpdateAllocation changes the allocated amount
	// PATCH /api/v1/allocations/:id
	UpdateAllocation(c *gin.Context)

	// DeleteAllocation deletes an allocation
	// DELETE /api/v1/allocations/:id
	DeleteAllocation(c *gin.Context)

	// GetUtilization lists allocation utilization, highest first
	// GET /api/v1/allocations/utilization?contract_id=
	GetUtilization(c *gin.Context)

	// GetNearingLimit lists allocations at or above the utilization threshold
	// GET /api/v1/allocations/nearing-limit?threshold=90
	GetNearingLimit(c *gin.Context)

	// GetChannelSummary aggregates allocations per channel
	// GET /api/v1/allocations/summary
	GetChannelSummary(c *gin.Context)

	// ReconcileSplit derives a channel split from a percentage, an amount or a preset
	// POST /api/v1/allocations/reconcile
	ReconcileSplit(c *gin.Context)

	// ListPresets lists the split presets
	// GET /api/v1/allocations/presets
	ListPresets(c *gin.Context)

	// QueryAudit lists audit records
	// GET /api/v1/audit?contract_id=&actor_id=&action_type=&limit=&offset=
	QueryAudit(c *gin.Context)

	// SaveDraft saves the caller's contract form
	// POST /api/v1/drafts
	SaveDraft(c *gin.Context)

	// ResumeDraft returns the caller's latest draft
	// GET /api/v1/drafts/latest
	ResumeDraft(c *gin.Context)

	// DeleteDraft deletes one of the caller's drafts
	// DELETE /api/v1/drafts/:id
	DeleteDraft(c *gin.Context)

	// CleanupDrafts deletes all but the caller's latest draft
	// POST /api/v1/drafts/cleanup
	CleanupDrafts(c *gin.Context)

	// GetMigrationStatus lists executed and pending migrations
	// GET /api/v1/admin/migrations
	GetMigrationStatus(c *gin.Context)

	// RunMigrations applies pending migrations
	// POST /api/v1/admin/migrations/run
	RunMigrations(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	ledger     ledger.Service
	migrations migration.Runner
}

// NewHandler creates a new REST API handler
func NewHandler(svc ledger.Service, migrations migration.Runner) Handler {
	return &handler{
		ledger:     svc,
		migrations: migrations,
	}
}

// CreateContract creates a contract from a contract form
func (h *handler) CreateContract(c *gin.Context) {
	var form ledger.ContractForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	input, verrs := form.Input()
	if verrs.HasErrors() {
		// report the remaining fields too
		more, err := h.ledger.ValidateContractInput(c.Request.Context(), input)
		if err != nil {
			respondError(c, err, "Failed to validate contract")
			return
		}
		verrs.Merge(more)
		respondValidationError(c, verrs)
		return
	}

	id, err := h.ledger.CreateContract(c.Request.Context(), input, middleware.Actor(c))
	if err != nil {
		respondError(c, err, "Failed to create contract", zap.String("style_number", input.StyleNumber))
		return
	}

	c.JSON(http.StatusCreated, dto.CreateContractResponse{ContractID: id})
}

// ValidateContract reports every field error of a contract form
func (h *handler) ValidateContract(c *gin.Context) {
	var form ledger.ContractForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	input, verrs := form.Input()
	more, err := h.ledger.ValidateContractInput(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Failed to validate contract")
		return
	}
	verrs.Merge(more)

	c.JSON(http.StatusOK, dto.ValidateContractResponse{
		Valid:  !verrs.HasErrors(),
		Errors: verrs,
	})
}

// ListContracts lists contracts with filters and pagination
func (h *handler) ListContracts(c *gin.Context) {
	filter, err := ParseListContractsQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	page, err := h.ledger.ListContracts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list contracts")
		return
	}

	c.JSON(http.StatusOK, dto.NewContractListResponse(page))
}

// GetContract retrieves a contract; the read is audited for the caller
func (h *handler) GetContract(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid contract id", err.Error())
		return
	}

	contract, err := h.ledger.GetContract(c.Request.Context(), id, middleware.Actor(c))
	if err != nil {
		respondError(c, err, "Failed to get contract", zap.Int64("contract_id", id))
		return
	}

	c.JSON(http.StatusOK, dto.NewContractWithStyleResponse(*contract))
}

// UpdateContract applies a partial contract update
func (h *handler) UpdateContract(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid contract id", err.Error())
		return
	}

	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	input, verrs := req.Input()
	if verrs.HasErrors() {
		respondValidationError(c, verrs)
		return
	}

	contract, err := h.ledger.UpdateContract(c.Request.Context(), id, input, middleware.Actor(c))
	if err != nil {
		respondError(c, err, "Failed to update contract", zap.Int64("contract_id", id))
		return
	}

	c.JSON(http.StatusOK, dto.NewContractResponse(*contract))
}

// DeleteContract deletes a contract
func (h *handler) DeleteContract(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid contract id", err.Error())
		return
	}

	if err := h.ledger.DeleteContract(c.Request.Context(), id, middleware.Actor(c)); err != nil {
		respondError(c, err, "Failed to delete contract", zap.Int64("contract_id", id))
		return
	}

	c.Status(http.StatusNoContent)
}

var exportHeader = []string{
	"contract_id", "style_number", "item_number", "item_desc", "season", "business_line",
	"scope", "customer", "total_committed_amount", "contract_date", "campaign_start_date",
	"campaign_end_date", "channel", "allocated_amount", "created_by", "created_at",
}

// ExportContracts streams the flattened rows of the requested contracts
func (h *handler) ExportContracts(c *gin.Context) {
	ids, err := ParseIDs(c, "ids")
	if err != nil {
		respondBadRequest(c, "Invalid ids", err.Error())
		return
	}

	rows, err := h.ledger.ExportContracts(c.Request.Context(), ids)
	if err != nil {
		respondError(c, err, "Failed to export contracts")
		return
	}

	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, gin.H{"rows": rows})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="contracts.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(exportHeader)
	for _, row := range rows {
		_ = w.Write(exportRecord(row))
	}
	w.Flush()
}

func exportRecord(row store.ContractExportRow) []string {
	optional := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	record := []string{
		strconv.FormatInt(row.ContractID, 10),
		row.StyleNumber,
		optional(row.ItemNumber),
		optional(row.ItemDescription),
		optional(row.Season),
		optional(row.BusinessLine),
		string(row.Scope),
		optional(row.Customer),
		row.TotalCommittedAmount.StringFixed(2),
		dto.FormatDate(row.ContractDate),
		"",
		"",
		"",
		"",
		row.CreatedBy,
		row.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if row.CampaignStartDate != nil {
		record[10] = dto.FormatDate(*row.CampaignStartDate)
	}
	if row.CampaignEndDate != nil {
		record[11] = dto.FormatDate(*row.CampaignEndDate)
	}
	if row.Channel != nil {
		record[12] = string(*row.Channel)
	}
	if row.AllocatedAmount != nil {
		record[13] = row.AllocatedAmount.StringFixed(2)
	}
	return record
}

// GetContractValidation reports whether a contract is fully allocated
func (h *handler) GetContractValidation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid contract id", err.Error())
		return
	}

	validation, err := h.ledger.ValidateAllocationAmounts(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to validate allocations", zap.Int64("contract_id", id))
		return
	}

	c.JSON(http.StatusOK, validation)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "mdf-ledger-api",
	})
}
