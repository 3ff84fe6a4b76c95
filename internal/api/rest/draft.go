package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bburrets/mdf-contract-management/internal/api/middleware"
	"github.com/bburrets/mdf-contract-management/internal/api/rest/dto"
	"github.com/bburrets/mdf-contract-management/internal/audit"
	"github.com/bburrets/mdf-contract-management/internal/ledger"
)

// SaveDraft saves the caller's contract form as a draft
func (h *handler) SaveDraft(c *gin.Context) {
	var req ledger.SaveDraftInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	result, err := h.ledger.SaveDraft(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		respondError(c, err, "Failed to save draft")
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

// ResumeDraft returns the caller's latest draft
func (h *handler) ResumeDraft(c *gin.Context) {
	draft, err := h.ledger.ResumeDraft(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		respondError(c, err, "Failed to resume draft")
		return
	}

	c.JSON(http.StatusOK, draft)
}

// DeleteDraft deletes one of the caller's drafts
func (h *handler) DeleteDraft(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid draft id", err.Error())
		return
	}

	if err := h.ledger.DeleteDraft(c.Request.Context(), id, middleware.Actor(c)); err != nil {
		respondError(c, err, "Failed to delete draft", zap.Int64("draft_id", id))
		return
	}

	c.Status(http.StatusNoContent)
}

// CleanupDrafts keeps only the caller's latest draft
func (h *handler) CleanupDrafts(c *gin.Context) {
	removed, err := h.ledger.CleanupDrafts(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		respondError(c, err, "Failed to clean up drafts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// QueryAudit lists audit records, newest first
func (h *handler) QueryAudit(c *gin.Context) {
	filter, page, err := ParseAuditQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	h.respondAudit(c, filter, page)
}

// GetContractAudit lists the audit trail of one contract, including after it was deleted
func (h *handler) GetContractAudit(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid contract id", err.Error())
		return
	}

	var page PageParams
	if err := c.ShouldBindQuery(&page); err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	h.respondAudit(c, audit.Filter{ContractID: &id}, page)
}

func (h *handler) respondAudit(c *gin.Context, filter audit.Filter, page PageParams) {
	result, err := h.ledger.QueryAudit(c.Request.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		respondError(c, err, "Failed to query audit log")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMigrationStatus lists executed and pending migrations
func (h *handler) GetMigrationStatus(c *gin.Context) {
	status, err := h.migrations.Status(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to read migration status")
		return
	}

	c.JSON(http.StatusOK, status)
}

// RunMigrations applies pending migrations in version order
func (h *handler) RunMigrations(c *gin.Context) {
	applied, err := h.migrations.Run(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to run migrations", zap.Int("applied", applied))
		return
	}

	c.JSON(http.StatusOK, dto.MigrationRunResponse{Applied: applied})
}
