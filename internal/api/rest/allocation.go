package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bburrets/mdf-contract-management/internal/allocation"
	"github.com/bburrets/mdf-contract-management/internal/api/middleware"
	"github.com/bburrets/mdf-contract-management/internal/api/rest/dto"
	"github.com/bburrets/mdf-contract-management/internal/domain"
)

// CreateAllocation adds a channel allocation to a contract
func (h *handler) CreateAllocation(c *gin.Context) {
	var req dto.CreateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	created, err := h.ledger.CreateAllocation(c.Request.Context(), req.ContractID, domain.Channel(req.Channel), req.AllocatedAmount, middleware.Actor(c))
	if err != nil {
		respondError(c, err, "Failed to create allocation", zap.Int64("contract_id", req.ContractID))
		return
	}

	c.JSON(http.StatusCreated, dto.NewAllocationResponse(*created))
}

// ListAllocations lists allocation balances with filters and pagination
func (h *handler) ListAllocations(c *gin.Context) {
	filter, err := ParseListAllocationsQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	page, err := h.ledger.ListAllocations(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list allocations")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetAllocation retrieves an allocation balance
func (h *handler) GetAllocation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid allocation id", err.Error())
		return
	}

	balance, err := h.ledger.GetAllocation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get allocation", zap.Int64("allocation_id", id))
		return
	}

	c.JSON(http.StatusOK, balance)
}

// UpdateAllocation changes the allocated amount of an allocation
func (h *handler) UpdateAllocation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid allocation id", err.Error())
		return
	}

	var req dto.UpdateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	updated, err := h.ledger.UpdateAllocation(c.Request.Context(), id, *req.AllocatedAmount, middleware.Actor(c))
	if err != nil {
		respondError(c, err, "Failed to update allocation", zap.Int64("allocation_id", id))
		return
	}

	c.JSON(http.StatusOK, dto.NewAllocationResponse(*updated))
}

// DeleteAllocation deletes an allocation
func (h *handler) DeleteAllocation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid allocation id", err.Error())
		return
	}

	if err := h.ledger.DeleteAllocation(c.Request.Context(), id, middleware.Actor(c)); err != nil {
		respondError(c, err, "Failed to delete allocation", zap.Int64("allocation_id", id))
		return
	}

	c.Status(http.StatusNoContent)
}

// GetUtilization lists utilization, optionally for one contract
func (h *handler) GetUtilization(c *gin.Context) {
	var params struct {
		ContractID *int64 `form:"contract_id"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	utilization, err := h.ledger.GetUtilization(c.Request.Context(), params.ContractID)
	if err != nil {
		respondError(c, err, "Failed to get utilization")
		return
	}

	c.JSON(http.StatusOK, gin.H{"allocations": utilization})
}

// GetNearingLimit lists allocations whose utilization reached the threshold
func (h *handler) GetNearingLimit(c *gin.Context) {
	threshold, err := ParseThreshold(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	nearing, err := h.ledger.GetNearingLimit(c.Request.Context(), threshold)
	if err != nil {
		respondError(c, err, "Failed to get allocations nearing limit")
		return
	}

	c.JSON(http.StatusOK, gin.H{"threshold": threshold, "allocations": nearing})
}

// GetChannelSummary aggregates allocations per channel
func (h *handler) GetChannelSummary(c *gin.Context) {
	summary, err := h.ledger.GetChannelSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get channel summary")
		return
	}

	c.JSON(http.StatusOK, gin.H{"channels": summary})
}

// ReconcileSplit derives a split the way the entry form does while the user types
func (h *handler) ReconcileSplit(c *gin.Context) {
	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	var split allocation.Split
	switch req.Mode {
	case dto.RECONCILE_PERCENTAGE:
		if req.InlinePercentage == nil {
			respondValidationError(c, domain.ValidationErrors{"inline_percentage": "is required"})
			return
		}
		split = allocation.FromPercentage(req.TotalCommittedAmount, *req.InlinePercentage)
	case dto.RECONCILE_AMOUNT:
		if req.InlineAmount == nil {
			respondValidationError(c, domain.ValidationErrors{"inline_amount": "is required"})
			return
		}
		split = allocation.FromAmount(req.TotalCommittedAmount, *req.InlineAmount)
	case dto.RECONCILE_PRESET:
		preset, err := allocation.ParsePreset(req.Preset)
		if err != nil {
			respondValidationError(c, domain.ValidationErrors{"preset": err.Error()})
			return
		}
		split = preset.Apply(req.TotalCommittedAmount)
	default:
		split = allocation.Reset(req.TotalCommittedAmount)
	}

	c.JSON(http.StatusOK, dto.ReconcileResponse{
		Split:      split,
		Reconciles: split.Reconciles(req.TotalCommittedAmount),
	})
}

// ListPresets lists the split presets
func (h *handler) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PresetsResponse{Presets: allocation.Presets()})
}
