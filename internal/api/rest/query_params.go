package rest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bburrets/mdf-contract-management/internal/audit"
	"github.com/bburrets/mdf-contract-management/internal/domain"
	"github.com/bburrets/mdf-contract-management/internal/store"
)

// DEFAULT_NEARING_LIMIT_THRESHOLD is the utilization percentage GET /allocations/nearing-limit uses by default
const DEFAULT_NEARING_LIMIT_THRESHOLD = "90"

// PageParams holds limit/offset pagination. The ledger applies the default and cap.
type PageParams struct {
	Limit  int    `form:"limit,default=0"`
	Offset uint64 `form:"offset,default=0"`
}

// ListContractsQueryParams holds query parameters for GET /contracts
type ListContractsQueryParams struct {
	PageParams
	CreatedBy    *string `form:"created_by"`
	Style        *string `form:"style"`
	Customer     *string `form:"customer"`
	Season       *string `form:"season"`
	BusinessLine *string `form:"business_line"`
	Scope        *string `form:"scope"`
}

// ParseListContractsQuery parses query parameters for GET /contracts
func ParseListContractsQuery(c *gin.Context) (store.ContractQueryFilter, error) {
	var params ListContractsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return store.ContractQueryFilter{}, err
	}

	filter := store.ContractQueryFilter{
		CreatedBy:    nonEmpty(params.CreatedBy),
		Style:        nonEmpty(params.Style),
		Customer:     nonEmpty(params.Customer),
		Season:       nonEmpty(params.Season),
		BusinessLine: nonEmpty(params.BusinessLine),
		Limit:        params.Limit,
		Offset:       params.Offset,
	}
	if scope := nonEmpty(params.Scope); scope != nil {
		s := domain.Scope(*scope)
		filter.Scope = &s
	}
	return filter, nil
}

// ListAllocationsQueryParams holds query parameters for GET /allocations
type ListAllocationsQueryParams struct {
	PageParams
	ContractID *int64  `form:"contract_id"`
	Channel    *string `form:"channel"`
}

// ParseListAllocationsQuery parses query parameters for GET /allocations
func ParseListAllocationsQuery(c *gin.Context) (store.AllocationQueryFilter, error) {
	var params ListAllocationsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return store.AllocationQueryFilter{}, err
	}

	filter := store.AllocationQueryFilter{
		ContractID: params.ContractID,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	if channel := nonEmpty(params.Channel); channel != nil {
		ch := domain.Channel(*channel)
		filter.Channel = &ch
	}
	return filter, nil
}

// AuditQueryParams holds query parameters for GET /audit
type AuditQueryParams struct {
	PageParams
	ContractID *int64  `form:"contract_id"`
	ActorID    *string `form:"actor_id"`
	ActionType *string `form:"action_type"`
}

// ParseAuditQuery parses query parameters for GET /audit
func ParseAuditQuery(c *gin.Context) (audit.Filter, PageParams, error) {
	var params AuditQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return audit.Filter{}, PageParams{}, err
	}

	filter := audit.Filter{
		ContractID: params.ContractID,
		ActorID:    nonEmpty(params.ActorID),
	}
	if action := nonEmpty(params.ActionType); action != nil {
		a := domain.ActionType(*action)
		filter.ActionType = &a
	}
	return filter, params.PageParams, nil
}

// ParseThreshold reads the threshold query parameter of GET /allocations/nearing-limit
func ParseThreshold(c *gin.Context) (decimal.Decimal, error) {
	raw := c.DefaultQuery("threshold", DEFAULT_NEARING_LIMIT_THRESHOLD)
	threshold, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid threshold %q", raw)
	}
	return threshold, nil
}

// ParseIDs reads a comma separated id list such as ids=1,2,3. Repeated parameters are accepted too.
func ParseIDs(c *gin.Context, name string) ([]int64, error) {
	var ids []int64
	for _, value := range c.QueryArray(name) {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("invalid id %q", part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, c.Param(name))
	}
	return id, nil
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
