package ledger

import (
	"context"

	"github.com/bburrets/mdf-contract-management/internal/audit"
	"github.com/bburrets/mdf-contract-management/internal/domain"
)

func (s *service) QueryAudit(ctx context.Context, filter audit.Filter, limit int, offset uint64) (page *AuditPage, err error) {
	defer s.track("query_audit", s.clock.Now(), &err)

	if filter.ActionType != nil && !filter.ActionType.Valid() {
		return nil, domain.ValidationErrors{"action_type": "is not a recognised action type"}
	}

	limit = normalizeLimit(limit)
	records, total, err := s.recorder.Query(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	return &AuditPage{
		Records: records,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}
