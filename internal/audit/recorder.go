package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/bburrets/mdf-contract-management/internal/adapter"
	"github.com/bburrets/mdf-contract-management/internal/domain"
	"github.com/bburrets/mdf-contract-management/internal/logger"
	"github.com/bburrets/mdf-contract-management/internal/metrics"
	"github.com/bburrets/mdf-contract-management/internal/store"
	"github.com/bburrets/mdf-contract-management/internal/store/schema"
)

// Entry is an audit record to be written
type Entry struct {
	ContractID *int64
	DraftID    *int64
	ActorID    string
	Payload    Payload
}

// Filter selects audit records
type Filter struct {
	ContractID *int64
	ActorID    *string
	ActionType *domain.ActionType
}

// Record is a stored audit entry with its payload decoded
type Record struct {
	ID         int64             `json:"id"`
	EventID    string            `json:"event_id"`
	ContractID *int64            `json:"contract_id,omitempty"`
	DraftID    *int64            `json:"draft_id,omitempty"`
	ActionType domain.ActionType `json:"action_type"`
	ActorID    string            `json:"actor_id"`
	Payload    Payload           `json:"payload"`
	Timestamp  time.Time         `json:"timestamp"`
}

// Recorder appends to and reads from the audit log
//
//go:generate mockgen -source=recorder.go -destination=../mocks/audit_recorder.go -package=mocks -mock_names=Recorder=MockAuditRecorder
type Recorder interface {
	// Record appends entry using st, which is normally the transactional store of the
	// calling operation. It never fails: errors are logged and counted, and the
	// insert runs in its own savepoint so the caller's transaction stays usable.
	Record(ctx context.Context, st store.Store, entry Entry)
	// Query reads audit records matching filter, newest first, with the total count
	Query(ctx context.Context, filter Filter, limit int, offset uint64) ([]Record, uint64, error)
}

type recorder struct {
	store store.Store
	clock adapter.Clock
	json  adapter.JSON
}

// NewRecorder creates an audit recorder. st is used for reads and for writes made outside a transaction.
func NewRecorder(st store.Store, clock adapter.Clock, json adapter.JSON) Recorder {
	return &recorder{
		store: st,
		clock: clock,
		json:  json,
	}
}

// Record appends an audit entry on a best-effort basis
func (r *recorder) Record(ctx context.Context, st store.Store, entry Entry) {
	actionType := domain.ActionType("unknown")
	if entry.Payload != nil {
		actionType = entry.Payload.ActionType()
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.fail(ctx, actionType, entry, fmt.Errorf("panic while recording audit entry: %v", rec))
		}
	}()

	if err := r.record(ctx, st, actionType, entry); err != nil {
		r.fail(ctx, actionType, entry, err)
		return
	}

	metrics.AuditWrites.WithLabelValues(string(actionType), metrics.ResultSuccess).Inc()
}

func (r *recorder) record(ctx context.Context, st store.Store, actionType domain.ActionType, entry Entry) error {
	if entry.Payload == nil {
		return errors.New("audit entry has no payload")
	}
	if st == nil {
		st = r.store
	}

	payload, err := r.json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode audit payload: %w", err)
	}

	now := r.clock.Now().UTC()
	eventID, err := ulid.New(ulid.Timestamp(now), ulid.DefaultEntropy())
	if err != nil {
		return fmt.Errorf("failed to generate audit event id: %w", err)
	}

	row := &schema.AuditEntry{
		EventID:    eventID.String(),
		ContractID: entry.ContractID,
		DraftID:    entry.DraftID,
		ActionType: actionType,
		ActorID:    entry.ActorID,
		Payload:    payload,
		Timestamp:  now,
	}

	return st.RunAtomic(ctx, func(tx store.Store) error {
		return tx.CreateAuditEntry(ctx, row)
	})
}

func (r *recorder) fail(ctx context.Context, actionType domain.ActionType, entry Entry, err error) {
	metrics.AuditWrites.WithLabelValues(string(actionType), metrics.ResultError).Inc()

	fields := []zap.Field{
		zap.String("action_type", string(actionType)),
		zap.String("actor_id", entry.ActorID),
	}
	if entry.ContractID != nil {
		fields = append(fields, zap.Int64("contract_id", *entry.ContractID))
	}
	if entry.DraftID != nil {
		fields = append(fields, zap.Int64("draft_id", *entry.DraftID))
	}
	logger.ErrorCtx(ctx, fmt.Errorf("audit write failed: %w", err), fields...)
}

// Query reads audit records matching filter, newest first
func (r *recorder) Query(ctx context.Context, filter Filter, limit int, offset uint64) ([]Record, uint64, error) {
	if limit <= 0 {
		limit = domain.DEFAULT_LIST_LIMIT
	}
	limit = min(limit, domain.MAX_LIST_LIMIT)

	entries, total, err := r.store.GetAuditEntries(ctx, store.AuditQueryFilter{
		ContractID: filter.ContractID,
		ActorID:    filter.ActorID,
		ActionType: filter.ActionType,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query audit log: %w", err)
	}

	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		payload, err := r.decodePayload(e.ActionType, e.Payload)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to decode audit payload",
				zap.String("event_id", e.EventID),
				zap.Error(err))
		}
		records = append(records, Record{
			ID:         e.ID,
			EventID:    e.EventID,
			ContractID: e.ContractID,
			DraftID:    e.DraftID,
			ActionType: e.ActionType,
			ActorID:    e.ActorID,
			Payload:    payload,
			Timestamp:  e.Timestamp,
		})
	}

	return records, total, nil
}

// decodePayload decodes a stored payload into the shape selected by the action type
func (r *recorder) decodePayload(actionType domain.ActionType, raw []byte) (Payload, error) {
	payload, err := newPayload(actionType)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return payload, nil
	}
	if err := r.json.Unmarshal(raw, payload); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", actionType, err)
	}
	return payload, nil
}
