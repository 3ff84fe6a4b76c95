package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/bburrets/mdf-contract-management/internal/domain"
)

// AuditEntry represents the audit_log table - an append-only record of every ledger state change.
// Rows are never updated or deleted.
type AuditEntry struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventID is a ULID assigned by the recorder, sortable by creation time
	EventID string `gorm:"column:event_id;not null;type:char(26);uniqueIndex"`
	// ContractID optionally references the affected contract. It is kept after the contract is deleted.
	ContractID *int64 `gorm:"column:contract_id;index"`
	// DraftID optionally references the affected draft
	DraftID *int64 `gorm:"column:draft_id"`
	// ActionType identifies what happened and selects the payload shape
	ActionType domain.ActionType `gorm:"column:action_type;not null;type:text;index"`
	// ActorID is the identity of the caller that performed the action
	ActorID string `gorm:"column:actor_id;not null;type:text;index"`
	// Payload contains the action specific before/after state as JSON
	Payload datatypes.JSON `gorm:"column:payload;type:jsonb"`
	// Timestamp is the server assigned UTC time of the action
	Timestamp time.Time `gorm:"column:timestamp;not null;default:now();type:timestamptz;index"`
}

// TableName specifies the table name for the AuditEntry model
func (AuditEntry) TableName() string {
	return "audit_log"
}
