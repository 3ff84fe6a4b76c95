package schema

import (
	"time"

	"gorm.io/datatypes"
)

// ContractDraft represents the contract_drafts table - a partially filled contract form saved by an actor
type ContractDraft struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"draft_id"`
	// ActorID is the owner of the draft
	ActorID string `gorm:"column:actor_id;not null;type:text;index" json:"actor_id"`
	// ContractID optionally references the contract the draft was started from
	ContractID *int64 `gorm:"column:contract_id" json:"contract_id,omitempty"`
	// FormData is the raw form state as JSON
	FormData datatypes.JSON `gorm:"column:form_data;not null;type:jsonb" json:"form_data"`
	// ValidationErrors holds the field errors reported when the draft was saved
	ValidationErrors datatypes.JSONMap `gorm:"column:validation_errors;type:jsonb" json:"validation_errors,omitempty"`
	// LastSaved is the timestamp of the latest save
	LastSaved time.Time `gorm:"column:last_saved;not null;default:now();type:timestamptz" json:"last_saved"`
	// CreatedAt is the timestamp when the draft was first saved
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
}

// TableName specifies the table name for the ContractDraft model
func (ContractDraft) TableName() string {
	return "contract_drafts"
}
