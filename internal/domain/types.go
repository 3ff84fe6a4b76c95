package domain

import (
	"github.com/shopspring/decimal"
)

// Scope represents how a contract's funding is distributed
type Scope string

const (
	// ScopeChannel splits the committed amount across the Inline and Ecomm channels
	ScopeChannel Scope = "Channel"
	// ScopeAllStyle funds the whole style and carries no per-channel allocations
	ScopeAllStyle Scope = "AllStyle"
)

// Valid reports whether the scope is one of the known scopes
func (s Scope) Valid() bool {
	return s == ScopeChannel || s == ScopeAllStyle
}

// Channel represents the sales channel an allocation funds
type Channel string

const (
	ChannelInline Channel = "Inline"
	ChannelEcomm  Channel = "Ecomm"
)

// Channels lists every channel in display order
var Channels = []Channel{ChannelInline, ChannelEcomm}

// Valid reports whether the channel is one of the two known channels
func (c Channel) Valid() bool {
	return c == ChannelInline || c == ChannelEcomm
}

// Label returns the human readable channel name
func (c Channel) Label() string {
	switch c {
	case ChannelInline:
		return "Inline Stores"
	case ChannelEcomm:
		return "E-commerce"
	default:
		return string(c)
	}
}

// ActionType is the closed set of actions recorded in the audit trail
type ActionType string

const (
	ActionContractCreate   ActionType = "contract_create"
	ActionContractUpdate   ActionType = "contract_update"
	ActionContractDelete   ActionType = "contract_delete"
	ActionContractView     ActionType = "contract_view"
	ActionAllocationCreate ActionType = "allocation_create"
	ActionAllocationUpdate ActionType = "allocation_update"
	ActionAllocationDelete ActionType = "allocation_delete"
	ActionSaveDraft        ActionType = "save_draft"
	ActionResumeDraft      ActionType = "resume_draft"
)

// ActionTypes lists every recognised action type
var ActionTypes = []ActionType{
	ActionContractCreate,
	ActionContractUpdate,
	ActionContractDelete,
	ActionContractView,
	ActionAllocationCreate,
	ActionAllocationUpdate,
	ActionAllocationDelete,
	ActionSaveDraft,
	ActionResumeDraft,
}

// Valid reports whether the action type belongs to the closed enumeration
func (a ActionType) Valid() bool {
	for _, t := range ActionTypes {
		if a == t {
			return true
		}
	}
	return false
}

// IsContractAction reports whether the action concerns a contract row
func (a ActionType) IsContractAction() bool {
	switch a {
	case ActionContractCreate, ActionContractUpdate, ActionContractDelete, ActionContractView:
		return true
	}
	return false
}

// IsAllocationAction reports whether the action concerns an allocation row
func (a ActionType) IsAllocationAction() bool {
	switch a {
	case ActionAllocationCreate, ActionAllocationUpdate, ActionAllocationDelete:
		return true
	}
	return false
}

// IsProcessAction reports whether the action is a process-level action (drafts)
func (a ActionType) IsProcessAction() bool {
	return a == ActionSaveDraft || a == ActionResumeDraft
}

// WithinTolerance reports whether |a - b| <= Tolerance
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}
