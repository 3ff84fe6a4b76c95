package domain

import "github.com/shopspring/decimal"

const (
	// Pagination defaults shared by list operations
	DEFAULT_LIST_LIMIT = 50
	MAX_LIST_LIMIT     = 500

	// DEFAULT_NEARING_LIMIT_THRESHOLD is the utilization percentage at which an allocation is reported as nearing its limit
	DEFAULT_NEARING_LIMIT_THRESHOLD = 90

	// Input bounds carried over from the contract entry form
	MAX_STYLE_NUMBER_LENGTH = 50
	MAX_CUSTOMER_LENGTH     = 200
)

var (
	// Tolerance is the absolute difference under which two amounts (or two percentages) are considered equal
	Tolerance = decimal.RequireFromString("0.01")

	// MaxCommittedAmount is the largest total committed amount a contract may carry
	MaxCommittedAmount = decimal.RequireFromString("999999999.99")

	// Hundred is 100 as a decimal, used for percentage arithmetic
	Hundred = decimal.NewFromInt(100)
)
