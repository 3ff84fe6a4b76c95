package allocation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bburrets/mdf-contract-management/internal/domain"
)

var (
	// ErrAllocationMismatch is returned when the channel amounts do not add up to the committed total
	ErrAllocationMismatch = errors.New("allocation amounts must equal total committed amount")

	// ErrZeroAllocation is returned when every channel amount is zero
	ErrZeroAllocation = errors.New("at least one channel allocation must be greater than 0")

	// ErrPercentageMismatch is returned when the channel percentages do not add up to 100
	ErrPercentageMismatch = errors.New("allocation percentages must add up to 100")

	// ErrDateRange is returned when a campaign ends before it starts
	ErrDateRange = errors.New("campaign end date must be on or after the campaign start date")

	// ErrUnknownStyle is returned when the style catalog does not know the referenced style
	ErrUnknownStyle = errors.New("style does not exist")

	// ErrAllocationOutOfRange is returned when a single allocation is negative or exceeds the committed total
	ErrAllocationOutOfRange = errors.New("allocation amount must be between 0 and the total committed amount")
)

// StyleCatalog answers whether a style reference is known
type StyleCatalog interface {
	StyleExists(ctx context.Context, styleNumber string) (bool, error)
}

// ValidateChannelSplit checks that inline + ecomm matches total within tolerance and that
// at least one of the two amounts is non-zero
func ValidateChannelSplit(total, inline, ecomm decimal.Decimal) error {
	if inline.IsZero() && ecomm.IsZero() {
		return ErrZeroAllocation
	}
	if !domain.WithinTolerance(inline.Add(ecomm), total) {
		return ErrAllocationMismatch
	}
	return nil
}

// ValidatePercentageSplit checks that the two percentages add up to 100 within tolerance
func ValidatePercentageSplit(inlinePct, ecommPct decimal.Decimal) error {
	if !domain.WithinTolerance(inlinePct.Add(ecommPct), domain.Hundred) {
		return ErrPercentageMismatch
	}
	return nil
}

// ValidateCampaignRange checks that end is not before start. Either bound may be absent.
func ValidateCampaignRange(start, end *time.Time) error {
	if start == nil || end == nil {
		return nil
	}
	if end.Before(*start) {
		return ErrDateRange
	}
	return nil
}

// ValidateStyleExists delegates the existence check to the catalog
func ValidateStyleExists(ctx context.Context, catalog StyleCatalog, styleNumber string) error {
	exists, err := catalog.StyleExists(ctx, styleNumber)
	if err != nil {
		return fmt.Errorf("failed to look up style %q: %w", styleNumber, err)
	}
	if !exists {
		return ErrUnknownStyle
	}
	return nil
}

// ValidateAllocationBounds checks that amount lies in [0, total]
func ValidateAllocationBounds(total, amount decimal.Decimal) error {
	if amount.IsNegative() || amount.GreaterThan(total) {
		return ErrAllocationOutOfRange
	}
	return nil
}
