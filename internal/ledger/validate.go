package ledger

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/bburrets/mdf-contract-management/internal/allocation"
	"github.com/bburrets/mdf-contract-management/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// structErrors runs the struct tag rules of s and keys each failure by its JSON field path
func structErrors(s any) domain.ValidationErrors {
	verrs := domain.ValidationErrors{}

	err := validate.Struct(s)
	if err == nil {
		return verrs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verrs.Add("input", err.Error())
		return verrs
	}
	for _, fe := range fieldErrs {
		verrs.Add(fieldKey(fe), fieldMessage(fe))
	}
	return verrs
}

// fieldKey drops the struct name from the namespace: CreateContractInput.allocations.x -> allocations.x
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// hasCents reports whether amount is representable in whole cents, so the stored value is the checked value
func hasCents(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(2))
}

func validateTotal(verrs domain.ValidationErrors, total decimal.Decimal) {
	switch {
	case !total.IsPositive():
		verrs.Add("total_committed_amount", "must be greater than 0")
	case total.GreaterThan(domain.MaxCommittedAmount):
		verrs.Add("total_committed_amount", "must not exceed "+domain.MaxCommittedAmount.StringFixed(2))
	case !hasCents(total):
		verrs.Add("total_committed_amount", "must have at most 2 decimal places")
	}
}

func allocationField(channel domain.Channel) string {
	if channel == domain.ChannelEcomm {
		return "allocations.ecomm_amount"
	}
	return "allocations.inline_amount"
}

// validateSplit checks a Channel contract's requested split against its total
func validateSplit(verrs domain.ValidationErrors, total decimal.Decimal, a AllocationInput) {
	for _, channel := range domain.Channels {
		amount := a.Amount(channel)
		if err := allocation.ValidateAllocationBounds(total, amount); err != nil {
			verrs.Add(allocationField(channel), err.Error())
			continue
		}
		if !hasCents(amount) {
			verrs.Add(allocationField(channel), "must have at most 2 decimal places")
		}
	}

	if err := allocation.ValidateChannelSplit(total, a.InlineAmount, a.EcommAmount); err != nil {
		verrs.Add("allocations", err.Error())
		return
	}

	if a.InlinePercentage == nil || a.EcommPercentage == nil {
		return
	}
	if err := allocation.ValidatePercentageSplit(*a.InlinePercentage, *a.EcommPercentage); err != nil {
		verrs.Add("allocations", err.Error())
		return
	}
	split := allocation.Split{
		InlineAmount:     a.InlineAmount,
		EcommAmount:      a.EcommAmount,
		InlinePercentage: *a.InlinePercentage,
		EcommPercentage:  *a.EcommPercentage,
	}
	if !split.Reconciles(total) {
		verrs.Add("allocations", "allocation amounts do not match the allocation percentages")
	}
}

// validateContract runs every structural and invariant check on a contract submission.
// Only a failed style lookup is returned as an error; everything else is a field message.
func (s *service) validateContract(ctx context.Context, input CreateContractInput) (domain.ValidationErrors, error) {
	verrs := structErrors(input)

	validateTotal(verrs, input.TotalCommittedAmount)

	if err := allocation.ValidateCampaignRange(input.CampaignStartDate, input.CampaignEndDate); err != nil {
		verrs.Add("campaign_end_date", err.Error())
	}

	if input.Scope == domain.ScopeChannel {
		validateSplit(verrs, input.TotalCommittedAmount, input.Allocations)
	}

	if _, invalid := verrs["style_number"]; !invalid {
		if err := allocation.ValidateStyleExists(ctx, s.store, input.StyleNumber); err != nil {
			if !errors.Is(err, allocation.ErrUnknownStyle) {
				return nil, err
			}
			verrs.Add("style_number", "style number does not exist")
		}
	}

	return verrs, nil
}
