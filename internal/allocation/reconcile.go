package allocation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bburrets/mdf-contract-management/internal/domain"
)

// ErrUnknownPreset is returned when a preset name is not one of the supported splits
var ErrUnknownPreset = errors.New("unknown allocation preset")

// Split is a two-way allocation expressed both as amounts and as percentages of the total
type Split struct {
	InlineAmount     decimal.Decimal `json:"inline_amount"`
	EcommAmount      decimal.Decimal `json:"ecomm_amount"`
	InlinePercentage decimal.Decimal `json:"inline_percentage"`
	EcommPercentage  decimal.Decimal `json:"ecomm_percentage"`
}

// Amount returns the amount allocated to a channel
func (s Split) Amount(channel domain.Channel) decimal.Decimal {
	if channel == domain.ChannelEcomm {
		return s.EcommAmount
	}
	return s.InlineAmount
}

// Reconciles reports whether the amounts and percentages describe the same split of total
func (s Split) Reconciles(total decimal.Decimal) bool {
	if !domain.WithinTolerance(s.InlineAmount.Add(s.EcommAmount), total) {
		return false
	}
	if !domain.WithinTolerance(s.InlinePercentage.Add(s.EcommPercentage), domain.Hundred) {
		return false
	}
	if total.IsPositive() {
		expected := total.Mul(s.InlinePercentage).Div(domain.Hundred)
		if !domain.WithinTolerance(s.InlineAmount, expected) {
			return false
		}
	}
	return true
}

// FromPercentage derives the split from the inline percentage. The percentage is clamped to [0, 100].
func FromPercentage(total, inlinePct decimal.Decimal) Split {
	inlinePct = clamp(inlinePct, decimal.Zero, domain.Hundred)
	ecommPct := domain.Hundred.Sub(inlinePct)

	return Split{
		InlineAmount:     total.Mul(inlinePct).Div(domain.Hundred),
		EcommAmount:      total.Mul(ecommPct).Div(domain.Hundred),
		InlinePercentage: inlinePct,
		EcommPercentage:  ecommPct,
	}
}

// FromAmount derives the split from the inline amount. The amount is clamped to [0, total].
func FromAmount(total, inlineAmount decimal.Decimal) Split {
	upper := total
	if upper.IsNegative() {
		upper = decimal.Zero
	}
	inlineAmount = clamp(inlineAmount, decimal.Zero, upper)

	inlinePct := decimal.Zero
	if total.IsPositive() {
		inlinePct = inlineAmount.Div(total).Mul(domain.Hundred)
	}

	return Split{
		InlineAmount:     inlineAmount,
		EcommAmount:      total.Sub(inlineAmount),
		InlinePercentage: inlinePct,
		EcommPercentage:  domain.Hundred.Sub(inlinePct),
	}
}

// Reset returns the default even split of total
func Reset(total decimal.Decimal) Split {
	return FromPercentage(total, decimal.NewFromInt(50))
}

// Preset is a named percentage pair
type Preset struct {
	Name   string          `json:"name"`
	Inline decimal.Decimal `json:"inline_percentage"`
	Ecomm  decimal.Decimal `json:"ecomm_percentage"`
}

// Apply converts the preset into a split of total
func (p Preset) Apply(total decimal.Decimal) Split {
	return FromPercentage(total, p.Inline)
}

var presets = []Preset{
	newPreset(50, 50),
	newPreset(60, 40),
	newPreset(70, 30),
	newPreset(80, 20),
	newPreset(100, 0),
	newPreset(0, 100),
}

func newPreset(inline, ecomm int64) Preset {
	return Preset{
		Name:   fmt.Sprintf("%d/%d", inline, ecomm),
		Inline: decimal.NewFromInt(inline),
		Ecomm:  decimal.NewFromInt(ecomm),
	}
}

// Presets returns the supported presets in display order
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// ParsePreset looks up a preset by its "inline/ecomm" name
func ParsePreset(name string) (Preset, error) {
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "")
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}
