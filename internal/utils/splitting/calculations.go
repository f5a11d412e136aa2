// Package splitting implements the 40/60 revenue split applied to every cash
// collection: 40% of the counted total goes to the hosting bar, 60% to the
// business, with an optional extra payment carved out of the bar's share and
// re-bucketed to the business side.
package splitting

import (
	"fmt"

	"github.com/dartsops/darts_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// barShareRatio is the bar owner's fraction of each collection.
var barShareRatio = decimal.NewFromInt(40).Div(decimal.NewFromInt(100))

// currencyPrecision is cents.
const currencyPrecision = 2

// CollectionAmounts is the in-progress money breakdown of a collection draft.
// It is owned by the caller until FinalizeForPersistence, after which the
// record is persisted and the draft is discarded.
type CollectionAmounts struct {
	Total    decimal.Decimal
	Bar      decimal.Decimal
	Business decimal.Decimal
	Extra    decimal.Decimal
}

// ComputeBaseSplit derives the bar and business shares from a raw total.
// The bar share is total*0.40 rounded half-away-from-zero to the cent; the
// business share is the remainder, so bar+business equals total exactly for
// every input.
func ComputeBaseSplit(total decimal.Decimal) (bar, business decimal.Decimal, err error) {
	if total.IsNegative() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: total collection must not be negative, got %s", apperrors.ErrValidation, total)
	}
	bar = total.Mul(barShareRatio).Round(currencyPrecision)
	business = total.Sub(bar)
	return bar, business, nil
}

// ApplyExtraPayment moves an extra payment from the bar's share to the
// business's share. It is pure: the inputs are untouched on error.
// The extra payment may never exceed the bar's current share.
func ApplyExtraPayment(bar, business, extra decimal.Decimal) (newBar, newBusiness decimal.Decimal, err error) {
	if extra.IsNegative() {
		return bar, business, fmt.Errorf("%w: extra payment must not be negative, got %s", apperrors.ErrValidation, extra)
	}
	if extra.GreaterThan(bar) {
		return bar, business, fmt.Errorf("%w: extra payment %s exceeds bar amount %s", apperrors.ErrValidation, extra, bar)
	}
	return bar.Sub(extra), business.Add(extra), nil
}

// FinalizeForPersistence produces the amounts as they will be persisted: the
// base split recomputed from the total, with the extra payment folded in
// exactly once. Extra is retained on the result as an audit value; readers of
// persisted records must never apply it again.
func FinalizeForPersistence(draft CollectionAmounts) (CollectionAmounts, error) {
	bar, business, err := ComputeBaseSplit(draft.Total)
	if err != nil {
		return draft, err
	}
	bar, business, err = ApplyExtraPayment(bar, business, draft.Extra)
	if err != nil {
		return draft, err
	}
	return CollectionAmounts{
		Total:    draft.Total,
		Bar:      bar,
		Business: business,
		Extra:    draft.Extra,
	}, nil
}
