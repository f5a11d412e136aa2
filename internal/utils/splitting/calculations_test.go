package splitting_test

import (
	"testing"

	"github.com/dartsops/darts_management_app/internal/apperrors"
	"github.com/dartsops/darts_management_app/internal/utils/splitting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeBaseSplit(t *testing.T) {
	tests := []struct {
		name         string
		total        string
		wantBar      string
		wantBusiness string
	}{
		{name: "round hundred", total: "100.00", wantBar: "40.00", wantBusiness: "60.00"},
		{name: "zero total", total: "0", wantBar: "0.00", wantBusiness: "0.00"},
		{name: "cent-level rounding, bar share rounds up", total: "0.11", wantBar: "0.04", wantBusiness: "0.07"},
		{name: "half cent rounds away from zero", total: "1.0125", wantBar: "0.41", wantBusiness: "0.6025"},
		{name: "typical pickup", total: "237.50", wantBar: "95.00", wantBusiness: "142.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar, business, err := splitting.ComputeBaseSplit(dec(tt.total))
			require.NoError(t, err)
			assert.True(t, dec(tt.wantBar).Equal(bar), "bar: want %s got %s", tt.wantBar, bar)
			assert.True(t, dec(tt.wantBusiness).Equal(business), "business: want %s got %s", tt.wantBusiness, business)
		})
	}
}

func TestComputeBaseSplit_Lossless(t *testing.T) {
	// The split must sum back to the total exactly, whatever the total is.
	totals := []string{"0", "0.01", "0.03", "1", "99.99", "100", "123.45", "10000.07", "0.11", "7.77"}
	for _, s := range totals {
		total := dec(s)
		bar, business, err := splitting.ComputeBaseSplit(total)
		require.NoError(t, err)
		assert.True(t, bar.Add(business).Equal(total), "split of %s is lossy: %s + %s", total, bar, business)
		assert.False(t, bar.IsNegative())
		assert.False(t, business.IsNegative())
	}
}

func TestComputeBaseSplit_NegativeTotal(t *testing.T) {
	_, _, err := splitting.ComputeBaseSplit(dec("-1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestApplyExtraPayment(t *testing.T) {
	bar, business, err := splitting.ApplyExtraPayment(dec("40.00"), dec("60.00"), dec("10.00"))
	require.NoError(t, err)
	assert.True(t, dec("30.00").Equal(bar))
	assert.True(t, dec("70.00").Equal(business))

	// The extra payment only moves money between buckets.
	assert.True(t, bar.Add(business).Equal(dec("100.00")))

	// A second extra beyond the remaining bar share must fail and leave the
	// inputs untouched.
	sameBar, sameBusiness, err := splitting.ApplyExtraPayment(bar, business, dec("50.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.True(t, bar.Equal(sameBar))
	assert.True(t, business.Equal(sameBusiness))
}

func TestApplyExtraPayment_Bounds(t *testing.T) {
	// extra == bar is allowed (the whole bar share is redirected).
	bar, business, err := splitting.ApplyExtraPayment(dec("40.00"), dec("60.00"), dec("40.00"))
	require.NoError(t, err)
	assert.True(t, bar.IsZero())
	assert.True(t, dec("100.00").Equal(business))

	// extra == 0 is a no-op.
	bar, business, err = splitting.ApplyExtraPayment(dec("40.00"), dec("60.00"), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, dec("40.00").Equal(bar))
	assert.True(t, dec("60.00").Equal(business))

	// Negative extra is rejected, not clamped.
	_, _, err = splitting.ApplyExtraPayment(dec("40.00"), dec("60.00"), dec("-0.01"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFinalizeForPersistence(t *testing.T) {
	final, err := splitting.FinalizeForPersistence(splitting.CollectionAmounts{
		Total: dec("100.00"),
		Extra: dec("10.00"),
	})
	require.NoError(t, err)
	assert.True(t, dec("30.00").Equal(final.Bar))
	assert.True(t, dec("70.00").Equal(final.Business))
	// Extra is retained as an audit value, already folded into the shares.
	assert.True(t, dec("10.00").Equal(final.Extra))
	assert.True(t, final.Bar.Add(final.Business).Equal(final.Total))
}

func TestFinalizeForPersistence_IgnoresStaleDraftShares(t *testing.T) {
	// The draft's bar/business fields are recomputed from Total and Extra, so
	// a stale draft cannot smuggle in a bad split.
	final, err := splitting.FinalizeForPersistence(splitting.CollectionAmounts{
		Total:    dec("50.00"),
		Bar:      dec("999.00"),
		Business: dec("-1.00"),
		Extra:    decimal.Zero,
	})
	require.NoError(t, err)
	assert.True(t, dec("20.00").Equal(final.Bar))
	assert.True(t, dec("30.00").Equal(final.Business))
}

func TestFinalizeForPersistence_ExtraBeyondBarShare(t *testing.T) {
	draft := splitting.CollectionAmounts{Total: dec("100.00"), Extra: dec("40.01")}
	_, err := splitting.FinalizeForPersistence(draft)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
