package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelyard-audit/steelyard/internal/common"
	"github.com/steelyard-audit/steelyard/internal/model"
)

const (
	testVATRate      = 0.22
	testRevenueLimit = 265_800_000.0
)

func newTestCalculator() *Calculator {
	return NewCalculator(testVATRate, testRevenueLimit)
}

func TestNetProfitExtractsVAT(t *testing.T) {
	breakdown, err := newTestCalculator().NetProfit(NetProfitInput{
		ProductPrice:      1220,
		CostPrice:         500,
		CommissionPercent: 10,
		ReturnRatePercent: 0,
		IncludeVAT:        true,
	})
	require.NoError(t, err)

	assert.InDelta(t, 220.00, breakdown.VATAmount, 0.01)
	assert.InDelta(t, 1000.00, breakdown.RevenueWithoutVAT, 0.01)
	assert.InDelta(t, 122.00, breakdown.MarketplaceFee, 0.01)
	// 1000 - 122 - 500 = 378
	assert.InDelta(t, 378.00, breakdown.NetProfit, 0.01)
	assert.InDelta(t, 59.02, breakdown.MarginPercent, 0.01)
	assert.InDelta(t, 30.98, breakdown.EffectiveMarginPct, 0.01)
	assert.InDelta(t, 842.00, breakdown.TotalCosts, 0.01)
}

func TestNetProfitWithoutVAT(t *testing.T) {
	breakdown, err := newTestCalculator().NetProfit(NetProfitInput{
		ProductPrice:      1000,
		CostPrice:         400,
		LogisticsCost:     50,
		CommissionPercent: 15,
		ReturnRatePercent: 5,
		IncludeVAT:        false,
	})
	require.NoError(t, err)

	assert.Zero(t, breakdown.VATAmount)
	assert.Equal(t, 1000.00, breakdown.RevenueWithoutVAT)
	assert.InDelta(t, 150.00, breakdown.MarketplaceFee, 0.01)
	// Returns are charged on the gross price.
	assert.InDelta(t, 50.00, breakdown.ReturnLosses, 0.01)
	// 1000 - 150 - 400 - 50 - 50 = 350
	assert.InDelta(t, 350.00, breakdown.NetProfit, 0.01)
}

func TestNetProfitLossIsNotAnError(t *testing.T) {
	breakdown, err := newTestCalculator().NetProfit(NetProfitInput{
		ProductPrice:      100,
		CostPrice:         90,
		CommissionPercent: 20,
		IncludeVAT:        false,
	})
	require.NoError(t, err)

	assert.InDelta(t, -10.00, breakdown.NetProfit, 0.01)
	assert.InDelta(t, -10.00, breakdown.EffectiveMarginPct, 0.01)
	assert.InDelta(t, 10.00, breakdown.MarginPercent, 0.01)
}

func TestNetProfitRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input NetProfitInput
	}{
		{"zero price", NetProfitInput{ProductPrice: 0, CostPrice: 100}},
		{"negative price", NetProfitInput{ProductPrice: -10, CostPrice: 100}},
		{"zero cost", NetProfitInput{ProductPrice: 100, CostPrice: 0}},
		{"negative logistics", NetProfitInput{ProductPrice: 100, CostPrice: 50, LogisticsCost: -1}},
		{"commission above 100", NetProfitInput{ProductPrice: 100, CostPrice: 50, CommissionPercent: 101}},
		{"negative return rate", NetProfitInput{ProductPrice: 100, CostPrice: 50, ReturnRatePercent: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestCalculator().NetProfit(tt.input)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestBreakEvenPrice(t *testing.T) {
	quote, err := newTestCalculator().BreakEvenPrice(BreakEvenInput{
		CostPrice:           100,
		CommissionPercent:   15,
		ReturnRatePercent:   5,
		TargetMarginPercent: 20,
		IncludeVAT:          true,
	})
	require.NoError(t, err)

	// cost multiplier 1/(1-0.20) = 1.25; 100*1.25*1.2 = 150 pre-VAT.
	assert.InDelta(t, 150.00, quote.PriceWithoutVAT, 0.01)
	assert.InDelta(t, 183.00, quote.RecommendedPrice, 0.01)
	assert.InDelta(t, 152.50, quote.BreakEvenPrice, 0.01)
	assert.Equal(t, 20.0, quote.TargetMarginPct)
}

func TestBreakEvenPriceWithoutVAT(t *testing.T) {
	quote, err := newTestCalculator().BreakEvenPrice(BreakEvenInput{
		CostPrice:           100,
		LogisticsCost:       20,
		CommissionPercent:   10,
		ReturnRatePercent:   10,
		TargetMarginPercent: 0,
		IncludeVAT:          false,
	})
	require.NoError(t, err)

	// (100+20)/(1-0.2) = 150 with no margin and no VAT.
	assert.InDelta(t, 150.00, quote.RecommendedPrice, 0.01)
	assert.Equal(t, quote.RecommendedPrice, quote.BreakEvenPrice)
}

func TestBreakEvenPriceRejectsImpossibleDeductions(t *testing.T) {
	_, err := newTestCalculator().BreakEvenPrice(BreakEvenInput{
		CostPrice:         100,
		CommissionPercent: 60,
		ReturnRatePercent: 40,
	})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestCheckRevenueLimitBands(t *testing.T) {
	tests := []struct {
		name       string
		revenue    float64
		wantLevel  model.Severity
		wantWithin bool
	}{
		{"comfortable", testRevenueLimit * 0.50, model.SeverityLow, true},
		{"watch zone", testRevenueLimit * 0.75, model.SeverityMedium, true},
		{"approaching", testRevenueLimit * 0.90, model.SeverityHigh, true},
		{"critical", testRevenueLimit * 0.96, model.SeverityCritical, true},
		{"exceeded", testRevenueLimit * 1.10, model.SeverityCritical, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := newTestCalculator().CheckRevenueLimit(tt.revenue)
			require.NoError(t, err)

			assert.Equal(t, tt.wantLevel, report.RiskLevel)
			assert.Equal(t, tt.wantWithin, report.WithinLimit)
			assert.NotEmpty(t, report.Recommendation)
		})
	}
}

func TestCheckRevenueLimitRemainingCapacity(t *testing.T) {
	report, err := newTestCalculator().CheckRevenueLimit(100_000_000)
	require.NoError(t, err)

	assert.InDelta(t, 165_800_000, report.RemainingCapacity, 0.01)
	assert.InDelta(t, 37.62, report.UsagePercent, 0.01)
}

func TestPromoImpact(t *testing.T) {
	impact, err := newTestCalculator().PromoImpact(PromoImpactInput{
		OriginalPrice:             1000,
		CostPrice:                 300,
		PromoDiscountPercent:      10,
		ExpectedVolumeIncreasePct: 50,
		CommissionPercent:         10,
	})
	require.NoError(t, err)

	assert.InDelta(t, 900.00, impact.PromoPrice, 0.01)
	assert.Greater(t, impact.OriginalProfitPerUnit, impact.PromoProfitPerUnit)
	// The 50% volume lift more than offsets the thinner unit margin.
	assert.True(t, impact.Accept)
	assert.Positive(t, impact.TotalProfitDifference)
	assert.Contains(t, impact.Reason, "grow")
}

func TestPromoImpactDecline(t *testing.T) {
	impact, err := newTestCalculator().PromoImpact(PromoImpactInput{
		OriginalPrice:             1000,
		CostPrice:                 600,
		PromoDiscountPercent:      25,
		ExpectedVolumeIncreasePct: 5,
		CommissionPercent:         15,
	})
	require.NoError(t, err)

	assert.False(t, impact.Accept)
	assert.Negative(t, impact.TotalProfitDifference)
	assert.Contains(t, impact.Reason, "drop")
}

func TestPromoImpactRejectsFullDiscount(t *testing.T) {
	_, err := newTestCalculator().PromoImpact(PromoImpactInput{
		OriginalPrice:        1000,
		CostPrice:            300,
		PromoDiscountPercent: 100,
	})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
