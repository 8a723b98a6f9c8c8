// Package finance computes unit economics for marketplace listings: net
// profit, break-even pricing, promo impact, and revenue-limit usage.
package finance

import (
	"fmt"
	"math"

	"github.com/steelyard-audit/steelyard/internal/common"
	"github.com/steelyard-audit/steelyard/internal/model"
)

// Revenue-limit usage bands.
const (
	limitUsageMedium   = 70.0
	limitUsageHigh     = 85.0
	limitUsageCritical = 95.0
)

// Calculator derives financial breakdowns under fixed tax assumptions.
// It is stateless apart from those assumptions and safe for concurrent use.
type Calculator struct {
	vatRate      float64
	revenueLimit float64
}

// NewCalculator creates a calculator with the given VAT rate (a fraction,
// e.g. 0.22) and annual revenue ceiling for the simplified tax scheme.
func NewCalculator(vatRate, revenueLimit float64) *Calculator {
	return &Calculator{vatRate: vatRate, revenueLimit: revenueLimit}
}

// NetProfitInput carries the assumptions for one profitability calculation.
type NetProfitInput struct {
	ProductPrice      float64
	CostPrice         float64
	LogisticsCost     float64
	CommissionPercent float64
	ReturnRatePercent float64
	IncludeVAT        bool
}

func (in NetProfitInput) validate() error {
	if in.ProductPrice <= 0 {
		return common.InvalidInputf("product price must be positive, got %.2f", in.ProductPrice)
	}
	if in.CostPrice <= 0 {
		return common.InvalidInputf("cost price must be positive, got %.2f", in.CostPrice)
	}
	if in.LogisticsCost < 0 {
		return common.InvalidInputf("logistics cost must not be negative, got %.2f", in.LogisticsCost)
	}
	if in.CommissionPercent < 0 || in.CommissionPercent > 100 {
		return common.InvalidInputf("commission must be in [0,100], got %.2f", in.CommissionPercent)
	}
	if in.ReturnRatePercent < 0 || in.ReturnRatePercent > 100 {
		return common.InvalidInputf("return rate must be in [0,100], got %.2f", in.ReturnRatePercent)
	}
	return nil
}

// NetProfit computes the itemized profitability of one sold unit.
//
// When IncludeVAT is set, the given price is treated as VAT-inclusive and
// the pre-VAT revenue is extracted from it. Return losses are charged on
// the gross price, not on profit. MarginPercent is the simple gross margin
// (price vs cost only); EffectiveMarginPct is net profit over price.
func (c *Calculator) NetProfit(in NetProfitInput) (*model.FinancialBreakdown, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	grossRevenue := in.ProductPrice
	marketplaceFee := grossRevenue * (in.CommissionPercent / 100)

	revenueWithoutVAT := grossRevenue
	vatAmount := 0.0
	if in.IncludeVAT {
		revenueWithoutVAT = grossRevenue / (1 + c.vatRate)
		vatAmount = grossRevenue - revenueWithoutVAT
	}

	baseProfit := revenueWithoutVAT - marketplaceFee - in.CostPrice - in.LogisticsCost
	returnLosses := grossRevenue * (in.ReturnRatePercent / 100)
	netProfit := baseProfit - returnLosses

	marginPercent := (grossRevenue - in.CostPrice) / grossRevenue * 100
	effectiveMargin := netProfit / grossRevenue * 100

	return &model.FinancialBreakdown{
		GrossRevenue:       round2(grossRevenue),
		RevenueWithoutVAT:  round2(revenueWithoutVAT),
		VATAmount:          round2(vatAmount),
		CostPrice:          round2(in.CostPrice),
		MarketplaceFee:     round2(marketplaceFee),
		LogisticsCost:      round2(in.LogisticsCost),
		ReturnLosses:       round2(returnLosses),
		NetProfit:          round2(netProfit),
		MarginPercent:      round2(marginPercent),
		EffectiveMarginPct: round2(effectiveMargin),
		TotalCosts:         round2(in.CostPrice + marketplaceFee + in.LogisticsCost + returnLosses + vatAmount),
	}, nil
}

// BreakEvenInput carries the assumptions for a price recommendation.
type BreakEvenInput struct {
	CostPrice           float64
	LogisticsCost       float64
	CommissionPercent   float64
	ReturnRatePercent   float64
	TargetMarginPercent float64
	IncludeVAT          bool
}

// BreakEvenPrice inverts the profit relationship: the price that yields
// exactly the target net margin after commission, returns, and VAT.
func (c *Calculator) BreakEvenPrice(in BreakEvenInput) (*model.BreakEvenQuote, error) {
	if in.CostPrice <= 0 {
		return nil, common.InvalidInputf("cost price must be positive, got %.2f", in.CostPrice)
	}
	if in.LogisticsCost < 0 {
		return nil, common.InvalidInputf("logistics cost must not be negative, got %.2f", in.LogisticsCost)
	}
	deductions := in.CommissionPercent/100 + in.ReturnRatePercent/100
	if in.CommissionPercent < 0 || in.ReturnRatePercent < 0 || deductions >= 1 {
		return nil, common.InvalidInputf("commission %.2f%% plus return rate %.2f%% must stay below 100%%",
			in.CommissionPercent, in.ReturnRatePercent)
	}

	totalBaseCost := in.CostPrice + in.LogisticsCost
	costMultiplier := 1 / (1 - deductions)
	marginMultiplier := 1 + in.TargetMarginPercent/100

	priceWithoutVAT := totalBaseCost * costMultiplier * marginMultiplier

	recommended := priceWithoutVAT
	breakEven := totalBaseCost * costMultiplier
	if in.IncludeVAT {
		recommended *= 1 + c.vatRate
		breakEven *= 1 + c.vatRate
	}

	return &model.BreakEvenQuote{
		RecommendedPrice: round2(recommended),
		BreakEvenPrice:   round2(breakEven),
		TargetMarginPct:  in.TargetMarginPercent,
		PriceWithoutVAT:  round2(priceWithoutVAT),
	}, nil
}

// CheckRevenueLimit reports how much of the simplified-taxation revenue
// ceiling the seller has consumed. A pure threshold lookup.
func (c *Calculator) CheckRevenueLimit(annualRevenue float64) (*model.RevenueLimitReport, error) {
	if annualRevenue < 0 {
		return nil, common.InvalidInputf("annual revenue must not be negative, got %.2f", annualRevenue)
	}

	usagePercent := annualRevenue / c.revenueLimit * 100
	withinLimit := annualRevenue <= c.revenueLimit

	riskLevel := model.SeverityLow
	switch {
	case usagePercent >= limitUsageCritical:
		riskLevel = model.SeverityCritical
	case usagePercent >= limitUsageHigh:
		riskLevel = model.SeverityHigh
	case usagePercent >= limitUsageMedium:
		riskLevel = model.SeverityMedium
	}

	return &model.RevenueLimitReport{
		AnnualRevenue:     round2(annualRevenue),
		Limit:             c.revenueLimit,
		WithinLimit:       withinLimit,
		UsagePercent:      round2(usagePercent),
		RemainingCapacity: round2(c.revenueLimit - annualRevenue),
		RiskLevel:         riskLevel,
		Recommendation:    limitRecommendation(riskLevel, withinLimit),
	}, nil
}

func limitRecommendation(riskLevel model.Severity, withinLimit bool) string {
	switch {
	case !withinLimit:
		return "Simplified taxation limit exceeded; switch to the general tax scheme"
	case riskLevel == model.SeverityCritical:
		return "Close to the simplified taxation limit; prepare the transition to the general scheme"
	case riskLevel == model.SeverityHigh:
		return "Approaching the simplified taxation limit; consider restructuring revenue"
	case riskLevel == model.SeverityMedium:
		return "Watch your turnover to stay within the simplified taxation limit"
	default:
		return "Turnover is within the simplified taxation limit"
	}
}

// PromoImpactInput describes a marketplace-forced promotion offer.
type PromoImpactInput struct {
	OriginalPrice             float64
	PromoDiscountPercent      float64
	ExpectedVolumeIncreasePct float64
	CostPrice                 float64
	CommissionPercent         float64
	ReturnRatePercent         float64
}

// promoBaseVolume is the unit count the comparison is normalized to.
const promoBaseVolume = 100.0

// PromoImpact compares total profit at the regular price against the promo
// price with its expected volume lift, and recommends accepting or
// declining the promotion.
func (c *Calculator) PromoImpact(in PromoImpactInput) (*model.PromoImpact, error) {
	if in.PromoDiscountPercent < 0 || in.PromoDiscountPercent >= 100 {
		return nil, common.InvalidInputf("promo discount must be in [0,100), got %.2f", in.PromoDiscountPercent)
	}

	original, err := c.NetProfit(NetProfitInput{
		ProductPrice:      in.OriginalPrice,
		CostPrice:         in.CostPrice,
		CommissionPercent: in.CommissionPercent,
		ReturnRatePercent: in.ReturnRatePercent,
		IncludeVAT:        true,
	})
	if err != nil {
		return nil, err
	}

	promoPrice := in.OriginalPrice * (1 - in.PromoDiscountPercent/100)
	promo, err := c.NetProfit(NetProfitInput{
		ProductPrice:      promoPrice,
		CostPrice:         in.CostPrice,
		CommissionPercent: in.CommissionPercent,
		ReturnRatePercent: in.ReturnRatePercent,
		IncludeVAT:        true,
	})
	if err != nil {
		return nil, err
	}

	promoVolume := promoBaseVolume * (1 + in.ExpectedVolumeIncreasePct/100)
	profitDifference := promo.NetProfit*promoVolume - original.NetProfit*promoBaseVolume

	direction := "drop"
	if profitDifference > 0 {
		direction = "grow"
	}

	return &model.PromoImpact{
		OriginalPrice:         round2(in.OriginalPrice),
		PromoPrice:            round2(promoPrice),
		OriginalProfitPerUnit: original.NetProfit,
		PromoProfitPerUnit:    promo.NetProfit,
		VolumeIncreasePct:     in.ExpectedVolumeIncreasePct,
		TotalProfitDifference: round2(profitDifference),
		Accept:                profitDifference > 0,
		Reason:                fmt.Sprintf("Total profit would %s by %.2f", direction, math.Abs(profitDifference)),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
