package model

// FinancialBreakdown is the itemized result of a net-profit calculation.
// All monetary fields are rounded to 2 decimal places. Margins may be
// negative; selling at a loss is a result, not an error.
type FinancialBreakdown struct {
	GrossRevenue       float64 `json:"gross_revenue"`
	RevenueWithoutVAT  float64 `json:"revenue_without_vat"`
	VATAmount          float64 `json:"vat_amount"`
	CostPrice          float64 `json:"cost_price"`
	MarketplaceFee     float64 `json:"marketplace_fee"`
	LogisticsCost      float64 `json:"logistics_cost"`
	ReturnLosses       float64 `json:"return_losses"`
	NetProfit          float64 `json:"net_profit"`
	MarginPercent      float64 `json:"margin_percentage"`
	EffectiveMarginPct float64 `json:"effective_margin_percentage"`
	TotalCosts         float64 `json:"total_costs"`
}

// BreakEvenQuote is the price recommendation for a desired net margin.
type BreakEvenQuote struct {
	RecommendedPrice float64 `json:"recommended_price"`
	BreakEvenPrice   float64 `json:"breakeven_price"`
	TargetMarginPct  float64 `json:"target_margin_percent"`
	PriceWithoutVAT  float64 `json:"price_without_vat"`
}

// RevenueLimitReport flags how close annual revenue is to the simplified
// taxation ceiling.
type RevenueLimitReport struct {
	AnnualRevenue     float64  `json:"annual_revenue"`
	Limit             float64  `json:"limit"`
	WithinLimit       bool     `json:"within_limit"`
	UsagePercent      float64  `json:"usage_percent"`
	RemainingCapacity float64  `json:"remaining_capacity"`
	RiskLevel         Severity `json:"risk_level"`
	Recommendation    string   `json:"recommendation"`
}

// PromoImpact compares profitability at the regular price against a
// marketplace-forced promotional price.
type PromoImpact struct {
	OriginalPrice         float64 `json:"original_price"`
	PromoPrice            float64 `json:"promo_price"`
	OriginalProfitPerUnit float64 `json:"original_profit_per_unit"`
	PromoProfitPerUnit    float64 `json:"promo_profit_per_unit"`
	VolumeIncreasePct     float64 `json:"expected_volume_increase_percent"`
	TotalProfitDifference float64 `json:"total_profit_difference"`
	Accept                bool    `json:"accept"`
	Reason                string  `json:"reason"`
}
