package engine

import (
	"fmt"
	"sort"

	"github.com/steelyard-audit/steelyard/internal/model"
)

const (
	priceUnknownScore = 5.0

	// A competitor price is dumping only when strictly below 95% of ours;
	// exactly 5% cheaper is still within tolerance.
	dumpingThreshold = 0.95
	dumpingPenalty   = 3.0
)

// scorePrice checks for price dumping on other platforms, up to 10 points.
// Each offending platform costs 3 points and produces its own risk item.
func (e *Engine) scorePrice(acc *accumulator, currentPrice *float64, competitorPrices map[string]float64) float64 {
	if currentPrice == nil || *currentPrice == 0 {
		return priceUnknownScore
	}

	price := *currentPrice
	score := model.MaxPriceScore

	// Map order is random; sort platforms so risk order is reproducible.
	platforms := make([]string, 0, len(competitorPrices))
	for platform := range competitorPrices {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)

	for _, platform := range platforms {
		competitor := competitorPrices[platform]
		if competitor < price*dumpingThreshold {
			score -= dumpingPenalty
			gap := int((1 - competitor/price) * 100)
			acc.addRisk(model.RiskPriceDumping, model.SeverityMedium,
				fmt.Sprintf("Price on %s is %d%% lower", platform, gap),
				"Price gaps over 5% risk ranking demotion")
		}
	}

	return maxFloat(0, minFloat(score, model.MaxPriceScore))
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
