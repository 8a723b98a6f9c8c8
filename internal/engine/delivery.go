package engine

import (
	"fmt"

	"github.com/steelyard-audit/steelyard/internal/model"
)

// Delivery buckets in hours and their scores.
const (
	deliveryPremiumHours    = 18
	deliveryGoodHours       = 24
	deliveryAcceptableHours = 48

	deliveryPremiumScore    = 30.0
	deliveryGoodScore       = 25.0
	deliveryAcceptableScore = 15.0
	deliverySlowScore       = 5.0
	deliveryUnknownScore    = 15.0

	// A listing is flagged when delivery takes more than 1.5x the
	// competitor benchmark, regardless of which bucket it landed in.
	competitorDeliveryFactor = 1.5
)

// scoreDelivery scores delivery speed, up to 30 points.
func (e *Engine) scoreDelivery(acc *accumulator, deliveryHours, competitorAvgHours *int) float64 {
	if deliveryHours == nil || *deliveryHours == 0 {
		acc.addRisk(model.RiskDeliveryTimeUnknown, model.SeverityMedium,
			"Delivery time could not be determined",
			"Check warehouse placement for the listing")
		return deliveryUnknownScore
	}

	hours := *deliveryHours

	var score float64
	switch {
	case hours <= deliveryPremiumHours:
		score = deliveryPremiumScore
		acc.recommend(fmt.Sprintf("Excellent delivery time: %dh", hours))
	case hours <= deliveryGoodHours:
		score = deliveryGoodScore
		acc.recommend(fmt.Sprintf("Delivery time %dh leaves room for improvement", hours))
	case hours <= deliveryAcceptableHours:
		score = deliveryAcceptableScore
		acc.addRisk(model.RiskSlowDelivery, model.SeverityMedium,
			fmt.Sprintf("Delivery time %dh is above average", hours),
			"Consider placing stock in warehouses closer to major cities")
	default:
		score = deliverySlowScore
		acc.addRisk(model.RiskVerySlowDelivery, model.SeverityHigh,
			fmt.Sprintf("Critically slow delivery: %dh", hours),
			"Rework logistics urgently; regional warehouses cut delivery time the most")
	}

	// Benchmark check fires independently of the bucket score.
	if competitorAvgHours != nil && *competitorAvgHours > 0 &&
		float64(hours) > float64(*competitorAvgHours)*competitorDeliveryFactor {
		acc.addRisk(model.RiskSlowerThanCompetitors, model.SeverityHigh,
			fmt.Sprintf("Delivery is over 1.5x slower than competitors (%dh)", *competitorAvgHours),
			"Slow delivery lowers the listing's search position")
	}

	return minFloat(score, model.MaxDeliveryScore)
}
