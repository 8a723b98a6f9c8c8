package engine

import (
	"fmt"
	"math"

	"github.com/steelyard-audit/steelyard/internal/model"
)

const (
	// A drop of more than 50 rank positions between the last two
	// observations is considered anomalous.
	shadowBanPositionDrop = 50
	// Price movements within a cent are treated as noise.
	priceChangeEpsilon = 0.01
)

// DetectShadowBan flags an anomalous position collapse: the listing lost
// more than 50 positions between the last two observations while its price
// stayed flat. This is a two-point heuristic, not a trend test; it uses
// only the most recent pair of entries and holds no state between calls.
//
// Returns whether an anomaly was detected and the risks raised by it.
func (e *Engine) DetectShadowBan(history model.ListingHistory) (bool, model.Risks) {
	if len(history.Positions) < 2 {
		return false, nil
	}

	latest := history.Positions[len(history.Positions)-1]
	previous := history.Positions[len(history.Positions)-2]

	// Raw delta: positive means the numeric rank grew, i.e. got worse.
	positionDrop := latest.Position - previous.Position

	priceChanged := false
	if len(history.Prices) >= 2 {
		diff := math.Abs(history.Prices[len(history.Prices)-1].Price - history.Prices[len(history.Prices)-2].Price)
		priceChanged = diff > priceChangeEpsilon
	}

	if positionDrop > shadowBanPositionDrop && !priceChanged {
		acc := newAccumulator()
		acc.addRisk(model.RiskShadowBan, model.SeverityCritical,
			fmt.Sprintf("Sharp drop of %d positions without a price change", positionDrop),
			"Possible shadow ban; check the listing against marketplace rules")
		return true, acc.risks
	}

	return false, nil
}
