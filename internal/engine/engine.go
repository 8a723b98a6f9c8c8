// Package engine scores marketplace listings across legal, delivery, SEO,
// and price dimensions and detects ranking anomalies.
package engine

import (
	"math"

	"github.com/steelyard-audit/steelyard/internal/model"
)

// Engine computes composite audit scores. It holds no per-run state; every
// public call builds its own accumulator, so one Engine may be shared by
// concurrent callers.
type Engine struct{}

// New creates a scoring engine.
func New() *Engine {
	return &Engine{}
}

// Result is the complete output of one scoring run. Risks and
// recommendations appear in evaluation order: legal, delivery, SEO, price.
type Result struct {
	Scores          model.AuditScores `json:"scores"`
	Risks           model.Risks       `json:"risks"`
	Recommendations []string          `json:"recommendations"`
}

// CalculateTotalScore runs the four dimension scorers in fixed order and
// sums their bounded outputs into a 0-100 composite. The dimension ceilings
// already encode the weighting; no further multiplication happens here.
func (e *Engine) CalculateTotalScore(
	product model.ProductSnapshot,
	certificate *model.CertificateRecord,
	marking *model.MarkingRecord,
	competitorDeliveryHours *int,
) Result {
	acc := newAccumulator()

	legal := e.scoreLegal(acc, certificate, marking)
	delivery := e.scoreDelivery(acc, product.DeliveryHours, competitorDeliveryHours)
	seo := e.scoreSEO(acc, product.Rating, product.Description, product.SEOKeywords)
	price := e.scorePrice(acc, product.CurrentPrice, product.CompetitorPrices)

	total := legal + delivery + seo + price

	return Result{
		Scores: model.AuditScores{
			Total:    round2(total),
			Legal:    round2(legal),
			Delivery: round2(delivery),
			SEO:      round2(seo),
			Price:    round2(price),
		},
		Risks:           acc.risks,
		Recommendations: acc.recommendations,
	}
}

// Audit scores a snapshot using the compliance lookups embedded in it.
func (e *Engine) Audit(product model.ProductSnapshot) Result {
	return e.CalculateTotalScore(product, product.Certificate, product.Marking, product.CompetitorDeliveryHours)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
