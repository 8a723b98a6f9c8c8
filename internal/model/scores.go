package model

import "fmt"

// Maximum points per audit dimension. The weights of the composite score
// are encoded in these ceilings; the total is a plain sum.
const (
	MaxLegalScore    = 40.0
	MaxDeliveryScore = 30.0
	MaxSEOScore      = 20.0
	MaxPriceScore    = 10.0
	MaxTotalScore    = MaxLegalScore + MaxDeliveryScore + MaxSEOScore + MaxPriceScore
)

// AuditScores is the per-dimension breakdown of one audit run.
type AuditScores struct {
	Total    float64 `json:"total_score"`
	Legal    float64 `json:"legal_score"`
	Delivery float64 `json:"delivery_score"`
	SEO      float64 `json:"seo_score"`
	Price    float64 `json:"price_score"`
}

// Validate ensures every score is within its documented ceiling and the
// total is consistent with the parts.
func (s *AuditScores) Validate() error {
	checks := []struct {
		name  string
		value float64
		max   float64
	}{
		{"legal", s.Legal, MaxLegalScore},
		{"delivery", s.Delivery, MaxDeliveryScore},
		{"seo", s.SEO, MaxSEOScore},
		{"price", s.Price, MaxPriceScore},
		{"total", s.Total, MaxTotalScore},
	}

	for _, c := range checks {
		if c.value < 0 || c.value > c.max {
			return fmt.Errorf("%s score must be between 0 and %.0f, got %.2f", c.name, c.max, c.value)
		}
	}

	sum := s.Legal + s.Delivery + s.SEO + s.Price
	if diff := s.Total - sum; diff > 0.01 || diff < -0.01 {
		return fmt.Errorf("total score %.2f does not match dimension sum %.2f", s.Total, sum)
	}

	return nil
}

// Grade maps the total score to a coarse letter band for display.
func (s *AuditScores) Grade() string {
	switch {
	case s.Total >= 90:
		return "A"
	case s.Total >= 75:
		return "B"
	case s.Total >= 50:
		return "C"
	default:
		return "D"
	}
}
