package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/steelyard-audit/steelyard/internal/model"
)

func intPtr(v int) *int { return &v }

func TestScoreDeliveryBuckets(t *testing.T) {
	tests := []struct {
		name      string
		hours     *int
		wantScore float64
		wantKind  model.RiskKind
	}{
		{name: "unknown delivery time", hours: nil, wantScore: 15, wantKind: model.RiskDeliveryTimeUnknown},
		{name: "zero hours treated as unknown", hours: intPtr(0), wantScore: 15, wantKind: model.RiskDeliveryTimeUnknown},
		{name: "premium at boundary", hours: intPtr(18), wantScore: 30},
		{name: "good at boundary", hours: intPtr(24), wantScore: 25},
		{name: "acceptable at boundary", hours: intPtr(48), wantScore: 15, wantKind: model.RiskSlowDelivery},
		{name: "very slow", hours: intPtr(72), wantScore: 5, wantKind: model.RiskVerySlowDelivery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := newAccumulator()
			score := New().scoreDelivery(acc, tt.hours, nil)

			assert.Equal(t, tt.wantScore, score)
			if tt.wantKind != "" {
				assert.Equal(t, 1, acc.risks.Count(tt.wantKind))
			} else {
				assert.Empty(t, acc.risks)
			}
		})
	}
}

func TestScoreDeliveryCompetitorBenchmark(t *testing.T) {
	t.Run("fires when over 1.5x competitor average", func(t *testing.T) {
		acc := newAccumulator()
		score := New().scoreDelivery(acc, intPtr(60), intPtr(30))

		assert.Equal(t, 5.0, score)
		assert.Equal(t, 1, acc.risks.Count(model.RiskVerySlowDelivery))
		assert.Equal(t, 1, acc.risks.Count(model.RiskSlowerThanCompetitors))
	})

	t.Run("fires even in the premium bucket", func(t *testing.T) {
		acc := newAccumulator()
		score := New().scoreDelivery(acc, intPtr(12), intPtr(6))

		assert.Equal(t, 30.0, score)
		assert.Equal(t, 1, acc.risks.Count(model.RiskSlowerThanCompetitors))
	})

	t.Run("silent at exactly 1.5x", func(t *testing.T) {
		acc := newAccumulator()
		New().scoreDelivery(acc, intPtr(45), intPtr(30))

		assert.Zero(t, acc.risks.Count(model.RiskSlowerThanCompetitors))
	})

	t.Run("zero competitor benchmark is ignored", func(t *testing.T) {
		acc := newAccumulator()
		New().scoreDelivery(acc, intPtr(60), intPtr(0))

		assert.Zero(t, acc.risks.Count(model.RiskSlowerThanCompetitors))
	})
}
