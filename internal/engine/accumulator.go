package engine

import "github.com/steelyard-audit/steelyard/internal/model"

// accumulator collects risks and recommendations for a single scoring run.
// A fresh accumulator is created per top-level call, so state can never
// leak between runs or between concurrent callers.
type accumulator struct {
	risks           model.Risks
	recommendations []string
}

func newAccumulator() *accumulator {
	return &accumulator{}
}

func (a *accumulator) addRisk(kind model.RiskKind, severity model.Severity, description, recommendation string) {
	a.risks = append(a.risks, model.RiskItem{
		Kind:           kind,
		Severity:       severity,
		Description:    description,
		Recommendation: recommendation,
	})
}

func (a *accumulator) recommend(message string) {
	a.recommendations = append(a.recommendations, message)
}
