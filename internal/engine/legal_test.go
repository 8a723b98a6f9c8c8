package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/steelyard-audit/steelyard/internal/model"
)

func TestScoreLegal(t *testing.T) {
	tests := []struct {
		name          string
		certificate   *model.CertificateRecord
		marking       *model.MarkingRecord
		wantScore     float64
		wantRiskKinds []model.RiskKind
	}{
		{
			name:        "active certificate and no marking requirement",
			certificate: &model.CertificateRecord{Status: "active"},
			marking:     nil,
			wantScore:   40,
		},
		{
			name:          "suspended certificate",
			certificate:   &model.CertificateRecord{Status: "suspended"},
			marking:       nil,
			wantScore:     25,
			wantRiskKinds: []model.RiskKind{model.RiskCertificateSuspended},
		},
		{
			name:          "annulled certificate",
			certificate:   &model.CertificateRecord{Status: "annulled"},
			marking:       nil,
			wantScore:     20,
			wantRiskKinds: []model.RiskKind{model.RiskCertificateAnnulled},
		},
		{
			name:          "missing certificate",
			certificate:   nil,
			marking:       nil,
			wantScore:     20,
			wantRiskKinds: []model.RiskKind{model.RiskCertificateMissing},
		},
		{
			name:          "unrecognized certificate status",
			certificate:   &model.CertificateRecord{Status: "pending review"},
			marking:       nil,
			wantScore:     20,
			wantRiskKinds: []model.RiskKind{model.RiskCertificateMissing},
		},
		{
			name:          "negated certificate status",
			certificate:   &model.CertificateRecord{Status: "not valid"},
			marking:       nil,
			wantScore:     20,
			wantRiskKinds: []model.RiskKind{model.RiskCertificateMissing},
		},
		{
			name:        "active certificate with valid marking",
			certificate: &model.CertificateRecord{Status: "действует"},
			marking:     &model.MarkingRecord{IsValid: true},
			wantScore:   40,
		},
		{
			name:          "active certificate with invalid marking",
			certificate:   &model.CertificateRecord{Status: "active"},
			marking:       &model.MarkingRecord{IsValid: false},
			wantScore:     20,
			wantRiskKinds: []model.RiskKind{model.RiskMarkingInvalid},
		},
		{
			name:        "missing certificate with valid marking",
			certificate: nil,
			marking:     &model.MarkingRecord{IsValid: true},
			wantScore:   20,
			wantRiskKinds: []model.RiskKind{
				model.RiskCertificateMissing,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := newAccumulator()
			score := New().scoreLegal(acc, tt.certificate, tt.marking)

			assert.Equal(t, tt.wantScore, score)
			assert.LessOrEqual(t, score, model.MaxLegalScore)

			var kinds []model.RiskKind
			for _, r := range acc.risks {
				kinds = append(kinds, r.Kind)
			}
			assert.Equal(t, tt.wantRiskKinds, kinds)
		})
	}
}

func TestScoreLegalRiskSeverities(t *testing.T) {
	acc := newAccumulator()
	New().scoreLegal(acc, nil, &model.MarkingRecord{IsValid: false})

	assert.Len(t, acc.risks, 2)
	assert.Equal(t, model.SeverityCritical, acc.risks[0].Severity)
	assert.Equal(t, model.SeverityHigh, acc.risks[1].Severity)
}
