package model

import (
	"testing"
)

func TestAuditScoresValidate(t *testing.T) {
	tests := []struct {
		name    string
		scores  AuditScores
		wantErr bool
	}{
		{
			name:   "full marks",
			scores: AuditScores{Total: 100, Legal: 40, Delivery: 30, SEO: 20, Price: 10},
		},
		{
			name:   "zero is valid",
			scores: AuditScores{},
		},
		{
			name:   "fractional scores",
			scores: AuditScores{Total: 62.5, Legal: 25, Delivery: 22.5, SEO: 10, Price: 5},
		},
		{
			name:    "legal over ceiling",
			scores:  AuditScores{Total: 45, Legal: 45},
			wantErr: true,
		},
		{
			name:    "negative dimension",
			scores:  AuditScores{Total: 0, Price: -1},
			wantErr: true,
		},
		{
			name:    "total does not match parts",
			scores:  AuditScores{Total: 90, Legal: 40, Delivery: 30, SEO: 10, Price: 5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scores.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuditScoresGrade(t *testing.T) {
	tests := []struct {
		total float64
		want  string
	}{
		{total: 95, want: "A"},
		{total: 90, want: "A"},
		{total: 80, want: "B"},
		{total: 60, want: "C"},
		{total: 48, want: "D"},
		{total: 0, want: "D"},
	}

	for _, tt := range tests {
		scores := AuditScores{Total: tt.total}
		if got := scores.Grade(); got != tt.want {
			t.Errorf("Grade() with total %.0f = %q, want %q", tt.total, got, tt.want)
		}
	}
}
