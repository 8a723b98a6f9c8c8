package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelyard-audit/steelyard/internal/common"
)

func TestLoadFinanceDefaults(t *testing.T) {
	viper.Reset()
	RegisterDefaults()

	finance, err := LoadFinance()
	require.NoError(t, err)

	assert.Equal(t, DefaultVATRate, finance.VATRate)
	assert.Equal(t, DefaultRevenueLimit, finance.RevenueLimit)
	assert.Equal(t, DefaultCommissionPercent, finance.CommissionPercent)
	assert.Equal(t, DefaultReturnRatePercent, finance.ReturnRatePercent)
	assert.Equal(t, DefaultTargetMarginPercent, finance.TargetMarginPercent)
}

func TestLoadFinanceOverrides(t *testing.T) {
	viper.Reset()
	RegisterDefaults()
	viper.Set("finance.vat_rate", 0.20)
	viper.Set("finance.commission_percent", 19.5)

	finance, err := LoadFinance()
	require.NoError(t, err)

	assert.Equal(t, 0.20, finance.VATRate)
	assert.Equal(t, 19.5, finance.CommissionPercent)
}

func TestLoadFinanceRejectsBadValues(t *testing.T) {
	tests := []struct {
		key   string
		value float64
	}{
		{"finance.vat_rate", 1.5},
		{"finance.vat_rate", -0.1},
		{"finance.revenue_limit", 0},
		{"finance.commission_percent", 120},
		{"finance.return_rate_percent", -5},
	}

	for _, tt := range tests {
		viper.Reset()
		RegisterDefaults()
		viper.Set(tt.key, tt.value)

		_, err := LoadFinance()
		assert.ErrorIs(t, err, common.ErrInvalidConfig, "key %s=%v", tt.key, tt.value)
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("STEELYARD_TEST_DIR", "/tmp/steelyard")

	assert.Equal(t, "/tmp/steelyard/catalog.json", ExpandPath("$STEELYARD_TEST_DIR/catalog.json"))
	assert.Equal(t, "", ExpandPath(""))
	assert.NotContains(t, ExpandPath("~/catalog.json"), "~")
}
