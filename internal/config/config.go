// Package config provides configuration utilities for the application.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/steelyard-audit/steelyard/internal/common"
)

// Default tax and marketplace assumptions. All of them can be overridden
// from the config file or STEELYARD_ environment variables.
const (
	// DefaultVATRate is the 2026 VAT rate applied to VAT-inclusive prices.
	DefaultVATRate = 0.22
	// DefaultRevenueLimit is the 2026 simplified-taxation annual revenue
	// ceiling in rubles, subject to indexation.
	DefaultRevenueLimit = 265_800_000.0
	// DefaultCommissionPercent is a typical marketplace commission.
	DefaultCommissionPercent = 15.0
	// DefaultReturnRatePercent is a typical expected return rate.
	DefaultReturnRatePercent = 5.0
	// DefaultTargetMarginPercent is the break-even planning default.
	DefaultTargetMarginPercent = 20.0
)

// Finance holds the tax and marketplace assumptions used by the
// financial calculator.
type Finance struct {
	VATRate             float64
	RevenueLimit        float64
	CommissionPercent   float64
	ReturnRatePercent   float64
	TargetMarginPercent float64
}

// RegisterDefaults installs default values into Viper. Call before
// reading the config file so file values win over defaults.
func RegisterDefaults() {
	viper.SetDefault("finance.vat_rate", DefaultVATRate)
	viper.SetDefault("finance.revenue_limit", DefaultRevenueLimit)
	viper.SetDefault("finance.commission_percent", DefaultCommissionPercent)
	viper.SetDefault("finance.return_rate_percent", DefaultReturnRatePercent)
	viper.SetDefault("finance.target_margin_percent", DefaultTargetMarginPercent)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}

// LoadFinance reads the finance assumptions from Viper and validates them.
func LoadFinance() (*Finance, error) {
	f := &Finance{
		VATRate:             viper.GetFloat64("finance.vat_rate"),
		RevenueLimit:        viper.GetFloat64("finance.revenue_limit"),
		CommissionPercent:   viper.GetFloat64("finance.commission_percent"),
		ReturnRatePercent:   viper.GetFloat64("finance.return_rate_percent"),
		TargetMarginPercent: viper.GetFloat64("finance.target_margin_percent"),
	}

	if f.VATRate < 0 || f.VATRate >= 1 {
		return nil, configErrorf("vat_rate must be in [0,1), got %v", f.VATRate)
	}
	if f.RevenueLimit <= 0 {
		return nil, configErrorf("revenue_limit must be positive, got %v", f.RevenueLimit)
	}
	if f.CommissionPercent < 0 || f.CommissionPercent > 100 {
		return nil, configErrorf("commission_percent must be in [0,100], got %v", f.CommissionPercent)
	}
	if f.ReturnRatePercent < 0 || f.ReturnRatePercent > 100 {
		return nil, configErrorf("return_rate_percent must be in [0,100], got %v", f.ReturnRatePercent)
	}

	return f, nil
}

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrInvalidConfig, fmt.Sprintf(format, args...))
}
