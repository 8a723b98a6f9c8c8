package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/steelyard-audit/steelyard/internal/cli"
	"github.com/steelyard-audit/steelyard/internal/finance"
)

func promoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promo",
		Short: "Decide whether a forced promotion is worth it",
		Long: `Compare total profit at the current price against the promotional
price with its expected volume lift, and recommend accepting or declining.`,
		RunE: runPromo,
	}

	cmd.Flags().Float64P("price", "p", 0, "current price (required)")
	cmd.Flags().Float64P("cost", "c", 0, "cost per unit (required)")
	cmd.Flags().Float64P("discount", "d", 0, "promo discount percent (required)")
	cmd.Flags().Float64("volume-lift", 0, "expected sales volume increase percent")
	cmd.Flags().Float64("commission", 0, "marketplace commission percent (default from config)")
	cmd.Flags().String("format", "table", "Output format (table, json)")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("cost")
	_ = cmd.MarkFlagRequired("discount")

	_ = viper.BindPFlag("promo.price", cmd.Flags().Lookup("price"))
	_ = viper.BindPFlag("promo.cost", cmd.Flags().Lookup("cost"))
	_ = viper.BindPFlag("promo.discount", cmd.Flags().Lookup("discount"))
	_ = viper.BindPFlag("promo.volume_lift", cmd.Flags().Lookup("volume-lift"))
	_ = viper.BindPFlag("promo.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runPromo(cmd *cobra.Command, _ []string) error {
	calculator, settings, err := newCalculator()
	if err != nil {
		return err
	}

	commission := settings.CommissionPercent
	if cmd.Flags().Changed("commission") {
		commission, _ = cmd.Flags().GetFloat64("commission")
	}

	impact, err := calculator.PromoImpact(finance.PromoImpactInput{
		OriginalPrice:             viper.GetFloat64("promo.price"),
		CostPrice:                 viper.GetFloat64("promo.cost"),
		PromoDiscountPercent:      viper.GetFloat64("promo.discount"),
		ExpectedVolumeIncreasePct: viper.GetFloat64("promo.volume_lift"),
		CommissionPercent:         commission,
		ReturnRatePercent:         settings.ReturnRatePercent,
	})
	if err != nil {
		return err
	}

	if viper.GetString("promo.format") == "json" {
		return printJSON(impact)
	}

	fmt.Println(cli.FormatPromoImpact(impact))
	return nil
}
