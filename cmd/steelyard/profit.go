package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/steelyard-audit/steelyard/internal/cli"
	"github.com/steelyard-audit/steelyard/internal/finance"
)

func profitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profit",
		Short: "Calculate net profit and margins for a unit",
		Long: `Break one sold unit down into marketplace fee, VAT, logistics,
return losses, and net profit under the configured tax assumptions.`,
		RunE: runProfit,
	}

	cmd.Flags().Float64P("price", "p", 0, "selling price, VAT-inclusive unless --no-vat (required)")
	cmd.Flags().Float64P("cost", "c", 0, "purchase/production cost per unit (required)")
	cmd.Flags().Float64P("logistics", "l", 0, "logistics cost per unit")
	cmd.Flags().Float64("commission", 0, "marketplace commission percent (default from config)")
	cmd.Flags().Float64("returns", 0, "expected return rate percent (default from config)")
	cmd.Flags().Bool("no-vat", false, "treat the price as VAT-exclusive")
	cmd.Flags().String("format", "table", "Output format (table, json)")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("cost")

	_ = viper.BindPFlag("profit.price", cmd.Flags().Lookup("price"))
	_ = viper.BindPFlag("profit.cost", cmd.Flags().Lookup("cost"))
	_ = viper.BindPFlag("profit.logistics", cmd.Flags().Lookup("logistics"))
	_ = viper.BindPFlag("profit.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runProfit(cmd *cobra.Command, _ []string) error {
	calculator, settings, err := newCalculator()
	if err != nil {
		return err
	}

	commission := settings.CommissionPercent
	if cmd.Flags().Changed("commission") {
		commission, _ = cmd.Flags().GetFloat64("commission")
	}
	returns := settings.ReturnRatePercent
	if cmd.Flags().Changed("returns") {
		returns, _ = cmd.Flags().GetFloat64("returns")
	}
	noVAT, _ := cmd.Flags().GetBool("no-vat")

	breakdown, err := calculator.NetProfit(finance.NetProfitInput{
		ProductPrice:      viper.GetFloat64("profit.price"),
		CostPrice:         viper.GetFloat64("profit.cost"),
		LogisticsCost:     viper.GetFloat64("profit.logistics"),
		CommissionPercent: commission,
		ReturnRatePercent: returns,
		IncludeVAT:        !noVAT,
	})
	if err != nil {
		return err
	}

	if viper.GetString("profit.format") == "json" {
		return printJSON(breakdown)
	}

	fmt.Println(cli.FormatBreakdown(breakdown))
	return nil
}
