package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/steelyard-audit/steelyard/internal/cli"
	"github.com/steelyard-audit/steelyard/internal/finance"
)

func breakevenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Find the price that hits a target margin",
		Long: `Solve for the VAT-inclusive price that yields exactly the target net
margin after commission and returns, plus the zero-margin break-even price.`,
		RunE: runBreakeven,
	}

	cmd.Flags().Float64P("cost", "c", 0, "purchase/production cost per unit (required)")
	cmd.Flags().Float64P("logistics", "l", 0, "logistics cost per unit")
	cmd.Flags().Float64("commission", 0, "marketplace commission percent (default from config)")
	cmd.Flags().Float64("returns", 0, "expected return rate percent (default from config)")
	cmd.Flags().Float64P("margin", "m", 0, "target margin percent (default from config)")
	cmd.Flags().Bool("no-vat", false, "quote a VAT-exclusive price")
	cmd.Flags().String("format", "table", "Output format (table, json)")
	_ = cmd.MarkFlagRequired("cost")

	_ = viper.BindPFlag("breakeven.cost", cmd.Flags().Lookup("cost"))
	_ = viper.BindPFlag("breakeven.logistics", cmd.Flags().Lookup("logistics"))
	_ = viper.BindPFlag("breakeven.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runBreakeven(cmd *cobra.Command, _ []string) error {
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
	margin := settings.TargetMarginPercent
	if cmd.Flags().Changed("margin") {
		margin, _ = cmd.Flags().GetFloat64("margin")
	}
	noVAT, _ := cmd.Flags().GetBool("no-vat")

	quote, err := calculator.BreakEvenPrice(finance.BreakEvenInput{
		CostPrice:           viper.GetFloat64("breakeven.cost"),
		LogisticsCost:       viper.GetFloat64("breakeven.logistics"),
		CommissionPercent:   commission,
		ReturnRatePercent:   returns,
		TargetMarginPercent: margin,
		IncludeVAT:          !noVAT,
	})
	if err != nil {
		return err
	}

	if viper.GetString("breakeven.format") == "json" {
		return printJSON(quote)
	}

	fmt.Println(cli.FormatBreakEven(quote))
	return nil
}
