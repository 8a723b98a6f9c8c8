package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/steelyard-audit/steelyard/internal/cli"
)

func taxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Check usage of the simplified-taxation revenue limit",
		RunE:  runTax,
	}

	cmd.Flags().Float64P("revenue", "r", 0, "annual revenue to date (required)")
	cmd.Flags().String("format", "table", "Output format (table, json)")
	_ = cmd.MarkFlagRequired("revenue")

	_ = viper.BindPFlag("tax.revenue", cmd.Flags().Lookup("revenue"))
	_ = viper.BindPFlag("tax.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runTax(_ *cobra.Command, _ []string) error {
	calculator, _, err := newCalculator()
	if err != nil {
		return err
	}

	report, err := calculator.CheckRevenueLimit(viper.GetFloat64("tax.revenue"))
	if err != nil {
		return err
	}

	if viper.GetString("tax.format") == "json" {
		return printJSON(report)
	}

	fmt.Println(cli.FormatRevenueLimit(report))
	return nil
}
