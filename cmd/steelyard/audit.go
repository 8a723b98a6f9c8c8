package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/steelyard-audit/steelyard/internal/cli"
	"github.com/steelyard-audit/steelyard/internal/common"
	"github.com/steelyard-audit/steelyard/internal/engine"
	"github.com/steelyard-audit/steelyard/internal/model"
)

func auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Score listings from a snapshot file",
		Long: `Audit one product snapshot or a whole catalog.

The input file holds a JSON snapshot (or array of snapshots) with price,
rating, description, keywords, delivery hours, competitor prices, and the
already-fetched certificate and marking lookups. Each product gets a 0-100
composite score across legal, delivery, SEO, and price dimensions, with
itemized risks and recommendations.`,
		RunE: runAudit,
	}

	cmd.Flags().StringP("file", "f", "", "JSON file with product snapshot(s) (required)")
	cmd.Flags().String("format", "table", "Output format (table, json)")
	_ = cmd.MarkFlagRequired("file")

	_ = viper.BindPFlag("audit.file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("audit.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runAudit(_ *cobra.Command, _ []string) error {
	file := viper.GetString("audit.file")
	format := viper.GetString("audit.format")

	products, err := loadSnapshots(file)
	if err != nil {
		return err
	}

	eng := engine.New()

	var bar *progressbar.ProgressBar
	if len(products) > 1 && format == "table" {
		bar = progressbar.NewOptions(len(products),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Auditing catalog..."),
		)
	}

	results := eng.AuditCatalog(products, func(_, _ int) {
		if bar != nil {
			_ = bar.Add(1)
		}
	})
	if bar != nil {
		fmt.Fprintln(os.Stderr)
	}
	common.LogDebug("catalog audited", common.Fields{"products": len(results)})

	if format == "json" {
		return printJSON(results)
	}

	for i, result := range results {
		name := products[i].Name
		if name == "" {
			name = products[i].SKU
		}
		fmt.Println(cli.FormatAuditResult(name, result))
		printScoreSummary(result)
	}

	if len(results) > 1 {
		fmt.Println(cli.FormatInfo(fmt.Sprintf("Audited %d products", len(results))))
	}

	return nil
}

func printScoreSummary(result engine.Result) {
	critical := len(result.Risks.BySeverity(model.SeverityCritical))
	high := len(result.Risks.BySeverity(model.SeverityHigh))

	switch {
	case critical > 0:
		fmt.Println(cli.FormatError(fmt.Sprintf("%d critical risk(s) need immediate attention", critical)))
	case high > 0:
		fmt.Println(cli.FormatWarning(fmt.Sprintf("%d high risk(s) to review", high)))
	}
}
