package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/steelyard-audit/steelyard/internal/cli"
	"github.com/steelyard-audit/steelyard/internal/engine"
	"github.com/steelyard-audit/steelyard/internal/model"
)

func shadowbanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shadowban",
		Short: "Check position history for a shadow-ban signature",
		Long: `Inspect the two most recent position and price observations for an
anomalous position collapse: a drop of more than 50 positions while the
price stayed flat.`,
		RunE: runShadowban,
	}

	cmd.Flags().StringP("file", "f", "", "JSON file with position and price history (required)")
	cmd.Flags().String("format", "table", "Output format (table, json)")
	_ = cmd.MarkFlagRequired("file")

	_ = viper.BindPFlag("shadowban.file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("shadowban.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runShadowban(_ *cobra.Command, _ []string) error {
	history, err := loadHistory(viper.GetString("shadowban.file"))
	if err != nil {
		return err
	}

	detected, risks := engine.New().DetectShadowBan(history)

	if viper.GetString("shadowban.format") == "json" {
		return printJSON(struct {
			Detected bool        `json:"detected"`
			Risks    model.Risks `json:"risks,omitempty"`
		}{Detected: detected, Risks: risks})
	}

	if !detected {
		fmt.Println(cli.FormatSuccess("No shadow-ban signature in the observed history"))
		return nil
	}

	for _, risk := range risks {
		fmt.Printf("%s %s\n", cli.SeverityBadge(risk.Severity), risk.Description)
		fmt.Println(cli.SubtleStyle.Render("  → " + risk.Recommendation))
	}

	return nil
}
