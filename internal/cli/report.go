package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/steelyard-audit/steelyard/internal/engine"
	"github.com/steelyard-audit/steelyard/internal/model"
)

// FormatAuditResult renders one product's audit as a boxed terminal report.
func FormatAuditResult(name string, result engine.Result) string {
	var sections []string

	sections = append(sections, formatScores(result.Scores))

	if len(result.Risks) > 0 {
		sections = append(sections, formatRisks(result.Risks))
	}

	if len(result.Recommendations) > 0 {
		sections = append(sections, formatRecommendations(result.Recommendations))
	}

	title := "Listing Audit"
	if name != "" {
		title = fmt.Sprintf("Listing Audit: %s", name)
	}

	return RenderBox(title, strings.Join(sections, "\n\n"))
}

func formatScores(scores model.AuditScores) string {
	lines := []string{
		fmt.Sprintf("%s %s", BoldStyle.Render(fmt.Sprintf("Total: %.2f / %.0f", scores.Total, model.MaxTotalScore)),
			gradeStyle(scores.Grade()).Render("["+scores.Grade()+"]")),
		scoreLine("Legal", scores.Legal, model.MaxLegalScore),
		scoreLine("Delivery", scores.Delivery, model.MaxDeliveryScore),
		scoreLine("SEO", scores.SEO, model.MaxSEOScore),
		scoreLine("Price", scores.Price, model.MaxPriceScore),
	}
	return strings.Join(lines, "\n")
}

func scoreLine(label string, value, max float64) string {
	style := SuccessStyle
	switch {
	case value < max*0.4:
		style = ErrorStyle
	case value < max*0.75:
		style = WarningStyle
	}
	return fmt.Sprintf("%s %s", LabelStyle.Render(fmt.Sprintf("%-9s", label)),
		style.Render(fmt.Sprintf("%5.2f / %2.0f", value, max)))
}

func gradeStyle(grade string) lipgloss.Style {
	switch grade {
	case "A":
		return SuccessStyle
	case "B":
		return InfoStyle
	case "C":
		return WarningStyle
	default:
		return ErrorStyle
	}
}

func formatRisks(risks model.Risks) string {
	lines := []string{BoldStyle.Render(fmt.Sprintf("Risks (%d)", len(risks)))}
	for _, risk := range risks {
		lines = append(lines, fmt.Sprintf("%s %s", SeverityBadge(risk.Severity), risk.Description))
		lines = append(lines, SubtleStyle.Render("  → "+risk.Recommendation))
	}
	return strings.Join(lines, "\n")
}

func formatRecommendations(recommendations []string) string {
	lines := []string{BoldStyle.Render("Recommendations")}
	for _, rec := range recommendations {
		lines = append(lines, SuccessStyle.Render(SuccessIcon+" ")+rec)
	}
	return strings.Join(lines, "\n")
}

// SeverityBadge renders a colored severity tag.
func SeverityBadge(severity model.Severity) string {
	label := strings.ToUpper(string(severity))
	switch severity {
	case model.SeverityCritical:
		return ErrorStyle.Bold(true).Render("[" + label + "]")
	case model.SeverityHigh:
		return ErrorStyle.Render("[" + label + "]")
	case model.SeverityMedium:
		return WarningStyle.Render("[" + label + "]")
	default:
		return SubtleStyle.Render("[" + label + "]")
	}
}

// FormatBreakdown renders a net-profit breakdown as aligned money lines.
func FormatBreakdown(b *model.FinancialBreakdown) string {
	profitStyle := SuccessStyle
	if b.NetProfit < 0 {
		profitStyle = ErrorStyle
	}

	lines := []string{
		moneyLine("Gross revenue", b.GrossRevenue),
		moneyLine("Revenue w/o VAT", b.RevenueWithoutVAT),
		moneyLine("VAT amount", b.VATAmount),
		moneyLine("Cost price", b.CostPrice),
		moneyLine("Marketplace fee", b.MarketplaceFee),
		moneyLine("Logistics", b.LogisticsCost),
		moneyLine("Return losses", b.ReturnLosses),
		moneyLine("Total costs", b.TotalCosts),
		profitStyle.Render(fmt.Sprintf("%-17s %12.2f", "Net profit", b.NetProfit)),
		fmt.Sprintf("%-17s %11.2f%%", "Gross margin", b.MarginPercent),
		profitStyle.Render(fmt.Sprintf("%-17s %11.2f%%", "Effective margin", b.EffectiveMarginPct)),
	}

	return RenderBox(MoneyIcon+" Unit Economics", strings.Join(lines, "\n"))
}

func moneyLine(label string, value float64) string {
	return fmt.Sprintf("%s %12.2f", LabelStyle.Render(fmt.Sprintf("%-17s", label)), value)
}

// FormatBreakEven renders a break-even price quote.
func FormatBreakEven(q *model.BreakEvenQuote) string {
	lines := []string{
		moneyLine("Recommended", q.RecommendedPrice),
		moneyLine("Break-even", q.BreakEvenPrice),
		moneyLine("Pre-VAT price", q.PriceWithoutVAT),
		fmt.Sprintf("%-17s %11.2f%%", "Target margin", q.TargetMarginPct),
	}
	return RenderBox(MoneyIcon+" Price Recommendation", strings.Join(lines, "\n"))
}

// FormatRevenueLimit renders a revenue-limit usage report.
func FormatRevenueLimit(r *model.RevenueLimitReport) string {
	lines := []string{
		moneyLine("Annual revenue", r.AnnualRevenue),
		moneyLine("Ceiling", r.Limit),
		moneyLine("Remaining", r.RemainingCapacity),
		fmt.Sprintf("%-17s %11.2f%%", "Usage", r.UsagePercent),
		fmt.Sprintf("%s %s", SeverityBadge(r.RiskLevel), r.Recommendation),
	}
	return RenderBox(ChartIcon+" Tax Limit", strings.Join(lines, "\n"))
}

// FormatPromoImpact renders a promotion accept/decline verdict.
func FormatPromoImpact(p *model.PromoImpact) string {
	verdict := FormatError("DECLINE the promotion")
	if p.Accept {
		verdict = FormatSuccess("ACCEPT the promotion")
	}

	lines := []string{
		moneyLine("Original price", p.OriginalPrice),
		moneyLine("Promo price", p.PromoPrice),
		moneyLine("Profit/unit now", p.OriginalProfitPerUnit),
		moneyLine("Profit/unit promo", p.PromoProfitPerUnit),
		moneyLine("Profit difference", p.TotalProfitDifference),
		"",
		verdict,
		SubtleStyle.Render(p.Reason),
	}
	return RenderBox(MoneyIcon+" Promo Impact", strings.Join(lines, "\n"))
}
