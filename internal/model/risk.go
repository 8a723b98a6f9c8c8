// Package model defines the value types exchanged between the audit engine,
// the financial calculator, and their callers.
package model

// Severity represents how urgent an identified risk is.
type Severity string

const (
	// SeverityLow indicates a minor issue or optimization opportunity.
	SeverityLow Severity = "low"
	// SeverityMedium indicates a moderate issue that can be scheduled for resolution.
	SeverityMedium Severity = "medium"
	// SeverityHigh indicates a significant issue that should be addressed soon.
	SeverityHigh Severity = "high"
	// SeverityCritical indicates an issue requiring immediate attention.
	SeverityCritical Severity = "critical"
)

// RiskKind categorizes the type of risk identified during an audit.
type RiskKind string

const (
	// RiskCertificateMissing indicates no certificate was found for the product.
	RiskCertificateMissing RiskKind = "certificate_missing"
	// RiskCertificateSuspended indicates the certificate is suspended in the registry.
	RiskCertificateSuspended RiskKind = "certificate_suspended"
	// RiskCertificateAnnulled indicates the certificate was annulled.
	RiskCertificateAnnulled RiskKind = "certificate_annulled"
	// RiskMarkingInvalid indicates marking codes do not match declared stock.
	RiskMarkingInvalid RiskKind = "marking_invalid"
	// RiskDeliveryTimeUnknown indicates no delivery estimate is available.
	RiskDeliveryTimeUnknown RiskKind = "delivery_time_unknown"
	// RiskSlowDelivery indicates delivery slower than the marketplace average.
	RiskSlowDelivery RiskKind = "slow_delivery"
	// RiskVerySlowDelivery indicates delivery slow enough to hurt ranking.
	RiskVerySlowDelivery RiskKind = "very_slow_delivery"
	// RiskSlowerThanCompetitors indicates delivery far behind the competitor benchmark.
	RiskSlowerThanCompetitors RiskKind = "slower_than_competitors"
	// RiskLowRating indicates a product rating below 4.0.
	RiskLowRating RiskKind = "low_rating"
	// RiskIncompleteDescription indicates a description too short for good SEO.
	RiskIncompleteDescription RiskKind = "incomplete_description"
	// RiskInsufficientKeywords indicates fewer than the recommended search keywords.
	RiskInsufficientKeywords RiskKind = "insufficient_keywords"
	// RiskPriceDumping indicates a meaningfully lower price on another platform.
	RiskPriceDumping RiskKind = "price_dumping"
	// RiskShadowBan indicates a position collapse without a price change.
	RiskShadowBan RiskKind = "shadow_ban_detected"
)

// RiskItem is a single identified risk with its remediation advice.
// Items are immutable once created and accumulated in evaluation order.
type RiskItem struct {
	Kind           RiskKind `json:"kind"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
}

// Risks is an ordered collection of risk items from one audit run.
type Risks []RiskItem

// BySeverity returns the items matching the given severity, preserving order.
func (r Risks) BySeverity(severity Severity) Risks {
	var result Risks
	for _, item := range r {
		if item.Severity == severity {
			result = append(result, item)
		}
	}
	return result
}

// HasCritical reports whether any item is critical.
func (r Risks) HasCritical() bool {
	for _, item := range r {
		if item.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// Count returns the number of items with the given kind.
func (r Risks) Count(kind RiskKind) int {
	n := 0
	for _, item := range r {
		if item.Kind == kind {
			n++
		}
	}
	return n
}
