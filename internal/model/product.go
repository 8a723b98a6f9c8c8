package model

import "time"

// ProductSnapshot is a point-in-time view of a marketplace listing. Every
// field is optional; absent fields map to the neutral defaults documented
// on each scorer rather than errors.
type ProductSnapshot struct {
	SKU              string             `json:"sku,omitempty"`
	Name             string             `json:"name,omitempty"`
	CurrentPrice     *float64           `json:"current_price,omitempty"`
	Rating           *float64           `json:"rating,omitempty"`
	Description      string             `json:"description,omitempty"`
	SEOKeywords      []string           `json:"seo_keywords,omitempty"`
	DeliveryHours    *int               `json:"delivery_time_hours,omitempty"`
	CompetitorPrices map[string]float64 `json:"competitor_prices,omitempty"`

	// Optional compliance lookups, already fetched and normalized by the
	// caller. Nil marking means "not applicable", not "failed".
	Certificate *CertificateRecord `json:"certificate,omitempty"`
	Marking     *MarkingRecord     `json:"marking,omitempty"`

	// Competitor delivery benchmark in hours, when known.
	CompetitorDeliveryHours *int `json:"competitor_delivery_hours,omitempty"`
}

// PositionEntry is one observation of the listing's search rank.
type PositionEntry struct {
	Position  int       `json:"position"`
	Timestamp time.Time `json:"timestamp"`
}

// PriceEntry is one observation of the listing's price.
type PriceEntry struct {
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// ListingHistory carries the observation series consulted by anomaly
// detection. Only the two most recent entries of each series are used;
// callers may retain longer history for trend display.
type ListingHistory struct {
	Positions []PositionEntry `json:"positions"`
	Prices    []PriceEntry    `json:"prices"`
}
