package engine

import "github.com/steelyard-audit/steelyard/internal/model"

// Certificate and marking each contribute up to half the legal ceiling.
const (
	certificatePoints          = 20.0
	certificateSuspendedPoints = 5.0
	markingPoints              = 20.0
)

// scoreLegal scores certification and marking compliance, up to 40 points.
//
// A nil marking record means marking does not apply to the product category
// and earns full points. A nil certificate record earns nothing and raises
// a critical risk; the two absences are deliberately asymmetric.
func (e *Engine) scoreLegal(acc *accumulator, certificate *model.CertificateRecord, marking *model.MarkingRecord) float64 {
	score := 0.0

	switch certificate.State() {
	case model.CertificateActive:
		score += certificatePoints
		acc.recommend("Certificate is valid")
	case model.CertificateSuspended:
		score += certificateSuspendedPoints
		acc.addRisk(model.RiskCertificateSuspended, model.SeverityHigh,
			"Certificate is suspended in the accreditation registry",
			"Contact the certification body immediately to restore it")
	case model.CertificateAnnulled:
		acc.addRisk(model.RiskCertificateAnnulled, model.SeverityCritical,
			"Certificate is annulled; selling the product is illegal",
			"Remove the listing immediately and obtain a new certificate")
	default:
		acc.addRisk(model.RiskCertificateMissing, model.SeverityCritical,
			"Certificate not found in the registry",
			"Verify the certificate number and upload a current document")
	}

	if marking == nil {
		// Marking not applicable to this product category.
		score += markingPoints
	} else if marking.IsValid {
		score += markingPoints
		acc.recommend("Marking codes are correct")
	} else {
		acc.addRisk(model.RiskMarkingInvalid, model.SeverityHigh,
			"Marking codes do not match declared stock",
			"Reconcile stock with the marking registry; tax fines are possible")
	}

	return minFloat(score, model.MaxLegalScore)
}
