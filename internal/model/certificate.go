package model

import "strings"

// CertificateState is the closed classification of a registry certificate status.
type CertificateState string

const (
	// CertificateActive means the certificate is in force.
	CertificateActive CertificateState = "active"
	// CertificateSuspended means the certificate is temporarily suspended.
	CertificateSuspended CertificateState = "suspended"
	// CertificateAnnulled means the certificate was revoked.
	CertificateAnnulled CertificateState = "annulled"
	// CertificateUnknown means the registry returned a status we do not recognize.
	CertificateUnknown CertificateState = "unknown"
)

// CertificateRecord is a certificate lookup result as returned by a registry
// client. Status is free text in the registry's working language.
type CertificateRecord struct {
	Number string `json:"number,omitempty"`
	Status string `json:"status"`
}

// MarkingRecord is a marking (serialization) check result. A nil
// *MarkingRecord means marking does not apply to the product category,
// which is different from a record with IsValid=false.
type MarkingRecord struct {
	IsValid bool `json:"is_valid"`
}

// activeStatuses is the exact registry vocabulary for a certificate in
// force. Negated statuses like "invalid", "inactive", and "не действует"
// contain these words, so the active family matches by equality only.
var activeStatuses = map[string]struct{}{
	"действует": {},
	"active":    {},
	"valid":     {},
}

// negativeTokens maps suspended/annulled status substrings to certificate
// states. Registries inflect these forms ("приостановлена",
// "аннулирован", "прекращено"), so matching is case-insensitive
// containment and the Russian tokens are stems.
var negativeTokens = []struct {
	token string
	state CertificateState
}{
	{"приостановлен", CertificateSuspended},
	{"suspended", CertificateSuspended},
	{"аннулирован", CertificateAnnulled},
	{"прекращ", CertificateAnnulled},
	{"annulled", CertificateAnnulled},
	{"revoked", CertificateAnnulled},
	{"terminated", CertificateAnnulled},
	{"cancelled", CertificateAnnulled},
	{"expired", CertificateAnnulled},
}

// ClassifyCertificateStatus folds a free-text registry status into a
// CertificateState. Negative families are checked first; anything else
// that is not exactly an active status maps to CertificateUnknown.
func ClassifyCertificateStatus(status string) CertificateState {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if normalized == "" {
		return CertificateUnknown
	}

	for _, entry := range negativeTokens {
		if strings.Contains(normalized, entry.token) {
			return entry.state
		}
	}
	if _, ok := activeStatuses[normalized]; ok {
		return CertificateActive
	}
	return CertificateUnknown
}

// State classifies the record's status text.
func (c *CertificateRecord) State() CertificateState {
	if c == nil {
		return CertificateUnknown
	}
	return ClassifyCertificateStatus(c.Status)
}
