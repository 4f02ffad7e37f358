package entities

import "time"

// Audit actions recorded by this service
const (
	AuditActionOrdersAccessed    = "orders_accessed"
	AuditActionConsentUpdated    = "consent_updated"
	AuditActionDataRequestOpened = "data_request_submitted"
	AuditActionProductSearch     = "product_search"
)

// AuditLogEntry is an append-only trail record of a privacy-relevant
// action. Entries are never mutated or deleted.
type AuditLogEntry struct {
	ID            string                 `json:"id"`
	UserID        string                 `json:"userId"`
	Action        string                 `json:"action"`
	Details       map[string]interface{} `json:"details"`
	GDPRCompliant bool                   `json:"gdpr_compliant"`
	Timestamp     time.Time              `json:"timestamp"`
}

// AuditTrailQuery represents an audit trail listing request
type AuditTrailQuery struct {
	UserID string
	Action string
	Limit  int
}

// AnonymousAnalyticsEntry is the privacy-preserving row written for
// searches carrying no user identity.
type AnonymousAnalyticsEntry struct {
	ID                string                 `json:"id"`
	Action            string                 `json:"action"`
	Details           map[string]interface{} `json:"details"`
	PrivacyPreserving bool                   `json:"privacy_preserving"`
	Timestamp         time.Time              `json:"timestamp"`
}
