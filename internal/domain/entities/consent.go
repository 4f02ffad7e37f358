package entities

import "time"

// ConsentRecord tracks a single consent grant or withdrawal
type ConsentRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	ConsentType  string    `json:"consentType"`
	ConsentGiven bool      `json:"consentGiven"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateConsentInput represents a consent update request
type UpdateConsentInput struct {
	UserID       string `json:"userId"`
	ConsentType  string `json:"consentType"`
	ConsentGiven bool   `json:"consentGiven"`
}

// DataRequestStatus represents the processing state of a data subject request
type DataRequestStatus string

const (
	DataRequestPending   DataRequestStatus = "pending"
	DataRequestCompleted DataRequestStatus = "completed"
	DataRequestRejected  DataRequestStatus = "rejected"
)

// DataRequestType enumerates the supported data subject request kinds
var DataRequestTypes = map[string]bool{
	"access":        true,
	"erasure":       true,
	"portability":   true,
	"rectification": true,
}

// DataRequest is a GDPR data subject request
type DataRequest struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	RequestType string            `json:"requestType"`
	Status      DataRequestStatus `json:"status"`
	RequestDate time.Time         `json:"requestDate"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// SubmitDataRequestInput represents a new data subject request
type SubmitDataRequestInput struct {
	UserID      string `json:"userId"`
	RequestType string `json:"requestType"`
}
