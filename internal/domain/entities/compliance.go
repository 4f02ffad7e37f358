package entities

import "time"

// ComplianceReportTTL is how long a generated report stays downloadable.
const ComplianceReportTTL = 90 * 24 * time.Hour

// ReportPeriod is the inclusive date range a report covers
type ReportPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ComplianceMetrics are the aggregate numbers of a compliance report
type ComplianceMetrics struct {
	TotalUsers          int64        `json:"totalUsers"`
	ActiveConsents      int64        `json:"activeConsents"`
	DataRequests        int64        `json:"dataRequests"`
	Orders              int64        `json:"orders"`
	UnprocessedRequests int64        `json:"unprocessedRequests"`
	ComplianceScore     int          `json:"complianceScore"`
	ReportPeriod        ReportPeriod `json:"reportPeriod"`
}

// ComplianceReport is an immutable generated report. It expires
// ComplianceReportTTL after creation; expiry is checked at read time,
// never actively purged.
type ComplianceReport struct {
	ID          string            `json:"id"`
	ReportType  string            `json:"reportType"`
	StartDate   time.Time         `json:"startDate"`
	EndDate     time.Time         `json:"endDate"`
	Metrics     ComplianceMetrics `json:"metrics"`
	Content     string            `json:"content,omitempty"`
	ContentType string            `json:"contentType"`
	Size        int               `json:"size"`
	ExpiresAt   time.Time         `json:"expiresAt"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Expired reports whether the report is past its expiry at the given time
func (r *ComplianceReport) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && r.ExpiresAt.Before(now)
}

// ComplianceFile is an exported data bundle prepared for a data access
// request and served as an attachment. Expiry is optional; files
// without one stay downloadable indefinitely.
type ComplianceFile struct {
	ID          string     `json:"id"`
	FileName    string     `json:"fileName"`
	ContentType string     `json:"contentType"`
	Content     string     `json:"content,omitempty"`
	UserID      string     `json:"userId,omitempty"`
	RequestID   string     `json:"requestId,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Expired reports whether the file is past its expiry at the given time
func (f *ComplianceFile) Expired(now time.Time) bool {
	return f.ExpiresAt != nil && f.ExpiresAt.Before(now)
}

// GenerateReportInput represents a report generation request
type GenerateReportInput struct {
	ReportType string `json:"reportType"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}
