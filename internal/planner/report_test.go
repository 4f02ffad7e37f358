package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gdpr-store.backend/internal/domain/entities"
)

func TestComplianceScore(t *testing.T) {
	assert.Equal(t, 100, ComplianceScore(0))
	assert.Equal(t, 85, ComplianceScore(3))
	assert.Equal(t, 0, ComplianceScore(20))
	assert.Equal(t, 0, ComplianceScore(21))
}

func TestComplianceReportContent(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	generatedAt := time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)

	metrics := entities.ComplianceMetrics{
		TotalUsers:          42,
		ActiveConsents:      30,
		DataRequests:        7,
		Orders:              120,
		UnprocessedRequests: 3,
		ComplianceScore:     85,
	}

	content := ComplianceReportContent(metrics, start, end, generatedAt)

	assert.Contains(t, content, "GDPR COMPLIANCE REPORT")
	assert.Contains(t, content, "Report Period: 2026-07-01T00:00:00Z to 2026-08-01T00:00:00Z")
	assert.Contains(t, content, "Total Users Registered: 42")
	assert.Contains(t, content, "Unprocessed Requests: 3")
	assert.Contains(t, content, "Compliance Score: 85%")
	assert.Contains(t, content, "a score of 85%.")
	// Next review is one retention period out
	assert.Contains(t, content, "Next review date: 2026-10-31T10:00:00Z")
}
