package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdpr-store.backend/internal/domain/entities"
	domainerrors "gdpr-store.backend/internal/domain/errors"
)

func TestComplianceReportRepositoryCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createComplianceReportTable(t, db)
	repo := NewComplianceReportRepository(db)
	ctx := context.Background()

	now := time.Now()
	report := &entities.ComplianceReport{
		ReportType: "gdpr_compliance",
		StartDate:  now.AddDate(0, -1, 0),
		EndDate:    now,
		Metrics: entities.ComplianceMetrics{
			TotalUsers:      42,
			ActiveConsents:  30,
			ComplianceScore: 85,
			ReportPeriod:    entities.ReportPeriod{Start: "2026-07-01", End: "2026-08-01"},
		},
		Content:     "GDPR COMPLIANCE REPORT",
		ContentType: "text/plain",
		Size:        22,
		ExpiresAt:   now.Add(entities.ComplianceReportTTL),
	}
	require.NoError(t, repo.Create(ctx, report))
	require.NotEmpty(t, report.ID)

	got, err := repo.GetByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "gdpr_compliance", got.ReportType)
	assert.Equal(t, int64(42), got.Metrics.TotalUsers)
	assert.Equal(t, 85, got.Metrics.ComplianceScore)
	assert.Equal(t, "2026-07-01", got.Metrics.ReportPeriod.Start)
	assert.Equal(t, "GDPR COMPLIANCE REPORT", got.Content)
	assert.False(t, got.Expired(now))
	assert.True(t, got.Expired(now.Add(entities.ComplianceReportTTL+time.Hour)))
}

func TestComplianceReportRepositoryGetMissing(t *testing.T) {
	db := newTestDB(t)
	createComplianceReportTable(t, db)
	repo := NewComplianceReportRepository(db)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestComplianceFileCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createComplianceFileTable(t, db)
	repo := NewComplianceReportRepository(db)
	ctx := context.Background()

	expires := time.Now().Add(30 * 24 * time.Hour)
	file := &entities.ComplianceFile{
		FileName:    "data_export_user_a.json",
		ContentType: "application/json",
		Content:     `{"consents":[],"orders":[]}`,
		UserID:      "user::a@mail.com",
		RequestID:   "req-1",
		ExpiresAt:   &expires,
	}
	require.NoError(t, repo.CreateFile(ctx, file))
	require.NotEmpty(t, file.ID)

	got, err := repo.GetFileByID(ctx, file.ID)
	require.NoError(t, err)
	assert.Equal(t, "data_export_user_a.json", got.FileName)
	assert.Equal(t, `{"consents":[],"orders":[]}`, got.Content)
	assert.Equal(t, "user::a@mail.com", got.UserID)
	require.NotNil(t, got.ExpiresAt)
	assert.False(t, got.Expired(time.Now()))
	assert.True(t, got.Expired(expires.Add(time.Minute)))

	_, err = repo.GetFileByID(ctx, "nope")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRegistrationRepository(t *testing.T) {
	db := newTestDB(t)
	createUserRegistrationTable(t, db)
	repo := NewRegistrationRepository(db)
	ctx := context.Background()

	reg := &entities.UserRegistration{Email: "a@mail.com"}
	require.NoError(t, repo.Create(ctx, reg))
	assert.NotEmpty(t, reg.ID)

	// Duplicate email is rejected by the unique index
	assert.Error(t, repo.Create(ctx, &entities.UserRegistration{Email: "a@mail.com"}))

	now := time.Now()
	count, err := repo.CountBetween(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountBetween(ctx, now.AddDate(-1, 0, 0), now.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
