package usecases

import (
	"context"
	"errors"
	"time"

	"gdpr-store.backend/internal/domain/entities"
	domainerrors "gdpr-store.backend/internal/domain/errors"
	"gdpr-store.backend/internal/domain/repositories"
	"gdpr-store.backend/internal/planner"
)

// ComplianceUsecase generates and serves GDPR compliance reports
type ComplianceUsecase struct {
	reports       repositories.ComplianceReportRepository
	registrations repositories.RegistrationRepository
	consents      repositories.ConsentRepository
	dataRequests  repositories.DataRequestRepository
	orders        repositories.OrderRepository
	now           func() time.Time
}

// NewComplianceUsecase creates a new compliance usecase
func NewComplianceUsecase(
	reports repositories.ComplianceReportRepository,
	registrations repositories.RegistrationRepository,
	consents repositories.ConsentRepository,
	dataRequests repositories.DataRequestRepository,
	orders repositories.OrderRepository,
) *ComplianceUsecase {
	return &ComplianceUsecase{
		reports:       reports,
		registrations: registrations,
		consents:      consents,
		dataRequests:  dataRequests,
		orders:        orders,
		now:           time.Now,
	}
}

// GenerateReport collects the period metrics, renders the report body
// and persists the immutable report document.
func (u *ComplianceUsecase) GenerateReport(ctx context.Context, input *entities.GenerateReportInput) (*entities.ComplianceReport, error) {
	if input.ReportType == "" || input.StartDate == "" || input.EndDate == "" {
		return nil, domainerrors.BadRequest("Missing required parameters")
	}

	start, err := parseReportDate(input.StartDate)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid startDate")
	}
	end, err := parseReportDate(input.EndDate)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid endDate")
	}
	if end.Before(start) {
		return nil, domainerrors.BadRequest("endDate must not precede startDate")
	}

	metrics, err := u.collectMetrics(ctx, start, end)
	if err != nil {
		return nil, err
	}

	now := u.now().UTC()
	content := planner.ComplianceReportContent(metrics, start, end, now)

	report := &entities.ComplianceReport{
		ReportType:  input.ReportType,
		StartDate:   start,
		EndDate:     end,
		Metrics:     metrics,
		Content:     content,
		ContentType: "text/plain",
		Size:        len(content),
		ExpiresAt:   now.Add(entities.ComplianceReportTTL),
	}
	if err := u.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// DownloadReport returns a stored report, rejecting expired ones at
// read time.
func (u *ComplianceUsecase) DownloadReport(ctx context.Context, reportID string) (*entities.ComplianceReport, error) {
	if reportID == "" {
		return nil, domainerrors.BadRequest("Missing report_id parameter")
	}

	report, err := u.reports.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Report not found")
		}
		return nil, err
	}
	if report.Expired(u.now()) {
		return nil, domainerrors.Gone("Report has expired")
	}
	return report, nil
}

// DownloadComplianceFile returns an exported data access file, rejecting
// expired ones at read time. Files are produced out of band when an
// access request is processed; this only serves them.
func (u *ComplianceUsecase) DownloadComplianceFile(ctx context.Context, fileID string) (*entities.ComplianceFile, error) {
	if fileID == "" {
		return nil, domainerrors.BadRequest("Missing file_id parameter")
	}

	file, err := u.reports.GetFileByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("File not found")
		}
		return nil, err
	}
	if file.Expired(u.now()) {
		return nil, domainerrors.Gone("File has expired")
	}
	return file, nil
}

func (u *ComplianceUsecase) collectMetrics(ctx context.Context, start, end time.Time) (entities.ComplianceMetrics, error) {
	var m entities.ComplianceMetrics
	var err error

	if m.TotalUsers, err = u.registrations.CountBetween(ctx, start, end); err != nil {
		return m, err
	}
	if m.ActiveConsents, err = u.consents.CountActiveGivenBetween(ctx, start, end); err != nil {
		return m, err
	}
	if m.DataRequests, err = u.dataRequests.CountBetween(ctx, start, end); err != nil {
		return m, err
	}
	if m.Orders, err = u.orders.CountCreatedBetween(ctx, start, end); err != nil {
		return m, err
	}
	if m.UnprocessedRequests, err = u.dataRequests.CountPendingBetween(ctx, start, end); err != nil {
		return m, err
	}

	m.ComplianceScore = planner.ComplianceScore(m.UnprocessedRequests)
	m.ReportPeriod = entities.ReportPeriod{
		Start: start.Format(time.RFC3339),
		End:   end.Format(time.RFC3339),
	}
	return m, nil
}

// parseReportDate accepts date-only or full RFC3339 timestamps
func parseReportDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
