package usecases

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gdpr-store.backend/internal/domain/entities"
	domainerrors "gdpr-store.backend/internal/domain/errors"
	"gdpr-store.backend/internal/domain/repositories"
	"gdpr-store.backend/pkg/logger"
)

// ConsentUsecase handles consent decisions and data subject requests
type ConsentUsecase struct {
	consents     repositories.ConsentRepository
	dataRequests repositories.DataRequestRepository
	audit        repositories.AuditLogRepository
}

// NewConsentUsecase creates a new consent usecase
func NewConsentUsecase(
	consents repositories.ConsentRepository,
	dataRequests repositories.DataRequestRepository,
	audit repositories.AuditLogRepository,
) *ConsentUsecase {
	return &ConsentUsecase{
		consents:     consents,
		dataRequests: dataRequests,
		audit:        audit,
	}
}

// UpdateConsent records a consent decision, replacing any active record
// of the same type, and writes the audit entry.
func (u *ConsentUsecase) UpdateConsent(ctx context.Context, input *entities.UpdateConsentInput) (*entities.ConsentRecord, error) {
	if input.UserID == "" || input.ConsentType == "" {
		return nil, domainerrors.BadRequest("Missing userId or consentType parameter")
	}

	record := &entities.ConsentRecord{
		UserID:       input.UserID,
		ConsentType:  input.ConsentType,
		ConsentGiven: input.ConsentGiven,
	}
	if err := u.consents.UpsertActive(ctx, record); err != nil {
		return nil, err
	}

	u.appendAudit(ctx, &entities.AuditLogEntry{
		UserID: input.UserID,
		Action: entities.AuditActionConsentUpdated,
		Details: map[string]interface{}{
			"consentType":  input.ConsentType,
			"consentGiven": input.ConsentGiven,
		},
		GDPRCompliant: true,
		Timestamp:     time.Now().UTC(),
	})

	return record, nil
}

// SubmitDataRequest opens a pending data subject request
func (u *ConsentUsecase) SubmitDataRequest(ctx context.Context, input *entities.SubmitDataRequestInput) (*entities.DataRequest, error) {
	if input.UserID == "" || input.RequestType == "" {
		return nil, domainerrors.BadRequest("Missing userId or requestType parameter")
	}
	if !entities.DataRequestTypes[input.RequestType] {
		return nil, domainerrors.BadRequest("Invalid requestType")
	}

	req := &entities.DataRequest{
		UserID:      input.UserID,
		RequestType: input.RequestType,
		Status:      entities.DataRequestPending,
		RequestDate: time.Now().UTC(),
	}
	if err := u.dataRequests.Create(ctx, req); err != nil {
		return nil, err
	}

	u.appendAudit(ctx, &entities.AuditLogEntry{
		UserID: input.UserID,
		Action: entities.AuditActionDataRequestOpened,
		Details: map[string]interface{}{
			"requestType": input.RequestType,
			"requestId":   req.ID,
		},
		GDPRCompliant: true,
		Timestamp:     time.Now().UTC(),
	})

	return req, nil
}

func (u *ConsentUsecase) appendAudit(ctx context.Context, entry *entities.AuditLogEntry) {
	if err := u.audit.Append(ctx, entry); err != nil {
		logger.Warn(ctx, "failed to append audit entry",
			zap.String("action", entry.Action),
			zap.Error(err))
	}
}
