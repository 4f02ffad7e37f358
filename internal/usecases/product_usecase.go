package usecases

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"gdpr-store.backend/internal/domain/entities"
	domainerrors "gdpr-store.backend/internal/domain/errors"
	"gdpr-store.backend/internal/domain/repositories"
	"gdpr-store.backend/pkg/logger"
	"gdpr-store.backend/pkg/utils"
)

// ProductUsecase implements the privacy-aware catalog search
type ProductUsecase struct {
	products  repositories.ProductRepository
	audit     repositories.AuditLogRepository
	analytics repositories.AnalyticsRepository
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(
	products repositories.ProductRepository,
	audit repositories.AuditLogRepository,
	analytics repositories.AnalyticsRepository,
) *ProductUsecase {
	return &ProductUsecase{
		products:  products,
		audit:     audit,
		analytics: analytics,
	}
}

// Search filters the catalog by the structured inputs in the store and
// matches the free-text query in-process over name, description and
// tags. Activity is audited only with identity plus tracking consent;
// anonymous searches leave a privacy-preserving analytics row instead.
func (u *ProductUsecase) Search(ctx context.Context, input *entities.SearchProductsInput) (*entities.ProductSearchResult, error) {
	if input.Query == "" {
		return nil, domainerrors.BadRequest("Missing search query")
	}
	input.Limit = utils.NormalizeLimit(input.Limit, 20)

	products, err := u.products.Filter(ctx, input.Category, input.PriceRange, input.Limit)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(input.Query)
	matched := make([]*entities.Product, 0, len(products))
	for _, p := range products {
		if productMatches(p, term) {
			matched = append(matched, p)
		}
	}

	switch {
	case input.UserID != "" && input.TrackingConsent:
		u.logTracked(ctx, input, len(matched))
	case input.UserID == "":
		u.logAnonymous(ctx, input, len(matched))
	}

	return &entities.ProductSearchResult{
		Products:    matched,
		Total:       len(matched),
		Query:       input.Query,
		PrivacyMode: !input.TrackingConsent,
		Anonymous:   input.UserID == "",
	}, nil
}

func productMatches(p *entities.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if p.Description != "" && strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func (u *ProductUsecase) logTracked(ctx context.Context, input *entities.SearchProductsInput, resultsCount int) {
	entry := &entities.AuditLogEntry{
		UserID: input.UserID,
		Action: entities.AuditActionProductSearch,
		Details: map[string]interface{}{
			"query":           input.Query,
			"category":        input.Category,
			"resultsCount":    resultsCount,
			"trackingConsent": true,
		},
		GDPRCompliant: true,
		Timestamp:     time.Now().UTC(),
	}
	if err := u.audit.Append(ctx, entry); err != nil {
		logger.Warn(ctx, "failed to append audit entry",
			zap.String("action", entry.Action),
			zap.Error(err))
	}
}

// logAnonymous records the search without the query term, which could
// identify the user.
func (u *ProductUsecase) logAnonymous(ctx context.Context, input *entities.SearchProductsInput, resultsCount int) {
	entry := &entities.AnonymousAnalyticsEntry{
		Action: "anonymous_product_search",
		Details: map[string]interface{}{
			"category":     input.Category,
			"resultsCount": resultsCount,
		},
		PrivacyPreserving: true,
		Timestamp:         time.Now().UTC(),
	}
	if err := u.analytics.Append(ctx, entry); err != nil {
		logger.Warn(ctx, "failed to append analytics entry", zap.Error(err))
	}
}
