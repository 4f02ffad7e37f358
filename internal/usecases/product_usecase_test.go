package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gdpr-store.backend/internal/domain/entities"
)

func productFixtures() []*entities.Product {
	return []*entities.Product{
		{ID: "p1", Name: "Espresso Machine", Description: "compact brewer", Tags: []string{"kitchen", "coffee"}},
		{ID: "p2", Name: "Grinder", Description: "burr coffee grinder", Tags: []string{"kitchen"}},
		{ID: "p3", Name: "Kettle", Description: "electric kettle", Tags: []string{"kitchen"}},
	}
}

func TestProductUsecase_Search_RequiresQuery(t *testing.T) {
	uc := NewProductUsecase(new(MockProductRepository), new(MockAuditLogRepository), new(MockAnalyticsRepository))

	_, err := uc.Search(context.Background(), &entities.SearchProductsInput{})
	requireAppError(t, err, 400, "Missing search query")
}

func TestProductUsecase_Search_MatchesNameDescriptionAndTags(t *testing.T) {
	products := new(MockProductRepository)
	analytics := new(MockAnalyticsRepository)
	uc := NewProductUsecase(products, new(MockAuditLogRepository), analytics)

	products.On("Filter", mock.Anything, "", (*entities.PriceRange)(nil), 20).
		Return(productFixtures(), nil).Once()
	analytics.On("Append", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := uc.Search(context.Background(), &entities.SearchProductsInput{Query: "COFFEE"})
	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
	assert.Equal(t, "p1", result.Products[0].ID) // tag match
	assert.Equal(t, "p2", result.Products[1].ID) // description match
	assert.True(t, result.Anonymous)
	assert.True(t, result.PrivacyMode)
	assert.Equal(t, "COFFEE", result.Query)
}

func TestProductUsecase_Search_AuditsOnlyWithConsent(t *testing.T) {
	products := new(MockProductRepository)
	audit := new(MockAuditLogRepository)
	analytics := new(MockAnalyticsRepository)
	uc := NewProductUsecase(products, audit, analytics)

	products.On("Filter", mock.Anything, "kitchen", (*entities.PriceRange)(nil), 20).
		Return(productFixtures(), nil).Once()
	audit.On("Append", mock.Anything, mock.MatchedBy(func(e *entities.AuditLogEntry) bool {
		return e.UserID == "u1" &&
			e.Action == entities.AuditActionProductSearch &&
			e.Details["query"] == "kettle" &&
			e.Details["category"] == "kitchen" &&
			e.Details["resultsCount"] == 1 &&
			e.Details["trackingConsent"] == true
	})).Return(nil).Once()

	result, err := uc.Search(context.Background(), &entities.SearchProductsInput{
		Query:           "kettle",
		Category:        "kitchen",
		UserID:          "u1",
		TrackingConsent: true,
	})
	require.NoError(t, err)
	assert.False(t, result.Anonymous)
	assert.False(t, result.PrivacyMode)

	audit.AssertExpectations(t)
	analytics.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestProductUsecase_Search_IdentifiedWithoutConsentLogsNothing(t *testing.T) {
	products := new(MockProductRepository)
	audit := new(MockAuditLogRepository)
	analytics := new(MockAnalyticsRepository)
	uc := NewProductUsecase(products, audit, analytics)

	products.On("Filter", mock.Anything, "", (*entities.PriceRange)(nil), 20).
		Return(productFixtures(), nil).Once()

	result, err := uc.Search(context.Background(), &entities.SearchProductsInput{
		Query:  "grinder",
		UserID: "u1",
	})
	require.NoError(t, err)
	assert.True(t, result.PrivacyMode)
	assert.False(t, result.Anonymous)

	audit.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	analytics.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestProductUsecase_Search_AnonymousAnalyticsOmitsQuery(t *testing.T) {
	products := new(MockProductRepository)
	analytics := new(MockAnalyticsRepository)
	uc := NewProductUsecase(products, new(MockAuditLogRepository), analytics)

	products.On("Filter", mock.Anything, "kitchen", (*entities.PriceRange)(nil), 5).
		Return(productFixtures(), nil).Once()
	analytics.On("Append", mock.Anything, mock.MatchedBy(func(e *entities.AnonymousAnalyticsEntry) bool {
		_, hasQuery := e.Details["query"]
		return e.Action == "anonymous_product_search" &&
			e.PrivacyPreserving &&
			e.Details["category"] == "kitchen" &&
			e.Details["resultsCount"] == 1 &&
			!hasQuery
	})).Return(nil).Once()

	result, err := uc.Search(context.Background(), &entities.SearchProductsInput{
		Query:    "espresso",
		Category: "kitchen",
		Limit:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	analytics.AssertExpectations(t)
}
