package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"gdpr-store.backend/internal/domain/entities"
)

// Mock UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Get(ctx context.Context, key string) (*entities.User, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserStore) Insert(ctx context.Context, key string, user *entities.User) error {
	args := m.Called(ctx, key, user)
	return args.Error(0)
}

func (m *MockUserStore) Upsert(ctx context.Context, key string, user *entities.User) error {
	args := m.Called(ctx, key, user)
	return args.Error(0)
}

// Mock RegistrationRepository
type MockRegistrationRepository struct {
	mock.Mock
}

func (m *MockRegistrationRepository) Create(ctx context.Context, reg *entities.UserRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockRegistrationRepository) CountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

// Mock FileRepository
type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) Create(ctx context.Context, file *entities.File) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockFileRepository) CreateBatch(ctx context.Context, files []*entities.File) error {
	args := m.Called(ctx, files)
	return args.Error(0)
}

func (m *MockFileRepository) GetByID(ctx context.Context, id string) (*entities.File, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.File), args.Error(1)
}

func (m *MockFileRepository) List(ctx context.Context, q entities.ListFilesQuery) ([]*entities.File, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.File), args.Error(1)
}

func (m *MockFileRepository) Search(ctx context.Context, q entities.SearchFilesQuery) ([]*entities.File, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.File), args.Error(1)
}

func (m *MockFileRepository) UpdateMetadata(ctx context.Context, input *entities.UpdateFileMetadataInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockFileRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, q entities.OrdersQuery) ([]*entities.Order, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

// Mock ConsentRepository
type MockConsentRepository struct {
	mock.Mock
}

func (m *MockConsentRepository) UpsertActive(ctx context.Context, record *entities.ConsentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockConsentRepository) CountActiveGivenBetween(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

// Mock DataRequestRepository
type MockDataRequestRepository struct {
	mock.Mock
}

func (m *MockDataRequestRepository) Create(ctx context.Context, req *entities.DataRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockDataRequestRepository) CountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDataRequestRepository) CountPendingBetween(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

// Mock AuditLogRepository
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Append(ctx context.Context, entry *entities.AuditLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) List(ctx context.Context, q entities.AuditTrailQuery) ([]*entities.AuditLogEntry, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AuditLogEntry), args.Error(1)
}

// Mock AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) Append(ctx context.Context, entry *entities.AnonymousAnalyticsEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// Mock ComplianceReportRepository
type MockComplianceReportRepository struct {
	mock.Mock
}

func (m *MockComplianceReportRepository) Create(ctx context.Context, report *entities.ComplianceReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockComplianceReportRepository) GetByID(ctx context.Context, id string) (*entities.ComplianceReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ComplianceReport), args.Error(1)
}

func (m *MockComplianceReportRepository) CreateFile(ctx context.Context, file *entities.ComplianceFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockComplianceReportRepository) GetFileByID(ctx context.Context, id string) (*entities.ComplianceFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ComplianceFile), args.Error(1)
}

// Mock ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Filter(ctx context.Context, category string, priceRange *entities.PriceRange, limit int) ([]*entities.Product, error) {
	args := m.Called(ctx, category, priceRange, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

// Mock ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) CreateRequirement(ctx context.Context, req *entities.ProjectRequirement) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockProjectRepository) ListRequirementsByUser(ctx context.Context, userID string, limit int) ([]*entities.ProjectRequirement, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ProjectRequirement), args.Error(1)
}

func (m *MockProjectRepository) CreateTemplateRequest(ctx context.Context, req *entities.TemplateRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockProjectRepository) CreateAdvancedTemplateRequest(ctx context.Context, req *entities.AdvancedTemplateRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockProjectRepository) CreateProcessAnalysis(ctx context.Context, analysis *entities.ProcessAnalysis) error {
	args := m.Called(ctx, analysis)
	return args.Error(0)
}
