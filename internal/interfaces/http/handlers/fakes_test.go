package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"gdpr-store.backend/internal/domain/entities"
	domainerrors "gdpr-store.backend/internal/domain/errors"
)

// In-memory repository fakes for handler tests. They implement just
// enough of the storage contracts to drive the HTTP layer end to end.

type fakeUserStore struct {
	docs map[string]*entities.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{docs: map[string]*entities.User{}}
}

func (s *fakeUserStore) Get(_ context.Context, key string) (*entities.User, error) {
	user, ok := s.docs[key]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *fakeUserStore) Insert(_ context.Context, key string, user *entities.User) error {
	if _, ok := s.docs[key]; ok {
		return domainerrors.ErrAlreadyExists
	}
	clone := *user
	s.docs[key] = &clone
	return nil
}

func (s *fakeUserStore) Upsert(_ context.Context, key string, user *entities.User) error {
	clone := *user
	s.docs[key] = &clone
	return nil
}

type fakeFileRepo struct {
	files map[string]*entities.File
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: map[string]*entities.File{}}
}

func (r *fakeFileRepo) Create(_ context.Context, file *entities.File) error {
	if file.ID == "" {
		file.ID = uuid.NewString()
	}
	clone := *file
	r.files[file.ID] = &clone
	return nil
}

func (r *fakeFileRepo) CreateBatch(ctx context.Context, files []*entities.File) error {
	for _, f := range files {
		if err := r.Create(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeFileRepo) GetByID(_ context.Context, id string) (*entities.File, error) {
	f, ok := r.files[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *fakeFileRepo) List(_ context.Context, q entities.ListFilesQuery) ([]*entities.File, error) {
	var out []*entities.File
	for _, f := range r.files {
		if f.UserID == q.UserID {
			clone := *f
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeFileRepo) Search(_ context.Context, q entities.SearchFilesQuery) ([]*entities.File, error) {
	var out []*entities.File
	for _, f := range r.files {
		if q.UserID != "" && f.UserID != q.UserID {
			continue
		}
		if q.ContentType != "" && f.ContentType != q.ContentType {
			continue
		}
		clone := *f
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeFileRepo) UpdateMetadata(_ context.Context, input *entities.UpdateFileMetadataInput) error {
	f, ok := r.files[input.FileID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if input.Tags != nil {
		f.Tags = *input.Tags
	}
	if input.IsPublic != nil {
		f.IsPublic = *input.IsPublic
	}
	if input.Metadata != nil {
		f.Metadata = input.Metadata
	}
	f.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *fakeFileRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.files[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(r.files, id)
	return nil
}

type fakeOrderRepo struct {
	orders []*entities.Order
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, q entities.OrdersQuery) ([]*entities.Order, error) {
	var out []*entities.Order
	for _, o := range r.orders {
		if o.UserID != q.UserID {
			continue
		}
		if q.Status != "" && string(o.Status) != q.Status {
			continue
		}
		clone := *o
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeOrderRepo) CountCreatedBetween(_ context.Context, start, end time.Time) (int64, error) {
	var n int64
	for _, o := range r.orders {
		if !o.CreatedAt.Before(start) && !o.CreatedAt.After(end) {
			n++
		}
	}
	return n, nil
}

type fakeAuditRepo struct {
	entries []*entities.AuditLogEntry
}

func (r *fakeAuditRepo) Append(_ context.Context, entry *entities.AuditLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	clone := *entry
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *fakeAuditRepo) List(_ context.Context, q entities.AuditTrailQuery) ([]*entities.AuditLogEntry, error) {
	var out []*entities.AuditLogEntry
	for _, e := range r.entries {
		if e.UserID != q.UserID {
			continue
		}
		if q.Action != "" && e.Action != q.Action {
			continue
		}
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

type fakeAnalyticsRepo struct {
	entries []*entities.AnonymousAnalyticsEntry
}

func (r *fakeAnalyticsRepo) Append(_ context.Context, entry *entities.AnonymousAnalyticsEntry) error {
	clone := *entry
	r.entries = append(r.entries, &clone)
	return nil
}

type fakeConsentRepo struct {
	records []*entities.ConsentRecord
}

func (r *fakeConsentRepo) UpsertActive(_ context.Context, record *entities.ConsentRecord) error {
	for _, existing := range r.records {
		if existing.UserID == record.UserID && existing.ConsentType == record.ConsentType {
			existing.IsActive = false
		}
	}
	record.ID = uuid.NewString()
	record.IsActive = true
	record.CreatedAt = time.Now().UTC()
	clone := *record
	r.records = append(r.records, &clone)
	return nil
}

func (r *fakeConsentRepo) CountActiveGivenBetween(_ context.Context, start, end time.Time) (int64, error) {
	var n int64
	for _, c := range r.records {
		if c.IsActive && c.ConsentGiven && !c.CreatedAt.Before(start) && !c.CreatedAt.After(end) {
			n++
		}
	}
	return n, nil
}

type fakeDataRequestRepo struct {
	requests []*entities.DataRequest
}

func (r *fakeDataRequestRepo) Create(_ context.Context, req *entities.DataRequest) error {
	req.ID = uuid.NewString()
	clone := *req
	r.requests = append(r.requests, &clone)
	return nil
}

func (r *fakeDataRequestRepo) CountBetween(_ context.Context, start, end time.Time) (int64, error) {
	var n int64
	for _, req := range r.requests {
		if !req.RequestDate.Before(start) && !req.RequestDate.After(end) {
			n++
		}
	}
	return n, nil
}

func (r *fakeDataRequestRepo) CountPendingBetween(_ context.Context, start, end time.Time) (int64, error) {
	var n int64
	for _, req := range r.requests {
		if req.Status == entities.DataRequestPending && !req.RequestDate.Before(start) && !req.RequestDate.After(end) {
			n++
		}
	}
	return n, nil
}

type fakeRegistrationRepo struct {
	registrations []*entities.UserRegistration
}

func (r *fakeRegistrationRepo) Create(_ context.Context, reg *entities.UserRegistration) error {
	reg.ID = uuid.NewString()
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = time.Now().UTC()
	}
	clone := *reg
	r.registrations = append(r.registrations, &clone)
	return nil
}

func (r *fakeRegistrationRepo) CountBetween(_ context.Context, start, end time.Time) (int64, error) {
	var n int64
	for _, reg := range r.registrations {
		if !reg.CreatedAt.Before(start) && !reg.CreatedAt.After(end) {
			n++
		}
	}
	return n, nil
}

type fakeReportRepo struct {
	reports map[string]*entities.ComplianceReport
	files   map[string]*entities.ComplianceFile
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{
		reports: map[string]*entities.ComplianceReport{},
		files:   map[string]*entities.ComplianceFile{},
	}
}

func (r *fakeReportRepo) Create(_ context.Context, report *entities.ComplianceReport) error {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	report.CreatedAt = time.Now().UTC()
	clone := *report
	r.reports[report.ID] = &clone
	return nil
}

func (r *fakeReportRepo) GetByID(_ context.Context, id string) (*entities.ComplianceReport, error) {
	report, ok := r.reports[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	clone := *report
	return &clone, nil
}

func (r *fakeReportRepo) CreateFile(_ context.Context, file *entities.ComplianceFile) error {
	if file.ID == "" {
		file.ID = uuid.NewString()
	}
	file.CreatedAt = time.Now().UTC()
	clone := *file
	r.files[file.ID] = &clone
	return nil
}

func (r *fakeReportRepo) GetFileByID(_ context.Context, id string) (*entities.ComplianceFile, error) {
	file, ok := r.files[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	clone := *file
	return &clone, nil
}

type fakeProductRepo struct {
	products []*entities.Product
}

func (r *fakeProductRepo) Filter(_ context.Context, category string, priceRange *entities.PriceRange, limit int) ([]*entities.Product, error) {
	var out []*entities.Product
	for _, p := range r.products {
		if category != "" && p.Category != category {
			continue
		}
		if priceRange != nil {
			if priceRange.Min > 0 && p.Price < priceRange.Min {
				continue
			}
			if priceRange.Max > 0 && p.Price > priceRange.Max {
				continue
			}
		}
		clone := *p
		out = append(out, &clone)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

type fakeProjectRepo struct {
	requirements     []*entities.ProjectRequirement
	templateRequests []*entities.TemplateRequest
	advancedRequests []*entities.AdvancedTemplateRequest
	analyses         []*entities.ProcessAnalysis
}

func (r *fakeProjectRepo) CreateRequirement(_ context.Context, req *entities.ProjectRequirement) error {
	req.ID = uuid.NewString()
	req.CreatedAt = time.Now().UTC()
	clone := *req
	r.requirements = append(r.requirements, &clone)
	return nil
}

func (r *fakeProjectRepo) ListRequirementsByUser(_ context.Context, userID string, limit int) ([]*entities.ProjectRequirement, error) {
	var out []*entities.ProjectRequirement
	for _, req := range r.requirements {
		if req.UserID == userID {
			clone := *req
			out = append(out, &clone)
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) CreateTemplateRequest(_ context.Context, req *entities.TemplateRequest) error {
	clone := *req
	r.templateRequests = append(r.templateRequests, &clone)
	return nil
}

func (r *fakeProjectRepo) CreateAdvancedTemplateRequest(_ context.Context, req *entities.AdvancedTemplateRequest) error {
	clone := *req
	r.advancedRequests = append(r.advancedRequests, &clone)
	return nil
}

func (r *fakeProjectRepo) CreateProcessAnalysis(_ context.Context, analysis *entities.ProcessAnalysis) error {
	analysis.ID = uuid.NewString()
	clone := *analysis
	r.analyses = append(r.analyses, &clone)
	return nil
}
