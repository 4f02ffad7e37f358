package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createFileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE files (
		id TEXT PRIMARY KEY,
		filename TEXT NOT NULL,
		content TEXT NOT NULL,
		content_type TEXT NOT NULL,
		size INTEGER NOT NULL,
		user_id TEXT NOT NULL,
		tags TEXT DEFAULT '[]',
		is_public BOOLEAN NOT NULL DEFAULT 0,
		metadata TEXT DEFAULT '{}',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createOrderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		status TEXT NOT NULL,
		total_amount REAL,
		payment_method TEXT DEFAULT '{}',
		shipping_address TEXT DEFAULT '{}',
		tracking_number TEXT,
		delivered_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createConsentRecordTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE consent_records (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		consent_type TEXT NOT NULL,
		consent_given BOOLEAN NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createDataRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE data_requests (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		request_type TEXT NOT NULL,
		status TEXT NOT NULL,
		request_date DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAuditLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE audit_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		action TEXT NOT NULL,
		details TEXT DEFAULT '{}',
		gdpr_compliant BOOLEAN NOT NULL DEFAULT 1,
		timestamp DATETIME,
		created_at DATETIME
	);`)
}

func createAnonymousAnalyticsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE anonymous_analytics (
		id TEXT PRIMARY KEY,
		action TEXT NOT NULL,
		details TEXT DEFAULT '{}',
		privacy_preserving BOOLEAN NOT NULL DEFAULT 1,
		timestamp DATETIME,
		created_at DATETIME
	);`)
}

func createComplianceReportTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE compliance_reports (
		id TEXT PRIMARY KEY,
		report_type TEXT NOT NULL,
		start_date DATETIME NOT NULL,
		end_date DATETIME NOT NULL,
		metrics TEXT DEFAULT '{}',
		content TEXT,
		content_type TEXT NOT NULL,
		size INTEGER NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
}

func createComplianceFileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE compliance_files (
		id TEXT PRIMARY KEY,
		file_name TEXT NOT NULL,
		content_type TEXT NOT NULL,
		content TEXT,
		user_id TEXT,
		request_id TEXT,
		expires_at DATETIME,
		created_at DATETIME
	);`)
}

func createUserRegistrationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE user_registrations (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		created_at DATETIME
	);`)
}

func createProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		category TEXT NOT NULL,
		price REAL NOT NULL,
		tags TEXT DEFAULT '[]',
		in_stock BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProjectRequirementTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE project_requirements (
		id TEXT PRIMARY KEY,
		project_name TEXT NOT NULL,
		project_type TEXT NOT NULL,
		complexity TEXT NOT NULL,
		tech_stack TEXT,
		deadline_weeks INTEGER,
		suggested_architecture TEXT,
		complexity_details TEXT DEFAULT '{}',
		phases TEXT DEFAULT '[]',
		risks TEXT DEFAULT '[]',
		estimated_cost_range TEXT DEFAULT '{}',
		recommended_team_structure TEXT DEFAULT '[]',
		text_plan TEXT,
		plan_filename TEXT,
		user_id TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createTemplateRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE template_requests (
		id TEXT PRIMARY KEY,
		use_case TEXT NOT NULL,
		templates TEXT DEFAULT '[]',
		user_id TEXT,
		created_at DATETIME
	);`)
}

func createAdvancedTemplateRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE advanced_template_requests (
		id TEXT PRIMARY KEY,
		base_template TEXT NOT NULL,
		style TEXT NOT NULL,
		enhanced_template TEXT,
		user_id TEXT,
		created_at DATETIME
	);`)
}

func createProcessAnalysisTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE process_analyses (
		id TEXT PRIMARY KEY,
		process_overview TEXT DEFAULT '{}',
		strategy TEXT DEFAULT '{}',
		phases TEXT DEFAULT '{}',
		risk_assessment TEXT DEFAULT '{}',
		success TEXT DEFAULT '{}',
		next_steps TEXT DEFAULT '[]',
		current_steps TEXT,
		stakeholders TEXT,
		frequency TEXT,
		pain_points TEXT,
		user_id TEXT NOT NULL,
		created_at DATETIME
	);`)
}
