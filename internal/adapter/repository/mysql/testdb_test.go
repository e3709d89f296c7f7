package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type onboardingSQLite struct {
	ID                     uint64     `gorm:"primaryKey;column:id"`
	RequestID              string     `gorm:"size:32;column:request_id;uniqueIndex"`
	BusinessName           string     `gorm:"column:business_name"`
	Email                  string     `gorm:"column:email"`
	PhoneNumber            string     `gorm:"column:phone_number"`
	Message                string     `gorm:"column:message"`
	Status                 string     `gorm:"type:text;column:status"` // ← no enum
	OnboardingToken        *string    `gorm:"size:64;column:onboarding_token;uniqueIndex"`
	TokenExpiresAt         *time.Time `gorm:"column:token_expires_at"`
	RejectionReason        *string    `gorm:"column:rejection_reason"`
	CreatedBusinessLoginID *uint64    `gorm:"column:created_business_login_id"`
	SubmittedAt            time.Time  `gorm:"column:submitted_at"`
	ReviewedAt             *time.Time `gorm:"column:reviewed_at"`
	UpdatedAt              time.Time  `gorm:"column:updated_at"`
}

func (onboardingSQLite) TableName() string { return "onboarding_requests" }

type loginSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (loginSQLite) TableName() string { return "business_logins" }

type categorySQLite struct {
	ID   uint64 `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name"`
	Slug string `gorm:"column:slug;uniqueIndex"`
}

func (categorySQLite) TableName() string { return "categories" }

type businessSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	BusinessID         string         `gorm:"size:32;column:business_id;uniqueIndex"`
	LoginID            uint64         `gorm:"column:login_id;uniqueIndex"`
	Name               string         `gorm:"column:name"`
	RegistrationNumber string         `gorm:"column:registration_number;uniqueIndex"`
	CategoryID         uint64         `gorm:"column:category_id"`
	Description        string         `gorm:"column:description"`
	Website            string         `gorm:"column:website"`
	Address            string         `gorm:"column:address"`
	City               string         `gorm:"column:city"`
	FoundedYear        int            `gorm:"column:founded_year"`
	EmployeeCount      int            `gorm:"column:employee_count"`
	AnnualRevenue      float64        `gorm:"column:annual_revenue"`
	FundingSought      float64        `gorm:"column:funding_sought"`
	PhoneNumber        string         `gorm:"column:phone_number"`
	ContactEmail       string         `gorm:"column:contact_email"`
	LogoPath           string         `gorm:"column:logo_path"`
	Status             string         `gorm:"type:text;column:status"` // ← no enum
	IsActive           bool           `gorm:"column:is_active"`
	RejectionReason    *string        `gorm:"column:rejection_reason"`
	ViewCount          uint64         `gorm:"column:view_count"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (businessSQLite) TableName() string { return "businesses" }

type removalSQLite struct {
	ID          uint64     `gorm:"primaryKey;column:id"`
	RemovalID   string     `gorm:"size:32;column:removal_id;uniqueIndex"`
	BusinessID  uint64     `gorm:"column:business_id"`
	Reason      *string    `gorm:"column:reason"`
	Status      string     `gorm:"type:text;column:status"` // ← no enum
	RequestedAt time.Time  `gorm:"column:requested_at"`
	ReviewedAt  *time.Time `gorm:"column:reviewed_at"`
}

func (removalSQLite) TableName() string { return "business_removal_requests" }

type submissionSQLite struct {
	ID              uint64    `gorm:"primaryKey;column:id"`
	SubmissionID    string    `gorm:"size:32;column:submission_id;uniqueIndex"`
	BusinessID      uint64    `gorm:"column:business_id"`
	InvestorName    string    `gorm:"column:investor_name"`
	PhoneNumber     string    `gorm:"column:phone_number"`
	Email           string    `gorm:"column:email"`
	Message         string    `gorm:"column:message"`
	HasConsent      bool      `gorm:"column:has_consent"`
	Contacted       bool      `gorm:"column:contacted"`
	FollowUpRemarks *string   `gorm:"column:follow_up_remarks"`
	Status          string    `gorm:"type:text;column:status"` // ← no enum
	Source          string    `gorm:"column:source"`
	FollowUpSeq     uint32    `gorm:"column:follow_up_seq"`
	SubmittedAt     time.Time `gorm:"column:submitted_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (submissionSQLite) TableName() string { return "interest_submissions" }

type followUpSQLite struct {
	ID               uint64     `gorm:"primaryKey;column:id"`
	SubmissionID     uint64     `gorm:"column:submission_id"`
	FollowUpNumber   int        `gorm:"column:follow_up_number"`
	Remarks          string     `gorm:"column:remarks"`
	NextFollowUpDate *time.Time `gorm:"column:next_follow_up_date"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (followUpSQLite) TableName() string { return "interest_follow_ups" }

type leadSourceSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	BusinessID uint64    `gorm:"column:business_id;uniqueIndex:ux_lead_sources_business_name"`
	Name       string    `gorm:"column:name;uniqueIndex:ux_lead_sources_business_name"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (leadSourceSQLite) TableName() string { return "lead_sources" }

type adminSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (adminSQLite) TableName() string { return "admin_users" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, NOT the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&onboardingSQLite{},
		&loginSQLite{},
		&categorySQLite{},
		&businessSQLite{},
		&removalSQLite{},
		&submissionSQLite{},
		&followUpSQLite{},
		&leadSourceSQLite{},
		&adminSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
