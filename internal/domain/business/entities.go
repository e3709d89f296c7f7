package business

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var (
	ErrNotFound               = errors.New("business not found")
	ErrLoginNotFound          = errors.New("business login not found")
	ErrEmailTaken             = errors.New("email is already registered")
	ErrRegistrationNumTaken   = errors.New("registration number is already registered")
	ErrAlreadyApproved        = errors.New("business already approved")
	ErrAlreadyRejected        = errors.New("business already rejected")
	ErrReasonRequired         = errors.New("rejection reason is required")
	ErrRemovalPending         = errors.New("a removal request is already pending")
	ErrRemovalNotFound        = errors.New("removal request not found")
	ErrRemovalAlreadyReviewed = errors.New("removal request already reviewed")
)

// Login is the credential record for a business account, created exactly
// once per completed registration.
type Login struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex:ux_business_logins_email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null"`
	IsActive     bool      `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Login) TableName() string { return "business_logins" }

type Category struct {
	ID   uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:128;not null"`
	Slug string `gorm:"column:slug;size:128;not null;uniqueIndex:ux_categories_slug"`
}

func (Category) TableName() string { return "categories" }

// Business is the published profile. Status is the admin review gate;
// IsActive is a visibility switch toggled independently of it.
type Business struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	BusinessID string `gorm:"column:business_id;type:char(32);not null;uniqueIndex:ux_businesses_business_id"`
	LoginID    uint64 `gorm:"column:login_id;not null;uniqueIndex:ux_businesses_login"`

	Name               string `gorm:"column:name;size:255;not null"`
	RegistrationNumber string `gorm:"column:registration_number;size:64;not null;uniqueIndex:ux_businesses_reg_num"`
	CategoryID         uint64 `gorm:"column:category_id;not null;index:idx_businesses_category"`

	Description   string  `gorm:"column:description;type:text"`
	Website       string  `gorm:"column:website;size:255"`
	Address       string  `gorm:"column:address;size:255"`
	City          string  `gorm:"column:city;size:128"`
	FoundedYear   int     `gorm:"column:founded_year"`
	EmployeeCount int     `gorm:"column:employee_count"`
	AnnualRevenue float64 `gorm:"column:annual_revenue;type:decimal(18,2)"`
	FundingSought float64 `gorm:"column:funding_sought;type:decimal(18,2)"`
	PhoneNumber   string  `gorm:"column:phone_number;size:32"`
	ContactEmail  string  `gorm:"column:contact_email;size:255"`
	LogoPath      string  `gorm:"column:logo_path;size:255"`

	Status          Status  `gorm:"column:status;type:enum('pending','approved','rejected');default:'pending';index:idx_businesses_status"`
	IsActive        bool    `gorm:"column:is_active;default:true"`
	RejectionReason *string `gorm:"column:rejection_reason;type:text"`
	ViewCount       uint64  `gorm:"column:view_count;default:0"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Business) TableName() string { return "businesses" }

// Published reports whether the profile is visible in the public
// directory and can receive interest submissions.
func (b *Business) Published() bool {
	return b.Status == StatusApproved && b.IsActive
}

type RemovalStatus string

const (
	RemovalPending  RemovalStatus = "pending"
	RemovalApproved RemovalStatus = "approved"
	RemovalRejected RemovalStatus = "rejected"
)

type RemovalRequest struct {
	ID          uint64        `gorm:"column:id;primaryKey;autoIncrement"`
	RemovalID   string        `gorm:"column:removal_id;type:char(32);not null;uniqueIndex:ux_removal_requests_removal_id"`
	BusinessID  uint64        `gorm:"column:business_id;not null;index:idx_removal_requests_business"`
	Reason      *string       `gorm:"column:reason;type:text"`
	Status      RemovalStatus `gorm:"column:status;type:enum('pending','approved','rejected');default:'pending'"`
	RequestedAt time.Time     `gorm:"column:requested_at;autoCreateTime"`
	ReviewedAt  *time.Time    `gorm:"column:reviewed_at"`
}

func (RemovalRequest) TableName() string { return "business_removal_requests" }
