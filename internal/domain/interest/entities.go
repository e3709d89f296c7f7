package interest

import (
	"errors"
	"time"
)

type Status string

const (
	StatusNotContacted  Status = "not_contacted"
	StatusInterested    Status = "interested"
	StatusNotInterested Status = "not_interested"
)

var (
	ErrNotFound             = errors.New("interest submission not found")
	ErrFollowUpNotFound     = errors.New("follow-up not found")
	ErrBusinessNotPublished = errors.New("business is not accepting interest submissions")
	ErrConsentRequired      = errors.New("consent is required")
	ErrRemarksRequired      = errors.New("remarks are required")
	ErrSourceExists         = errors.New("lead source already exists")
	ErrSourceNotFound       = errors.New("lead source not found")
	ErrDefaultSourceLocked  = errors.New("default lead sources cannot be deleted")
)

// DefaultSources is the fixed set every business starts with. Custom
// per-business entries are layered on top; collisions are case-sensitive.
var DefaultSources = []string{"Website", "Referral", "Social Media", "Event", "Other"}

func IsDefaultSource(name string) bool {
	for _, s := range DefaultSources {
		if s == name {
			return true
		}
	}
	return false
}

// Submission is an investor's expressed interest in one business,
// trackable through the contact lifecycle. FollowUpSeq only ever grows,
// so follow-up numbers are never reused after a delete.
type Submission struct {
	ID           uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	SubmissionID string `gorm:"column:submission_id;type:char(32);not null;uniqueIndex:ux_interests_submission_id"`
	BusinessID   uint64 `gorm:"column:business_id;not null;index:idx_interests_business"`

	InvestorName string `gorm:"column:investor_name;size:255;not null"`
	PhoneNumber  string `gorm:"column:phone_number;size:32;not null"`
	Email        string `gorm:"column:email;size:255;not null"`
	Message      string `gorm:"column:message;type:text"`
	HasConsent   bool   `gorm:"column:has_consent;not null"`

	Contacted       bool    `gorm:"column:contacted;default:false"`
	FollowUpRemarks *string `gorm:"column:follow_up_remarks;type:text"`
	Status          Status  `gorm:"column:status;type:enum('not_contacted','interested','not_interested');default:'not_contacted';index:idx_interests_status"`
	Source          string  `gorm:"column:source;size:64;default:'Website'"`
	FollowUpSeq     uint32  `gorm:"column:follow_up_seq;default:0"`

	SubmittedAt time.Time `gorm:"column:submitted_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Submission) TableName() string { return "interest_submissions" }

// FollowUp is one dated, numbered note on a submission. The ledger is
// append-only; siblings are never renumbered.
type FollowUp struct {
	ID               uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	SubmissionID     uint64     `gorm:"column:submission_id;not null;index:idx_follow_ups_submission"`
	FollowUpNumber   int        `gorm:"column:follow_up_number;not null"`
	Remarks          string     `gorm:"column:remarks;type:text;not null"`
	NextFollowUpDate *time.Time `gorm:"column:next_follow_up_date;index:idx_follow_ups_next_date"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (FollowUp) TableName() string { return "interest_follow_ups" }

// LeadSource is a custom per-business origin label. Defaults are not
// stored; they are merged in at read time.
type LeadSource struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	BusinessID uint64    `gorm:"column:business_id;not null;uniqueIndex:ux_lead_sources_business_name"`
	Name       string    `gorm:"column:name;size:64;not null;uniqueIndex:ux_lead_sources_business_name"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (LeadSource) TableName() string { return "lead_sources" }
