package onboarding

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusContacted Status = "contacted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

var (
	ErrNotFound          = errors.New("onboarding request not found")
	ErrEmailActive       = errors.New("an active onboarding request already exists for this email")
	ErrAlreadyApproved   = errors.New("request already approved")
	ErrInvalidTransition = errors.New("invalid onboarding status transition")
	ErrReasonRequired    = errors.New("rejection reason is required")
	ErrTokenInvalid      = errors.New("invalid registration token")
	ErrTokenExpired      = errors.New("token has expired")
	ErrTokenUsed         = errors.New("token has already been used")
)

// Request is the initial inquiry a prospective business submits before
// any account exists. The token fields are populated on admin approval
// and cleared once registration consumes them.
type Request struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	RequestID string `gorm:"column:request_id;type:char(32);not null;uniqueIndex:ux_onboarding_request_id"`

	BusinessName string `gorm:"column:business_name;size:255;not null"`
	Email        string `gorm:"column:email;size:255;not null;index:idx_onboarding_email"`
	PhoneNumber  string `gorm:"column:phone_number;size:32;not null"`
	Message      string `gorm:"column:message;type:text"`

	Status Status `gorm:"column:status;type:enum('pending','contacted','approved','rejected');default:'pending';index:idx_onboarding_status"`

	OnboardingToken *string    `gorm:"column:onboarding_token;type:char(64);uniqueIndex:ux_onboarding_token"`
	TokenExpiresAt  *time.Time `gorm:"column:token_expires_at"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text"`

	// Set when registration completes; doubles as the consumed marker.
	CreatedBusinessLoginID *uint64 `gorm:"column:created_business_login_id;index:idx_onboarding_login"`

	SubmittedAt time.Time  `gorm:"column:submitted_at;autoCreateTime"`
	ReviewedAt  *time.Time `gorm:"column:reviewed_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Request) TableName() string { return "onboarding_requests" }

// Active reports whether the request still occupies its email: anything
// not yet rejected and not yet consumed by a completed registration.
func (r *Request) Active() bool {
	return r.Status != StatusRejected && r.CreatedBusinessLoginID == nil
}

// ValidateToken applies the full token gate: approved status, token
// present, not expired at now, not yet consumed.
func (r *Request) ValidateToken(now time.Time) error {
	if r.Status != StatusApproved || r.OnboardingToken == nil {
		return ErrTokenInvalid
	}
	if r.CreatedBusinessLoginID != nil {
		return ErrTokenUsed
	}
	if r.TokenExpiresAt == nil || now.After(*r.TokenExpiresAt) {
		return ErrTokenExpired
	}
	return nil
}
