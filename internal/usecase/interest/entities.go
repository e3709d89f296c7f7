package interest

import "time"

type SubmitInput struct {
	InvestorName string `json:"investor_name"`
	PhoneNumber  string `json:"phone_number"`
	Email        string `json:"email"`
	Message      string `json:"message"`
	HasConsent   bool   `json:"has_consent"`
	Source       string `json:"source"`
}

type ListInput struct {
	Status    string
	Contacted *bool
	Page      int
	Limit     int
}

// UpdateInput is a typed partial update. Setting Status to anything but
// not_contacted forces Contacted to true regardless of the explicit
// Contacted value (one-way coupling).
type UpdateInput struct {
	Contacted       *bool   `json:"contacted"`
	FollowUpRemarks *string `json:"follow_up_remarks"`
	Status          *string `json:"status"`
	Source          *string `json:"source"`
}

type SubmissionDTO struct {
	SubmissionID    string    `json:"submission_id"`
	BusinessID      string    `json:"business_id"`
	InvestorName    string    `json:"investor_name"`
	PhoneNumber     string    `json:"phone_number"`
	Email           string    `json:"email"`
	Message         string    `json:"message,omitempty"`
	HasConsent      bool      `json:"has_consent"`
	Contacted       bool      `json:"contacted"`
	FollowUpRemarks *string   `json:"follow_up_remarks,omitempty"`
	Status          string    `json:"status"`
	Source          string    `json:"source"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

type FollowUpInput struct {
	Remarks          string     `json:"remarks"`
	NextFollowUpDate *time.Time `json:"next_follow_up_date"`
}

type FollowUpDTO struct {
	ID               uint64     `json:"id"`
	FollowUpNumber   int        `json:"follow_up_number"`
	Remarks          string     `json:"remarks"`
	NextFollowUpDate *time.Time `json:"next_follow_up_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type LeadSourceDTO struct {
	ID        uint64 `json:"id,omitempty"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}
