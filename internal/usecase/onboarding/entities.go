package onboarding

import "time"

type SubmitInput struct {
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	Message      string `json:"message"`
}

type ListInput struct {
	Status string
	Page   int
	Limit  int
}

type RequestDTO struct {
	RequestID       string     `json:"request_id"`
	BusinessName    string     `json:"business_name"`
	Email           string     `json:"email"`
	PhoneNumber     string     `json:"phone_number"`
	Message         string     `json:"message,omitempty"`
	Status          string     `json:"status"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
}

// ApprovalDTO is returned to the admin; the raw token is included so the
// registration link can be surfaced even if email delivery fails.
type ApprovalDTO struct {
	RequestDTO
	OnboardingToken string    `json:"onboarding_token"`
	TokenExpiresAt  time.Time `json:"token_expires_at"`
}

type TokenInfoDTO struct {
	BusinessName   string    `json:"business_name"`
	Email          string    `json:"email"`
	TokenExpiresAt time.Time `json:"token_expires_at"`
}

type RegisterInput struct {
	Token              string  `json:"token"`
	Password           string  `json:"password"`
	Name               string  `json:"name"`
	RegistrationNumber string  `json:"registration_number"`
	Category           string  `json:"category"`
	Description        string  `json:"description"`
	Website            string  `json:"website"`
	Address            string  `json:"address"`
	City               string  `json:"city"`
	FoundedYear        int     `json:"founded_year"`
	EmployeeCount      int     `json:"employee_count"`
	AnnualRevenue      float64 `json:"annual_revenue"`
	FundingSought      float64 `json:"funding_sought"`
	PhoneNumber        string  `json:"phone_number"`
	ContactEmail       string  `json:"contact_email"`
}

type RegistrationDTO struct {
	BusinessID string `json:"business_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Status     string `json:"status"`
}
