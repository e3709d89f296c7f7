package business

import "time"

type ListInput struct {
	Status     string
	IsActive   *bool
	CategoryID *uint64
	Search     string
	Page       int
	Limit      int
}

// UpdateInput is a typed partial update: nil fields are left untouched.
type UpdateInput struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Website       *string  `json:"website"`
	Address       *string  `json:"address"`
	City          *string  `json:"city"`
	FoundedYear   *int     `json:"founded_year"`
	EmployeeCount *int     `json:"employee_count"`
	AnnualRevenue *float64 `json:"annual_revenue"`
	FundingSought *float64 `json:"funding_sought"`
	PhoneNumber   *string  `json:"phone_number"`
	ContactEmail  *string  `json:"contact_email"`
	LogoPath      *string  `json:"logo_path"`
}

type BusinessDTO struct {
	BusinessID         string  `json:"business_id"`
	Name               string  `json:"name"`
	RegistrationNumber string  `json:"registration_number"`
	Category           string  `json:"category"`
	Description        string  `json:"description,omitempty"`
	Website            string  `json:"website,omitempty"`
	Address            string  `json:"address,omitempty"`
	City               string  `json:"city,omitempty"`
	FoundedYear        int     `json:"founded_year,omitempty"`
	EmployeeCount      int     `json:"employee_count,omitempty"`
	AnnualRevenue      float64 `json:"annual_revenue,omitempty"`
	FundingSought      float64 `json:"funding_sought,omitempty"`
	PhoneNumber        string  `json:"phone_number,omitempty"`
	ContactEmail       string  `json:"contact_email,omitempty"`
	LogoPath           string  `json:"logo_path,omitempty"`

	Status          string    `json:"status"`
	IsActive        bool      `json:"is_active"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	ViewCount       uint64    `json:"view_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// PublicDTO is the directory view: review metadata stays internal.
type PublicDTO struct {
	BusinessID    string  `json:"business_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Description   string  `json:"description,omitempty"`
	Website       string  `json:"website,omitempty"`
	City          string  `json:"city,omitempty"`
	FoundedYear   int     `json:"founded_year,omitempty"`
	EmployeeCount int     `json:"employee_count,omitempty"`
	FundingSought float64 `json:"funding_sought,omitempty"`
	LogoPath      string  `json:"logo_path,omitempty"`
	ViewCount     uint64  `json:"view_count"`
}

type RemovalDTO struct {
	RemovalID   string     `json:"removal_id"`
	BusinessID  string     `json:"business_id"`
	Reason      *string    `json:"reason,omitempty"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
}

type CategoryDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
