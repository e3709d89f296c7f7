package interest

import (
	"context"
	"time"
)

type ListFilter struct {
	// BusinessID scopes to one business; nil means admin-wide.
	BusinessID *uint64
	Status     *Status
	Contacted  *bool
	Page       int
	Limit      int
}

type SubmissionRepository interface {
	Create(ctx context.Context, s *Submission) error
	GetBySubmissionID(ctx context.Context, submissionID string) (*Submission, error)
	GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*Submission, error)
	List(ctx context.Context, f ListFilter) ([]Submission, int64, error)
	// ListDueBetween returns submissions having at least one follow-up
	// whose next_follow_up_date falls in [from, to).
	ListDueBetween(ctx context.Context, businessID *uint64, from, to time.Time) ([]Submission, error)
	Save(ctx context.Context, s *Submission) error
}

type FollowUpRepository interface {
	Create(ctx context.Context, f *FollowUp) error
	GetByID(ctx context.Context, id uint64) (*FollowUp, error)
	ListBySubmission(ctx context.Context, submissionID uint64) ([]FollowUp, error)
	Save(ctx context.Context, f *FollowUp) error
	Delete(ctx context.Context, id uint64) error
}

type LeadSourceRepository interface {
	Create(ctx context.Context, s *LeadSource) error
	GetByID(ctx context.Context, id uint64) (*LeadSource, error)
	// Collision checks are done case-sensitively in the usecase over the
	// listed set; mysql's default collation would fold case here.
	ListByBusiness(ctx context.Context, businessID uint64) ([]LeadSource, error)
	Delete(ctx context.Context, id uint64) error
}
