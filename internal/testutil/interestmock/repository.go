package interestmock

import (
	"context"
	"time"

	domain "investlink-backend/internal/domain/interest"
)

var (
	_ domain.SubmissionRepository = (*SubmissionRepo)(nil)
	_ domain.FollowUpRepository   = (*FollowUpRepo)(nil)
	_ domain.LeadSourceRepository = (*LeadSourceRepo)(nil)
)

// SubmissionRepo is a function-backed mock of domain.SubmissionRepository.
// Nil getters return context.Canceled so an unexpected call fails loudly.
type SubmissionRepo struct {
	CreateFn                     func(ctx context.Context, s *domain.Submission) error
	GetBySubmissionIDFn          func(ctx context.Context, submissionID string) (*domain.Submission, error)
	GetBySubmissionIDForUpdateFn func(ctx context.Context, submissionID string) (*domain.Submission, error)
	ListFn                       func(ctx context.Context, f domain.ListFilter) ([]domain.Submission, int64, error)
	ListDueBetweenFn             func(ctx context.Context, businessID *uint64, from, to time.Time) ([]domain.Submission, error)
	SaveFn                       func(ctx context.Context, s *domain.Submission) error
}

func (m *SubmissionRepo) Create(ctx context.Context, s *domain.Submission) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}
func (m *SubmissionRepo) GetBySubmissionID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	if m.GetBySubmissionIDFn != nil {
		return m.GetBySubmissionIDFn(ctx, submissionID)
	}
	return nil, context.Canceled
}
func (m *SubmissionRepo) GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*domain.Submission, error) {
	if m.GetBySubmissionIDForUpdateFn != nil {
		return m.GetBySubmissionIDForUpdateFn(ctx, submissionID)
	}
	return nil, context.Canceled
}
func (m *SubmissionRepo) List(ctx context.Context, f domain.ListFilter) ([]domain.Submission, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, context.Canceled
}
func (m *SubmissionRepo) ListDueBetween(ctx context.Context, businessID *uint64, from, to time.Time) ([]domain.Submission, error) {
	if m.ListDueBetweenFn != nil {
		return m.ListDueBetweenFn(ctx, businessID, from, to)
	}
	return nil, context.Canceled
}
func (m *SubmissionRepo) Save(ctx context.Context, s *domain.Submission) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

// FollowUpRepo mocks domain.FollowUpRepository.
type FollowUpRepo struct {
	CreateFn           func(ctx context.Context, f *domain.FollowUp) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.FollowUp, error)
	ListBySubmissionFn func(ctx context.Context, submissionID uint64) ([]domain.FollowUp, error)
	SaveFn             func(ctx context.Context, f *domain.FollowUp) error
	DeleteFn           func(ctx context.Context, id uint64) error
}

func (m *FollowUpRepo) Create(ctx context.Context, f *domain.FollowUp) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	return nil
}
func (m *FollowUpRepo) GetByID(ctx context.Context, id uint64) (*domain.FollowUp, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *FollowUpRepo) ListBySubmission(ctx context.Context, submissionID uint64) ([]domain.FollowUp, error) {
	if m.ListBySubmissionFn != nil {
		return m.ListBySubmissionFn(ctx, submissionID)
	}
	return nil, context.Canceled
}
func (m *FollowUpRepo) Save(ctx context.Context, f *domain.FollowUp) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, f)
	}
	return nil
}
func (m *FollowUpRepo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// LeadSourceRepo mocks domain.LeadSourceRepository.
type LeadSourceRepo struct {
	CreateFn         func(ctx context.Context, s *domain.LeadSource) error
	GetByIDFn        func(ctx context.Context, id uint64) (*domain.LeadSource, error)
	ListByBusinessFn func(ctx context.Context, businessID uint64) ([]domain.LeadSource, error)
	DeleteFn         func(ctx context.Context, id uint64) error
}

func (m *LeadSourceRepo) Create(ctx context.Context, s *domain.LeadSource) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}
func (m *LeadSourceRepo) GetByID(ctx context.Context, id uint64) (*domain.LeadSource, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *LeadSourceRepo) ListByBusiness(ctx context.Context, businessID uint64) ([]domain.LeadSource, error) {
	if m.ListByBusinessFn != nil {
		return m.ListByBusinessFn(ctx, businessID)
	}
	return nil, context.Canceled
}
func (m *LeadSourceRepo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
