package onboardingmock

import (
	"context"

	domain "investlink-backend/internal/domain/onboarding"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in only the function fields a test needs; nil getters return
// context.Canceled so an unexpected call fails loudly.
type Repo struct {
	CreateFn                  func(ctx context.Context, r *domain.Request) error
	GetByRequestIDFn          func(ctx context.Context, requestID string) (*domain.Request, error)
	GetByRequestIDForUpdateFn func(ctx context.Context, requestID string) (*domain.Request, error)
	GetByTokenFn              func(ctx context.Context, token string) (*domain.Request, error)
	GetActiveByEmailFn        func(ctx context.Context, email string) (*domain.Request, error)
	GetByLoginIDFn            func(ctx context.Context, loginID uint64) (*domain.Request, error)
	ListFn                    func(ctx context.Context, f domain.ListFilter) ([]domain.Request, int64, error)
	SaveFn                    func(ctx context.Context, r *domain.Request) error
}

func (m *Repo) Create(ctx context.Context, r *domain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.Request, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.Request, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByToken(ctx context.Context, token string) (*domain.Request, error) {
	if m.GetByTokenFn != nil {
		return m.GetByTokenFn(ctx, token)
	}
	return nil, context.Canceled
}
func (m *Repo) GetActiveByEmail(ctx context.Context, email string) (*domain.Request, error) {
	if m.GetActiveByEmailFn != nil {
		return m.GetActiveByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByLoginID(ctx context.Context, loginID uint64) (*domain.Request, error) {
	if m.GetByLoginIDFn != nil {
		return m.GetByLoginIDFn(ctx, loginID)
	}
	return nil, context.Canceled
}
func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Request, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, context.Canceled
}
func (m *Repo) Save(ctx context.Context, r *domain.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
