package businessmock

import (
	"context"

	domain "investlink-backend/internal/domain/business"
)

var (
	_ domain.Repository         = (*Repo)(nil)
	_ domain.LoginRepository    = (*LoginRepo)(nil)
	_ domain.CategoryRepository = (*CategoryRepo)(nil)
	_ domain.RemovalRepository  = (*RemovalRepo)(nil)
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in only the function fields a test needs; nil getters return
// context.Canceled so an unexpected call fails loudly.
type Repo struct {
	CreateFn                   func(ctx context.Context, b *domain.Business) error
	GetByIDFn                  func(ctx context.Context, id uint64) (*domain.Business, error)
	GetByBusinessIDFn          func(ctx context.Context, businessID string) (*domain.Business, error)
	GetByBusinessIDForUpdateFn func(ctx context.Context, businessID string) (*domain.Business, error)
	GetByLoginIDFn             func(ctx context.Context, loginID uint64) (*domain.Business, error)
	GetByRegistrationNumberFn  func(ctx context.Context, regNum string) (*domain.Business, error)
	ListFn                     func(ctx context.Context, f domain.ListFilter) ([]domain.Business, int64, error)
	IncrementViewCountFn       func(ctx context.Context, id uint64) error
	SaveFn                     func(ctx context.Context, b *domain.Business) error
}

func (m *Repo) Create(ctx context.Context, b *domain.Business) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Business, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByBusinessID(ctx context.Context, businessID string) (*domain.Business, error) {
	if m.GetByBusinessIDFn != nil {
		return m.GetByBusinessIDFn(ctx, businessID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByBusinessIDForUpdate(ctx context.Context, businessID string) (*domain.Business, error) {
	if m.GetByBusinessIDForUpdateFn != nil {
		return m.GetByBusinessIDForUpdateFn(ctx, businessID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByLoginID(ctx context.Context, loginID uint64) (*domain.Business, error) {
	if m.GetByLoginIDFn != nil {
		return m.GetByLoginIDFn(ctx, loginID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByRegistrationNumber(ctx context.Context, regNum string) (*domain.Business, error) {
	if m.GetByRegistrationNumberFn != nil {
		return m.GetByRegistrationNumberFn(ctx, regNum)
	}
	return nil, context.Canceled
}
func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Business, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, context.Canceled
}
func (m *Repo) IncrementViewCount(ctx context.Context, id uint64) error {
	if m.IncrementViewCountFn != nil {
		return m.IncrementViewCountFn(ctx, id)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, b *domain.Business) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

// LoginRepo mocks domain.LoginRepository.
type LoginRepo struct {
	CreateFn     func(ctx context.Context, l *domain.Login) error
	GetByEmailFn func(ctx context.Context, email string) (*domain.Login, error)
	GetByIDFn    func(ctx context.Context, id uint64) (*domain.Login, error)
	SaveFn       func(ctx context.Context, l *domain.Login) error
}

func (m *LoginRepo) Create(ctx context.Context, l *domain.Login) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}
func (m *LoginRepo) GetByEmail(ctx context.Context, email string) (*domain.Login, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}
func (m *LoginRepo) GetByID(ctx context.Context, id uint64) (*domain.Login, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *LoginRepo) Save(ctx context.Context, l *domain.Login) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

// CategoryRepo mocks domain.CategoryRepository.
type CategoryRepo struct {
	FindOrCreateFn func(ctx context.Context, name string) (*domain.Category, error)
	GetByIDFn      func(ctx context.Context, id uint64) (*domain.Category, error)
	ListFn         func(ctx context.Context) ([]domain.Category, error)
}

func (m *CategoryRepo) FindOrCreate(ctx context.Context, name string) (*domain.Category, error) {
	if m.FindOrCreateFn != nil {
		return m.FindOrCreateFn(ctx, name)
	}
	return nil, context.Canceled
}
func (m *CategoryRepo) GetByID(ctx context.Context, id uint64) (*domain.Category, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

// RemovalRepo mocks domain.RemovalRepository.
type RemovalRepo struct {
	CreateFn                 func(ctx context.Context, r *domain.RemovalRequest) error
	GetByRemovalIDFn         func(ctx context.Context, removalID string) (*domain.RemovalRequest, error)
	GetPendingByBusinessIDFn func(ctx context.Context, businessID uint64) (*domain.RemovalRequest, error)
	ListFn                   func(ctx context.Context, f domain.RemovalListFilter) ([]domain.RemovalRequest, int64, error)
	SaveFn                   func(ctx context.Context, r *domain.RemovalRequest) error
}

func (m *RemovalRepo) Create(ctx context.Context, r *domain.RemovalRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *RemovalRepo) GetByRemovalID(ctx context.Context, removalID string) (*domain.RemovalRequest, error) {
	if m.GetByRemovalIDFn != nil {
		return m.GetByRemovalIDFn(ctx, removalID)
	}
	return nil, context.Canceled
}
func (m *RemovalRepo) GetPendingByBusinessID(ctx context.Context, businessID uint64) (*domain.RemovalRequest, error) {
	if m.GetPendingByBusinessIDFn != nil {
		return m.GetPendingByBusinessIDFn(ctx, businessID)
	}
	return nil, context.Canceled
}
func (m *RemovalRepo) List(ctx context.Context, f domain.RemovalListFilter) ([]domain.RemovalRequest, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, context.Canceled
}
func (m *RemovalRepo) Save(ctx context.Context, r *domain.RemovalRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
