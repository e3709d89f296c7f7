package business

import "context"

type ListFilter struct {
	Status     *Status
	IsActive   *bool
	CategoryID *uint64
	// Search matches against the business name (public directory).
	Search string
	Page   int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, b *Business) error
	GetByID(ctx context.Context, id uint64) (*Business, error)
	GetByBusinessID(ctx context.Context, businessID string) (*Business, error)
	GetByBusinessIDForUpdate(ctx context.Context, businessID string) (*Business, error)
	GetByLoginID(ctx context.Context, loginID uint64) (*Business, error)
	GetByRegistrationNumber(ctx context.Context, regNum string) (*Business, error)
	List(ctx context.Context, f ListFilter) ([]Business, int64, error)
	// IncrementViewCount bumps view_count without touching updated_at.
	IncrementViewCount(ctx context.Context, id uint64) error
	Save(ctx context.Context, b *Business) error
}

type LoginRepository interface {
	Create(ctx context.Context, l *Login) error
	GetByEmail(ctx context.Context, email string) (*Login, error)
	GetByID(ctx context.Context, id uint64) (*Login, error)
	Save(ctx context.Context, l *Login) error
}

type CategoryRepository interface {
	// FindOrCreate resolves a category by slug atomically, creating it on
	// first use. Safe under concurrent first-time creation.
	FindOrCreate(ctx context.Context, name string) (*Category, error)
	GetByID(ctx context.Context, id uint64) (*Category, error)
	List(ctx context.Context) ([]Category, error)
}

type RemovalListFilter struct {
	Status *RemovalStatus
	Page   int
	Limit  int
}

type RemovalRepository interface {
	Create(ctx context.Context, r *RemovalRequest) error
	GetByRemovalID(ctx context.Context, removalID string) (*RemovalRequest, error)
	// GetPendingByBusinessID returns the open request for a business, or
	// gorm.ErrRecordNotFound.
	GetPendingByBusinessID(ctx context.Context, businessID uint64) (*RemovalRequest, error)
	List(ctx context.Context, f RemovalListFilter) ([]RemovalRequest, int64, error)
	Save(ctx context.Context, r *RemovalRequest) error
}
