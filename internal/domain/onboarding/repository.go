package onboarding

import "context"

type ListFilter struct {
	Status *Status
	Page   int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, r *Request) error
	GetByRequestID(ctx context.Context, requestID string) (*Request, error)
	// Row-locked variant for use inside a transaction.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*Request, error)
	GetByToken(ctx context.Context, token string) (*Request, error)
	// GetActiveByEmail returns a non-rejected, non-consumed request for
	// the email, or gorm.ErrRecordNotFound.
	GetActiveByEmail(ctx context.Context, email string) (*Request, error)
	// GetByLoginID locates the request that created a business login.
	GetByLoginID(ctx context.Context, loginID uint64) (*Request, error)
	List(ctx context.Context, f ListFilter) ([]Request, int64, error)
	Save(ctx context.Context, r *Request) error
}
