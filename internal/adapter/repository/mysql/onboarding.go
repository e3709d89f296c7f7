package mysql

import (
	"context"

	onboardingDomain "investlink-backend/internal/domain/onboarding"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OnboardingRepository struct{ db *gorm.DB }

func NewOnboardingRepository(db *gorm.DB) *OnboardingRepository {
	return &OnboardingRepository{db: db}
}

func (r *OnboardingRepository) Create(ctx context.Context, req *onboardingDomain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *OnboardingRepository) Save(ctx context.Context, req *onboardingDomain.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *OnboardingRepository) GetByRequestID(ctx context.Context, requestID string) (*onboardingDomain.Request, error) {
	var out onboardingDomain.Request
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *OnboardingRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*onboardingDomain.Request, error) {
	var out onboardingDomain.Request
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		First(&out)
	return &out, res.Error
}

func (r *OnboardingRepository) GetByToken(ctx context.Context, token string) (*onboardingDomain.Request, error) {
	var out onboardingDomain.Request
	res := r.db.WithContext(ctx).Where("onboarding_token = ?", token).First(&out)
	return &out, res.Error
}

func (r *OnboardingRepository) GetActiveByEmail(ctx context.Context, email string) (*onboardingDomain.Request, error) {
	var out onboardingDomain.Request
	res := r.db.WithContext(ctx).
		Where("email = ? AND status <> ? AND created_business_login_id IS NULL",
			email, onboardingDomain.StatusRejected).
		Order("submitted_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *OnboardingRepository) GetByLoginID(ctx context.Context, loginID uint64) (*onboardingDomain.Request, error) {
	var out onboardingDomain.Request
	res := r.db.WithContext(ctx).Where("created_business_login_id = ?", loginID).First(&out)
	return &out, res.Error
}

func (r *OnboardingRepository) List(ctx context.Context, f onboardingDomain.ListFilter) ([]onboardingDomain.Request, int64, error) {
	q := r.db.WithContext(ctx).Model(&onboardingDomain.Request{})
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []onboardingDomain.Request
	err := q.Order("submitted_at DESC, id DESC").
		Scopes(paginate(f.Page, f.Limit)).
		Find(&items).Error
	return items, total, err
}
