package mysql

import (
	"context"
	"strings"

	businessDomain "investlink-backend/internal/domain/business"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BusinessRepository struct{ db *gorm.DB }

func NewBusinessRepository(db *gorm.DB) *BusinessRepository { return &BusinessRepository{db: db} }

func (r *BusinessRepository) Create(ctx context.Context, b *businessDomain.Business) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BusinessRepository) Save(ctx context.Context, b *businessDomain.Business) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BusinessRepository) GetByID(ctx context.Context, id uint64) (*businessDomain.Business, error) {
	var out businessDomain.Business
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *BusinessRepository) GetByBusinessID(ctx context.Context, businessID string) (*businessDomain.Business, error) {
	var out businessDomain.Business
	res := r.db.WithContext(ctx).Where("business_id = ?", businessID).First(&out)
	return &out, res.Error
}

func (r *BusinessRepository) GetByBusinessIDForUpdate(ctx context.Context, businessID string) (*businessDomain.Business, error) {
	var out businessDomain.Business
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("business_id = ?", businessID).
		First(&out)
	return &out, res.Error
}

func (r *BusinessRepository) GetByLoginID(ctx context.Context, loginID uint64) (*businessDomain.Business, error) {
	var out businessDomain.Business
	res := r.db.WithContext(ctx).Where("login_id = ?", loginID).First(&out)
	return &out, res.Error
}

func (r *BusinessRepository) GetByRegistrationNumber(ctx context.Context, regNum string) (*businessDomain.Business, error) {
	var out businessDomain.Business
	res := r.db.WithContext(ctx).Where("registration_number = ?", regNum).First(&out)
	return &out, res.Error
}

func (r *BusinessRepository) List(ctx context.Context, f businessDomain.ListFilter) ([]businessDomain.Business, int64, error) {
	q := r.db.WithContext(ctx).Model(&businessDomain.Business{})
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q = q.Where("name LIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []businessDomain.Business
	err := q.Order("created_at DESC, id DESC").
		Scopes(paginate(f.Page, f.Limit)).
		Find(&items).Error
	return items, total, err
}

func (r *BusinessRepository) IncrementViewCount(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).
		Model(&businessDomain.Business{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

type LoginRepository struct{ db *gorm.DB }

func NewLoginRepository(db *gorm.DB) *LoginRepository { return &LoginRepository{db: db} }

func (r *LoginRepository) Create(ctx context.Context, l *businessDomain.Login) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoginRepository) Save(ctx context.Context, l *businessDomain.Login) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoginRepository) GetByEmail(ctx context.Context, email string) (*businessDomain.Login, error) {
	var out businessDomain.Login
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *LoginRepository) GetByID(ctx context.Context, id uint64) (*businessDomain.Login, error) {
	var out businessDomain.Login
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

type CategoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{db: db} }

// Slugify lowercases and hyphenates a category name into its unique key.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), "-")
	return s
}

func (r *CategoryRepository) FindOrCreate(ctx context.Context, name string) (*businessDomain.Category, error) {
	slug := Slugify(name)
	var out businessDomain.Category
	// FirstOrCreate on the unique slug; a concurrent first-time create
	// loses the race at the constraint, not in application code.
	res := r.db.WithContext(ctx).
		Where(businessDomain.Category{Slug: slug}).
		Attrs(businessDomain.Category{Name: strings.TrimSpace(name)}).
		FirstOrCreate(&out)
	return &out, res.Error
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint64) (*businessDomain.Category, error) {
	var out businessDomain.Category
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *CategoryRepository) List(ctx context.Context) ([]businessDomain.Category, error) {
	var out []businessDomain.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

type RemovalRepository struct{ db *gorm.DB }

func NewRemovalRepository(db *gorm.DB) *RemovalRepository { return &RemovalRepository{db: db} }

func (r *RemovalRepository) Create(ctx context.Context, rr *businessDomain.RemovalRequest) error {
	return r.db.WithContext(ctx).Create(rr).Error
}

func (r *RemovalRepository) Save(ctx context.Context, rr *businessDomain.RemovalRequest) error {
	return r.db.WithContext(ctx).Save(rr).Error
}

func (r *RemovalRepository) GetByRemovalID(ctx context.Context, removalID string) (*businessDomain.RemovalRequest, error) {
	var out businessDomain.RemovalRequest
	res := r.db.WithContext(ctx).Where("removal_id = ?", removalID).First(&out)
	return &out, res.Error
}

func (r *RemovalRepository) GetPendingByBusinessID(ctx context.Context, businessID uint64) (*businessDomain.RemovalRequest, error) {
	var out businessDomain.RemovalRequest
	res := r.db.WithContext(ctx).
		Where("business_id = ? AND status = ?", businessID, businessDomain.RemovalPending).
		First(&out)
	return &out, res.Error
}

func (r *RemovalRepository) List(ctx context.Context, f businessDomain.RemovalListFilter) ([]businessDomain.RemovalRequest, int64, error) {
	q := r.db.WithContext(ctx).Model(&businessDomain.RemovalRequest{})
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []businessDomain.RemovalRequest
	err := q.Order("requested_at DESC, id DESC").
		Scopes(paginate(f.Page, f.Limit)).
		Find(&items).Error
	return items, total, err
}
