package mysql

import (
	"context"

	authDomain "investlink-backend/internal/domain/auth"

	"gorm.io/gorm"
)

type AdminRepository struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) *AdminRepository { return &AdminRepository{db: db} }

func (r *AdminRepository) Create(ctx context.Context, a *authDomain.AdminUser) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*authDomain.AdminUser, error) {
	var out authDomain.AdminUser
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}
