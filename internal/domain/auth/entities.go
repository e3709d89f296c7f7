package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleBusiness Role = "BUSINESS"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrTokenInvalid       = errors.New("invalid or expired session token")
)

// AdminUser is the principal behind the ADMIN role. The bootstrap admin
// is seeded from config at startup.
type AdminUser struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex:ux_admin_users_email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null"`
	IsActive     bool      `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (AdminUser) TableName() string { return "admin_users" }

type AdminRepository interface {
	Create(ctx context.Context, a *AdminUser) error
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
}

// Claims is the signed session payload. Subject carries the numeric
// login id (admin or business) as a decimal string.
type Claims struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	jwt.RegisteredClaims
}
