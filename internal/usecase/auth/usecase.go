package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	domainAuth "investlink-backend/internal/domain/auth"
	domainBusiness "investlink-backend/internal/domain/business"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Usecase struct {
	admins domainAuth.AdminRepository
	logins domainBusiness.LoginRepository
	secret []byte
	ttl    time.Duration

	now func() time.Time
}

func NewUsecase(admins domainAuth.AdminRepository, logins domainBusiness.LoginRepository, secret string, ttl time.Duration) *Usecase {
	return &Usecase{
		admins: admins,
		logins: logins,
		secret: []byte(secret),
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

type TokenDTO struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (u *Usecase) AdminLogin(ctx context.Context, email, password string) (*TokenDTO, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	admin, err := u.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainAuth.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, domainAuth.ErrInvalidCredentials
	}
	if !admin.IsActive {
		return nil, domainAuth.ErrAccountInactive
	}
	return u.issue(admin.ID, admin.Email, domainAuth.RoleAdmin)
}

func (u *Usecase) BusinessLogin(ctx context.Context, email, password string) (*TokenDTO, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	login, err := u.logins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainAuth.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(login.PasswordHash), []byte(password)) != nil {
		return nil, domainAuth.ErrInvalidCredentials
	}
	if !login.IsActive {
		return nil, domainAuth.ErrAccountInactive
	}
	return u.issue(login.ID, login.Email, domainAuth.RoleBusiness)
}

func (u *Usecase) issue(subjectID uint64, email string, role domainAuth.Role) (*TokenDTO, error) {
	now := u.now()
	exp := now.Add(u.ttl)
	claims := domainAuth.Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(subjectID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return nil, err
	}
	return &TokenDTO{Token: signed, Role: string(role), Email: email, ExpiresAt: exp}, nil
}

// ParseToken verifies signature and expiry and returns the claims.
func (u *Usecase) ParseToken(tokenStr string) (*domainAuth.Claims, error) {
	var claims domainAuth.Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domainAuth.ErrTokenInvalid
		}
		return u.secret, nil
	}, jwt.WithTimeFunc(u.now))
	if err != nil || !token.Valid {
		return nil, domainAuth.ErrTokenInvalid
	}
	switch claims.Role {
	case domainAuth.RoleAdmin, domainAuth.RoleBusiness:
	default:
		return nil, domainAuth.ErrTokenInvalid
	}
	return &claims, nil
}

// SubjectID extracts the numeric login id from verified claims.
func SubjectID(c *domainAuth.Claims) (uint64, error) {
	return strconv.ParseUint(c.Subject, 10, 64)
}

// SeedAdmin creates the bootstrap admin if the email is not present.
func (u *Usecase) SeedAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := u.admins.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return u.admins.Create(ctx, &domainAuth.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	})
}
