package business

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainBusiness "investlink-backend/internal/domain/business"
	"investlink-backend/internal/domain/uow"
	"investlink-backend/internal/infrastructure/mail"
	"investlink-backend/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Usecase struct {
	repo       domainBusiness.Repository
	logins     domainBusiness.LoginRepository
	categories domainBusiness.CategoryRepository
	removals   domainBusiness.RemovalRepository
	uow        uow.UnitOfWork
	mailer     mail.Mailer
	log        *zap.Logger

	now func() time.Time
}

func NewUsecase(
	repo domainBusiness.Repository,
	logins domainBusiness.LoginRepository,
	categories domainBusiness.CategoryRepository,
	removals domainBusiness.RemovalRepository,
	tx uow.UnitOfWork,
	mailer mail.Mailer,
	log *zap.Logger,
) *Usecase {
	return &Usecase{
		repo:       repo,
		logins:     logins,
		categories: categories,
		removals:   removals,
		uow:        tx,
		mailer:     mailer,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *Usecase) sendMail(m mail.Message) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := u.mailer.Send(ctx, m); err != nil {
			u.log.Warn("notification email failed",
				zap.String("to", m.To),
				zap.String("subject", m.Subject),
				zap.Error(err))
		}
	}()
}

// Approve flips the review gate and defensively clears the token on the
// originating onboarding request, even though registration already
// consumed it.
func (u *Usecase) Approve(ctx context.Context, businessID string) (*BusinessDTO, error) {
	return u.review(ctx, businessID, domainBusiness.StatusApproved, nil)
}

func (u *Usecase) Reject(ctx context.Context, businessID, reason string) (*BusinessDTO, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domainBusiness.ErrReasonRequired
	}
	return u.review(ctx, businessID, domainBusiness.StatusRejected, &reason)
}

func (u *Usecase) review(ctx context.Context, businessID string, target domainBusiness.Status, reason *string) (*BusinessDTO, error) {
	var out *domainBusiness.Business

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		biz, err := r.Businesses.GetByBusinessIDForUpdate(ctx, businessID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainBusiness.ErrNotFound
			}
			return err
		}

		if biz.Status == target {
			if target == domainBusiness.StatusApproved {
				return domainBusiness.ErrAlreadyApproved
			}
			return domainBusiness.ErrAlreadyRejected
		}

		biz.Status = target
		biz.RejectionReason = reason
		if err := r.Businesses.Save(ctx, biz); err != nil {
			return err
		}

		// Belt-and-suspenders token invalidation on the source request.
		req, err := r.Onboarding.GetByLoginID(ctx, biz.LoginID)
		switch {
		case err == nil:
			if req.OnboardingToken != nil || req.TokenExpiresAt != nil {
				req.OnboardingToken = nil
				req.TokenExpiresAt = nil
				if err := r.Onboarding.Save(ctx, req); err != nil {
					return err
				}
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		out = biz
		return nil
	})
	if err != nil {
		return nil, err
	}

	login, err := u.logins.GetByID(ctx, out.LoginID)
	if err == nil {
		subject := "Your business profile was approved"
		body := fmt.Sprintf("Hi %s,\n\nYour profile is now live in the investor directory.\n", out.Name)
		if target == domainBusiness.StatusRejected {
			subject = "Update on your business profile"
			body = fmt.Sprintf("Hi %s,\n\nYour profile was not approved.\nReason: %s\n", out.Name, *reason)
		}
		u.sendMail(mail.Message{To: login.Email, Subject: subject, Body: body})
	}

	return u.toDTO(ctx, out), nil
}

func (u *Usecase) AdminGet(ctx context.Context, businessID string) (*BusinessDTO, error) {
	biz, err := u.getByBusinessID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return u.toDTO(ctx, biz), nil
}

func (u *Usecase) AdminList(ctx context.Context, in ListInput) ([]BusinessDTO, int64, error) {
	f := domainBusiness.ListFilter{
		IsActive:   in.IsActive,
		CategoryID: in.CategoryID,
		Search:     in.Search,
		Page:       in.Page,
		Limit:      in.Limit,
	}
	if in.Status != "" {
		s := domainBusiness.Status(in.Status)
		f.Status = &s
	}
	items, total, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]BusinessDTO, 0, len(items))
	for i := range items {
		out = append(out, *u.toDTO(ctx, &items[i]))
	}
	return out, total, nil
}

// PublicList shows only approved, active profiles.
func (u *Usecase) PublicList(ctx context.Context, in ListInput) ([]PublicDTO, int64, error) {
	approved := domainBusiness.StatusApproved
	active := true
	f := domainBusiness.ListFilter{
		Status:     &approved,
		IsActive:   &active,
		CategoryID: in.CategoryID,
		Search:     in.Search,
		Page:       in.Page,
		Limit:      in.Limit,
	}
	items, total, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]PublicDTO, 0, len(items))
	for i := range items {
		out = append(out, *u.toPublicDTO(ctx, &items[i]))
	}
	return out, total, nil
}

// PublicGet returns a published profile and counts the view.
func (u *Usecase) PublicGet(ctx context.Context, businessID string) (*PublicDTO, error) {
	biz, err := u.getByBusinessID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if !biz.Published() {
		return nil, domainBusiness.ErrNotFound
	}
	if err := u.repo.IncrementViewCount(ctx, biz.ID); err != nil {
		u.log.Warn("view count increment failed", zap.String("business_id", businessID), zap.Error(err))
	} else {
		biz.ViewCount++
	}
	return u.toPublicDTO(ctx, biz), nil
}

func (u *Usecase) SetActive(ctx context.Context, businessID string, active bool) (*BusinessDTO, error) {
	biz, err := u.getByBusinessID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	biz.IsActive = active
	if err := u.repo.Save(ctx, biz); err != nil {
		return nil, err
	}
	return u.toDTO(ctx, biz), nil
}

// GetByLoginID serves the self-service profile for an authenticated
// business account.
func (u *Usecase) GetByLoginID(ctx context.Context, loginID uint64) (*BusinessDTO, error) {
	biz, err := u.repo.GetByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainBusiness.ErrNotFound
		}
		return nil, err
	}
	return u.toDTO(ctx, biz), nil
}

// Update applies a typed partial update; nil fields are untouched.
func (u *Usecase) Update(ctx context.Context, businessID string, in UpdateInput) (*BusinessDTO, error) {
	biz, err := u.getByBusinessID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		biz.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		biz.Description = *in.Description
	}
	if in.Website != nil {
		biz.Website = *in.Website
	}
	if in.Address != nil {
		biz.Address = *in.Address
	}
	if in.City != nil {
		biz.City = *in.City
	}
	if in.FoundedYear != nil {
		biz.FoundedYear = *in.FoundedYear
	}
	if in.EmployeeCount != nil {
		biz.EmployeeCount = *in.EmployeeCount
	}
	if in.AnnualRevenue != nil {
		biz.AnnualRevenue = *in.AnnualRevenue
	}
	if in.FundingSought != nil {
		biz.FundingSought = *in.FundingSought
	}
	if in.PhoneNumber != nil {
		biz.PhoneNumber = *in.PhoneNumber
	}
	if in.ContactEmail != nil {
		biz.ContactEmail = *in.ContactEmail
	}
	if in.LogoPath != nil {
		biz.LogoPath = *in.LogoPath
	}

	if err := u.repo.Save(ctx, biz); err != nil {
		return nil, err
	}
	return u.toDTO(ctx, biz), nil
}

// RequestRemoval files a removal request; one open request per business.
func (u *Usecase) RequestRemoval(ctx context.Context, businessID string, reason *string) (*RemovalDTO, error) {
	biz, err := u.getByBusinessID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	_, err = u.removals.GetPendingByBusinessID(ctx, biz.ID)
	switch {
	case err == nil:
		return nil, domainBusiness.ErrRemovalPending
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	rr := &domainBusiness.RemovalRequest{
		RemovalID:  id.NewID32(),
		BusinessID: biz.ID,
		Reason:     reason,
		Status:     domainBusiness.RemovalPending,
	}
	if err := u.removals.Create(ctx, rr); err != nil {
		return nil, err
	}
	return toRemovalDTO(rr, biz.BusinessID), nil
}

// ReviewRemoval decides a pending removal. Approval deactivates both the
// business and its login in the same transaction.
func (u *Usecase) ReviewRemoval(ctx context.Context, removalID string, approve bool) (*RemovalDTO, error) {
	var dto *RemovalDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rr, err := r.Removals.GetByRemovalID(ctx, removalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainBusiness.ErrRemovalNotFound
			}
			return err
		}
		if rr.Status != domainBusiness.RemovalPending {
			return domainBusiness.ErrRemovalAlreadyReviewed
		}

		bizPtr, err := r.Businesses.GetByID(ctx, rr.BusinessID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainBusiness.ErrNotFound
			}
			return err
		}
		biz := *bizPtr

		reviewed := u.now()
		rr.ReviewedAt = &reviewed
		if approve {
			rr.Status = domainBusiness.RemovalApproved
			biz.IsActive = false
			if err := r.Businesses.Save(ctx, &biz); err != nil {
				return err
			}
			login, err := r.Logins.GetByID(ctx, biz.LoginID)
			if err != nil {
				return err
			}
			login.IsActive = false
			if err := r.Logins.Save(ctx, login); err != nil {
				return err
			}
		} else {
			rr.Status = domainBusiness.RemovalRejected
		}
		if err := r.Removals.Save(ctx, rr); err != nil {
			return err
		}

		dto = toRemovalDTO(rr, biz.BusinessID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) ListRemovals(ctx context.Context, status string, page, limit int) ([]RemovalDTO, int64, error) {
	f := domainBusiness.RemovalListFilter{Page: page, Limit: limit}
	if status != "" {
		s := domainBusiness.RemovalStatus(status)
		f.Status = &s
	}
	items, total, err := u.removals.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]RemovalDTO, 0, len(items))
	for i := range items {
		publicID := ""
		if biz, err := u.repo.GetByID(ctx, items[i].BusinessID); err == nil {
			publicID = biz.BusinessID
		}
		out = append(out, *toRemovalDTO(&items[i], publicID))
	}
	return out, total, nil
}

func (u *Usecase) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	cats, err := u.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryDTO{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	return out, nil
}

// NumericID resolves a public business id to the internal numeric key,
// used by the interest layer to scope queries.
func (u *Usecase) NumericID(ctx context.Context, businessID string) (uint64, error) {
	biz, err := u.getByBusinessID(ctx, businessID)
	if err != nil {
		return 0, err
	}
	return biz.ID, nil
}

func (u *Usecase) getByBusinessID(ctx context.Context, businessID string) (*domainBusiness.Business, error) {
	biz, err := u.repo.GetByBusinessID(ctx, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainBusiness.ErrNotFound
		}
		return nil, err
	}
	return biz, nil
}

func (u *Usecase) categoryName(ctx context.Context, id uint64) string {
	cat, err := u.categories.GetByID(ctx, id)
	if err != nil {
		return ""
	}
	return cat.Name
}

func (u *Usecase) toDTO(ctx context.Context, b *domainBusiness.Business) *BusinessDTO {
	return &BusinessDTO{
		BusinessID:         b.BusinessID,
		Name:               b.Name,
		RegistrationNumber: b.RegistrationNumber,
		Category:           u.categoryName(ctx, b.CategoryID),
		Description:        b.Description,
		Website:            b.Website,
		Address:            b.Address,
		City:               b.City,
		FoundedYear:        b.FoundedYear,
		EmployeeCount:      b.EmployeeCount,
		AnnualRevenue:      b.AnnualRevenue,
		FundingSought:      b.FundingSought,
		PhoneNumber:        b.PhoneNumber,
		ContactEmail:       b.ContactEmail,
		LogoPath:           b.LogoPath,
		Status:             string(b.Status),
		IsActive:           b.IsActive,
		RejectionReason:    b.RejectionReason,
		ViewCount:          b.ViewCount,
		CreatedAt:          b.CreatedAt,
	}
}

func (u *Usecase) toPublicDTO(ctx context.Context, b *domainBusiness.Business) *PublicDTO {
	return &PublicDTO{
		BusinessID:    b.BusinessID,
		Name:          b.Name,
		Category:      u.categoryName(ctx, b.CategoryID),
		Description:   b.Description,
		Website:       b.Website,
		City:          b.City,
		FoundedYear:   b.FoundedYear,
		EmployeeCount: b.EmployeeCount,
		FundingSought: b.FundingSought,
		LogoPath:      b.LogoPath,
		ViewCount:     b.ViewCount,
	}
}

func toRemovalDTO(r *domainBusiness.RemovalRequest, businessPublicID string) *RemovalDTO {
	return &RemovalDTO{
		RemovalID:   r.RemovalID,
		BusinessID:  businessPublicID,
		Reason:      r.Reason,
		Status:      string(r.Status),
		RequestedAt: r.RequestedAt,
		ReviewedAt:  r.ReviewedAt,
	}
}
