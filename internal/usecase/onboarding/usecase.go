package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainBusiness "investlink-backend/internal/domain/business"
	domainOnboarding "investlink-backend/internal/domain/onboarding"
	"investlink-backend/internal/domain/uow"
	"investlink-backend/internal/infrastructure/mail"
	"investlink-backend/pkg/id"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Usecase struct {
	repo     domainOnboarding.Repository
	uow      uow.UnitOfWork
	mailer   mail.Mailer
	log      *zap.Logger
	tokenTTL time.Duration
	baseURL  string

	now func() time.Time
}

func NewUsecase(repo domainOnboarding.Repository, tx uow.UnitOfWork, mailer mail.Mailer, log *zap.Logger, tokenTTL time.Duration, baseURL string) *Usecase {
	return &Usecase{
		repo:     repo,
		uow:      tx,
		mailer:   mailer,
		log:      log,
		tokenTTL: tokenTTL,
		baseURL:  baseURL,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// sendMail dispatches a notification without blocking or failing the
// caller. Failures are logged only; that policy is uniform across every
// path (approve, reject, registration, interest).
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

func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*RequestDTO, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	_, err := u.repo.GetActiveByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domainOnboarding.ErrEmailActive
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	req := &domainOnboarding.Request{
		RequestID:    id.NewID32(),
		BusinessName: strings.TrimSpace(in.BusinessName),
		Email:        email,
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		Message:      in.Message,
		Status:       domainOnboarding.StatusPending,
	}
	if err := u.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	u.sendMail(mail.Message{
		To:      req.Email,
		Subject: "We received your onboarding inquiry",
		Body: fmt.Sprintf("Hi %s,\n\nThanks for your interest. Our team will review your inquiry and get back to you.\n",
			req.BusinessName),
	})

	return toRequestDTO(req), nil
}

func (u *Usecase) Get(ctx context.Context, requestID string) (*RequestDTO, error) {
	req, err := u.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainOnboarding.ErrNotFound
		}
		return nil, err
	}
	return toRequestDTO(req), nil
}

func (u *Usecase) List(ctx context.Context, in ListInput) ([]RequestDTO, int64, error) {
	f := domainOnboarding.ListFilter{Page: in.Page, Limit: in.Limit}
	if in.Status != "" {
		s := domainOnboarding.Status(in.Status)
		f.Status = &s
	}
	items, total, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]RequestDTO, 0, len(items))
	for i := range items {
		out = append(out, *toRequestDTO(&items[i]))
	}
	return out, total, nil
}

// MarkContacted records that the admin reached out before deciding.
// Only a pending request can move to contacted.
func (u *Usecase) MarkContacted(ctx context.Context, requestID string) (*RequestDTO, error) {
	req, err := u.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainOnboarding.ErrNotFound
		}
		return nil, err
	}
	if req.Status != domainOnboarding.StatusPending {
		return nil, domainOnboarding.ErrInvalidTransition
	}
	req.Status = domainOnboarding.StatusContacted
	if err := u.repo.Save(ctx, req); err != nil {
		return nil, err
	}
	return toRequestDTO(req), nil
}

// Approve issues the single-use registration token. Allowed only from
// pending or contacted; approving twice or approving a rejected request
// fails.
func (u *Usecase) Approve(ctx context.Context, requestID string) (*ApprovalDTO, error) {
	var dto *ApprovalDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Onboarding.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainOnboarding.ErrNotFound
			}
			return err
		}

		switch req.Status {
		case domainOnboarding.StatusApproved:
			return domainOnboarding.ErrAlreadyApproved
		case domainOnboarding.StatusRejected:
			return domainOnboarding.ErrInvalidTransition
		}

		token := id.NewToken64()
		expires := u.now().Add(u.tokenTTL)
		reviewed := u.now()

		req.Status = domainOnboarding.StatusApproved
		req.OnboardingToken = &token
		req.TokenExpiresAt = &expires
		req.ReviewedAt = &reviewed
		if err := r.Onboarding.Save(ctx, req); err != nil {
			return err
		}

		dto = &ApprovalDTO{
			RequestDTO:      *toRequestDTO(req),
			OnboardingToken: token,
			TokenExpiresAt:  expires,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.sendMail(mail.Message{
		To:      dto.Email,
		Subject: "Your onboarding request was approved",
		Body: fmt.Sprintf("Hi %s,\n\nYour request was approved. Complete your registration within %d hours:\n%s/register?token=%s\n",
			dto.BusinessName, int(u.tokenTTL.Hours()), u.baseURL, dto.OnboardingToken),
	})

	return dto, nil
}

// Reject requires a reason and is disallowed once approved.
func (u *Usecase) Reject(ctx context.Context, requestID, reason string) (*RequestDTO, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domainOnboarding.ErrReasonRequired
	}

	var dto *RequestDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Onboarding.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainOnboarding.ErrNotFound
			}
			return err
		}

		if req.Status == domainOnboarding.StatusApproved {
			return domainOnboarding.ErrAlreadyApproved
		}

		reviewed := u.now()
		req.Status = domainOnboarding.StatusRejected
		req.RejectionReason = &reason
		req.ReviewedAt = &reviewed
		req.OnboardingToken = nil
		req.TokenExpiresAt = nil
		if err := r.Onboarding.Save(ctx, req); err != nil {
			return err
		}
		dto = toRequestDTO(req)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.sendMail(mail.Message{
		To:      dto.Email,
		Subject: "Update on your onboarding request",
		Body:    fmt.Sprintf("Hi %s,\n\nWe are unable to proceed with your onboarding request.\nReason: %s\n", dto.BusinessName, reason),
	})

	return dto, nil
}

// ValidateToken checks the registration token without consuming it.
func (u *Usecase) ValidateToken(ctx context.Context, token string) (*TokenInfoDTO, error) {
	if token == "" {
		return nil, domainOnboarding.ErrTokenInvalid
	}
	req, err := u.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainOnboarding.ErrTokenInvalid
		}
		return nil, err
	}
	if err := req.ValidateToken(u.now()); err != nil {
		return nil, err
	}
	return &TokenInfoDTO{
		BusinessName:   req.BusinessName,
		Email:          req.Email,
		TokenExpiresAt: *req.TokenExpiresAt,
	}, nil
}

// CompleteRegistration consumes the token and creates the login plus the
// pending business profile in one transaction. Nothing is left behind on
// failure: no login without a business, no consumed-but-unlinked token.
func (u *Usecase) CompleteRegistration(ctx context.Context, in RegisterInput) (*RegistrationDTO, error) {
	var dto *RegistrationDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Onboarding.GetByToken(ctx, in.Token)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainOnboarding.ErrTokenInvalid
			}
			return err
		}
		if err := req.ValidateToken(u.now()); err != nil {
			return err
		}

		if _, err := r.Logins.GetByEmail(ctx, req.Email); err == nil {
			return domainBusiness.ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if _, err := r.Businesses.GetByRegistrationNumber(ctx, in.RegistrationNumber); err == nil {
			return domainBusiness.ErrRegistrationNumTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		cat, err := r.Categories.FindOrCreate(ctx, in.Category)
		if err != nil {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		login := &domainBusiness.Login{
			Email:        req.Email,
			PasswordHash: string(hash),
			IsActive:     true,
		}
		if err := r.Logins.Create(ctx, login); err != nil {
			return err
		}

		biz := &domainBusiness.Business{
			BusinessID:         id.NewID32(),
			LoginID:            login.ID,
			Name:               strings.TrimSpace(in.Name),
			RegistrationNumber: strings.TrimSpace(in.RegistrationNumber),
			CategoryID:         cat.ID,
			Description:        in.Description,
			Website:            in.Website,
			Address:            in.Address,
			City:               in.City,
			FoundedYear:        in.FoundedYear,
			EmployeeCount:      in.EmployeeCount,
			AnnualRevenue:      in.AnnualRevenue,
			FundingSought:      in.FundingSought,
			PhoneNumber:        in.PhoneNumber,
			ContactEmail:       in.ContactEmail,
			Status:             domainBusiness.StatusPending,
			IsActive:           true,
		}
		if err := r.Businesses.Create(ctx, biz); err != nil {
			return err
		}

		// Consume the token.
		req.CreatedBusinessLoginID = &login.ID
		req.OnboardingToken = nil
		req.TokenExpiresAt = nil
		if err := r.Onboarding.Save(ctx, req); err != nil {
			return err
		}

		dto = &RegistrationDTO{
			BusinessID: biz.BusinessID,
			Email:      login.Email,
			Name:       biz.Name,
			Status:     string(biz.Status),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.sendMail(mail.Message{
		To:      dto.Email,
		Subject: "Registration received",
		Body:    fmt.Sprintf("Hi %s,\n\nYour registration is complete and pending review.\n", dto.Name),
	})

	return dto, nil
}

func toRequestDTO(r *domainOnboarding.Request) *RequestDTO {
	return &RequestDTO{
		RequestID:       r.RequestID,
		BusinessName:    r.BusinessName,
		Email:           r.Email,
		PhoneNumber:     r.PhoneNumber,
		Message:         r.Message,
		Status:          string(r.Status),
		RejectionReason: r.RejectionReason,
		SubmittedAt:     r.SubmittedAt,
		ReviewedAt:      r.ReviewedAt,
	}
}
