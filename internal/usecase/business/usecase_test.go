package business

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "investlink-backend/internal/domain/business"
	domainOnboarding "investlink-backend/internal/domain/onboarding"
	"investlink-backend/internal/domain/uow"
	"investlink-backend/internal/testutil/businessmock"
	"investlink-backend/internal/testutil/mailmock"
	"investlink-backend/internal/testutil/onboardingmock"
	"investlink-backend/internal/testutil/uowmock"
	"investlink-backend/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	repo       *businessmock.Repo
	logins     *businessmock.LoginRepo
	categories *businessmock.CategoryRepo
	removals   *businessmock.RemovalRepo
	onboarding *onboardingmock.Repo
	mail       *mailmock.Mailer
	uc         *Usecase
}

func newFixture() *fixture {
	f := &fixture{
		repo:       &businessmock.Repo{},
		logins:     &businessmock.LoginRepo{},
		categories: &businessmock.CategoryRepo{},
		removals:   &businessmock.RemovalRepo{},
		onboarding: &onboardingmock.Repo{},
		mail:       &mailmock.Mailer{},
	}
	// Category lookups are cosmetic in DTOs; default to a fixed name.
	f.categories.GetByIDFn = func(ctx context.Context, id uint64) (*domain.Category, error) {
		return &domain.Category{ID: id, Name: "Retail", Slug: "retail"}, nil
	}
	unit := uowmock.Passthrough(uow.Repos{
		Onboarding: f.onboarding,
		Businesses: f.repo,
		Logins:     f.logins,
		Categories: f.categories,
		Removals:   f.removals,
	})
	f.uc = NewUsecase(f.repo, f.logins, f.categories, f.removals, unit, f.mail, zap.NewNop())
	f.uc.now = func() time.Time { return testNow }
	return f
}

func pendingBusiness() *domain.Business {
	return &domain.Business{
		ID:                 5,
		BusinessID:         id.NewID32(),
		LoginID:            9,
		Name:               "Warung Kita",
		RegistrationNumber: "REG-5",
		CategoryID:         1,
		Status:             domain.StatusPending,
		IsActive:           true,
	}
}

func TestApprove_Success(t *testing.T) {
	f := newFixture()
	biz := pendingBusiness()
	var savedBiz *domain.Business
	var savedReq *domainOnboarding.Request

	f.repo.GetByBusinessIDForUpdateFn = func(ctx context.Context, businessID string) (*domain.Business, error) {
		return biz, nil
	}
	f.repo.SaveFn = func(ctx context.Context, b *domain.Business) error {
		savedBiz = b
		return nil
	}
	token := id.NewToken64()
	exp := testNow.Add(time.Hour)
	f.onboarding.GetByLoginIDFn = func(ctx context.Context, loginID uint64) (*domainOnboarding.Request, error) {
		return &domainOnboarding.Request{ID: 1, OnboardingToken: &token, TokenExpiresAt: &exp}, nil
	}
	f.onboarding.SaveFn = func(ctx context.Context, r *domainOnboarding.Request) error {
		savedReq = r
		return nil
	}
	f.logins.GetByIDFn = func(ctx context.Context, id uint64) (*domain.Login, error) {
		return &domain.Login{ID: id, Email: "owner@warung.example"}, nil
	}

	dto, err := f.uc.Approve(context.Background(), biz.BusinessID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if savedBiz == nil || savedBiz.Status != domain.StatusApproved {
		t.Fatalf("business not approved: %+v", savedBiz)
	}
	// Any stray token on the source request is invalidated.
	if savedReq == nil || savedReq.OnboardingToken != nil || savedReq.TokenExpiresAt != nil {
		t.Errorf("stray token not cleared: %+v", savedReq)
	}
	if dto.Status != string(domain.StatusApproved) {
		t.Errorf("dto status = %s", dto.Status)
	}
}

func TestApprove_SameStatusGuard(t *testing.T) {
	f := newFixture()
	biz := pendingBusiness()
	biz.Status = domain.StatusApproved
	f.repo.GetByBusinessIDForUpdateFn = func(ctx context.Context, businessID string) (*domain.Business, error) {
		return biz, nil
	}
	if _, err := f.uc.Approve(context.Background(), biz.BusinessID); !errors.Is(err, domain.ErrAlreadyApproved) {
		t.Fatalf("want ErrAlreadyApproved, got %v", err)
	}
}

func TestReject_RequiresReason(t *testing.T) {
	f := newFixture()
	if _, err := f.uc.Reject(context.Background(), "abc", "  "); !errors.Is(err, domain.ErrReasonRequired) {
		t.Fatalf("want ErrReasonRequired, got %v", err)
	}
}

func TestReject_SetsReason(t *testing.T) {
	f := newFixture()
	biz := pendingBusiness()
	f.repo.GetByBusinessIDForUpdateFn = func(ctx context.Context, businessID string) (*domain.Business, error) {
		return biz, nil
	}
	f.onboarding.GetByLoginIDFn = func(ctx context.Context, loginID uint64) (*domainOnboarding.Request, error) {
		return nil, gorm.ErrRecordNotFound
	}
	f.logins.GetByIDFn = func(ctx context.Context, id uint64) (*domain.Login, error) {
		return &domain.Login{ID: id, Email: "owner@warung.example"}, nil
	}

	dto, err := f.uc.Reject(context.Background(), biz.BusinessID, "profile incomplete")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if dto.Status != string(domain.StatusRejected) || dto.RejectionReason == nil || *dto.RejectionReason != "profile incomplete" {
		t.Errorf("unexpected dto: %+v", dto)
	}

	// Rejecting again trips the same-status guard.
	if _, err := f.uc.Reject(context.Background(), biz.BusinessID, "again"); !errors.Is(err, domain.ErrAlreadyRejected) {
		t.Fatalf("want ErrAlreadyRejected, got %v", err)
	}
}

func TestPublicGet(t *testing.T) {
	t.Run("published counts the view", func(t *testing.T) {
		f := newFixture()
		biz := pendingBusiness()
		biz.Status = domain.StatusApproved
		biz.ViewCount = 7
		var bumped uint64
		f.repo.GetByBusinessIDFn = func(ctx context.Context, businessID string) (*domain.Business, error) {
			return biz, nil
		}
		f.repo.IncrementViewCountFn = func(ctx context.Context, id uint64) error {
			bumped = id
			return nil
		}

		dto, err := f.uc.PublicGet(context.Background(), biz.BusinessID)
		if err != nil {
			t.Fatalf("PublicGet: %v", err)
		}
		if bumped != biz.ID {
			t.Errorf("view count not bumped for %d", biz.ID)
		}
		if dto.ViewCount != 8 {
			t.Errorf("dto view count = %d, want 8", dto.ViewCount)
		}
	})

	t.Run("unpublished is hidden", func(t *testing.T) {
		for _, mod := range []func(*domain.Business){
			func(b *domain.Business) { b.Status = domain.StatusPending },
			func(b *domain.Business) { b.Status = domain.StatusRejected },
			func(b *domain.Business) { b.Status = domain.StatusApproved; b.IsActive = false },
		} {
			f := newFixture()
			biz := pendingBusiness()
			mod(biz)
			f.repo.GetByBusinessIDFn = func(ctx context.Context, businessID string) (*domain.Business, error) {
				return biz, nil
			}
			if _, err := f.uc.PublicGet(context.Background(), biz.BusinessID); !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("status=%s active=%v: want ErrNotFound, got %v", biz.Status, biz.IsActive, err)
			}
		}
	})
}

func TestPublicList_PinsPublishedFilter(t *testing.T) {
	f := newFixture()
	var gotFilter domain.ListFilter
	f.repo.ListFn = func(ctx context.Context, lf domain.ListFilter) ([]domain.Business, int64, error) {
		gotFilter = lf
		return nil, 0, nil
	}

	if _, _, err := f.uc.PublicList(context.Background(), ListInput{Page: 1, Limit: 10}); err != nil {
		t.Fatalf("PublicList: %v", err)
	}
	if gotFilter.Status == nil || *gotFilter.Status != domain.StatusApproved {
		t.Errorf("status filter not pinned: %+v", gotFilter.Status)
	}
	if gotFilter.IsActive == nil || !*gotFilter.IsActive {
		t.Errorf("is_active filter not pinned")
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	f := newFixture()
	biz := pendingBusiness()
	biz.Description = "old description"
	biz.City = "Bandung"
	f.repo.GetByBusinessIDFn = func(ctx context.Context, businessID string) (*domain.Business, error) {
		return biz, nil
	}
	var saved *domain.Business
	f.repo.SaveFn = func(ctx context.Context, b *domain.Business) error {
		saved = b
		return nil
	}

	name := "  Warung Baru "
	year := 2019
	dto, err := f.uc.Update(context.Background(), biz.BusinessID, UpdateInput{
		Name:        &name,
		FoundedYear: &year,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if saved.Name != "Warung Baru" || saved.FoundedYear != 2019 {
		t.Errorf("fields not applied: %+v", saved)
	}
	// Untouched pointers leave existing values alone.
	if saved.Description != "old description" || saved.City != "Bandung" {
		t.Errorf("nil fields were clobbered: %+v", saved)
	}
	if dto.Name != "Warung Baru" {
		t.Errorf("dto name = %q", dto.Name)
	}
}

func TestRequestRemoval(t *testing.T) {
	t.Run("files one request", func(t *testing.T) {
		f := newFixture()
		biz := pendingBusiness()
		f.repo.GetByBusinessIDFn = func(ctx context.Context, businessID string) (*domain.Business, error) {
			return biz, nil
		}
		f.removals.GetPendingByBusinessIDFn = func(ctx context.Context, businessID uint64) (*domain.RemovalRequest, error) {
			return nil, gorm.ErrRecordNotFound
		}
		var created *domain.RemovalRequest
		f.removals.CreateFn = func(ctx context.Context, r *domain.RemovalRequest) error {
			r.ID = 1
			created = r
			return nil
		}

		reason := "closing the company"
		dto, err := f.uc.RequestRemoval(context.Background(), biz.BusinessID, &reason)
		if err != nil {
			t.Fatalf("RequestRemoval: %v", err)
		}
		if created == nil || created.BusinessID != biz.ID || created.Status != domain.RemovalPending {
			t.Errorf("bad removal: %+v", created)
		}
		if dto.Status != string(domain.RemovalPending) {
			t.Errorf("dto status = %s", dto.Status)
		}
	})

	t.Run("rejects a second open request", func(t *testing.T) {
		f := newFixture()
		biz := pendingBusiness()
		f.repo.GetByBusinessIDFn = func(ctx context.Context, businessID string) (*domain.Business, error) {
			return biz, nil
		}
		f.removals.GetPendingByBusinessIDFn = func(ctx context.Context, businessID uint64) (*domain.RemovalRequest, error) {
			return &domain.RemovalRequest{ID: 1, BusinessID: businessID, Status: domain.RemovalPending}, nil
		}
		if _, err := f.uc.RequestRemoval(context.Background(), biz.BusinessID, nil); !errors.Is(err, domain.ErrRemovalPending) {
			t.Fatalf("want ErrRemovalPending, got %v", err)
		}
	})
}

func TestReviewRemoval(t *testing.T) {
	t.Run("approval deactivates business and login", func(t *testing.T) {
		f := newFixture()
		biz := pendingBusiness()
		rr := &domain.RemovalRequest{ID: 1, RemovalID: id.NewID32(), BusinessID: biz.ID, Status: domain.RemovalPending}

		f.removals.GetByRemovalIDFn = func(ctx context.Context, removalID string) (*domain.RemovalRequest, error) {
			return rr, nil
		}
		f.repo.GetByIDFn = func(ctx context.Context, bid uint64) (*domain.Business, error) {
			return biz, nil
		}
		var savedBiz *domain.Business
		f.repo.SaveFn = func(ctx context.Context, b *domain.Business) error {
			savedBiz = b
			return nil
		}
		login := &domain.Login{ID: biz.LoginID, Email: "owner@warung.example", IsActive: true}
		f.logins.GetByIDFn = func(ctx context.Context, id uint64) (*domain.Login, error) {
			return login, nil
		}
		var savedLogin *domain.Login
		f.logins.SaveFn = func(ctx context.Context, l *domain.Login) error {
			savedLogin = l
			return nil
		}
		var savedRR *domain.RemovalRequest
		f.removals.SaveFn = func(ctx context.Context, r *domain.RemovalRequest) error {
			savedRR = r
			return nil
		}

		dto, err := f.uc.ReviewRemoval(context.Background(), rr.RemovalID, true)
		if err != nil {
			t.Fatalf("ReviewRemoval: %v", err)
		}
		if savedBiz == nil || savedBiz.IsActive {
			t.Errorf("business not deactivated")
		}
		if savedLogin == nil || savedLogin.IsActive {
			t.Errorf("login not deactivated")
		}
		if savedRR == nil || savedRR.Status != domain.RemovalApproved || savedRR.ReviewedAt == nil {
			t.Errorf("removal not finalized: %+v", savedRR)
		}
		if dto.Status != string(domain.RemovalApproved) {
			t.Errorf("dto status = %s", dto.Status)
		}
	})

	t.Run("rejection leaves the business alone", func(t *testing.T) {
		f := newFixture()
		biz := pendingBusiness()
		rr := &domain.RemovalRequest{ID: 1, RemovalID: id.NewID32(), BusinessID: biz.ID, Status: domain.RemovalPending}

		f.removals.GetByRemovalIDFn = func(ctx context.Context, removalID string) (*domain.RemovalRequest, error) {
			return rr, nil
		}
		f.repo.GetByIDFn = func(ctx context.Context, bid uint64) (*domain.Business, error) {
			return biz, nil
		}
		bizSaved := false
		f.repo.SaveFn = func(ctx context.Context, b *domain.Business) error {
			bizSaved = true
			return nil
		}
		f.removals.SaveFn = func(ctx context.Context, r *domain.RemovalRequest) error { return nil }

		dto, err := f.uc.ReviewRemoval(context.Background(), rr.RemovalID, false)
		if err != nil {
			t.Fatalf("ReviewRemoval: %v", err)
		}
		if bizSaved {
			t.Errorf("business saved on rejection")
		}
		if dto.Status != string(domain.RemovalRejected) {
			t.Errorf("dto status = %s", dto.Status)
		}
	})

	t.Run("already reviewed", func(t *testing.T) {
		f := newFixture()
		f.removals.GetByRemovalIDFn = func(ctx context.Context, removalID string) (*domain.RemovalRequest, error) {
			return &domain.RemovalRequest{ID: 1, Status: domain.RemovalApproved}, nil
		}
		if _, err := f.uc.ReviewRemoval(context.Background(), "abc", true); !errors.Is(err, domain.ErrRemovalAlreadyReviewed) {
			t.Fatalf("want ErrRemovalAlreadyReviewed, got %v", err)
		}
	})
}

func TestSetActive(t *testing.T) {
	f := newFixture()
	biz := pendingBusiness()
	f.repo.GetByBusinessIDFn = func(ctx context.Context, businessID string) (*domain.Business, error) {
		return biz, nil
	}
	var saved *domain.Business
	f.repo.SaveFn = func(ctx context.Context, b *domain.Business) error {
		saved = b
		return nil
	}

	dto, err := f.uc.SetActive(context.Background(), biz.BusinessID, false)
	if err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if saved == nil || saved.IsActive {
		t.Errorf("not deactivated")
	}
	if dto.IsActive {
		t.Errorf("dto still active")
	}
}

func TestNumericID(t *testing.T) {
	f := newFixture()
	biz := pendingBusiness()
	f.repo.GetByBusinessIDFn = func(ctx context.Context, businessID string) (*domain.Business, error) {
		if businessID != biz.BusinessID {
			return nil, gorm.ErrRecordNotFound
		}
		return biz, nil
	}

	got, err := f.uc.NumericID(context.Background(), biz.BusinessID)
	if err != nil {
		t.Fatalf("NumericID: %v", err)
	}
	if got != biz.ID {
		t.Errorf("NumericID = %d, want %d", got, biz.ID)
	}
	if _, err := f.uc.NumericID(context.Background(), "ffffffffffffffffffffffffffffffff"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
