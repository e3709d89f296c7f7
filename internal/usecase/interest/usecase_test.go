package interest

import (
	"context"
	"errors"
	"testing"
	"time"

	domainBusiness "investlink-backend/internal/domain/business"
	domain "investlink-backend/internal/domain/interest"
	"investlink-backend/internal/domain/uow"
	"investlink-backend/internal/testutil/businessmock"
	"investlink-backend/internal/testutil/interestmock"
	"investlink-backend/internal/testutil/mailmock"
	"investlink-backend/internal/testutil/uowmock"
	"investlink-backend/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

type fixture struct {
	subs       *interestmock.SubmissionRepo
	followUps  *interestmock.FollowUpRepo
	sources    *interestmock.LeadSourceRepo
	businesses *businessmock.Repo
	logins     *businessmock.LoginRepo
	mail       *mailmock.Mailer
	uc         *Usecase
}

func newFixture() *fixture {
	f := &fixture{
		subs:       &interestmock.SubmissionRepo{},
		followUps:  &interestmock.FollowUpRepo{},
		sources:    &interestmock.LeadSourceRepo{},
		businesses: &businessmock.Repo{},
		logins:     &businessmock.LoginRepo{},
		mail:       &mailmock.Mailer{},
	}
	// DTO assembly resolves the public business id; default it.
	f.businesses.GetByIDFn = func(ctx context.Context, id uint64) (*domainBusiness.Business, error) {
		return &domainBusiness.Business{ID: id, BusinessID: "b1b1b1b1b1b1b1b1b1b1b1b1b1b1b1b1"}, nil
	}
	unit := uowmock.Passthrough(uow.Repos{
		Submissions: f.subs,
		FollowUps:   f.followUps,
		LeadSources: f.sources,
		Businesses:  f.businesses,
		Logins:      f.logins,
	})
	f.uc = NewUsecase(f.subs, f.followUps, f.sources, f.businesses, f.logins, unit, f.mail, zap.NewNop())
	f.uc.now = func() time.Time { return testNow }
	return f
}

func publishedBusiness() *domainBusiness.Business {
	return &domainBusiness.Business{
		ID:         4,
		BusinessID: id.NewID32(),
		LoginID:    8,
		Name:       "Kebun Hijau",
		Status:     domainBusiness.StatusApproved,
		IsActive:   true,
	}
}

func submission() *domain.Submission {
	return &domain.Submission{
		ID:           10,
		SubmissionID: id.NewID32(),
		BusinessID:   4,
		InvestorName: "Budi",
		PhoneNumber:  "0811999888",
		Email:        "budi@example.com",
		HasConsent:   true,
		Status:       domain.StatusNotContacted,
		Source:       "Website",
	}
}

func waitForMail(t *testing.T, mm *mailmock.Mailer, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(mm.Sent()) >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d mails, got %d", want, len(mm.Sent()))
}

func TestSubmit(t *testing.T) {
	t.Run("success notifies both parties", func(t *testing.T) {
		f := newFixture()
		biz := publishedBusiness()
		f.businesses.GetByBusinessIDFn = func(ctx context.Context, businessID string) (*domainBusiness.Business, error) {
			return biz, nil
		}
		f.logins.GetByIDFn = func(ctx context.Context, id uint64) (*domainBusiness.Login, error) {
			return &domainBusiness.Login{ID: id, Email: "owner@kebun.example"}, nil
		}
		var created *domain.Submission
		f.subs.CreateFn = func(ctx context.Context, s *domain.Submission) error {
			s.ID = 10
			created = s
			return nil
		}

		dto, err := f.uc.Submit(context.Background(), biz.BusinessID, SubmitInput{
			InvestorName: " Budi ",
			PhoneNumber:  "0811999888",
			Email:        "Budi@Example.com",
			HasConsent:   true,
		})
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if created.InvestorName != "Budi" || created.Email != "budi@example.com" {
			t.Errorf("input not normalized: %+v", created)
		}
		if created.Source != "Website" {
			t.Errorf("empty source must default to Website, got %q", created.Source)
		}
		if dto.Status != string(domain.StatusNotContacted) || dto.Contacted {
			t.Errorf("new submission must start untouched: %+v", dto)
		}
		waitForMail(t, f.mail, 2)
	})

	t.Run("unpublished business", func(t *testing.T) {
		f := newFixture()
		biz := publishedBusiness()
		biz.IsActive = false
		f.businesses.GetByBusinessIDFn = func(ctx context.Context, businessID string) (*domainBusiness.Business, error) {
			return biz, nil
		}
		_, err := f.uc.Submit(context.Background(), biz.BusinessID, SubmitInput{HasConsent: true})
		if !errors.Is(err, domain.ErrBusinessNotPublished) {
			t.Fatalf("want ErrBusinessNotPublished, got %v", err)
		}
	})

	t.Run("consent required", func(t *testing.T) {
		f := newFixture()
		biz := publishedBusiness()
		f.businesses.GetByBusinessIDFn = func(ctx context.Context, businessID string) (*domainBusiness.Business, error) {
			return biz, nil
		}
		_, err := f.uc.Submit(context.Background(), biz.BusinessID, SubmitInput{HasConsent: false})
		if !errors.Is(err, domain.ErrConsentRequired) {
			t.Fatalf("want ErrConsentRequired, got %v", err)
		}
	})
}

func TestGet_ScopeEnforced(t *testing.T) {
	f := newFixture()
	sub := submission()
	f.subs.GetBySubmissionIDFn = func(ctx context.Context, submissionID string) (*domain.Submission, error) {
		return sub, nil
	}

	// The owning business sees it.
	mine := uint64(4)
	if _, err := f.uc.Get(context.Background(), sub.SubmissionID, &mine); err != nil {
		t.Fatalf("owner Get: %v", err)
	}
	// Admin (nil scope) sees it.
	if _, err := f.uc.Get(context.Background(), sub.SubmissionID, nil); err != nil {
		t.Fatalf("admin Get: %v", err)
	}
	// Another business gets not-found, not forbidden.
	other := uint64(99)
	if _, err := f.uc.Get(context.Background(), sub.SubmissionID, &other); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound for foreign scope, got %v", err)
	}
}

func TestUpdate_ContactedCoupling(t *testing.T) {
	t.Run("non-initial status forces contacted", func(t *testing.T) {
		f := newFixture()
		sub := submission()
		f.subs.GetBySubmissionIDFn = func(ctx context.Context, submissionID string) (*domain.Submission, error) {
			return sub, nil
		}
		var saved *domain.Submission
		f.subs.SaveFn = func(ctx context.Context, s *domain.Submission) error {
			saved = s
			return nil
		}

		status := string(domain.StatusInterested)
		contacted := false
		dto, err := f.uc.Update(context.Background(), sub.SubmissionID, nil, UpdateInput{
			Status:    &status,
			Contacted: &contacted, // explicitly false, still overridden
		})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if !saved.Contacted {
			t.Errorf("status interested must force contacted=true")
		}
		if dto.Status != status {
			t.Errorf("dto status = %s", dto.Status)
		}
	})

	t.Run("nil fields untouched", func(t *testing.T) {
		f := newFixture()
		sub := submission()
		sub.Contacted = true
		remarks := "left voicemail"
		sub.FollowUpRemarks = &remarks
		f.subs.GetBySubmissionIDFn = func(ctx context.Context, submissionID string) (*domain.Submission, error) {
			return sub, nil
		}
		var saved *domain.Submission
		f.subs.SaveFn = func(ctx context.Context, s *domain.Submission) error {
			saved = s
			return nil
		}

		source := "Referral"
		if _, err := f.uc.Update(context.Background(), sub.SubmissionID, nil, UpdateInput{Source: &source}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if saved.Source != "Referral" {
			t.Errorf("source not applied")
		}
		if !saved.Contacted || saved.FollowUpRemarks == nil || *saved.FollowUpRemarks != "left voicemail" {
			t.Errorf("untouched fields clobbered: %+v", saved)
		}
	})
}

func TestAddFollowUp(t *testing.T) {
	t.Run("numbers come from the counter", func(t *testing.T) {
		f := newFixture()
		sub := submission()
		sub.FollowUpSeq = 4 // follow-ups 1..4 existed; some may be deleted
		f.subs.GetBySubmissionIDForUpdateFn = func(ctx context.Context, submissionID string) (*domain.Submission, error) {
			return sub, nil
		}
		var created *domain.FollowUp
		f.followUps.CreateFn = func(ctx context.Context, fu *domain.FollowUp) error {
			fu.ID = 77
			created = fu
			return nil
		}
		var saved *domain.Submission
		f.subs.SaveFn = func(ctx context.Context, s *domain.Submission) error {
			saved = s
			return nil
		}

		dto, err := f.uc.AddFollowUp(context.Background(), sub.SubmissionID, nil, FollowUpInput{Remarks: "sent term sheet"})
		if err != nil {
			t.Fatalf("AddFollowUp: %v", err)
		}
		if created.FollowUpNumber != 5 || dto.FollowUpNumber != 5 {
			t.Errorf("number = %d, want 5", created.FollowUpNumber)
		}
		if saved.FollowUpSeq != 5 {
			t.Errorf("counter not advanced: %d", saved.FollowUpSeq)
		}
		if !saved.Contacted {
			t.Errorf("adding a follow-up must mark the lead contacted")
		}
	})

	t.Run("empty remarks", func(t *testing.T) {
		f := newFixture()
		if _, err := f.uc.AddFollowUp(context.Background(), "abc", nil, FollowUpInput{Remarks: "   "}); !errors.Is(err, domain.ErrRemarksRequired) {
			t.Fatalf("want ErrRemarksRequired, got %v", err)
		}
	})

	t.Run("foreign scope", func(t *testing.T) {
		f := newFixture()
		sub := submission()
		f.subs.GetBySubmissionIDForUpdateFn = func(ctx context.Context, submissionID string) (*domain.Submission, error) {
			return sub, nil
		}
		other := uint64(99)
		if _, err := f.uc.AddFollowUp(context.Background(), sub.SubmissionID, &other, FollowUpInput{Remarks: "x"}); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})
}

func TestDeleteFollowUp_KeepsNumbers(t *testing.T) {
	f := newFixture()
	sub := submission()
	f.subs.GetBySubmissionIDFn = func(ctx context.Context, submissionID string) (*domain.Submission, error) {
		return sub, nil
	}
	f.followUps.GetByIDFn = func(ctx context.Context, fid uint64) (*domain.FollowUp, error) {
		if fid != 2 {
			return nil, gorm.ErrRecordNotFound
		}
		return &domain.FollowUp{ID: 2, SubmissionID: sub.ID, FollowUpNumber: 2}, nil
	}
	var deleted uint64
	f.followUps.DeleteFn = func(ctx context.Context, fid uint64) error {
		deleted = fid
		return nil
	}
	subSaved := false
	f.subs.SaveFn = func(ctx context.Context, s *domain.Submission) error {
		subSaved = true
		return nil
	}

	if err := f.uc.DeleteFollowUp(context.Background(), sub.SubmissionID, 2, nil); err != nil {
		t.Fatalf("DeleteFollowUp: %v", err)
	}
	if deleted != 2 {
		t.Errorf("wrong follow-up deleted: %d", deleted)
	}
	// The counter is never rewound on delete.
	if subSaved {
		t.Errorf("submission must not be touched on delete")
	}

	// A follow-up belonging to another submission is invisible.
	f.followUps.GetByIDFn = func(ctx context.Context, fid uint64) (*domain.FollowUp, error) {
		return &domain.FollowUp{ID: fid, SubmissionID: 999}, nil
	}
	if err := f.uc.DeleteFollowUp(context.Background(), sub.SubmissionID, 3, nil); !errors.Is(err, domain.ErrFollowUpNotFound) {
		t.Fatalf("want ErrFollowUpNotFound, got %v", err)
	}
}

func TestDueToday_WindowIsLocalDay(t *testing.T) {
	f := newFixture()
	var gotFrom, gotTo time.Time
	f.subs.ListDueBetweenFn = func(ctx context.Context, businessID *uint64, from, to time.Time) ([]domain.Submission, error) {
		gotFrom, gotTo = from, to
		return []domain.Submission{*submission()}, nil
	}

	items, err := f.uc.DueToday(context.Background(), nil)
	if err != nil {
		t.Fatalf("DueToday: %v", err)
	}
	wantFrom := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if !gotFrom.Equal(wantFrom) || !gotTo.Equal(wantFrom.AddDate(0, 0, 1)) {
		t.Errorf("window [%v, %v)", gotFrom, gotTo)
	}
	if len(items) != 1 {
		t.Errorf("items = %d", len(items))
	}
}

func TestListSources_MergesDefaults(t *testing.T) {
	f := newFixture()
	f.sources.ListByBusinessFn = func(ctx context.Context, businessID uint64) ([]domain.LeadSource, error) {
		return []domain.LeadSource{{ID: 1, BusinessID: businessID, Name: "Trade Expo"}}, nil
	}

	out, err := f.uc.ListSources(context.Background(), 4)
	if err != nil {
		t.Fatalf("ListSources: %v", err)
	}
	if len(out) != len(domain.DefaultSources)+1 {
		t.Fatalf("len = %d", len(out))
	}
	if !out[0].IsDefault || out[0].Name != "Website" {
		t.Errorf("defaults must come first: %+v", out[0])
	}
	last := out[len(out)-1]
	if last.IsDefault || last.Name != "Trade Expo" || last.ID != 1 {
		t.Errorf("custom source mangled: %+v", last)
	}
}

func TestAddSource_Collisions(t *testing.T) {
	f := newFixture()
	f.sources.ListByBusinessFn = func(ctx context.Context, businessID uint64) ([]domain.LeadSource, error) {
		return []domain.LeadSource{{ID: 1, Name: "Trade Expo"}}, nil
	}

	// Default name collides.
	if _, err := f.uc.AddSource(context.Background(), 4, "Referral"); !errors.Is(err, domain.ErrSourceExists) {
		t.Fatalf("default collision: want ErrSourceExists, got %v", err)
	}
	// Exact custom collides.
	if _, err := f.uc.AddSource(context.Background(), 4, " Trade Expo "); !errors.Is(err, domain.ErrSourceExists) {
		t.Fatalf("custom collision: want ErrSourceExists, got %v", err)
	}
	// Collisions are case-sensitive: different case passes.
	var created *domain.LeadSource
	f.sources.CreateFn = func(ctx context.Context, s *domain.LeadSource) error {
		s.ID = 2
		created = s
		return nil
	}
	dto, err := f.uc.AddSource(context.Background(), 4, "trade expo")
	if err != nil {
		t.Fatalf("AddSource: %v", err)
	}
	if created.Name != "trade expo" || dto.ID != 2 || dto.IsDefault {
		t.Errorf("unexpected source: %+v / %+v", created, dto)
	}
}

func TestDeleteSource(t *testing.T) {
	f := newFixture()
	f.sources.GetByIDFn = func(ctx context.Context, sid uint64) (*domain.LeadSource, error) {
		if sid != 2 {
			return nil, gorm.ErrRecordNotFound
		}
		return &domain.LeadSource{ID: 2, BusinessID: 4, Name: "Trade Expo"}, nil
	}
	var deleted uint64
	f.sources.DeleteFn = func(ctx context.Context, sid uint64) error {
		deleted = sid
		return nil
	}

	if err := f.uc.DeleteSource(context.Background(), 4, 2); err != nil {
		t.Fatalf("DeleteSource: %v", err)
	}
	if deleted != 2 {
		t.Errorf("wrong source deleted: %d", deleted)
	}

	// Another business's source is invisible.
	if err := f.uc.DeleteSource(context.Background(), 99, 2); !errors.Is(err, domain.ErrSourceNotFound) {
		t.Fatalf("want ErrSourceNotFound, got %v", err)
	}
	// Unknown id.
	if err := f.uc.DeleteSource(context.Background(), 4, 404); !errors.Is(err, domain.ErrSourceNotFound) {
		t.Fatalf("want ErrSourceNotFound, got %v", err)
	}
}

func TestDeleteDefaultSource(t *testing.T) {
	f := newFixture()
	if err := f.uc.DeleteDefaultSource("Website"); !errors.Is(err, domain.ErrDefaultSourceLocked) {
		t.Fatalf("want ErrDefaultSourceLocked, got %v", err)
	}
	if err := f.uc.DeleteDefaultSource("Nope"); !errors.Is(err, domain.ErrSourceNotFound) {
		t.Fatalf("want ErrSourceNotFound, got %v", err)
	}
}
