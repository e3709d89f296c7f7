package mysql

import (
	"context"
	"errors"
	"testing"

	domain "investlink-backend/internal/domain/business"
	"investlink-backend/pkg/id"

	"gorm.io/gorm"
)

func makeBusiness(loginID uint64, name, regNum string) *domain.Business {
	return &domain.Business{
		BusinessID:         id.NewID32(),
		LoginID:            loginID,
		Name:               name,
		RegistrationNumber: regNum,
		CategoryID:         1,
		Status:             domain.StatusPending,
		IsActive:           true,
	}
}

func TestBusinessCreateAndGetters(t *testing.T) {
	db := openTestDB(t)
	repo := NewBusinessRepository(db)
	ctx := context.Background()

	b := makeBusiness(1, "Warung Sehat", "REG-001")
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	byPublic, err := repo.GetByBusinessID(ctx, b.BusinessID)
	if err != nil {
		t.Fatalf("GetByBusinessID: %v", err)
	}
	if byPublic.Name != "Warung Sehat" {
		t.Errorf("unexpected business: %+v", byPublic)
	}

	byLogin, err := repo.GetByLoginID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByLoginID: %v", err)
	}
	if byLogin.ID != b.ID {
		t.Errorf("GetByLoginID mismatch: %d != %d", byLogin.ID, b.ID)
	}

	byReg, err := repo.GetByRegistrationNumber(ctx, "REG-001")
	if err != nil {
		t.Fatalf("GetByRegistrationNumber: %v", err)
	}
	if byReg.ID != b.ID {
		t.Errorf("GetByRegistrationNumber mismatch")
	}

	byID, err := repo.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.BusinessID != b.BusinessID {
		t.Errorf("GetByID mismatch")
	}

	if _, err := repo.GetByBusinessID(ctx, "ffffffffffffffffffffffffffffffff"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestBusinessList_Filters(t *testing.T) {
	db := openTestDB(t)
	repo := NewBusinessRepository(db)
	ctx := context.Background()

	approved := makeBusiness(1, "Kopi Anak Bangsa", "REG-A")
	approved.Status = domain.StatusApproved
	inactive := makeBusiness(2, "Kopi Tutup", "REG-B")
	inactive.Status = domain.StatusApproved
	inactive.IsActive = false
	pending := makeBusiness(3, "Bengkel Baru", "REG-C")

	for _, b := range []*domain.Business{approved, inactive, pending} {
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	st := domain.StatusApproved
	active := true

	// The public directory view: approved AND active.
	items, total, err := repo.List(ctx, domain.ListFilter{Status: &st, IsActive: &active, Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].Name != "Kopi Anak Bangsa" {
		t.Errorf("approved+active: total=%d items=%+v", total, items)
	}

	// Name search matches substrings.
	items, total, err = repo.List(ctx, domain.ListFilter{Search: "Kopi", Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List search: %v", err)
	}
	if total != 2 {
		t.Errorf("search: total=%d items=%+v", total, items)
	}
}

func TestBusinessIncrementViewCount(t *testing.T) {
	db := openTestDB(t)
	repo := NewBusinessRepository(db)
	ctx := context.Background()

	b := makeBusiness(1, "Viewed", "REG-V")
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := repo.IncrementViewCount(ctx, b.ID); err != nil {
			t.Fatalf("IncrementViewCount: %v", err)
		}
	}

	got, err := repo.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ViewCount != 3 {
		t.Errorf("ViewCount = %d, want 3", got.ViewCount)
	}
}

func TestLoginRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoginRepository(db)
	ctx := context.Background()

	l := &domain.Login{Email: "owner@example.com", PasswordHash: "x", IsActive: true}
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "owner@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != l.ID {
		t.Errorf("GetByEmail mismatch")
	}

	got.IsActive = false
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, err := repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if again.IsActive {
		t.Errorf("IsActive not persisted")
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Food & Beverage":  "food-&-beverage",
		"  Retail  ":       "retail",
		"Green   Energy":   "green-energy",
		"AGRICULTURE":      "agriculture",
		"Fin Tech Startup": "fin-tech-startup",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCategoryFindOrCreate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	first, err := repo.FindOrCreate(ctx, "Food & Beverage")
	if err != nil {
		t.Fatalf("FindOrCreate: %v", err)
	}
	if first.ID == 0 || first.Slug != "food-&-beverage" {
		t.Fatalf("unexpected category: %+v", first)
	}

	// Same slug under different spacing/case resolves to the same row.
	second, err := repo.FindOrCreate(ctx, "  food & BEVERAGE ")
	if err != nil {
		t.Fatalf("FindOrCreate again: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected same category, got %d and %d", first.ID, second.ID)
	}

	cats, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(cats) != 1 {
		t.Errorf("expected a single category, got %d", len(cats))
	}
}

func TestRemovalRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewRemovalRepository(db)
	ctx := context.Background()

	reason := "closing down"
	rr := &domain.RemovalRequest{
		RemovalID:  id.NewID32(),
		BusinessID: 5,
		Reason:     &reason,
		Status:     domain.RemovalPending,
	}
	if err := repo.Create(ctx, rr); err != nil {
		t.Fatalf("Create: %v", err)
	}

	pending, err := repo.GetPendingByBusinessID(ctx, 5)
	if err != nil {
		t.Fatalf("GetPendingByBusinessID: %v", err)
	}
	if pending.RemovalID != rr.RemovalID {
		t.Errorf("wrong pending request: %+v", pending)
	}

	// Once reviewed, no pending request remains for the business.
	pending.Status = domain.RemovalApproved
	if err := repo.Save(ctx, pending); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := repo.GetPendingByBusinessID(ctx, 5); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("reviewed: expected ErrRecordNotFound, got %v", err)
	}

	st := domain.RemovalApproved
	items, total, err := repo.List(ctx, domain.RemovalListFilter{Status: &st, Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Errorf("List filtered: total=%d len=%d", total, len(items))
	}
}
