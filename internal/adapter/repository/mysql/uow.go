package mysql

import (
	"context"

	"investlink-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Onboarding:  &OnboardingRepository{db: tx},
		Businesses:  &BusinessRepository{db: tx},
		Logins:      &LoginRepository{db: tx},
		Categories:  &CategoryRepository{db: tx},
		Removals:    &RemovalRepository{db: tx},
		Submissions: &SubmissionRepository{db: tx},
		FollowUps:   &FollowUpRepository{db: tx},
		LeadSources: &LeadSourceRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}
