package uow

import (
	"context"

	"investlink-backend/internal/domain/business"
	"investlink-backend/internal/domain/interest"
	"investlink-backend/internal/domain/onboarding"
)

type Repos struct {
	Onboarding  onboarding.Repository
	Businesses  business.Repository
	Logins      business.LoginRepository
	Categories  business.CategoryRepository
	Removals    business.RemovalRepository
	Submissions interest.SubmissionRepository
	FollowUps   interest.FollowUpRepository
	LeadSources interest.LeadSourceRepository
}

// UnitOfWork runs multi-step writes as one database transaction. The
// repos handed to fn are bound to that transaction.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
