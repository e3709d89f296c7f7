package mysql

import (
	"context"
	"time"

	interestDomain "investlink-backend/internal/domain/interest"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository struct{ db *gorm.DB }

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *interestDomain.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SubmissionRepository) Save(ctx context.Context, s *interestDomain.Submission) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SubmissionRepository) GetBySubmissionID(ctx context.Context, submissionID string) (*interestDomain.Submission, error) {
	var out interestDomain.Submission
	res := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*interestDomain.Submission, error) {
	var out interestDomain.Submission
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("submission_id = ?", submissionID).
		First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) List(ctx context.Context, f interestDomain.ListFilter) ([]interestDomain.Submission, int64, error) {
	q := r.db.WithContext(ctx).Model(&interestDomain.Submission{})
	if f.BusinessID != nil {
		q = q.Where("business_id = ?", *f.BusinessID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Contacted != nil {
		q = q.Where("contacted = ?", *f.Contacted)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []interestDomain.Submission
	err := q.Order("submitted_at DESC, id DESC").
		Scopes(paginate(f.Page, f.Limit)).
		Find(&items).Error
	return items, total, err
}

func (r *SubmissionRepository) ListDueBetween(ctx context.Context, businessID *uint64, from, to time.Time) ([]interestDomain.Submission, error) {
	q := r.db.WithContext(ctx).
		Model(&interestDomain.Submission{}).
		Joins("JOIN interest_follow_ups f ON f.submission_id = interest_submissions.id").
		Where("f.next_follow_up_date >= ? AND f.next_follow_up_date < ?", from, to)
	if businessID != nil {
		q = q.Where("interest_submissions.business_id = ?", *businessID)
	}

	var items []interestDomain.Submission
	err := q.Group("interest_submissions.id").
		Order("interest_submissions.id ASC").
		Find(&items).Error
	return items, err
}

type FollowUpRepository struct{ db *gorm.DB }

func NewFollowUpRepository(db *gorm.DB) *FollowUpRepository { return &FollowUpRepository{db: db} }

func (r *FollowUpRepository) Create(ctx context.Context, f *interestDomain.FollowUp) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FollowUpRepository) Save(ctx context.Context, f *interestDomain.FollowUp) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *FollowUpRepository) GetByID(ctx context.Context, id uint64) (*interestDomain.FollowUp, error) {
	var out interestDomain.FollowUp
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *FollowUpRepository) ListBySubmission(ctx context.Context, submissionID uint64) ([]interestDomain.FollowUp, error) {
	var out []interestDomain.FollowUp
	err := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("follow_up_number ASC").
		Find(&out).Error
	return out, err
}

func (r *FollowUpRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&interestDomain.FollowUp{}, id).Error
}

type LeadSourceRepository struct{ db *gorm.DB }

func NewLeadSourceRepository(db *gorm.DB) *LeadSourceRepository {
	return &LeadSourceRepository{db: db}
}

func (r *LeadSourceRepository) Create(ctx context.Context, s *interestDomain.LeadSource) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *LeadSourceRepository) GetByID(ctx context.Context, id uint64) (*interestDomain.LeadSource, error) {
	var out interestDomain.LeadSource
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LeadSourceRepository) ListByBusiness(ctx context.Context, businessID uint64) ([]interestDomain.LeadSource, error) {
	var out []interestDomain.LeadSource
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("name ASC").
		Find(&out).Error
	return out, err
}

func (r *LeadSourceRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&interestDomain.LeadSource{}, id).Error
}
