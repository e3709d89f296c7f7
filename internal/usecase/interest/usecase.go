package interest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainBusiness "investlink-backend/internal/domain/business"
	domainInterest "investlink-backend/internal/domain/interest"
	"investlink-backend/internal/domain/uow"
	"investlink-backend/internal/infrastructure/mail"
	"investlink-backend/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Usecase struct {
	subs       domainInterest.SubmissionRepository
	followUps  domainInterest.FollowUpRepository
	sources    domainInterest.LeadSourceRepository
	businesses domainBusiness.Repository
	logins     domainBusiness.LoginRepository
	uow        uow.UnitOfWork
	mailer     mail.Mailer
	log        *zap.Logger

	now func() time.Time
}

func NewUsecase(
	subs domainInterest.SubmissionRepository,
	followUps domainInterest.FollowUpRepository,
	sources domainInterest.LeadSourceRepository,
	businesses domainBusiness.Repository,
	logins domainBusiness.LoginRepository,
	tx uow.UnitOfWork,
	mailer mail.Mailer,
	log *zap.Logger,
) *Usecase {
	return &Usecase{
		subs:       subs,
		followUps:  followUps,
		sources:    sources,
		businesses: businesses,
		logins:     logins,
		uow:        tx,
		mailer:     mailer,
		log:        log,
		now:        time.Now,
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

// Submit records an investor's interest against a published business.
// Both notification emails are best-effort and sent after the insert.
func (u *Usecase) Submit(ctx context.Context, businessID string, in SubmitInput) (*SubmissionDTO, error) {
	biz, err := u.businesses.GetByBusinessID(ctx, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainBusiness.ErrNotFound
		}
		return nil, err
	}
	if !biz.Published() {
		return nil, domainInterest.ErrBusinessNotPublished
	}
	if !in.HasConsent {
		return nil, domainInterest.ErrConsentRequired
	}

	source := strings.TrimSpace(in.Source)
	if source == "" {
		source = "Website"
	}

	sub := &domainInterest.Submission{
		SubmissionID: id.NewID32(),
		BusinessID:   biz.ID,
		InvestorName: strings.TrimSpace(in.InvestorName),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Message:      in.Message,
		HasConsent:   true,
		Status:       domainInterest.StatusNotContacted,
		Source:       source,
	}
	if err := u.subs.Create(ctx, sub); err != nil {
		return nil, err
	}

	if login, err := u.logins.GetByID(ctx, biz.LoginID); err == nil {
		u.sendMail(mail.Message{
			To:      login.Email,
			Subject: "New investor interest",
			Body:    fmt.Sprintf("%s expressed interest in %s.\nPhone: %s\nEmail: %s\n", sub.InvestorName, biz.Name, sub.PhoneNumber, sub.Email),
		})
	}
	u.sendMail(mail.Message{
		To:      sub.Email,
		Subject: "Your interest was registered",
		Body:    fmt.Sprintf("Hi %s,\n\nWe passed your interest in %s along. The business will contact you.\n", sub.InvestorName, biz.Name),
	})

	return u.toDTO(ctx, sub), nil
}

// scope restricts reads and writes to one business; nil means admin.
func (u *Usecase) inScope(sub *domainInterest.Submission, scope *uint64) bool {
	return scope == nil || sub.BusinessID == *scope
}

func (u *Usecase) Get(ctx context.Context, submissionID string, scope *uint64) (*SubmissionDTO, error) {
	sub, err := u.getScoped(ctx, submissionID, scope)
	if err != nil {
		return nil, err
	}
	return u.toDTO(ctx, sub), nil
}

func (u *Usecase) List(ctx context.Context, scope *uint64, in ListInput) ([]SubmissionDTO, int64, error) {
	f := domainInterest.ListFilter{
		BusinessID: scope,
		Contacted:  in.Contacted,
		Page:       in.Page,
		Limit:      in.Limit,
	}
	if in.Status != "" {
		s := domainInterest.Status(in.Status)
		f.Status = &s
	}
	items, total, err := u.subs.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]SubmissionDTO, 0, len(items))
	for i := range items {
		out = append(out, *u.toDTO(ctx, &items[i]))
	}
	return out, total, nil
}

// Update applies the partial contact-tracking update. A status other
// than not_contacted always forces contacted=true; nothing ever forces
// it back to false.
func (u *Usecase) Update(ctx context.Context, submissionID string, scope *uint64, in UpdateInput) (*SubmissionDTO, error) {
	sub, err := u.getScoped(ctx, submissionID, scope)
	if err != nil {
		return nil, err
	}

	if in.Contacted != nil {
		sub.Contacted = *in.Contacted
	}
	if in.FollowUpRemarks != nil {
		sub.FollowUpRemarks = in.FollowUpRemarks
	}
	if in.Source != nil {
		sub.Source = *in.Source
	}
	if in.Status != nil {
		s := domainInterest.Status(*in.Status)
		sub.Status = s
		if s != domainInterest.StatusNotContacted {
			sub.Contacted = true
		}
	}

	if err := u.subs.Save(ctx, sub); err != nil {
		return nil, err
	}
	return u.toDTO(ctx, sub), nil
}

// AddFollowUp appends the next numbered note. The number comes from the
// submission's counter inside the transaction, so deleting the latest
// entry never frees its number. Adding a follow-up also marks the lead
// contacted.
func (u *Usecase) AddFollowUp(ctx context.Context, submissionID string, scope *uint64, in FollowUpInput) (*FollowUpDTO, error) {
	if strings.TrimSpace(in.Remarks) == "" {
		return nil, domainInterest.ErrRemarksRequired
	}

	var dto *FollowUpDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		sub, err := r.Submissions.GetBySubmissionIDForUpdate(ctx, submissionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainInterest.ErrNotFound
			}
			return err
		}
		if !u.inScope(sub, scope) {
			return domainInterest.ErrNotFound
		}

		sub.FollowUpSeq++
		sub.Contacted = true

		fu := &domainInterest.FollowUp{
			SubmissionID:     sub.ID,
			FollowUpNumber:   int(sub.FollowUpSeq),
			Remarks:          in.Remarks,
			NextFollowUpDate: in.NextFollowUpDate,
		}
		if err := r.FollowUps.Create(ctx, fu); err != nil {
			return err
		}
		if err := r.Submissions.Save(ctx, sub); err != nil {
			return err
		}

		dto = toFollowUpDTO(fu)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) UpdateFollowUp(ctx context.Context, submissionID string, followUpID uint64, scope *uint64, in FollowUpInput) (*FollowUpDTO, error) {
	sub, err := u.getScoped(ctx, submissionID, scope)
	if err != nil {
		return nil, err
	}
	fu, err := u.followUp(ctx, sub, followUpID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Remarks) != "" {
		fu.Remarks = in.Remarks
	}
	fu.NextFollowUpDate = in.NextFollowUpDate

	if err := u.followUps.Save(ctx, fu); err != nil {
		return nil, err
	}
	return toFollowUpDTO(fu), nil
}

// DeleteFollowUp removes one note; siblings keep their numbers.
func (u *Usecase) DeleteFollowUp(ctx context.Context, submissionID string, followUpID uint64, scope *uint64) error {
	sub, err := u.getScoped(ctx, submissionID, scope)
	if err != nil {
		return err
	}
	fu, err := u.followUp(ctx, sub, followUpID)
	if err != nil {
		return err
	}
	return u.followUps.Delete(ctx, fu.ID)
}

func (u *Usecase) ListFollowUps(ctx context.Context, submissionID string, scope *uint64) ([]FollowUpDTO, error) {
	sub, err := u.getScoped(ctx, submissionID, scope)
	if err != nil {
		return nil, err
	}
	items, err := u.followUps.ListBySubmission(ctx, sub.ID)
	if err != nil {
		return nil, err
	}
	out := make([]FollowUpDTO, 0, len(items))
	for i := range items {
		out = append(out, *toFollowUpDTO(&items[i]))
	}
	return out, nil
}

// DueToday lists submissions with a follow-up scheduled in
// [local midnight today, local midnight tomorrow).
func (u *Usecase) DueToday(ctx context.Context, scope *uint64) ([]SubmissionDTO, error) {
	now := u.now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	items, err := u.subs.ListDueBetween(ctx, scope, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]SubmissionDTO, 0, len(items))
	for i := range items {
		out = append(out, *u.toDTO(ctx, &items[i]))
	}
	return out, nil
}

// ListSources merges the fixed defaults with the business's custom set.
func (u *Usecase) ListSources(ctx context.Context, businessID uint64) ([]LeadSourceDTO, error) {
	out := make([]LeadSourceDTO, 0, len(domainInterest.DefaultSources))
	for _, name := range domainInterest.DefaultSources {
		out = append(out, LeadSourceDTO{Name: name, IsDefault: true})
	}
	custom, err := u.sources.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	for _, c := range custom {
		out = append(out, LeadSourceDTO{ID: c.ID, Name: c.Name, IsDefault: false})
	}
	return out, nil
}

// AddSource rejects case-sensitive exact collisions against defaults and
// existing customs.
func (u *Usecase) AddSource(ctx context.Context, businessID uint64, name string) (*LeadSourceDTO, error) {
	name = strings.TrimSpace(name)
	if domainInterest.IsDefaultSource(name) {
		return nil, domainInterest.ErrSourceExists
	}
	existing, err := u.sources.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	for _, s := range existing {
		if s.Name == name {
			return nil, domainInterest.ErrSourceExists
		}
	}

	src := &domainInterest.LeadSource{BusinessID: businessID, Name: name}
	if err := u.sources.Create(ctx, src); err != nil {
		return nil, err
	}
	return &LeadSourceDTO{ID: src.ID, Name: src.Name, IsDefault: false}, nil
}

// DeleteSource removes a custom entry; defaults are immutable.
func (u *Usecase) DeleteSource(ctx context.Context, businessID, sourceID uint64) error {
	src, err := u.sources.GetByID(ctx, sourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainInterest.ErrSourceNotFound
		}
		return err
	}
	if src.BusinessID != businessID {
		return domainInterest.ErrSourceNotFound
	}
	return u.sources.Delete(ctx, src.ID)
}

// DeleteDefaultSource exists only to give the attempt a distinct error.
func (u *Usecase) DeleteDefaultSource(name string) error {
	if domainInterest.IsDefaultSource(name) {
		return domainInterest.ErrDefaultSourceLocked
	}
	return domainInterest.ErrSourceNotFound
}

func (u *Usecase) getScoped(ctx context.Context, submissionID string, scope *uint64) (*domainInterest.Submission, error) {
	sub, err := u.subs.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainInterest.ErrNotFound
		}
		return nil, err
	}
	if !u.inScope(sub, scope) {
		return nil, domainInterest.ErrNotFound
	}
	return sub, nil
}

func (u *Usecase) followUp(ctx context.Context, sub *domainInterest.Submission, followUpID uint64) (*domainInterest.FollowUp, error) {
	fu, err := u.followUps.GetByID(ctx, followUpID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainInterest.ErrFollowUpNotFound
		}
		return nil, err
	}
	if fu.SubmissionID != sub.ID {
		return nil, domainInterest.ErrFollowUpNotFound
	}
	return fu, nil
}

func (u *Usecase) toDTO(ctx context.Context, s *domainInterest.Submission) *SubmissionDTO {
	businessPublicID := ""
	if biz, err := u.businesses.GetByID(ctx, s.BusinessID); err == nil {
		businessPublicID = biz.BusinessID
	}
	return &SubmissionDTO{
		SubmissionID:    s.SubmissionID,
		BusinessID:      businessPublicID,
		InvestorName:    s.InvestorName,
		PhoneNumber:     s.PhoneNumber,
		Email:           s.Email,
		Message:         s.Message,
		HasConsent:      s.HasConsent,
		Contacted:       s.Contacted,
		FollowUpRemarks: s.FollowUpRemarks,
		Status:          string(s.Status),
		Source:          s.Source,
		SubmittedAt:     s.SubmittedAt,
	}
}

func toFollowUpDTO(f *domainInterest.FollowUp) *FollowUpDTO {
	return &FollowUpDTO{
		ID:               f.ID,
		FollowUpNumber:   f.FollowUpNumber,
		Remarks:          f.Remarks,
		NextFollowUpDate: f.NextFollowUpDate,
		CreatedAt:        f.CreatedAt,
	}
}
