package resumereviewstore

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "skill-hire-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, rec *dbmodels.ResumeReview) error
	ListByInterviewee(ctx context.Context, intervieweeID string) ([]dbmodels.ResumeReview, error)
	ListByReviewer(ctx context.Context, reviewerID string) ([]dbmodels.ResumeReview, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec *dbmodels.ResumeReview) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return i.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(rec).
		Error
}

func (i impl) ListByInterviewee(ctx context.Context, intervieweeID string) ([]dbmodels.ResumeReview, error) {
	return i.list(ctx, "interviewee_id = ?", intervieweeID)
}

func (i impl) ListByReviewer(ctx context.Context, reviewerID string) ([]dbmodels.ResumeReview, error) {
	return i.list(ctx, "reviewed_by_id = ?", reviewerID)
}

func (i impl) list(ctx context.Context, query string, arg string) (list []dbmodels.ResumeReview, err error) {
	list = []dbmodels.ResumeReview{}
	err = i.db.WithContext(ctx).
		Preload("ReviewedBy", publicUserFields).
		Preload("Interviewee", publicUserFields).
		Where(query, arg).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func publicUserFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "role")
}
