package submissionhistorystore

import (
	"context"

	"gorm.io/gorm"
	dbmodels "skill-hire-backend/models/db"
)

type Provider interface {
	Save(ctx context.Context, rec dbmodels.SubmissionHistory) error
	List(ctx context.Context, submissionID string) ([]dbmodels.SubmissionHistory, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(ctx context.Context, rec dbmodels.SubmissionHistory) error {
	return i.db.WithContext(ctx).
		Create(&rec).
		Error
}

func (i impl) List(ctx context.Context, submissionID string) (list []dbmodels.SubmissionHistory, err error) {
	list = []dbmodels.SubmissionHistory{}
	err = i.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
