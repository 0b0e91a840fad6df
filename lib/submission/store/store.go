package submissionstore

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "skill-hire-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, rec *dbmodels.Submission) error
	GetByID(ctx context.Context, id string) (*dbmodels.Submission, error)
	// GetPopulated loads the interviewee, the challenge and the position with its company.
	GetPopulated(ctx context.Context, id string) (*dbmodels.Submission, error)
	ListByChallenges(ctx context.Context, challengeIDs []string) ([]dbmodels.Submission, error)
	ListByInterviewee(ctx context.Context, intervieweeID string) ([]dbmodels.Submission, error)
	LatestByIntervieweeAndChallenge(ctx context.Context, intervieweeID, challengeID string) (*dbmodels.Submission, error)
	Update(ctx context.Context, id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec *dbmodels.Submission) error {
	return i.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(rec).
		Error
}

func (i impl) GetByID(ctx context.Context, id string) (*dbmodels.Submission, error) {
	return i.get(i.db.WithContext(ctx).Where("id = ?", id))
}

func (i impl) GetPopulated(ctx context.Context, id string) (*dbmodels.Submission, error) {
	return i.get(i.populated(ctx).Where("id = ?", id))
}

func (i impl) LatestByIntervieweeAndChallenge(ctx context.Context, intervieweeID, challengeID string) (*dbmodels.Submission, error) {
	return i.get(i.db.WithContext(ctx).
		Preload("Challenge").
		Where("interviewee_id = ? and challenge_id = ?", intervieweeID, challengeID).
		Order("created_at desc"))
}

func (i impl) get(tx *gorm.DB) (*dbmodels.Submission, error) {
	rec := dbmodels.Submission{}
	err := tx.
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByChallenges(ctx context.Context, challengeIDs []string) (list []dbmodels.Submission, err error) {
	list = []dbmodels.Submission{}
	if len(challengeIDs) == 0 {
		return list, nil
	}
	err = i.populated(ctx).
		Where("challenge_id in (?)", challengeIDs).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByInterviewee(ctx context.Context, intervieweeID string) (list []dbmodels.Submission, err error) {
	list = []dbmodels.Submission{}
	err = i.db.WithContext(ctx).
		Preload("Challenge.Position.Company").
		Preload("Position.Company").
		Where("interviewee_id = ?", intervieweeID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(ctx context.Context, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.Submission{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("submission not found")
	}
	return nil
}

func (i impl) populated(ctx context.Context) *gorm.DB {
	return i.db.WithContext(ctx).
		Preload("Interviewee", func(db *gorm.DB) *gorm.DB {
			// never load password hashes into responses
			return db.Select("id", "name", "email", "role", "created_at", "updated_at")
		}).
		Preload("Challenge").
		Preload("Position.Company")
}
