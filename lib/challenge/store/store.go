package challengestore

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "skill-hire-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, rec *dbmodels.Challenge) error
	GetByID(ctx context.Context, id string) (*dbmodels.Challenge, error)
	GetWithQuestions(ctx context.Context, id string) (*dbmodels.Challenge, error)
	GetWithPositionAndQuestions(ctx context.Context, id string) (*dbmodels.Challenge, error)
	ListByPositions(ctx context.Context, positionIDs []string) ([]dbmodels.Challenge, error)
	IDsByPositions(ctx context.Context, positionIDs []string) ([]string, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec *dbmodels.Challenge) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return i.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(rec).
		Error
}

func (i impl) GetByID(ctx context.Context, id string) (*dbmodels.Challenge, error) {
	return i.get(i.db.WithContext(ctx), id)
}

func (i impl) GetWithQuestions(ctx context.Context, id string) (*dbmodels.Challenge, error) {
	return i.get(i.db.WithContext(ctx).Preload("Questions", QuestionOrder), id)
}

func (i impl) GetWithPositionAndQuestions(ctx context.Context, id string) (*dbmodels.Challenge, error) {
	return i.get(i.db.WithContext(ctx).
		Preload("Position").
		Preload("Questions", QuestionOrder), id)
}

func (i impl) get(tx *gorm.DB, id string) (*dbmodels.Challenge, error) {
	rec := dbmodels.Challenge{}
	err := tx.
		Where("id = ?", id).
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

func (i impl) ListByPositions(ctx context.Context, positionIDs []string) (list []dbmodels.Challenge, err error) {
	list = []dbmodels.Challenge{}
	if len(positionIDs) == 0 {
		return list, nil
	}
	err = i.db.WithContext(ctx).
		Where("position_id in (?)", positionIDs).
		Preload("Questions", QuestionOrder).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) IDsByPositions(ctx context.Context, positionIDs []string) (ids []string, err error) {
	ids = []string{}
	if len(positionIDs) == 0 {
		return ids, nil
	}
	err = i.db.WithContext(ctx).
		Model(&dbmodels.Challenge{}).
		Where("position_id in (?)", positionIDs).
		Pluck("id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// QuestionOrder keeps questions in the order they were appended to the challenge.
func QuestionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("ordinal").Order("created_at")
}
