package questionstore

import (
	"context"

	"gorm.io/gorm"
	dbmodels "skill-hire-backend/models/db"
)

type Provider interface {
	// CreateBulk appends recs to the challenge in the given order, all or nothing.
	CreateBulk(ctx context.Context, challengeID string, recs []dbmodels.Question) ([]dbmodels.Question, error)
	ListByChallenges(ctx context.Context, challengeIDs []string) ([]dbmodels.Question, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateBulk(ctx context.Context, challengeID string, recs []dbmodels.Question) ([]dbmodels.Question, error) {
	if len(recs) == 0 {
		return []dbmodels.Question{}, nil
	}
	for idx := range recs {
		recs[idx].ChallengeID = challengeID
		if err := recs[idx].Validate(); err != nil {
			return nil, err
		}
	}
	err := i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lastOrdinal *int
		err := tx.Model(&dbmodels.Question{}).
			Where("challenge_id = ?", challengeID).
			Select("max(ordinal)").
			Scan(&lastOrdinal).
			Error
		if err != nil {
			return err
		}
		next := 0
		if lastOrdinal != nil {
			next = *lastOrdinal + 1
		}
		for idx := range recs {
			recs[idx].Ordinal = next + idx
		}
		return tx.Create(&recs).Error
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (i impl) ListByChallenges(ctx context.Context, challengeIDs []string) (list []dbmodels.Question, err error) {
	list = []dbmodels.Question{}
	if len(challengeIDs) == 0 {
		return list, nil
	}
	err = i.db.WithContext(ctx).
		Where("challenge_id in (?)", challengeIDs).
		Order("challenge_id").
		Order("ordinal").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
