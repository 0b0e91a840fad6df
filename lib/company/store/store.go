package companystore

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "skill-hire-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, rec *dbmodels.Company) error
	GetByID(ctx context.Context, id string) (*dbmodels.Company, error)
	ListByRecruiter(ctx context.Context, recruiterID string) ([]dbmodels.Company, error)
	IDsByRecruiter(ctx context.Context, recruiterID string) ([]string, error)
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

func (i impl) Create(ctx context.Context, rec *dbmodels.Company) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return i.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(rec).
		Error
}

func (i impl) GetByID(ctx context.Context, id string) (*dbmodels.Company, error) {
	rec := dbmodels.Company{}
	err := i.db.WithContext(ctx).
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

func (i impl) ListByRecruiter(ctx context.Context, recruiterID string) (list []dbmodels.Company, err error) {
	list = []dbmodels.Company{}
	err = i.db.WithContext(ctx).
		Where("recruiter_id = ?", recruiterID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) IDsByRecruiter(ctx context.Context, recruiterID string) (ids []string, err error) {
	ids = []string{}
	err = i.db.WithContext(ctx).
		Model(&dbmodels.Company{}).
		Where("recruiter_id = ?", recruiterID).
		Pluck("id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (i impl) Update(ctx context.Context, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.Company{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("company not found")
	}
	return nil
}
