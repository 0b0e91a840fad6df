package positionstore

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "skill-hire-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, rec *dbmodels.Position) error
	GetByID(ctx context.Context, id string) (*dbmodels.Position, error)
	GetWithCompany(ctx context.Context, id string) (*dbmodels.Position, error)
	ListByCompanies(ctx context.Context, companyIDs []string) ([]dbmodels.Position, error)
	ListWithCompanyAndChallenges(ctx context.Context) ([]dbmodels.Position, error)
	IDsByCompanies(ctx context.Context, companyIDs []string) ([]string, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec *dbmodels.Position) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return i.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(rec).
		Error
}

func (i impl) GetByID(ctx context.Context, id string) (*dbmodels.Position, error) {
	return i.get(ctx, id, i.db.WithContext(ctx).Preload("Challenges", orderByCreated))
}

func (i impl) GetWithCompany(ctx context.Context, id string) (*dbmodels.Position, error) {
	return i.get(ctx, id, i.db.WithContext(ctx).
		Preload("Company").
		Preload("Challenges", orderByCreated))
}

func (i impl) get(ctx context.Context, id string, tx *gorm.DB) (*dbmodels.Position, error) {
	rec := dbmodels.Position{}
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

func (i impl) ListByCompanies(ctx context.Context, companyIDs []string) (list []dbmodels.Position, err error) {
	list = []dbmodels.Position{}
	if len(companyIDs) == 0 {
		return list, nil
	}
	err = i.db.WithContext(ctx).
		Where("company_id in (?)", companyIDs).
		Preload("Company").
		Preload("Challenges", orderByCreated).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListWithCompanyAndChallenges(ctx context.Context) (list []dbmodels.Position, err error) {
	list = []dbmodels.Position{}
	err = i.db.WithContext(ctx).
		Preload("Company").
		Preload("Challenges", orderByCreated).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) IDsByCompanies(ctx context.Context, companyIDs []string) (ids []string, err error) {
	ids = []string{}
	if len(companyIDs) == 0 {
		return ids, nil
	}
	err = i.db.WithContext(ctx).
		Model(&dbmodels.Position{}).
		Where("company_id in (?)", companyIDs).
		Pluck("id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func orderByCreated(db *gorm.DB) *gorm.DB {
	return db.Order("created_at")
}
