package usersstore

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "skill-hire-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, rec *dbmodels.User) error
	GetByID(ctx context.Context, id string) (*dbmodels.User, error)
	FindByEmail(ctx context.Context, email string) (*dbmodels.User, error)
	ExistByEmail(ctx context.Context, email string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec *dbmodels.User) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return i.db.WithContext(ctx).
		Create(rec).
		Error
}

func (i impl) GetByID(ctx context.Context, id string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
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

func (i impl) FindByEmail(ctx context.Context, email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.WithContext(ctx).
		Where("email = ?", email).
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

func (i impl) ExistByEmail(ctx context.Context, email string) (bool, error) {
	var rowCount int64
	err := i.db.WithContext(ctx).
		Model(&dbmodels.User{}).
		Where("email = ?", email).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount != 0, nil
}
