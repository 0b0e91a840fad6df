package memstore

import (
	"context"

	"github.com/pkg/errors"
	usersstore "skill-hire-backend/lib/users/store"
	dbmodels "skill-hire-backend/models/db"
)

func (d *DB) Users() usersstore.Provider {
	return users{db: d}
}

type users struct {
	db *DB
}

func (s users) Create(ctx context.Context, rec *dbmodels.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.check(ctx); err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	for _, user := range s.db.users {
		if user.Email == rec.Email {
			return errors.New("duplicate key value violates unique constraint \"idx_users_email\"")
		}
	}
	rec.BaseModel = s.db.newBase(rec.BaseModel)
	s.db.users = append(s.db.users, *rec)
	return nil
}

func (s users) GetByID(ctx context.Context, id string) (*dbmodels.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	return s.db.user(id), nil
}

func (s users) FindByEmail(ctx context.Context, email string) (*dbmodels.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if err := s.db.check(ctx); err != nil {
		return nil, err
	}
	for _, user := range s.db.users {
		if user.Email == email {
			rec := user
			return &rec, nil
		}
	}
	return nil, nil
}

func (s users) ExistByEmail(ctx context.Context, email string) (bool, error) {
	rec, err := s.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return rec != nil, nil
}
