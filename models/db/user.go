package dbmodels

import (
	"github.com/pkg/errors"
	"skill-hire-backend/models"
)

type User struct {
	BaseModel
	Name     string          `gorm:"type:varchar(255)"`
	Email    string          `gorm:"type:varchar(255);uniqueIndex"`
	Password string          `gorm:"type:varchar(128)"`
	Role     models.UserRole `gorm:"type:varchar(50)"`
}

func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("user name is empty")
	}
	if u.Email == "" {
		return errors.New("user email is empty")
	}
	if !u.Role.IsValid() {
		return errors.Errorf("unknown role %q", u.Role)
	}
	return nil
}
