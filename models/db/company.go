package dbmodels

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type Company struct {
	BaseModel
	Name               string         `gorm:"type:varchar(255)"`
	Description        string
	CultureTags        pq.StringArray `gorm:"type:text[]"`
	SalaryTransparency bool
	RecruiterID        string `gorm:"type:varchar(36);index"`
	Recruiter          *User  `gorm:"foreignKey:RecruiterID"`
}

func (c *Company) Validate() error {
	if c.Name == "" {
		return errors.New("company name is empty")
	}
	if c.RecruiterID == "" {
		return errors.New("company owner is not set")
	}
	return nil
}
