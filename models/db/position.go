package dbmodels

import (
	"github.com/pkg/errors"
)

type Position struct {
	BaseModel
	Title       string `gorm:"type:varchar(255)"`
	Description string
	SampleWork  string      `gorm:"type:varchar(1024)"`
	CompanyID   string      `gorm:"type:varchar(36);index"`
	Company     *Company    `gorm:"foreignKey:CompanyID"`
	Challenges  []Challenge `gorm:"foreignKey:PositionID"`
}

func (p *Position) Validate() error {
	if p.Title == "" {
		return errors.New("position title is empty")
	}
	if p.CompanyID == "" {
		return errors.New("position company is not set")
	}
	return nil
}

func (p Position) ChallengeIDs() []string {
	ids := make([]string, 0, len(p.Challenges))
	for _, ch := range p.Challenges {
		ids = append(ids, ch.ID)
	}
	return ids
}
