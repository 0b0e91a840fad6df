package dbmodels

import (
	"github.com/pkg/errors"
	"skill-hire-backend/models"
)

type Challenge struct {
	BaseModel
	Title       string `gorm:"type:varchar(255)"`
	Description string
	Difficulty  models.ChallengeDifficulty `gorm:"type:varchar(20)"`
	PositionID  string                     `gorm:"type:varchar(36);index"`
	Position    *Position                  `gorm:"foreignKey:PositionID"`
	Questions   []Question                 `gorm:"foreignKey:ChallengeID"`
}

func (c *Challenge) Validate() error {
	if c.Title == "" {
		return errors.New("challenge title is empty")
	}
	if c.PositionID == "" {
		return errors.New("challenge position is not set")
	}
	if c.Difficulty != "" && !c.Difficulty.IsValid() {
		return errors.Errorf("unknown difficulty %q", c.Difficulty)
	}
	return nil
}

func (c Challenge) QuestionIDs() []string {
	ids := make([]string, 0, len(c.Questions))
	for _, q := range c.Questions {
		ids = append(ids, q.ID)
	}
	return ids
}
