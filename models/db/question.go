package dbmodels

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"skill-hire-backend/models"
)

type Question struct {
	BaseModel
	QuestionText  string
	Type          models.QuestionType `gorm:"type:varchar(20)"`
	Options       pq.StringArray      `gorm:"type:text[]"`
	CorrectAnswer string
	Score         int
	ChallengeID   string `gorm:"type:varchar(36);index:idx_question_order,priority:1"`
	Ordinal       int    `gorm:"index:idx_question_order,priority:2"`
}

func (q *Question) Validate() error {
	if q.QuestionText == "" {
		return errors.New("question text is empty")
	}
	if !q.Type.IsValid() {
		return errors.Errorf("unknown question type %q", q.Type)
	}
	if q.Score < 0 {
		return errors.New("question score must not be negative")
	}
	if q.ChallengeID == "" {
		return errors.New("question challenge is not set")
	}
	return nil
}
