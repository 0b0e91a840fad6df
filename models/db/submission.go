package dbmodels

import (
	"github.com/lib/pq"
	"skill-hire-backend/models"
)

type Submission struct {
	BaseModel
	IntervieweeID string                  `gorm:"type:varchar(36);index"`
	Interviewee   *User                   `gorm:"foreignKey:IntervieweeID"`
	ChallengeID   string                  `gorm:"type:varchar(36);index"`
	Challenge     *Challenge              `gorm:"foreignKey:ChallengeID"`
	PositionID    string                  `gorm:"type:varchar(36);index"`
	Position      *Position               `gorm:"foreignKey:PositionID"`
	Answers       pq.StringArray          `gorm:"type:text[]"`
	Score         int
	Feedback      *string
	Status        models.SubmissionStatus `gorm:"type:varchar(20);default:pending"`
}
