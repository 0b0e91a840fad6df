package dbmodels

import "skill-hire-backend/models"

type SubmissionHistory struct {
	BaseModel
	SubmissionID string                  `gorm:"type:varchar(36);index"`
	UserID       string                  `gorm:"type:varchar(36)"`
	UserName     string                  `gorm:"type:varchar(255)"`
	OldStatus    models.SubmissionStatus `gorm:"type:varchar(20)"`
	NewStatus    models.SubmissionStatus `gorm:"type:varchar(20)"`
	Feedback     *string
}
