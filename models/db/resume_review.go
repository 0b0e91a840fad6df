package dbmodels

import "github.com/pkg/errors"

type ResumeReview struct {
	BaseModel
	ResumeUrl     string `gorm:"type:varchar(1024)"`
	Feedback      string
	Rating        int
	IntervieweeID string `gorm:"type:varchar(36);index"`
	Interviewee   *User  `gorm:"foreignKey:IntervieweeID"`
	ReviewedByID  string `gorm:"type:varchar(36)"`
	ReviewedBy    *User  `gorm:"foreignKey:ReviewedByID"`
}

func (r *ResumeReview) Validate() error {
	if r.IntervieweeID == "" {
		return errors.New("interviewee is not set")
	}
	if r.ReviewedByID == "" {
		return errors.New("reviewer is not set")
	}
	if r.Rating < 0 || r.Rating > 5 {
		return errors.New("rating must be between 0 and 5")
	}
	return nil
}
