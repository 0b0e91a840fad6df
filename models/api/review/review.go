package reviewapimodels

import (
	"time"

	apperrors "skill-hire-backend/lib/utils/app-errors"
	authapimodels "skill-hire-backend/models/api/auth"
	dbmodels "skill-hire-backend/models/db"
)

type ResumeReviewData struct {
	ResumeUrl     string `json:"resumeUrl"`
	Feedback      string `json:"feedback"`
	Rating        int    `json:"rating"` // 0..5
	IntervieweeID string `json:"intervieweeId"`
}

func (r ResumeReviewData) Validate() error {
	if r.IntervieweeID == "" {
		return apperrors.New(apperrors.ErrValidation, "intervieweeId is required")
	}
	if r.Rating < 0 || r.Rating > 5 {
		return apperrors.New(apperrors.ErrValidation, "rating must be between 0 and 5")
	}
	return nil
}

func (r ResumeReviewData) ToRecord(reviewerID string) dbmodels.ResumeReview {
	return dbmodels.ResumeReview{
		ResumeUrl:     r.ResumeUrl,
		Feedback:      r.Feedback,
		Rating:        r.Rating,
		IntervieweeID: r.IntervieweeID,
		ReviewedByID:  reviewerID,
	}
}

type ResumeReviewView struct {
	ID            string                  `json:"id"`
	ResumeUrl     string                  `json:"resumeUrl"`
	Feedback      string                  `json:"feedback"`
	Rating        int                     `json:"rating"`
	IntervieweeID string                  `json:"intervieweeId"`
	ReviewedByID  string                  `json:"reviewedById"`
	ReviewedBy    *authapimodels.UserView `json:"reviewedBy,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"`
}

func ResumeReviewConvert(rec dbmodels.ResumeReview) ResumeReviewView {
	result := ResumeReviewView{
		ID:            rec.ID,
		ResumeUrl:     rec.ResumeUrl,
		Feedback:      rec.Feedback,
		Rating:        rec.Rating,
		IntervieweeID: rec.IntervieweeID,
		ReviewedByID:  rec.ReviewedByID,
		CreatedAt:     rec.CreatedAt,
	}
	if rec.ReviewedBy != nil {
		reviewer := authapimodels.UserConvert(*rec.ReviewedBy)
		result.ReviewedBy = &reviewer
	}
	return result
}

func ResumeReviewListConvert(list []dbmodels.ResumeReview) []ResumeReviewView {
	result := make([]ResumeReviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, ResumeReviewConvert(rec))
	}
	return result
}
