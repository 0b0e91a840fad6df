package submissionapimodels

import (
	"time"

	apperrors "skill-hire-backend/lib/utils/app-errors"
	"skill-hire-backend/models"
	authapimodels "skill-hire-backend/models/api/auth"
	hiringapimodels "skill-hire-backend/models/api/hiring"
	dbmodels "skill-hire-backend/models/db"
)

type SubmitRequest struct {
	ChallengeID string   `json:"challengeId"`
	PositionID  string   `json:"positionId"` // optional, taken from the challenge when empty
	Answers     []string `json:"answers"`    // one answer per question, in question order
	Score       int      `json:"score"`
}

func (r *SubmitRequest) Validate() error {
	if r.ChallengeID == "" {
		return apperrors.New(apperrors.ErrValidation, "challengeId is required")
	}
	if r.Answers == nil {
		r.Answers = []string{}
	}
	return nil
}

type StatusUpdateRequest struct {
	Status   string  `json:"status"`   // selected | rejected | on_hold ("on hold" is accepted)
	Feedback *string `json:"feedback"` // kept as is when omitted
}

// Validate accepts only review decisions, pending is never a target.
func (r StatusUpdateRequest) Validate() error {
	if r.Status == "" {
		return apperrors.New(apperrors.ErrInvalidStatus, "status is required")
	}
	if !r.NewStatus().IsReviewDecision() {
		return apperrors.Newf(apperrors.ErrInvalidStatus, "invalid status %q", r.Status)
	}
	return nil
}

func (r StatusUpdateRequest) NewStatus() models.SubmissionStatus {
	return models.ParseSubmissionStatus(r.Status)
}

type SubmissionView struct {
	ID            string                         `json:"id"`
	IntervieweeID string                         `json:"intervieweeId"`
	Interviewee   *authapimodels.UserView        `json:"interviewee,omitempty"`
	ChallengeID   string                         `json:"challengeId"`
	Challenge     *hiringapimodels.ChallengeView `json:"challenge,omitempty"`
	PositionID    string                         `json:"positionId"`
	Position      *hiringapimodels.PositionView  `json:"position,omitempty"`
	Answers       []string                       `json:"answers"`
	Score         int                            `json:"score"`
	Feedback      *string                        `json:"feedback"`
	Status        models.SubmissionStatus        `json:"status"`
	CreatedAt     time.Time                      `json:"createdAt"`
	UpdatedAt     time.Time                      `json:"updatedAt"`
}

// SubmissionConvert renders every relation that was loaded with the record.
func SubmissionConvert(rec dbmodels.Submission) SubmissionView {
	answers := []string(rec.Answers)
	if answers == nil {
		answers = []string{}
	}
	result := SubmissionView{
		ID:            rec.ID,
		IntervieweeID: rec.IntervieweeID,
		ChallengeID:   rec.ChallengeID,
		PositionID:    rec.PositionID,
		Answers:       answers,
		Score:         rec.Score,
		Feedback:      rec.Feedback,
		Status:        rec.Status,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
	if rec.Interviewee != nil {
		interviewee := authapimodels.UserConvert(*rec.Interviewee)
		result.Interviewee = &interviewee
	}
	if rec.Challenge != nil {
		challenge := hiringapimodels.ChallengeConvert(*rec.Challenge)
		result.Challenge = &challenge
	}
	if rec.Position != nil {
		position := hiringapimodels.PositionConvert(*rec.Position)
		result.Position = &position
	}
	return result
}

func SubmissionListConvert(list []dbmodels.Submission) []SubmissionView {
	result := make([]SubmissionView, 0, len(list))
	for _, rec := range list {
		result = append(result, SubmissionConvert(rec))
	}
	return result
}
