package submissionapimodels

import (
	"time"

	"skill-hire-backend/lib/utils/helpers"
	"skill-hire-backend/models"
	dbmodels "skill-hire-backend/models/db"
)

// ResultView is how an interviewee sees one of their submissions.
type ResultView struct {
	ChallengeTitle string                  `json:"challengeTitle"`
	PositionTitle  string                  `json:"positionTitle"`
	CompanyName    string                  `json:"companyName"`
	Score          int                     `json:"score"`
	Status         models.SubmissionStatus `json:"status"`
	Feedback       *string                 `json:"feedback"`
	SubmittedAt    time.Time               `json:"submittedAt"`
}

// ResultConvert falls back from the submission's position to the challenge's one,
// anything still missing is rendered as N/A.
func ResultConvert(rec dbmodels.Submission) ResultView {
	var challengeTitle, positionTitle, companyName string
	position := rec.Position
	if rec.Challenge != nil {
		challengeTitle = rec.Challenge.Title
		if position == nil {
			position = rec.Challenge.Position
		}
	}
	if position != nil {
		positionTitle = position.Title
		if position.Company != nil {
			companyName = position.Company.Name
		}
	}
	return ResultView{
		ChallengeTitle: helpers.OrDefault(challengeTitle, models.NotAvailable),
		PositionTitle:  helpers.OrDefault(positionTitle, models.NotAvailable),
		CompanyName:    helpers.OrDefault(companyName, models.NotAvailable),
		Score:          rec.Score,
		Status:         rec.Status,
		Feedback:       rec.Feedback,
		SubmittedAt:    rec.CreatedAt,
	}
}

func ResultListConvert(list []dbmodels.Submission) []ResultView {
	result := make([]ResultView, 0, len(list))
	for _, rec := range list {
		result = append(result, ResultConvert(rec))
	}
	return result
}
