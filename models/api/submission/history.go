package submissionapimodels

import (
	"time"

	"skill-hire-backend/models"
	dbmodels "skill-hire-backend/models/db"
)

type HistoryView struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"userId"`
	UserName  string                  `json:"userName"`
	OldStatus models.SubmissionStatus `json:"oldStatus"`
	NewStatus models.SubmissionStatus `json:"newStatus"`
	Feedback  *string                 `json:"feedback"`
	Changes   string                  `json:"changes"`
	CreatedAt time.Time               `json:"createdAt"`
}

func HistoryConvert(rec dbmodels.SubmissionHistory) HistoryView {
	return HistoryView{
		ID:        rec.ID,
		UserID:    rec.UserID,
		UserName:  rec.UserName,
		OldStatus: rec.OldStatus,
		NewStatus: rec.NewStatus,
		Feedback:  rec.Feedback,
		Changes:   rec.OldStatus.ToHuman() + " -> " + rec.NewStatus.ToHuman(),
		CreatedAt: rec.CreatedAt,
	}
}

func HistoryListConvert(list []dbmodels.SubmissionHistory) []HistoryView {
	result := make([]HistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, HistoryConvert(rec))
	}
	return result
}
