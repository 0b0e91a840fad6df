package hiringapimodels

import (
	"strings"
	"time"

	"github.com/lib/pq"
	apperrors "skill-hire-backend/lib/utils/app-errors"
	"skill-hire-backend/lib/utils/helpers"
	"skill-hire-backend/models"
	dbmodels "skill-hire-backend/models/db"
)

type QuestionData struct {
	QuestionText  string              `json:"questionText"`
	Type          models.QuestionType `json:"type"`    // mcq | coding | written
	Options       []string            `json:"options"` // mcq only
	CorrectAnswer string              `json:"correctAnswer"`
	Score         int                 `json:"score"`
	ChallengeID   string              `json:"challengeId"`
}

func (r *QuestionData) Validate() error {
	if r.ChallengeID == "" {
		return apperrors.New(apperrors.ErrValidation, "challengeId is required")
	}
	return r.validateBody()
}

func (r *QuestionData) validateBody() error {
	r.QuestionText = strings.TrimSpace(r.QuestionText)
	if r.QuestionText == "" {
		return apperrors.New(apperrors.ErrValidation, "questionText is required")
	}
	r.Type = models.QuestionType(strings.ToLower(strings.TrimSpace(string(r.Type))))
	if !r.Type.IsValid() {
		return apperrors.New(apperrors.ErrValidation, "type must be one of mcq, coding, written")
	}
	if r.Score < 0 {
		return apperrors.New(apperrors.ErrValidation, "score must not be negative")
	}
	if r.Type == models.QuestionTypeMCQ {
		r.Options = helpers.TrimList(r.Options)
		if len(r.Options) == 0 {
			return apperrors.New(apperrors.ErrValidation, "mcq question needs options")
		}
	} else {
		r.Options = nil
	}
	return nil
}

func (r QuestionData) ToRecord() dbmodels.Question {
	options := pq.StringArray{}
	if len(r.Options) > 0 {
		options = pq.StringArray(r.Options)
	}
	return dbmodels.Question{
		QuestionText:  r.QuestionText,
		Type:          r.Type,
		Options:       options,
		CorrectAnswer: r.CorrectAnswer,
		Score:         r.Score,
		ChallengeID:   r.ChallengeID,
	}
}

type BulkQuestionsRequest struct {
	ChallengeID string         `json:"challengeId"`
	Questions   []QuestionData `json:"questions"`
}

func (r *BulkQuestionsRequest) Validate() error {
	if r.ChallengeID == "" {
		return apperrors.New(apperrors.ErrValidation, "challengeId is required")
	}
	if r.Questions == nil {
		return apperrors.New(apperrors.ErrValidation, "questions must be an array")
	}
	for idx := range r.Questions {
		r.Questions[idx].ChallengeID = r.ChallengeID
		if err := r.Questions[idx].validateBody(); err != nil {
			return apperrors.Newf(apperrors.ErrValidation, "question %d: %s", idx+1, err.Error())
		}
	}
	return nil
}

func (r BulkQuestionsRequest) ToRecords() []dbmodels.Question {
	result := make([]dbmodels.Question, 0, len(r.Questions))
	for _, question := range r.Questions {
		result = append(result, question.ToRecord())
	}
	return result
}

type QuestionView struct {
	ID            string              `json:"id"`
	QuestionText  string              `json:"questionText"`
	Type          models.QuestionType `json:"type"`
	Options       []string            `json:"options"`
	CorrectAnswer string              `json:"correctAnswer"`
	Score         int                 `json:"score"`
	ChallengeID   string              `json:"challengeId"`
	CreatedAt     time.Time           `json:"createdAt"`
}

func QuestionConvert(rec dbmodels.Question) QuestionView {
	options := []string(rec.Options)
	if options == nil {
		options = []string{}
	}
	return QuestionView{
		ID:            rec.ID,
		QuestionText:  rec.QuestionText,
		Type:          rec.Type,
		Options:       options,
		CorrectAnswer: rec.CorrectAnswer,
		Score:         rec.Score,
		ChallengeID:   rec.ChallengeID,
		CreatedAt:     rec.CreatedAt,
	}
}

func QuestionListConvert(list []dbmodels.Question) []QuestionView {
	result := make([]QuestionView, 0, len(list))
	for _, rec := range list {
		result = append(result, QuestionConvert(rec))
	}
	return result
}

type BulkQuestionsResponse struct {
	Msg       string         `json:"msg"`
	Questions []QuestionView `json:"questions"`
}
