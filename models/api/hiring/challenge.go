package hiringapimodels

import (
	"strings"
	"time"

	apperrors "skill-hire-backend/lib/utils/app-errors"
	"skill-hire-backend/models"
	dbmodels "skill-hire-backend/models/db"
)

type ChallengeData struct {
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Difficulty  models.ChallengeDifficulty `json:"difficulty"` // Easy | Medium | Hard
	PositionID  string                     `json:"positionId"`
}

func (r *ChallengeData) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return apperrors.New(apperrors.ErrValidation, "challenge title is required")
	}
	if r.PositionID == "" {
		return apperrors.New(apperrors.ErrValidation, "positionId is required")
	}
	r.Difficulty = normalizeDifficulty(r.Difficulty)
	if !r.Difficulty.IsValid() {
		return apperrors.New(apperrors.ErrValidation, "difficulty must be one of Easy, Medium, Hard")
	}
	return nil
}

func (r ChallengeData) ToRecord() dbmodels.Challenge {
	return dbmodels.Challenge{
		Title:       r.Title,
		Description: r.Description,
		Difficulty:  r.Difficulty,
		PositionID:  r.PositionID,
	}
}

func normalizeDifficulty(value models.ChallengeDifficulty) models.ChallengeDifficulty {
	for _, difficulty := range []models.ChallengeDifficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard} {
		if strings.EqualFold(strings.TrimSpace(string(value)), string(difficulty)) {
			return difficulty
		}
	}
	return value
}

type ChallengeView struct {
	ID          string                     `json:"id"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Difficulty  models.ChallengeDifficulty `json:"difficulty"`
	PositionID  string                     `json:"positionId"`
	Position    *PositionView              `json:"position,omitempty"`
	QuestionIDs []string                   `json:"questionIds"`
	Questions   *[]QuestionView            `json:"questions,omitempty"`
	CreatedAt   time.Time                  `json:"createdAt"`
	UpdatedAt   time.Time                  `json:"updatedAt"`
}

func ChallengeConvert(rec dbmodels.Challenge) ChallengeView {
	result := ChallengeView{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Difficulty:  rec.Difficulty,
		PositionID:  rec.PositionID,
		QuestionIDs: rec.QuestionIDs(),
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
	if rec.Position != nil {
		position := PositionConvert(*rec.Position)
		result.Position = &position
	}
	return result
}

// ChallengeWithQuestionsConvert renders the questions in challenge order.
func ChallengeWithQuestionsConvert(rec dbmodels.Challenge) ChallengeView {
	result := ChallengeConvert(rec)
	questions := QuestionListConvert(rec.Questions)
	result.Questions = &questions
	return result
}

func ChallengeListConvert(list []dbmodels.Challenge) []ChallengeView {
	result := make([]ChallengeView, 0, len(list))
	for _, rec := range list {
		result = append(result, ChallengeConvert(rec))
	}
	return result
}
