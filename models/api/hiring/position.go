package hiringapimodels

import (
	"strings"
	"time"

	apperrors "skill-hire-backend/lib/utils/app-errors"
	dbmodels "skill-hire-backend/models/db"
)

type PositionData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SampleWork  string `json:"sampleWork"` // link to a sample of the expected work
	CompanyID   string `json:"companyId"`
}

func (r *PositionData) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return apperrors.New(apperrors.ErrValidation, "position title is required")
	}
	if r.CompanyID == "" {
		return apperrors.New(apperrors.ErrValidation, "companyId is required")
	}
	return nil
}

func (r PositionData) ToRecord() dbmodels.Position {
	return dbmodels.Position{
		Title:       r.Title,
		Description: r.Description,
		SampleWork:  strings.TrimSpace(r.SampleWork),
		CompanyID:   r.CompanyID,
	}
}

type PositionView struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	SampleWork   string           `json:"sampleWork"`
	CompanyID    string           `json:"companyId"`
	Company      *CompanyView     `json:"company,omitempty"`
	ChallengeIDs []string         `json:"challengeIds"`
	Challenges   *[]ChallengeView `json:"challenges,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// PositionConvert renders the company when it was loaded, challenges as ids.
func PositionConvert(rec dbmodels.Position) PositionView {
	result := PositionView{
		ID:           rec.ID,
		Title:        rec.Title,
		Description:  rec.Description,
		SampleWork:   rec.SampleWork,
		CompanyID:    rec.CompanyID,
		ChallengeIDs: rec.ChallengeIDs(),
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
	if rec.Company != nil {
		company := CompanyConvert(*rec.Company)
		result.Company = &company
	}
	return result
}

// PositionWithChallengesConvert also renders the challenges themselves.
func PositionWithChallengesConvert(rec dbmodels.Position) PositionView {
	result := PositionConvert(rec)
	challenges := ChallengeListConvert(rec.Challenges)
	result.Challenges = &challenges
	return result
}

func PositionListConvert(list []dbmodels.Position, withChallenges bool) []PositionView {
	result := make([]PositionView, 0, len(list))
	for _, rec := range list {
		if withChallenges {
			result = append(result, PositionWithChallengesConvert(rec))
			continue
		}
		result = append(result, PositionConvert(rec))
	}
	return result
}
