package hiringapimodels

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	apperrors "skill-hire-backend/lib/utils/app-errors"
	"skill-hire-backend/models"
	dbmodels "skill-hire-backend/models/db"
)

func TestStringList(t *testing.T) {
	decode := func(raw string) (CompanyData, error) {
		var data CompanyData
		err := json.Unmarshal([]byte(`{"name":"Acme","cultureMetrics":`+raw+`}`), &data)
		return data, err
	}

	data, err := decode(`["remote", " async ", ""]`)
	require.NoError(t, err)
	require.Equal(t, StringList{"remote", "async"}, data.CultureMetrics)

	data, err = decode(`"remote, async,,flat "`)
	require.NoError(t, err)
	require.Equal(t, StringList{"remote", "async", "flat"}, data.CultureMetrics)

	data, err = decode(`null`)
	require.NoError(t, err)
	require.Nil(t, data.CultureMetrics)
	require.Equal(t, []string{}, []string(data.ToRecord("r1").CultureTags))

	_, err = decode(`42`)
	require.Error(t, err)
}

func TestChallengeData(t *testing.T) {
	data := ChallengeData{Title: " Loops ", Difficulty: "medium", PositionID: "p1"}
	require.NoError(t, data.Validate())
	require.Equal(t, "Loops", data.Title)
	require.Equal(t, models.DifficultyMedium, data.Difficulty)

	data = ChallengeData{Title: "Loops", Difficulty: "impossible", PositionID: "p1"}
	require.True(t, errors.Is(data.Validate(), apperrors.ErrValidation))

	data = ChallengeData{Title: "Loops", Difficulty: "Easy"}
	require.True(t, errors.Is(data.Validate(), apperrors.ErrValidation))
}

func TestViews(t *testing.T) {
	t.Run(`relations are omitted until loaded`, func(t *testing.T) {
		view := ChallengeConvert(dbmodels.Challenge{Title: "Loops"})
		raw, err := json.Marshal(view)
		require.NoError(t, err)
		require.NotContains(t, string(raw), `"questions"`)
		require.NotContains(t, string(raw), `"position"`)
		require.Contains(t, string(raw), `"questionIds":[]`)
	})

	t.Run(`loaded empty relations render as arrays`, func(t *testing.T) {
		view := ChallengeWithQuestionsConvert(dbmodels.Challenge{Title: "Loops"})
		raw, err := json.Marshal(view)
		require.NoError(t, err)
		require.Contains(t, string(raw), `"questions":[]`)
	})

	t.Run(`position carries its company`, func(t *testing.T) {
		view := PositionConvert(dbmodels.Position{
			Title:   "Backend",
			Company: &dbmodels.Company{Name: "Acme"},
			Challenges: []dbmodels.Challenge{
				{BaseModel: dbmodels.BaseModel{ID: "ch1"}},
			},
		})
		require.NotNil(t, view.Company)
		require.Equal(t, "Acme", view.Company.Name)
		require.Equal(t, []string{"ch1"}, view.ChallengeIDs)
	})
}
