package questionhandler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	scopehandler "skill-hire-backend/lib/scope"
	apperrors "skill-hire-backend/lib/utils/app-errors"
	"skill-hire-backend/lib/utils/memstore"
	"skill-hire-backend/models"
	hiringapimodels "skill-hire-backend/models/api/hiring"
	dbmodels "skill-hire-backend/models/db"
)

func TestQuestions(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	handler := NewHandler(db.Questions(), scopehandler.NewHandler(db.Companies(), db.Positions(), db.Challenges()))

	company := dbmodels.Company{Name: "Acme", RecruiterID: "owner"}
	require.NoError(t, db.Companies().Create(ctx, &company))
	position := dbmodels.Position{Title: "Backend", CompanyID: company.ID}
	require.NoError(t, db.Positions().Create(ctx, &position))
	challenge := dbmodels.Challenge{Title: "Go basics", PositionID: position.ID}
	require.NoError(t, db.Challenges().Create(ctx, &challenge))

	t.Run(`bulk keeps request order after existing questions`, func(t *testing.T) {
		single, err := handler.Create(ctx, "owner", hiringapimodels.QuestionData{
			QuestionText: "first",
			Type:         "written",
			ChallengeID:  challenge.ID,
		})
		require.NoError(t, err)

		resp, err := handler.CreateBulk(ctx, "owner", hiringapimodels.BulkQuestionsRequest{
			ChallengeID: challenge.ID,
			Questions: []hiringapimodels.QuestionData{
				{QuestionText: "second", Type: "MCQ", Options: []string{"a", "b"}, CorrectAnswer: "a", Score: 2},
				{QuestionText: "third", Type: "coding", Options: []string{"dropped"}, Score: 5},
			},
		})
		require.NoError(t, err)
		require.Equal(t, "Questions created", resp.Msg)
		require.Len(t, resp.Questions, 2)
		require.Equal(t, models.QuestionTypeMCQ, resp.Questions[0].Type)
		require.Empty(t, resp.Questions[1].Options)

		stored, err := db.Challenges().GetWithQuestions(ctx, challenge.ID)
		require.NoError(t, err)
		texts := []string{}
		for _, q := range stored.Questions {
			texts = append(texts, q.QuestionText)
		}
		require.Equal(t, []string{"first", "second", "third"}, texts)
		require.Equal(t, single.ID, stored.Questions[0].ID)

		owned, err := handler.ListOwned(ctx, "owner")
		require.NoError(t, err)
		require.Len(t, owned, 3)
	})

	t.Run(`invalid item rejects the whole batch`, func(t *testing.T) {
		_, err := handler.CreateBulk(ctx, "owner", hiringapimodels.BulkQuestionsRequest{
			ChallengeID: challenge.ID,
			Questions: []hiringapimodels.QuestionData{
				{QuestionText: "ok", Type: "written"},
				{QuestionText: "", Type: "written"},
			},
		})
		require.True(t, errors.Is(err, apperrors.ErrValidation))
		require.Contains(t, apperrors.Message(err), "question 2")

		_, err = handler.CreateBulk(ctx, "owner", hiringapimodels.BulkQuestionsRequest{ChallengeID: challenge.ID})
		require.True(t, errors.Is(err, apperrors.ErrValidation))

		owned, err := handler.ListOwned(ctx, "owner")
		require.NoError(t, err)
		require.Len(t, owned, 3)
	})

	t.Run(`mcq needs options`, func(t *testing.T) {
		_, err := handler.Create(ctx, "owner", hiringapimodels.QuestionData{
			QuestionText: "pick",
			Type:         "mcq",
			ChallengeID:  challenge.ID,
		})
		require.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run(`ownership`, func(t *testing.T) {
		_, err := handler.Create(ctx, "intruder", hiringapimodels.QuestionData{
			QuestionText: "sneaky",
			Type:         "written",
			ChallengeID:  challenge.ID,
		})
		require.True(t, errors.Is(err, apperrors.ErrForbidden))

		_, err = handler.Create(ctx, "owner", hiringapimodels.QuestionData{
			QuestionText: "orphan",
			Type:         "written",
			ChallengeID:  "missing",
		})
		require.True(t, errors.Is(err, apperrors.ErrDanglingReference))

		owned, err := handler.ListOwned(ctx, "intruder")
		require.NoError(t, err)
		require.Empty(t, owned)
	})
}
