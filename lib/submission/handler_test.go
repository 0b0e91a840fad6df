package submissionhandler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	scopehandler "skill-hire-backend/lib/scope"
	submissionhistoryhandler "skill-hire-backend/lib/submission-history"
	apperrors "skill-hire-backend/lib/utils/app-errors"
	"skill-hire-backend/lib/utils/memstore"
	"skill-hire-backend/models"
	submissionapimodels "skill-hire-backend/models/api/submission"
	dbmodels "skill-hire-backend/models/db"
)

type fixture struct {
	db          *memstore.DB
	owner       dbmodels.User
	stranger    dbmodels.User
	interviewee dbmodels.User
	position    dbmodels.Position
	challenge   dbmodels.Challenge
}

func newFixture(t *testing.T) fixture {
	ctx := context.Background()
	f := fixture{db: memstore.New()}
	f.owner = dbmodels.User{Name: "Rita", Email: "rita@example.com", Role: models.RecruiterRole}
	require.NoError(t, f.db.Users().Create(ctx, &f.owner))
	f.stranger = dbmodels.User{Name: "Sam", Email: "sam@example.com", Role: models.RecruiterRole}
	require.NoError(t, f.db.Users().Create(ctx, &f.stranger))
	f.interviewee = dbmodels.User{Name: "Ivan", Email: "ivan@example.com", Role: models.IntervieweeRole}
	require.NoError(t, f.db.Users().Create(ctx, &f.interviewee))

	company := dbmodels.Company{Name: "Acme", RecruiterID: f.owner.ID}
	require.NoError(t, f.db.Companies().Create(ctx, &company))
	f.position = dbmodels.Position{Title: "Backend", CompanyID: company.ID}
	require.NoError(t, f.db.Positions().Create(ctx, &f.position))
	f.challenge = dbmodels.Challenge{Title: "Go basics", Difficulty: models.DifficultyMedium, PositionID: f.position.ID}
	require.NoError(t, f.db.Challenges().Create(ctx, &f.challenge))
	_, err := f.db.Questions().CreateBulk(ctx, f.challenge.ID, []dbmodels.Question{
		{QuestionText: "2+2", Type: models.QuestionTypeMCQ, Options: []string{"3", "4"}, CorrectAnswer: "4", Score: 5},
		{QuestionText: "Name a channel op", Type: models.QuestionTypeWritten, CorrectAnswer: "send", Score: 3},
		{QuestionText: "Write a goroutine", Type: models.QuestionTypeCoding, Score: 10},
	})
	require.NoError(t, err)
	return f
}

func (f fixture) handler(recompute bool) Provider {
	scope := scopehandler.NewHandler(f.db.Companies(), f.db.Positions(), f.db.Challenges())
	history := submissionhistoryhandler.NewHandler(f.db.SubmissionHistory(), f.db.Users())
	return NewHandler(f.db.Submissions(), f.db.Challenges(), scope, history, Config{RecomputeScore: recompute})
}

func strPtr(value string) *string {
	return &value
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run(`position is taken from the challenge`, func(t *testing.T) {
		resp, err := f.handler(false).Create(ctx, f.interviewee.ID, submissionapimodels.SubmitRequest{
			ChallengeID: f.challenge.ID,
			Answers:     []string{"4"},
			Score:       42,
		})
		require.NoError(t, err)
		require.Equal(t, f.position.ID, resp.PositionID)
		require.Equal(t, models.SubmissionStatusPending, resp.Status)
		require.Equal(t, 42, resp.Score)
		require.Nil(t, resp.Feedback)
	})

	t.Run(`server side score`, func(t *testing.T) {
		resp, err := f.handler(true).Create(ctx, f.interviewee.ID, submissionapimodels.SubmitRequest{
			ChallengeID: f.challenge.ID,
			PositionID:  f.position.ID,
			Answers:     []string{"4", " send ", "go func() {}()"},
			Score:       100,
		})
		require.NoError(t, err)
		require.Equal(t, 8, resp.Score)
	})

	t.Run(`position mismatch`, func(t *testing.T) {
		_, err := f.handler(false).Create(ctx, f.interviewee.ID, submissionapimodels.SubmitRequest{
			ChallengeID: f.challenge.ID,
			PositionID:  "other-position",
		})
		require.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run(`unknown challenge`, func(t *testing.T) {
		_, err := f.handler(false).Create(ctx, f.interviewee.ID, submissionapimodels.SubmitRequest{
			ChallengeID: "missing",
		})
		require.True(t, errors.Is(err, apperrors.ErrDanglingReference))
	})

	t.Run(`client score is stored as sent`, func(t *testing.T) {
		resp, err := f.handler(false).Create(ctx, f.interviewee.ID, submissionapimodels.SubmitRequest{
			ChallengeID: f.challenge.ID,
			Score:       -1,
		})
		require.NoError(t, err)
		require.Equal(t, -1, resp.Score)
	})
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	handler := f.handler(false)

	submitted, err := handler.Create(ctx, f.interviewee.ID, submissionapimodels.SubmitRequest{
		ChallengeID: f.challenge.ID,
		Answers:     []string{"4"},
		Score:       5,
	})
	require.NoError(t, err)

	t.Run(`owner selects with feedback`, func(t *testing.T) {
		resp, err := handler.SetStatus(ctx, f.owner.ID, submitted.ID, submissionapimodels.StatusUpdateRequest{
			Status:   "selected",
			Feedback: strPtr("great work"),
		})
		require.NoError(t, err)
		require.Equal(t, models.SubmissionStatusSelected, resp.Status)
		require.Equal(t, "great work", *resp.Feedback)
		require.NotNil(t, resp.Interviewee)
		require.Equal(t, "Ivan", resp.Interviewee.Name)
		require.NotNil(t, resp.Position)
		require.NotNil(t, resp.Position.Company)
	})

	t.Run(`same status twice keeps a single history row`, func(t *testing.T) {
		resp, err := handler.SetStatus(ctx, f.owner.ID, submitted.ID, submissionapimodels.StatusUpdateRequest{
			Status: "Selected",
		})
		require.NoError(t, err)
		require.Equal(t, "great work", *resp.Feedback)

		history, err := handler.History(ctx, f.owner.ID, submitted.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		require.Equal(t, models.SubmissionStatusPending, history[0].OldStatus)
		require.Equal(t, models.SubmissionStatusSelected, history[0].NewStatus)
		require.Equal(t, "Rita", history[0].UserName)
		require.Equal(t, "Pending -> Selected", history[0].Changes)
	})

	t.Run(`on hold is accepted with a space`, func(t *testing.T) {
		resp, err := handler.SetStatus(ctx, f.owner.ID, submitted.ID, submissionapimodels.StatusUpdateRequest{
			Status: "on hold",
		})
		require.NoError(t, err)
		require.Equal(t, models.SubmissionStatusOnHold, resp.Status)

		history, err := handler.History(ctx, f.owner.ID, submitted.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)
	})

	t.Run(`foreign recruiter`, func(t *testing.T) {
		_, err := handler.SetStatus(ctx, f.stranger.ID, submitted.ID, submissionapimodels.StatusUpdateRequest{
			Status: "rejected",
		})
		require.True(t, errors.Is(err, apperrors.ErrForbidden))
		require.Equal(t, "submission belongs to another recruiter", apperrors.Message(err))

		_, err = handler.History(ctx, f.stranger.ID, submitted.ID)
		require.True(t, errors.Is(err, apperrors.ErrForbidden))
	})

	t.Run(`invalid status`, func(t *testing.T) {
		for _, status := range []string{"", "pending", "approved"} {
			_, err := handler.SetStatus(ctx, f.owner.ID, submitted.ID, submissionapimodels.StatusUpdateRequest{
				Status: status,
			})
			require.True(t, errors.Is(err, apperrors.ErrInvalidStatus), status)
		}
	})

	t.Run(`status is checked before the lookup`, func(t *testing.T) {
		_, err := handler.SetStatus(ctx, f.owner.ID, "missing", submissionapimodels.StatusUpdateRequest{
			Status: "approved",
		})
		require.True(t, errors.Is(err, apperrors.ErrInvalidStatus))
	})

	t.Run(`unknown submission`, func(t *testing.T) {
		_, err := handler.SetStatus(ctx, f.owner.ID, "missing", submissionapimodels.StatusUpdateRequest{
			Status: "rejected",
		})
		require.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestInterviewee(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	handler := f.handler(false)

	_, err := handler.Latest(ctx, f.interviewee.ID, f.challenge.ID)
	require.True(t, errors.Is(err, apperrors.ErrNotFound))

	first, err := handler.Create(ctx, f.interviewee.ID, submissionapimodels.SubmitRequest{ChallengeID: f.challenge.ID, Score: 1})
	require.NoError(t, err)
	second, err := handler.Create(ctx, f.interviewee.ID, submissionapimodels.SubmitRequest{ChallengeID: f.challenge.ID, Score: 2})
	require.NoError(t, err)

	t.Run(`latest wins`, func(t *testing.T) {
		resp, err := handler.Latest(ctx, f.interviewee.ID, f.challenge.ID)
		require.NoError(t, err)
		require.Equal(t, second.ID, resp.ID)
	})

	t.Run(`own list newest first`, func(t *testing.T) {
		list, err := handler.ListForInterviewee(ctx, f.interviewee.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, second.ID, list[0].ID)
		require.Equal(t, first.ID, list[1].ID)
		require.NotNil(t, list[0].Challenge)
	})

	t.Run(`results`, func(t *testing.T) {
		list, err := handler.Results(ctx, f.interviewee.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "Go basics", list[0].ChallengeTitle)
		require.Equal(t, "Backend", list[0].PositionTitle)
		require.Equal(t, "Acme", list[0].CompanyName)
	})

	t.Run(`recruiter sees submissions of owned challenges only`, func(t *testing.T) {
		list, err := handler.ListForRecruiter(ctx, f.owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)

		list, err = handler.ListForRecruiter(ctx, f.stranger.ID)
		require.NoError(t, err)
		require.Empty(t, list)
	})
}

func TestComputeScore(t *testing.T) {
	questions := []dbmodels.Question{
		{CorrectAnswer: "a", Score: 2},
		{CorrectAnswer: "", Score: 7},
		{CorrectAnswer: "c", Score: 4},
	}
	require.Equal(t, 6, ComputeScore(questions, []string{"a", "", "c"}))
	require.Equal(t, 2, ComputeScore(questions, []string{"a"}))
	require.Equal(t, 0, ComputeScore(questions, nil))
	require.Equal(t, 0, ComputeScore(nil, []string{"a"}))
}
