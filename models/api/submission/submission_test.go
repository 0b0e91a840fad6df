package submissionapimodels

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	apperrors "skill-hire-backend/lib/utils/app-errors"
	"skill-hire-backend/models"
	dbmodels "skill-hire-backend/models/db"
)

func TestResultConvert(t *testing.T) {
	t.Run(`missing relations render as N/A`, func(t *testing.T) {
		view := ResultConvert(dbmodels.Submission{Score: 3, Status: models.SubmissionStatusPending})
		require.Equal(t, models.NotAvailable, view.ChallengeTitle)
		require.Equal(t, models.NotAvailable, view.PositionTitle)
		require.Equal(t, models.NotAvailable, view.CompanyName)
		require.Equal(t, 3, view.Score)
		require.Nil(t, view.Feedback)
	})

	t.Run(`position falls back to the challenge one`, func(t *testing.T) {
		view := ResultConvert(dbmodels.Submission{
			Challenge: &dbmodels.Challenge{
				Title: "Loops",
				Position: &dbmodels.Position{
					Title:   "Backend",
					Company: &dbmodels.Company{Name: "Acme"},
				},
			},
		})
		require.Equal(t, "Loops", view.ChallengeTitle)
		require.Equal(t, "Backend", view.PositionTitle)
		require.Equal(t, "Acme", view.CompanyName)
	})

	t.Run(`position without company`, func(t *testing.T) {
		view := ResultConvert(dbmodels.Submission{
			Challenge: &dbmodels.Challenge{Title: "Loops"},
			Position:  &dbmodels.Position{Title: "Frontend"},
		})
		require.Equal(t, "Frontend", view.PositionTitle)
		require.Equal(t, models.NotAvailable, view.CompanyName)
	})
}

func TestSubmitRequest(t *testing.T) {
	req := SubmitRequest{ChallengeID: "ch1"}
	require.NoError(t, req.Validate())
	require.Equal(t, []string{}, req.Answers)

	req = SubmitRequest{}
	require.Error(t, req.Validate())

	req = SubmitRequest{ChallengeID: "ch1", Score: -3}
	require.NoError(t, req.Validate())
}

func TestStatusUpdateRequest(t *testing.T) {
	for _, status := range []string{"", "pending", "approved", "Pending "} {
		err := StatusUpdateRequest{Status: status}.Validate()
		require.True(t, errors.Is(err, apperrors.ErrInvalidStatus), status)
	}
	for _, status := range []string{"selected", "Rejected", "on hold", "on_hold"} {
		require.NoError(t, StatusUpdateRequest{Status: status}.Validate(), status)
	}
	require.Equal(t, models.SubmissionStatusOnHold, StatusUpdateRequest{Status: " On Hold"}.NewStatus())
}

func TestSubmissionConvert(t *testing.T) {
	view := SubmissionConvert(dbmodels.Submission{
		Interviewee: &dbmodels.User{Name: "Ivan", Password: "hash"},
	})
	require.NotNil(t, view.Interviewee)
	require.Equal(t, "Ivan", view.Interviewee.Name)
	require.Equal(t, []string{}, view.Answers)
	require.Nil(t, view.Challenge)
}
