package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"skill-hire-backend/models"
	authapimodels "skill-hire-backend/models/api/auth"
	hiringapimodels "skill-hire-backend/models/api/hiring"
	submissionapimodels "skill-hire-backend/models/api/submission"
)

func TestExportSubmissionList(t *testing.T) {
	feedback := "solid"
	list := []submissionapimodels.SubmissionView{
		{
			Interviewee: &authapimodels.UserView{Name: "Ivan", Email: "ivan@example.com"},
			Challenge:   &hiringapimodels.ChallengeView{Title: "Loops"},
			Position: &hiringapimodels.PositionView{
				Title:   "Backend",
				Company: &hiringapimodels.CompanyView{Name: "Acme"},
			},
			Answers:   []string{"a", "b"},
			Score:     7,
			Feedback:  &feedback,
			Status:    models.SubmissionStatusOnHold,
			CreatedAt: time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
		},
		{Status: models.SubmissionStatusPending},
	}

	buf, err := NewHandler().ExportSubmissionList(list)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Submissions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, submissionHeaders, rows[0])
	require.Equal(t, []string{"Ivan", "ivan@example.com", "Acme", "Backend", "Loops", "7", "On hold", "solid", "a\nb", "05.03.2024 14:30"}, rows[1])
	require.Equal(t, models.NotAvailable, rows[2][0])
	require.Equal(t, "Pending", rows[2][6])

	t.Run(`layout`, func(t *testing.T) {
		panes, err := f.GetPanes(sheetName)
		require.NoError(t, err)
		require.True(t, panes.Freeze)
		require.Equal(t, 1, panes.YSplit)

		width, err := f.GetColWidth(sheetName, "J")
		require.NoError(t, err)
		require.Equal(t, float64(columnWidth), width)

		styleID, err := f.GetCellStyle(sheetName, "I2")
		require.NoError(t, err)
		style, err := f.GetStyle(styleID)
		require.NoError(t, err)
		require.True(t, style.Alignment.WrapText)
	})
}

func TestExportEmptyList(t *testing.T) {
	buf, err := NewHandler().ExportSubmissionList(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Submissions")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
