package pdfexport

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/require"
	"skill-hire-backend/models"
	submissionapimodels "skill-hire-backend/models/api/submission"
)

func TestExportResults(t *testing.T) {
	handler := impl{now: func() time.Time { return time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC) }}
	feedback := "Clean solution, naïve edge cases"

	t.Run(`with results`, func(t *testing.T) {
		data, err := handler.ExportResults("Ivan", []submissionapimodels.ResultView{
			{
				ChallengeTitle: "A very long challenge title that will not fit into its column",
				PositionTitle:  "Backend",
				CompanyName:    "Acme",
				Score:          8,
				Status:         models.SubmissionStatusSelected,
				Feedback:       &feedback,
				SubmittedAt:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			},
			{
				ChallengeTitle: models.NotAvailable,
				PositionTitle:  models.NotAvailable,
				CompanyName:    models.NotAvailable,
				Status:         models.SubmissionStatusPending,
			},
		})
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})

	t.Run(`empty`, func(t *testing.T) {
		data, err := handler.ExportResults("Ivan", nil)
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})
}

func TestFit(t *testing.T) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 9)

	require.Equal(t, "Go", fit(pdf, "Go", 30))

	cut := fit(pdf, strings.Repeat("challenge ", 10), 30)
	require.True(t, strings.HasSuffix(cut, "..."))
	require.LessOrEqual(t, pdf.GetStringWidth(cut), 28.0)
}
