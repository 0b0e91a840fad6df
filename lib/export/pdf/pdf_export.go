package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	submissionapimodels "skill-hire-backend/models/api/submission"
)

type Provider interface {
	ExportResults(candidateName string, list []submissionapimodels.ResultView) ([]byte, error)
}

func NewHandler() Provider {
	return impl{
		now: time.Now,
	}
}

type impl struct {
	now func() time.Time
}

var resultColumns = []struct {
	title string
	width float64
}{
	{"Challenge", 45},
	{"Position", 40},
	{"Company", 35},
	{"Score", 15},
	{"Status", 20},
	{"Submitted", 30},
}

func (i impl) ExportResults(candidateName string, list []submissionapimodels.ResultView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ExportResults panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252, translate utf-8 input
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Challenge results", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Challenge results"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("%s, %s", candidateName, i.now().Format("02.01.2006"))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, column := range resultColumns {
		pdf.CellFormat(column.width, 8, column.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range list {
		values := []string{
			item.ChallengeTitle,
			item.PositionTitle,
			item.CompanyName,
			fmt.Sprintf("%d", item.Score),
			item.Status.ToHuman(),
			item.SubmittedAt.Format("02.01.2006"),
		}
		for idx, column := range resultColumns {
			pdf.CellFormat(column.width, 7, tr(fit(pdf, values[idx], column.width)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		if item.Feedback != nil && *item.Feedback != "" {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.MultiCell(0, 6, tr("Feedback: "+*item.Feedback), "LRB", "L", false)
			pdf.SetFont("Helvetica", "", 9)
		}
	}
	if len(list) == 0 {
		pdf.CellFormat(0, 8, "No submissions yet", "", 1, "L", false, 0, "")
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fit cuts value so that it fits into a cell of the given width.
func fit(pdf *fpdf.Fpdf, value string, width float64) string {
	const padding = 2
	if pdf.GetStringWidth(value) <= width-padding {
		return value
	}
	runes := []rune(value)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width-padding {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
