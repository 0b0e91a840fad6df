package xlsexport

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"skill-hire-backend/models"
	submissionapimodels "skill-hire-backend/models/api/submission"
)

const dateLayout = "02.01.2006 15:04"

type Provider interface {
	ExportSubmissionList(list []submissionapimodels.SubmissionView) (*bytes.Buffer, error)
}

func NewHandler() Provider {
	return impl{}
}

type impl struct{}

var submissionHeaders = []string{"Candidate", "Email", "Company", "Position", "Challenge", "Score", "Status", "Feedback", "Answers", "Submitted at"}

const (
	sheetName   = "Submissions"
	columnWidth = 22
)

func (i impl) ExportSubmissionList(list []submissionapimodels.SubmissionView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, errors.Wrap(err, "failed to name xlsx sheet")
	}
	layout, err := newSheetLayout(f, len(submissionHeaders))
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare xlsx sheet")
	}
	header := make([]interface{}, 0, len(submissionHeaders))
	for _, title := range submissionHeaders {
		header = append(header, title)
	}
	if err = layout.writeRow(1, header, layout.headerStyle); err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	for idx, item := range list {
		if err = layout.writeRow(idx+2, submissionRow(item), layout.dataStyle); err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data")
		}
	}
	return f.WriteToBuffer()
}

// sheetLayout is a header row frozen above top aligned, wrapped data rows.
type sheetLayout struct {
	f           *excelize.File
	headerStyle int
	dataStyle   int
}

func newSheetLayout(f *excelize.File, columns int) (sheetLayout, error) {
	layout := sheetLayout{f: f}
	var err error
	layout.headerStyle, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return layout, err
	}
	layout.dataStyle, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
	})
	if err != nil {
		return layout, err
	}
	lastColumn, err := excelize.ColumnNumberToName(columns)
	if err != nil {
		return layout, err
	}
	if err = f.SetColWidth(sheetName, "A", lastColumn, columnWidth); err != nil {
		return layout, err
	}
	err = f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	return layout, err
}

func (l sheetLayout) writeRow(row int, values []interface{}, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(values), row)
	if err != nil {
		return err
	}
	if err = l.f.SetSheetRow(sheetName, first, &values); err != nil {
		return err
	}
	return l.f.SetCellStyle(sheetName, first, last, style)
}

func submissionRow(item submissionapimodels.SubmissionView) []interface{} {
	candidate, email := models.NotAvailable, ""
	if item.Interviewee != nil {
		candidate = item.Interviewee.Name
		email = item.Interviewee.Email
	}
	company, position, challenge := models.NotAvailable, models.NotAvailable, models.NotAvailable
	if item.Position != nil {
		position = item.Position.Title
		if item.Position.Company != nil {
			company = item.Position.Company.Name
		}
	}
	if item.Challenge != nil {
		challenge = item.Challenge.Title
	}
	feedback := ""
	if item.Feedback != nil {
		feedback = *item.Feedback
	}
	return []interface{}{
		candidate,
		email,
		company,
		position,
		challenge,
		item.Score,
		item.Status.ToHuman(),
		feedback,
		strings.Join(item.Answers, "\n"),
		item.CreatedAt.Format(dateLayout),
	}
}
