package hiringapimodels

import (
	"strings"
	"time"

	"github.com/lib/pq"
	apperrors "skill-hire-backend/lib/utils/app-errors"
	dbmodels "skill-hire-backend/models/db"
)

type CompanyData struct {
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	CultureMetrics     StringList `json:"cultureMetrics" swaggertype:"array,string"` // array or comma separated string
	SalaryTransparency bool       `json:"salaryTransparency"`
}

func (r *CompanyData) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return apperrors.New(apperrors.ErrValidation, "company name is required")
	}
	return nil
}

func (r CompanyData) ToRecord(recruiterID string) dbmodels.Company {
	return dbmodels.Company{
		Name:               r.Name,
		Description:        r.Description,
		CultureTags:        r.tags(),
		SalaryTransparency: r.SalaryTransparency,
		RecruiterID:        recruiterID,
	}
}

// UpdateMap overwrites every editable field.
func (r CompanyData) UpdateMap() map[string]interface{} {
	return map[string]interface{}{
		"name":                r.Name,
		"description":         r.Description,
		"culture_tags":        r.tags(),
		"salary_transparency": r.SalaryTransparency,
	}
}

func (r CompanyData) tags() pq.StringArray {
	if r.CultureMetrics == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(r.CultureMetrics)
}

type CompanyView struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	CultureMetrics     []string  `json:"cultureMetrics"`
	SalaryTransparency bool      `json:"salaryTransparency"`
	RecruiterID        string    `json:"recruiterId"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func CompanyConvert(rec dbmodels.Company) CompanyView {
	tags := []string(rec.CultureTags)
	if tags == nil {
		tags = []string{}
	}
	return CompanyView{
		ID:                 rec.ID,
		Name:               rec.Name,
		Description:        rec.Description,
		CultureMetrics:     tags,
		SalaryTransparency: rec.SalaryTransparency,
		RecruiterID:        rec.RecruiterID,
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
	}
}

func CompanyListConvert(list []dbmodels.Company) []CompanyView {
	result := make([]CompanyView, 0, len(list))
	for _, rec := range list {
		result = append(result, CompanyConvert(rec))
	}
	return result
}
