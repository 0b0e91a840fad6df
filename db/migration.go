package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	dbmodels "skill-hire-backend/models/db"
)

func AutoMigrateDB(db *gorm.DB) error {
	log.Info("running migrations")
	// parents first, the foreign keys need them
	models := []struct {
		name  string
		model interface{}
	}{
		{"User", &dbmodels.User{}},
		{"Company", &dbmodels.Company{}},
		{"Position", &dbmodels.Position{}},
		{"Challenge", &dbmodels.Challenge{}},
		{"Question", &dbmodels.Question{}},
		{"Submission", &dbmodels.Submission{}},
		{"SubmissionHistory", &dbmodels.SubmissionHistory{}},
		{"ResumeReview", &dbmodels.ResumeReview{}},
	}
	for _, item := range models {
		if err := db.AutoMigrate(item.model); err != nil {
			return errors.Wrapf(err, "failed to migrate %s", item.name)
		}
	}
	log.Info("migrations finished")
	return nil
}
