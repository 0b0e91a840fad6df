package submissionhistoryhandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	submissionhistorystore "skill-hire-backend/lib/submission-history/store"
	usersstore "skill-hire-backend/lib/users/store"
	"skill-hire-backend/models"
	submissionapimodels "skill-hire-backend/models/api/submission"
	dbmodels "skill-hire-backend/models/db"
)

type Provider interface {
	List(ctx context.Context, submissionID string) ([]submissionapimodels.HistoryView, error)
	Save(ctx context.Context, submissionID, userID string, oldStatus, newStatus models.SubmissionStatus, feedback *string)
}

func NewHandler(store submissionhistorystore.Provider, userStore usersstore.Provider) Provider {
	return impl{
		store:     store,
		userStore: userStore,
	}
}

type impl struct {
	store     submissionhistorystore.Provider
	userStore usersstore.Provider
}

func (i impl) List(ctx context.Context, submissionID string) ([]submissionapimodels.HistoryView, error) {
	list, err := i.store.List(ctx, submissionID)
	if err != nil {
		log.WithError(err).WithField("submission_id", submissionID).Error("failed to list submission history")
		return nil, errors.Wrap(err, "failed to list submission history")
	}
	return submissionapimodels.HistoryListConvert(list), nil
}

// Save is best effort, a failure is logged and does not undo the status change.
func (i impl) Save(ctx context.Context, submissionID, userID string, oldStatus, newStatus models.SubmissionStatus, feedback *string) {
	logger := log.WithField("submission_id", submissionID).
		WithField("user_id", userID).
		WithField("old_status", oldStatus).
		WithField("new_status", newStatus)
	user, err := i.userStore.GetByID(ctx, userID)
	if err != nil {
		logger.WithError(err).Error("failed to save submission history, unable to get the author")
		return
	}
	if user == nil {
		logger.Error("failed to save submission history, author not found")
		return
	}
	rec := dbmodels.SubmissionHistory{
		SubmissionID: submissionID,
		UserID:       userID,
		UserName:     user.Name,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
		Feedback:     feedback,
	}
	if err = i.store.Save(ctx, rec); err != nil {
		logger.WithError(err).Error("failed to save submission history")
	}
}
