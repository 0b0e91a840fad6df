package resumereviewhandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	resumereviewstore "skill-hire-backend/lib/resume-review/store"
	usersstore "skill-hire-backend/lib/users/store"
	apperrors "skill-hire-backend/lib/utils/app-errors"
	"skill-hire-backend/models"
	reviewapimodels "skill-hire-backend/models/api/review"
)

type Provider interface {
	Create(ctx context.Context, recruiterID string, data reviewapimodels.ResumeReviewData) (reviewapimodels.ResumeReviewView, error)
	ListByReviewer(ctx context.Context, recruiterID string) ([]reviewapimodels.ResumeReviewView, error)
	ListForInterviewee(ctx context.Context, intervieweeID string) ([]reviewapimodels.ResumeReviewView, error)
}

func NewHandler(store resumereviewstore.Provider, userStore usersstore.Provider) Provider {
	return impl{
		store:     store,
		userStore: userStore,
	}
}

type impl struct {
	store     resumereviewstore.Provider
	userStore usersstore.Provider
}

func (i impl) Create(ctx context.Context, recruiterID string, data reviewapimodels.ResumeReviewData) (reviewapimodels.ResumeReviewView, error) {
	if err := data.Validate(); err != nil {
		return reviewapimodels.ResumeReviewView{}, err
	}
	logger := log.WithField("recruiter_id", recruiterID).
		WithField("interviewee_id", data.IntervieweeID)
	interviewee, err := i.userStore.GetByID(ctx, data.IntervieweeID)
	if err != nil {
		logger.WithError(err).Error("failed to get interviewee")
		return reviewapimodels.ResumeReviewView{}, errors.Wrap(err, "failed to get interviewee")
	}
	if interviewee == nil || interviewee.Role != models.IntervieweeRole {
		return reviewapimodels.ResumeReviewView{}, apperrors.New(apperrors.ErrDanglingReference, "interviewee not found")
	}
	rec := data.ToRecord(recruiterID)
	if err = i.store.Create(ctx, &rec); err != nil {
		logger.WithError(err).Error("failed to save resume review")
		return reviewapimodels.ResumeReviewView{}, errors.Wrap(err, "failed to save resume review")
	}
	logger.WithField("review_id", rec.ID).Info("resume reviewed")
	return reviewapimodels.ResumeReviewConvert(rec), nil
}

func (i impl) ListByReviewer(ctx context.Context, recruiterID string) ([]reviewapimodels.ResumeReviewView, error) {
	list, err := i.store.ListByReviewer(ctx, recruiterID)
	if err != nil {
		log.WithError(err).WithField("recruiter_id", recruiterID).Error("failed to list resume reviews")
		return nil, errors.Wrap(err, "failed to list resume reviews")
	}
	return reviewapimodels.ResumeReviewListConvert(list), nil
}

func (i impl) ListForInterviewee(ctx context.Context, intervieweeID string) ([]reviewapimodels.ResumeReviewView, error) {
	list, err := i.store.ListByInterviewee(ctx, intervieweeID)
	if err != nil {
		log.WithError(err).WithField("interviewee_id", intervieweeID).Error("failed to list resume reviews")
		return nil, errors.Wrap(err, "failed to list resume reviews")
	}
	return reviewapimodels.ResumeReviewListConvert(list), nil
}
