package submissionhandler

import (
	"context"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	challengestore "skill-hire-backend/lib/challenge/store"
	scopehandler "skill-hire-backend/lib/scope"
	submissionhistoryhandler "skill-hire-backend/lib/submission-history"
	submissionstore "skill-hire-backend/lib/submission/store"
	apperrors "skill-hire-backend/lib/utils/app-errors"
	"skill-hire-backend/models"
	submissionapimodels "skill-hire-backend/models/api/submission"
	dbmodels "skill-hire-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, intervieweeID string, request submissionapimodels.SubmitRequest) (submissionapimodels.SubmissionView, error)
	SetStatus(ctx context.Context, recruiterID, submissionID string, request submissionapimodels.StatusUpdateRequest) (submissionapimodels.SubmissionView, error)
	ListForRecruiter(ctx context.Context, recruiterID string) ([]submissionapimodels.SubmissionView, error)
	ListForInterviewee(ctx context.Context, intervieweeID string) ([]submissionapimodels.SubmissionView, error)
	Results(ctx context.Context, intervieweeID string) ([]submissionapimodels.ResultView, error)
	Latest(ctx context.Context, intervieweeID, challengeID string) (submissionapimodels.SubmissionView, error)
	History(ctx context.Context, recruiterID, submissionID string) ([]submissionapimodels.HistoryView, error)
}

type Config struct {
	// RecomputeScore ignores the score sent by the client
	RecomputeScore bool
}

func NewHandler(store submissionstore.Provider, challengeStore challengestore.Provider, scope scopehandler.Provider,
	history submissionhistoryhandler.Provider, cfg Config) Provider {
	return impl{
		store:          store,
		challengeStore: challengeStore,
		scope:          scope,
		history:        history,
		cfg:            cfg,
	}
}

type impl struct {
	store          submissionstore.Provider
	challengeStore challengestore.Provider
	scope          scopehandler.Provider
	history        submissionhistoryhandler.Provider
	cfg            Config
}

func (i impl) Create(ctx context.Context, intervieweeID string, request submissionapimodels.SubmitRequest) (submissionapimodels.SubmissionView, error) {
	if err := request.Validate(); err != nil {
		return submissionapimodels.SubmissionView{}, err
	}
	logger := log.WithField("interviewee_id", intervieweeID).
		WithField("challenge_id", request.ChallengeID)
	challenge, err := i.challengeStore.GetWithQuestions(ctx, request.ChallengeID)
	if err != nil {
		logger.WithError(err).Error("failed to get challenge")
		return submissionapimodels.SubmissionView{}, errors.Wrap(err, "failed to get challenge")
	}
	if challenge == nil {
		return submissionapimodels.SubmissionView{}, apperrors.New(apperrors.ErrDanglingReference, "challenge not found")
	}
	if request.PositionID != "" && request.PositionID != challenge.PositionID {
		return submissionapimodels.SubmissionView{}, apperrors.New(apperrors.ErrValidation, "positionId does not match the challenge")
	}
	score := request.Score
	if i.cfg.RecomputeScore {
		score = ComputeScore(challenge.Questions, request.Answers)
	}
	rec := dbmodels.Submission{
		IntervieweeID: intervieweeID,
		ChallengeID:   challenge.ID,
		PositionID:    challenge.PositionID,
		Answers:       pq.StringArray(request.Answers),
		Score:         score,
		Status:        models.SubmissionStatusPending,
	}
	if err = i.store.Create(ctx, &rec); err != nil {
		logger.WithError(err).Error("failed to create submission")
		return submissionapimodels.SubmissionView{}, errors.Wrap(err, "failed to create submission")
	}
	logger.WithField("submission_id", rec.ID).
		WithField("score", rec.Score).
		Info("submission created")
	return submissionapimodels.SubmissionConvert(rec), nil
}

func (i impl) SetStatus(ctx context.Context, recruiterID, submissionID string, request submissionapimodels.StatusUpdateRequest) (submissionapimodels.SubmissionView, error) {
	if err := request.Validate(); err != nil {
		return submissionapimodels.SubmissionView{}, err
	}
	logger := log.WithField("recruiter_id", recruiterID).
		WithField("submission_id", submissionID)
	rec, err := i.getSubmission(ctx, submissionID)
	if err != nil {
		return submissionapimodels.SubmissionView{}, err
	}
	newStatus := request.NewStatus()
	if err = i.checkOwner(ctx, recruiterID, rec); err != nil {
		return submissionapimodels.SubmissionView{}, err
	}

	updMap := map[string]interface{}{}
	statusChanged := rec.Status != newStatus
	if statusChanged {
		updMap["status"] = newStatus
	}
	if request.Feedback != nil {
		updMap["feedback"] = *request.Feedback
	}
	if len(updMap) != 0 {
		if err = i.store.Update(ctx, submissionID, updMap); err != nil {
			logger.WithError(err).Error("failed to update submission status")
			return submissionapimodels.SubmissionView{}, errors.Wrap(err, "failed to update submission status")
		}
	}
	if statusChanged {
		i.history.Save(ctx, submissionID, recruiterID, rec.Status, newStatus, request.Feedback)
		logger.WithField("old_status", rec.Status).
			WithField("new_status", newStatus).
			Info("submission status changed")
	}

	updated, err := i.store.GetPopulated(ctx, submissionID)
	if err != nil {
		logger.WithError(err).Error("failed to get submission")
		return submissionapimodels.SubmissionView{}, errors.Wrap(err, "failed to get submission")
	}
	if updated == nil {
		return submissionapimodels.SubmissionView{}, apperrors.New(apperrors.ErrNotFound, "submission not found")
	}
	return submissionapimodels.SubmissionConvert(*updated), nil
}

func (i impl) ListForRecruiter(ctx context.Context, recruiterID string) ([]submissionapimodels.SubmissionView, error) {
	scope, err := i.scope.Resolve(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	list, err := i.store.ListByChallenges(ctx, scope.ChallengeIDs)
	if err != nil {
		log.WithError(err).WithField("recruiter_id", recruiterID).Error("failed to list submissions")
		return nil, errors.Wrap(err, "failed to list submissions")
	}
	return submissionapimodels.SubmissionListConvert(list), nil
}

func (i impl) ListForInterviewee(ctx context.Context, intervieweeID string) ([]submissionapimodels.SubmissionView, error) {
	list, err := i.listOwn(ctx, intervieweeID)
	if err != nil {
		return nil, err
	}
	return submissionapimodels.SubmissionListConvert(list), nil
}

func (i impl) Results(ctx context.Context, intervieweeID string) ([]submissionapimodels.ResultView, error) {
	list, err := i.listOwn(ctx, intervieweeID)
	if err != nil {
		return nil, err
	}
	return submissionapimodels.ResultListConvert(list), nil
}

func (i impl) listOwn(ctx context.Context, intervieweeID string) ([]dbmodels.Submission, error) {
	list, err := i.store.ListByInterviewee(ctx, intervieweeID)
	if err != nil {
		log.WithError(err).WithField("interviewee_id", intervieweeID).Error("failed to list submissions")
		return nil, errors.Wrap(err, "failed to list submissions")
	}
	return list, nil
}

func (i impl) Latest(ctx context.Context, intervieweeID, challengeID string) (submissionapimodels.SubmissionView, error) {
	rec, err := i.store.LatestByIntervieweeAndChallenge(ctx, intervieweeID, challengeID)
	if err != nil {
		log.WithError(err).
			WithField("interviewee_id", intervieweeID).
			WithField("challenge_id", challengeID).
			Error("failed to get submission")
		return submissionapimodels.SubmissionView{}, errors.Wrap(err, "failed to get submission")
	}
	if rec == nil {
		return submissionapimodels.SubmissionView{}, apperrors.New(apperrors.ErrNotFound, "submission not found")
	}
	return submissionapimodels.SubmissionConvert(*rec), nil
}

func (i impl) History(ctx context.Context, recruiterID, submissionID string) ([]submissionapimodels.HistoryView, error) {
	rec, err := i.getSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if err = i.checkOwner(ctx, recruiterID, rec); err != nil {
		return nil, err
	}
	return i.history.List(ctx, submissionID)
}

func (i impl) getSubmission(ctx context.Context, submissionID string) (*dbmodels.Submission, error) {
	rec, err := i.store.GetByID(ctx, submissionID)
	if err != nil {
		log.WithError(err).WithField("submission_id", submissionID).Error("failed to get submission")
		return nil, errors.Wrap(err, "failed to get submission")
	}
	if rec == nil {
		return nil, apperrors.New(apperrors.ErrNotFound, "submission not found")
	}
	return rec, nil
}

func (i impl) checkOwner(ctx context.Context, recruiterID string, rec *dbmodels.Submission) error {
	_, err := i.scope.OwnsChallenge(ctx, recruiterID, rec.ChallengeID)
	if err != nil && errors.Is(err, apperrors.ErrForbidden) {
		return apperrors.New(apperrors.ErrForbidden, "submission belongs to another recruiter")
	}
	return err
}
