package challengehandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	challengestore "skill-hire-backend/lib/challenge/store"
	scopehandler "skill-hire-backend/lib/scope"
	apperrors "skill-hire-backend/lib/utils/app-errors"
	hiringapimodels "skill-hire-backend/models/api/hiring"
	dbmodels "skill-hire-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, recruiterID string, data hiringapimodels.ChallengeData) (hiringapimodels.ChallengeView, error)
	ListOwned(ctx context.Context, recruiterID string) ([]hiringapimodels.ChallengeView, error)
	// Get returns the challenge with its position and questions.
	Get(ctx context.Context, id string) (hiringapimodels.ChallengeView, error)
	// GetForAttempt returns the challenge with its questions only.
	GetForAttempt(ctx context.Context, id string) (hiringapimodels.ChallengeView, error)
}

func NewHandler(store challengestore.Provider, scope scopehandler.Provider) Provider {
	return impl{
		store: store,
		scope: scope,
	}
}

type impl struct {
	store challengestore.Provider
	scope scopehandler.Provider
}

func (i impl) Create(ctx context.Context, recruiterID string, data hiringapimodels.ChallengeData) (hiringapimodels.ChallengeView, error) {
	if err := data.Validate(); err != nil {
		return hiringapimodels.ChallengeView{}, err
	}
	logger := log.WithField("recruiter_id", recruiterID).
		WithField("position_id", data.PositionID)
	if _, err := i.scope.OwnsPosition(ctx, recruiterID, data.PositionID); err != nil {
		return hiringapimodels.ChallengeView{}, err
	}
	rec := data.ToRecord()
	if err := i.store.Create(ctx, &rec); err != nil {
		logger.WithError(err).Error("failed to create challenge")
		return hiringapimodels.ChallengeView{}, errors.Wrap(err, "failed to create challenge")
	}
	logger.WithField("challenge_id", rec.ID).Info("challenge created")
	return hiringapimodels.ChallengeConvert(rec), nil
}

func (i impl) ListOwned(ctx context.Context, recruiterID string) ([]hiringapimodels.ChallengeView, error) {
	scope, err := i.scope.Resolve(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	list, err := i.store.ListByPositions(ctx, scope.PositionIDs)
	if err != nil {
		log.WithError(err).WithField("recruiter_id", recruiterID).Error("failed to list challenges")
		return nil, errors.Wrap(err, "failed to list challenges")
	}
	return hiringapimodels.ChallengeListConvert(list), nil
}

func (i impl) Get(ctx context.Context, id string) (hiringapimodels.ChallengeView, error) {
	rec, err := i.store.GetWithPositionAndQuestions(ctx, id)
	return i.convert(id, rec, err)
}

func (i impl) GetForAttempt(ctx context.Context, id string) (hiringapimodels.ChallengeView, error) {
	rec, err := i.store.GetWithQuestions(ctx, id)
	return i.convert(id, rec, err)
}

func (i impl) convert(id string, rec *dbmodels.Challenge, err error) (hiringapimodels.ChallengeView, error) {
	if err != nil {
		log.WithError(err).WithField("challenge_id", id).Error("failed to get challenge")
		return hiringapimodels.ChallengeView{}, errors.Wrap(err, "failed to get challenge")
	}
	if rec == nil {
		return hiringapimodels.ChallengeView{}, apperrors.New(apperrors.ErrNotFound, "challenge not found")
	}
	return hiringapimodels.ChallengeWithQuestionsConvert(*rec), nil
}
