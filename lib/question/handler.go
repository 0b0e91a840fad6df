package questionhandler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	questionstore "skill-hire-backend/lib/question/store"
	scopehandler "skill-hire-backend/lib/scope"
	apperrors "skill-hire-backend/lib/utils/app-errors"
	"skill-hire-backend/lib/utils/lock"
	hiringapimodels "skill-hire-backend/models/api/hiring"
	dbmodels "skill-hire-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, recruiterID string, data hiringapimodels.QuestionData) (hiringapimodels.QuestionView, error)
	CreateBulk(ctx context.Context, recruiterID string, request hiringapimodels.BulkQuestionsRequest) (hiringapimodels.BulkQuestionsResponse, error)
	ListOwned(ctx context.Context, recruiterID string) ([]hiringapimodels.QuestionView, error)
}

func NewHandler(store questionstore.Provider, scope scopehandler.Provider) Provider {
	return impl{
		store:    store,
		scope:    scope,
		appendMu: lock.New(),
	}
}

// ordinals are computed from the current max, appends to one challenge run one at a time
const appendWait = 5 * time.Second

type impl struct {
	store    questionstore.Provider
	scope    scopehandler.Provider
	appendMu *lock.KeyLock
}

func (i impl) Create(ctx context.Context, recruiterID string, data hiringapimodels.QuestionData) (hiringapimodels.QuestionView, error) {
	if err := data.Validate(); err != nil {
		return hiringapimodels.QuestionView{}, err
	}
	list, err := i.append(ctx, recruiterID, data.ChallengeID, []dbmodels.Question{data.ToRecord()})
	if err != nil {
		return hiringapimodels.QuestionView{}, err
	}
	return hiringapimodels.QuestionConvert(list[0]), nil
}

func (i impl) CreateBulk(ctx context.Context, recruiterID string, request hiringapimodels.BulkQuestionsRequest) (hiringapimodels.BulkQuestionsResponse, error) {
	if err := request.Validate(); err != nil {
		return hiringapimodels.BulkQuestionsResponse{}, err
	}
	list, err := i.append(ctx, recruiterID, request.ChallengeID, request.ToRecords())
	if err != nil {
		return hiringapimodels.BulkQuestionsResponse{}, err
	}
	return hiringapimodels.BulkQuestionsResponse{
		Msg:       "Questions created",
		Questions: hiringapimodels.QuestionListConvert(list),
	}, nil
}

func (i impl) append(ctx context.Context, recruiterID, challengeID string, recs []dbmodels.Question) ([]dbmodels.Question, error) {
	logger := log.WithField("recruiter_id", recruiterID).
		WithField("challenge_id", challengeID)
	if _, err := i.scope.OwnsChallenge(ctx, recruiterID, challengeID); err != nil {
		return nil, err
	}
	var list []dbmodels.Question
	locked, err := i.appendMu.WithDelay(ctx, challengeID, appendWait, func() (err error) {
		list, err = i.store.CreateBulk(ctx, challengeID, recs)
		return err
	})
	if err != nil {
		logger.WithError(err).Error("failed to add questions")
		return nil, errors.Wrap(err, "failed to add questions")
	}
	if !locked {
		logger.Warn("challenge is busy")
		return nil, apperrors.New(apperrors.ErrConflict, "questions are being added to this challenge, try again")
	}
	logger.WithField("count", len(list)).Info("questions added")
	return list, nil
}

func (i impl) ListOwned(ctx context.Context, recruiterID string) ([]hiringapimodels.QuestionView, error) {
	scope, err := i.scope.Resolve(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	list, err := i.store.ListByChallenges(ctx, scope.ChallengeIDs)
	if err != nil {
		log.WithError(err).WithField("recruiter_id", recruiterID).Error("failed to list questions")
		return nil, errors.Wrap(err, "failed to list questions")
	}
	return hiringapimodels.QuestionListConvert(list), nil
}
