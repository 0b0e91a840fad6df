package positionhandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	positionstore "skill-hire-backend/lib/position/store"
	scopehandler "skill-hire-backend/lib/scope"
	apperrors "skill-hire-backend/lib/utils/app-errors"
	hiringapimodels "skill-hire-backend/models/api/hiring"
)

type Provider interface {
	Create(ctx context.Context, recruiterID string, data hiringapimodels.PositionData) (hiringapimodels.PositionView, error)
	ListOwned(ctx context.Context, recruiterID string) ([]hiringapimodels.PositionView, error)
	Get(ctx context.Context, id string) (hiringapimodels.PositionView, error)
	// ListOpen is what interviewees browse: every position with its company and challenges.
	ListOpen(ctx context.Context) ([]hiringapimodels.PositionView, error)
}

func NewHandler(store positionstore.Provider, scope scopehandler.Provider) Provider {
	return impl{
		store: store,
		scope: scope,
	}
}

type impl struct {
	store positionstore.Provider
	scope scopehandler.Provider
}

func (i impl) Create(ctx context.Context, recruiterID string, data hiringapimodels.PositionData) (hiringapimodels.PositionView, error) {
	if err := data.Validate(); err != nil {
		return hiringapimodels.PositionView{}, err
	}
	logger := log.WithField("recruiter_id", recruiterID).
		WithField("company_id", data.CompanyID)
	if _, err := i.scope.OwnsCompany(ctx, recruiterID, data.CompanyID); err != nil {
		return hiringapimodels.PositionView{}, err
	}
	rec := data.ToRecord()
	if err := i.store.Create(ctx, &rec); err != nil {
		logger.WithError(err).Error("failed to create position")
		return hiringapimodels.PositionView{}, errors.Wrap(err, "failed to create position")
	}
	logger.WithField("position_id", rec.ID).Info("position created")
	return hiringapimodels.PositionConvert(rec), nil
}

func (i impl) ListOwned(ctx context.Context, recruiterID string) ([]hiringapimodels.PositionView, error) {
	scope, err := i.scope.Resolve(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	list, err := i.store.ListByCompanies(ctx, scope.CompanyIDs)
	if err != nil {
		log.WithError(err).WithField("recruiter_id", recruiterID).Error("failed to list positions")
		return nil, errors.Wrap(err, "failed to list positions")
	}
	return hiringapimodels.PositionListConvert(list, false), nil
}

func (i impl) Get(ctx context.Context, id string) (hiringapimodels.PositionView, error) {
	rec, err := i.store.GetWithCompany(ctx, id)
	if err != nil {
		log.WithError(err).WithField("position_id", id).Error("failed to get position")
		return hiringapimodels.PositionView{}, errors.Wrap(err, "failed to get position")
	}
	if rec == nil {
		return hiringapimodels.PositionView{}, apperrors.New(apperrors.ErrNotFound, "position not found")
	}
	return hiringapimodels.PositionConvert(*rec), nil
}

func (i impl) ListOpen(ctx context.Context) ([]hiringapimodels.PositionView, error) {
	list, err := i.store.ListWithCompanyAndChallenges(ctx)
	if err != nil {
		log.WithError(err).Error("failed to list positions")
		return nil, errors.Wrap(err, "failed to list positions")
	}
	return hiringapimodels.PositionListConvert(list, true), nil
}
