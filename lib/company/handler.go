package companyhandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	companystore "skill-hire-backend/lib/company/store"
	scopehandler "skill-hire-backend/lib/scope"
	apperrors "skill-hire-backend/lib/utils/app-errors"
	hiringapimodels "skill-hire-backend/models/api/hiring"
)

type Provider interface {
	Create(ctx context.Context, recruiterID string, data hiringapimodels.CompanyData) (hiringapimodels.CompanyView, error)
	ListOwned(ctx context.Context, recruiterID string) ([]hiringapimodels.CompanyView, error)
	Get(ctx context.Context, id string) (hiringapimodels.CompanyView, error)
	Update(ctx context.Context, recruiterID, id string, data hiringapimodels.CompanyData) (hiringapimodels.CompanyView, error)
}

func NewHandler(store companystore.Provider, scope scopehandler.Provider) Provider {
	return impl{
		store: store,
		scope: scope,
	}
}

type impl struct {
	store companystore.Provider
	scope scopehandler.Provider
}

func (i impl) Create(ctx context.Context, recruiterID string, data hiringapimodels.CompanyData) (hiringapimodels.CompanyView, error) {
	if err := data.Validate(); err != nil {
		return hiringapimodels.CompanyView{}, err
	}
	logger := log.WithField("recruiter_id", recruiterID)
	rec := data.ToRecord(recruiterID)
	if err := i.store.Create(ctx, &rec); err != nil {
		logger.WithError(err).Error("failed to create company")
		return hiringapimodels.CompanyView{}, errors.Wrap(err, "failed to create company")
	}
	logger.WithField("company_id", rec.ID).Info("company created")
	return hiringapimodels.CompanyConvert(rec), nil
}

func (i impl) ListOwned(ctx context.Context, recruiterID string) ([]hiringapimodels.CompanyView, error) {
	list, err := i.store.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		log.WithError(err).WithField("recruiter_id", recruiterID).Error("failed to list companies")
		return nil, errors.Wrap(err, "failed to list companies")
	}
	return hiringapimodels.CompanyListConvert(list), nil
}

func (i impl) Get(ctx context.Context, id string) (hiringapimodels.CompanyView, error) {
	rec, err := i.store.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).WithField("company_id", id).Error("failed to get company")
		return hiringapimodels.CompanyView{}, errors.Wrap(err, "failed to get company")
	}
	if rec == nil {
		return hiringapimodels.CompanyView{}, apperrors.New(apperrors.ErrNotFound, "company not found")
	}
	return hiringapimodels.CompanyConvert(*rec), nil
}

func (i impl) Update(ctx context.Context, recruiterID, id string, data hiringapimodels.CompanyData) (hiringapimodels.CompanyView, error) {
	if err := data.Validate(); err != nil {
		return hiringapimodels.CompanyView{}, err
	}
	logger := log.WithField("recruiter_id", recruiterID).
		WithField("company_id", id)
	if _, err := i.scope.OwnsCompany(ctx, recruiterID, id); err != nil {
		return hiringapimodels.CompanyView{}, err
	}
	if err := i.store.Update(ctx, id, data.UpdateMap()); err != nil {
		logger.WithError(err).Error("failed to update company")
		return hiringapimodels.CompanyView{}, errors.Wrap(err, "failed to update company")
	}
	logger.Info("company updated")
	return i.Get(ctx, id)
}
