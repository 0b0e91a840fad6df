package scopehandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	challengestore "skill-hire-backend/lib/challenge/store"
	companystore "skill-hire-backend/lib/company/store"
	positionstore "skill-hire-backend/lib/position/store"
	apperrors "skill-hire-backend/lib/utils/app-errors"
	dbmodels "skill-hire-backend/models/db"
)

// Scope holds the ids of everything a recruiter transitively owns.
type Scope struct {
	CompanyIDs   []string
	PositionIDs  []string
	ChallengeIDs []string
}

func (s Scope) IsEmpty() bool {
	return len(s.CompanyIDs) == 0
}

type Provider interface {
	Resolve(ctx context.Context, recruiterID string) (Scope, error)
	OwnsCompany(ctx context.Context, recruiterID, companyID string) (*dbmodels.Company, error)
	OwnsPosition(ctx context.Context, recruiterID, positionID string) (*dbmodels.Position, error)
	OwnsChallenge(ctx context.Context, recruiterID, challengeID string) (*dbmodels.Challenge, error)
}

func NewHandler(companyStore companystore.Provider, positionStore positionstore.Provider, challengeStore challengestore.Provider) Provider {
	return impl{
		companyStore:   companyStore,
		positionStore:  positionStore,
		challengeStore: challengeStore,
	}
}

type impl struct {
	companyStore   companystore.Provider
	positionStore  positionstore.Provider
	challengeStore challengestore.Provider
}

func (i impl) Resolve(ctx context.Context, recruiterID string) (Scope, error) {
	logger := log.WithField("recruiter_id", recruiterID)
	scope := Scope{
		CompanyIDs:   []string{},
		PositionIDs:  []string{},
		ChallengeIDs: []string{},
	}
	var err error
	scope.CompanyIDs, err = i.companyStore.IDsByRecruiter(ctx, recruiterID)
	if err != nil {
		logger.WithError(err).Error("failed to resolve owned companies")
		return Scope{}, errors.Wrap(err, "failed to resolve owned companies")
	}
	if len(scope.CompanyIDs) == 0 {
		return scope, nil
	}
	scope.PositionIDs, err = i.positionStore.IDsByCompanies(ctx, scope.CompanyIDs)
	if err != nil {
		logger.WithError(err).Error("failed to resolve owned positions")
		return Scope{}, errors.Wrap(err, "failed to resolve owned positions")
	}
	if len(scope.PositionIDs) == 0 {
		return scope, nil
	}
	scope.ChallengeIDs, err = i.challengeStore.IDsByPositions(ctx, scope.PositionIDs)
	if err != nil {
		logger.WithError(err).Error("failed to resolve owned challenges")
		return Scope{}, errors.Wrap(err, "failed to resolve owned challenges")
	}
	return scope, nil
}

func (i impl) OwnsCompany(ctx context.Context, recruiterID, companyID string) (*dbmodels.Company, error) {
	rec, err := i.companyStore.GetByID(ctx, companyID)
	if err != nil {
		log.WithError(err).WithField("company_id", companyID).Error("failed to get company")
		return nil, errors.Wrap(err, "failed to get company")
	}
	if rec == nil {
		return nil, apperrors.New(apperrors.ErrDanglingReference, "company not found")
	}
	if rec.RecruiterID != recruiterID {
		return nil, apperrors.New(apperrors.ErrForbidden, "company belongs to another recruiter")
	}
	return rec, nil
}

func (i impl) OwnsPosition(ctx context.Context, recruiterID, positionID string) (*dbmodels.Position, error) {
	rec, err := i.positionStore.GetByID(ctx, positionID)
	if err != nil {
		log.WithError(err).WithField("position_id", positionID).Error("failed to get position")
		return nil, errors.Wrap(err, "failed to get position")
	}
	if rec == nil {
		return nil, apperrors.New(apperrors.ErrDanglingReference, "position not found")
	}
	if _, err = i.OwnsCompany(ctx, recruiterID, rec.CompanyID); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			return nil, apperrors.New(apperrors.ErrForbidden, "position belongs to another recruiter")
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) OwnsChallenge(ctx context.Context, recruiterID, challengeID string) (*dbmodels.Challenge, error) {
	rec, err := i.challengeStore.GetByID(ctx, challengeID)
	if err != nil {
		log.WithError(err).WithField("challenge_id", challengeID).Error("failed to get challenge")
		return nil, errors.Wrap(err, "failed to get challenge")
	}
	if rec == nil {
		return nil, apperrors.New(apperrors.ErrDanglingReference, "challenge not found")
	}
	if _, err = i.OwnsPosition(ctx, recruiterID, rec.PositionID); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			return nil, apperrors.New(apperrors.ErrForbidden, "challenge belongs to another recruiter")
		}
		return nil, err
	}
	return rec, nil
}
