package authhandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"skill-hire-backend/lib/rbac"
	usersstore "skill-hire-backend/lib/users/store"
	apperrors "skill-hire-backend/lib/utils/app-errors"
	authutils "skill-hire-backend/lib/utils/auth-utils"
	authapimodels "skill-hire-backend/models/api/auth"
	dbmodels "skill-hire-backend/models/db"
)

type Provider interface {
	Register(ctx context.Context, request authapimodels.RegisterRequest) error
	Login(ctx context.Context, request authapimodels.LoginRequest) (authapimodels.TokenResponse, error)
	Me(ctx context.Context, identity authutils.Identity) (authapimodels.MeView, error)
}

func NewHandler(userStore usersstore.Provider, tokens *authutils.TokenIssuer, rbacProvider rbac.Provider) Provider {
	return impl{
		userStore: userStore,
		tokens:    tokens,
		rbac:      rbacProvider,
	}
}

type impl struct {
	userStore usersstore.Provider
	tokens    *authutils.TokenIssuer
	rbac      rbac.Provider
}

func (i impl) Register(ctx context.Context, request authapimodels.RegisterRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}
	logger := log.WithField("email", request.Email).
		WithField("role", request.Role)
	exist, err := i.userStore.ExistByEmail(ctx, request.Email)
	if err != nil {
		logger.WithError(err).Error("failed to check user email")
		return errors.Wrap(err, "failed to check user email")
	}
	if exist {
		return apperrors.New(apperrors.ErrConflict, "user already exists")
	}
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		logger.WithError(err).Error("failed to hash password")
		return err
	}
	rec := dbmodels.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hash,
		Role:     request.Role,
	}
	if err = i.userStore.Create(ctx, &rec); err != nil {
		// a concurrent registration may have taken the email in between
		if exist, existErr := i.userStore.ExistByEmail(ctx, request.Email); existErr == nil && exist {
			return apperrors.New(apperrors.ErrConflict, "user already exists")
		}
		logger.WithError(err).Error("failed to create user")
		return errors.Wrap(err, "failed to create user")
	}
	logger.WithField("user_id", rec.ID).Info("user registered")
	return nil
}

func (i impl) Login(ctx context.Context, request authapimodels.LoginRequest) (authapimodels.TokenResponse, error) {
	if err := request.Validate(); err != nil {
		return authapimodels.TokenResponse{}, err
	}
	logger := log.WithField("email", request.Email)
	rec, err := i.userStore.FindByEmail(ctx, request.Email)
	if err != nil {
		logger.WithError(err).Error("failed to get user")
		return authapimodels.TokenResponse{}, errors.Wrap(err, "failed to get user")
	}
	if rec == nil {
		return authapimodels.TokenResponse{}, apperrors.New(apperrors.ErrNotFound, "user not found")
	}
	if !authutils.CheckPassword(rec.Password, request.Password) {
		return authapimodels.TokenResponse{}, apperrors.New(apperrors.ErrInvalidCredential, "invalid credentials")
	}
	token, err := i.tokens.GetToken(rec.ID, rec.Name, rec.Role)
	if err != nil {
		logger.WithError(err).Error("failed to sign token")
		return authapimodels.TokenResponse{}, errors.Wrap(err, "failed to sign token")
	}
	return authapimodels.TokenResponse{Token: token}, nil
}

func (i impl) Me(ctx context.Context, identity authutils.Identity) (authapimodels.MeView, error) {
	rec, err := i.userStore.GetByID(ctx, identity.UserID)
	if err != nil {
		log.WithError(err).WithField("user_id", identity.UserID).Error("failed to get user")
		return authapimodels.MeView{}, errors.Wrap(err, "failed to get user")
	}
	if rec == nil {
		return authapimodels.MeView{}, apperrors.New(apperrors.ErrNotFound, "user not found")
	}
	return authapimodels.MeView{
		UserView:    authapimodels.UserConvert(*rec),
		Permissions: i.rbac.GetPermissions(rec.Role),
	}, nil
}
