package initializers

import (
	"time"

	"gorm.io/gorm"
	"skill-hire-backend/config"
	"skill-hire-backend/fiberlog"
	authhandler "skill-hire-backend/lib/auth"
	challengehandler "skill-hire-backend/lib/challenge"
	challengestore "skill-hire-backend/lib/challenge/store"
	companyhandler "skill-hire-backend/lib/company"
	companystore "skill-hire-backend/lib/company/store"
	pdfexport "skill-hire-backend/lib/export/pdf"
	xlsexport "skill-hire-backend/lib/export/xls"
	positionhandler "skill-hire-backend/lib/position"
	positionstore "skill-hire-backend/lib/position/store"
	questionhandler "skill-hire-backend/lib/question"
	questionstore "skill-hire-backend/lib/question/store"
	"skill-hire-backend/lib/rbac"
	resumereviewhandler "skill-hire-backend/lib/resume-review"
	resumereviewstore "skill-hire-backend/lib/resume-review/store"
	scopehandler "skill-hire-backend/lib/scope"
	submissionhandler "skill-hire-backend/lib/submission"
	submissionhistoryhandler "skill-hire-backend/lib/submission-history"
	submissionhistorystore "skill-hire-backend/lib/submission-history/store"
	submissionstore "skill-hire-backend/lib/submission/store"
	usersstore "skill-hire-backend/lib/users/store"
	authutils "skill-hire-backend/lib/utils/auth-utils"
)

// ApiPrefix is where the api is mounted.
const ApiPrefix = "/api"

var LoggerConfig *fiberlog.Config

// Stores are the persistence dependencies of the services.
type Stores struct {
	Users             usersstore.Provider
	Companies         companystore.Provider
	Positions         positionstore.Provider
	Challenges        challengestore.Provider
	Questions         questionstore.Provider
	Submissions       submissionstore.Provider
	SubmissionHistory submissionhistorystore.Provider
	ResumeReviews     resumereviewstore.Provider
}

func NewStores(DB *gorm.DB) Stores {
	return Stores{
		Users:             usersstore.NewInstance(DB),
		Companies:         companystore.NewInstance(DB),
		Positions:         positionstore.NewInstance(DB),
		Challenges:        challengestore.NewInstance(DB),
		Questions:         questionstore.NewInstance(DB),
		Submissions:       submissionstore.NewInstance(DB),
		SubmissionHistory: submissionhistorystore.NewInstance(DB),
		ResumeReviews:     resumereviewstore.NewInstance(DB),
	}
}

type Settings struct {
	JWTSecret      string
	JWTTTL         time.Duration
	RecomputeScore bool
}

func SettingsFromConfig(conf *config.Configuration) Settings {
	return Settings{
		JWTSecret:      conf.Auth.JWTSecret,
		JWTTTL:         time.Duration(conf.Auth.JWTExpireInSec) * time.Second,
		RecomputeScore: *conf.Submission.RecomputeScore,
	}
}

// Services is everything the controllers need.
type Services struct {
	Tokens       *authutils.TokenIssuer
	Rbac         rbac.Provider
	Auth         authhandler.Provider
	Scope        scopehandler.Provider
	Company      companyhandler.Provider
	Position     positionhandler.Provider
	Challenge    challengehandler.Provider
	Question     questionhandler.Provider
	Submission   submissionhandler.Provider
	History      submissionhistoryhandler.Provider
	ResumeReview resumereviewhandler.Provider
	XlsExport    xlsexport.Provider
	PdfExport    pdfexport.Provider
}

func NewServices(stores Stores, settings Settings) *Services {
	tokens := authutils.NewTokenIssuer(settings.JWTSecret, settings.JWTTTL)
	rbacProvider := rbac.NewHandler(ApiPrefix)
	scope := scopehandler.NewHandler(stores.Companies, stores.Positions, stores.Challenges)
	history := submissionhistoryhandler.NewHandler(stores.SubmissionHistory, stores.Users)
	submission := submissionhandler.NewHandler(stores.Submissions, stores.Challenges, scope, history,
		submissionhandler.Config{RecomputeScore: settings.RecomputeScore})
	return &Services{
		Tokens:       tokens,
		Rbac:         rbacProvider,
		Auth:         authhandler.NewHandler(stores.Users, tokens, rbacProvider),
		Scope:        scope,
		Company:      companyhandler.NewHandler(stores.Companies, scope),
		Position:     positionhandler.NewHandler(stores.Positions, scope),
		Challenge:    challengehandler.NewHandler(stores.Challenges, scope),
		Question:     questionhandler.NewHandler(stores.Questions, scope),
		Submission:   submission,
		History:      history,
		ResumeReview: resumereviewhandler.NewHandler(stores.ResumeReviews, stores.Users),
		XlsExport:    xlsexport.NewHandler(),
		PdfExport:    pdfexport.NewHandler(),
	}
}

func InitAllServices() (*Services, *gorm.DB) {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.App.LogLevel)
	conn := InitDBConnection()
	return NewServices(NewStores(conn), SettingsFromConfig(config.Conf)), conn
}
