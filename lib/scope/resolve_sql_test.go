package scopehandler

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	challengestore "skill-hire-backend/lib/challenge/store"
	companystore "skill-hire-backend/lib/company/store"
	positionstore "skill-hire-backend/lib/position/store"
)

func newMockedHandler(t *testing.T) (Provider, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return NewHandler(companystore.NewInstance(db), positionstore.NewInstance(db), challengestore.NewInstance(db)), mock
}

func TestResolveQueries(t *testing.T) {
	t.Run(`three plucks`, func(t *testing.T) {
		handler, mock := newMockedHandler(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "companies" WHERE recruiter_id = $1`)).
			WithArgs("recruiter-a").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("c1").AddRow("c2"))
		mock.ExpectQuery(`SELECT "id" FROM "positions" WHERE company_id in \(.+\)`).
			WithArgs("c1", "c2").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1"))
		mock.ExpectQuery(`SELECT "id" FROM "challenges" WHERE position_id in \(.+\)`).
			WithArgs("p1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ch1").AddRow("ch2"))

		scope, err := handler.Resolve(context.Background(), "recruiter-a")
		require.NoError(t, err)
		require.Equal(t, []string{"c1", "c2"}, scope.CompanyIDs)
		require.Equal(t, []string{"p1"}, scope.PositionIDs)
		require.Equal(t, []string{"ch1", "ch2"}, scope.ChallengeIDs)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run(`stops at the first empty level`, func(t *testing.T) {
		handler, mock := newMockedHandler(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "companies" WHERE recruiter_id = $1`)).
			WithArgs("recruiter-b").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("c1"))
		mock.ExpectQuery(`SELECT "id" FROM "positions" WHERE company_id in \(.+\)`).
			WithArgs("c1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		scope, err := handler.Resolve(context.Background(), "recruiter-b")
		require.NoError(t, err)
		require.Equal(t, []string{"c1"}, scope.CompanyIDs)
		require.Empty(t, scope.PositionIDs)
		require.Empty(t, scope.ChallengeIDs)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run(`query error`, func(t *testing.T) {
		handler, mock := newMockedHandler(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "companies" WHERE recruiter_id = $1`)).
			WithArgs("recruiter-c").
			WillReturnError(gorm.ErrInvalidDB)

		_, err := handler.Resolve(context.Background(), "recruiter-c")
		require.ErrorIs(t, err, gorm.ErrInvalidDB)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
