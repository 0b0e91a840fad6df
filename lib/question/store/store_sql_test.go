package questionstore

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"skill-hire-backend/models"
	dbmodels "skill-hire-backend/models/db"
)

const maxOrdinalQuery = `SELECT max\(ordinal\) FROM "questions" WHERE challenge_id = \$1`

func newMockedStore(t *testing.T) (Provider, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return NewInstance(db), mock
}

func newQuestions() []dbmodels.Question {
	return []dbmodels.Question{
		{QuestionText: "first", Type: models.QuestionTypeWritten, Score: 1},
		{QuestionText: "second", Type: models.QuestionTypeCoding, Score: 2},
	}
}

func ordinals(list []dbmodels.Question) []int {
	result := make([]int, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.Ordinal)
	}
	return result
}

func TestCreateBulk(t *testing.T) {
	ctx := context.Background()

	t.Run(`first questions of a challenge`, func(t *testing.T) {
		store, mock := newMockedStore(t)
		mock.ExpectBegin()
		mock.ExpectQuery(maxOrdinalQuery).
			WithArgs("ch1").
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))
		mock.ExpectExec(`INSERT INTO "questions"`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		list, err := store.CreateBulk(ctx, "ch1", newQuestions())
		require.NoError(t, err)
		require.Equal(t, []int{0, 1}, ordinals(list))
		require.Equal(t, "first", list[0].QuestionText)
		require.Equal(t, "ch1", list[1].ChallengeID)
		require.NotEmpty(t, list[0].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run(`appends after the existing questions`, func(t *testing.T) {
		store, mock := newMockedStore(t)
		mock.ExpectBegin()
		mock.ExpectQuery(maxOrdinalQuery).
			WithArgs("ch1").
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(4))
		mock.ExpectExec(`INSERT INTO "questions"`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		list, err := store.CreateBulk(ctx, "ch1", newQuestions())
		require.NoError(t, err)
		require.Equal(t, []int{5, 6}, ordinals(list))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run(`failed insert rolls back`, func(t *testing.T) {
		store, mock := newMockedStore(t)
		insertErr := errors.New("insert failed")
		mock.ExpectBegin()
		mock.ExpectQuery(maxOrdinalQuery).
			WithArgs("ch1").
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(1))
		mock.ExpectExec(`INSERT INTO "questions"`).
			WillReturnError(insertErr)
		mock.ExpectRollback()

		list, err := store.CreateBulk(ctx, "ch1", newQuestions())
		require.ErrorIs(t, err, insertErr)
		require.Nil(t, list)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run(`invalid question touches nothing`, func(t *testing.T) {
		store, mock := newMockedStore(t)
		recs := newQuestions()
		recs[1].Type = "essay"

		_, err := store.CreateBulk(ctx, "ch1", recs)
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run(`nothing to insert`, func(t *testing.T) {
		store, mock := newMockedStore(t)
		list, err := store.CreateBulk(ctx, "ch1", nil)
		require.NoError(t, err)
		require.Empty(t, list)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListByChallenges(t *testing.T) {
	ctx := context.Background()

	t.Run(`ordered by challenge and ordinal`, func(t *testing.T) {
		store, mock := newMockedStore(t)
		mock.ExpectQuery(`SELECT \* FROM "questions" WHERE challenge_id in \(\$1,\$2\) ORDER BY challenge_id,ordinal`).
			WithArgs("ch1", "ch2").
			WillReturnRows(sqlmock.NewRows([]string{"id", "challenge_id", "ordinal", "question_text"}).
				AddRow("q1", "ch1", 0, "first").
				AddRow("q2", "ch1", 1, "second"))

		list, err := store.ListByChallenges(ctx, []string{"ch1", "ch2"})
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "second", list[1].QuestionText)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run(`empty scope issues no query`, func(t *testing.T) {
		store, mock := newMockedStore(t)
		list, err := store.ListByChallenges(ctx, nil)
		require.NoError(t, err)
		require.NotNil(t, list)
		require.Empty(t, list)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
