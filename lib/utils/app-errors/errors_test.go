package apperrors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAppErrors(t *testing.T) {
	t.Run(`kind survives wrapping`, func(t *testing.T) {
		err := errors.Wrap(New(ErrNotFound, "submission not found"), "set status")
		require.True(t, errors.Is(err, ErrNotFound))
		require.Equal(t, http.StatusNotFound, HTTPStatus(err))
		require.Equal(t, "submission not found", Message(err))
	})

	t.Run(`status mapping`, func(t *testing.T) {
		require.Equal(t, http.StatusBadRequest, HTTPStatus(New(ErrWeakCredential, "short")))
		require.Equal(t, http.StatusBadRequest, HTTPStatus(New(ErrConflict, "dup")))
		require.Equal(t, http.StatusUnauthorized, HTTPStatus(New(ErrUnauthenticated, "no token")))
		require.Equal(t, http.StatusForbidden, HTTPStatus(New(ErrForbidden, "not owner")))
		require.Equal(t, http.StatusNotFound, HTTPStatus(Newf(ErrDanglingReference, "company %s not found", "c1")))
	})

	t.Run(`server errors are opaque`, func(t *testing.T) {
		err := errors.New("pq: connection refused")
		require.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
		require.Equal(t, "", Message(err))
	})
}
