package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthReportsHealthy(t *testing.T) {
	e, mock := newServer(t, true)
	mock.ExpectPing()

	rec := do(t, e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthReportsUnavailableDatabase(t *testing.T) {
	e, mock := newServer(t, true)
	mock.ExpectPing().WillReturnError(errors.New("dial tcp 10.0.0.5:3306: connection refused"))

	rec := do(t, e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"detail":"Service unavailable"}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
